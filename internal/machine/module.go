// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package machine

import (
	"github.com/ecodeclub/laundry/internal/machine/internal/consumer"
	"github.com/ecodeclub/laundry/internal/machine/internal/domain"
	"github.com/ecodeclub/laundry/internal/machine/internal/event"
	"github.com/ecodeclub/laundry/internal/machine/internal/job"
	"github.com/ecodeclub/laundry/internal/machine/internal/service"
)

type (
	Machine                      = domain.Machine
	MachineType                  = domain.MachineType
	MachineStatus                = domain.MachineStatus
	Service                      = service.Service
	MachineCommand               = event.MachineCommand
	MachineStateEvent            = event.MachineStateEvent
	MachineStateConsumer         = consumer.MachineStateConsumer
	ResetNoRespondingMachinesJob = job.ResetNoRespondingMachinesJob
)

const (
	TypeWasher = domain.MachineTypeWasher
	TypeDryer  = domain.MachineTypeDryer

	StatusPendingSetup = domain.MachineStatusPendingSetup
	StatusIdle         = domain.MachineStatusIdle
	StatusStarting     = domain.MachineStatusStarting
	StatusBusy         = domain.MachineStatusBusy
	StatusOutOfService = domain.MachineStatusOutOfService

	CommandTopic    = event.MachineCommandTopic
	StateEventTopic = event.MachineStateEventTopic
	ActionStart     = event.ActionStart
	ActionStop      = event.ActionStop
)

var (
	ErrMachineNotFound    = service.ErrMachineNotFound
	ErrMachineUnavailable = service.ErrMachineUnavailable
)

type Module struct {
	Svc                          Service
	MachineStateConsumer         *MachineStateConsumer
	ResetNoRespondingMachinesJob *ResetNoRespondingMachinesJob
}
