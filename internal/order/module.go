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

package order

import (
	"github.com/ecodeclub/laundry/internal/order/internal/consumer"
	"github.com/ecodeclub/laundry/internal/order/internal/domain"
	"github.com/ecodeclub/laundry/internal/order/internal/service"
	"github.com/ecodeclub/laundry/internal/order/internal/web"
)

type (
	Order                    = domain.Order
	OrderDetail              = domain.OrderDetail
	OrderStatus              = domain.OrderStatus
	DetailStatus             = domain.DetailStatus
	AddOn                    = domain.AddOn
	AddOnType                = domain.AddOnType
	MachineSelection         = domain.MachineSelection
	PromotionSummary         = domain.PromotionSummary
	Service                  = service.Service
	MachinesUnavailableError = service.MachinesUnavailableError
	Handler                  = web.Handler
	PaymentEvent             = consumer.PaymentEvent
	PaymentEventConsumer     = consumer.PaymentEventConsumer
)

const (
	StatusNew               = domain.StatusNew
	StatusWaitingForPayment = domain.StatusWaitingForPayment
	StatusPaymentSuccess    = domain.StatusPaymentSuccess
	StatusPaymentFailed     = domain.StatusPaymentFailed
	StatusInProgress        = domain.StatusInProgress
	StatusFinished          = domain.StatusFinished
	StatusCancelled         = domain.StatusCancelled

	DetailStatusNew        = domain.DetailStatusNew
	DetailStatusInProgress = domain.DetailStatusInProgress
	DetailStatusFinished   = domain.DetailStatusFinished
	DetailStatusCancelled  = domain.DetailStatusCancelled

	MachineTypeWasher = domain.MachineTypeWasher
	MachineTypeDryer  = domain.MachineTypeDryer

	AddOnHotWater             = domain.AddOnHotWater
	AddOnColdWater            = domain.AddOnColdWater
	AddOnDetergent            = domain.AddOnDetergent
	AddOnSoftener             = domain.AddOnSoftener
	AddOnDryingDurationMinute = domain.AddOnDryingDurationMinute

	PaymentEventTopic = consumer.PaymentEventTopic
)

var (
	ErrOrderNotFound      = service.ErrOrderNotFound
	ErrInvalidTransition  = service.ErrInvalidTransition
	ErrMachineUnavailable = service.ErrMachineUnavailable
	ErrInvalidOrder       = service.ErrInvalidOrder
)

type Module struct {
	Svc                  Service
	Hdl                  *Handler
	PaymentEventConsumer *PaymentEventConsumer
}
