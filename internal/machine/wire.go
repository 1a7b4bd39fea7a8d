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

//go:build wireinject

package machine

import (
	"time"

	"github.com/ecodeclub/laundry/internal/machine/internal/consumer"
	"github.com/ecodeclub/laundry/internal/machine/internal/event"
	"github.com/ecodeclub/laundry/internal/machine/internal/job"
	"github.com/ecodeclub/laundry/internal/machine/internal/repository"
	"github.com/ecodeclub/laundry/internal/machine/internal/repository/dao"
	"github.com/ecodeclub/laundry/internal/machine/internal/service"
	"github.com/ecodeclub/laundry/internal/pkg/snowflake"
	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
)

func InitModule(db *egorm.Component, q mq.MQ, idGen snowflake.Generator) (*Module, error) {
	wire.Build(
		initDAO,
		repository.NewMachineRepository,
		event.NewMachineCommandProducer,
		service.NewService,
		consumer.NewMachineStateConsumer,
		initResetNoRespondingMachinesJob,
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}

func initDAO(db *egorm.Component) dao.MachineDAO {
	err := dao.InitTables(db)
	if err != nil {
		panic(err)
	}
	return dao.NewGORMMachineDAO(db)
}

func initResetNoRespondingMachinesJob(svc service.Service) *job.ResetNoRespondingMachinesJob {
	const (
		timeout = 5 * time.Minute
		limit   = 500
	)
	return job.NewResetNoRespondingMachinesJob(svc, timeout, limit)
}
