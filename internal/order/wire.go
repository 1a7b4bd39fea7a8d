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

package order

import (
	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/laundry/internal/machine"
	"github.com/ecodeclub/laundry/internal/order/internal/consumer"
	"github.com/ecodeclub/laundry/internal/order/internal/repository"
	"github.com/ecodeclub/laundry/internal/order/internal/repository/dao"
	"github.com/ecodeclub/laundry/internal/order/internal/service"
	"github.com/ecodeclub/laundry/internal/order/internal/web"
	"github.com/ecodeclub/laundry/internal/pkg/database"
	"github.com/ecodeclub/laundry/internal/pkg/sequencenumber"
	"github.com/ecodeclub/laundry/internal/promotion"
	"github.com/ecodeclub/laundry/internal/store"
	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
)

func InitModule(db *egorm.Component,
	ec ecache.Cache,
	q mq.MQ,
	sm *store.Module,
	mm *machine.Module,
	pm *promotion.Module) (*Module, error) {
	wire.Build(
		initDAO,
		initTransactor,
		repository.NewOrderRepository,
		sequencenumber.NewGenerator,
		wire.FieldsOf(new(*store.Module), "Svc"),
		wire.FieldsOf(new(*machine.Module), "Svc"),
		wire.FieldsOf(new(*promotion.Module), "Svc"),
		service.NewService,
		web.NewHandler,
		consumer.NewPaymentEventConsumer,
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}

func initDAO(db *egorm.Component) dao.OrderDAO {
	err := dao.InitTables(db)
	if err != nil {
		panic(err)
	}
	return dao.NewGORMOrderDAO(db)
}

func initTransactor(db *egorm.Component) database.Transactor {
	return database.NewGormTransactor(db)
}
