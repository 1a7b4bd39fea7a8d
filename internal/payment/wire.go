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

package payment

import (
	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/laundry/internal/order"
	"github.com/ecodeclub/laundry/internal/payment/internal/consumer"
	"github.com/ecodeclub/laundry/internal/payment/internal/event"
	"github.com/ecodeclub/laundry/internal/payment/internal/repository"
	"github.com/ecodeclub/laundry/internal/payment/internal/repository/cache"
	"github.com/ecodeclub/laundry/internal/payment/internal/repository/dao"
	"github.com/ecodeclub/laundry/internal/payment/internal/service"
	"github.com/ecodeclub/laundry/internal/payment/internal/web"
	"github.com/ecodeclub/laundry/internal/payment/ioc"
	"github.com/ecodeclub/laundry/internal/pkg/database"
	"github.com/ecodeclub/laundry/internal/pkg/transactioncode"
	"github.com/ecodeclub/laundry/internal/store"
	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
)

func InitModule(db *egorm.Component,
	ec ecache.Cache,
	q mq.MQ,
	om *order.Module,
	sm *store.Module) (*Module, error) {
	wire.Build(
		initDAO,
		initTransactor,
		repository.NewPaymentRepository,
		cache.NewTokenCache,
		ioc.InitVietQRConfig,
		ioc.InitVNPayConfig,
		ioc.InitPartnerConfig,
		ioc.InitProviderRegistry,
		transactioncode.NewGenerator,
		event.NewPaymentEventProducer,
		event.NewPaymentDetailTaskProducer,
		wire.FieldsOf(new(*order.Module), "Svc"),
		wire.FieldsOf(new(*store.Module), "Svc"),
		service.NewService,
		web.NewHandler,
		web.NewWebhookHandler,
		web.NewAdminHandler,
		consumer.NewPaymentDetailTaskConsumer,
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}

func initDAO(db *egorm.Component) dao.PaymentDAO {
	err := dao.InitTables(db)
	if err != nil {
		panic(err)
	}
	return dao.NewGORMPaymentDAO(db)
}

func initTransactor(db *egorm.Component) database.Transactor {
	return database.NewGormTransactor(db)
}
