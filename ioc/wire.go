//go:build wireinject

package ioc

import (
	"github.com/ecodeclub/laundry/internal/machine"
	"github.com/ecodeclub/laundry/internal/order"
	"github.com/ecodeclub/laundry/internal/payment"
	"github.com/ecodeclub/laundry/internal/promotion"
	"github.com/ecodeclub/laundry/internal/recon"
	"github.com/ecodeclub/laundry/internal/store"
	"github.com/google/wire"
)

var BaseSet = wire.NewSet(InitDB, InitRedis, InitCache, InitMQ, InitIDGenerator)

func InitApp() (*App, error) {
	wire.Build(wire.Struct(new(App), "*"),
		BaseSet,
		store.InitModule,
		machine.InitModule,
		promotion.InitModule,
		order.InitModule,
		payment.InitModule,
		recon.InitModule,
		wire.FieldsOf(new(*order.Module), "Hdl"),
		wire.FieldsOf(new(*payment.Module), "Hdl", "WebhookHdl", "AdminHdl"),
		wire.FieldsOf(new(*promotion.Module), "AdminHandler"),
		wire.FieldsOf(new(*recon.Module), "AdminHdl"),
		InitSession,
		initGinxServer,
		InitAdminServer,
		initCronJobs,
		initMQConsumers)
	return new(App), nil
}
