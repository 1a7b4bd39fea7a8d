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

package consumer

import (
	"context"
	"errors"

	"github.com/ecodeclub/laundry/internal/order/internal/domain"
	"github.com/ecodeclub/laundry/internal/order/internal/service"
	"github.com/ecodeclub/laundry/internal/pkg/mqx"
	"github.com/ecodeclub/mq-api"
	"github.com/gotomicro/ego/core/elog"
)

// PaymentEventConsumer 支付成功之后启动订单中的机器。
// 启动失败订单停留在 PAYMENT_SUCCESS，由对账任务重试
type PaymentEventConsumer struct {
	svc      service.Service
	consumer mq.Consumer
	logger   *elog.Component
}

func NewPaymentEventConsumer(svc service.Service, q mq.MQ) (*PaymentEventConsumer, error) {
	const groupID = "order"
	c, err := q.Consumer(PaymentEventTopic, groupID)
	if err != nil {
		return nil, err
	}
	return &PaymentEventConsumer{
		svc:      svc,
		consumer: c,
		logger:   elog.DefaultLogger,
	}, nil
}

func (c *PaymentEventConsumer) Start(ctx context.Context) {
	go func() {
		for {
			er := c.Consume(ctx)
			if errors.Is(er, context.Canceled) {
				return
			}
			if er != nil {
				c.logger.Error("消费支付事件失败", elog.FieldErr(er))
			}
		}
	}()
}

func (c *PaymentEventConsumer) Consume(ctx context.Context) error {
	evt, err := mqx.Decode[PaymentEvent](ctx, c.consumer)
	if err != nil {
		return err
	}
	return c.handle(ctx, evt)
}

func (c *PaymentEventConsumer) handle(ctx context.Context, evt PaymentEvent) error {
	if evt.Status != paymentStatusSuccess {
		return nil
	}
	o, err := c.svc.FindByID(ctx, evt.OrderID)
	if err != nil {
		return err
	}
	if o.Status != domain.StatusPaymentSuccess {
		c.logger.Warn("订单不是支付成功状态, 忽略支付事件",
			elog.Int64("order_id", o.ID),
			elog.String("status", string(o.Status)))
		return nil
	}
	return c.svc.UpdateStatus(ctx, o.ID, domain.StatusInProgress)
}
