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

	"github.com/ecodeclub/laundry/internal/payment/internal/event"
	"github.com/ecodeclub/laundry/internal/payment/internal/service"
	"github.com/ecodeclub/laundry/internal/pkg/mqx"
	"github.com/ecodeclub/mq-api"
	"github.com/gotomicro/ego/core/elog"
)

// PaymentDetailTaskConsumer 异步向渠道获取支付详情。
// 失败的支付已经被标记为 FAILED，这里只记录日志
type PaymentDetailTaskConsumer struct {
	svc      service.Service
	consumer mq.Consumer
	logger   *elog.Component
}

func NewPaymentDetailTaskConsumer(svc service.Service, q mq.MQ) (*PaymentDetailTaskConsumer, error) {
	const groupID = "payment"
	c, err := q.Consumer(event.PaymentDetailTaskTopic, groupID)
	if err != nil {
		return nil, err
	}
	return &PaymentDetailTaskConsumer{
		svc:      svc,
		consumer: c,
		logger:   elog.DefaultLogger,
	}, nil
}

func (c *PaymentDetailTaskConsumer) Start(ctx context.Context) {
	go func() {
		for {
			er := c.Consume(ctx)
			if errors.Is(er, context.Canceled) {
				return
			}
			if er != nil {
				c.logger.Error("生成支付详情失败", elog.FieldErr(er))
			}
		}
	}()
}

func (c *PaymentDetailTaskConsumer) Consume(ctx context.Context) error {
	task, err := mqx.Decode[event.PaymentDetailTask](ctx, c.consumer)
	if err != nil {
		return err
	}
	p, err := c.svc.GeneratePaymentDetails(ctx, task.PaymentID)
	if err != nil {
		return err
	}
	c.logger.Info("生成支付详情成功",
		elog.Int64("payment_id", p.ID),
		elog.String("status", string(p.Status)))
	return nil
}
