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

	"github.com/ecodeclub/laundry/internal/machine/internal/domain"
	"github.com/ecodeclub/laundry/internal/machine/internal/event"
	"github.com/ecodeclub/laundry/internal/machine/internal/service"
	"github.com/ecodeclub/laundry/internal/pkg/mqx"
	"github.com/ecodeclub/mq-api"
	"github.com/gotomicro/ego/core/elog"
)

type MachineStateConsumer struct {
	svc      service.Service
	consumer mq.Consumer
	logger   *elog.Component
}

func NewMachineStateConsumer(svc service.Service, q mq.MQ) (*MachineStateConsumer, error) {
	const groupID = "machine"
	c, err := q.Consumer(event.MachineStateEventTopic, groupID)
	if err != nil {
		return nil, err
	}
	return &MachineStateConsumer{
		svc:      svc,
		consumer: c,
		logger:   elog.DefaultLogger,
	}, nil
}

func (c *MachineStateConsumer) Start(ctx context.Context) {
	go func() {
		for {
			er := c.Consume(ctx)
			if errors.Is(er, context.Canceled) {
				return
			}
			if er != nil {
				c.logger.Error("消费机器状态事件失败", elog.FieldErr(er))
			}
		}
	}()
}

func (c *MachineStateConsumer) Consume(ctx context.Context) error {
	evt, err := mqx.Decode[event.MachineStateEvent](ctx, c.consumer)
	if err != nil {
		return err
	}
	return c.svc.HandleStateEvent(ctx, evt.ControllerID, evt.RelayNo, domain.MachineStatus(evt.Status))
}
