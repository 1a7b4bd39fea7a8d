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

package event

import (
	"strconv"

	"github.com/ecodeclub/laundry/internal/pkg/mqx"
	"github.com/ecodeclub/mq-api"
)

//go:generate mockgen -source=./producer.go -package=evtmocks -destination=mocks/producer.mock.go -typed PaymentEventProducer,PaymentDetailTaskProducer
type PaymentEventProducer mqx.Producer[PaymentEvent]

// NewPaymentEventProducer 同一个订单的事件按顺序投递
func NewPaymentEventProducer(q mq.MQ) (PaymentEventProducer, error) {
	p, err := mqx.NewGeneralProducer[PaymentEvent](q, PaymentEventTopic, func(evt PaymentEvent) string {
		return strconv.FormatInt(evt.OrderID, 10)
	})
	if err != nil {
		return nil, err
	}
	return p, nil
}

type PaymentDetailTaskProducer mqx.Producer[PaymentDetailTask]

func NewPaymentDetailTaskProducer(q mq.MQ) (PaymentDetailTaskProducer, error) {
	p, err := mqx.NewGeneralProducer[PaymentDetailTask](q, PaymentDetailTaskTopic, nil)
	if err != nil {
		return nil, err
	}
	return p, nil
}
