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

package testioc

import (
	"context"
	"time"

	"github.com/ecodeclub/laundry/internal/pkg/mqx"
	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/mq-api/memory"
)

// ConsumeTimeout 内存 MQ 的消费者每秒拉取一次，需要覆盖好几次拉取
const ConsumeTimeout = 5 * time.Second

var Topics = []string{
	"payment_events",
	"payment_detail_tasks",
	"machine_commands",
	"machine_state_events",
}

// NewMQ 内存实现，每次调用都是一个全新的 MQ，和线上一样带上链路
func NewMQ() mq.MQ {
	q := memory.NewMQ()
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	for _, topic := range Topics {
		if err := q.CreateTopic(ctx, topic, 1); err != nil {
			panic(err)
		}
	}
	return mqx.NewTraceMq(q)
}
