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

package mqx

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ecodeclub/mq-api"
)

type Producer[T any] interface {
	Produce(ctx context.Context, evt T) error
}

// GeneralProducer 以 JSON 编码发送消息，keyFunc 不为空时消息带上 key，
// 同一个 key 的消息会进入同一个分区
type GeneralProducer[T any] struct {
	producer mq.Producer
	topic    string
	keyFunc  func(evt T) string
}

func NewGeneralProducer[T any](q mq.MQ, topic string, keyFunc func(evt T) string) (*GeneralProducer[T], error) {
	p, err := q.Producer(topic)
	if err != nil {
		return nil, fmt.Errorf("创建 topic=%s 的生产者失败: %w", topic, err)
	}
	return &GeneralProducer[T]{
		producer: p,
		topic:    topic,
		keyFunc:  keyFunc,
	}, nil
}

func (p *GeneralProducer[T]) Produce(ctx context.Context, evt T) error {
	data, err := json.Marshal(&evt)
	if err != nil {
		return fmt.Errorf("序列化失败: %w", err)
	}
	msg := &mq.Message{Value: data}
	if p.keyFunc != nil {
		msg.Key = []byte(p.keyFunc(evt))
	}
	_, err = p.producer.Produce(ctx, msg)
	if err != nil {
		return fmt.Errorf("向topic=%s发送event=%#v失败: %w", p.topic, evt, err)
	}
	return nil
}

// Decode 取出一条消息并反序列化
func Decode[T any](ctx context.Context, consumer mq.Consumer) (T, error) {
	var evt T
	msg, err := consumer.Consume(ctx)
	if err != nil {
		return evt, fmt.Errorf("获取消息失败: %w", err)
	}
	if err = json.Unmarshal(msg.Value, &evt); err != nil {
		return evt, fmt.Errorf("解析消息失败: %w", err)
	}
	return evt, nil
}
