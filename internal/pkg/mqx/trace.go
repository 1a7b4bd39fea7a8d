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

	"github.com/ecodeclub/mq-api"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "github.com/ecodeclub/laundry/internal/pkg/mqx"

// TraceMq 发送的时候把链路写进消息头，消费的时候从消息头恢复。
// 支付回调、支付事件、机器指令可以串成同一条链路
type TraceMq struct {
	mq.MQ
	tracer trace.Tracer
}

func NewTraceMq(q mq.MQ) *TraceMq {
	return &TraceMq{MQ: q, tracer: otel.GetTracerProvider().Tracer(instrumentationName)}
}

func (t *TraceMq) Producer(topic string) (mq.Producer, error) {
	pro, err := t.MQ.Producer(topic)
	if err != nil {
		return nil, err
	}
	return &TraceProducer{Producer: pro, topic: topic, tracer: t.tracer}, nil
}

func (t *TraceMq) Consumer(topic string, groupID string) (mq.Consumer, error) {
	c, err := t.MQ.Consumer(topic, groupID)
	if err != nil {
		return nil, err
	}
	return &TraceConsumer{Consumer: c, topic: topic, groupID: groupID, tracer: t.tracer}, nil
}

type TraceProducer struct {
	mq.Producer
	topic  string
	tracer trace.Tracer
}

func (t *TraceProducer) Produce(ctx context.Context, m *mq.Message) (*mq.ProducerResult, error) {
	ctx, span := t.start(ctx, m)
	defer span.End()
	res, err := t.Producer.Produce(ctx, m)
	return res, finish(span, err)
}

func (t *TraceProducer) ProduceWithPartition(ctx context.Context, m *mq.Message, partition int) (*mq.ProducerResult, error) {
	ctx, span := t.start(ctx, m)
	defer span.End()
	span.SetAttributes(attribute.Int("messaging.destination.partition.id", partition))
	res, err := t.Producer.ProduceWithPartition(ctx, m, partition)
	return res, finish(span, err)
}

func (t *TraceProducer) start(ctx context.Context, m *mq.Message) (context.Context, trace.Span) {
	ctx, span := t.tracer.Start(ctx, t.topic+" publish", trace.WithSpanKind(trace.SpanKindProducer))
	span.SetAttributes(messageAttributes(t.topic, m, "publish")...)
	if m != nil {
		if m.Header == nil {
			m.Header = mq.Header{}
		}
		otel.GetTextMapPropagator().Inject(ctx, propagation.MapCarrier(m.Header))
	}
	return ctx, span
}

// TraceConsumer 只记录收到消息这个动作，处理消息的耗时算在业务自己的 span 里面
type TraceConsumer struct {
	mq.Consumer
	topic   string
	groupID string
	tracer  trace.Tracer
}

func (t *TraceConsumer) Consume(ctx context.Context) (*mq.Message, error) {
	m, err := t.Consumer.Consume(ctx)
	if err != nil {
		return nil, err
	}
	t.record(ctx, m)
	return m, nil
}

func (t *TraceConsumer) ConsumeChan(ctx context.Context) (<-chan *mq.Message, error) {
	ch, err := t.Consumer.ConsumeChan(ctx)
	if err != nil {
		return nil, err
	}
	out := make(chan *mq.Message)
	go func() {
		defer close(out)
		for m := range ch {
			t.record(ctx, m)
			select {
			case out <- m:
			case <-ctx.Done():
				return
			}
		}
	}()
	return out, nil
}

func (t *TraceConsumer) record(ctx context.Context, m *mq.Message) {
	if m != nil && m.Header != nil {
		ctx = otel.GetTextMapPropagator().Extract(ctx, propagation.MapCarrier(m.Header))
	}
	_, span := t.tracer.Start(ctx, t.topic+" receive", trace.WithSpanKind(trace.SpanKindConsumer))
	span.SetAttributes(messageAttributes(t.topic, m, "receive")...)
	span.SetAttributes(attribute.String("messaging.consumer.group.name", t.groupID))
	span.End()
}

func finish(span trace.Span, err error) error {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	span.SetStatus(codes.Ok, "")
	return nil
}

func messageAttributes(topic string, m *mq.Message, operation string) []attribute.KeyValue {
	attrs := []attribute.KeyValue{
		attribute.String("messaging.system", "kafka"),
		attribute.String("messaging.operation", operation),
		attribute.String("messaging.destination.name", topic),
	}
	if m == nil {
		return attrs
	}
	// key 是订单 ID 或者机器 ID
	if len(m.Key) > 0 {
		attrs = append(attrs, attribute.String("messaging.kafka.message.key", string(m.Key)))
	}
	return append(attrs, attribute.Int("messaging.message.body.size", len(m.Value)))
}
