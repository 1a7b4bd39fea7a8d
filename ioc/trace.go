package ioc

import (
	"time"

	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/core/elog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/zipkin"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.37.0"
)

// InitZipkinTracer 初始化 zipkin tracer
func InitZipkinTracer() *trace.TracerProvider {
	res, err := newResource()
	if err != nil {
		elog.Panic("init resource failed", elog.FieldErr(err))
	}

	otel.SetTextMapPropagator(newPropagator())

	tp, err := newTracerProvider(res)
	if err != nil {
		elog.Panic("init tracer provider failed", elog.FieldErr(err))
	}

	// otelgin 和 GORM 插件都用全局的 provider
	otel.SetTracerProvider(tp)

	return tp
}

// newResource 创建 OpenTelemetry 资源
func newResource() (*resource.Resource, error) {
	serviceName := econf.GetString("trace.zipkin.serviceName")
	serviceVersion := econf.GetString("trace.zipkin.serviceVersion")
	if serviceVersion == "" {
		serviceVersion = "v0.0.1"
	}

	return resource.Merge(
		resource.Default(),
		resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName(serviceName),
			semconv.ServiceVersion(serviceVersion),
		),
	)
}

// newTracerProvider 创建 tracer provider
func newTracerProvider(res *resource.Resource) (*trace.TracerProvider, error) {
	zipkinEndpoint := econf.GetString("trace.zipkin.endpoint")

	exporter, err := zipkin.New(zipkinEndpoint)
	if err != nil {
		return nil, err
	}

	return trace.NewTracerProvider(
		trace.WithBatcher(exporter, trace.WithBatchTimeout(time.Second)),
		trace.WithResource(res),
	), nil
}

// newPropagator 创建上下文传播器
func newPropagator() propagation.TextMapPropagator {
	return propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	)
}
