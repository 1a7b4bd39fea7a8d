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

package provider

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ecodeclub/laundry/internal/payment/internal/domain"
	"github.com/prometheus/client_golang/prometheus"
)

//go:generate mockgen -source=./provider.go -package=providermocks -destination=./mocks/provider.mock.go -typed Provider

var (
	ErrProviderNotSupported = errors.New("不支持的支付渠道")
	ErrMethodNotSupported   = errors.New("支付渠道不支持该支付方式")
	ErrInvalidMethodDetails = errors.New("门店支付方式配置不完整")
	// ErrQueryNotSupported 渠道没有查询接口
	ErrQueryNotSupported = errors.New("支付渠道不支持查询交易状态")
)

// Provider 第三方支付渠道
type Provider interface {
	Name() domain.Provider
	// Validate 校验门店为这个渠道配置的支付方式
	Validate(method domain.Method, details map[string]string) error
	// GenerateDetails 向渠道下单，返回给用户展示的支付详情
	GenerateDetails(ctx context.Context, p domain.Payment) (Result, error)
	// QueryStatus 主动查询交易状态，渠道还没有结果的时候返回 WAITING_FOR_PURCHASE
	QueryStatus(ctx context.Context, p domain.Payment) (domain.Status, error)
}

type Result struct {
	ProviderTransactionID string
	Details               map[string]string
}

type Registry struct {
	providers map[domain.Provider]Provider
}

func NewRegistry(ps ...Provider) *Registry {
	r := &Registry{providers: make(map[domain.Provider]Provider, len(ps))}
	for _, p := range ps {
		r.providers[p.Name()] = p
	}
	return r
}

func (r *Registry) Get(name domain.Provider) (Provider, error) {
	p, ok := r.providers[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrProviderNotSupported, name)
	}
	return p, nil
}

var requestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
	Namespace: "laundry",
	Subsystem: "payment",
	Name:      "provider_requests_total",
	Help:      "Total number of requests sent to payment providers",
}, []string{"provider", "method", "result"})

var requestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
	Namespace: "laundry",
	Subsystem: "payment",
	Name:      "provider_request_duration_seconds",
	Help:      "Duration of requests sent to payment providers",
	Buckets:   prometheus.DefBuckets,
}, []string{"provider", "method"})

func init() {
	prometheus.MustRegister(requestsTotal, requestDuration)
}

// WithMetrics 统计每个渠道调用的次数、结果和耗时
func WithMetrics(p Provider) Provider {
	return &metricsProvider{Provider: p}
}

type metricsProvider struct {
	Provider
}

func (m *metricsProvider) GenerateDetails(ctx context.Context, p domain.Payment) (Result, error) {
	start := time.Now()
	res, err := m.Provider.GenerateDetails(ctx, p)
	m.observe("generate_details", start, err)
	return res, err
}

func (m *metricsProvider) QueryStatus(ctx context.Context, p domain.Payment) (domain.Status, error) {
	start := time.Now()
	status, err := m.Provider.QueryStatus(ctx, p)
	if !errors.Is(err, ErrQueryNotSupported) {
		m.observe("query_status", start, err)
	}
	return status, err
}

func (m *metricsProvider) observe(method string, start time.Time, err error) {
	name := string(m.Name())
	result := "success"
	if err != nil {
		result = "error"
	}
	requestsTotal.WithLabelValues(name, method, result).Inc()
	requestDuration.WithLabelValues(name, method).Observe(time.Since(start).Seconds())
}
