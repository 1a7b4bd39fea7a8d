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

package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

type MetricsBuilder struct {
	summaryVec *prometheus.SummaryVec
	counterVec *prometheus.CounterVec
}

// NewMetricsBuilder server 用于区分 web 和 admin
func NewMetricsBuilder(reg prometheus.Registerer, server string) *MetricsBuilder {
	labels := prometheus.Labels{"server": server}
	summaryVec := prometheus.NewSummaryVec(
		prometheus.SummaryOpts{
			Namespace:   "laundry",
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			ConstLabels: labels,
			Objectives: map[float64]float64{
				0.5:  0.05,
				0.9:  0.01,
				0.99: 0.001,
			},
		},
		[]string{"method", "path", "status_code"},
	)
	counterVec := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace:   "laundry",
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: labels,
		},
		[]string{"method", "path", "status_code"},
	)
	reg.MustRegister(summaryVec, counterVec)
	return &MetricsBuilder{
		summaryVec: summaryVec,
		counterVec: counterVec,
	}
}

func (a *MetricsBuilder) Build() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		ctx.Next()

		path := ctx.FullPath()
		if path == "" {
			// 没有匹配上路由的统一归类，防止标签爆炸
			path = "unknown"
		}
		statusCode := strconv.Itoa(ctx.Writer.Status())
		a.summaryVec.WithLabelValues(ctx.Request.Method, path, statusCode).Observe(time.Since(start).Seconds())
		a.counterVec.WithLabelValues(ctx.Request.Method, path, statusCode).Inc()
	}
}
