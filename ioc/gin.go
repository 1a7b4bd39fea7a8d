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

package ioc

import (
	"net/http"
	"strings"

	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/laundry/internal/order"
	"github.com/ecodeclub/laundry/internal/payment"
	"github.com/ecodeclub/laundry/internal/pkg/middleware"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

func initGinxServer(sp session.Provider,
	orderHdl *order.Handler,
	paymentHdl *payment.Handler,
	webhookHdl *payment.WebhookHandler,
) *egin.Component {
	session.SetDefaultProvider(sp)
	res := egin.Load("web").Build()
	res.Use(otelgin.Middleware(econf.GetString("trace.zipkin.serviceName")))
	res.Use(middleware.NewMetricsBuilder(prometheus.DefaultRegisterer, "web").Build())
	res.Use(cors.New(cors.Config{
		ExposeHeaders:    []string{"X-Refresh-Token", "X-Access-Token"},
		AllowCredentials: true,
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		AllowOriginFunc:  allowOrigin,
	}))
	res.GET("/hello", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "hello, world!")
	})
	// VNPAY 和 VietQR 的回调有自己的鉴权
	webhookHdl.PublicRoutes(res.Engine)
	orderHdl.PublicRoutes(res.Engine)
	paymentHdl.PublicRoutes(res.Engine)
	// 登录校验
	res.Use(session.CheckLoginMiddleware())
	orderHdl.PrivateRoutes(res.Engine)
	paymentHdl.PrivateRoutes(res.Engine)
	return res
}

func allowOrigin(origin string) bool {
	if strings.HasPrefix(origin, "http://localhost") {
		return true
	}
	for _, domain := range econf.GetStringSlice("cors.domains") {
		if strings.Contains(origin, domain) {
			return true
		}
	}
	return false
}
