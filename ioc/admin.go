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

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/laundry/internal/payment"
	"github.com/ecodeclub/laundry/internal/pkg/middleware"
	"github.com/ecodeclub/laundry/internal/promotion"
	"github.com/ecodeclub/laundry/internal/recon"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
	"github.com/gotomicro/ego/server/egin"
	"github.com/prometheus/client_golang/prometheus"
)

type AdminServer *egin.Component

func InitAdminServer(promotionHdl *promotion.AdminHandler,
	paymentHdl *payment.AdminHandler,
	reconHdl *recon.AdminHandler,
) AdminServer {
	res := egin.Load("admin").Build()
	res.Use(middleware.NewMetricsBuilder(prometheus.DefaultRegisterer, "admin").Build())
	res.Use(cors.New(cors.Config{
		ExposeHeaders:    []string{"X-Refresh-Token", "X-Access-Token"},
		AllowCredentials: true,
		AllowHeaders:     []string{"X-Timestamp", "Authorization", "Content-Type"},
		AllowOriginFunc:  allowOrigin,
	}))
	res.GET("/hello", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "hello, world!")
	})

	// 登录校验
	res.Use(session.CheckLoginMiddleware())
	res.Use(AdminPermission())
	promotionHdl.PrivateRoutes(res.Engine)
	paymentHdl.PrivateRoutes(res.Engine)
	reconHdl.PrivateRoutes(res.Engine)
	return res
}

// AdminPermission 只有运营人员才能访问
func AdminPermission() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		xctx := &ginx.Context{Context: ctx}
		sess, err := session.Get(xctx)
		if err != nil {
			ctx.AbortWithStatus(http.StatusUnauthorized)
			elog.Error("非法访问 admin 接口", elog.FieldErr(err))
			return
		}
		if sess.Claims().Get("operator").StringOrDefault("") != "true" {
			ctx.AbortWithStatus(http.StatusForbidden)
			elog.Error("非法访问 admin 接口，未设置权限", elog.Int64("uid", sess.Claims().Uid))
			return
		}
	}
}
