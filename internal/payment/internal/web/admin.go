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

package web

import (
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/laundry/internal/payment/internal/domain"
	"github.com/ecodeclub/laundry/internal/payment/internal/errs"
	"github.com/ecodeclub/laundry/internal/payment/internal/service"
	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	svc service.Service
}

func NewAdminHandler(svc service.Service) *AdminHandler {
	return &AdminHandler{svc: svc}
}

func (h *AdminHandler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/payment")
	g.POST("/status", ginx.BS[UpdateStatusReq](h.UpdateStatus))
	g.POST("/list", ginx.BS[OrderIDReq](h.ListByOrder))
	g.POST("/close", ginx.BS[PaymentIDReq](h.Close))
}

func (h *AdminHandler) PublicRoutes(_ *gin.Engine) {}

// UpdateStatus 人工处理渠道没有回调的支付，不限制渠道
func (h *AdminHandler) UpdateStatus(ctx *ginx.Context, req UpdateStatusReq, _ session.Session) (ginx.Result, error) {
	if req.TransactionCode == "" {
		return ginx.Result{Code: errs.InvalidPayment.Code, Msg: errs.InvalidPayment.Msg}, nil
	}
	p, err := h.svc.UpdateStatusByTransactionCode(ctx.Request.Context(),
		req.TransactionCode, domain.Status(req.Status), "")
	if err != nil {
		return errorResult(err, "更新支付状态失败")
	}
	return ginx.Result{Data: newPayment(p)}, nil
}

func (h *AdminHandler) ListByOrder(ctx *ginx.Context, req OrderIDReq, _ session.Session) (ginx.Result, error) {
	ps, err := h.svc.FindByOrderID(ctx.Request.Context(), req.OrderID)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: slice.Map(ps, func(_ int, src domain.Payment) Payment {
			return newPayment(src)
		}),
	}, nil
}

// Close 立刻按照超时的逻辑关闭支付
func (h *AdminHandler) Close(ctx *ginx.Context, req PaymentIDReq, _ session.Session) (ginx.Result, error) {
	p, err := h.svc.CloseTimeout(ctx.Request.Context(), req.ID)
	if err != nil {
		return errorResult(err, "关闭支付失败")
	}
	return ginx.Result{Data: newPayment(p)}, nil
}
