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
	"errors"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/laundry/internal/order"
	"github.com/ecodeclub/laundry/internal/recon/internal/errs"
	"github.com/ecodeclub/laundry/internal/recon/internal/service"
	"github.com/gin-gonic/gin"
)

var _ ginx.Handler = &AdminHandler{}

type AdminHandler struct {
	svc service.Service
}

func NewAdminHandler(svc service.Service) *AdminHandler {
	return &AdminHandler{svc: svc}
}

func (h *AdminHandler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/recon")
	g.POST("/order", ginx.BS[OrderIDReq](h.SyncOrder))
	g.POST("/orders", ginx.S(h.SyncInProgressOrders))
	g.POST("/payments", ginx.S(h.SyncTimeoutPayments))
}

func (h *AdminHandler) PublicRoutes(_ *gin.Engine) {}

// SyncOrder 人工触发单个订单的对账
func (h *AdminHandler) SyncOrder(ctx *ginx.Context, req OrderIDReq, _ session.Session) (ginx.Result, error) {
	o, err := h.svc.SyncOrder(ctx.Request.Context(), req.OrderID)
	if errors.Is(err, order.ErrOrderNotFound) {
		return ginx.Result{Code: errs.OrderNotFound.Code, Msg: errs.OrderNotFound.Msg}, nil
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: Order{
		ID:     o.ID,
		SN:     o.SN,
		Status: string(o.Status),
		Details: slice.Map(o.Details, func(_ int, src order.OrderDetail) OrderDetail {
			return OrderDetail{ID: src.ID, MachineID: src.MachineID, Status: string(src.Status)}
		}),
	}}, nil
}

func (h *AdminHandler) SyncInProgressOrders(ctx *ginx.Context, _ session.Session) (ginx.Result, error) {
	cnt, err := h.svc.SyncInProgressOrders(ctx.Request.Context())
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: cnt}, nil
}

func (h *AdminHandler) SyncTimeoutPayments(ctx *ginx.Context, _ session.Session) (ginx.Result, error) {
	cnt, err := h.svc.SyncTimeoutPayments(ctx.Request.Context())
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: cnt}, nil
}
