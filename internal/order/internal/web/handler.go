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
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/laundry/internal/order/internal/domain"
	"github.com/ecodeclub/laundry/internal/order/internal/errs"
	"github.com/ecodeclub/laundry/internal/order/internal/service"
	"github.com/ecodeclub/laundry/internal/store"
	"github.com/gin-gonic/gin"
)

var _ ginx.Handler = &Handler{}

var errDuplicateRequest = errors.New("重复请求")

type Handler struct {
	svc   service.Service
	cache ecache.Cache
}

func NewHandler(svc service.Service, cache ecache.Cache) *Handler {
	return &Handler{svc: svc, cache: cache}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/order")
	g.POST("/create", ginx.BS[CreateOrderReq](h.CreateOrder))
	g.POST("/list", ginx.BS[ListOrdersReq](h.ListOrders))
	g.POST("/detail", ginx.BS[OrderSNReq](h.RetrieveOrderDetail))
}

func (h *Handler) PublicRoutes(_ *gin.Engine) {}

// CreateOrder 创建订单，价格和优惠都由服务端计算
func (h *Handler) CreateOrder(ctx *ginx.Context, req CreateOrderReq, sess session.Session) (ginx.Result, error) {
	err := h.checkRequestID(ctx.Request.Context(), req.RequestID)
	if errors.Is(err, errDuplicateRequest) {
		return ginx.Result{Code: errs.DuplicateRequest.Code, Msg: errs.DuplicateRequest.Msg}, nil
	}
	if err != nil {
		return systemErrorResult, fmt.Errorf("请求ID错误: %w", err)
	}
	order, err := h.svc.CreateOrder(ctx.Request.Context(), sess.Claims().Uid, req.StoreID, req.selections())
	if err != nil {
		return h.createOrderErrorResult(err)
	}
	return ginx.Result{Data: newOrder(order)}, nil
}

func (h *Handler) createOrderErrorResult(err error) (ginx.Result, error) {
	var unavailable *service.MachinesUnavailableError
	switch {
	case errors.As(err, &unavailable):
		return ginx.Result{
			Code: errs.MachineUnavailable.Code,
			Msg:  errs.MachineUnavailable.Msg,
			Data: MachinesUnavailable{MachineIDs: unavailable.MachineIDs},
		}, nil
	case errors.Is(err, service.ErrInvalidOrder):
		return ginx.Result{Code: errs.InvalidOrder.Code, Msg: err.Error()}, nil
	case errors.Is(err, store.ErrStoreNotFound), errors.Is(err, store.ErrStoreInactive):
		return ginx.Result{Code: errs.StoreUnavailable.Code, Msg: errs.StoreUnavailable.Msg}, nil
	default:
		return systemErrorResult, fmt.Errorf("创建订单失败: %w", err)
	}
}

func (h *Handler) checkRequestID(ctx context.Context, requestID string) error {
	if requestID == "" {
		return fmt.Errorf("请求ID为空")
	}
	key := h.createOrderRequestKey(requestID)
	ok, err := h.cache.SetNX(ctx, key, requestID, 24*time.Hour)
	if err != nil {
		return fmt.Errorf("缓存请求ID失败: %w", err)
	}
	if !ok {
		return errDuplicateRequest
	}
	return nil
}

func (h *Handler) createOrderRequestKey(requestID string) string {
	return fmt.Sprintf("order:create:%s", requestID)
}

// ListOrders 分页查询用户订单
func (h *Handler) ListOrders(ctx *ginx.Context, req ListOrdersReq, sess session.Session) (ginx.Result, error) {
	if req.Limit <= 0 || req.Limit > 100 {
		req.Limit = 20
	}
	orders, total, err := h.svc.ListByUser(ctx.Request.Context(), sess.Claims().Uid, req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: ListOrdersResp{
			Total: total,
			Orders: slice.Map(orders, func(_ int, src domain.Order) Order {
				return newOrder(src)
			}),
		},
	}, nil
}

// RetrieveOrderDetail 查看订单详情
func (h *Handler) RetrieveOrderDetail(ctx *ginx.Context, req OrderSNReq, sess session.Session) (ginx.Result, error) {
	order, res, err := h.findUserOrder(ctx.Request.Context(), sess.Claims().Uid, req.SN)
	if err != nil || res.Code != 0 {
		return res, err
	}
	return ginx.Result{Data: newOrder(order)}, nil
}

// findUserOrder 别人的订单也当作不存在
func (h *Handler) findUserOrder(ctx context.Context, uid int64, sn string) (domain.Order, ginx.Result, error) {
	notFound := ginx.Result{Code: errs.OrderNotFound.Code, Msg: errs.OrderNotFound.Msg}
	order, err := h.svc.FindBySN(ctx, sn)
	if errors.Is(err, service.ErrOrderNotFound) {
		return domain.Order{}, notFound, nil
	}
	if err != nil {
		return domain.Order{}, systemErrorResult, fmt.Errorf("查找订单失败: %w", err)
	}
	if order.UserID != uid {
		return domain.Order{}, notFound, nil
	}
	return order, ginx.Result{}, nil
}
