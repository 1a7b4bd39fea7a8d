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
	"encoding/base64"
	"errors"
	"fmt"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/laundry/internal/order"
	"github.com/ecodeclub/laundry/internal/payment/internal/domain"
	"github.com/ecodeclub/laundry/internal/payment/internal/errs"
	"github.com/ecodeclub/laundry/internal/payment/internal/service"
	"github.com/ecodeclub/laundry/internal/store"
	"github.com/gin-gonic/gin"
)

var _ ginx.Handler = &Handler{}

const defaultQRCodeSize = 256

type Handler struct {
	svc service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/payment")
	g.POST("/initialize", ginx.BS[InitializeReq](h.Initialize))
	g.POST("/detail", ginx.BS[PaymentIDReq](h.RetrievePaymentDetail))
	g.POST("/list", ginx.BS[OrderIDReq](h.ListByOrder))
	g.POST("/retry", ginx.BS[PaymentIDReq](h.Retry))
	g.POST("/qr", ginx.BS[QRCodeReq](h.QRCode))
	// 取消订单要一起关闭订单的支付
	server.POST("/order/cancel", ginx.BS[OrderSNReq](h.CancelOrder))
}

func (h *Handler) PublicRoutes(_ *gin.Engine) {}

// Initialize 为自己的订单发起支付，支付详情异步生成，前端轮询 /payment/detail
func (h *Handler) Initialize(ctx *ginx.Context, req InitializeReq, sess session.Session) (ginx.Result, error) {
	if req.OrderID <= 0 || req.Provider == "" || req.Method == "" {
		return ginx.Result{Code: errs.InvalidPayment.Code, Msg: errs.InvalidPayment.Msg}, nil
	}
	p, err := h.svc.Initialize(ctx.Request.Context(), service.InitializeRequest{
		UserID:   sess.Claims().Uid,
		OrderID:  req.OrderID,
		Amount:   req.Amount,
		Provider: domain.Provider(req.Provider),
		Method:   domain.Method(req.Method),
	})
	if err != nil {
		return errorResult(err, "发起支付失败")
	}
	return ginx.Result{Data: newPayment(p)}, nil
}

func (h *Handler) RetrievePaymentDetail(ctx *ginx.Context, req PaymentIDReq, sess session.Session) (ginx.Result, error) {
	p, err := h.findUserPayment(ctx, sess.Claims().Uid, req.ID)
	if err != nil {
		return errorResult(err, "查询支付失败")
	}
	return ginx.Result{Data: newPayment(p)}, nil
}

// ListByOrder 订单的全部支付，包括失败和取消的
func (h *Handler) ListByOrder(ctx *ginx.Context, req OrderIDReq, sess session.Session) (ginx.Result, error) {
	ps, err := h.svc.FindByOrderID(ctx.Request.Context(), req.OrderID)
	if err != nil {
		return systemErrorResult, err
	}
	uid := sess.Claims().Uid
	ps = slice.FilterMap(ps, func(_ int, src domain.Payment) (domain.Payment, bool) {
		return src, src.UserID == uid
	})
	return ginx.Result{
		Data: slice.Map(ps, func(_ int, src domain.Payment) Payment {
			return newPayment(src)
		}),
	}, nil
}

func (h *Handler) Retry(ctx *ginx.Context, req PaymentIDReq, sess session.Session) (ginx.Result, error) {
	p, err := h.svc.Retry(ctx.Request.Context(), sess.Claims().Uid, req.ID)
	if err != nil {
		return errorResult(err, "重新支付失败")
	}
	return ginx.Result{Data: newPayment(p)}, nil
}

// QRCode 把支付的二维码内容渲染成 PNG
func (h *Handler) QRCode(ctx *ginx.Context, req QRCodeReq, sess session.Session) (ginx.Result, error) {
	if _, err := h.findUserPayment(ctx, sess.Claims().Uid, req.ID); err != nil {
		return errorResult(err, "查询支付失败")
	}
	size := req.Size
	if size <= 0 || size > 1024 {
		size = defaultQRCodeSize
	}
	png, err := h.svc.QRCode(ctx.Request.Context(), req.ID, size)
	if err != nil {
		return errorResult(err, "生成二维码失败")
	}
	return ginx.Result{
		Data: QRCode{Image: "data:image/png;base64," + base64.StdEncoding.EncodeToString(png)},
	}, nil
}

func (h *Handler) findUserPayment(ctx *ginx.Context, uid, id int64) (domain.Payment, error) {
	p, err := h.svc.FindByID(ctx.Request.Context(), id)
	if err != nil {
		return domain.Payment{}, err
	}
	if p.UserID != uid {
		return domain.Payment{}, fmt.Errorf("%w: 用户 %d 没有支付 %d", service.ErrPaymentNotFound, uid, id)
	}
	return p, nil
}

func (h *Handler) CancelOrder(ctx *ginx.Context, req OrderSNReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.CancelOrder(ctx.Request.Context(), sess.Claims().Uid, req.SN)
	if errors.Is(err, order.ErrInvalidTransition) {
		return ginx.Result{Code: errs.OrderNotCancellable.Code, Msg: errs.OrderNotCancellable.Msg}, nil
	}
	if err != nil {
		return errorResult(err, "取消订单失败")
	}
	return ginx.Result{Msg: "OK"}, nil
}

func errorResult(err error, msg string) (ginx.Result, error) {
	var code errs.ErrorCode
	switch {
	case errors.Is(err, service.ErrPaymentNotFound):
		code = errs.PaymentNotFound
	case errors.Is(err, order.ErrOrderNotFound):
		code = errs.OrderNotFound
	case errors.Is(err, service.ErrInvalidTransition), errors.Is(err, service.ErrInvalidStatus),
		errors.Is(err, service.ErrProviderMismatch):
		code = errs.InvalidTransition
	case errors.Is(err, service.ErrOrderNotPayable):
		code = errs.OrderNotPayable
	case errors.Is(err, service.ErrAmountMismatch):
		code = errs.AmountMismatch
	case errors.Is(err, service.ErrActivePaymentExists):
		code = errs.ActivePaymentExists
	case errors.Is(err, service.ErrPaymentMethodNotFound), errors.Is(err, service.ErrProviderNotSupported),
		errors.Is(err, service.ErrMethodNotSupported), errors.Is(err, service.ErrInvalidMethodDetails),
		errors.Is(err, store.ErrStoreNotFound), errors.Is(err, store.ErrStoreInactive):
		code = errs.PaymentMethodUnavailable
	case errors.Is(err, service.ErrProviderFailed):
		code = errs.ProviderFailed
	case errors.Is(err, service.ErrQRCodeNotReady):
		code = errs.QRCodeNotReady
	case errors.Is(err, service.ErrPaymentInProgress):
		code = errs.PaymentInProgress
	default:
		return systemErrorResult, fmt.Errorf("%s: %w", msg, err)
	}
	return ginx.Result{Code: code.Code, Msg: code.Msg}, nil
}
