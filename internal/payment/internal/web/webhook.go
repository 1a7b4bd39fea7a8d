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
	"crypto/subtle"
	"errors"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/laundry/internal/payment/internal/repository/cache"
	"github.com/ecodeclub/laundry/internal/payment/internal/service"
	"github.com/ecodeclub/laundry/internal/payment/internal/service/provider/vnpay"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/gotomicro/ego/core/elog"
	"github.com/lithammer/shortuuid/v4"
)

var _ ginx.Handler = &WebhookHandler{}

// PartnerConfig VietQR 调用我们接口时使用的账号
type PartnerConfig struct {
	Username string
	Password string
	TokenTTL time.Duration
}

// WebhookHandler 渠道回调，应答格式由渠道规定，所以不使用 ginx.Result
type WebhookHandler struct {
	svc      service.Service
	tokens   cache.TokenCache
	partner  PartnerConfig
	validate *validator.Validate
	l        *elog.Component
}

func NewWebhookHandler(svc service.Service, tokens cache.TokenCache, partner PartnerConfig) *WebhookHandler {
	if partner.TokenTTL <= 0 {
		partner.TokenTTL = 5 * time.Minute
	}
	return &WebhookHandler{
		svc:      svc,
		tokens:   tokens,
		partner:  partner,
		validate: validator.New(),
		l:        elog.DefaultLogger,
	}
}

func (h *WebhookHandler) PrivateRoutes(_ *gin.Engine) {}

func (h *WebhookHandler) PublicRoutes(server *gin.Engine) {
	server.POST("/vnpay/ipn", h.HandleVNPayIPN)
	server.POST("/vqr/api/token_generate", h.GenerateVietQRToken)
	server.POST("/vqr/api/transaction-sync", h.HandleVietQRTransactionSync)
}

// HandleVNPayIPN 校验签名之后按照 responseCode 更新支付状态
func (h *WebhookHandler) HandleVNPayIPN(ctx *gin.Context) {
	var ipn vnpay.IPN
	if err := ctx.ShouldBindJSON(&ipn); err != nil {
		ctx.JSON(http.StatusBadRequest, VNPayIPNResp{Code: "400", Message: "invalid payload"})
		return
	}
	_, err := h.svc.HandleVNPayIPN(ctx.Request.Context(), ipn)
	switch {
	case err == nil:
		ctx.JSON(http.StatusOK, VNPayIPNResp{Code: "200", Message: "Success"})
	case errors.Is(err, service.ErrInvalidChecksum):
		h.l.Warn("VNPAY 通知签名错误", elog.String("order_code", ipn.OrderCode), elog.FieldErr(err))
		ctx.JSON(http.StatusUnauthorized, VNPayIPNResp{Code: "401", Message: "invalid checksum"})
	case errors.Is(err, service.ErrPaymentNotFound):
		ctx.JSON(http.StatusNotFound, VNPayIPNResp{Code: "404", Message: "order not found"})
	case errors.Is(err, service.ErrAmountMismatch), errors.Is(err, service.ErrProviderMismatch),
		errors.Is(err, service.ErrInvalidTransition):
		h.l.Warn("VNPAY 通知和支付不一致", elog.String("order_code", ipn.OrderCode), elog.FieldErr(err))
		ctx.JSON(http.StatusBadRequest, VNPayIPNResp{Code: "400", Message: err.Error()})
	default:
		h.l.Error("处理 VNPAY 通知失败", elog.String("order_code", ipn.OrderCode), elog.FieldErr(err))
		ctx.JSON(http.StatusInternalServerError, VNPayIPNResp{Code: "500", Message: "internal error"})
	}
}

// GenerateVietQRToken VietQR 使用 Basic 认证换取调用 transaction-sync 的令牌
func (h *WebhookHandler) GenerateVietQRToken(ctx *gin.Context) {
	username, password, ok := ctx.Request.BasicAuth()
	if !ok || !h.checkPartner(username, password) {
		ctx.AbortWithStatus(http.StatusUnauthorized)
		return
	}
	token := shortuuid.New()
	if err := h.tokens.SetPartnerToken(ctx.Request.Context(), token, h.partner.TokenTTL); err != nil {
		h.l.Error("保存 VietQR 令牌失败", elog.FieldErr(err))
		ctx.AbortWithStatus(http.StatusInternalServerError)
		return
	}
	ctx.JSON(http.StatusOK, VietQRTokenResp{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int64(h.partner.TokenTTL / time.Second),
	})
}

func (h *WebhookHandler) checkPartner(username, password string) bool {
	if h.partner.Username == "" {
		return false
	}
	u := subtle.ConstantTimeCompare([]byte(username), []byte(h.partner.Username))
	p := subtle.ConstantTimeCompare([]byte(password), []byte(h.partner.Password))
	return u&p == 1
}

// HandleVietQRTransactionSync 银行到账通知。只有入账 C 会让支付成功，出账 D 只做应答
func (h *WebhookHandler) HandleVietQRTransactionSync(ctx *gin.Context) {
	token, ok := strings.CutPrefix(ctx.GetHeader("Authorization"), "Bearer ")
	if !ok || token == "" {
		ctx.JSON(http.StatusUnauthorized, syncFailed("INVALID_TOKEN", "Invalid token"))
		return
	}
	valid, err := h.tokens.ExistsPartnerToken(ctx.Request.Context(), token)
	if err != nil {
		h.l.Error("校验 VietQR 令牌失败", elog.FieldErr(err))
		ctx.JSON(http.StatusInternalServerError, syncFailed("INTERNAL_ERROR", "Internal error"))
		return
	}
	if !valid {
		ctx.JSON(http.StatusUnauthorized, syncFailed("INVALID_TOKEN", "Invalid token"))
		return
	}

	var req TransactionSyncReq
	if err = ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, syncFailed("INVALID_PAYLOAD", "Invalid payload"))
		return
	}
	if err = h.validate.Struct(req); err != nil {
		ctx.JSON(http.StatusBadRequest, syncFailed("INVALID_PAYLOAD", err.Error()))
		return
	}
	amount, err := parseAmount(req.Amount)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, syncFailed("INVALID_AMOUNT", "Amount must be greater than 0"))
		return
	}
	if req.TransType == "C" {
		_, err = h.svc.HandleVietQRTransactionSync(ctx.Request.Context(), req.Content, amount)
	}
	switch {
	case err == nil:
		ctx.JSON(http.StatusOK, TransactionSyncResp{
			ToastMessage: "Transaction synchronized successfully",
			Object:       &TransactionSyncObject{RefTransactionID: req.TransactionID},
		})
	case errors.Is(err, service.ErrPaymentNotFound), errors.Is(err, service.ErrProviderMismatch):
		ctx.JSON(http.StatusBadRequest, syncFailed("TRANSACTION_NOT_FOUND", err.Error()))
	case errors.Is(err, service.ErrAmountMismatch):
		ctx.JSON(http.StatusBadRequest, syncFailed("INVALID_AMOUNT", err.Error()))
	case errors.Is(err, service.ErrInvalidTransition):
		ctx.JSON(http.StatusBadRequest, syncFailed("INVALID_STATUS", err.Error()))
	default:
		h.l.Error("处理 VietQR 到账通知失败",
			elog.String("transaction_id", req.TransactionID),
			elog.FieldErr(err))
		ctx.JSON(http.StatusInternalServerError, syncFailed("INTERNAL_ERROR", "Internal error"))
	}
}

// parseAmount 金额只能是正数，VND 没有小数部分
func parseAmount(s string) (int64, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, errors.New("金额必须大于 0")
	}
	f = math.Round(f)
	if f <= 0 {
		return 0, errors.New("金额必须大于 0")
	}
	// float64(math.MaxInt64) 是 2^63，已经溢出
	if f >= float64(math.MaxInt64) {
		return 0, errors.New("金额超出范围")
	}
	return int64(f), nil
}

func syncFailed(reason, msg string) TransactionSyncResp {
	return TransactionSyncResp{Error: true, ErrorReason: reason, ToastMessage: msg}
}
