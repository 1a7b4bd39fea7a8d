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
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ecodeclub/laundry/internal/payment/internal/domain"
	"github.com/ecodeclub/laundry/internal/payment/internal/repository/cache"
	"github.com/ecodeclub/laundry/internal/payment/internal/service"
	"github.com/ecodeclub/laundry/internal/payment/internal/service/provider/vnpay"
	paymentmocks "github.com/ecodeclub/laundry/internal/payment/mocks"
	testioc "github.com/ecodeclub/laundry/internal/test/ioc"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var partner = PartnerConfig{Username: "vietqr", Password: "p@ss", TokenTTL: time.Minute}

func newWebhookServer(t *testing.T, svc service.Service) (*gin.Engine, cache.TokenCache) {
	gin.SetMode(gin.TestMode)
	ec, _ := testioc.NewCache(t)
	tokens := cache.NewTokenCache(ec)
	server := gin.New()
	NewWebhookHandler(svc, tokens, partner).PublicRoutes(server)
	return server, tokens
}

func decode[T any](t *testing.T, recorder *httptest.ResponseRecorder) T {
	var res T
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &res))
	return res
}

func TestWebhookHandler_HandleVNPayIPN(t *testing.T) {
	ipn := vnpay.IPN{
		MerchantCode: "M01",
		MethodCode:   vnpay.MethodCodeCard,
		OrderCode:    "ABCD1234",
		Amount:       260,
		ResponseCode: "200",
		Checksum:     "c2lnbmF0dXJl",
	}
	testCases := []struct {
		name     string
		mock     func(svc *paymentmocks.MockService)
		body     any
		wantCode int
		wantResp VNPayIPNResp
	}{
		{
			name: "支付成功",
			mock: func(svc *paymentmocks.MockService) {
				svc.EXPECT().HandleVNPayIPN(gomock.Any(), ipn).
					Return(domain.Payment{ID: 3, Status: domain.StatusSuccess}, nil)
			},
			body:     ipn,
			wantCode: http.StatusOK,
			wantResp: VNPayIPNResp{Code: "200", Message: "Success"},
		},
		{
			name:     "缺少字段",
			mock:     func(svc *paymentmocks.MockService) {},
			body:     map[string]any{"orderCode": "ABCD1234"},
			wantCode: http.StatusBadRequest,
			wantResp: VNPayIPNResp{Code: "400", Message: "invalid payload"},
		},
		{
			name: "签名错误",
			mock: func(svc *paymentmocks.MockService) {
				svc.EXPECT().HandleVNPayIPN(gomock.Any(), ipn).Return(domain.Payment{}, service.ErrInvalidChecksum)
			},
			body:     ipn,
			wantCode: http.StatusUnauthorized,
			wantResp: VNPayIPNResp{Code: "401", Message: "invalid checksum"},
		},
		{
			name: "支付不存在",
			mock: func(svc *paymentmocks.MockService) {
				svc.EXPECT().HandleVNPayIPN(gomock.Any(), ipn).
					Return(domain.Payment{}, fmt.Errorf("%w: 交易码 ABCD1234", service.ErrPaymentNotFound))
			},
			body:     ipn,
			wantCode: http.StatusNotFound,
			wantResp: VNPayIPNResp{Code: "404", Message: "order not found"},
		},
		{
			name: "系统错误",
			mock: func(svc *paymentmocks.MockService) {
				svc.EXPECT().HandleVNPayIPN(gomock.Any(), ipn).Return(domain.Payment{}, errors.New("数据库错误"))
			},
			body:     ipn,
			wantCode: http.StatusInternalServerError,
			wantResp: VNPayIPNResp{Code: "500", Message: "internal error"},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc := paymentmocks.NewMockService(ctrl)
			tc.mock(svc)
			server, _ := newWebhookServer(t, svc)

			recorder := httptest.NewRecorder()
			server.ServeHTTP(recorder, post(t, "/vnpay/ipn", tc.body))
			require.Equal(t, tc.wantCode, recorder.Code)
			assert.Equal(t, tc.wantResp, decode[VNPayIPNResp](t, recorder))
		})
	}
}

func TestWebhookHandler_GenerateVietQRToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	server, tokens := newWebhookServer(t, paymentmocks.NewMockService(ctrl))

	req := post(t, "/vqr/api/token_generate", nil)
	req.SetBasicAuth("vietqr", "wrong")
	recorder := httptest.NewRecorder()
	server.ServeHTTP(recorder, req)
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)

	recorder = httptest.NewRecorder()
	server.ServeHTTP(recorder, post(t, "/vqr/api/token_generate", nil))
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)

	req = post(t, "/vqr/api/token_generate", nil)
	req.SetBasicAuth(partner.Username, partner.Password)
	recorder = httptest.NewRecorder()
	server.ServeHTTP(recorder, req)
	require.Equal(t, http.StatusOK, recorder.Code)
	res := decode[VietQRTokenResp](t, recorder)
	assert.Equal(t, "Bearer", res.TokenType)
	assert.Equal(t, int64(60), res.ExpiresIn)
	require.NotEmpty(t, res.AccessToken)
	ok, err := tokens.ExistsPartnerToken(context.Background(), res.AccessToken)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestWebhookHandler_HandleVietQRTransactionSync(t *testing.T) {
	credit := TransactionSyncReq{
		BankAccount:   "0123456789",
		Amount:        "260",
		TransType:     "C",
		Content:       "TT ABCD1234 giat say",
		TransactionID: "FT2601",
	}
	testCases := []struct {
		name     string
		mock     func(svc *paymentmocks.MockService)
		token    string
		body     func() TransactionSyncReq
		wantCode int
		wantResp TransactionSyncResp
	}{
		{
			name: "入账成功",
			mock: func(svc *paymentmocks.MockService) {
				svc.EXPECT().HandleVietQRTransactionSync(gomock.Any(), credit.Content, int64(260)).
					Return(domain.Payment{ID: 3, Status: domain.StatusSuccess}, nil)
			},
			body:     func() TransactionSyncReq { return credit },
			wantCode: http.StatusOK,
			wantResp: TransactionSyncResp{
				ToastMessage: "Transaction synchronized successfully",
				Object:       &TransactionSyncObject{RefTransactionID: "FT2601"},
			},
		},
		{
			name: "出账只应答",
			mock: func(svc *paymentmocks.MockService) {},
			body: func() TransactionSyncReq {
				req := credit
				req.TransType = "D"
				return req
			},
			wantCode: http.StatusOK,
			wantResp: TransactionSyncResp{
				ToastMessage: "Transaction synchronized successfully",
				Object:       &TransactionSyncObject{RefTransactionID: "FT2601"},
			},
		},
		{
			name:     "令牌无效",
			mock:     func(svc *paymentmocks.MockService) {},
			token:    "unknown",
			body:     func() TransactionSyncReq { return credit },
			wantCode: http.StatusUnauthorized,
			wantResp: syncFailed("INVALID_TOKEN", "Invalid token"),
		},
		{
			name: "金额为 0",
			mock: func(svc *paymentmocks.MockService) {},
			body: func() TransactionSyncReq {
				req := credit
				req.Amount = "0"
				return req
			},
			wantCode: http.StatusBadRequest,
			wantResp: syncFailed("INVALID_AMOUNT", "Amount must be greater than 0"),
		},
		{
			name: "金额溢出",
			mock: func(svc *paymentmocks.MockService) {},
			body: func() TransactionSyncReq {
				req := credit
				req.Amount = "1e19"
				return req
			},
			wantCode: http.StatusBadRequest,
			wantResp: syncFailed("INVALID_AMOUNT", "Amount must be greater than 0"),
		},
		{
			name: "支付不存在",
			mock: func(svc *paymentmocks.MockService) {
				svc.EXPECT().HandleVietQRTransactionSync(gomock.Any(), credit.Content, int64(260)).
					Return(domain.Payment{}, service.ErrPaymentNotFound)
			},
			body:     func() TransactionSyncReq { return credit },
			wantCode: http.StatusBadRequest,
			wantResp: syncFailed("TRANSACTION_NOT_FOUND", service.ErrPaymentNotFound.Error()),
		},
		{
			name: "到账金额不一致",
			mock: func(svc *paymentmocks.MockService) {
				svc.EXPECT().HandleVietQRTransactionSync(gomock.Any(), credit.Content, int64(260)).
					Return(domain.Payment{}, service.ErrAmountMismatch)
			},
			body:     func() TransactionSyncReq { return credit },
			wantCode: http.StatusBadRequest,
			wantResp: syncFailed("INVALID_AMOUNT", service.ErrAmountMismatch.Error()),
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc := paymentmocks.NewMockService(ctrl)
			tc.mock(svc)
			server, tokens := newWebhookServer(t, svc)
			token := tc.token
			if token == "" {
				token = "partner-token"
				require.NoError(t, tokens.SetPartnerToken(context.Background(), token, time.Minute))
			}

			req := post(t, "/vqr/api/transaction-sync", tc.body())
			req.Header.Set("Authorization", "Bearer "+token)
			recorder := httptest.NewRecorder()
			server.ServeHTTP(recorder, req)
			require.Equal(t, tc.wantCode, recorder.Code)
			assert.Equal(t, tc.wantResp, decode[TransactionSyncResp](t, recorder))
		})
	}
}

func TestWebhookHandler_TransactionSyncInvalidPayload(t *testing.T) {
	ctrl := gomock.NewController(t)
	server, tokens := newWebhookServer(t, paymentmocks.NewMockService(ctrl))
	require.NoError(t, tokens.SetPartnerToken(context.Background(), "partner-token", time.Minute))

	req := post(t, "/vqr/api/transaction-sync", TransactionSyncReq{
		BankAccount: "0123456789",
		Amount:      "260",
		TransType:   "X",
	})
	req.Header.Set("Authorization", "Bearer partner-token")
	recorder := httptest.NewRecorder()
	server.ServeHTTP(recorder, req)
	require.Equal(t, http.StatusBadRequest, recorder.Code)
	res := decode[TransactionSyncResp](t, recorder)
	assert.True(t, res.Error)
	assert.Equal(t, "INVALID_PAYLOAD", res.ErrorReason)
}

func TestParseAmount(t *testing.T) {
	testCases := []struct {
		name    string
		input   string
		want    int64
		wantErr bool
	}{
		{name: "整数", input: "260", want: 260},
		{name: "小数", input: "260.0", want: 260},
		{name: "零", input: "0", wantErr: true},
		{name: "负数", input: "-5", wantErr: true},
		{name: "非数字", input: "abc", wantErr: true},
		{name: "NaN", input: "NaN", wantErr: true},
		{name: "四舍五入之后为零", input: "0.4", wantErr: true},
		{name: "无穷大", input: "Inf", wantErr: true},
		{name: "超过 int64", input: "1e19", wantErr: true},
		{name: "刚好 2 的 63 次方", input: "9223372036854775808", wantErr: true},
		{name: "大额", input: "9000000000000000000", want: 9000000000000000000},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := parseAmount(tc.input)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}
