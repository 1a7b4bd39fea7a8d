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

package vnpay

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/ecodeclub/laundry/internal/payment/internal/domain"
	"github.com/ecodeclub/laundry/internal/payment/internal/service/provider"
	"github.com/go-playground/validator/v10"
	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"
)

const (
	createOrderPath = "/external/merchantorder"
	orderDetailPath = "/external/getorderdetail"

	MethodCodeCard = "VNPAY_SPOS_CARD"
	MethodCodeQR   = "VNPAY_QRCODE"

	ResponseCodeSuccess   = "200"
	ResponseCodeFailed    = "431"
	ResponseCodeCancelled = "434"
)

var ErrInvalidChecksum = errors.New("VNPAY 签名错误")

type Config struct {
	BaseURL string        `yaml:"baseURL"`
	Timeout time.Duration `yaml:"timeout"`
}

// Credential 每个门店在 VNPAY 开通的商户信息
type Credential struct {
	MerchantCode       string `validate:"required"`
	TerminalCode       string `validate:"required"`
	InitSecretKey      string `validate:"required"`
	QuerySecretKey     string
	IPNv3SecretKey     string
	MerchantMethodCode string
}

func credentialOf(details map[string]string) Credential {
	return Credential{
		MerchantCode:       details["merchant_code"],
		TerminalCode:       details["terminal_code"],
		InitSecretKey:      details["init_secret_key"],
		QuerySecretKey:     details["query_secret_key"],
		IPNv3SecretKey:     details["ipnv3_secret_key"],
		MerchantMethodCode: details["merchant_method_code"],
	}
}

func (c Credential) querySecret() string {
	if c.QuerySecretKey != "" {
		return c.QuerySecretKey
	}
	return c.InitSecretKey
}

// ResponseStatus 把 VNPAY 的结果码转换成支付状态，
// 不认识的结果码认为还在等待用户支付
func ResponseStatus(code string) domain.Status {
	switch code {
	case ResponseCodeSuccess:
		return domain.StatusSuccess
	case ResponseCodeFailed:
		return domain.StatusFailed
	case ResponseCodeCancelled:
		return domain.StatusCancelled
	default:
		return domain.StatusWaitingForPurchase
	}
}

type Provider struct {
	client   *resty.Client
	validate *validator.Validate
}

func NewProvider(cfg Config) *Provider {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Provider{
		client: resty.New().
			SetBaseURL(cfg.BaseURL).
			SetTimeout(timeout).
			SetHeader("Content-Type", "application/json"),
		validate: validator.New(),
	}
}

func (p *Provider) Name() domain.Provider {
	return domain.ProviderVNPay
}

func (p *Provider) Validate(method domain.Method, details map[string]string) error {
	if method != domain.MethodQR && method != domain.MethodCard {
		return fmt.Errorf("%w: %s %s", provider.ErrMethodNotSupported, p.Name(), method)
	}
	if err := p.validate.Struct(credentialOf(details)); err != nil {
		return fmt.Errorf("%w: %w", provider.ErrInvalidMethodDetails, err)
	}
	return nil
}

func (p *Provider) GenerateDetails(ctx context.Context, pmt domain.Payment) (provider.Result, error) {
	if err := p.Validate(pmt.Method, pmt.MethodDetails); err != nil {
		return provider.Result{}, err
	}
	cred := credentialOf(pmt.MethodDetails)
	key, methodCode := "card", MethodCodeCard
	if pmt.Method == domain.MethodQR {
		key, methodCode = "qr", MethodCodeQR
	}
	payload := p.orderPayload(cred, pmt, key, methodCode)
	resp, err := p.client.R().SetContext(ctx).SetBody(payload).Post(createOrderPath)
	if err != nil {
		return provider.Result{}, fmt.Errorf("请求 VNPAY 下单失败: %w", err)
	}
	body := resp.Body()
	if resp.IsError() || gjson.GetBytes(body, "code").String() != ResponseCodeSuccess {
		return provider.Result{}, fmt.Errorf("VNPAY 下单失败, status=%d, body=%s", resp.StatusCode(), resp.String())
	}
	requestID := gjson.GetBytes(body, "paymentRequestId").String()
	detail := gjson.GetBytes(body, "payments."+key)
	details := map[string]string{
		domain.DetailTransactionID: requestID,
		domain.DetailTraceID:       detail.Get("traceId").String(),
		domain.DetailGeneratedAt:   time.Now().UTC().Format(time.RFC3339),
	}
	if pmt.Method == domain.MethodQR {
		qr := detail.Get("qrContent").String()
		if qr == "" {
			return provider.Result{}, fmt.Errorf("VNPAY 没有返回二维码, body=%s", resp.String())
		}
		details[domain.DetailQRCode] = qr
	} else {
		details[domain.DetailTransactionRefID] = detail.Get("transactionCode").String()
	}
	return provider.Result{
		ProviderTransactionID: requestID,
		Details:               details,
	}, nil
}

// orderPayload orderCode 和 clientTransactionCode 都使用交易码，
// IPN 通过 orderCode 找到支付
func (p *Provider) orderPayload(cred Credential, pmt domain.Payment, key, methodCode string) map[string]any {
	amount := strconv.FormatInt(pmt.TotalAmount, 10)
	userID := strconv.FormatInt(pmt.UserID, 10)
	return map[string]any{
		"merchantCode":       cred.MerchantCode,
		"terminalCode":       cred.TerminalCode,
		"userId":             userID,
		"orderCode":          pmt.TransactionCode,
		"totalPaymentAmount": pmt.TotalAmount,
		"description":        pmt.TransactionCode,
		"successUrl":         "",
		"cancelUrl":          "",
		"payments": map[string]any{
			key: map[string]any{
				"methodCode":            methodCode,
				"merchantMethodCode":    cred.MerchantMethodCode,
				"clientTransactionCode": pmt.TransactionCode,
				"amount":                pmt.TotalAmount,
			},
		},
		"checksum": checksum(cred.InitSecretKey,
			pmt.TransactionCode, userID, cred.TerminalCode, cred.MerchantCode, amount,
			"", "", pmt.TransactionCode, cred.MerchantMethodCode, methodCode, amount),
	}
}

func (p *Provider) QueryStatus(ctx context.Context, pmt domain.Payment) (domain.Status, error) {
	cred := credentialOf(pmt.MethodDetails)
	if err := p.validate.Struct(cred); err != nil {
		return "", fmt.Errorf("%w: %w", provider.ErrInvalidMethodDetails, err)
	}
	secret := cred.querySecret()
	resp, err := p.client.R().SetContext(ctx).SetBody(map[string]any{
		"merchantCode":     cred.MerchantCode,
		"terminalCode":     cred.TerminalCode,
		"paymentRequestId": pmt.ProviderTransactionID,
		"orderCode":        pmt.TransactionCode,
		"checksum": checksum(secret,
			cred.TerminalCode, cred.MerchantCode, pmt.ProviderTransactionID, pmt.TransactionCode),
	}).Post(orderDetailPath)
	if err != nil {
		return "", fmt.Errorf("请求 VNPAY 查询订单失败: %w", err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("VNPAY 查询订单失败, status=%d, body=%s", resp.StatusCode(), resp.String())
	}
	key := "card"
	if pmt.Method == domain.MethodQR {
		key = "qr"
	}
	return ResponseStatus(gjson.GetBytes(resp.Body(), "payments."+key+".responseCode").String()), nil
}

// IPN VNPAY 支付结果通知
type IPN struct {
	MerchantMethodCode    string `json:"merchantMethodCode"`
	MethodCode            string `json:"methodCode" binding:"required"`
	MerchantCode          string `json:"merchantCode" binding:"required"`
	OrderCode             string `json:"orderCode" binding:"required"`
	Amount                int64  `json:"amount"`
	TransactionCode       string `json:"transactionCode"`
	ClientTransactionCode string `json:"clientTransactionCode"`
	ResponseCode          string `json:"responseCode" binding:"required"`
	ResponseMessage       string `json:"responseMessage"`
	Checksum              string `json:"checksum" binding:"required"`
}

// VerifyIPN 使用门店的 ipnv3 密钥校验签名
func VerifyIPN(details map[string]string, ipn IPN) error {
	cred := credentialOf(details)
	if cred.IPNv3SecretKey == "" {
		return fmt.Errorf("%w: 门店没有配置 ipnv3_secret_key", ErrInvalidChecksum)
	}
	if cred.MerchantCode != ipn.MerchantCode {
		return fmt.Errorf("%w: 商户号不匹配", ErrInvalidChecksum)
	}
	ok := verify(cred.IPNv3SecretKey, ipn.Checksum,
		ipn.MerchantMethodCode, ipn.MethodCode, ipn.MerchantCode, ipn.OrderCode,
		strconv.FormatInt(ipn.Amount, 10), ipn.TransactionCode, ipn.ClientTransactionCode, ipn.ResponseCode)
	if !ok {
		return ErrInvalidChecksum
	}
	return nil
}
