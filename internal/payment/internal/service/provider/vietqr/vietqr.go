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

package vietqr

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/ecodeclub/laundry/internal/payment/internal/domain"
	"github.com/ecodeclub/laundry/internal/payment/internal/repository/cache"
	"github.com/ecodeclub/laundry/internal/payment/internal/service/provider"
	"github.com/go-playground/validator/v10"
	"github.com/go-resty/resty/v2"
	"github.com/gotomicro/ego/core/elog"
	"github.com/tidwall/gjson"
)

const (
	tokenPath    = "/vqr/api/token_generate"
	generatePath = "/vqr/api/qr/generate-customer"

	// 入账
	transTypeCredit = "C"
	qrTypeDynamic   = "0"
	// 二维码的有效期
	qrExpiration = 15 * time.Minute
	// 提前让令牌过期，避免用到刚好过期的令牌
	tokenExpirationSkew = 30 * time.Second
)

type Config struct {
	BaseURL  string        `yaml:"baseURL"`
	Username string        `yaml:"username"`
	Password string        `yaml:"password"`
	Timeout  time.Duration `yaml:"timeout"`
}

// BankAccount 门店收款账户，来自门店的支付方式配置
type BankAccount struct {
	BankCode          string `validate:"required"`
	BankAccountNumber string `validate:"required,numeric"`
	BankAccountName   string `validate:"required"`
}

func bankAccountOf(details map[string]string) BankAccount {
	return BankAccount{
		BankCode:          details["bank_code"],
		BankAccountNumber: details["bank_account_number"],
		BankAccountName:   details["bank_account_name"],
	}
}

type Provider struct {
	client   *resty.Client
	cfg      Config
	tokens   cache.TokenCache
	validate *validator.Validate
	logger   *elog.Component
}

func NewProvider(cfg Config, tokens cache.TokenCache) *Provider {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Provider{
		client: resty.New().
			SetBaseURL(cfg.BaseURL).
			SetTimeout(timeout).
			SetHeader("Content-Type", "application/json"),
		cfg:      cfg,
		tokens:   tokens,
		validate: validator.New(),
		logger:   elog.DefaultLogger,
	}
}

func (p *Provider) Name() domain.Provider {
	return domain.ProviderVietQR
}

func (p *Provider) Validate(method domain.Method, details map[string]string) error {
	if method != domain.MethodQR {
		return fmt.Errorf("%w: %s %s", provider.ErrMethodNotSupported, p.Name(), method)
	}
	if err := p.validate.Struct(bankAccountOf(details)); err != nil {
		return fmt.Errorf("%w: %w", provider.ErrInvalidMethodDetails, err)
	}
	return nil
}

func (p *Provider) GenerateDetails(ctx context.Context, pmt domain.Payment) (provider.Result, error) {
	if err := p.Validate(pmt.Method, pmt.MethodDetails); err != nil {
		return provider.Result{}, err
	}
	account := bankAccountOf(pmt.MethodDetails)
	token, err := p.token(ctx)
	if err != nil {
		return provider.Result{}, err
	}
	resp, err := p.client.R().
		SetContext(ctx).
		SetAuthToken(token).
		SetBody(map[string]any{
			"amount":       strconv.FormatInt(pmt.TotalAmount, 10),
			"bankAccount":  account.BankAccountNumber,
			"bankCode":     account.BankCode,
			"userBankName": account.BankAccountName,
			// 用户转账的时候备注交易码，到账通知靠它找到支付
			"content":      pmt.TransactionCode,
			"transType":    transTypeCredit,
			"orderId":      strconv.FormatInt(pmt.OrderID, 10),
			"qrType":       qrTypeDynamic,
			"terminalCode": strconv.FormatInt(pmt.StoreID, 10),
		}).
		Post(generatePath)
	if err != nil {
		return provider.Result{}, fmt.Errorf("请求 VietQR 生成二维码失败: %w", err)
	}
	if resp.IsError() {
		return provider.Result{}, fmt.Errorf("VietQR 生成二维码失败, status=%d, body=%s", resp.StatusCode(), resp.String())
	}
	body := resp.Body()
	qrCode := gjson.GetBytes(body, "qrCode").String()
	if qrCode == "" {
		return provider.Result{}, fmt.Errorf("VietQR 没有返回二维码, body=%s", resp.String())
	}
	txnID := gjson.GetBytes(body, "transactionId").String()
	now := time.Now().UTC()
	return provider.Result{
		ProviderTransactionID: txnID,
		Details: map[string]string{
			domain.DetailQRCode:           qrCode,
			domain.DetailTransactionID:    txnID,
			domain.DetailTransactionRefID: gjson.GetBytes(body, "transactionRefId").String(),
			domain.DetailGeneratedAt:      now.Format(time.RFC3339),
			domain.DetailExpiresAt:        now.Add(qrExpiration).Format(time.RFC3339),
		},
	}, nil
}

// QueryStatus VietQR 只通过 transaction-sync 回调通知到账
func (p *Provider) QueryStatus(ctx context.Context, pmt domain.Payment) (domain.Status, error) {
	return "", provider.ErrQueryNotSupported
}

func (p *Provider) token(ctx context.Context) (string, error) {
	token, err := p.tokens.GetProviderToken(ctx, string(p.Name()))
	if err == nil {
		return token, nil
	}
	if !errors.Is(err, cache.ErrTokenNotFound) {
		p.logger.Warn("读取 VietQR 令牌缓存失败", elog.FieldErr(err))
	}
	resp, err := p.client.R().
		SetContext(ctx).
		SetBasicAuth(p.cfg.Username, p.cfg.Password).
		Post(tokenPath)
	if err != nil {
		return "", fmt.Errorf("请求 VietQR 令牌失败: %w", err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("VietQR 令牌请求失败, status=%d, body=%s", resp.StatusCode(), resp.String())
	}
	token = gjson.GetBytes(resp.Body(), "access_token").String()
	if token == "" {
		return "", fmt.Errorf("VietQR 没有返回 access_token, body=%s", resp.String())
	}
	ttl := time.Duration(gjson.GetBytes(resp.Body(), "expires_in").Int())*time.Second - tokenExpirationSkew
	if ttl > 0 {
		if err = p.tokens.SetProviderToken(ctx, string(p.Name()), token, ttl); err != nil {
			p.logger.Warn("缓存 VietQR 令牌失败", elog.FieldErr(err))
		}
	}
	return token, nil
}
