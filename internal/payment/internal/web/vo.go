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
	"github.com/ecodeclub/laundry/internal/payment/internal/domain"
)

type InitializeReq struct {
	OrderID  int64  `json:"orderId"`
	Amount   int64  `json:"amount"`
	Provider string `json:"provider"`
	Method   string `json:"method"`
}

type PaymentIDReq struct {
	ID int64 `json:"id"`
}

type OrderIDReq struct {
	OrderID int64 `json:"orderId"`
}

type OrderSNReq struct {
	SN string `json:"sn"`
}

type QRCodeReq struct {
	ID   int64 `json:"id"`
	Size int   `json:"size,omitempty"`
}

type QRCode struct {
	// data URL 形式的 PNG 图片
	Image string `json:"image"`
}

type UpdateStatusReq struct {
	TransactionCode string `json:"transactionCode"`
	Status          string `json:"status"`
}

type Payment struct {
	ID              int64  `json:"id"`
	OrderID         int64  `json:"orderId"`
	TransactionCode string `json:"transactionCode"`
	Provider        string `json:"provider"`
	Method          string `json:"method"`
	Status          string `json:"status"`
	TotalAmount     int64  `json:"totalAmount"`
	QRCode          string `json:"qrCode,omitempty"`
	ExpiresAt       string `json:"expiresAt,omitempty"`
	Ctime           int64  `json:"ctime"`
	Utime           int64  `json:"utime"`
}

// newPayment 不返回门店的支付方式配置，里面有渠道密钥
func newPayment(p domain.Payment) Payment {
	return Payment{
		ID:              p.ID,
		OrderID:         p.OrderID,
		TransactionCode: p.TransactionCode,
		Provider:        string(p.Provider),
		Method:          string(p.Method),
		Status:          string(p.Status),
		TotalAmount:     p.TotalAmount,
		QRCode:          p.QRContent(),
		ExpiresAt:       p.Details[domain.DetailExpiresAt],
		Ctime:           p.Ctime,
		Utime:           p.Utime,
	}
}

// VNPayIPNResp VNPAY 要求的应答格式
type VNPayIPNResp struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type VietQRTokenResp struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

type TransactionSyncReq struct {
	BankAccount     string `json:"bankaccount" validate:"required"`
	Amount          string `json:"amount" validate:"required"`
	TransType       string `json:"transType" validate:"required,oneof=D C"`
	Content         string `json:"content"`
	TransactionID   string `json:"transactionid"`
	TransactionTime int64  `json:"transactiontime"`
	ReferenceNumber string `json:"referencenumber"`
	OrderID         string `json:"orderId"`
	TerminalCode    string `json:"terminalCode"`
	SubTerminalCode string `json:"subTerminalCode"`
	ServiceCode     string `json:"serviceCode"`
	URLLink         string `json:"urlLink"`
	Sign            string `json:"sign"`
}

type TransactionSyncResp struct {
	Error        bool                   `json:"error"`
	ErrorReason  string                 `json:"errorReason"`
	ToastMessage string                 `json:"toastMessage"`
	Object       *TransactionSyncObject `json:"object"`
}

type TransactionSyncObject struct {
	RefTransactionID string `json:"reftransactionid"`
}
