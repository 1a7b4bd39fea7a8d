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

package domain

type Status string

const (
	StatusNew                     Status = "NEW"
	StatusWaitingForPaymentDetail Status = "WAITING_FOR_PAYMENT_DETAIL"
	StatusWaitingForPurchase      Status = "WAITING_FOR_PURCHASE"
	StatusSuccess                 Status = "SUCCESS"
	StatusFailed                  Status = "FAILED"
	StatusCancelled               Status = "CANCELLED"
)

var transitions = map[Status][]Status{
	StatusNew:                     {StatusWaitingForPaymentDetail, StatusCancelled},
	StatusWaitingForPaymentDetail: {StatusWaitingForPaymentDetail, StatusWaitingForPurchase, StatusFailed, StatusCancelled},
	StatusWaitingForPurchase:      {StatusSuccess, StatusFailed, StatusCancelled},
	// 失败之后允许重新支付
	StatusFailed:    {StatusNew},
	StatusSuccess:   {},
	StatusCancelled: {},
}

func AllStatuses() []Status {
	return []Status{
		StatusNew, StatusWaitingForPaymentDetail, StatusWaitingForPurchase,
		StatusSuccess, StatusFailed, StatusCancelled,
	}
}

// ActiveStatuses 同一个订单同时只能有一个处于这些状态的支付
func ActiveStatuses() []Status {
	return []Status{StatusNew, StatusWaitingForPaymentDetail, StatusWaitingForPurchase}
}

func (s Status) Valid() bool {
	_, ok := transitions[s]
	return ok
}

func (s Status) Active() bool {
	return s == StatusNew || s == StatusWaitingForPaymentDetail || s == StatusWaitingForPurchase
}

func (s Status) CanTransitionTo(to Status) bool {
	for _, n := range transitions[s] {
		if n == to {
			return true
		}
	}
	return false
}

type Provider string

const (
	ProviderVietQR Provider = "VIET_QR"
	ProviderVNPay  Provider = "VNPAY"
)

type Method string

const (
	MethodQR   Method = "QR"
	MethodCard Method = "CARD"
)

const (
	DetailQRCode           = "qr_code"
	DetailTransactionID    = "transaction_id"
	DetailTransactionRefID = "transaction_ref_id"
	DetailTraceID          = "trace_id"
	DetailGeneratedAt      = "generated_at"
	DetailExpiresAt        = "expires_at"
)

type Payment struct {
	ID       int64
	OrderID  int64
	StoreID  int64
	TenantID int64
	UserID   int64
	// 8 位交易码，用户转账备注和渠道回调都通过它找到支付
	TransactionCode string
	Provider        Provider
	Method          Method
	// 下单时门店支付方式配置的快照
	MethodDetails         map[string]string
	ProviderTransactionID string
	// 渠道返回的支付详情，例如二维码内容
	Details     map[string]string
	TotalAmount int64
	Status      Status
	Ctime       int64
	Utime       int64
}

// QRContent 没有二维码的时候返回空字符串
func (p Payment) QRContent() string {
	return p.Details[DetailQRCode]
}
