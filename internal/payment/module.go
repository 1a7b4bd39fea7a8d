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

package payment

import (
	"github.com/ecodeclub/laundry/internal/payment/internal/consumer"
	"github.com/ecodeclub/laundry/internal/payment/internal/domain"
	"github.com/ecodeclub/laundry/internal/payment/internal/event"
	"github.com/ecodeclub/laundry/internal/payment/internal/service"
	"github.com/ecodeclub/laundry/internal/payment/internal/web"
)

type (
	Payment                   = domain.Payment
	Status                    = domain.Status
	Provider                  = domain.Provider
	Method                    = domain.Method
	Service                   = service.Service
	InitializeRequest         = service.InitializeRequest
	Handler                   = web.Handler
	WebhookHandler            = web.WebhookHandler
	AdminHandler              = web.AdminHandler
	PartnerConfig             = web.PartnerConfig
	PaymentEvent              = event.PaymentEvent
	PaymentDetailTaskConsumer = consumer.PaymentDetailTaskConsumer
)

const (
	StatusNew                     = domain.StatusNew
	StatusWaitingForPaymentDetail = domain.StatusWaitingForPaymentDetail
	StatusWaitingForPurchase      = domain.StatusWaitingForPurchase
	StatusSuccess                 = domain.StatusSuccess
	StatusFailed                  = domain.StatusFailed
	StatusCancelled               = domain.StatusCancelled

	ProviderVietQR = domain.ProviderVietQR
	ProviderVNPay  = domain.ProviderVNPay

	MethodQR   = domain.MethodQR
	MethodCard = domain.MethodCard

	PaymentEventTopic = event.PaymentEventTopic
)

var (
	ErrPaymentNotFound     = service.ErrPaymentNotFound
	ErrInvalidTransition   = service.ErrInvalidTransition
	ErrOrderNotPayable     = service.ErrOrderNotPayable
	ErrAmountMismatch      = service.ErrAmountMismatch
	ErrActivePaymentExists = service.ErrActivePaymentExists
	ErrProviderFailed      = service.ErrProviderFailed
)

type Module struct {
	Svc                       Service
	Hdl                       *Handler
	WebhookHdl                *WebhookHandler
	AdminHdl                  *AdminHandler
	PaymentDetailTaskConsumer *PaymentDetailTaskConsumer
}
