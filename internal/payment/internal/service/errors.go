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

package service

import (
	"errors"

	"github.com/ecodeclub/laundry/internal/payment/internal/service/provider"
	"github.com/ecodeclub/laundry/internal/payment/internal/service/provider/vnpay"
)

var (
	ErrPaymentNotFound       = errors.New("支付不存在")
	ErrInvalidTransition     = errors.New("支付状态不允许该操作")
	ErrInvalidStatus         = errors.New("非法的支付状态")
	ErrOrderNotPayable       = errors.New("订单当前不能支付")
	ErrAmountMismatch        = errors.New("支付金额和订单金额不一致")
	ErrActivePaymentExists   = errors.New("订单已经有进行中的支付")
	ErrPaymentMethodNotFound = errors.New("门店没有开通该支付方式")
	ErrProviderMismatch      = errors.New("支付渠道不匹配")
	ErrProviderFailed        = errors.New("支付渠道调用失败")
	ErrQRCodeNotReady        = errors.New("支付二维码还没有生成")
	ErrPaymentInProgress     = errors.New("订单的支付正在进行中")

	ErrProviderNotSupported = provider.ErrProviderNotSupported
	ErrInvalidMethodDetails = provider.ErrInvalidMethodDetails
	ErrMethodNotSupported   = provider.ErrMethodNotSupported
	ErrInvalidChecksum      = vnpay.ErrInvalidChecksum
)
