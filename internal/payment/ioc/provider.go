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

package ioc

import (
	"github.com/ecodeclub/laundry/internal/payment/internal/repository/cache"
	"github.com/ecodeclub/laundry/internal/payment/internal/service/provider"
	"github.com/ecodeclub/laundry/internal/payment/internal/service/provider/vietqr"
	"github.com/ecodeclub/laundry/internal/payment/internal/service/provider/vnpay"
	"github.com/ecodeclub/laundry/internal/payment/internal/web"
	"github.com/gotomicro/ego/core/econf"
)

func InitProviderRegistry(vqr vietqr.Config, vnp vnpay.Config, tokens cache.TokenCache) *provider.Registry {
	return provider.NewRegistry(
		provider.WithMetrics(vietqr.NewProvider(vqr, tokens)),
		provider.WithMetrics(vnpay.NewProvider(vnp)),
	)
}

func InitVietQRConfig() vietqr.Config {
	var cfg vietqr.Config
	err := econf.UnmarshalKey("payment.vietqr", &cfg)
	if err != nil {
		panic(err)
	}
	return cfg
}

func InitVNPayConfig() vnpay.Config {
	var cfg vnpay.Config
	err := econf.UnmarshalKey("payment.vnpay", &cfg)
	if err != nil {
		panic(err)
	}
	return cfg
}

// InitPartnerConfig VietQR 回调我们时使用的账号，和我们调用 VietQR 的账号不是同一个
func InitPartnerConfig() web.PartnerConfig {
	var cfg web.PartnerConfig
	err := econf.UnmarshalKey("payment.vietqr.partner", &cfg)
	if err != nil {
		panic(err)
	}
	return cfg
}
