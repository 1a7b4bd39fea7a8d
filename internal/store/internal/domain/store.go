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

type StoreStatus string

const (
	StoreStatusActive   StoreStatus = "ACTIVE"
	StoreStatusInactive StoreStatus = "INACTIVE"
)

// PaymentMethod 门店配置的支付方式，Details 里面是银行账户或者支付渠道的密钥
type PaymentMethod struct {
	Provider string
	Method   string
	Details  map[string]string
}

type Store struct {
	ID             int64
	TenantID       int64
	Name           string
	Address        string
	Status         StoreStatus
	PaymentMethods []PaymentMethod
	Ctime          int64
	Utime          int64
	// 非 0 表示已删除
	Dtime int64
}

func (s Store) Active() bool {
	return s.Status == StoreStatusActive && s.Dtime == 0
}

func (s Store) PaymentMethod(provider, method string) (PaymentMethod, bool) {
	for _, pm := range s.PaymentMethods {
		if pm.Provider == provider && pm.Method == method {
			return pm, true
		}
	}
	return PaymentMethod{}, false
}
