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

package reward

import (
	"github.com/ecodeclub/laundry/internal/promotion/internal/domain"
)

type Calculator interface {
	Type() domain.RewardType
	// Calculate 返回优惠金额，单位和奖励类型不匹配的时候返回 false
	Calculate(r domain.Reward, amount int64) (int64, bool)
}

type Registry struct {
	calculators map[domain.RewardType]Calculator
}

func NewRegistry(cs ...Calculator) *Registry {
	r := &Registry{calculators: make(map[domain.RewardType]Calculator, len(cs))}
	for _, c := range cs {
		r.calculators[c.Type()] = c
	}
	return r
}

func NewDefaultRegistry() *Registry {
	return NewRegistry(FixedAmountCalculator{}, PercentageAmountCalculator{})
}

// Total 所有奖励累加，不超过订单金额
func (r *Registry) Total(rewards []domain.Reward, amount int64) int64 {
	if amount <= 0 {
		return 0
	}
	var total int64
	for _, rw := range rewards {
		c, ok := r.calculators[rw.Type]
		if !ok {
			continue
		}
		val, ok := c.Calculate(rw, amount)
		if !ok || val <= 0 {
			continue
		}
		total += val
	}
	return min(total, amount)
}

type FixedAmountCalculator struct{}

func (FixedAmountCalculator) Type() domain.RewardType {
	return domain.RewardTypeFixedAmount
}

func (FixedAmountCalculator) Calculate(r domain.Reward, amount int64) (int64, bool) {
	if r.Unit != domain.UnitVND {
		return 0, false
	}
	return min(r.Value, amount), true
}

type PercentageAmountCalculator struct{}

func (PercentageAmountCalculator) Type() domain.RewardType {
	return domain.RewardTypePercentageAmount
}

func (PercentageAmountCalculator) Calculate(r domain.Reward, amount int64) (int64, bool) {
	if r.Unit != domain.UnitPercentage {
		return 0, false
	}
	return amount * r.Value / 100, true
}
