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
	"testing"

	"github.com/ecodeclub/laundry/internal/promotion/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestRegistry_Total(t *testing.T) {
	r := NewDefaultRegistry()
	testCases := []struct {
		name    string
		rewards []domain.Reward
		amount  int64
		want    int64
	}{
		{
			name:    "固定金额",
			rewards: []domain.Reward{{Type: domain.RewardTypeFixedAmount, Value: 30, Unit: domain.UnitVND}},
			amount:  110,
			want:    30,
		},
		{
			name:    "固定金额超过订单金额",
			rewards: []domain.Reward{{Type: domain.RewardTypeFixedAmount, Value: 300, Unit: domain.UnitVND}},
			amount:  110,
			want:    110,
		},
		{
			name:    "百分比",
			rewards: []domain.Reward{{Type: domain.RewardTypePercentageAmount, Value: 10, Unit: domain.UnitPercentage}},
			amount:  1000,
			want:    100,
		},
		{
			name: "叠加之后封顶",
			rewards: []domain.Reward{
				{Type: domain.RewardTypePercentageAmount, Value: 60, Unit: domain.UnitPercentage},
				{Type: domain.RewardTypeFixedAmount, Value: 500, Unit: domain.UnitVND},
			},
			amount: 1000,
			want:   1000,
		},
		{
			name: "单位不匹配跳过",
			rewards: []domain.Reward{
				{Type: domain.RewardTypePercentageAmount, Value: 10, Unit: domain.UnitVND},
				{Type: domain.RewardTypeFixedAmount, Value: 20, Unit: domain.UnitVND},
			},
			amount: 1000,
			want:   20,
		},
		{
			name:    "未知类型",
			rewards: []domain.Reward{{Type: "FREE_DRY", Value: 1}},
			amount:  1000,
			want:    0,
		},
		{
			name:    "订单金额为0",
			rewards: []domain.Reward{{Type: domain.RewardTypeFixedAmount, Value: 20, Unit: domain.UnitVND}},
			want:    0,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, r.Total(tc.rewards, tc.amount))
		})
	}
}
