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

package condition

import (
	"fmt"
	"strconv"

	"github.com/ecodeclub/laundry/internal/promotion/internal/domain"
)

// TotalAmountChecker 订单原价和给定金额比较，BETWEEN 需要两个值
type TotalAmountChecker struct{}

func (TotalAmountChecker) Type() domain.ConditionType {
	return domain.ConditionTypeTotalAmount
}

func (TotalAmountChecker) Check(c domain.Condition, octx domain.OrderContext) (bool, error) {
	vals, err := parseAmounts(c.Value)
	if err != nil {
		return false, err
	}
	amount := octx.SubTotal()
	need := 1
	if c.Operator == domain.OperatorBetween || c.Operator == domain.OperatorNotBetween {
		need = 2
	}
	if len(vals) < need {
		return false, fmt.Errorf("%w: %s 需要 %d 个值", ErrInvalidValue, c.Operator, need)
	}
	switch c.Operator {
	case domain.OperatorEqual:
		return amount == vals[0], nil
	case domain.OperatorNotEqual:
		return amount != vals[0], nil
	case domain.OperatorGreaterThan:
		return amount > vals[0], nil
	case domain.OperatorGreaterThanOrEqual:
		return amount >= vals[0], nil
	case domain.OperatorLessThan:
		return amount < vals[0], nil
	case domain.OperatorLessThanOrEqual:
		return amount <= vals[0], nil
	case domain.OperatorBetween:
		return vals[0] <= amount && amount <= vals[1], nil
	case domain.OperatorNotBetween:
		return amount < vals[0] || amount > vals[1], nil
	default:
		return false, unsupported(c)
	}
}

func parseAmounts(vals []string) ([]int64, error) {
	res := make([]int64, 0, len(vals))
	for _, v := range vals {
		a, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrInvalidValue, v)
		}
		res = append(res, a)
	}
	return res, nil
}
