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
	"time"

	"github.com/ecodeclub/laundry/internal/promotion/internal/domain"
)

// TimeInDayChecker 配置的是两个 ISO-8601 时间点，只取它们在订单时区下的时分秒。
// 开始晚于结束的时候认为区间跨过了零点，例如 22:00 到 02:00
type TimeInDayChecker struct{}

func (TimeInDayChecker) Type() domain.ConditionType {
	return domain.ConditionTypeTimeInDay
}

func (TimeInDayChecker) Check(c domain.Condition, octx domain.OrderContext) (bool, error) {
	if c.Operator != domain.OperatorBetween && c.Operator != domain.OperatorNotBetween {
		return false, unsupported(c)
	}
	if octx.Order == nil {
		return c.Operator == domain.OperatorNotBetween, nil
	}
	if len(c.Value) != 2 {
		return false, fmt.Errorf("%w: TIME_IN_DAY 需要两个时间点", ErrInvalidValue)
	}
	loc := octx.Loc()
	start, err := secondOfDay(c.Value[0], loc)
	if err != nil {
		return false, err
	}
	end, err := secondOfDay(c.Value[1], loc)
	if err != nil {
		return false, err
	}
	t := octx.Now().In(loc)
	cur := t.Hour()*3600 + t.Minute()*60 + t.Second()
	var in bool
	if start <= end {
		in = start <= cur && cur <= end
	} else {
		in = cur >= start || cur <= end
	}
	if c.Operator == domain.OperatorBetween {
		return in, nil
	}
	return !in, nil
}

func secondOfDay(val string, loc *time.Location) (int, error) {
	t, err := time.Parse(time.RFC3339Nano, val)
	if err != nil {
		return 0, fmt.Errorf("%w: %s", ErrInvalidValue, val)
	}
	t = t.In(loc)
	return t.Hour()*3600 + t.Minute()*60 + t.Second(), nil
}
