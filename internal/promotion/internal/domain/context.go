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

import "time"

// DefaultLocation 越南不实行夏令时，固定 UTC+7
var DefaultLocation = time.FixedZone("Asia/Ho_Chi_Minh", 7*60*60)

// OrderContext 评估活动时用到的订单信息，Order 为 nil 表示还没有订单
type OrderContext struct {
	TenantID int64
	StoreID  int64
	UserID   int64
	Order    *OrderSnapshot
	// 订单所在时区
	Location *time.Location
}

type OrderSnapshot struct {
	SubTotal    int64
	TotalWasher int64
	TotalDryer  int64
	CreatedAt   time.Time
}

func (s OrderSnapshot) HasMachineType(machineType string) bool {
	switch machineType {
	case "WASHER":
		return s.TotalWasher > 0
	case "DRYER":
		return s.TotalDryer > 0
	}
	return false
}

func (c OrderContext) Loc() *time.Location {
	if c.Location == nil {
		return DefaultLocation
	}
	return c.Location
}

// Now 有订单的时候以订单创建时间为准
func (c OrderContext) Now() time.Time {
	if c.Order != nil && !c.Order.CreatedAt.IsZero() {
		return c.Order.CreatedAt
	}
	return time.Now()
}

func (c OrderContext) SubTotal() int64 {
	if c.Order == nil {
		return 0
	}
	return c.Order.SubTotal
}
