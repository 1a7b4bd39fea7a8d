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

import "slices"

type MachineType string

const (
	MachineTypeWasher MachineType = "WASHER"
	MachineTypeDryer  MachineType = "DRYER"
)

type AddOnType string

const (
	AddOnHotWater             AddOnType = "HOT_WATER"
	AddOnColdWater            AddOnType = "COLD_WATER"
	AddOnDetergent            AddOnType = "DETERGENT"
	AddOnSoftener             AddOnType = "SOFTENER"
	AddOnDryingDurationMinute AddOnType = "DRYING_DURATION_MINUTE"
)

func (t AddOnType) Valid() bool {
	switch t {
	case AddOnHotWater, AddOnColdWater, AddOnDetergent, AddOnSoftener, AddOnDryingDurationMinute:
		return true
	}
	return false
}

type AddOn struct {
	Type     AddOnType `json:"type"`
	Price    int64     `json:"price"`
	Quantity int64     `json:"quantity"`
}

type Order struct {
	ID       int64
	SN       string
	TenantID int64
	StoreID  int64
	UserID   int64
	Status   OrderStatus
	// SubTotal 原价，TotalAmount = SubTotal - DiscountAmount
	SubTotal         int64
	DiscountAmount   int64
	TotalAmount      int64
	TotalWasher      int64
	TotalDryer       int64
	PromotionSummary *PromotionSummary
	Details          []OrderDetail
	DeletedBy        int64
	Ctime            int64
	Utime            int64
	Dtime            int64
}

// PromotionSummary 下单时使用的促销活动快照
type PromotionSummary struct {
	PromotionID    int64  `json:"promotionId"`
	PromotionName  string `json:"promotionName"`
	DiscountAmount int64  `json:"discountAmount"`
}

type OrderDetail struct {
	ID          int64
	OrderID     int64
	MachineID   int64
	MachineType MachineType
	Status      DetailStatus
	AddOns      []AddOn
	Price       int64
	Ctime       int64
	Utime       int64
}

// CanBePaid 所有明细都被取消的订单不能再支付
func (o Order) CanBePaid() bool {
	if o.Status != StatusNew && o.Status != StatusWaitingForPayment && o.Status != StatusPaymentFailed {
		return false
	}
	return slices.ContainsFunc(o.Details, func(d OrderDetail) bool {
		return d.Status != DetailStatusCancelled
	})
}

func (o Order) CanBeCancelled() bool {
	return o.Status == StatusNew || o.Status == StatusWaitingForPayment || o.Status == StatusPaymentFailed
}

// RecalculateTotals 根据没有被取消的明细重新计算原价和机器数量
func (o *Order) RecalculateTotals() {
	o.SubTotal, o.TotalWasher, o.TotalDryer = 0, 0, 0
	for _, d := range o.Details {
		if d.Status == DetailStatusCancelled {
			continue
		}
		o.SubTotal += d.Price
		switch d.MachineType {
		case MachineTypeWasher:
			o.TotalWasher++
		case MachineTypeDryer:
			o.TotalDryer++
		}
	}
	o.DiscountAmount = min(o.DiscountAmount, o.SubTotal)
	o.TotalAmount = o.SubTotal - o.DiscountAmount
}

// ApplyPromotion summary 为 nil 表示不使用任何活动
func (o *Order) ApplyPromotion(summary *PromotionSummary) {
	o.DiscountAmount = 0
	o.PromotionSummary = nil
	o.RecalculateTotals()
	if summary == nil || summary.DiscountAmount <= 0 {
		return
	}
	s := *summary
	s.DiscountAmount = min(s.DiscountAmount, o.SubTotal)
	o.PromotionSummary = &s
	o.DiscountAmount = s.DiscountAmount
	o.TotalAmount = o.SubTotal - o.DiscountAmount
}

func (o Order) MachineIDs() []int64 {
	ids := make([]int64, 0, len(o.Details))
	for _, d := range o.Details {
		ids = append(ids, d.MachineID)
	}
	return ids
}

// ComputePrice 洗衣机是基础价格加上附加项，烘干机按照烘干分钟数计价，没有设置分钟数就按照基础价格
func ComputePrice(typ MachineType, basePrice int64, addOns []AddOn) int64 {
	switch typ {
	case MachineTypeDryer:
		for _, a := range addOns {
			if a.Type == AddOnDryingDurationMinute && a.Quantity > 0 {
				return basePrice * a.Quantity
			}
		}
		return basePrice
	default:
		price := basePrice
		for _, a := range addOns {
			if a.Type == AddOnDryingDurationMinute {
				continue
			}
			price += a.Price * a.Quantity
		}
		return price
	}
}
