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

package web

import (
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/laundry/internal/order/internal/domain"
)

type AddOn struct {
	Type     string `json:"type"`
	Price    int64  `json:"price"`
	Quantity int64  `json:"quantity"`
}

type MachineSelection struct {
	MachineID int64   `json:"machineId"`
	AddOns    []AddOn `json:"addOns,omitempty"`
}

type CreateOrderReq struct {
	RequestID string             `json:"requestId"`
	StoreID   int64              `json:"storeId"`
	Machines  []MachineSelection `json:"machines"`
}

type OrderSNReq struct {
	SN string `json:"sn"`
}

type ListOrdersReq struct {
	Offset int `json:"offset,omitempty"`
	Limit  int `json:"limit,omitempty"`
}

type ListOrdersResp struct {
	Total  int64   `json:"total"`
	Orders []Order `json:"orders"`
}

type Promotion struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	DiscountAmount int64  `json:"discountAmount"`
}

type Order struct {
	ID             int64         `json:"id"`
	SN             string        `json:"sn"`
	StoreID        int64         `json:"storeId"`
	Status         string        `json:"status"`
	SubTotal       int64         `json:"subTotal"`
	DiscountAmount int64         `json:"discountAmount"`
	TotalAmount    int64         `json:"totalAmount"`
	TotalWasher    int64         `json:"totalWasher"`
	TotalDryer     int64         `json:"totalDryer"`
	Promotion      *Promotion    `json:"promotion,omitempty"`
	Details        []OrderDetail `json:"details,omitempty"`
	Ctime          int64         `json:"ctime"`
	Utime          int64         `json:"utime"`
}

type OrderDetail struct {
	ID          int64   `json:"id"`
	MachineID   int64   `json:"machineId"`
	MachineType string  `json:"machineType"`
	Status      string  `json:"status"`
	AddOns      []AddOn `json:"addOns,omitempty"`
	Price       int64   `json:"price"`
}

type MachinesUnavailable struct {
	MachineIDs []int64 `json:"machineIds"`
}

func (r CreateOrderReq) selections() []domain.MachineSelection {
	return slice.Map(r.Machines, func(_ int, src MachineSelection) domain.MachineSelection {
		return domain.MachineSelection{
			MachineID: src.MachineID,
			AddOns: slice.Map(src.AddOns, func(_ int, a AddOn) domain.AddOn {
				return domain.AddOn{Type: domain.AddOnType(a.Type), Price: a.Price, Quantity: a.Quantity}
			}),
		}
	})
}

func newOrder(o domain.Order) Order {
	vo := Order{
		ID:             o.ID,
		SN:             o.SN,
		StoreID:        o.StoreID,
		Status:         string(o.Status),
		SubTotal:       o.SubTotal,
		DiscountAmount: o.DiscountAmount,
		TotalAmount:    o.TotalAmount,
		TotalWasher:    o.TotalWasher,
		TotalDryer:     o.TotalDryer,
		Details: slice.Map(o.Details, func(_ int, src domain.OrderDetail) OrderDetail {
			return OrderDetail{
				ID:          src.ID,
				MachineID:   src.MachineID,
				MachineType: string(src.MachineType),
				Status:      string(src.Status),
				AddOns: slice.Map(src.AddOns, func(_ int, a domain.AddOn) AddOn {
					return AddOn{Type: string(a.Type), Price: a.Price, Quantity: a.Quantity}
				}),
				Price: src.Price,
			}
		}),
		Ctime: o.Ctime,
		Utime: o.Utime,
	}
	if o.PromotionSummary != nil {
		vo.Promotion = &Promotion{
			ID:             o.PromotionSummary.PromotionID,
			Name:           o.PromotionSummary.PromotionName,
			DiscountAmount: o.PromotionSummary.DiscountAmount,
		}
	}
	return vo
}
