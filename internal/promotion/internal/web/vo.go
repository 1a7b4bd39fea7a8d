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
	"github.com/ecodeclub/laundry/internal/promotion/internal/domain"
)

type PromotionID struct {
	ID int64 `json:"id"`
}

type ListReq struct {
	Offset int `json:"offset,omitempty"`
	Limit  int `json:"limit,omitempty"`
}

type ListResp struct {
	Total      int64       `json:"total"`
	Promotions []Promotion `json:"promotions"`
}

type Promotion struct {
	ID          int64       `json:"id,omitempty"`
	Name        string      `json:"name"`
	Description string      `json:"description,omitempty"`
	TenantID    int64       `json:"tenantId"`
	Status      string      `json:"status"`
	StartTime   int64       `json:"startTime"`
	EndTime     int64       `json:"endTime"`
	Conditions  []Condition `json:"conditions"`
	Limits      []Limit     `json:"limits"`
	Rewards     []Reward    `json:"rewards"`
	Utime       int64       `json:"utime,omitempty"`
}

type Condition struct {
	Type     string   `json:"type"`
	Operator string   `json:"operator"`
	Value    []string `json:"value"`
}

type Limit struct {
	Type  string `json:"type"`
	Value int64  `json:"value"`
	Unit  string `json:"unit"`
}

type Reward struct {
	Type  string `json:"type"`
	Value int64  `json:"value"`
	Unit  string `json:"unit"`
}

func (p Promotion) toDomain() domain.Promotion {
	return domain.Promotion{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		TenantID:    p.TenantID,
		Status:      domain.Status(p.Status),
		StartTime:   p.StartTime,
		EndTime:     p.EndTime,
		Conditions: slice.Map(p.Conditions, func(_ int, src Condition) domain.Condition {
			return domain.Condition{
				Type:     domain.ConditionType(src.Type),
				Operator: domain.Operator(src.Operator),
				Value:    src.Value,
			}
		}),
		Limits: slice.Map(p.Limits, func(_ int, src Limit) domain.Limit {
			return domain.Limit{Type: domain.LimitType(src.Type), Value: src.Value, Unit: domain.Unit(src.Unit)}
		}),
		Rewards: slice.Map(p.Rewards, func(_ int, src Reward) domain.Reward {
			return domain.Reward{Type: domain.RewardType(src.Type), Value: src.Value, Unit: domain.Unit(src.Unit)}
		}),
	}
}

func newPromotion(p domain.Promotion) Promotion {
	return Promotion{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		TenantID:    p.TenantID,
		Status:      string(p.Status),
		StartTime:   p.StartTime,
		EndTime:     p.EndTime,
		Conditions: slice.Map(p.Conditions, func(_ int, src domain.Condition) Condition {
			return Condition{Type: string(src.Type), Operator: string(src.Operator), Value: src.Value}
		}),
		Limits: slice.Map(p.Limits, func(_ int, src domain.Limit) Limit {
			return Limit{Type: string(src.Type), Value: src.Value, Unit: string(src.Unit)}
		}),
		Rewards: slice.Map(p.Rewards, func(_ int, src domain.Reward) Reward {
			return Reward{Type: string(src.Type), Value: src.Value, Unit: string(src.Unit)}
		}),
		Utime: p.Utime,
	}
}
