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

type Status string

const (
	StatusDraft     Status = "DRAFT"
	StatusScheduled Status = "SCHEDULED"
	StatusActive    Status = "ACTIVE"
	StatusPaused    Status = "PAUSED"
	StatusInactive  Status = "INACTIVE"
	StatusFinished  Status = "FINISHED"
)

func (s Status) Valid() bool {
	switch s {
	case StatusDraft, StatusScheduled, StatusActive, StatusPaused, StatusInactive, StatusFinished:
		return true
	}
	return false
}

// Promotion 促销活动，所有条件都满足并且所有额度都没有用完的时候才能使用
type Promotion struct {
	ID          int64
	Name        string
	Description string
	// 0 表示对所有租户生效
	TenantID int64
	Status   Status
	// 毫秒时间戳，EndTime 为 0 表示没有结束时间
	StartTime  int64
	EndTime    int64
	Conditions []Condition
	Limits     []Limit
	Rewards    []Reward
	Ctime      int64
	Utime      int64
}

func (p Promotion) InScope(tenantID int64) bool {
	return p.TenantID == 0 || p.TenantID == tenantID
}

func (p Promotion) InWindow(t time.Time) bool {
	ms := t.UnixMilli()
	return p.StartTime <= ms && (p.EndTime == 0 || ms <= p.EndTime)
}

// Usable 活动处于 ACTIVE 状态并且在有效期内
func (p Promotion) Usable(tenantID int64, t time.Time) bool {
	return p.Status == StatusActive && p.InScope(tenantID) && p.InWindow(t)
}

// Application 某个活动作用在订单上的结果
type Application struct {
	PromotionID    int64
	PromotionName  string
	DiscountAmount int64
}
