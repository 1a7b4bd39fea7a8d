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

package promotion

import (
	"github.com/ecodeclub/laundry/internal/promotion/internal/domain"
	"github.com/ecodeclub/laundry/internal/promotion/internal/job"
	"github.com/ecodeclub/laundry/internal/promotion/internal/service"
	"github.com/ecodeclub/laundry/internal/promotion/internal/web"
)

type (
	Promotion                = domain.Promotion
	Status                   = domain.Status
	Condition                = domain.Condition
	Limit                    = domain.Limit
	Reward                   = domain.Reward
	OrderContext             = domain.OrderContext
	OrderSnapshot            = domain.OrderSnapshot
	Application              = domain.Application
	Service                  = service.Service
	AdminHandler             = web.AdminHandler
	SyncPromotionCampaignJob = job.SyncPromotionCampaignJob
)

const (
	StatusDraft     = domain.StatusDraft
	StatusScheduled = domain.StatusScheduled
	StatusActive    = domain.StatusActive
	StatusPaused    = domain.StatusPaused
	StatusInactive  = domain.StatusInactive
	StatusFinished  = domain.StatusFinished

	ConditionTypeTenants      = domain.ConditionTypeTenants
	ConditionTypeStores       = domain.ConditionTypeStores
	ConditionTypeTotalAmount  = domain.ConditionTypeTotalAmount
	ConditionTypeMachineTypes = domain.ConditionTypeMachineTypes
	ConditionTypeTimeInDay    = domain.ConditionTypeTimeInDay

	OperatorIn         = domain.OperatorIn
	OperatorNotIn      = domain.OperatorNotIn
	OperatorBetween    = domain.OperatorBetween
	OperatorNotBetween = domain.OperatorNotBetween

	LimitTypeAmountPerStore  = domain.LimitTypeAmountPerStore
	LimitTypeAmountPerTenant = domain.LimitTypeAmountPerTenant
	LimitTypeAmountPerUser   = domain.LimitTypeAmountPerUser
	LimitTypeAmountPerOrder  = domain.LimitTypeAmountPerOrder
	LimitTypeTotalUsage      = domain.LimitTypeTotalUsage
	LimitTypeUsagePerUser    = domain.LimitTypeUsagePerUser
	LimitTypeUsagePerStore   = domain.LimitTypeUsagePerStore
	LimitTypeUsagePerTenant  = domain.LimitTypeUsagePerTenant
	LimitTypeTotalAmount     = domain.LimitTypeTotalAmount

	RewardTypeFixedAmount      = domain.RewardTypeFixedAmount
	RewardTypePercentageAmount = domain.RewardTypePercentageAmount
	UnitVND                    = domain.UnitVND
	UnitPercentage             = domain.UnitPercentage
	UnitOrder                  = domain.UnitOrder
)

var (
	DefaultLocation = domain.DefaultLocation

	ErrPromotionNotFound = service.ErrPromotionNotFound
	ErrInvalidPromotion  = service.ErrInvalidPromotion
)

type Module struct {
	Svc                      Service
	AdminHandler             *AdminHandler
	SyncPromotionCampaignJob *SyncPromotionCampaignJob
}
