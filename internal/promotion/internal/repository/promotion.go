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

package repository

import (
	"context"
	"time"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ekit/sqlx"
	"github.com/ecodeclub/laundry/internal/promotion/internal/domain"
	"github.com/ecodeclub/laundry/internal/promotion/internal/repository/cache"
	"github.com/ecodeclub/laundry/internal/promotion/internal/repository/dao"
	"github.com/gotomicro/ego/core/elog"
)

type PromotionRepository interface {
	Save(ctx context.Context, p domain.Promotion) (int64, error)
	FindByID(ctx context.Context, id int64) (domain.Promotion, error)
	List(ctx context.Context, offset, limit int) ([]domain.Promotion, error)
	Count(ctx context.Context) (int64, error)
	// FindActive 优先读缓存
	FindActive(ctx context.Context, now time.Time) ([]domain.Promotion, error)
	SyncCampaignStatus(ctx context.Context, now time.Time) (finished int64, activated int64, err error)
	SpentAmount(ctx context.Context, scope domain.Scope, id int64) (int64, error)
	UsageCount(ctx context.Context, promotionID int64, scope domain.Scope, id int64) (int64, error)
	DiscountAmount(ctx context.Context, promotionID int64) (int64, error)
}

type promotionRepository struct {
	dao    dao.PromotionDAO
	cache  cache.PromotionCache
	logger *elog.Component
}

func NewPromotionRepository(d dao.PromotionDAO, c cache.PromotionCache) PromotionRepository {
	return &promotionRepository{
		dao:    d,
		cache:  c,
		logger: elog.DefaultLogger,
	}
}

func (r *promotionRepository) Save(ctx context.Context, p domain.Promotion) (int64, error) {
	id, err := r.dao.Save(ctx, r.toEntity(p))
	if err != nil {
		return 0, err
	}
	r.invalidate(ctx)
	return id, nil
}

func (r *promotionRepository) FindByID(ctx context.Context, id int64) (domain.Promotion, error) {
	p, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Promotion{}, err
	}
	return r.toDomain(p), nil
}

func (r *promotionRepository) List(ctx context.Context, offset, limit int) ([]domain.Promotion, error) {
	ps, err := r.dao.List(ctx, offset, limit)
	if err != nil {
		return nil, err
	}
	return r.toDomains(ps), nil
}

func (r *promotionRepository) Count(ctx context.Context) (int64, error) {
	return r.dao.Count(ctx)
}

func (r *promotionRepository) FindActive(ctx context.Context, now time.Time) ([]domain.Promotion, error) {
	res, err := r.cache.GetActive(ctx)
	if err == nil {
		return res, nil
	}
	ps, err := r.dao.FindActive(ctx, now.UnixMilli())
	if err != nil {
		return nil, err
	}
	res = r.toDomains(ps)
	if err1 := r.cache.SetActive(ctx, res); err1 != nil {
		r.logger.Error("缓存促销活动失败", elog.FieldErr(err1))
	}
	return res, nil
}

func (r *promotionRepository) SyncCampaignStatus(ctx context.Context, now time.Time) (int64, int64, error) {
	finished, err := r.dao.FinishExpired(ctx, now.UnixMilli())
	if err != nil {
		return 0, 0, err
	}
	activated, err := r.dao.ActivateStarted(ctx, now.UnixMilli())
	if err != nil {
		return finished, 0, err
	}
	if finished+activated > 0 {
		r.invalidate(ctx)
	}
	return finished, activated, nil
}

func (r *promotionRepository) SpentAmount(ctx context.Context, scope domain.Scope, id int64) (int64, error) {
	return r.dao.SumSuccessfulPayments(ctx, scopeColumn(scope), id)
}

func (r *promotionRepository) UsageCount(ctx context.Context, promotionID int64, scope domain.Scope, id int64) (int64, error) {
	return r.dao.CountPromotionUsage(ctx, promotionID, scopeColumn(scope), id)
}

func (r *promotionRepository) DiscountAmount(ctx context.Context, promotionID int64) (int64, error) {
	return r.dao.SumPromotionDiscount(ctx, promotionID)
}

func scopeColumn(scope domain.Scope) string {
	switch scope {
	case domain.ScopeStore:
		return dao.ColumnStoreID
	case domain.ScopeTenant:
		return dao.ColumnTenantID
	case domain.ScopeUser:
		return dao.ColumnUserID
	default:
		return ""
	}
}

func (r *promotionRepository) invalidate(ctx context.Context) {
	if err := r.cache.DelActive(ctx); err != nil {
		r.logger.Error("清除促销活动缓存失败", elog.FieldErr(err))
	}
}

func (r *promotionRepository) toDomains(ps []dao.Promotion) []domain.Promotion {
	return slice.Map(ps, func(_ int, src dao.Promotion) domain.Promotion {
		return r.toDomain(src)
	})
}

func (r *promotionRepository) toDomain(p dao.Promotion) domain.Promotion {
	return domain.Promotion{
		ID:          p.Id,
		Name:        p.Name,
		Description: p.Description,
		TenantID:    p.TenantId,
		Status:      domain.Status(p.Status),
		StartTime:   p.StartTime,
		EndTime:     p.EndTime,
		Conditions: slice.Map(p.Conditions.Val, func(_ int, src dao.Condition) domain.Condition {
			return domain.Condition{
				Type:     domain.ConditionType(src.Type),
				Operator: domain.Operator(src.Operator),
				Value:    src.Value,
			}
		}),
		Limits: slice.Map(p.Limits.Val, func(_ int, src dao.Limit) domain.Limit {
			return domain.Limit{Type: domain.LimitType(src.Type), Value: src.Value, Unit: domain.Unit(src.Unit)}
		}),
		Rewards: slice.Map(p.Rewards.Val, func(_ int, src dao.Reward) domain.Reward {
			return domain.Reward{Type: domain.RewardType(src.Type), Value: src.Value, Unit: domain.Unit(src.Unit)}
		}),
		Ctime: p.Ctime,
		Utime: p.Utime,
	}
}

func (r *promotionRepository) toEntity(p domain.Promotion) dao.Promotion {
	return dao.Promotion{
		Id:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		TenantId:    p.TenantID,
		Status:      string(p.Status),
		StartTime:   p.StartTime,
		EndTime:     p.EndTime,
		Conditions: sqlx.JsonColumn[[]dao.Condition]{
			Val: slice.Map(p.Conditions, func(_ int, src domain.Condition) dao.Condition {
				return dao.Condition{Type: string(src.Type), Operator: string(src.Operator), Value: src.Value}
			}),
			Valid: true,
		},
		Limits: sqlx.JsonColumn[[]dao.Limit]{
			Val: slice.Map(p.Limits, func(_ int, src domain.Limit) dao.Limit {
				return dao.Limit{Type: string(src.Type), Value: src.Value, Unit: string(src.Unit)}
			}),
			Valid: true,
		},
		Rewards: sqlx.JsonColumn[[]dao.Reward]{
			Val: slice.Map(p.Rewards, func(_ int, src domain.Reward) dao.Reward {
				return dao.Reward{Type: string(src.Type), Value: src.Value, Unit: string(src.Unit)}
			}),
			Valid: true,
		},
	}
}
