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

package service

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/ecodeclub/laundry/internal/promotion/internal/domain"
	"github.com/ecodeclub/laundry/internal/promotion/internal/repository"
	"github.com/ecodeclub/laundry/internal/promotion/internal/repository/dao"
	"github.com/ecodeclub/laundry/internal/promotion/internal/service/condition"
	"github.com/ecodeclub/laundry/internal/promotion/internal/service/limit"
	"github.com/ecodeclub/laundry/internal/promotion/internal/service/reward"
	"golang.org/x/sync/errgroup"
)

var (
	ErrPromotionNotFound = errors.New("促销活动不存在")
	ErrInvalidPromotion  = errors.New("促销活动配置非法")
)

type Service interface {
	// SelectBest 从当前可用的活动中挑出优惠最多的一个，没有可用活动的时候第二个返回值为 false
	SelectBest(ctx context.Context, octx domain.OrderContext) (domain.Application, bool, error)
	// Select 在给定的候选活动中挑选，优惠金额相同的时候选 ID 最小的
	Select(ctx context.Context, octx domain.OrderContext, candidates []domain.Promotion) (domain.Application, bool, error)
	Save(ctx context.Context, p domain.Promotion) (int64, error)
	FindByID(ctx context.Context, id int64) (domain.Promotion, error)
	List(ctx context.Context, offset, limit int) ([]domain.Promotion, int64, error)
	SyncCampaignStatus(ctx context.Context, now time.Time) (finished int64, activated int64, err error)
}

type service struct {
	repo       repository.PromotionRepository
	conditions *condition.Registry
	limits     *limit.Registry
	rewards    *reward.Registry
}

func NewService(repo repository.PromotionRepository) Service {
	return &service{
		repo:       repo,
		conditions: condition.NewDefaultRegistry(),
		limits:     limit.NewDefaultRegistry(repo),
		rewards:    reward.NewDefaultRegistry(),
	}
}

func (s *service) SelectBest(ctx context.Context, octx domain.OrderContext) (domain.Application, bool, error) {
	ps, err := s.repo.FindActive(ctx, time.Now())
	if err != nil {
		return domain.Application{}, false, err
	}
	now := octx.Now()
	candidates := slices.DeleteFunc(ps, func(p domain.Promotion) bool {
		return !p.Usable(octx.TenantID, now)
	})
	return s.Select(ctx, octx, candidates)
}

func (s *service) Select(ctx context.Context, octx domain.OrderContext, candidates []domain.Promotion) (domain.Application, bool, error) {
	sorted := slices.SortedFunc(slices.Values(candidates), func(a, b domain.Promotion) int {
		return cmp.Compare(a.ID, b.ID)
	})
	var (
		best  domain.Application
		found bool
	)
	amount := octx.SubTotal()
	for _, p := range sorted {
		ok, err := s.conditions.CheckAll(p.Conditions, octx)
		if err != nil {
			return domain.Application{}, false, fmt.Errorf("%w: 活动 %d: %w", ErrInvalidPromotion, p.ID, err)
		}
		if !ok {
			continue
		}
		discount := s.rewards.Total(p.Rewards, amount)
		if discount <= 0 || (found && discount <= best.DiscountAmount) {
			continue
		}
		ok, err = s.limits.CheckAll(ctx, p.ID, p.Limits, octx, discount)
		if err != nil {
			return domain.Application{}, false, err
		}
		if !ok {
			continue
		}
		best = domain.Application{
			PromotionID:    p.ID,
			PromotionName:  p.Name,
			DiscountAmount: discount,
		}
		found = true
	}
	return best, found, nil
}

func (s *service) Save(ctx context.Context, p domain.Promotion) (int64, error) {
	if p.Status == "" {
		p.Status = domain.StatusDraft
	}
	if err := s.validate(p); err != nil {
		return 0, err
	}
	return s.repo.Save(ctx, p)
}

func (s *service) validate(p domain.Promotion) error {
	if p.Name == "" {
		return fmt.Errorf("%w: 名称不能为空", ErrInvalidPromotion)
	}
	if !p.Status.Valid() {
		return fmt.Errorf("%w: 状态 %s", ErrInvalidPromotion, p.Status)
	}
	if p.EndTime != 0 && p.EndTime < p.StartTime {
		return fmt.Errorf("%w: 结束时间早于开始时间", ErrInvalidPromotion)
	}
	for _, c := range p.Conditions {
		if err := s.conditions.Validate(c); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidPromotion, err)
		}
	}
	for _, l := range p.Limits {
		if err := s.limits.Validate(l); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidPromotion, err)
		}
	}
	return nil
}

func (s *service) FindByID(ctx context.Context, id int64) (domain.Promotion, error) {
	p, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, dao.ErrRecordNotFound) {
		return domain.Promotion{}, fmt.Errorf("%w: id %d", ErrPromotionNotFound, id)
	}
	return p, err
}

func (s *service) List(ctx context.Context, offset, limit int) ([]domain.Promotion, int64, error) {
	var (
		eg    errgroup.Group
		ps    []domain.Promotion
		total int64
	)
	eg.Go(func() error {
		var err error
		ps, err = s.repo.List(ctx, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.Count(ctx)
		return err
	})
	return ps, total, eg.Wait()
}

func (s *service) SyncCampaignStatus(ctx context.Context, now time.Time) (int64, int64, error) {
	return s.repo.SyncCampaignStatus(ctx, now)
}
