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
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ecodeclub/laundry/internal/machine"
	"github.com/ecodeclub/laundry/internal/order/internal/domain"
	"github.com/ecodeclub/laundry/internal/order/internal/repository"
	"github.com/ecodeclub/laundry/internal/order/internal/repository/dao"
	"github.com/ecodeclub/laundry/internal/pkg/database"
	"github.com/ecodeclub/laundry/internal/pkg/sequencenumber"
	"github.com/ecodeclub/laundry/internal/promotion"
	"github.com/ecodeclub/laundry/internal/store"
	"github.com/gotomicro/ego/core/elog"
	"golang.org/x/sync/errgroup"
)

// Service 订单状态机。所有状态变更都先校验状态转移表，
// 再以当前状态为条件更新，并发修改的时候只有一个能成功
type Service interface {
	CreateOrder(ctx context.Context, uid int64, storeID int64, selections []domain.MachineSelection) (domain.Order, error)
	FindByID(ctx context.Context, id int64) (domain.Order, error)
	FindBySN(ctx context.Context, sn string) (domain.Order, error)
	ListByUser(ctx context.Context, uid int64, offset, limit int) ([]domain.Order, int64, error)
	// ListByStatus 按照 id 游标分页，不包括明细
	ListByStatus(ctx context.Context, statuses []domain.OrderStatus, afterID int64, limit int) ([]domain.Order, error)
	// UpdateStatus 先更新订单状态再操作机器。进入 IN_PROGRESS 的时候启动所有还没启动的机器，
	// 已经是 IN_PROGRESS 的订单再次调用只会启动剩下的机器。进入 FINISHED 或者 CANCELLED 的时候释放机器
	UpdateStatus(ctx context.Context, id int64, to domain.OrderStatus) error
	// CancelOrder 只有还没有支付成功的订单可以取消，不处理订单的支付
	CancelOrder(ctx context.Context, id int64, by int64) error
	MarkDetailFinished(ctx context.Context, detailID int64) (bool, error)
	CancelDetails(ctx context.Context, orderID int64) (int64, error)
}

type service struct {
	repo         repository.OrderRepository
	tx           database.Transactor
	storeSvc     store.Service
	machineSvc   machine.Service
	promotionSvc promotion.Service
	snGenerator  *sequencenumber.Generator
	logger       *elog.Component
}

func NewService(repo repository.OrderRepository,
	tx database.Transactor,
	storeSvc store.Service,
	machineSvc machine.Service,
	promotionSvc promotion.Service,
	snGenerator *sequencenumber.Generator) Service {
	return &service{
		repo:         repo,
		tx:           tx,
		storeSvc:     storeSvc,
		machineSvc:   machineSvc,
		promotionSvc: promotionSvc,
		snGenerator:  snGenerator,
		logger:       elog.DefaultLogger,
	}
}

func (s *service) CreateOrder(ctx context.Context, uid int64, storeID int64, selections []domain.MachineSelection) (domain.Order, error) {
	if err := s.validateSelections(selections); err != nil {
		return domain.Order{}, err
	}
	st, err := s.storeSvc.FindActiveStore(ctx, storeID)
	if err != nil {
		return domain.Order{}, err
	}
	details, err := s.buildDetails(ctx, storeID, selections)
	if err != nil {
		return domain.Order{}, err
	}
	order := domain.Order{
		TenantID: st.TenantID,
		StoreID:  storeID,
		UserID:   uid,
		Status:   domain.StatusNew,
		Details:  details,
	}
	order.ApplyPromotion(s.selectPromotion(ctx, order))

	order.SN, err = s.snGenerator.Generate(storeID)
	if err != nil {
		return domain.Order{}, fmt.Errorf("生成订单序列号失败: %w", err)
	}
	var id int64
	err = s.tx.Transaction(ctx, func(ctx context.Context) error {
		var err1 error
		id, err1 = s.repo.Create(ctx, order)
		return err1
	})
	if err != nil {
		return domain.Order{}, err
	}
	return s.FindByID(ctx, id)
}

func (s *service) validateSelections(selections []domain.MachineSelection) error {
	if len(selections) == 0 {
		return fmt.Errorf("%w: 至少选择一台机器", ErrInvalidOrder)
	}
	seen := make(map[int64]struct{}, len(selections))
	for _, sel := range selections {
		if _, ok := seen[sel.MachineID]; ok {
			return fmt.Errorf("%w: 机器 %d 重复", ErrInvalidOrder, sel.MachineID)
		}
		seen[sel.MachineID] = struct{}{}
		for _, a := range sel.AddOns {
			if !a.Type.Valid() || a.Quantity < 0 || a.Price < 0 {
				return fmt.Errorf("%w: 附加项 %s", ErrInvalidOrder, a.Type)
			}
		}
	}
	return nil
}

// buildDetails 任何一台机器不可用都会失败，并且返回所有不可用的机器
func (s *service) buildDetails(ctx context.Context, storeID int64, selections []domain.MachineSelection) ([]domain.OrderDetail, error) {
	ids := make([]int64, 0, len(selections))
	for _, sel := range selections {
		ids = append(ids, sel.MachineID)
	}
	ms, err := s.machineSvc.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	machines := make(map[int64]machine.Machine, len(ms))
	for _, m := range ms {
		machines[m.ID] = m
	}
	var unavailable []int64
	details := make([]domain.OrderDetail, 0, len(selections))
	for _, sel := range selections {
		m, ok := machines[sel.MachineID]
		if !ok || m.StoreID != storeID || !m.Available() {
			unavailable = append(unavailable, sel.MachineID)
			continue
		}
		typ := domain.MachineType(m.Type)
		details = append(details, domain.OrderDetail{
			MachineID:   m.ID,
			MachineType: typ,
			Status:      domain.DetailStatusNew,
			AddOns:      sel.AddOns,
			Price:       domain.ComputePrice(typ, m.BasePrice, sel.AddOns),
		})
	}
	if len(unavailable) > 0 {
		return nil, &MachinesUnavailableError{MachineIDs: unavailable}
	}
	return details, nil
}

// selectPromotion 活动配置有问题的时候只记录日志，订单按照原价创建
func (s *service) selectPromotion(ctx context.Context, order domain.Order) *domain.PromotionSummary {
	order.RecalculateTotals()
	app, ok, err := s.promotionSvc.SelectBest(ctx, promotion.OrderContext{
		TenantID: order.TenantID,
		StoreID:  order.StoreID,
		UserID:   order.UserID,
		Order: &promotion.OrderSnapshot{
			SubTotal:    order.SubTotal,
			TotalWasher: order.TotalWasher,
			TotalDryer:  order.TotalDryer,
			CreatedAt:   time.Now(),
		},
	})
	if err != nil {
		s.logger.Error("选择促销活动失败",
			elog.FieldErr(err),
			elog.Int64("store_id", order.StoreID))
		return nil
	}
	if !ok {
		return nil
	}
	return &domain.PromotionSummary{
		PromotionID:    app.PromotionID,
		PromotionName:  app.PromotionName,
		DiscountAmount: app.DiscountAmount,
	}
}

func (s *service) FindByID(ctx context.Context, id int64) (domain.Order, error) {
	o, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, dao.ErrRecordNotFound) {
		return domain.Order{}, fmt.Errorf("%w: id %d", ErrOrderNotFound, id)
	}
	return o, err
}

func (s *service) FindBySN(ctx context.Context, sn string) (domain.Order, error) {
	o, err := s.repo.FindBySN(ctx, sn)
	if errors.Is(err, dao.ErrRecordNotFound) {
		return domain.Order{}, fmt.Errorf("%w: sn %s", ErrOrderNotFound, sn)
	}
	return o, err
}

func (s *service) ListByUser(ctx context.Context, uid int64, offset, limit int) ([]domain.Order, int64, error) {
	var (
		eg    errgroup.Group
		os    []domain.Order
		total int64
	)
	eg.Go(func() error {
		var err error
		os, err = s.repo.ListByUser(ctx, uid, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.CountByUser(ctx, uid)
		return err
	})
	return os, total, eg.Wait()
}

func (s *service) ListByStatus(ctx context.Context, statuses []domain.OrderStatus, afterID int64, limit int) ([]domain.Order, error) {
	return s.repo.ListByStatus(ctx, statuses, afterID, limit)
}

func (s *service) UpdateStatus(ctx context.Context, id int64, to domain.OrderStatus) error {
	o, err := s.FindByID(ctx, id)
	if err != nil {
		return err
	}
	// 上一次启动机器中途失败，订单已经是 IN_PROGRESS，只需要启动剩下的机器
	if o.Status == domain.StatusInProgress && to == domain.StatusInProgress {
		return s.startMachines(ctx, o)
	}
	if !o.Status.CanTransitionTo(to) {
		return fmt.Errorf("%w: 订单 %d 不能从 %s 变为 %s", ErrInvalidTransition, id, o.Status, to)
	}
	// 先抢到状态再操作机器，并发的调用只有一个会给机器发指令
	var ok bool
	if to == domain.StatusCancelled {
		ok, err = s.repo.Cancel(ctx, id, []domain.OrderStatus{o.Status}, 0)
	} else {
		ok, err = s.repo.UpdateStatus(ctx, id, []domain.OrderStatus{o.Status}, to)
	}
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: 订单 %d 的状态已经被修改", ErrInvalidTransition, id)
	}
	switch to {
	case domain.StatusInProgress:
		return s.startMachines(ctx, o)
	case domain.StatusFinished:
		return s.finishMachines(ctx, o)
	case domain.StatusCancelled:
		return s.releaseMachines(ctx, o)
	}
	return nil
}

// startMachines 每启动一台机器就把对应的明细标记为 IN_PROGRESS，
// 中途失败的时候剩下的明细还是 NEW，由对账任务再次调用 UpdateStatus 启动
func (s *service) startMachines(ctx context.Context, o domain.Order) error {
	for _, d := range o.Details {
		if d.Status != domain.DetailStatusNew {
			continue
		}
		if err := s.machineSvc.Start(ctx, d.MachineID, d.Price); err != nil {
			return fmt.Errorf("启动机器 %d 失败: %w", d.MachineID, err)
		}
		_, err := s.repo.UpdateDetailStatus(ctx, d.ID,
			[]domain.DetailStatus{domain.DetailStatusNew}, domain.DetailStatusInProgress)
		if err != nil {
			return err
		}
	}
	return nil
}

func (s *service) finishMachines(ctx context.Context, o domain.Order) error {
	for _, d := range o.Details {
		if d.Status != domain.DetailStatusInProgress {
			continue
		}
		if err := s.machineSvc.Finish(ctx, d.MachineID); err != nil {
			return fmt.Errorf("释放机器 %d 失败: %w", d.MachineID, err)
		}
		_, err := s.repo.UpdateDetailStatus(ctx, d.ID,
			[]domain.DetailStatus{domain.DetailStatusInProgress}, domain.DetailStatusFinished)
		if err != nil {
			return err
		}
	}
	return nil
}

func (s *service) releaseMachines(ctx context.Context, o domain.Order) error {
	for _, d := range o.Details {
		if !d.Status.Open() {
			continue
		}
		if d.Status == domain.DetailStatusInProgress {
			if err := s.machineSvc.Finish(ctx, d.MachineID); err != nil {
				return fmt.Errorf("释放机器 %d 失败: %w", d.MachineID, err)
			}
		}
		_, err := s.repo.UpdateDetailStatus(ctx, d.ID,
			[]domain.DetailStatus{domain.DetailStatusNew, domain.DetailStatusInProgress}, domain.DetailStatusCancelled)
		if err != nil {
			return err
		}
	}
	return nil
}

func (s *service) CancelOrder(ctx context.Context, id int64, by int64) error {
	return s.tx.Transaction(ctx, func(ctx context.Context) error {
		o, err := s.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if !o.CanBeCancelled() {
			return fmt.Errorf("%w: 订单 %d 当前状态 %s 不能取消", ErrInvalidTransition, id, o.Status)
		}
		ok, err := s.repo.Cancel(ctx, id, []domain.OrderStatus{o.Status}, by)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("%w: 订单 %d 的状态已经被修改", ErrInvalidTransition, id)
		}
		return s.releaseMachines(ctx, o)
	})
}

func (s *service) MarkDetailFinished(ctx context.Context, detailID int64) (bool, error) {
	return s.repo.UpdateDetailStatus(ctx, detailID,
		[]domain.DetailStatus{domain.DetailStatusInProgress}, domain.DetailStatusFinished)
}

func (s *service) CancelDetails(ctx context.Context, orderID int64) (int64, error) {
	return s.repo.UpdateDetailsStatus(ctx, orderID,
		[]domain.DetailStatus{domain.DetailStatusNew, domain.DetailStatusInProgress}, domain.DetailStatusCancelled)
}
