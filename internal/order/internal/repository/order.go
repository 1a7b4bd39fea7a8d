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

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ekit/sqlx"
	"github.com/ecodeclub/laundry/internal/order/internal/domain"
	"github.com/ecodeclub/laundry/internal/order/internal/repository/dao"
)

type OrderRepository interface {
	Create(ctx context.Context, o domain.Order) (int64, error)
	// FindByID 包括明细
	FindByID(ctx context.Context, id int64) (domain.Order, error)
	FindBySN(ctx context.Context, sn string) (domain.Order, error)
	ListByUser(ctx context.Context, uid int64, offset, limit int) ([]domain.Order, error)
	CountByUser(ctx context.Context, uid int64) (int64, error)
	// ListByStatus 不包括明细
	ListByStatus(ctx context.Context, statuses []domain.OrderStatus, afterID int64, limit int) ([]domain.Order, error)
	UpdateStatus(ctx context.Context, id int64, from []domain.OrderStatus, to domain.OrderStatus) (bool, error)
	Cancel(ctx context.Context, id int64, from []domain.OrderStatus, by int64) (bool, error)
	UpdateDetailStatus(ctx context.Context, detailID int64, from []domain.DetailStatus, to domain.DetailStatus) (bool, error)
	UpdateDetailsStatus(ctx context.Context, orderID int64, from []domain.DetailStatus, to domain.DetailStatus) (int64, error)
}

type orderRepository struct {
	dao dao.OrderDAO
}

func NewOrderRepository(d dao.OrderDAO) OrderRepository {
	return &orderRepository{dao: d}
}

func (r *orderRepository) Create(ctx context.Context, o domain.Order) (int64, error) {
	return r.dao.Create(ctx, r.toEntity(o), slice.Map(o.Details, func(_ int, src domain.OrderDetail) dao.OrderDetail {
		return r.toDetailEntity(src)
	}))
}

func (r *orderRepository) FindByID(ctx context.Context, id int64) (domain.Order, error) {
	o, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Order{}, err
	}
	return r.withDetails(ctx, o)
}

func (r *orderRepository) FindBySN(ctx context.Context, sn string) (domain.Order, error) {
	o, err := r.dao.FindBySN(ctx, sn)
	if err != nil {
		return domain.Order{}, err
	}
	return r.withDetails(ctx, o)
}

func (r *orderRepository) withDetails(ctx context.Context, o dao.Order) (domain.Order, error) {
	details, err := r.dao.FindDetails(ctx, o.Id)
	if err != nil {
		return domain.Order{}, err
	}
	res := r.toDomain(o)
	res.Details = slice.Map(details, func(_ int, src dao.OrderDetail) domain.OrderDetail {
		return r.toDetailDomain(src)
	})
	return res, nil
}

func (r *orderRepository) ListByUser(ctx context.Context, uid int64, offset, limit int) ([]domain.Order, error) {
	os, err := r.dao.ListByUser(ctx, uid, offset, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(os, func(_ int, src dao.Order) domain.Order {
		return r.toDomain(src)
	}), nil
}

func (r *orderRepository) CountByUser(ctx context.Context, uid int64) (int64, error) {
	return r.dao.CountByUser(ctx, uid)
}

func (r *orderRepository) ListByStatus(ctx context.Context, statuses []domain.OrderStatus, afterID int64, limit int) ([]domain.Order, error) {
	os, err := r.dao.ListByStatus(ctx, toStrings(statuses), afterID, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(os, func(_ int, src dao.Order) domain.Order {
		return r.toDomain(src)
	}), nil
}

func (r *orderRepository) UpdateStatus(ctx context.Context, id int64, from []domain.OrderStatus, to domain.OrderStatus) (bool, error) {
	rows, err := r.dao.UpdateStatus(ctx, id, toStrings(from), string(to))
	return rows > 0, err
}

func (r *orderRepository) Cancel(ctx context.Context, id int64, from []domain.OrderStatus, by int64) (bool, error) {
	rows, err := r.dao.Cancel(ctx, id, toStrings(from), by)
	return rows > 0, err
}

func (r *orderRepository) UpdateDetailStatus(ctx context.Context, detailID int64, from []domain.DetailStatus, to domain.DetailStatus) (bool, error) {
	rows, err := r.dao.UpdateDetailStatus(ctx, detailID, toStrings(from), string(to))
	return rows > 0, err
}

func (r *orderRepository) UpdateDetailsStatus(ctx context.Context, orderID int64, from []domain.DetailStatus, to domain.DetailStatus) (int64, error) {
	return r.dao.UpdateDetailsStatus(ctx, orderID, toStrings(from), string(to))
}

func toStrings[T ~string](src []T) []string {
	return slice.Map(src, func(_ int, s T) string {
		return string(s)
	})
}

func (r *orderRepository) toEntity(o domain.Order) dao.Order {
	res := dao.Order{
		Id:             o.ID,
		SN:             o.SN,
		TenantId:       o.TenantID,
		StoreId:        o.StoreID,
		UserId:         o.UserID,
		Status:         string(o.Status),
		SubTotal:       o.SubTotal,
		DiscountAmount: o.DiscountAmount,
		TotalAmount:    o.TotalAmount,
		TotalWasher:    o.TotalWasher,
		TotalDryer:     o.TotalDryer,
		DeletedBy:      o.DeletedBy,
		Dtime:          o.Dtime,
	}
	if o.PromotionSummary != nil {
		res.PromotionId = o.PromotionSummary.PromotionID
		res.PromotionSummary = sqlx.JsonColumn[dao.PromotionSummary]{
			Val: dao.PromotionSummary{
				PromotionID:    o.PromotionSummary.PromotionID,
				PromotionName:  o.PromotionSummary.PromotionName,
				DiscountAmount: o.PromotionSummary.DiscountAmount,
			},
			Valid: true,
		}
	}
	return res
}

func (r *orderRepository) toDomain(o dao.Order) domain.Order {
	res := domain.Order{
		ID:             o.Id,
		SN:             o.SN,
		TenantID:       o.TenantId,
		StoreID:        o.StoreId,
		UserID:         o.UserId,
		Status:         domain.OrderStatus(o.Status),
		SubTotal:       o.SubTotal,
		DiscountAmount: o.DiscountAmount,
		TotalAmount:    o.TotalAmount,
		TotalWasher:    o.TotalWasher,
		TotalDryer:     o.TotalDryer,
		DeletedBy:      o.DeletedBy,
		Ctime:          o.Ctime,
		Utime:          o.Utime,
		Dtime:          o.Dtime,
	}
	if o.PromotionSummary.Valid {
		res.PromotionSummary = &domain.PromotionSummary{
			PromotionID:    o.PromotionSummary.Val.PromotionID,
			PromotionName:  o.PromotionSummary.Val.PromotionName,
			DiscountAmount: o.PromotionSummary.Val.DiscountAmount,
		}
	}
	return res
}

func (r *orderRepository) toDetailEntity(d domain.OrderDetail) dao.OrderDetail {
	return dao.OrderDetail{
		Id:          d.ID,
		OrderId:     d.OrderID,
		MachineId:   d.MachineID,
		MachineType: string(d.MachineType),
		Status:      string(d.Status),
		AddOns: sqlx.JsonColumn[[]dao.AddOn]{
			Val: slice.Map(d.AddOns, func(_ int, src domain.AddOn) dao.AddOn {
				return dao.AddOn{Type: string(src.Type), Price: src.Price, Quantity: src.Quantity}
			}),
			Valid: true,
		},
		Price: d.Price,
	}
}

func (r *orderRepository) toDetailDomain(d dao.OrderDetail) domain.OrderDetail {
	return domain.OrderDetail{
		ID:          d.Id,
		OrderID:     d.OrderId,
		MachineID:   d.MachineId,
		MachineType: domain.MachineType(d.MachineType),
		Status:      domain.DetailStatus(d.Status),
		AddOns: slice.Map(d.AddOns.Val, func(_ int, src dao.AddOn) domain.AddOn {
			return domain.AddOn{Type: domain.AddOnType(src.Type), Price: src.Price, Quantity: src.Quantity}
		}),
		Price: d.Price,
		Ctime: d.Ctime,
		Utime: d.Utime,
	}
}
