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
	"github.com/ecodeclub/laundry/internal/payment/internal/domain"
	"github.com/ecodeclub/laundry/internal/payment/internal/repository/dao"
)

type PaymentRepository interface {
	Create(ctx context.Context, p domain.Payment) (int64, error)
	FindByID(ctx context.Context, id int64) (domain.Payment, error)
	FindByTransactionCode(ctx context.Context, code string) (domain.Payment, error)
	FindByOrderID(ctx context.Context, orderID int64) ([]domain.Payment, error)
	ExistsTransactionCode(ctx context.Context, code string) (bool, error)
	HasActivePayment(ctx context.Context, orderID int64) (bool, error)
	UpdateStatus(ctx context.Context, id int64, from domain.Status, to domain.Status) (bool, error)
	UpdateDetails(ctx context.Context, id int64, from domain.Status, to domain.Status, providerTxnID string, details map[string]string) (bool, error)
	ListByStatusBefore(ctx context.Context, statuses []domain.Status, before int64, afterID int64, limit int) ([]domain.Payment, error)
}

type paymentRepository struct {
	dao dao.PaymentDAO
}

func NewPaymentRepository(d dao.PaymentDAO) PaymentRepository {
	return &paymentRepository{dao: d}
}

func (r *paymentRepository) Create(ctx context.Context, p domain.Payment) (int64, error) {
	return r.dao.Create(ctx, r.toEntity(p))
}

func (r *paymentRepository) FindByID(ctx context.Context, id int64) (domain.Payment, error) {
	p, err := r.dao.FindByID(ctx, id)
	return r.toDomain(p), err
}

func (r *paymentRepository) FindByTransactionCode(ctx context.Context, code string) (domain.Payment, error) {
	p, err := r.dao.FindByTransactionCode(ctx, code)
	return r.toDomain(p), err
}

func (r *paymentRepository) FindByOrderID(ctx context.Context, orderID int64) ([]domain.Payment, error) {
	ps, err := r.dao.FindByOrderID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	return slice.Map(ps, func(_ int, src dao.Payment) domain.Payment {
		return r.toDomain(src)
	}), nil
}

func (r *paymentRepository) ExistsTransactionCode(ctx context.Context, code string) (bool, error) {
	return r.dao.ExistsTransactionCode(ctx, code)
}

func (r *paymentRepository) HasActivePayment(ctx context.Context, orderID int64) (bool, error) {
	cnt, err := r.dao.CountActiveByOrderID(ctx, orderID, toStrings(domain.ActiveStatuses()))
	return cnt > 0, err
}

func (r *paymentRepository) UpdateStatus(ctx context.Context, id int64, from domain.Status, to domain.Status) (bool, error) {
	rows, err := r.dao.UpdateStatus(ctx, id, []string{string(from)}, string(to), to.Active())
	return rows > 0, err
}

func (r *paymentRepository) UpdateDetails(ctx context.Context, id int64, from domain.Status, to domain.Status,
	providerTxnID string, details map[string]string) (bool, error) {
	rows, err := r.dao.UpdateDetails(ctx, id, []string{string(from)}, string(to), providerTxnID, details)
	return rows > 0, err
}

func (r *paymentRepository) ListByStatusBefore(ctx context.Context, statuses []domain.Status, before int64, afterID int64, limit int) ([]domain.Payment, error) {
	ps, err := r.dao.ListByStatusBefore(ctx, toStrings(statuses), before, afterID, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(ps, func(_ int, src dao.Payment) domain.Payment {
		return r.toDomain(src)
	}), nil
}

func toStrings[T ~string](src []T) []string {
	return slice.Map(src, func(_ int, s T) string {
		return string(s)
	})
}

func (r *paymentRepository) toEntity(p domain.Payment) dao.Payment {
	return dao.Payment{
		Id:              p.ID,
		OrderId:         p.OrderID,
		StoreId:         p.StoreID,
		TenantId:        p.TenantID,
		UserId:          p.UserID,
		TransactionCode: p.TransactionCode,
		Provider:        string(p.Provider),
		Method:          string(p.Method),
		MethodDetails: sqlx.JsonColumn[map[string]string]{
			Val:   p.MethodDetails,
			Valid: p.MethodDetails != nil,
		},
		ProviderTransactionId: p.ProviderTransactionID,
		Details: sqlx.JsonColumn[map[string]string]{
			Val:   p.Details,
			Valid: p.Details != nil,
		},
		TotalAmount: p.TotalAmount,
		Status:      string(p.Status),
	}
}

func (r *paymentRepository) toDomain(p dao.Payment) domain.Payment {
	return domain.Payment{
		ID:                    p.Id,
		OrderID:               p.OrderId,
		StoreID:               p.StoreId,
		TenantID:              p.TenantId,
		UserID:                p.UserId,
		TransactionCode:       p.TransactionCode,
		Provider:              domain.Provider(p.Provider),
		Method:                domain.Method(p.Method),
		MethodDetails:         p.MethodDetails.Val,
		ProviderTransactionID: p.ProviderTransactionId,
		Details:               p.Details.Val,
		TotalAmount:           p.TotalAmount,
		Status:                domain.Status(p.Status),
		Ctime:                 p.Ctime,
		Utime:                 p.Utime,
	}
}
