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
	"github.com/ecodeclub/laundry/internal/store/internal/domain"
	"github.com/ecodeclub/laundry/internal/store/internal/repository/dao"
)

type StoreRepository interface {
	Save(ctx context.Context, s domain.Store) (int64, error)
	FindByID(ctx context.Context, id int64) (domain.Store, error)
	FindByTenantID(ctx context.Context, tenantID int64) ([]domain.Store, error)
}

type storeRepository struct {
	dao dao.StoreDAO
}

func NewStoreRepository(d dao.StoreDAO) StoreRepository {
	return &storeRepository{dao: d}
}

func (r *storeRepository) Save(ctx context.Context, s domain.Store) (int64, error) {
	return r.dao.Save(ctx, r.toEntity(s))
}

func (r *storeRepository) FindByID(ctx context.Context, id int64) (domain.Store, error) {
	s, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Store{}, err
	}
	return r.toDomain(s), nil
}

func (r *storeRepository) FindByTenantID(ctx context.Context, tenantID int64) ([]domain.Store, error) {
	ss, err := r.dao.FindByTenantID(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	return slice.Map(ss, func(_ int, src dao.Store) domain.Store {
		return r.toDomain(src)
	}), nil
}

func (r *storeRepository) toEntity(s domain.Store) dao.Store {
	return dao.Store{
		Id:       s.ID,
		TenantId: s.TenantID,
		Name:     s.Name,
		Address:  s.Address,
		Status:   string(s.Status),
		PaymentMethods: slice.Map(s.PaymentMethods, func(_ int, src domain.PaymentMethod) dao.PaymentMethod {
			return dao.PaymentMethod{Provider: src.Provider, Method: src.Method, Details: src.Details}
		}),
		Dtime: s.Dtime,
	}
}

func (r *storeRepository) toDomain(s dao.Store) domain.Store {
	return domain.Store{
		ID:       s.Id,
		TenantID: s.TenantId,
		Name:     s.Name,
		Address:  s.Address,
		Status:   domain.StoreStatus(s.Status),
		PaymentMethods: slice.Map(s.PaymentMethods, func(_ int, src dao.PaymentMethod) domain.PaymentMethod {
			return domain.PaymentMethod{Provider: src.Provider, Method: src.Method, Details: src.Details}
		}),
		Ctime: s.Ctime,
		Utime: s.Utime,
		Dtime: s.Dtime,
	}
}
