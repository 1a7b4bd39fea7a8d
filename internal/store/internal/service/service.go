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

	"github.com/ecodeclub/laundry/internal/store/internal/domain"
	"github.com/ecodeclub/laundry/internal/store/internal/repository"
	"github.com/ecodeclub/laundry/internal/store/internal/repository/dao"
)

var (
	ErrStoreNotFound = errors.New("门店不存在")
	ErrStoreInactive = errors.New("门店未营业")
)

type Service interface {
	Save(ctx context.Context, s domain.Store) (int64, error)
	FindByID(ctx context.Context, id int64) (domain.Store, error)
	// FindActiveStore 门店必须处于营业状态并且没有被删除
	FindActiveStore(ctx context.Context, id int64) (domain.Store, error)
	FindByTenantID(ctx context.Context, tenantID int64) ([]domain.Store, error)
}

type service struct {
	repo repository.StoreRepository
}

func NewService(repo repository.StoreRepository) Service {
	return &service{repo: repo}
}

func (s *service) Save(ctx context.Context, st domain.Store) (int64, error) {
	if st.Status == "" {
		st.Status = domain.StoreStatusActive
	}
	return s.repo.Save(ctx, st)
}

func (s *service) FindByID(ctx context.Context, id int64) (domain.Store, error) {
	st, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, dao.ErrRecordNotFound) {
		return domain.Store{}, fmt.Errorf("%w: id=%d", ErrStoreNotFound, id)
	}
	return st, err
}

func (s *service) FindActiveStore(ctx context.Context, id int64) (domain.Store, error) {
	st, err := s.FindByID(ctx, id)
	if err != nil {
		return domain.Store{}, err
	}
	if !st.Active() {
		return domain.Store{}, fmt.Errorf("%w: id=%d, status=%s", ErrStoreInactive, id, st.Status)
	}
	return st, nil
}

func (s *service) FindByTenantID(ctx context.Context, tenantID int64) ([]domain.Store, error) {
	return s.repo.FindByTenantID(ctx, tenantID)
}
