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
	"testing"

	"github.com/ecodeclub/laundry/internal/store/internal/domain"
	"github.com/ecodeclub/laundry/internal/store/internal/repository"
	"github.com/ecodeclub/laundry/internal/store/internal/repository/dao"
	testioc "github.com/ecodeclub/laundry/internal/test/ioc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_FindActiveStore(t *testing.T) {
	db := testioc.NewSQLiteDB(t, dao.InitTables)
	svc := NewService(repository.NewStoreRepository(dao.NewGORMStoreDAO(db)))
	ctx := context.Background()

	activeID, err := svc.Save(ctx, domain.Store{
		TenantID: 1,
		Name:     "一号店",
		PaymentMethods: []domain.PaymentMethod{
			{Provider: "VIET_QR", Method: "QR", Details: map[string]string{"bank_code": "MB"}},
		},
	})
	require.NoError(t, err)
	inactiveID, err := svc.Save(ctx, domain.Store{TenantID: 1, Name: "二号店", Status: domain.StoreStatusInactive})
	require.NoError(t, err)
	deletedID, err := svc.Save(ctx, domain.Store{TenantID: 1, Name: "三号店", Dtime: 123})
	require.NoError(t, err)

	testCases := []struct {
		name    string
		id      int64
		wantErr error
	}{
		{name: "营业中", id: activeID},
		{name: "未营业", id: inactiveID, wantErr: ErrStoreInactive},
		{name: "已删除", id: deletedID, wantErr: ErrStoreInactive},
		{name: "不存在", id: 10086, wantErr: ErrStoreNotFound},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			st, err := svc.FindActiveStore(ctx, tc.id)
			assert.ErrorIs(t, err, tc.wantErr)
			if tc.wantErr != nil {
				return
			}
			assert.Equal(t, tc.id, st.ID)
			pm, ok := st.PaymentMethod("VIET_QR", "QR")
			assert.True(t, ok)
			assert.Equal(t, "MB", pm.Details["bank_code"])
			_, ok = st.PaymentMethod("VNPAY", "CARD")
			assert.False(t, ok)
		})
	}
}

func TestService_SaveUpdatesExisting(t *testing.T) {
	db := testioc.NewSQLiteDB(t, dao.InitTables)
	svc := NewService(repository.NewStoreRepository(dao.NewGORMStoreDAO(db)))
	ctx := context.Background()

	id, err := svc.Save(ctx, domain.Store{TenantID: 2, Name: "旧名字"})
	require.NoError(t, err)
	_, err = svc.Save(ctx, domain.Store{ID: id, TenantID: 2, Name: "新名字", Status: domain.StoreStatusActive})
	require.NoError(t, err)

	stores, err := svc.FindByTenantID(ctx, 2)
	require.NoError(t, err)
	require.Len(t, stores, 1)
	assert.Equal(t, "新名字", stores[0].Name)
}
