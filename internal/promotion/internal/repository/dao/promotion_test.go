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

package dao

import (
	"context"
	"testing"
	"time"

	"github.com/ecodeclub/ekit/sqlx"
	testioc "github.com/ecodeclub/laundry/internal/test/ioc"
	"github.com/ego-component/egorm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// payment 只包含统计需要的列
type payment struct {
	Id          int64 `gorm:"primaryKey;autoIncrement"`
	OrderId     int64
	StoreId     int64
	TenantId    int64
	UserId      int64
	Status      string
	TotalAmount int64
	Dtime       int64
}

func (payment) TableName() string {
	return PaymentsTable
}

type order struct {
	Id             int64 `gorm:"primaryKey;autoIncrement"`
	StoreId        int64
	TenantId       int64
	UserId         int64
	PromotionId    int64
	DiscountAmount int64
	Dtime          int64
}

func (order) TableName() string {
	return OrdersTable
}

func initTables(db *egorm.Component) error {
	if err := InitTables(db); err != nil {
		return err
	}
	return db.AutoMigrate(&payment{}, &order{})
}

func TestGORMPromotionDAO_SumSuccessfulPayments(t *testing.T) {
	db := testioc.NewSQLiteDB(t, initTables)
	d := NewGORMPromotionDAO(db)
	ctx := context.Background()

	require.NoError(t, db.Create([]payment{
		{StoreId: 1, TenantId: 1, UserId: 7, Status: PaymentStatusSuccess, TotalAmount: 600},
		{StoreId: 1, TenantId: 1, UserId: 8, Status: PaymentStatusSuccess, TotalAmount: 350},
		{StoreId: 1, TenantId: 1, UserId: 7, Status: "FAILED", TotalAmount: 1000},
		{StoreId: 1, TenantId: 1, UserId: 7, Status: PaymentStatusSuccess, TotalAmount: 1000, Dtime: 1},
		{StoreId: 2, TenantId: 1, UserId: 7, Status: PaymentStatusSuccess, TotalAmount: 50},
	}).Error)

	testCases := []struct {
		name   string
		column string
		id     int64
		want   int64
	}{
		{name: "门店", column: ColumnStoreID, id: 1, want: 950},
		{name: "租户", column: ColumnTenantID, id: 1, want: 1000},
		{name: "用户", column: ColumnUserID, id: 7, want: 650},
		{name: "没有支付", column: ColumnStoreID, id: 3, want: 0},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			sum, err := d.SumSuccessfulPayments(ctx, tc.column, tc.id)
			require.NoError(t, err)
			assert.Equal(t, tc.want, sum)
		})
	}
}

func TestGORMPromotionDAO_PromotionUsage(t *testing.T) {
	db := testioc.NewSQLiteDB(t, initTables)
	d := NewGORMPromotionDAO(db)
	ctx := context.Background()

	require.NoError(t, db.Create([]order{
		{Id: 1, StoreId: 1, TenantId: 1, UserId: 7, PromotionId: 10, DiscountAmount: 20},
		{Id: 2, StoreId: 2, TenantId: 1, UserId: 7, PromotionId: 10, DiscountAmount: 30},
		{Id: 3, StoreId: 1, TenantId: 1, UserId: 8, PromotionId: 10, DiscountAmount: 40},
		// 还没有支付成功
		{Id: 4, StoreId: 1, TenantId: 1, UserId: 8, PromotionId: 10, DiscountAmount: 50},
		{Id: 5, StoreId: 1, TenantId: 1, UserId: 7, PromotionId: 11, DiscountAmount: 60},
		{Id: 6, StoreId: 1, TenantId: 1, UserId: 7, PromotionId: 10, DiscountAmount: 70, Dtime: 1},
	}).Error)
	require.NoError(t, db.Create([]payment{
		{OrderId: 1, Status: PaymentStatusSuccess},
		// 同一个订单的多笔成功支付只算一次
		{OrderId: 1, Status: PaymentStatusSuccess},
		{OrderId: 2, Status: PaymentStatusSuccess},
		{OrderId: 3, Status: "FAILED"},
		{OrderId: 3, Status: PaymentStatusSuccess},
		{OrderId: 4, Status: "WAITING_FOR_PURCHASE"},
		{OrderId: 5, Status: PaymentStatusSuccess},
		{OrderId: 6, Status: PaymentStatusSuccess},
	}).Error)

	testCases := []struct {
		name        string
		promotionID int64
		column      string
		id          int64
		want        int64
	}{
		{name: "总次数", promotionID: 10, want: 3},
		{name: "用户", promotionID: 10, column: ColumnUserID, id: 7, want: 2},
		{name: "门店", promotionID: 10, column: ColumnStoreID, id: 1, want: 2},
		{name: "租户", promotionID: 10, column: ColumnTenantID, id: 1, want: 3},
		{name: "其他活动", promotionID: 11, want: 1},
		{name: "没有使用过", promotionID: 12, want: 0},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cnt, err := d.CountPromotionUsage(ctx, tc.promotionID, tc.column, tc.id)
			require.NoError(t, err)
			assert.Equal(t, tc.want, cnt)
		})
	}

	sum, err := d.SumPromotionDiscount(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(90), sum)
	sum, err = d.SumPromotionDiscount(ctx, 12)
	require.NoError(t, err)
	assert.Equal(t, int64(0), sum)
}

func TestGORMPromotionDAO_SyncStatus(t *testing.T) {
	db := testioc.NewSQLiteDB(t, InitTables)
	d := NewGORMPromotionDAO(db)
	ctx := context.Background()
	now := time.Now().UnixMilli()
	hour := time.Hour.Milliseconds()

	save := func(status string, start, end int64) int64 {
		id, err := d.Save(ctx, Promotion{
			Name:      status,
			Status:    status,
			StartTime: start,
			EndTime:   end,
			Rewards: sqlx.JsonColumn[[]Reward]{
				Val:   []Reward{{Type: "FIXED_AMOUNT", Value: 10, Unit: "VND"}},
				Valid: true,
			},
		})
		require.NoError(t, err)
		return id
	}
	expired := save(StatusActive, now-2*hour, now-hour)
	started := save(StatusScheduled, now-hour, 0)
	future := save(StatusScheduled, now+hour, now+2*hour)
	running := save(StatusActive, now-hour, now+hour)
	draft := save("DRAFT", now-2*hour, now-hour)

	finished, err := d.FinishExpired(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, int64(1), finished)
	activated, err := d.ActivateStarted(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, int64(1), activated)

	wants := map[int64]string{
		expired: StatusFinished,
		started: StatusActive,
		future:  StatusScheduled,
		running: StatusActive,
		draft:   "DRAFT",
	}
	for id, want := range wants {
		p, err := d.FindByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, want, p.Status, p.Name)
	}

	actives, err := d.FindActive(ctx, now)
	require.NoError(t, err)
	require.Len(t, actives, 2)
	assert.Equal(t, started, actives[0].Id)
	assert.Equal(t, running, actives[1].Id)
	assert.Equal(t, []Reward{{Type: "FIXED_AMOUNT", Value: 10, Unit: "VND"}}, actives[0].Rewards.Val)
}
