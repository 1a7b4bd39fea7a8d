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
	"time"

	"github.com/ecodeclub/laundry/internal/promotion/internal/domain"
	"github.com/ecodeclub/laundry/internal/promotion/internal/repository"
	"github.com/ecodeclub/laundry/internal/promotion/internal/repository/cache"
	"github.com/ecodeclub/laundry/internal/promotion/internal/repository/dao"
	"github.com/ecodeclub/laundry/internal/promotion/internal/service/condition"
	"github.com/ecodeclub/laundry/internal/promotion/internal/service/limit"
	testioc "github.com/ecodeclub/laundry/internal/test/ioc"
	"github.com/ego-component/egorm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

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
	return dao.PaymentsTable
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
	return dao.OrdersTable
}

type ServiceTestSuite struct {
	suite.Suite
	db  *egorm.Component
	svc Service
}

func TestServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ServiceTestSuite))
}

func (s *ServiceTestSuite) SetupTest() {
	s.db = testioc.NewSQLiteDB(s.T(), dao.InitTables, func(db *egorm.Component) error {
		return db.AutoMigrate(&payment{}, &order{})
	})
	ec, _ := testioc.NewCache(s.T())
	repo := repository.NewPromotionRepository(dao.NewGORMPromotionDAO(s.db), cache.NewPromotionCache(ec))
	s.svc = NewService(repo)
}

func (s *ServiceTestSuite) save(p domain.Promotion) int64 {
	if p.Status == "" {
		p.Status = domain.StatusActive
	}
	if p.StartTime == 0 {
		p.StartTime = time.Now().Add(-time.Hour).UnixMilli()
	}
	id, err := s.svc.Save(context.Background(), p)
	require.NoError(s.T(), err)
	return id
}

func fixed(v int64) []domain.Reward {
	return []domain.Reward{{Type: domain.RewardTypeFixedAmount, Value: v, Unit: domain.UnitVND}}
}

func (s *ServiceTestSuite) TestSelectBest() {
	t := s.T()
	washer := []domain.Condition{
		{Type: domain.ConditionTypeMachineTypes, Operator: domain.OperatorIn, Value: []string{"WASHER"}},
	}
	s.save(domain.Promotion{Name: "洗衣机减10", Conditions: washer, Rewards: fixed(10)})
	tieA := s.save(domain.Promotion{Name: "减20-A", Rewards: fixed(20)})
	s.save(domain.Promotion{Name: "减20-B", Rewards: fixed(20)})
	s.save(domain.Promotion{Name: "其他租户减50", TenantID: 2, Rewards: fixed(50)})
	s.save(domain.Promotion{Name: "暂停减60", Status: domain.StatusPaused, Rewards: fixed(60)})
	s.save(domain.Promotion{
		Name:      "未开始减70",
		StartTime: time.Now().Add(time.Hour).UnixMilli(),
		Rewards:   fixed(70),
	})
	s.save(domain.Promotion{
		Name:       "烘干机减80",
		Conditions: []domain.Condition{{Type: domain.ConditionTypeMachineTypes, Operator: domain.OperatorIn, Value: []string{"DRYER"}}},
		Rewards:    fixed(80),
	})

	octx := domain.OrderContext{
		TenantID: 1,
		StoreID:  1,
		UserID:   7,
		Order:    &domain.OrderSnapshot{SubTotal: 110, TotalWasher: 1, CreatedAt: time.Now()},
	}
	app, ok, err := s.svc.SelectBest(context.Background(), octx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, domain.Application{PromotionID: tieA, PromotionName: "减20-A", DiscountAmount: 20}, app)
	assert.GreaterOrEqual(t, octx.SubTotal()-app.DiscountAmount, int64(0))
}

func (s *ServiceTestSuite) TestSelectBest_LimitBreach() {
	t := s.T()
	require.NoError(t, s.db.Create([]payment{
		{StoreId: 1, TenantId: 1, UserId: 7, Status: dao.PaymentStatusSuccess, TotalAmount: 950},
	}).Error)
	s.save(domain.Promotion{
		Name:    "门店限额",
		Rewards: fixed(100),
		Limits:  []domain.Limit{{Type: domain.LimitTypeAmountPerStore, Value: 1000, Unit: domain.UnitVND}},
	})

	octx := domain.OrderContext{
		TenantID: 1,
		StoreID:  1,
		Order:    &domain.OrderSnapshot{SubTotal: 500, CreatedAt: time.Now()},
	}
	_, ok, err := s.svc.SelectBest(context.Background(), octx)
	require.NoError(t, err)
	assert.False(t, ok)

	// 另一个门店还没有花费
	octx.StoreID = 2
	app, ok, err := s.svc.SelectBest(context.Background(), octx)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, int64(100), app.DiscountAmount)
}

// paid 模拟一笔使用了活动并且支付成功的订单
func (s *ServiceTestSuite) paid(promotionID, userID, discount int64) {
	o := order{StoreId: 1, TenantId: 1, UserId: userID, PromotionId: promotionID, DiscountAmount: discount}
	require.NoError(s.T(), s.db.Create(&o).Error)
	require.NoError(s.T(), s.db.Create(&payment{
		OrderId: o.Id, StoreId: 1, TenantId: 1, UserId: userID,
		Status: dao.PaymentStatusSuccess, TotalAmount: 100,
	}).Error)
}

func (s *ServiceTestSuite) TestSelectBest_UsageLimit() {
	t := s.T()
	ctx := context.Background()
	once := s.save(domain.Promotion{
		Name:    "每人一次减50",
		Rewards: fixed(50),
		Limits:  []domain.Limit{{Type: domain.LimitTypeUsagePerUser, Value: 1, Unit: domain.UnitOrder}},
	})
	budget := s.save(domain.Promotion{
		Name:    "让利上限减30",
		Rewards: fixed(30),
		Limits:  []domain.Limit{{Type: domain.LimitTypeTotalAmount, Value: 100, Unit: domain.UnitVND}},
	})
	octx := domain.OrderContext{
		TenantID: 1,
		StoreID:  1,
		UserID:   7,
		Order:    &domain.OrderSnapshot{SubTotal: 200, CreatedAt: time.Now()},
	}

	app, ok, err := s.svc.SelectBest(ctx, octx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, once, app.PromotionID)

	// 用户已经用过一次，退而求其次
	s.paid(once, 7, 50)
	app, ok, err = s.svc.SelectBest(ctx, octx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, budget, app.PromotionID)

	// 其他用户还可以用
	octx.UserID = 8
	app, ok, err = s.svc.SelectBest(ctx, octx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, once, app.PromotionID)

	// 已经让利 90，再让 30 就超过 100 了
	octx.UserID = 7
	s.paid(budget, 9, 30)
	s.paid(budget, 10, 60)
	_, ok, err = s.svc.SelectBest(ctx, octx)
	require.NoError(t, err)
	assert.False(t, ok)
}

func (s *ServiceTestSuite) TestSelect_InvalidCondition() {
	_, _, err := s.svc.Select(context.Background(), domain.OrderContext{
		Order: &domain.OrderSnapshot{SubTotal: 100},
	}, []domain.Promotion{
		{
			ID: 1,
			Conditions: []domain.Condition{
				{Type: domain.ConditionTypeTimeInDay, Operator: domain.OperatorIn, Value: []string{"a", "b"}},
			},
			Rewards: fixed(10),
		},
	})
	assert.ErrorIs(s.T(), err, ErrInvalidPromotion)
}

func (s *ServiceTestSuite) TestSaveAndFind() {
	t := s.T()
	ctx := context.Background()
	_, err := s.svc.Save(ctx, domain.Promotion{})
	assert.ErrorIs(t, err, ErrInvalidPromotion)
	_, err = s.svc.Save(ctx, domain.Promotion{Name: "a", StartTime: 100, EndTime: 10})
	assert.ErrorIs(t, err, ErrInvalidPromotion)
	_, err = s.svc.Save(ctx, domain.Promotion{
		Name:       "a",
		Conditions: []domain.Condition{{Type: "WEATHER"}},
	})
	assert.ErrorIs(t, err, ErrInvalidPromotion)
	_, err = s.svc.Save(ctx, domain.Promotion{
		Name: "a",
		Conditions: []domain.Condition{
			{Type: domain.ConditionTypeMachineTypes, Operator: domain.OperatorBetween, Value: []string{"WASHER"}},
		},
	})
	assert.ErrorIs(t, err, condition.ErrUnsupportedOperator)
	_, err = s.svc.Save(ctx, domain.Promotion{
		Name:   "a",
		Limits: []domain.Limit{{Type: "USAGE_PER_DAY", Value: 1}},
	})
	assert.ErrorIs(t, err, ErrInvalidPromotion)
	assert.ErrorIs(t, err, limit.ErrUnknownLimit)
	_, err = s.svc.Save(ctx, domain.Promotion{
		Name:   "a",
		Limits: []domain.Limit{{Type: domain.LimitTypeTotalUsage, Value: 100, Unit: domain.UnitVND}},
	})
	assert.ErrorIs(t, err, limit.ErrInvalidLimit)

	id, err := s.svc.Save(ctx, domain.Promotion{Name: "草稿", Rewards: fixed(10)})
	require.NoError(t, err)
	p, err := s.svc.FindByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusDraft, p.Status)
	assert.Equal(t, fixed(10), p.Rewards)

	_, err = s.svc.FindByID(ctx, id+100)
	assert.ErrorIs(t, err, ErrPromotionNotFound)

	ps, total, err := s.svc.List(ctx, 0, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Len(t, ps, 1)
}

func (s *ServiceTestSuite) TestSyncCampaignStatus() {
	t := s.T()
	ctx := context.Background()
	now := time.Now()
	id := s.save(domain.Promotion{
		Name:      "将要开始",
		Status:    domain.StatusScheduled,
		StartTime: now.Add(-time.Minute).UnixMilli(),
		Rewards:   fixed(10),
	})
	octx := domain.OrderContext{TenantID: 1, Order: &domain.OrderSnapshot{SubTotal: 100, CreatedAt: now}}
	// 预热缓存
	_, ok, err := s.svc.SelectBest(ctx, octx)
	require.NoError(t, err)
	assert.False(t, ok)

	finished, activated, err := s.svc.SyncCampaignStatus(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, int64(0), finished)
	assert.Equal(t, int64(1), activated)

	app, ok, err := s.svc.SelectBest(ctx, octx)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, id, app.PromotionID)
}
