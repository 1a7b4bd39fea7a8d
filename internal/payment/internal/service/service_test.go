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
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/ecodeclub/laundry/internal/machine"
	"github.com/ecodeclub/laundry/internal/order"
	"github.com/ecodeclub/laundry/internal/payment/internal/domain"
	"github.com/ecodeclub/laundry/internal/payment/internal/event"
	evtmocks "github.com/ecodeclub/laundry/internal/payment/internal/event/mocks"
	"github.com/ecodeclub/laundry/internal/payment/internal/repository"
	"github.com/ecodeclub/laundry/internal/payment/internal/repository/dao"
	"github.com/ecodeclub/laundry/internal/payment/internal/service/provider"
	providermocks "github.com/ecodeclub/laundry/internal/payment/internal/service/provider/mocks"
	"github.com/ecodeclub/laundry/internal/payment/internal/service/provider/vnpay"
	"github.com/ecodeclub/laundry/internal/pkg/database"
	"github.com/ecodeclub/laundry/internal/pkg/snowflake"
	"github.com/ecodeclub/laundry/internal/pkg/transactioncode"
	"github.com/ecodeclub/laundry/internal/promotion"
	"github.com/ecodeclub/laundry/internal/store"
	testioc "github.com/ecodeclub/laundry/internal/test/ioc"
	"github.com/ego-component/egorm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

var bankAccount = map[string]string{
	"bank_code":           "MB",
	"bank_account_number": "0123456789",
	"bank_account_name":   "NGUYEN VAN A",
}

var vnpayCredential = map[string]string{
	"merchant_code":    "M01",
	"terminal_code":    "T01",
	"init_secret_key":  "init-secret",
	"ipnv3_secret_key": "ipn-secret",
}

type PaymentServiceTestSuite struct {
	suite.Suite
	db           *egorm.Component
	svc          Service
	orderSvc     order.Service
	machineSvc   machine.Service
	promotionSvc promotion.Service
	vietQR       *providermocks.MockProvider
	vnPay        *providermocks.MockProvider
	events       []event.PaymentEvent
	tasks        []event.PaymentDetailTask
	taskErr      error
	storeID      int64
	washerID     int64
	dryerID      int64
}

func TestPaymentService(t *testing.T) {
	suite.Run(t, new(PaymentServiceTestSuite))
}

func (s *PaymentServiceTestSuite) SetupTest() {
	t := s.T()
	s.db = testioc.NewSQLiteDB(t, dao.InitTables)
	ec, _ := testioc.NewCache(t)
	q := testioc.NewMQ()
	idGen, err := snowflake.NewKindSnowFlake(0, 2)
	require.NoError(t, err)

	sm := store.InitModule(s.db)
	mm, err := machine.InitModule(s.db, q, idGen)
	require.NoError(t, err)
	pm := promotion.InitModule(s.db, ec)
	om, err := order.InitModule(s.db, ec, q, sm, mm, pm)
	require.NoError(t, err)
	s.orderSvc = om.Svc
	s.machineSvc = mm.Svc
	s.promotionSvc = pm.Svc

	ctrl := gomock.NewController(t)
	s.vietQR = providermocks.NewMockProvider(ctrl)
	s.vietQR.EXPECT().Name().Return(domain.ProviderVietQR).AnyTimes()
	s.vnPay = providermocks.NewMockProvider(ctrl)
	s.vnPay.EXPECT().Name().Return(domain.ProviderVNPay).AnyTimes()

	s.events, s.tasks, s.taskErr = nil, nil, nil
	eventProducer := evtmocks.NewMockPaymentEventProducer(ctrl)
	eventProducer.EXPECT().Produce(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, evt event.PaymentEvent) error {
			s.events = append(s.events, evt)
			return nil
		}).AnyTimes()
	taskProducer := evtmocks.NewMockPaymentDetailTaskProducer(ctrl)
	taskProducer.EXPECT().Produce(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, task event.PaymentDetailTask) error {
			if s.taskErr != nil {
				return s.taskErr
			}
			s.tasks = append(s.tasks, task)
			return nil
		}).AnyTimes()

	s.svc = NewService(repository.NewPaymentRepository(dao.NewGORMPaymentDAO(s.db)),
		database.NewGormTransactor(s.db), om.Svc, sm.Svc,
		provider.NewRegistry(s.vietQR, s.vnPay),
		transactioncode.NewGenerator(), eventProducer, taskProducer)

	ctx := context.Background()
	s.storeID, err = sm.Svc.Save(ctx, store.Store{
		TenantID: 1,
		Name:     "一号店",
		Status:   store.StatusActive,
		PaymentMethods: []store.PaymentMethod{
			{Provider: string(domain.ProviderVietQR), Method: string(domain.MethodQR), Details: bankAccount},
			{Provider: string(domain.ProviderVNPay), Method: string(domain.MethodCard), Details: vnpayCredential},
		},
	})
	require.NoError(t, err)
	s.washerID, err = mm.Svc.Save(ctx, machine.Machine{
		StoreID: s.storeID, ControllerID: "ctrl-1", RelayNo: 1, Name: "洗衣机1",
		Type: machine.TypeWasher, BasePrice: 100, CoinValue: 10, Status: machine.StatusIdle,
	})
	require.NoError(t, err)
	s.dryerID, err = mm.Svc.Save(ctx, machine.Machine{
		StoreID: s.storeID, ControllerID: "ctrl-1", RelayNo: 2, Name: "烘干机1",
		Type: machine.TypeDryer, BasePrice: 5, CoinValue: 5, Status: machine.StatusIdle,
	})
	require.NoError(t, err)
}

// createOrder 洗衣机 100 加一份洗衣液 10，烘干机 5 乘以 30 分钟，总价 260
func (s *PaymentServiceTestSuite) createOrder() order.Order {
	o, err := s.orderSvc.CreateOrder(context.Background(), 100, s.storeID, []order.MachineSelection{
		{MachineID: s.washerID, AddOns: []order.AddOn{{Type: order.AddOnDetergent, Price: 10, Quantity: 1}}},
		{MachineID: s.dryerID, AddOns: []order.AddOn{{Type: order.AddOnDryingDurationMinute, Quantity: 30}}},
	})
	require.NoError(s.T(), err)
	require.Equal(s.T(), int64(260), o.TotalAmount)
	return o
}

func (s *PaymentServiceTestSuite) initialize(o order.Order, prov domain.Provider, method domain.Method) domain.Payment {
	s.mockOf(prov).EXPECT().Validate(method, gomock.Any()).Return(nil)
	p, err := s.svc.Initialize(context.Background(), InitializeRequest{
		UserID:   o.UserID,
		OrderID:  o.ID,
		Amount:   o.TotalAmount,
		Provider: prov,
		Method:   method,
	})
	require.NoError(s.T(), err)
	task := s.readTask()
	assert.Equal(s.T(), p.ID, task.PaymentID)
	return p
}

// waitForPurchase 生成支付详情，进入 WAITING_FOR_PURCHASE
func (s *PaymentServiceTestSuite) waitForPurchase(p domain.Payment) domain.Payment {
	s.mockOf(p.Provider).EXPECT().GenerateDetails(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, pmt domain.Payment) (provider.Result, error) {
			assert.Equal(s.T(), domain.StatusWaitingForPaymentDetail, pmt.Status)
			return provider.Result{
				ProviderTransactionID: "txn-" + pmt.TransactionCode,
				Details: map[string]string{
					domain.DetailQRCode:        "000201010212" + pmt.TransactionCode,
					domain.DetailTransactionID: "txn-" + pmt.TransactionCode,
				},
			}, nil
		})
	res, err := s.svc.GeneratePaymentDetails(context.Background(), p.ID)
	require.NoError(s.T(), err)
	require.Equal(s.T(), domain.StatusWaitingForPurchase, res.Status)
	return res
}

func (s *PaymentServiceTestSuite) mockOf(prov domain.Provider) *providermocks.MockProvider {
	if prov == domain.ProviderVNPay {
		return s.vnPay
	}
	return s.vietQR
}

// readTask 取出最早发送的任务
func (s *PaymentServiceTestSuite) readTask() event.PaymentDetailTask {
	require.NotEmpty(s.T(), s.tasks)
	task := s.tasks[0]
	s.tasks = s.tasks[1:]
	return task
}

func (s *PaymentServiceTestSuite) readEvent() event.PaymentEvent {
	require.NotEmpty(s.T(), s.events)
	evt := s.events[0]
	s.events = s.events[1:]
	return evt
}

func (s *PaymentServiceTestSuite) orderStatus(id int64) order.OrderStatus {
	o, err := s.orderSvc.FindByID(context.Background(), id)
	require.NoError(s.T(), err)
	return o.Status
}

// 所有模块的表建在同一个库里，索引名字不能冲突
func (s *PaymentServiceTestSuite) TestTablesInOneDatabase() {
	t := s.T()
	var tables []string
	require.NoError(t, s.db.Raw("SELECT name FROM sqlite_master WHERE type = 'table' ORDER BY name").
		Scan(&tables).Error)
	assert.Subset(t, tables, []string{"machines", "order_details", "orders", "payments", "promotions", "stores"})

	type index struct {
		Name    string
		TblName string
	}
	var indexes []index
	require.NoError(t, s.db.Raw("SELECT name, tbl_name FROM sqlite_master "+
		"WHERE type = 'index' AND name NOT LIKE 'sqlite_autoindex%'").Scan(&indexes).Error)
	require.NotEmpty(t, indexes)
	for _, idx := range indexes {
		prefix := strings.TrimSuffix(idx.TblName, "s") + "_"
		assert.True(t, strings.HasPrefix(idx.Name, "idx_"+prefix) || strings.HasPrefix(idx.Name, "uniq_"+prefix),
			"表 %s 的索引 %s", idx.TblName, idx.Name)
	}
}

func (s *PaymentServiceTestSuite) TestInitialize() {
	t := s.T()
	o := s.createOrder()
	p := s.initialize(o, domain.ProviderVietQR, domain.MethodQR)

	assert.True(t, p.ID > 0)
	assert.True(t, transactioncode.Valid(p.TransactionCode))
	assert.Equal(t, domain.StatusNew, p.Status)
	assert.Equal(t, o.ID, p.OrderID)
	assert.Equal(t, s.storeID, p.StoreID)
	assert.Equal(t, int64(1), p.TenantID)
	assert.Equal(t, int64(100), p.UserID)
	assert.Equal(t, int64(260), p.TotalAmount)
	assert.Equal(t, bankAccount, p.MethodDetails)
	assert.Equal(t, order.StatusWaitingForPayment, s.orderStatus(o.ID))
}

func (s *PaymentServiceTestSuite) TestInitialize_Failed() {
	testCases := []struct {
		name    string
		before  func(o order.Order) InitializeRequest
		wantErr error
	}{
		{
			name: "金额不一致",
			before: func(o order.Order) InitializeRequest {
				return InitializeRequest{UserID: o.UserID, OrderID: o.ID, Amount: 1,
					Provider: domain.ProviderVietQR, Method: domain.MethodQR}
			},
			wantErr: ErrAmountMismatch,
		},
		{
			name: "门店没有开通",
			before: func(o order.Order) InitializeRequest {
				return InitializeRequest{UserID: o.UserID, OrderID: o.ID, Amount: o.TotalAmount,
					Provider: domain.ProviderVNPay, Method: domain.MethodQR}
			},
			wantErr: ErrPaymentMethodNotFound,
		},
		{
			name: "别人的订单",
			before: func(o order.Order) InitializeRequest {
				return InitializeRequest{UserID: 999, OrderID: o.ID, Amount: o.TotalAmount,
					Provider: domain.ProviderVietQR, Method: domain.MethodQR}
			},
			wantErr: order.ErrOrderNotFound,
		},
		{
			name: "订单不存在",
			before: func(o order.Order) InitializeRequest {
				return InitializeRequest{OrderID: o.ID + 100, Amount: o.TotalAmount,
					Provider: domain.ProviderVietQR, Method: domain.MethodQR}
			},
			wantErr: order.ErrOrderNotFound,
		},
		{
			name: "订单已取消",
			before: func(o order.Order) InitializeRequest {
				require.NoError(s.T(), s.orderSvc.CancelOrder(context.Background(), o.ID, o.UserID))
				return InitializeRequest{UserID: o.UserID, OrderID: o.ID, Amount: o.TotalAmount,
					Provider: domain.ProviderVietQR, Method: domain.MethodQR}
			},
			wantErr: ErrOrderNotPayable,
		},
		{
			name: "已经有进行中的支付",
			before: func(o order.Order) InitializeRequest {
				s.initialize(o, domain.ProviderVietQR, domain.MethodQR)
				s.vietQR.EXPECT().Validate(domain.MethodQR, gomock.Any()).Return(nil)
				return InitializeRequest{UserID: o.UserID, OrderID: o.ID, Amount: o.TotalAmount,
					Provider: domain.ProviderVietQR, Method: domain.MethodQR}
			},
			wantErr: ErrActivePaymentExists,
		},
		{
			name: "门店配置不完整",
			before: func(o order.Order) InitializeRequest {
				s.vnPay.EXPECT().Validate(domain.MethodCard, vnpayCredential).
					Return(provider.ErrInvalidMethodDetails)
				return InitializeRequest{UserID: o.UserID, OrderID: o.ID, Amount: o.TotalAmount,
					Provider: domain.ProviderVNPay, Method: domain.MethodCard}
			},
			wantErr: ErrInvalidMethodDetails,
		},
	}
	for _, tc := range testCases {
		s.Run(tc.name, func() {
			t := s.T()
			// 每个用例都使用新的机器
			s.SetupTest()
			o := s.createOrder()
			req := tc.before(o)
			_, err := s.svc.Initialize(context.Background(), req)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func (s *PaymentServiceTestSuite) TestRoundTrip() {
	t := s.T()
	ctx := context.Background()
	o := s.createOrder()
	p := s.initialize(o, domain.ProviderVietQR, domain.MethodQR)
	p = s.waitForPurchase(p)
	assert.Equal(t, "txn-"+p.TransactionCode, p.ProviderTransactionID)
	assert.Equal(t, "000201010212"+p.TransactionCode, p.QRContent())

	png, err := s.svc.QRCode(ctx, p.ID, 256)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(png, []byte("\x89PNG")))

	p, err = s.svc.UpdateStatusByTransactionCode(ctx, p.TransactionCode, domain.StatusSuccess, domain.ProviderVietQR)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusSuccess, p.Status)
	assert.Equal(t, order.StatusPaymentSuccess, s.orderStatus(o.ID))
	assert.Equal(t, event.PaymentEvent{
		PaymentID:       p.ID,
		OrderID:         o.ID,
		TransactionCode: p.TransactionCode,
		Status:          string(domain.StatusSuccess),
		TotalAmount:     260,
	}, s.readEvent())

	// 重复通知
	p, err = s.svc.UpdateStatusByTransactionCode(ctx, p.TransactionCode, domain.StatusSuccess, domain.ProviderVietQR)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusSuccess, p.Status)
	assert.Empty(t, s.events)

	_, err = s.svc.UpdateStatusByTransactionCode(ctx, p.TransactionCode, domain.StatusFailed, domain.ProviderVietQR)
	assert.ErrorIs(t, err, ErrInvalidTransition)
	_, err = s.svc.UpdateStatusByTransactionCode(ctx, p.TransactionCode, "PAID", domain.ProviderVietQR)
	assert.ErrorIs(t, err, ErrInvalidStatus)
	_, err = s.svc.UpdateStatusByTransactionCode(ctx, p.TransactionCode, domain.StatusSuccess, domain.ProviderVNPay)
	assert.ErrorIs(t, err, ErrProviderMismatch)
	_, err = s.svc.UpdateStatusByTransactionCode(ctx, "ZZZZ0000", domain.StatusSuccess, "")
	assert.ErrorIs(t, err, ErrPaymentNotFound)
}

// 每个用户只能用一次的活动，支付成功之后同一个用户再下单就不再优惠
func (s *PaymentServiceTestSuite) TestPromotionUsagePerUser() {
	t := s.T()
	ctx := context.Background()
	pid, err := s.promotionSvc.Save(ctx, promotion.Promotion{
		Name:      "新客立减",
		Status:    promotion.StatusActive,
		StartTime: time.Now().Add(-time.Hour).UnixMilli(),
		Rewards:   []promotion.Reward{{Type: promotion.RewardTypeFixedAmount, Value: 20, Unit: promotion.UnitVND}},
		Limits:    []promotion.Limit{{Type: promotion.LimitTypeUsagePerUser, Value: 1, Unit: promotion.UnitOrder}},
	})
	require.NoError(t, err)
	selections := []order.MachineSelection{{MachineID: s.washerID}}

	o, err := s.orderSvc.CreateOrder(ctx, 100, s.storeID, selections)
	require.NoError(t, err)
	require.NotNil(t, o.PromotionSummary)
	assert.Equal(t, pid, o.PromotionSummary.PromotionID)
	assert.Equal(t, int64(80), o.TotalAmount)

	// 还没有支付成功，不占用次数
	o2, err := s.orderSvc.CreateOrder(ctx, 100, s.storeID, selections)
	require.NoError(t, err)
	require.NotNil(t, o2.PromotionSummary)
	require.NoError(t, s.orderSvc.CancelOrder(ctx, o2.ID, 100))

	p := s.waitForPurchase(s.initialize(o, domain.ProviderVietQR, domain.MethodQR))
	_, err = s.svc.UpdateStatusByTransactionCode(ctx, p.TransactionCode, domain.StatusSuccess, domain.ProviderVietQR)
	require.NoError(t, err)
	s.readEvent()

	o3, err := s.orderSvc.CreateOrder(ctx, 100, s.storeID, selections)
	require.NoError(t, err)
	assert.Nil(t, o3.PromotionSummary)
	assert.Equal(t, int64(100), o3.TotalAmount)

	o4, err := s.orderSvc.CreateOrder(ctx, 101, s.storeID, selections)
	require.NoError(t, err)
	require.NotNil(t, o4.PromotionSummary)
}

func (s *PaymentServiceTestSuite) TestGeneratePaymentDetails_ProviderFailed() {
	t := s.T()
	ctx := context.Background()
	o := s.createOrder()
	p := s.initialize(o, domain.ProviderVietQR, domain.MethodQR)

	s.vietQR.EXPECT().GenerateDetails(gomock.Any(), gomock.Any()).
		Return(provider.Result{}, errors.New("connection refused"))
	_, err := s.svc.GeneratePaymentDetails(ctx, p.ID)
	assert.ErrorIs(t, err, ErrProviderFailed)

	p, err = s.svc.FindByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusFailed, p.Status)
	assert.Equal(t, order.StatusPaymentFailed, s.orderStatus(o.ID))
	assert.Equal(t, string(domain.StatusFailed), s.readEvent().Status)

	// 只能从 NEW 生成
	_, err = s.svc.GeneratePaymentDetails(ctx, p.ID)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	_, err = s.svc.Retry(ctx, 999, p.ID)
	assert.ErrorIs(t, err, ErrPaymentNotFound)

	p, err = s.svc.Retry(ctx, o.UserID, p.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusNew, p.Status)
	assert.Equal(t, order.StatusWaitingForPayment, s.orderStatus(o.ID))
	assert.Equal(t, p.ID, s.readTask().PaymentID)

	_, err = s.svc.Retry(ctx, o.UserID, p.ID)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	p = s.waitForPurchase(p)
	_, err = s.svc.UpdateStatusByTransactionCode(ctx, p.TransactionCode, domain.StatusSuccess, "")
	require.NoError(t, err)
	assert.Equal(t, order.StatusPaymentSuccess, s.orderStatus(o.ID))
}

func (s *PaymentServiceTestSuite) TestGeneratePaymentDetails_ZeroAmount() {
	t := s.T()
	ctx := context.Background()
	freeID, err := s.machineSvc.Save(ctx, machine.Machine{
		StoreID: s.storeID, ControllerID: "ctrl-1", RelayNo: 3, Name: "免费洗衣机",
		Type: machine.TypeWasher, BasePrice: 0, CoinValue: 10, Status: machine.StatusIdle,
	})
	require.NoError(t, err)
	o, err := s.orderSvc.CreateOrder(ctx, 100, s.storeID, []order.MachineSelection{{MachineID: freeID}})
	require.NoError(t, err)
	require.Zero(t, o.TotalAmount)

	p := s.initialize(o, domain.ProviderVietQR, domain.MethodQR)
	// 不会调用渠道
	p, err = s.svc.GeneratePaymentDetails(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusSuccess, p.Status)
	assert.Equal(t, order.StatusPaymentSuccess, s.orderStatus(o.ID))

	_, err = s.svc.QRCode(ctx, p.ID, 256)
	assert.ErrorIs(t, err, ErrQRCodeNotReady)
}

func (s *PaymentServiceTestSuite) TestHandleVietQRTransactionSync() {
	t := s.T()
	ctx := context.Background()
	o := s.createOrder()
	p := s.waitForPurchase(s.initialize(o, domain.ProviderVietQR, domain.MethodQR))
	content := "MBVCB.3349712." + p.TransactionCode + ".CT tu 0123456789"

	_, err := s.svc.HandleVietQRTransactionSync(ctx, content, 100)
	assert.ErrorIs(t, err, ErrAmountMismatch)
	_, err = s.svc.HandleVietQRTransactionSync(ctx, "chuyen tien", 260)
	assert.ErrorIs(t, err, ErrPaymentNotFound)

	p, err = s.svc.HandleVietQRTransactionSync(ctx, content, 260)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusSuccess, p.Status)
	assert.Equal(t, order.StatusPaymentSuccess, s.orderStatus(o.ID))
}

func ipnChecksum(ipn vnpay.IPN) string {
	secret := vnpayCredential["ipnv3_secret_key"]
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(secret + strings.Join([]string{
		ipn.MerchantMethodCode, ipn.MethodCode, ipn.MerchantCode, ipn.OrderCode,
		strconv.FormatInt(ipn.Amount, 10), ipn.TransactionCode, ipn.ClientTransactionCode, ipn.ResponseCode,
	}, "|")))
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

func (s *PaymentServiceTestSuite) TestHandleVNPayIPN() {
	testCases := []struct {
		name       string
		code       string
		amount     int64
		badSum     bool
		wantErr    error
		wantStatus domain.Status
		wantOrder  order.OrderStatus
	}{
		{name: "成功", code: "200", amount: 260, wantStatus: domain.StatusSuccess, wantOrder: order.StatusPaymentSuccess},
		{name: "失败", code: "431", amount: 260, wantStatus: domain.StatusFailed, wantOrder: order.StatusPaymentFailed},
		{name: "用户取消", code: "434", amount: 260, wantStatus: domain.StatusCancelled, wantOrder: order.StatusCancelled},
		{name: "未知结果码", code: "999", amount: 260, wantStatus: domain.StatusWaitingForPurchase, wantOrder: order.StatusWaitingForPayment},
		{name: "签名错误", code: "200", amount: 260, badSum: true, wantErr: ErrInvalidChecksum,
			wantStatus: domain.StatusWaitingForPurchase, wantOrder: order.StatusWaitingForPayment},
		{name: "金额不一致", code: "200", amount: 1, wantErr: ErrAmountMismatch,
			wantStatus: domain.StatusWaitingForPurchase, wantOrder: order.StatusWaitingForPayment},
	}
	for _, tc := range testCases {
		s.Run(tc.name, func() {
			t := s.T()
			s.SetupTest()
			ctx := context.Background()
			o := s.createOrder()
			p := s.waitForPurchase(s.initialize(o, domain.ProviderVNPay, domain.MethodCard))

			ipn := vnpay.IPN{
				MethodCode:            vnpay.MethodCodeCard,
				MerchantCode:          "M01",
				OrderCode:             p.TransactionCode,
				Amount:                tc.amount,
				TransactionCode:       p.ProviderTransactionID,
				ClientTransactionCode: p.TransactionCode,
				ResponseCode:          tc.code,
			}
			ipn.Checksum = ipnChecksum(ipn)
			if tc.badSum {
				ipn.Checksum = "invalid"
			}
			_, err := s.svc.HandleVNPayIPN(ctx, ipn)
			assert.ErrorIs(t, err, tc.wantErr)

			p, err = s.svc.FindByID(ctx, p.ID)
			require.NoError(t, err)
			assert.Equal(t, tc.wantStatus, p.Status)
			assert.Equal(t, tc.wantOrder, s.orderStatus(o.ID))
		})
	}
}

func (s *PaymentServiceTestSuite) TestListTimeout() {
	t := s.T()
	ctx := context.Background()

	o1 := s.createOrder()
	p1 := s.waitForPurchase(s.initialize(o1, domain.ProviderVietQR, domain.MethodQR))
	require.NoError(t, s.db.Model(&dao.Payment{}).Where("id = ?", p1.ID).
		Update("ctime", time.Now().Add(-10*time.Minute).UnixMilli()).Error)

	o2, err := s.orderSvc.CreateOrder(ctx, 100, s.storeID, []order.MachineSelection{{MachineID: s.dryerID}})
	require.NoError(t, err)
	p2 := s.waitForPurchase(s.initialize(o2, domain.ProviderVietQR, domain.MethodQR))
	require.NoError(t, s.db.Model(&dao.Payment{}).Where("id = ?", p2.ID).
		Update("ctime", time.Now().Add(-2*time.Minute).UnixMilli()).Error)

	ps, err := s.svc.ListTimeout(ctx, 5*time.Minute, 0, 10)
	require.NoError(t, err)
	require.Len(t, ps, 1)
	assert.Equal(t, p1.ID, ps[0].ID)

	ps, err = s.svc.ListTimeout(ctx, 5*time.Minute, p1.ID, 10)
	require.NoError(t, err)
	assert.Empty(t, ps)
}

func (s *PaymentServiceTestSuite) TestCloseTimeout() {
	testCases := []struct {
		name       string
		prov       domain.Provider
		method     domain.Method
		generate   bool
		mock       func(m *providermocks.MockProvider)
		wantErr    bool
		wantStatus domain.Status
		wantOrder  order.OrderStatus
	}{
		{
			name: "还没有生成详情", prov: domain.ProviderVietQR, method: domain.MethodQR,
			mock:       func(m *providermocks.MockProvider) {},
			wantStatus: domain.StatusCancelled, wantOrder: order.StatusCancelled,
		},
		{
			name: "渠道不支持查询", prov: domain.ProviderVietQR, method: domain.MethodQR, generate: true,
			mock: func(m *providermocks.MockProvider) {
				m.EXPECT().QueryStatus(gomock.Any(), gomock.Any()).Return(domain.Status(""), provider.ErrQueryNotSupported)
			},
			wantStatus: domain.StatusCancelled, wantOrder: order.StatusCancelled,
		},
		{
			name: "渠道已经支付成功", prov: domain.ProviderVNPay, method: domain.MethodCard, generate: true,
			mock: func(m *providermocks.MockProvider) {
				m.EXPECT().QueryStatus(gomock.Any(), gomock.Any()).Return(domain.StatusSuccess, nil)
			},
			wantStatus: domain.StatusSuccess, wantOrder: order.StatusPaymentSuccess,
		},
		{
			name: "渠道还没有结果", prov: domain.ProviderVNPay, method: domain.MethodCard, generate: true,
			mock: func(m *providermocks.MockProvider) {
				m.EXPECT().QueryStatus(gomock.Any(), gomock.Any()).Return(domain.StatusWaitingForPurchase, nil)
			},
			wantStatus: domain.StatusCancelled, wantOrder: order.StatusCancelled,
		},
		{
			name: "查询失败", prov: domain.ProviderVNPay, method: domain.MethodCard, generate: true,
			mock: func(m *providermocks.MockProvider) {
				m.EXPECT().QueryStatus(gomock.Any(), gomock.Any()).Return(domain.Status(""), errors.New("timeout"))
			},
			wantErr:    true,
			wantStatus: domain.StatusWaitingForPurchase, wantOrder: order.StatusWaitingForPayment,
		},
	}
	for _, tc := range testCases {
		s.Run(tc.name, func() {
			t := s.T()
			s.SetupTest()
			ctx := context.Background()
			o := s.createOrder()
			p := s.initialize(o, tc.prov, tc.method)
			if tc.generate {
				p = s.waitForPurchase(p)
			}
			tc.mock(s.mockOf(tc.prov))

			_, err := s.svc.CloseTimeout(ctx, p.ID)
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
			}
			p, err = s.svc.FindByID(ctx, p.ID)
			require.NoError(t, err)
			assert.Equal(t, tc.wantStatus, p.Status)
			assert.Equal(t, tc.wantOrder, s.orderStatus(o.ID))

			// 已经结束的支付再次关闭什么也不做
			if !tc.wantErr {
				_, err = s.svc.CloseTimeout(ctx, p.ID)
				require.NoError(t, err)
			}
		})
	}
}

func (s *PaymentServiceTestSuite) TestCloseTimeout_ThenNewOrder() {
	t := s.T()
	ctx := context.Background()
	o := s.createOrder()
	p := s.waitForPurchase(s.initialize(o, domain.ProviderVietQR, domain.MethodQR))
	// 正在付款的时候不能取消
	err := s.svc.CancelOrder(ctx, o.UserID, o.SN)
	assert.ErrorIs(t, err, ErrPaymentInProgress)

	s.vietQR.EXPECT().QueryStatus(gomock.Any(), gomock.Any()).Return(domain.Status(""), provider.ErrQueryNotSupported)
	p, err = s.svc.CloseTimeout(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelled, p.Status)
	assert.Equal(t, order.StatusCancelled, s.orderStatus(o.ID))

	// 超时关闭之后机器释放，可以为新订单发起支付
	o2, err := s.orderSvc.CreateOrder(ctx, 100, s.storeID, []order.MachineSelection{{MachineID: s.washerID}})
	require.NoError(t, err)
	s.initialize(o2, domain.ProviderVietQR, domain.MethodQR)
}

func (s *PaymentServiceTestSuite) TestCancelOrder() {
	testCases := []struct {
		name string
		// before 返回订单和订单的支付
		before      func(o order.Order) (int64, domain.Payment)
		wantErr     error
		wantPayment domain.Status
		wantOrder   order.OrderStatus
		wantEvent   bool
	}{
		{
			name: "没有支付",
			before: func(o order.Order) (int64, domain.Payment) {
				return o.UserID, domain.Payment{}
			},
			wantOrder: order.StatusCancelled,
		},
		{
			name: "支付还没有交给渠道",
			before: func(o order.Order) (int64, domain.Payment) {
				return o.UserID, s.initialize(o, domain.ProviderVietQR, domain.MethodQR)
			},
			wantPayment: domain.StatusCancelled,
			wantOrder:   order.StatusCancelled,
			wantEvent:   true,
		},
		{
			name: "正在付款",
			before: func(o order.Order) (int64, domain.Payment) {
				return o.UserID, s.waitForPurchase(s.initialize(o, domain.ProviderVietQR, domain.MethodQR))
			},
			wantErr:     ErrPaymentInProgress,
			wantPayment: domain.StatusWaitingForPurchase,
			wantOrder:   order.StatusWaitingForPayment,
		},
		{
			name: "支付失败之后取消",
			before: func(o order.Order) (int64, domain.Payment) {
				p := s.initialize(o, domain.ProviderVietQR, domain.MethodQR)
				s.vietQR.EXPECT().GenerateDetails(gomock.Any(), gomock.Any()).
					Return(provider.Result{}, errors.New("connection refused"))
				_, err := s.svc.GeneratePaymentDetails(context.Background(), p.ID)
				require.ErrorIs(s.T(), err, ErrProviderFailed)
				s.readEvent()
				return o.UserID, p
			},
			wantPayment: domain.StatusFailed,
			wantOrder:   order.StatusCancelled,
		},
		{
			name: "别人的订单",
			before: func(o order.Order) (int64, domain.Payment) {
				return 999, s.initialize(o, domain.ProviderVietQR, domain.MethodQR)
			},
			wantErr:     order.ErrOrderNotFound,
			wantPayment: domain.StatusNew,
			wantOrder:   order.StatusWaitingForPayment,
		},
	}
	for _, tc := range testCases {
		s.Run(tc.name, func() {
			t := s.T()
			s.SetupTest()
			ctx := context.Background()
			o := s.createOrder()
			uid, p := tc.before(o)

			err := s.svc.CancelOrder(ctx, uid, o.SN)
			assert.ErrorIs(t, err, tc.wantErr)
			assert.Equal(t, tc.wantOrder, s.orderStatus(o.ID))
			if p.ID > 0 {
				p, err = s.svc.FindByID(ctx, p.ID)
				require.NoError(t, err)
				assert.Equal(t, tc.wantPayment, p.Status)
			}
			if tc.wantEvent {
				assert.Equal(t, string(domain.StatusCancelled), s.readEvent().Status)
			}
			assert.Empty(t, s.events)
		})
	}
}

func (s *PaymentServiceTestSuite) TestCancelOrder_PaidAfterRejected() {
	t := s.T()
	ctx := context.Background()
	o := s.createOrder()
	p := s.waitForPurchase(s.initialize(o, domain.ProviderVietQR, domain.MethodQR))
	require.ErrorIs(t, s.svc.CancelOrder(ctx, o.UserID, o.SN), ErrPaymentInProgress)

	// 取消失败之后到账仍然能够记录
	p, err := s.svc.UpdateStatusByTransactionCode(ctx, p.TransactionCode, domain.StatusSuccess, domain.ProviderVietQR)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusSuccess, p.Status)
	assert.Equal(t, order.StatusPaymentSuccess, s.orderStatus(o.ID))

	// 支付成功之后不能再取消
	err = s.svc.CancelOrder(ctx, o.UserID, o.SN)
	assert.ErrorIs(t, err, order.ErrInvalidTransition)
}

func (s *PaymentServiceTestSuite) TestInitialize_DispatchFailed() {
	t := s.T()
	ctx := context.Background()
	o := s.createOrder()
	s.taskErr = errors.New("broker unavailable")
	s.vietQR.EXPECT().Validate(domain.MethodQR, gomock.Any()).Return(nil)
	p, err := s.svc.Initialize(ctx, InitializeRequest{
		UserID:   o.UserID,
		OrderID:  o.ID,
		Amount:   o.TotalAmount,
		Provider: domain.ProviderVietQR,
		Method:   domain.MethodQR,
	})
	// 任务发送失败不影响发起支付，支付停留在 NEW 等待超时
	require.NoError(t, err)
	assert.Equal(t, domain.StatusNew, p.Status)
	assert.Empty(t, s.tasks)

	p, err = s.svc.CloseTimeout(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelled, p.Status)
	assert.Equal(t, order.StatusCancelled, s.orderStatus(o.ID))
	assert.Equal(t, event.PaymentEvent{
		PaymentID:       p.ID,
		OrderID:         o.ID,
		TransactionCode: p.TransactionCode,
		Status:          string(domain.StatusCancelled),
		TotalAmount:     260,
	}, s.readEvent())
}
