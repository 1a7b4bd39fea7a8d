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

	"github.com/ecodeclub/laundry/internal/order"
	"github.com/ecodeclub/laundry/internal/payment/internal/domain"
	"github.com/ecodeclub/laundry/internal/payment/internal/event"
	"github.com/ecodeclub/laundry/internal/payment/internal/repository"
	"github.com/ecodeclub/laundry/internal/payment/internal/repository/dao"
	"github.com/ecodeclub/laundry/internal/payment/internal/service/provider"
	"github.com/ecodeclub/laundry/internal/payment/internal/service/provider/vnpay"
	"github.com/ecodeclub/laundry/internal/pkg/database"
	"github.com/ecodeclub/laundry/internal/pkg/transactioncode"
	"github.com/ecodeclub/laundry/internal/store"
	"github.com/gotomicro/ego/core/elog"
	"github.com/skip2/go-qrcode"
)

//go:generate mockgen -source=./service.go -package=paymentmocks -destination=../../mocks/payment.mock.go -typed Service

type InitializeRequest struct {
	UserID   int64
	OrderID  int64
	Amount   int64
	Provider domain.Provider
	Method   domain.Method
}

// Service 支付状态机。支付状态变化引起的订单状态变化和支付在同一个事务里提交
type Service interface {
	// Initialize 为订单创建支付并且异步生成支付详情
	Initialize(ctx context.Context, req InitializeRequest) (domain.Payment, error)
	// GeneratePaymentDetails 只能在 NEW 状态调用，渠道调用失败的时候支付变为 FAILED
	GeneratePaymentDetails(ctx context.Context, id int64) (domain.Payment, error)
	// UpdateStatusByTransactionCode provider 为空的时候不校验渠道，
	// 目标状态等于当前状态的时候什么也不做
	UpdateStatusByTransactionCode(ctx context.Context, code string, status domain.Status, provider domain.Provider) (domain.Payment, error)
	HandleVNPayIPN(ctx context.Context, ipn vnpay.IPN) (domain.Payment, error)
	HandleVietQRTransactionSync(ctx context.Context, content string, amount int64) (domain.Payment, error)
	// Retry 失败的支付重新开始
	Retry(ctx context.Context, uid int64, id int64) (domain.Payment, error)
	FindByID(ctx context.Context, id int64) (domain.Payment, error)
	FindByOrderID(ctx context.Context, orderID int64) ([]domain.Payment, error)
	// ListTimeout 发起超过 timeout 仍未结束的支付，重试从重试时刻开始计算，按照 id 游标分页
	ListTimeout(ctx context.Context, timeout time.Duration, afterID int64, limit int) ([]domain.Payment, error)
	// CloseTimeout 能查询渠道的先以渠道结果为准，否则取消
	CloseTimeout(ctx context.Context, id int64) (domain.Payment, error)
	QRCode(ctx context.Context, id int64, size int) ([]byte, error)
	// CancelOrder 用户取消订单，还没有交给渠道的支付一起取消。
	// 已经生成支付详情的支付可能正在付款，需要等它结束或者超时
	CancelOrder(ctx context.Context, uid int64, sn string) error
}

// 支付状态变化之后订单需要进入的状态
var orderTargets = map[domain.Status]order.OrderStatus{
	domain.StatusSuccess:   order.StatusPaymentSuccess,
	domain.StatusFailed:    order.StatusPaymentFailed,
	domain.StatusCancelled: order.StatusCancelled,
	domain.StatusNew:       order.StatusWaitingForPayment,
}

type service struct {
	repo          repository.PaymentRepository
	tx            database.Transactor
	orderSvc      order.Service
	storeSvc      store.Service
	providers     *provider.Registry
	codeGen       *transactioncode.Generator
	eventProducer event.PaymentEventProducer
	taskProducer  event.PaymentDetailTaskProducer
	logger        *elog.Component
}

func NewService(repo repository.PaymentRepository,
	tx database.Transactor,
	orderSvc order.Service,
	storeSvc store.Service,
	providers *provider.Registry,
	codeGen *transactioncode.Generator,
	eventProducer event.PaymentEventProducer,
	taskProducer event.PaymentDetailTaskProducer) Service {
	return &service{
		repo:          repo,
		tx:            tx,
		orderSvc:      orderSvc,
		storeSvc:      storeSvc,
		providers:     providers,
		codeGen:       codeGen,
		eventProducer: eventProducer,
		taskProducer:  taskProducer,
		logger:        elog.DefaultLogger,
	}
}

func (s *service) Initialize(ctx context.Context, req InitializeRequest) (domain.Payment, error) {
	o, err := s.orderSvc.FindByID(ctx, req.OrderID)
	if err != nil {
		return domain.Payment{}, err
	}
	if req.UserID != 0 && o.UserID != req.UserID {
		return domain.Payment{}, fmt.Errorf("%w: id %d", order.ErrOrderNotFound, req.OrderID)
	}
	if !o.CanBePaid() {
		return domain.Payment{}, fmt.Errorf("%w: 订单 %d 状态 %s", ErrOrderNotPayable, o.ID, o.Status)
	}
	if req.Amount != o.TotalAmount {
		return domain.Payment{}, fmt.Errorf("%w: 支付 %d, 订单 %d", ErrAmountMismatch, req.Amount, o.TotalAmount)
	}
	st, err := s.storeSvc.FindActiveStore(ctx, o.StoreID)
	if err != nil {
		return domain.Payment{}, err
	}
	pm, ok := st.PaymentMethod(string(req.Provider), string(req.Method))
	if !ok {
		return domain.Payment{}, fmt.Errorf("%w: %s %s", ErrPaymentMethodNotFound, req.Provider, req.Method)
	}
	prov, err := s.providers.Get(req.Provider)
	if err != nil {
		return domain.Payment{}, err
	}
	if err = prov.Validate(req.Method, pm.Details); err != nil {
		return domain.Payment{}, err
	}

	p := domain.Payment{
		OrderID:       o.ID,
		StoreID:       o.StoreID,
		TenantID:      o.TenantID,
		UserID:        o.UserID,
		Provider:      req.Provider,
		Method:        req.Method,
		MethodDetails: pm.Details,
		TotalAmount:   req.Amount,
		Status:        domain.StatusNew,
	}
	err = s.tx.Transaction(ctx, func(ctx context.Context) error {
		has, err1 := s.repo.HasActivePayment(ctx, o.ID)
		if err1 != nil {
			return err1
		}
		if has {
			return fmt.Errorf("%w: 订单 %d", ErrActivePaymentExists, o.ID)
		}
		p.TransactionCode, err1 = s.codeGen.Generate(ctx, s.repo)
		if err1 != nil {
			return err1
		}
		p.ID, err1 = s.repo.Create(ctx, p)
		if errors.Is(err1, dao.ErrActivePaymentExists) {
			return fmt.Errorf("%w: 订单 %d", ErrActivePaymentExists, o.ID)
		}
		if err1 != nil {
			return err1
		}
		if o.Status == order.StatusWaitingForPayment {
			return nil
		}
		return s.orderSvc.UpdateStatus(ctx, o.ID, order.StatusWaitingForPayment)
	})
	if err != nil {
		return domain.Payment{}, err
	}
	s.dispatchDetailTask(ctx, p.ID)
	return s.FindByID(ctx, p.ID)
}

// dispatchDetailTask 发送失败的支付停留在 NEW，超时之后被取消
func (s *service) dispatchDetailTask(ctx context.Context, id int64) {
	err := s.taskProducer.Produce(ctx, event.PaymentDetailTask{PaymentID: id})
	if err != nil {
		s.logger.Error("发送生成支付详情任务失败",
			elog.FieldErr(err),
			elog.Int64("payment_id", id))
	}
}

func (s *service) GeneratePaymentDetails(ctx context.Context, id int64) (domain.Payment, error) {
	p, err := s.FindByID(ctx, id)
	if err != nil {
		return domain.Payment{}, err
	}
	if p.Status != domain.StatusNew {
		return domain.Payment{}, fmt.Errorf("%w: 支付 %d 状态 %s 不能生成支付详情", ErrInvalidTransition, id, p.Status)
	}
	if err = s.transit(ctx, p.ID, p.Status, domain.StatusWaitingForPaymentDetail); err != nil {
		return domain.Payment{}, err
	}
	p.Status = domain.StatusWaitingForPaymentDetail

	// 全额优惠的订单不需要向渠道下单
	if p.TotalAmount == 0 {
		if err = s.saveDetails(ctx, p, provider.Result{}); err != nil {
			return domain.Payment{}, err
		}
		p.Status = domain.StatusWaitingForPurchase
		return s.updateStatus(ctx, p, domain.StatusSuccess)
	}

	res, err := s.generate(ctx, p)
	if err != nil {
		if _, er := s.updateStatus(ctx, p, domain.StatusFailed); er != nil {
			s.logger.Error("生成支付详情失败之后更新支付状态失败",
				elog.FieldErr(er),
				elog.Int64("payment_id", p.ID))
		}
		return domain.Payment{}, fmt.Errorf("%w: %w", ErrProviderFailed, err)
	}
	if err = s.saveDetails(ctx, p, res); err != nil {
		return domain.Payment{}, err
	}
	return s.FindByID(ctx, p.ID)
}

func (s *service) generate(ctx context.Context, p domain.Payment) (provider.Result, error) {
	prov, err := s.providers.Get(p.Provider)
	if err != nil {
		return provider.Result{}, err
	}
	return prov.GenerateDetails(ctx, p)
}

func (s *service) saveDetails(ctx context.Context, p domain.Payment, res provider.Result) error {
	ok, err := s.repo.UpdateDetails(ctx, p.ID, p.Status, domain.StatusWaitingForPurchase,
		res.ProviderTransactionID, res.Details)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: 支付 %d 的状态已经被修改", ErrInvalidTransition, p.ID)
	}
	return nil
}

// transit 不会影响订单的状态变化
func (s *service) transit(ctx context.Context, id int64, from, to domain.Status) error {
	if !from.CanTransitionTo(to) {
		return fmt.Errorf("%w: 支付 %d 不能从 %s 变为 %s", ErrInvalidTransition, id, from, to)
	}
	ok, err := s.repo.UpdateStatus(ctx, id, from, to)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: 支付 %d 的状态已经被修改", ErrInvalidTransition, id)
	}
	return nil
}

// updateStatus 支付和订单在同一个事务里更新，提交之后发送支付事件
func (s *service) updateStatus(ctx context.Context, p domain.Payment, to domain.Status) (domain.Payment, error) {
	err := s.tx.Transaction(ctx, func(ctx context.Context) error {
		if err := s.transit(ctx, p.ID, p.Status, to); err != nil {
			return err
		}
		return s.cascade(ctx, p.OrderID, to)
	})
	if err != nil {
		return domain.Payment{}, err
	}
	s.logger.Info("支付状态变更",
		elog.Int64("payment_id", p.ID),
		elog.String("from", string(p.Status)),
		elog.String("to", string(to)))
	p.Status = to
	if !to.Active() {
		s.publish(ctx, p)
	}
	return p, nil
}

func (s *service) cascade(ctx context.Context, orderID int64, to domain.Status) error {
	target, ok := orderTargets[to]
	if !ok {
		return nil
	}
	o, err := s.orderSvc.FindByID(ctx, orderID)
	if err != nil {
		return err
	}
	if o.Status == target {
		return nil
	}
	// 已经结束的订单不会因为支付失败或者取消而改变
	if (to == domain.StatusFailed || to == domain.StatusCancelled) && o.Status.Terminal() {
		return nil
	}
	return s.orderSvc.UpdateStatus(ctx, orderID, target)
}

func (s *service) publish(ctx context.Context, p domain.Payment) {
	err := s.eventProducer.Produce(ctx, event.PaymentEvent{
		PaymentID:       p.ID,
		OrderID:         p.OrderID,
		TransactionCode: p.TransactionCode,
		Status:          string(p.Status),
		TotalAmount:     p.TotalAmount,
	})
	if err != nil {
		s.logger.Error("发送支付事件失败",
			elog.FieldErr(err),
			elog.Int64("payment_id", p.ID),
			elog.String("status", string(p.Status)))
	}
}

func (s *service) UpdateStatusByTransactionCode(ctx context.Context, code string, status domain.Status, prov domain.Provider) (domain.Payment, error) {
	if !status.Valid() {
		return domain.Payment{}, fmt.Errorf("%w: %s", ErrInvalidStatus, status)
	}
	p, err := s.findByTransactionCode(ctx, code)
	if err != nil {
		return domain.Payment{}, err
	}
	if prov != "" && p.Provider != prov {
		return domain.Payment{}, fmt.Errorf("%w: 支付 %d 属于 %s", ErrProviderMismatch, p.ID, p.Provider)
	}
	if p.Status == status {
		return p, nil
	}
	return s.updateStatus(ctx, p, status)
}

func (s *service) HandleVNPayIPN(ctx context.Context, ipn vnpay.IPN) (domain.Payment, error) {
	p, err := s.findByTransactionCode(ctx, ipn.OrderCode)
	if err != nil {
		return domain.Payment{}, err
	}
	if p.Provider != domain.ProviderVNPay {
		return domain.Payment{}, fmt.Errorf("%w: 支付 %d 属于 %s", ErrProviderMismatch, p.ID, p.Provider)
	}
	if err = vnpay.VerifyIPN(p.MethodDetails, ipn); err != nil {
		return domain.Payment{}, err
	}
	if ipn.Amount != p.TotalAmount {
		return domain.Payment{}, fmt.Errorf("%w: 通知 %d, 支付 %d", ErrAmountMismatch, ipn.Amount, p.TotalAmount)
	}
	status := vnpay.ResponseStatus(ipn.ResponseCode)
	if status == domain.StatusWaitingForPurchase {
		s.logger.Warn("VNPAY 通知的结果码无法识别",
			elog.String("transaction_code", p.TransactionCode),
			elog.String("response_code", ipn.ResponseCode))
		return p, nil
	}
	return s.UpdateStatusByTransactionCode(ctx, p.TransactionCode, status, domain.ProviderVNPay)
}

func (s *service) HandleVietQRTransactionSync(ctx context.Context, content string, amount int64) (domain.Payment, error) {
	code, ok := transactioncode.Extract(content)
	if !ok {
		return domain.Payment{}, fmt.Errorf("%w: 转账备注中没有交易码 %q", ErrPaymentNotFound, content)
	}
	p, err := s.findByTransactionCode(ctx, code)
	if err != nil {
		return domain.Payment{}, err
	}
	if amount != p.TotalAmount {
		return domain.Payment{}, fmt.Errorf("%w: 到账 %d, 支付 %d", ErrAmountMismatch, amount, p.TotalAmount)
	}
	return s.UpdateStatusByTransactionCode(ctx, code, domain.StatusSuccess, domain.ProviderVietQR)
}

func (s *service) Retry(ctx context.Context, uid int64, id int64) (domain.Payment, error) {
	p, err := s.FindByID(ctx, id)
	if err != nil {
		return domain.Payment{}, err
	}
	if uid != 0 && p.UserID != uid {
		return domain.Payment{}, fmt.Errorf("%w: id %d", ErrPaymentNotFound, id)
	}
	if p.Status != domain.StatusFailed {
		return domain.Payment{}, fmt.Errorf("%w: 支付 %d 状态 %s 不能重试", ErrInvalidTransition, id, p.Status)
	}
	o, err := s.orderSvc.FindByID(ctx, p.OrderID)
	if err != nil {
		return domain.Payment{}, err
	}
	if !o.CanBePaid() {
		return domain.Payment{}, fmt.Errorf("%w: 订单 %d 状态 %s", ErrOrderNotPayable, o.ID, o.Status)
	}
	has, err := s.repo.HasActivePayment(ctx, p.OrderID)
	if err != nil {
		return domain.Payment{}, err
	}
	if has {
		return domain.Payment{}, fmt.Errorf("%w: 订单 %d", ErrActivePaymentExists, p.OrderID)
	}
	p, err = s.updateStatus(ctx, p, domain.StatusNew)
	if err != nil {
		return domain.Payment{}, err
	}
	s.dispatchDetailTask(ctx, p.ID)
	return p, nil
}

func (s *service) FindByID(ctx context.Context, id int64) (domain.Payment, error) {
	p, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, dao.ErrRecordNotFound) {
		return domain.Payment{}, fmt.Errorf("%w: id %d", ErrPaymentNotFound, id)
	}
	return p, err
}

func (s *service) findByTransactionCode(ctx context.Context, code string) (domain.Payment, error) {
	p, err := s.repo.FindByTransactionCode(ctx, code)
	if errors.Is(err, dao.ErrRecordNotFound) {
		return domain.Payment{}, fmt.Errorf("%w: 交易码 %s", ErrPaymentNotFound, code)
	}
	return p, err
}

func (s *service) FindByOrderID(ctx context.Context, orderID int64) ([]domain.Payment, error) {
	return s.repo.FindByOrderID(ctx, orderID)
}

func (s *service) ListTimeout(ctx context.Context, timeout time.Duration, afterID int64, limit int) ([]domain.Payment, error) {
	before := time.Now().Add(-timeout).UnixMilli()
	return s.repo.ListByStatusBefore(ctx, domain.ActiveStatuses(), before, afterID, limit)
}

func (s *service) CloseTimeout(ctx context.Context, id int64) (domain.Payment, error) {
	p, err := s.FindByID(ctx, id)
	if err != nil {
		return domain.Payment{}, err
	}
	if !p.Status.Active() {
		return p, nil
	}
	to := domain.StatusCancelled
	if p.Status == domain.StatusWaitingForPurchase {
		to, err = s.queryStatus(ctx, p)
		if err != nil {
			return domain.Payment{}, err
		}
	}
	return s.updateStatus(ctx, p, to)
}

// queryStatus 渠道还没有结果的时候取消支付
func (s *service) queryStatus(ctx context.Context, p domain.Payment) (domain.Status, error) {
	prov, err := s.providers.Get(p.Provider)
	if err != nil {
		return "", err
	}
	status, err := prov.QueryStatus(ctx, p)
	if errors.Is(err, provider.ErrQueryNotSupported) {
		return domain.StatusCancelled, nil
	}
	if err != nil {
		return "", err
	}
	switch status {
	case domain.StatusSuccess, domain.StatusFailed, domain.StatusCancelled:
		return status, nil
	default:
		return domain.StatusCancelled, nil
	}
}

func (s *service) CancelOrder(ctx context.Context, uid int64, sn string) error {
	o, err := s.orderSvc.FindBySN(ctx, sn)
	if err != nil {
		return err
	}
	if o.UserID != uid {
		return fmt.Errorf("%w: sn %s", order.ErrOrderNotFound, sn)
	}
	var closed []domain.Payment
	err = s.tx.Transaction(ctx, func(ctx context.Context) error {
		closed = closed[:0]
		ps, er := s.repo.FindByOrderID(ctx, o.ID)
		if er != nil {
			return er
		}
		for _, p := range ps {
			switch p.Status {
			case domain.StatusWaitingForPurchase:
				return fmt.Errorf("%w: 支付 %d", ErrPaymentInProgress, p.ID)
			case domain.StatusNew, domain.StatusWaitingForPaymentDetail:
				if er = s.transit(ctx, p.ID, p.Status, domain.StatusCancelled); er != nil {
					return er
				}
				p.Status = domain.StatusCancelled
				closed = append(closed, p)
			}
		}
		return s.orderSvc.CancelOrder(ctx, o.ID, uid)
	})
	if err != nil {
		return err
	}
	for _, p := range closed {
		s.publish(ctx, p)
	}
	return nil
}

func (s *service) QRCode(ctx context.Context, id int64, size int) ([]byte, error) {
	p, err := s.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	content := p.QRContent()
	if content == "" {
		return nil, fmt.Errorf("%w: 支付 %d", ErrQRCodeNotReady, id)
	}
	return qrcode.Encode(content, qrcode.Medium, size)
}
