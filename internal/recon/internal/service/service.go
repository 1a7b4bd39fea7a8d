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

	"github.com/ecodeclub/ekit/retry"
	"github.com/ecodeclub/laundry/internal/machine"
	"github.com/ecodeclub/laundry/internal/order"
	"github.com/ecodeclub/laundry/internal/payment"
	"github.com/gotomicro/ego/core/elog"
)

// 支付成功的订单正常由支付事件推进到 IN_PROGRESS，超过这个时间还没有推进才由对账处理
const paymentSuccessGrace = time.Minute

//go:generate mockgen -source=./service.go -package=reconmocks -destination=../../mocks/recon.mock.go -typed Service

// Service 对账只根据当前数据推导应该处于的状态，重复执行没有副作用
type Service interface {
	// SyncTimeoutPayments 关闭超时的进行中支付，返回处理成功的数量
	SyncTimeoutPayments(ctx context.Context) (int, error)
	// SyncInProgressOrders 处理等待支付、支付成功和进行中的订单，返回状态发生变化的订单数量
	SyncInProgressOrders(ctx context.Context) (int, error)
	SyncOrder(ctx context.Context, orderID int64) (order.Order, error)
}

type service struct {
	orderSvc        order.Service
	paymentSvc      payment.Service
	machineSvc      machine.Service
	paymentTimeout  time.Duration
	limit           int
	initialInterval time.Duration
	maxInterval     time.Duration
	maxRetries      int32
	l               *elog.Component
}

func NewService(orderSvc order.Service,
	paymentSvc payment.Service,
	machineSvc machine.Service,
	paymentTimeout time.Duration,
	limit int,
	initialInterval time.Duration, maxInterval time.Duration, maxRetries int32) Service {
	return &service{
		orderSvc:        orderSvc,
		paymentSvc:      paymentSvc,
		machineSvc:      machineSvc,
		paymentTimeout:  paymentTimeout,
		limit:           limit,
		initialInterval: initialInterval,
		maxInterval:     maxInterval,
		maxRetries:      maxRetries,
		l:               elog.DefaultLogger,
	}
}

func (s *service) SyncTimeoutPayments(ctx context.Context) (int, error) {
	var (
		afterID int64
		cnt     int
	)
	for {
		pmts, err := s.paymentSvc.ListTimeout(ctx, s.paymentTimeout, afterID, s.limit)
		if err != nil {
			return cnt, fmt.Errorf("查找超时支付失败: %w", err)
		}
		for _, pmt := range pmts {
			afterID = pmt.ID
			var res payment.Payment
			err = s.withRetry(ctx, func(ctx context.Context) error {
				var er error
				res, er = s.paymentSvc.CloseTimeout(ctx, pmt.ID)
				return er
			})
			if ctx.Err() != nil {
				return cnt, ctx.Err()
			}
			if err != nil {
				s.l.Warn("关闭超时支付失败",
					elog.FieldErr(err),
					elog.Int64("payment_id", pmt.ID),
					elog.String("status", string(pmt.Status)))
				continue
			}
			s.l.Info("关闭超时支付",
				elog.Int64("payment_id", pmt.ID),
				elog.String("from", string(pmt.Status)),
				elog.String("to", string(res.Status)))
			cnt++
		}
		if len(pmts) < s.limit {
			return cnt, nil
		}
	}
}

func (s *service) SyncInProgressOrders(ctx context.Context) (int, error) {
	statuses := []order.OrderStatus{
		order.StatusWaitingForPayment,
		order.StatusPaymentSuccess,
		order.StatusInProgress,
	}
	var (
		afterID int64
		cnt     int
	)
	for {
		orders, err := s.orderSvc.ListByStatus(ctx, statuses, afterID, s.limit)
		if err != nil {
			return cnt, fmt.Errorf("查找进行中订单失败: %w", err)
		}
		for _, o := range orders {
			afterID = o.ID
			var res order.Order
			err = s.withRetry(ctx, func(ctx context.Context) error {
				var er error
				res, er = s.SyncOrder(ctx, o.ID)
				return er
			})
			if ctx.Err() != nil {
				return cnt, ctx.Err()
			}
			if err != nil {
				s.l.Warn("同步订单状态失败",
					elog.FieldErr(err),
					elog.Int64("order_id", o.ID),
					elog.String("status", string(o.Status)))
				continue
			}
			if res.Status != o.Status {
				cnt++
			}
		}
		if len(orders) < s.limit {
			return cnt, nil
		}
	}
}

func (s *service) SyncOrder(ctx context.Context, orderID int64) (order.Order, error) {
	o, err := s.orderSvc.FindByID(ctx, orderID)
	if err != nil {
		return order.Order{}, err
	}
	switch o.Status {
	case order.StatusWaitingForPayment:
		err = s.syncWaitingForPayment(ctx, o)
	case order.StatusPaymentSuccess:
		err = s.syncPaymentSuccess(ctx, o)
	case order.StatusInProgress:
		err = s.syncInProgress(ctx, o)
	default:
		return o, nil
	}
	if err != nil {
		return order.Order{}, err
	}
	return s.orderSvc.FindByID(ctx, orderID)
}

// syncWaitingForPayment 只有所有支付都已经失败或者取消的时候才把订单置为支付失败
func (s *service) syncWaitingForPayment(ctx context.Context, o order.Order) error {
	pmts, err := s.paymentSvc.FindByOrderID(ctx, o.ID)
	if err != nil {
		return err
	}
	closed := false
	for _, pmt := range pmts {
		if pmt.Status.Active() || pmt.Status == payment.StatusSuccess {
			return nil
		}
		closed = closed || pmt.Status == payment.StatusFailed || pmt.Status == payment.StatusCancelled
	}
	if !closed {
		return nil
	}
	// 先取消明细，中途失败的时候订单还是 WAITING_FOR_PAYMENT，下次还能处理
	if _, err = s.orderSvc.CancelDetails(ctx, o.ID); err != nil {
		return err
	}
	s.l.Info("订单的支付已经全部失败",
		elog.Int64("order_id", o.ID),
		elog.Int64("payments", int64(len(pmts))))
	return s.orderSvc.UpdateStatus(ctx, o.ID, order.StatusPaymentFailed)
}

// syncPaymentSuccess 支付事件丢失的时候重新启动机器
func (s *service) syncPaymentSuccess(ctx context.Context, o order.Order) error {
	if time.Since(time.UnixMilli(o.Utime)) < paymentSuccessGrace {
		return nil
	}
	return s.orderSvc.UpdateStatus(ctx, o.ID, order.StatusInProgress)
}

// syncInProgress 机器回到空闲说明这一单已经洗完，全部明细结束之后订单结束。
// 还有没启动的机器说明上一次启动中途失败，重新启动
func (s *service) syncInProgress(ctx context.Context, o order.Order) error {
	finished := 0
	open := 0
	pending := 0
	for _, d := range o.Details {
		switch d.Status {
		case order.DetailStatusFinished:
			finished++
		case order.DetailStatusInProgress:
			status, err := s.machineSvc.StatusOf(ctx, d.MachineID)
			if err != nil {
				return err
			}
			if status != machine.StatusIdle {
				open++
				continue
			}
			if _, err = s.orderSvc.MarkDetailFinished(ctx, d.ID); err != nil {
				return err
			}
			finished++
		case order.DetailStatusNew:
			pending++
		}
	}
	if pending > 0 {
		return s.orderSvc.UpdateStatus(ctx, o.ID, order.StatusInProgress)
	}
	if open > 0 || finished == 0 {
		return nil
	}
	return s.orderSvc.UpdateStatus(ctx, o.ID, order.StatusFinished)
}

// withRetry 数据不存在的时候不重试
func (s *service) withRetry(ctx context.Context, fn func(ctx context.Context) error) error {
	strategy, err := retry.NewExponentialBackoffRetryStrategy(s.initialInterval, s.maxInterval, s.maxRetries)
	if err != nil {
		return err
	}
	for {
		err = fn(ctx)
		if err == nil || errors.Is(err, order.ErrOrderNotFound) || errors.Is(err, payment.ErrPaymentNotFound) {
			return err
		}
		d, ok := strategy.Next()
		if !ok {
			return fmt.Errorf("超过最大重试次数: %w", err)
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(d):
		}
	}
}
