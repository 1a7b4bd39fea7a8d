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

package limit

import (
	"context"
	"errors"
	"fmt"

	"github.com/ecodeclub/laundry/internal/promotion/internal/domain"
)

var (
	ErrUnknownLimit = errors.New("不支持的额度类型")
	ErrInvalidLimit = errors.New("额度配置非法")
)

// Querier 额度用到的统计，只统计成功支付的数据
type Querier interface {
	// SpentAmount 某个维度下成功支付的总金额
	SpentAmount(ctx context.Context, scope domain.Scope, id int64) (int64, error)
	// UsageCount 某个维度下使用了该活动的订单数，scope 为 ScopeAll 的时候忽略 id
	UsageCount(ctx context.Context, promotionID int64, scope domain.Scope, id int64) (int64, error)
	// DiscountAmount 活动累计让利的金额
	DiscountAmount(ctx context.Context, promotionID int64) (int64, error)
}

// Checker 返回 true 表示额度还没有用完，活动可以使用。
// discount 是本次订单准备使用的优惠金额
type Checker interface {
	Type() domain.LimitType
	// Unit 额度值的单位
	Unit() domain.Unit
	Check(ctx context.Context, promotionID int64, l domain.Limit, octx domain.OrderContext, discount int64) (bool, error)
}

type Registry struct {
	checkers map[domain.LimitType]Checker
}

func NewRegistry(checkers ...Checker) *Registry {
	r := &Registry{checkers: make(map[domain.LimitType]Checker, len(checkers))}
	for _, c := range checkers {
		r.checkers[c.Type()] = c
	}
	return r
}

func NewDefaultRegistry(q Querier) *Registry {
	return NewRegistry(
		NewAmountChecker(domain.LimitTypeAmountPerStore, domain.ScopeStore, q),
		NewAmountChecker(domain.LimitTypeAmountPerTenant, domain.ScopeTenant, q),
		NewAmountChecker(domain.LimitTypeAmountPerUser, domain.ScopeUser, q),
		AmountPerOrderChecker{},
		NewUsageChecker(domain.LimitTypeTotalUsage, domain.ScopeAll, q),
		NewUsageChecker(domain.LimitTypeUsagePerUser, domain.ScopeUser, q),
		NewUsageChecker(domain.LimitTypeUsagePerStore, domain.ScopeStore, q),
		NewUsageChecker(domain.LimitTypeUsagePerTenant, domain.ScopeTenant, q),
		NewTotalAmountChecker(q),
	)
}

// Validate 保存活动的时候校验额度配置，单位可以省略
func (r *Registry) Validate(l domain.Limit) error {
	c, ok := r.checkers[l.Type]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownLimit, l.Type)
	}
	if l.Unit != "" && l.Unit != c.Unit() {
		return fmt.Errorf("%w: %s 的单位是 %s, 不是 %s", ErrInvalidLimit, l.Type, c.Unit(), l.Unit)
	}
	if l.Value <= 0 {
		return fmt.Errorf("%w: %s 的值 %d", ErrInvalidLimit, l.Type, l.Value)
	}
	return nil
}

// Check 没有注册的额度类型不放行
func (r *Registry) Check(ctx context.Context, promotionID int64, l domain.Limit, octx domain.OrderContext, discount int64) (bool, error) {
	c, ok := r.checkers[l.Type]
	if !ok {
		return false, nil
	}
	return c.Check(ctx, promotionID, l, octx, discount)
}

func (r *Registry) CheckAll(ctx context.Context, promotionID int64, ls []domain.Limit, octx domain.OrderContext, discount int64) (bool, error) {
	for _, l := range ls {
		ok, err := r.Check(ctx, promotionID, l, octx, discount)
		if err != nil || !ok {
			return false, err
		}
	}
	return true, nil
}

// AmountChecker 累计成功支付金额的额度
type AmountChecker struct {
	typ   domain.LimitType
	scope domain.Scope
	q     Querier
}

func NewAmountChecker(typ domain.LimitType, scope domain.Scope, q Querier) *AmountChecker {
	return &AmountChecker{typ: typ, scope: scope, q: q}
}

func (c *AmountChecker) Type() domain.LimitType {
	return c.typ
}

func (c *AmountChecker) Unit() domain.Unit {
	return domain.UnitVND
}

func (c *AmountChecker) Check(ctx context.Context, _ int64, l domain.Limit, octx domain.OrderContext, discount int64) (bool, error) {
	id := scopeID(c.scope, octx)
	if id <= 0 {
		return false, nil
	}
	spent, err := c.q.SpentAmount(ctx, c.scope, id)
	if err != nil {
		return false, err
	}
	return spent < l.Value && spent+discount <= l.Value, nil
}

// UsageChecker 活动可以被使用的订单数
type UsageChecker struct {
	typ   domain.LimitType
	scope domain.Scope
	q     Querier
}

func NewUsageChecker(typ domain.LimitType, scope domain.Scope, q Querier) *UsageChecker {
	return &UsageChecker{typ: typ, scope: scope, q: q}
}

func (c *UsageChecker) Type() domain.LimitType {
	return c.typ
}

func (c *UsageChecker) Unit() domain.Unit {
	return domain.UnitOrder
}

func (c *UsageChecker) Check(ctx context.Context, promotionID int64, l domain.Limit, octx domain.OrderContext, _ int64) (bool, error) {
	var id int64
	if c.scope != domain.ScopeAll {
		id = scopeID(c.scope, octx)
		if id <= 0 {
			return false, nil
		}
	}
	used, err := c.q.UsageCount(ctx, promotionID, c.scope, id)
	if err != nil {
		return false, err
	}
	return used < l.Value, nil
}

// TotalAmountChecker 活动累计让利不能超过给定值
type TotalAmountChecker struct {
	q Querier
}

func NewTotalAmountChecker(q Querier) *TotalAmountChecker {
	return &TotalAmountChecker{q: q}
}

func (c *TotalAmountChecker) Type() domain.LimitType {
	return domain.LimitTypeTotalAmount
}

func (c *TotalAmountChecker) Unit() domain.Unit {
	return domain.UnitVND
}

func (c *TotalAmountChecker) Check(ctx context.Context, promotionID int64, l domain.Limit, _ domain.OrderContext, discount int64) (bool, error) {
	spent, err := c.q.DiscountAmount(ctx, promotionID)
	if err != nil {
		return false, err
	}
	return spent+discount <= l.Value, nil
}

// AmountPerOrderChecker 订单原价低于给定值才能使用
type AmountPerOrderChecker struct{}

func (AmountPerOrderChecker) Type() domain.LimitType {
	return domain.LimitTypeAmountPerOrder
}

func (AmountPerOrderChecker) Unit() domain.Unit {
	return domain.UnitVND
}

func (AmountPerOrderChecker) Check(_ context.Context, _ int64, l domain.Limit, octx domain.OrderContext, _ int64) (bool, error) {
	return octx.SubTotal() < l.Value, nil
}

func scopeID(scope domain.Scope, octx domain.OrderContext) int64 {
	switch scope {
	case domain.ScopeStore:
		return octx.StoreID
	case domain.ScopeTenant:
		return octx.TenantID
	default:
		return octx.UserID
	}
}
