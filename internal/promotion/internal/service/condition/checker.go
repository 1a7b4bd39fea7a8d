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

package condition

import (
	"errors"
	"fmt"

	"github.com/ecodeclub/laundry/internal/promotion/internal/domain"
)

var (
	ErrUnsupportedOperator = errors.New("条件不支持该操作符")
	ErrInvalidValue        = errors.New("条件值非法")
	ErrUnknownCondition    = errors.New("不支持的条件")
)

// Checker 单个类型的条件判断
type Checker interface {
	Type() domain.ConditionType
	Check(c domain.Condition, octx domain.OrderContext) (bool, error)
}

type Registry struct {
	checkers map[domain.ConditionType]Checker
}

func NewRegistry(checkers ...Checker) *Registry {
	r := &Registry{checkers: make(map[domain.ConditionType]Checker, len(checkers))}
	for _, c := range checkers {
		r.Register(c)
	}
	return r
}

// NewDefaultRegistry 注册全部内置条件
func NewDefaultRegistry() *Registry {
	return NewRegistry(
		TenantsChecker{},
		StoresChecker{},
		TotalAmountChecker{},
		MachineTypesChecker{},
		TimeInDayChecker{},
	)
}

func (r *Registry) Register(c Checker) {
	r.checkers[c.Type()] = c
}

func (r *Registry) Get(typ domain.ConditionType) (Checker, bool) {
	c, ok := r.checkers[typ]
	return c, ok
}

// Check 没有注册的条件类型视为不满足，配置错误（例如操作符不支持）直接返回 error
func (r *Registry) Check(c domain.Condition, octx domain.OrderContext) (bool, error) {
	checker, ok := r.Get(c.Type)
	if !ok {
		return false, nil
	}
	return checker.Check(c, octx)
}

// Validate 保存活动的时候校验条件的配置。
// 用一个空订单跑一遍判断逻辑，操作符和条件值有问题都会在这里暴露出来
func (r *Registry) Validate(c domain.Condition) error {
	checker, ok := r.Get(c.Type)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownCondition, c.Type)
	}
	_, err := checker.Check(c, domain.OrderContext{Order: &domain.OrderSnapshot{}})
	return err
}

// CheckAll 所有条件都满足才返回 true
func (r *Registry) CheckAll(conds []domain.Condition, octx domain.OrderContext) (bool, error) {
	for _, c := range conds {
		ok, err := r.Check(c, octx)
		if err != nil || !ok {
			return false, err
		}
	}
	return true, nil
}

func unsupported(c domain.Condition) error {
	return fmt.Errorf("%w: type %s, operator %s", ErrUnsupportedOperator, c.Type, c.Operator)
}
