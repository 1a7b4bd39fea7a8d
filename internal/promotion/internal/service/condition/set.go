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
	"slices"
	"strconv"

	"github.com/ecodeclub/laundry/internal/promotion/internal/domain"
)

// inSet IN / NOT_IN 的公共逻辑
func inSet(c domain.Condition, target string) (bool, error) {
	contains := slices.Contains(c.Value, target)
	switch c.Operator {
	case domain.OperatorIn, domain.OperatorEqual:
		return contains, nil
	case domain.OperatorNotIn, domain.OperatorNotEqual:
		return !contains, nil
	default:
		return false, unsupported(c)
	}
}

type TenantsChecker struct{}

func (TenantsChecker) Type() domain.ConditionType {
	return domain.ConditionTypeTenants
}

func (TenantsChecker) Check(c domain.Condition, octx domain.OrderContext) (bool, error) {
	return inSet(c, strconv.FormatInt(octx.TenantID, 10))
}

type StoresChecker struct{}

func (StoresChecker) Type() domain.ConditionType {
	return domain.ConditionTypeStores
}

func (StoresChecker) Check(c domain.Condition, octx domain.OrderContext) (bool, error) {
	return inSet(c, strconv.FormatInt(octx.StoreID, 10))
}

// MachineTypesChecker IN 表示订单里至少有一台机器属于给定类型，
// NOT_IN 表示订单里没有任何一台机器属于给定类型
type MachineTypesChecker struct{}

func (MachineTypesChecker) Type() domain.ConditionType {
	return domain.ConditionTypeMachineTypes
}

func (MachineTypesChecker) Check(c domain.Condition, octx domain.OrderContext) (bool, error) {
	if c.Operator != domain.OperatorIn && c.Operator != domain.OperatorNotIn {
		return false, unsupported(c)
	}
	if octx.Order == nil {
		return c.Operator == domain.OperatorNotIn, nil
	}
	hit := slices.ContainsFunc(c.Value, octx.Order.HasMachineType)
	if c.Operator == domain.OperatorIn {
		return hit, nil
	}
	return !hit, nil
}
