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

package domain

type ConditionType string

const (
	ConditionTypeTenants      ConditionType = "TENANTS"
	ConditionTypeStores       ConditionType = "STORES"
	ConditionTypeTotalAmount  ConditionType = "TOTAL_AMOUNT"
	ConditionTypeMachineTypes ConditionType = "MACHINE_TYPES"
	ConditionTypeTimeInDay    ConditionType = "TIME_IN_DAY"
)

type Operator string

const (
	OperatorEqual              Operator = "EQUAL"
	OperatorNotEqual           Operator = "NOT_EQUAL"
	OperatorGreaterThan        Operator = "GREATER_THAN"
	OperatorLessThan           Operator = "LESS_THAN"
	OperatorGreaterThanOrEqual Operator = "GREATER_THAN_OR_EQUAL"
	OperatorLessThanOrEqual    Operator = "LESS_THAN_OR_EQUAL"
	OperatorBetween            Operator = "BETWEEN"
	OperatorNotBetween         Operator = "NOT_BETWEEN"
	OperatorIn                 Operator = "IN"
	OperatorNotIn              Operator = "NOT_IN"
)

// Condition 使用条件，Value 的含义由 Type 决定：
// 机器类型列表、门店ID列表、金额或者两个 ISO-8601 时间点
type Condition struct {
	Type     ConditionType `json:"type"`
	Operator Operator      `json:"operator"`
	Value    []string      `json:"value"`
}

type LimitType string

const (
	LimitTypeAmountPerStore  LimitType = "AMOUNT_PER_STORE"
	LimitTypeAmountPerTenant LimitType = "AMOUNT_PER_TENANT"
	LimitTypeAmountPerUser   LimitType = "AMOUNT_PER_USER"
	LimitTypeAmountPerOrder  LimitType = "AMOUNT_PER_ORDER"
	// 以下按照使用了该活动并且支付成功的订单统计
	LimitTypeTotalUsage     LimitType = "TOTAL_USAGE"
	LimitTypeUsagePerUser   LimitType = "USAGE_PER_USER"
	LimitTypeUsagePerStore  LimitType = "USAGE_PER_STORE"
	LimitTypeUsagePerTenant LimitType = "USAGE_PER_TENANT"
	// LimitTypeTotalAmount 活动累计让利的上限
	LimitTypeTotalAmount LimitType = "TOTAL_AMOUNT"
)

type Unit string

const (
	UnitVND        Unit = "VND"
	UnitPercentage Unit = "PERCENTAGE"
	UnitOrder      Unit = "ORDER"
)

type Limit struct {
	Type  LimitType `json:"type"`
	Value int64     `json:"value"`
	Unit  Unit      `json:"unit"`
}

type RewardType string

const (
	RewardTypeFixedAmount      RewardType = "FIXED_AMOUNT"
	RewardTypePercentageAmount RewardType = "PERCENTAGE_AMOUNT"
)

type Reward struct {
	Type  RewardType `json:"type"`
	Value int64      `json:"value"`
	Unit  Unit       `json:"unit"`
}

// Scope 额度统计的维度
type Scope string

const (
	ScopeStore  Scope = "store"
	ScopeTenant Scope = "tenant"
	ScopeUser   Scope = "user"
	// ScopeAll 不区分维度
	ScopeAll Scope = "all"
)
