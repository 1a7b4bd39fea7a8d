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

type OrderStatus string

const (
	StatusNew               OrderStatus = "NEW"
	StatusWaitingForPayment OrderStatus = "WAITING_FOR_PAYMENT"
	StatusPaymentSuccess    OrderStatus = "PAYMENT_SUCCESS"
	StatusPaymentFailed     OrderStatus = "PAYMENT_FAILED"
	StatusInProgress        OrderStatus = "IN_PROGRESS"
	StatusFinished          OrderStatus = "FINISHED"
	StatusCancelled         OrderStatus = "CANCELLED"
)

var orderTransitions = map[OrderStatus][]OrderStatus{
	StatusNew:               {StatusWaitingForPayment, StatusCancelled},
	StatusWaitingForPayment: {StatusPaymentSuccess, StatusPaymentFailed, StatusCancelled},
	StatusPaymentFailed:     {StatusWaitingForPayment, StatusCancelled},
	StatusPaymentSuccess:    {StatusInProgress},
	StatusInProgress:        {StatusFinished, StatusCancelled},
	StatusFinished:          {},
	StatusCancelled:         {},
}

func AllOrderStatuses() []OrderStatus {
	return []OrderStatus{
		StatusNew, StatusWaitingForPayment, StatusPaymentSuccess, StatusPaymentFailed,
		StatusInProgress, StatusFinished, StatusCancelled,
	}
}

func (s OrderStatus) Valid() bool {
	_, ok := orderTransitions[s]
	return ok
}

func (s OrderStatus) CanTransitionTo(target OrderStatus) bool {
	for _, t := range orderTransitions[s] {
		if t == target {
			return true
		}
	}
	return false
}

func (s OrderStatus) Terminal() bool {
	return s.Valid() && len(orderTransitions[s]) == 0
}

// PreviousOf 能够转移到 target 的所有状态
func PreviousOf(target OrderStatus) []OrderStatus {
	var res []OrderStatus
	for _, s := range AllOrderStatuses() {
		if s.CanTransitionTo(target) {
			res = append(res, s)
		}
	}
	return res
}

type DetailStatus string

const (
	DetailStatusNew        DetailStatus = "NEW"
	DetailStatusInProgress DetailStatus = "IN_PROGRESS"
	DetailStatusFinished   DetailStatus = "FINISHED"
	DetailStatusCancelled  DetailStatus = "CANCELLED"
)

// Open 还没有结束的订单明细
func (s DetailStatus) Open() bool {
	return s == DetailStatusNew || s == DetailStatusInProgress
}
