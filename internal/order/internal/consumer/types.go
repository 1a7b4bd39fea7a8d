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

package consumer

const PaymentEventTopic = "payment_events"

const paymentStatusSuccess = "SUCCESS"

// PaymentEvent 支付状态变更事件，字段和支付模块发送的消息保持一致
type PaymentEvent struct {
	PaymentID       int64  `json:"paymentId"`
	OrderID         int64  `json:"orderId"`
	TransactionCode string `json:"transactionCode"`
	Status          string `json:"status"`
	TotalAmount     int64  `json:"totalAmount"`
}
