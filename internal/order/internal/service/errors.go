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
	"errors"
	"fmt"
)

var (
	ErrOrderNotFound      = errors.New("订单不存在")
	ErrInvalidTransition  = errors.New("订单状态不允许该操作")
	ErrMachineUnavailable = errors.New("机器不可用")
	ErrInvalidOrder       = errors.New("订单参数非法")
)

// MachinesUnavailableError 下单时不可用的机器
type MachinesUnavailableError struct {
	MachineIDs []int64
}

func (e *MachinesUnavailableError) Error() string {
	return fmt.Sprintf("%s: %v", ErrMachineUnavailable.Error(), e.MachineIDs)
}

func (e *MachinesUnavailableError) Unwrap() error {
	return ErrMachineUnavailable
}
