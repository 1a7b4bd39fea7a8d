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

type MachineType string

const (
	MachineTypeWasher MachineType = "WASHER"
	MachineTypeDryer  MachineType = "DRYER"
)

func (t MachineType) Valid() bool {
	return t == MachineTypeWasher || t == MachineTypeDryer
}

type MachineStatus string

const (
	MachineStatusPendingSetup MachineStatus = "PENDING_SETUP"
	MachineStatusIdle         MachineStatus = "IDLE"
	MachineStatusStarting     MachineStatus = "STARTING"
	MachineStatusBusy         MachineStatus = "BUSY"
	MachineStatusOutOfService MachineStatus = "OUT_OF_SERVICE"
)

func (s MachineStatus) Valid() bool {
	switch s {
	case MachineStatusPendingSetup, MachineStatusIdle, MachineStatusStarting,
		MachineStatusBusy, MachineStatusOutOfService:
		return true
	}
	return false
}

// Running 机器已经被启动，还没有回到空闲
func (s MachineStatus) Running() bool {
	return s == MachineStatusStarting || s == MachineStatusBusy
}

type Machine struct {
	ID      int64
	StoreID int64
	// 控制器ID，一个控制器通过多个继电器控制多台机器
	ControllerID string
	RelayNo      int
	Name         string
	Type         MachineType
	// 基础价格，单位 VND
	BasePrice int64
	// 投币面值，启动时脉冲数 = 金额 / 面值
	CoinValue     int64
	PulseDuration int64
	PulseInterval int64
	Status        MachineStatus
	HeartbeatAt   int64
	Ctime         int64
	Utime         int64
	Dtime         int64
}

// Available 空闲并且没有被删除才能下单
func (m Machine) Available() bool {
	return m.Status == MachineStatusIdle && m.Dtime == 0
}

// PulseValue 启动机器需要的脉冲数，至少为 1
func (m Machine) PulseValue(amount int64) int64 {
	if m.CoinValue <= 0 {
		return 1
	}
	return max(amount/m.CoinValue, 1)
}
