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

package event

const (
	MachineCommandTopic    = "machine_commands"
	MachineStateEventTopic = "machine_state_events"

	ActionStart = "MACHINE_START"
	ActionStop  = "MACHINE_STOP"
)

// MachineCommand 下发给控制器的指令，由网关转换成设备协议
type MachineCommand struct {
	CorrelationID int64  `json:"correlationId"`
	Action        string `json:"action"`
	StoreID       int64  `json:"storeId"`
	MachineID     int64  `json:"machineId"`
	ControllerID  string `json:"controllerId"`
	RelayNo       int    `json:"relayNo"`
	MachineType   string `json:"machineType"`
	PulseDuration int64  `json:"pulseDuration"`
	PulseInterval int64  `json:"pulseInterval"`
	// 脉冲数
	Value     int64 `json:"value"`
	Timestamp int64 `json:"timestamp"`
}

// MachineStateEvent 控制器上报的机器状态
type MachineStateEvent struct {
	ControllerID string `json:"controllerId"`
	RelayNo      int    `json:"relayNo"`
	Status       string `json:"status"`
}
