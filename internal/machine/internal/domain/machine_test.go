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

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMachine_PulseValue(t *testing.T) {
	testCases := []struct {
		name   string
		coin   int64
		amount int64
		want   int64
	}{
		{name: "整除", coin: 10000, amount: 50000, want: 5},
		{name: "不足一个币按一个算", coin: 10000, amount: 5000, want: 1},
		{name: "没有配置面值", coin: 0, amount: 50000, want: 1},
		{name: "向下取整", coin: 10000, amount: 25000, want: 2},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			m := Machine{CoinValue: tc.coin}
			assert.Equal(t, tc.want, m.PulseValue(tc.amount))
		})
	}
}

func TestMachine_Available(t *testing.T) {
	assert.True(t, Machine{Status: MachineStatusIdle}.Available())
	assert.False(t, Machine{Status: MachineStatusIdle, Dtime: 1}.Available())
	assert.False(t, Machine{Status: MachineStatusBusy}.Available())
	assert.False(t, Machine{Status: MachineStatusPendingSetup}.Available())
	assert.True(t, MachineStatusStarting.Running())
	assert.True(t, MachineStatusBusy.Running())
	assert.False(t, MachineStatusIdle.Running())
}
