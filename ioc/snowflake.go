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

package ioc

import (
	"github.com/ecodeclub/laundry/internal/pkg/snowflake"
	"github.com/gotomicro/ego/core/econf"
)

// InitIDGenerator 每个实例的 nodeID 必须不同
func InitIDGenerator() snowflake.Generator {
	const kinds = 2
	nodeID := econf.GetInt("snowflake.nodeID")
	g, err := snowflake.NewKindSnowFlake(uint(nodeID), kinds)
	if err != nil {
		panic(err)
	}
	return g
}
