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

package snowflake

import (
	"errors"
	"fmt"

	"github.com/bwmarrin/snowflake"
	"github.com/ecodeclub/ekit/syncx"
)

// +--------------------------------------------------------------------------------------+
// | 1 Bit Unused | 41 Bit Timestamp |  5 Bit Kind | 5 Bit NodeID  |   12 Bit Sequence ID |
// +--------------------------------------------------------------------------------------+

// Kind 区分不同用途的 ID，例如机器指令、机器事件
type Kind uint

const (
	KindMachineCommand Kind = iota
	KindMachineEvent

	maxNode uint = 31
	maxKind uint = 31
)

var (
	ErrExceedNode  = errors.New("node超出限制")
	ErrExceedKind  = errors.New("kind超出限制")
	ErrUnknownKind = errors.New("未知的kind")
)

type Generator interface {
	Generate(kind Kind) (ID, error)
}

type KindSnowFlake struct {
	nodes syncx.Map[Kind, *snowflake.Node]
}

// NewKindSnowFlake nodeID 表示第几个实例，kinds 表示一共有几种 ID
func NewKindSnowFlake(nodeID uint, kinds uint) (*KindSnowFlake, error) {
	if nodeID > maxNode {
		return nil, fmt.Errorf("%w: %d", ErrExceedNode, nodeID)
	}
	if kinds > maxKind+1 {
		return nil, fmt.Errorf("%w: %d", ErrExceedKind, kinds)
	}
	res := &KindSnowFlake{}
	for i := uint(0); i < kinds; i++ {
		n, err := snowflake.NewNode(int64(i<<5 | nodeID))
		if err != nil {
			return nil, err
		}
		res.nodes.Store(Kind(i), n)
	}
	return res, nil
}

func (c *KindSnowFlake) Generate(kind Kind) (ID, error) {
	n, ok := c.nodes.Load(kind)
	if !ok {
		return 0, fmt.Errorf("%w: %d", ErrUnknownKind, kind)
	}
	return ID(n.Generate()), nil
}

type ID int64

func (f ID) Kind() Kind {
	return Kind(snowflake.ID(f).Node() >> 5)
}

func (f ID) Int64() int64 {
	return int64(f)
}
