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

package sequencenumber

import (
	"fmt"
	"time"

	"github.com/lithammer/shortuuid/v4"
)

const (
	Length    = 24
	timeStamp = "20060102150405"
)

type NowFunc func() time.Time

type ShortUUIDGenerateFunc func() string

// Generator 生成订单序列号
type Generator struct {
	now       NowFunc
	shortUUID ShortUUIDGenerateFunc
}

func NewGeneratorWith(now NowFunc, uuidGen ShortUUIDGenerateFunc) *Generator {
	return &Generator{
		now:       now,
		shortUUID: uuidGen,
	}
}

func NewGenerator() *Generator {
	return NewGeneratorWith(time.Now, func() string { return shortuuid.New() })
}

// Generate 生成 24 位序列号：
// 14 位时间(yyyyMMddHHmmss) + id 后四位 + 6 位随机串
func (s *Generator) Generate(id int64) (string, error) {
	uuid := s.shortUUID()
	if len(uuid) < 6 {
		return "", fmt.Errorf("随机串长度不足: %s", uuid)
	}
	return fmt.Sprintf("%s%04d%s", s.now().Format(timeStamp), id%10000, uuid[:6]), nil
}
