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

package transactioncode

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/lithammer/shortuuid/v4"
)

const (
	Length      = 8
	MaxAttempts = 100
	alphabet    = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

var ErrAttemptsExhausted = errors.New("交易码生成次数耗尽")

// Registry 已经被占用的交易码
type Registry interface {
	ExistsTransactionCode(ctx context.Context, code string) (bool, error)
}

type CandidateFunc func() string

// Generator 生成 8 位大写字母数字混合的交易码，
// 至少包含一个字母和一个数字，通过拒绝采样保证不与已有交易码冲突
type Generator struct {
	candidate   CandidateFunc
	maxAttempts int
}

func NewGenerator() *Generator {
	return NewGeneratorWith(func() string {
		s := shortuuid.NewWithAlphabet(alphabet)
		return s[len(s)-Length:]
	}, MaxAttempts)
}

func NewGeneratorWith(candidate CandidateFunc, maxAttempts int) *Generator {
	return &Generator{candidate: candidate, maxAttempts: maxAttempts}
}

func (g *Generator) Generate(ctx context.Context, reg Registry) (string, error) {
	for i := 0; i < g.maxAttempts; i++ {
		code := strings.ToUpper(g.candidate())
		if !Valid(code) {
			continue
		}
		exists, err := reg.ExistsTransactionCode(ctx, code)
		if err != nil {
			return "", fmt.Errorf("查询交易码失败: %w", err)
		}
		if !exists {
			return code, nil
		}
	}
	return "", fmt.Errorf("%w: 已尝试 %d 次", ErrAttemptsExhausted, g.maxAttempts)
}

// Valid 校验交易码格式
func Valid(code string) bool {
	if len(code) != Length {
		return false
	}
	var letter, digit bool
	for _, c := range code {
		switch {
		case c >= 'A' && c <= 'Z':
			letter = true
		case c >= '0' && c <= '9':
			digit = true
		default:
			return false
		}
	}
	return letter && digit
}

// Extract 从银行转账备注中找出交易码，备注里可能夹杂银行自己加的内容
func Extract(content string) (string, bool) {
	fields := strings.FieldsFunc(strings.ToUpper(content), func(r rune) bool {
		return (r < 'A' || r > 'Z') && (r < '0' || r > '9')
	})
	for _, f := range fields {
		if Valid(f) {
			return f, true
		}
	}
	return "", false
}
