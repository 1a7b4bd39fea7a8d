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

package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/laundry/internal/promotion/internal/domain"
	"github.com/pkg/errors"
)

var ErrPromotionNotFound = errors.New("缓存中没有促销活动")

const (
	// 活动变更之后最多一分钟就能生效
	expiration = time.Minute
	activeKey  = "active"
)

type PromotionCache interface {
	SetActive(ctx context.Context, ps []domain.Promotion) error
	GetActive(ctx context.Context) ([]domain.Promotion, error)
	DelActive(ctx context.Context) error
}

type promotionCache struct {
	ec ecache.Cache
}

func NewPromotionCache(ec ecache.Cache) PromotionCache {
	return &promotionCache{
		ec: &ecache.NamespaceCache{
			C:         ec,
			Namespace: "promotion:",
		},
	}
}

func (c *promotionCache) SetActive(ctx context.Context, ps []domain.Promotion) error {
	val, err := json.Marshal(ps)
	if err != nil {
		return errors.Wrap(err, "序列化促销活动失败")
	}
	return c.ec.Set(ctx, activeKey, string(val), expiration)
}

func (c *promotionCache) GetActive(ctx context.Context) ([]domain.Promotion, error) {
	val := c.ec.Get(ctx, activeKey)
	if val.KeyNotFound() {
		return nil, ErrPromotionNotFound
	}
	if val.Err != nil {
		return nil, val.Err
	}
	str, err := val.String()
	if err != nil {
		return nil, err
	}
	var res []domain.Promotion
	err = json.Unmarshal([]byte(str), &res)
	return res, errors.Wrap(err, "反序列化促销活动失败")
}

func (c *promotionCache) DelActive(ctx context.Context) error {
	_, err := c.ec.Delete(ctx, activeKey)
	return err
}
