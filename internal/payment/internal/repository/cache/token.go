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
	"fmt"
	"time"

	"github.com/ecodeclub/ecache"
	"github.com/pkg/errors"
)

var ErrTokenNotFound = errors.New("缓存中没有令牌")

// TokenCache 保存两类令牌:
// 调用渠道接口使用的访问令牌，以及签发给渠道回调我们使用的令牌
type TokenCache interface {
	GetProviderToken(ctx context.Context, provider string) (string, error)
	SetProviderToken(ctx context.Context, provider string, token string, ttl time.Duration) error
	SetPartnerToken(ctx context.Context, token string, ttl time.Duration) error
	ExistsPartnerToken(ctx context.Context, token string) (bool, error)
}

type tokenCache struct {
	ec ecache.Cache
}

func NewTokenCache(ec ecache.Cache) TokenCache {
	return &tokenCache{
		ec: &ecache.NamespaceCache{
			C:         ec,
			Namespace: "payment:",
		},
	}
}

func (c *tokenCache) GetProviderToken(ctx context.Context, provider string) (string, error) {
	val := c.ec.Get(ctx, c.providerKey(provider))
	if val.KeyNotFound() {
		return "", ErrTokenNotFound
	}
	if val.Err != nil {
		return "", val.Err
	}
	return val.String()
}

func (c *tokenCache) SetProviderToken(ctx context.Context, provider string, token string, ttl time.Duration) error {
	return c.ec.Set(ctx, c.providerKey(provider), token, ttl)
}

func (c *tokenCache) SetPartnerToken(ctx context.Context, token string, ttl time.Duration) error {
	return c.ec.Set(ctx, c.partnerKey(token), "1", ttl)
}

func (c *tokenCache) ExistsPartnerToken(ctx context.Context, token string) (bool, error) {
	val := c.ec.Get(ctx, c.partnerKey(token))
	if val.KeyNotFound() {
		return false, nil
	}
	return val.Err == nil, val.Err
}

func (c *tokenCache) providerKey(provider string) string {
	return fmt.Sprintf("provider_token:%s", provider)
}

func (c *tokenCache) partnerKey(token string) string {
	return fmt.Sprintf("partner_token:%s", token)
}
