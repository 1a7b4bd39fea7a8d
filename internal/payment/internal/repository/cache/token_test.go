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
	"testing"
	"time"

	testioc "github.com/ecodeclub/laundry/internal/test/ioc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenCache_ProviderToken(t *testing.T) {
	ec, mr := testioc.NewCache(t)
	c := NewTokenCache(ec)
	ctx := context.Background()

	_, err := c.GetProviderToken(ctx, "VIET_QR")
	assert.ErrorIs(t, err, ErrTokenNotFound)

	require.NoError(t, c.SetProviderToken(ctx, "VIET_QR", "access-token", time.Minute))
	token, err := c.GetProviderToken(ctx, "VIET_QR")
	require.NoError(t, err)
	assert.Equal(t, "access-token", token)
	assert.True(t, mr.Exists("laundry:payment:provider_token:VIET_QR"))

	mr.FastForward(time.Minute)
	_, err = c.GetProviderToken(ctx, "VIET_QR")
	assert.ErrorIs(t, err, ErrTokenNotFound)
}

func TestTokenCache_PartnerToken(t *testing.T) {
	ec, mr := testioc.NewCache(t)
	c := NewTokenCache(ec)
	ctx := context.Background()

	ok, err := c.ExistsPartnerToken(ctx, "t1")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, c.SetPartnerToken(ctx, "t1", 5*time.Minute))
	ok, err = c.ExistsPartnerToken(ctx, "t1")
	require.NoError(t, err)
	assert.True(t, ok)

	mr.FastForward(5 * time.Minute)
	ok, err = c.ExistsPartnerToken(ctx, "t1")
	require.NoError(t, err)
	assert.False(t, ok)
}
