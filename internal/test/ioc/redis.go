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

package testioc

import (
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/ecodeclub/ecache"
	eredis "github.com/ecodeclub/ecache/redis"
	"github.com/redis/go-redis/v9"
)

// NewCache 基于 miniredis 的缓存，测试结束后自动关闭
func NewCache(t testing.TB) (ecache.Cache, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	cmd := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() {
		_ = cmd.Close()
	})
	return &ecache.NamespaceCache{
		C:         eredis.NewCache(cmd),
		Namespace: "laundry:",
	}, mr
}
