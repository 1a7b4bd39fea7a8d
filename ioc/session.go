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
	"time"

	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/ginx/session/cookie"
	"github.com/ecodeclub/ginx/session/header"
	"github.com/ecodeclub/ginx/session/mixin"
	redisess "github.com/ecodeclub/ginx/session/redis"
	"github.com/gotomicro/ego/core/econf"
	"github.com/redis/go-redis/v9"
)

// InitSession 小程序和 App 走 header，后台走 cookie
func InitSession(cmd redis.Cmdable) session.Provider {
	type Config struct {
		SessionEncryptedKey string        `yaml:"sessionEncryptedKey"`
		Expiration          time.Duration `yaml:"expiration"`
		Cookie              struct {
			Name   string `yaml:"name"`
			Domain string `yaml:"domain"`
		} `yaml:"cookie"`
	}
	var cfg Config
	err := econf.UnmarshalKey("session", &cfg)
	if err != nil {
		panic(err)
	}
	if cfg.Expiration <= 0 {
		cfg.Expiration = 24 * time.Hour
	}
	if cfg.Cookie.Name == "" {
		cfg.Cookie.Name = "ssid"
	}
	sp := redisess.NewSessionProvider(cmd, cfg.SessionEncryptedKey, cfg.Expiration)
	cookieC := &cookie.TokenCarrier{
		MaxAge:   int(cfg.Expiration.Seconds()),
		Name:     cfg.Cookie.Name,
		Secure:   true,
		HttpOnly: true,
		Domain:   cfg.Cookie.Domain,
	}
	sp.TokenCarrier = mixin.NewTokenCarrier(header.NewTokenCarrier(), cookieC)
	return sp
}
