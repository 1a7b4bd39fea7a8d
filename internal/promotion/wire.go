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

//go:build wireinject

package promotion

import (
	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/laundry/internal/promotion/internal/job"
	"github.com/ecodeclub/laundry/internal/promotion/internal/repository"
	"github.com/ecodeclub/laundry/internal/promotion/internal/repository/cache"
	"github.com/ecodeclub/laundry/internal/promotion/internal/repository/dao"
	"github.com/ecodeclub/laundry/internal/promotion/internal/service"
	"github.com/ecodeclub/laundry/internal/promotion/internal/web"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
)

func InitModule(db *egorm.Component, ec ecache.Cache) *Module {
	wire.Build(
		initDAO,
		cache.NewPromotionCache,
		repository.NewPromotionRepository,
		service.NewService,
		web.NewAdminHandler,
		job.NewSyncPromotionCampaignJob,
		wire.Struct(new(Module), "*"),
	)
	return new(Module)
}

func initDAO(db *egorm.Component) dao.PromotionDAO {
	err := dao.InitTables(db)
	if err != nil {
		panic(err)
	}
	return dao.NewGORMPromotionDAO(db)
}
