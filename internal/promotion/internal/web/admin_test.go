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

package web

import (
	"net/http"
	"testing"

	"github.com/ecodeclub/ekit/iox"
	"github.com/ecodeclub/laundry/internal/promotion/internal/errs"
	"github.com/ecodeclub/laundry/internal/promotion/internal/repository"
	"github.com/ecodeclub/laundry/internal/promotion/internal/repository/cache"
	"github.com/ecodeclub/laundry/internal/promotion/internal/repository/dao"
	"github.com/ecodeclub/laundry/internal/promotion/internal/service"
	"github.com/ecodeclub/laundry/internal/test"
	testioc "github.com/ecodeclub/laundry/internal/test/ioc"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type AdminHandlerTestSuite struct {
	suite.Suite
	server *egin.Component
}

func TestAdminHandler(t *testing.T) {
	suite.Run(t, new(AdminHandlerTestSuite))
}

func (s *AdminHandlerTestSuite) SetupTest() {
	db := testioc.NewSQLiteDB(s.T(), dao.InitTables)
	ec, _ := testioc.NewCache(s.T())
	svc := service.NewService(repository.NewPromotionRepository(dao.NewGORMPromotionDAO(db), cache.NewPromotionCache(ec)))
	econf.Set("server", map[string]any{"contextTimeout": "1s"})
	server := egin.Load("server").Build()
	server.Use(test.LoginAs(1))
	NewAdminHandler(svc).PrivateRoutes(server.Engine)
	s.server = server
}

func (s *AdminHandlerTestSuite) TestSaveAndDetail() {
	t := s.T()
	saveReq := Promotion{
		Name:   "周末洗衣",
		Status: "ACTIVE",
		Conditions: []Condition{
			{Type: "MACHINE_TYPES", Operator: "IN", Value: []string{"WASHER"}},
		},
		Rewards: []Reward{{Type: "PERCENTAGE_AMOUNT", Value: 10, Unit: "PERCENTAGE"}},
	}
	req, err := http.NewRequest(http.MethodPost, "/promotion/save", iox.NewJSONReader(saveReq))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[int64]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, http.StatusOK, recorder.Code)
	id := recorder.MustScan().Data
	assert.True(t, id > 0)

	req, err = http.NewRequest(http.MethodPost, "/promotion/detail", iox.NewJSONReader(PromotionID{ID: id}))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	detail := test.NewJSONResponseRecorder[Promotion]()
	s.server.ServeHTTP(detail, req)
	require.Equal(t, http.StatusOK, detail.Code)
	got := detail.MustScan().Data
	assert.Equal(t, "周末洗衣", got.Name)
	assert.Equal(t, saveReq.Conditions, got.Conditions)
	assert.Equal(t, saveReq.Rewards, got.Rewards)
}

func (s *AdminHandlerTestSuite) TestErrors() {
	testCases := []struct {
		name     string
		path     string
		req      any
		wantCode int
	}{
		{name: "名称为空", path: "/promotion/save", req: Promotion{Status: "ACTIVE"}, wantCode: errs.InvalidPromotion.Code},
		{name: "活动不存在", path: "/promotion/detail", req: PromotionID{ID: 10086}, wantCode: errs.PromotionNotFound.Code},
	}
	for _, tc := range testCases {
		s.T().Run(tc.name, func(t *testing.T) {
			req, err := http.NewRequest(http.MethodPost, tc.path, iox.NewJSONReader(tc.req))
			require.NoError(t, err)
			req.Header.Set("content-type", "application/json")
			recorder := test.NewJSONResponseRecorder[any]()
			s.server.ServeHTTP(recorder, req)
			require.Equal(t, http.StatusOK, recorder.Code)
			assert.Equal(t, tc.wantCode, recorder.MustScan().Code)
		})
	}
}
