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
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/ecodeclub/ekit/iox"
	"github.com/ecodeclub/laundry/internal/order"
	"github.com/ecodeclub/laundry/internal/recon/internal/errs"
	reconmocks "github.com/ecodeclub/laundry/internal/recon/mocks"
	"github.com/ecodeclub/laundry/internal/test"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newServer(t *testing.T, svc *reconmocks.MockService) *egin.Component {
	econf.Set("server", map[string]any{"contextTimeout": "1s"})
	server := egin.Load("server").Build()
	server.Use(test.LoginAs(1))
	NewAdminHandler(svc).PrivateRoutes(server.Engine)
	return server
}

func post(t *testing.T, path string, body any) *http.Request {
	req, err := http.NewRequest(http.MethodPost, path, iox.NewJSONReader(body))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	return req
}

func TestAdminHandler_SyncOrder(t *testing.T) {
	testCases := []struct {
		name     string
		mock     func(svc *reconmocks.MockService)
		wantCode int
		wantResp test.Result[Order]
	}{
		{
			name: "同步成功",
			mock: func(svc *reconmocks.MockService) {
				svc.EXPECT().SyncOrder(gomock.Any(), int64(2)).Return(order.Order{
					ID:     2,
					SN:     "SN-2",
					Status: order.StatusFinished,
					Details: []order.OrderDetail{
						{ID: 5, MachineID: 100, Status: order.DetailStatusFinished},
						{ID: 6, MachineID: 101, Status: order.DetailStatusCancelled},
					},
				}, nil)
			},
			wantCode: http.StatusOK,
			wantResp: test.Result[Order]{Data: Order{
				ID:     2,
				SN:     "SN-2",
				Status: "FINISHED",
				Details: []OrderDetail{
					{ID: 5, MachineID: 100, Status: "FINISHED"},
					{ID: 6, MachineID: 101, Status: "CANCELLED"},
				},
			}},
		},
		{
			name: "订单不存在",
			mock: func(svc *reconmocks.MockService) {
				svc.EXPECT().SyncOrder(gomock.Any(), int64(2)).
					Return(order.Order{}, fmt.Errorf("%w: id 2", order.ErrOrderNotFound))
			},
			wantCode: http.StatusOK,
			wantResp: test.Result[Order]{Code: errs.OrderNotFound.Code, Msg: errs.OrderNotFound.Msg},
		},
		{
			name: "系统错误",
			mock: func(svc *reconmocks.MockService) {
				svc.EXPECT().SyncOrder(gomock.Any(), int64(2)).
					Return(order.Order{}, errors.New("mock db error"))
			},
			wantCode: http.StatusInternalServerError,
			wantResp: test.Result[Order]{Code: errs.SystemError.Code, Msg: errs.SystemError.Msg},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc := reconmocks.NewMockService(ctrl)
			tc.mock(svc)
			server := newServer(t, svc)

			recorder := test.NewJSONResponseRecorder[Order]()
			server.ServeHTTP(recorder, post(t, "/recon/order", OrderIDReq{OrderID: 2}))
			require.Equal(t, tc.wantCode, recorder.Code)
			assert.Equal(t, tc.wantResp, recorder.MustScan())
		})
	}
}

func TestAdminHandler_Sweeps(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := reconmocks.NewMockService(ctrl)
	svc.EXPECT().SyncInProgressOrders(gomock.Any()).Return(3, nil)
	svc.EXPECT().SyncTimeoutPayments(gomock.Any()).Return(0, errors.New("mock db error"))
	server := newServer(t, svc)

	recorder := test.NewJSONResponseRecorder[int]()
	server.ServeHTTP(recorder, post(t, "/recon/orders", nil))
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, 3, recorder.MustScan().Data)

	recorder = test.NewJSONResponseRecorder[int]()
	server.ServeHTTP(recorder, post(t, "/recon/payments", nil))
	require.Equal(t, http.StatusInternalServerError, recorder.Code)
	assert.Equal(t, errs.SystemError.Code, recorder.MustScan().Code)
}
