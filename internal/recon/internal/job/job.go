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

package job

import (
	"context"
	"fmt"

	"github.com/ecodeclub/laundry/internal/recon/internal/service"
	"github.com/gotomicro/ego/core/elog"
	"github.com/gotomicro/ego/task/ecron"
)

var (
	_ ecron.NamedJob = (*SyncTimeoutPaymentsJob)(nil)
	_ ecron.NamedJob = (*SyncInProgressOrdersJob)(nil)
)

// SyncTimeoutPaymentsJob 关闭超时的支付，超时时间由 service 决定
type SyncTimeoutPaymentsJob struct {
	svc service.Service
	l   *elog.Component
}

func NewSyncTimeoutPaymentsJob(svc service.Service) *SyncTimeoutPaymentsJob {
	return &SyncTimeoutPaymentsJob{
		svc: svc,
		l:   elog.DefaultLogger}
}

func (s *SyncTimeoutPaymentsJob) Name() string {
	return "sync_timeout_payments_job"
}

func (s *SyncTimeoutPaymentsJob) Run(ctx context.Context) error {
	cnt, err := s.svc.SyncTimeoutPayments(ctx)
	if err != nil {
		return fmt.Errorf("关闭超时支付失败: %w", err)
	}
	if cnt > 0 {
		s.l.Info("关闭超时支付完成", elog.Int64("count", int64(cnt)))
	}
	return nil
}

type SyncInProgressOrdersJob struct {
	svc service.Service
	l   *elog.Component
}

func NewSyncInProgressOrdersJob(svc service.Service) *SyncInProgressOrdersJob {
	return &SyncInProgressOrdersJob{
		svc: svc,
		l:   elog.DefaultLogger}
}

func (s *SyncInProgressOrdersJob) Name() string {
	return "sync_in_progress_orders_job"
}

func (s *SyncInProgressOrdersJob) Run(ctx context.Context) error {
	cnt, err := s.svc.SyncInProgressOrders(ctx)
	if err != nil {
		return fmt.Errorf("同步进行中订单失败: %w", err)
	}
	if cnt > 0 {
		s.l.Info("同步进行中订单完成", elog.Int64("count", int64(cnt)))
	}
	return nil
}
