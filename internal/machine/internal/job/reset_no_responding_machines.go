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
	"time"

	"github.com/ecodeclub/laundry/internal/machine/internal/service"
	"github.com/gotomicro/ego/core/elog"
	"github.com/gotomicro/ego/task/ecron"
)

var _ ecron.NamedJob = (*ResetNoRespondingMachinesJob)(nil)

// ResetNoRespondingMachinesJob 启动或者运行中的机器超过一定时间没有上报状态，重置为空闲
type ResetNoRespondingMachinesJob struct {
	svc     service.Service
	timeout time.Duration
	limit   int
	l       *elog.Component
}

func NewResetNoRespondingMachinesJob(svc service.Service, timeout time.Duration, limit int) *ResetNoRespondingMachinesJob {
	return &ResetNoRespondingMachinesJob{
		svc:     svc,
		timeout: timeout,
		limit:   limit,
		l:       elog.DefaultLogger,
	}
}

func (j *ResetNoRespondingMachinesJob) Name() string {
	return "reset_no_responding_machines_job"
}

func (j *ResetNoRespondingMachinesJob) Run(ctx context.Context) error {
	cnt, err := j.svc.ResetNoResponding(ctx, time.Now().Add(-j.timeout), j.limit)
	if err != nil {
		return fmt.Errorf("重置无响应机器失败: %w", err)
	}
	if cnt > 0 {
		j.l.Info("重置无响应机器完成", elog.Int64("count", int64(cnt)))
	}
	return nil
}
