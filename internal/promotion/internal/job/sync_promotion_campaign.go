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

	"github.com/ecodeclub/laundry/internal/promotion/internal/service"
	"github.com/gotomicro/ego/core/elog"
	"github.com/gotomicro/ego/task/ecron"
)

var _ ecron.NamedJob = (*SyncPromotionCampaignJob)(nil)

// SyncPromotionCampaignJob 按照活动时间推进活动状态
type SyncPromotionCampaignJob struct {
	svc service.Service
	l   *elog.Component
}

func NewSyncPromotionCampaignJob(svc service.Service) *SyncPromotionCampaignJob {
	return &SyncPromotionCampaignJob{
		svc: svc,
		l:   elog.DefaultLogger,
	}
}

func (j *SyncPromotionCampaignJob) Name() string {
	return "sync_promotion_campaign_job"
}

func (j *SyncPromotionCampaignJob) Run(ctx context.Context) error {
	finished, activated, err := j.svc.SyncCampaignStatus(ctx, time.Now())
	if err != nil {
		return fmt.Errorf("同步促销活动状态失败: %w", err)
	}
	if finished+activated > 0 {
		j.l.Info("同步促销活动状态完成",
			elog.Int64("finished", finished),
			elog.Int64("activated", activated))
	}
	return nil
}
