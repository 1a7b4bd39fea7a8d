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

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ecodeclub/laundry/internal/machine/internal/domain"
	"github.com/ecodeclub/laundry/internal/machine/internal/event"
	"github.com/ecodeclub/laundry/internal/machine/internal/repository"
	"github.com/ecodeclub/laundry/internal/machine/internal/repository/dao"
	"github.com/ecodeclub/laundry/internal/pkg/snowflake"
	"github.com/gotomicro/ego/core/elog"
)

var (
	ErrMachineNotFound    = errors.New("机器不存在")
	ErrMachineUnavailable = errors.New("机器不可用")
	ErrInvalidStatus      = errors.New("机器状态非法")
)

// Service 负责机器的启动、释放以及状态同步，
// 指令通过消息队列下发，控制器回报的状态通过 HandleStateEvent 写回
type Service interface {
	Save(ctx context.Context, m domain.Machine) (int64, error)
	FindByID(ctx context.Context, id int64) (domain.Machine, error)
	FindByIDs(ctx context.Context, ids []int64) ([]domain.Machine, error)
	StatusOf(ctx context.Context, id int64) (domain.MachineStatus, error)
	// Start IDLE -> STARTING，并下发启动指令，amount 用于计算脉冲数
	Start(ctx context.Context, id int64, amount int64) error
	// Finish STARTING/BUSY -> IDLE，并下发停止指令，已经空闲的机器直接返回
	Finish(ctx context.Context, id int64) error
	HandleStateEvent(ctx context.Context, controllerID string, relayNo int, status domain.MachineStatus) error
	// ResetNoResponding 把 before 之后再也没有心跳的运行中机器重置为空闲，返回重置数量
	ResetNoResponding(ctx context.Context, before time.Time, limit int) (int, error)
}

type service struct {
	repo     repository.MachineRepository
	producer event.MachineCommandProducer
	idGen    snowflake.Generator
	logger   *elog.Component
}

func NewService(repo repository.MachineRepository,
	producer event.MachineCommandProducer,
	idGen snowflake.Generator) Service {
	return &service{
		repo:     repo,
		producer: producer,
		idGen:    idGen,
		logger:   elog.DefaultLogger,
	}
}

func (s *service) Save(ctx context.Context, m domain.Machine) (int64, error) {
	if !m.Type.Valid() {
		return 0, fmt.Errorf("%w: 机器类型 %s", ErrInvalidStatus, m.Type)
	}
	return s.repo.Save(ctx, m)
}

func (s *service) FindByID(ctx context.Context, id int64) (domain.Machine, error) {
	m, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, dao.ErrRecordNotFound) {
		return domain.Machine{}, fmt.Errorf("%w: id=%d", ErrMachineNotFound, id)
	}
	return m, err
}

func (s *service) FindByIDs(ctx context.Context, ids []int64) ([]domain.Machine, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	return s.repo.FindByIDs(ctx, ids)
}

func (s *service) StatusOf(ctx context.Context, id int64) (domain.MachineStatus, error) {
	m, err := s.FindByID(ctx, id)
	if err != nil {
		return "", err
	}
	return m.Status, nil
}

func (s *service) Start(ctx context.Context, id int64, amount int64) error {
	m, err := s.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !m.Available() {
		return fmt.Errorf("%w: id=%d, status=%s", ErrMachineUnavailable, id, m.Status)
	}
	ok, err := s.repo.UpdateStatus(ctx, id, []domain.MachineStatus{domain.MachineStatusIdle}, domain.MachineStatusStarting)
	if err != nil {
		return fmt.Errorf("更新机器状态失败: %w", err)
	}
	if !ok {
		// 并发启动
		return fmt.Errorf("%w: id=%d, 状态已经被修改", ErrMachineUnavailable, id)
	}
	return s.send(ctx, event.ActionStart, m, m.PulseValue(amount))
}

func (s *service) Finish(ctx context.Context, id int64) error {
	m, err := s.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !m.Status.Running() {
		return nil
	}
	ok, err := s.repo.UpdateStatus(ctx, id,
		[]domain.MachineStatus{domain.MachineStatusStarting, domain.MachineStatusBusy},
		domain.MachineStatusIdle)
	if err != nil {
		return fmt.Errorf("更新机器状态失败: %w", err)
	}
	if !ok {
		return nil
	}
	return s.send(ctx, event.ActionStop, m, 0)
}

func (s *service) send(ctx context.Context, action string, m domain.Machine, value int64) error {
	id, err := s.idGen.Generate(snowflake.KindMachineCommand)
	if err != nil {
		return fmt.Errorf("生成指令ID失败: %w", err)
	}
	cmd := event.MachineCommand{
		CorrelationID: id.Int64(),
		Action:        action,
		StoreID:       m.StoreID,
		MachineID:     m.ID,
		ControllerID:  m.ControllerID,
		RelayNo:       m.RelayNo,
		MachineType:   string(m.Type),
		PulseDuration: m.PulseDuration,
		PulseInterval: m.PulseInterval,
		Value:         value,
		Timestamp:     time.Now().UnixMilli(),
	}
	if err = s.producer.Produce(ctx, cmd); err != nil {
		// 机器停留在 STARTING，由重置任务兜底
		s.logger.Error("下发机器指令失败",
			elog.FieldErr(err),
			elog.Int64("machine_id", m.ID),
			elog.String("action", action))
		return fmt.Errorf("下发机器指令失败: %w", err)
	}
	return nil
}

func (s *service) HandleStateEvent(ctx context.Context, controllerID string, relayNo int, status domain.MachineStatus) error {
	if !status.Valid() {
		return fmt.Errorf("%w: %s", ErrInvalidStatus, status)
	}
	ok, err := s.repo.UpdateStatusByRelay(ctx, controllerID, relayNo, status)
	if err != nil {
		return fmt.Errorf("更新机器状态失败: %w", err)
	}
	if !ok {
		return fmt.Errorf("%w: controller=%s, relay=%d", ErrMachineNotFound, controllerID, relayNo)
	}
	return nil
}

func (s *service) ResetNoResponding(ctx context.Context, before time.Time, limit int) (int, error) {
	ms, err := s.repo.FindNoResponding(ctx, before, limit)
	if err != nil {
		return 0, fmt.Errorf("查找无响应机器失败: %w", err)
	}
	cnt := 0
	for _, m := range ms {
		ok, er := s.repo.UpdateStatus(ctx, m.ID, []domain.MachineStatus{m.Status}, domain.MachineStatusIdle)
		if er != nil {
			s.logger.Warn("重置无响应机器失败", elog.FieldErr(er), elog.Int64("machine_id", m.ID))
			continue
		}
		if ok {
			cnt++
			s.logger.Info("重置无响应机器",
				elog.Int64("machine_id", m.ID),
				elog.String("status", string(m.Status)))
		}
	}
	return cnt, nil
}
