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

package repository

import (
	"context"
	"time"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/laundry/internal/machine/internal/domain"
	"github.com/ecodeclub/laundry/internal/machine/internal/repository/dao"
)

type MachineRepository interface {
	Save(ctx context.Context, m domain.Machine) (int64, error)
	FindByID(ctx context.Context, id int64) (domain.Machine, error)
	FindByIDs(ctx context.Context, ids []int64) ([]domain.Machine, error)
	FindByRelay(ctx context.Context, controllerID string, relayNo int) (domain.Machine, error)
	UpdateStatus(ctx context.Context, id int64, from []domain.MachineStatus, to domain.MachineStatus) (bool, error)
	UpdateStatusByRelay(ctx context.Context, controllerID string, relayNo int, status domain.MachineStatus) (bool, error)
	FindNoResponding(ctx context.Context, before time.Time, limit int) ([]domain.Machine, error)
}

type machineRepository struct {
	dao dao.MachineDAO
}

func NewMachineRepository(d dao.MachineDAO) MachineRepository {
	return &machineRepository{dao: d}
}

func (r *machineRepository) Save(ctx context.Context, m domain.Machine) (int64, error) {
	return r.dao.Save(ctx, r.toEntity(m))
}

func (r *machineRepository) FindByID(ctx context.Context, id int64) (domain.Machine, error) {
	m, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Machine{}, err
	}
	return r.toDomain(m), nil
}

func (r *machineRepository) FindByIDs(ctx context.Context, ids []int64) ([]domain.Machine, error) {
	ms, err := r.dao.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	return slice.Map(ms, func(_ int, src dao.Machine) domain.Machine {
		return r.toDomain(src)
	}), nil
}

func (r *machineRepository) FindByRelay(ctx context.Context, controllerID string, relayNo int) (domain.Machine, error) {
	m, err := r.dao.FindByRelay(ctx, controllerID, relayNo)
	if err != nil {
		return domain.Machine{}, err
	}
	return r.toDomain(m), nil
}

func (r *machineRepository) UpdateStatus(ctx context.Context, id int64, from []domain.MachineStatus, to domain.MachineStatus) (bool, error) {
	rows, err := r.dao.UpdateStatus(ctx, id, slice.Map(from, func(_ int, src domain.MachineStatus) string {
		return string(src)
	}), string(to))
	return rows > 0, err
}

func (r *machineRepository) UpdateStatusByRelay(ctx context.Context, controllerID string, relayNo int, status domain.MachineStatus) (bool, error) {
	rows, err := r.dao.UpdateStatusByRelay(ctx, controllerID, relayNo, string(status))
	return rows > 0, err
}

func (r *machineRepository) FindNoResponding(ctx context.Context, before time.Time, limit int) ([]domain.Machine, error) {
	ms, err := r.dao.FindNoResponding(ctx, []string{
		string(domain.MachineStatusStarting),
		string(domain.MachineStatusBusy),
	}, before.UnixMilli(), limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(ms, func(_ int, src dao.Machine) domain.Machine {
		return r.toDomain(src)
	}), nil
}

func (r *machineRepository) toEntity(m domain.Machine) dao.Machine {
	status := m.Status
	if status == "" {
		status = domain.MachineStatusPendingSetup
	}
	return dao.Machine{
		Id:            m.ID,
		StoreId:       m.StoreID,
		ControllerId:  m.ControllerID,
		RelayNo:       m.RelayNo,
		Name:          m.Name,
		MachineType:   string(m.Type),
		BasePrice:     m.BasePrice,
		CoinValue:     m.CoinValue,
		PulseDuration: m.PulseDuration,
		PulseInterval: m.PulseInterval,
		Status:        string(status),
		HeartbeatAt:   m.HeartbeatAt,
		Dtime:         m.Dtime,
	}
}

func (r *machineRepository) toDomain(m dao.Machine) domain.Machine {
	return domain.Machine{
		ID:            m.Id,
		StoreID:       m.StoreId,
		ControllerID:  m.ControllerId,
		RelayNo:       m.RelayNo,
		Name:          m.Name,
		Type:          domain.MachineType(m.MachineType),
		BasePrice:     m.BasePrice,
		CoinValue:     m.CoinValue,
		PulseDuration: m.PulseDuration,
		PulseInterval: m.PulseInterval,
		Status:        domain.MachineStatus(m.Status),
		HeartbeatAt:   m.HeartbeatAt,
		Ctime:         m.Ctime,
		Utime:         m.Utime,
		Dtime:         m.Dtime,
	}
}
