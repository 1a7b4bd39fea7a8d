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

package dao

import (
	"context"
	"time"

	"github.com/ecodeclub/laundry/internal/pkg/database"
	"github.com/ego-component/egorm"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrRecordNotFound = gorm.ErrRecordNotFound

type MachineDAO interface {
	Save(ctx context.Context, m Machine) (int64, error)
	FindByID(ctx context.Context, id int64) (Machine, error)
	FindByIDs(ctx context.Context, ids []int64) ([]Machine, error)
	FindByRelay(ctx context.Context, controllerID string, relayNo int) (Machine, error)
	// UpdateStatus 只有当前状态在 from 中才会更新，返回受影响的行数
	UpdateStatus(ctx context.Context, id int64, from []string, to string) (int64, error)
	UpdateStatusByRelay(ctx context.Context, controllerID string, relayNo int, status string) (int64, error)
	FindNoResponding(ctx context.Context, statuses []string, heartbeatBefore int64, limit int) ([]Machine, error)
}

type GORMMachineDAO struct {
	db *egorm.Component
}

func NewGORMMachineDAO(db *egorm.Component) MachineDAO {
	return &GORMMachineDAO{db: db}
}

func (d *GORMMachineDAO) Save(ctx context.Context, m Machine) (int64, error) {
	now := time.Now().UnixMilli()
	m.Ctime, m.Utime = now, now
	err := database.DBFromContext(ctx, d.db).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"name", "machine_type", "base_price", "coin_value",
			"pulse_duration", "pulse_interval", "utime",
		}),
	}).Create(&m).Error
	return m.Id, err
}

func (d *GORMMachineDAO) FindByID(ctx context.Context, id int64) (Machine, error) {
	var m Machine
	err := database.DBFromContext(ctx, d.db).Where("id = ?", id).First(&m).Error
	return m, err
}

func (d *GORMMachineDAO) FindByIDs(ctx context.Context, ids []int64) ([]Machine, error) {
	var res []Machine
	err := database.DBFromContext(ctx, d.db).Where("id IN ?", ids).Order("id ASC").Find(&res).Error
	return res, err
}

func (d *GORMMachineDAO) FindByRelay(ctx context.Context, controllerID string, relayNo int) (Machine, error) {
	var m Machine
	err := database.DBFromContext(ctx, d.db).
		Where("controller_id = ? AND relay_no = ? AND dtime = 0", controllerID, relayNo).
		First(&m).Error
	return m, err
}

func (d *GORMMachineDAO) UpdateStatus(ctx context.Context, id int64, from []string, to string) (int64, error) {
	now := time.Now().UnixMilli()
	res := database.DBFromContext(ctx, d.db).Model(&Machine{}).
		Where("id = ? AND status IN ?", id, from).
		Updates(map[string]any{
			"status":       to,
			"heartbeat_at": now,
			"utime":        now,
		})
	return res.RowsAffected, res.Error
}

func (d *GORMMachineDAO) UpdateStatusByRelay(ctx context.Context, controllerID string, relayNo int, status string) (int64, error) {
	now := time.Now().UnixMilli()
	res := database.DBFromContext(ctx, d.db).Model(&Machine{}).
		Where("controller_id = ? AND relay_no = ? AND dtime = 0", controllerID, relayNo).
		Updates(map[string]any{
			"status":       status,
			"heartbeat_at": now,
			"utime":        now,
		})
	return res.RowsAffected, res.Error
}

func (d *GORMMachineDAO) FindNoResponding(ctx context.Context, statuses []string, heartbeatBefore int64, limit int) ([]Machine, error) {
	var res []Machine
	err := database.DBFromContext(ctx, d.db).
		Where("status IN ? AND heartbeat_at < ? AND dtime = 0", statuses, heartbeatBefore).
		Order("id ASC").Limit(limit).Find(&res).Error
	return res, err
}

type Machine struct {
	Id            int64  `gorm:"primaryKey;autoIncrement;comment:机器自增ID"`
	StoreId       int64  `gorm:"not null;index:idx_machine_store_id;comment:门店ID"`
	ControllerId  string `gorm:"type:varchar(64);not null;uniqueIndex:uniq_machine_controller_relay;comment:控制器ID"`
	RelayNo       int    `gorm:"not null;uniqueIndex:uniq_machine_controller_relay;comment:继电器编号"`
	Name          string `gorm:"type:varchar(255);not null;default:'';comment:机器名称"`
	MachineType   string `gorm:"type:varchar(16);not null;comment:机器类型 WASHER/DRYER"`
	BasePrice     int64  `gorm:"not null;default:0;comment:基础价格, 单位VND"`
	CoinValue     int64  `gorm:"not null;default:0;comment:投币面值, 单位VND"`
	PulseDuration int64  `gorm:"not null;default:0;comment:脉冲持续时间, 毫秒"`
	PulseInterval int64  `gorm:"not null;default:0;comment:脉冲间隔, 毫秒"`
	Status        string `gorm:"type:varchar(32);not null;default:'PENDING_SETUP';index:idx_machine_status_heartbeat;comment:机器状态"`
	HeartbeatAt   int64  `gorm:"not null;default:0;index:idx_machine_status_heartbeat;comment:最近一次收到机器状态的时间"`
	Ctime         int64
	Utime         int64
	Dtime         int64 `gorm:"not null;default:0;comment:删除时间, 0表示未删除"`
}

func InitTables(db *egorm.Component) error {
	return db.AutoMigrate(&Machine{})
}
