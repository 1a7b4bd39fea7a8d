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

	"github.com/ego-component/egorm"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrRecordNotFound = gorm.ErrRecordNotFound

type StoreDAO interface {
	Save(ctx context.Context, s Store) (int64, error)
	FindByID(ctx context.Context, id int64) (Store, error)
	FindByTenantID(ctx context.Context, tenantID int64) ([]Store, error)
}

type GORMStoreDAO struct {
	db *egorm.Component
}

func NewGORMStoreDAO(db *egorm.Component) StoreDAO {
	return &GORMStoreDAO{db: db}
}

func (d *GORMStoreDAO) Save(ctx context.Context, s Store) (int64, error) {
	now := time.Now().UnixMilli()
	s.Ctime, s.Utime = now, now
	err := d.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"name", "address", "status", "payment_methods", "utime",
		}),
	}).Create(&s).Error
	return s.Id, err
}

func (d *GORMStoreDAO) FindByID(ctx context.Context, id int64) (Store, error) {
	var s Store
	err := d.db.WithContext(ctx).Where("id = ?", id).First(&s).Error
	return s, err
}

func (d *GORMStoreDAO) FindByTenantID(ctx context.Context, tenantID int64) ([]Store, error) {
	var res []Store
	err := d.db.WithContext(ctx).
		Where("tenant_id = ? AND dtime = 0", tenantID).
		Order("id ASC").Find(&res).Error
	return res, err
}

type PaymentMethod struct {
	Provider string            `json:"provider"`
	Method   string            `json:"method"`
	Details  map[string]string `json:"details"`
}

type Store struct {
	Id             int64           `gorm:"primaryKey;autoIncrement;comment:门店自增ID"`
	TenantId       int64           `gorm:"not null;index:idx_store_tenant_id;comment:租户ID"`
	Name           string          `gorm:"type:varchar(255);not null;comment:门店名称"`
	Address        string          `gorm:"type:varchar(512);not null;default:'';comment:门店地址"`
	Status         string          `gorm:"type:varchar(32);not null;default:'ACTIVE';comment:门店状态 ACTIVE/INACTIVE"`
	PaymentMethods []PaymentMethod `gorm:"type:text;serializer:json;comment:支付方式配置"`
	Ctime          int64
	Utime          int64
	Dtime          int64 `gorm:"not null;default:0;comment:删除时间, 0表示未删除"`
}

func InitTables(db *egorm.Component) error {
	return db.AutoMigrate(&Store{})
}
