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

	"github.com/ecodeclub/ekit/sqlx"
	"github.com/ecodeclub/laundry/internal/pkg/database"
	"github.com/ego-component/egorm"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrRecordNotFound = gorm.ErrRecordNotFound

type PromotionDAO interface {
	Save(ctx context.Context, p Promotion) (int64, error)
	FindByID(ctx context.Context, id int64) (Promotion, error)
	List(ctx context.Context, offset, limit int) ([]Promotion, error)
	Count(ctx context.Context) (int64, error)
	// FindActive 所有 ACTIVE 并且没有过期的活动，按照 id 升序
	FindActive(ctx context.Context, now int64) ([]Promotion, error)
	// FinishExpired 结束已经过期的活动，返回受影响的行数
	FinishExpired(ctx context.Context, now int64) (int64, error)
	// ActivateStarted 激活已经到开始时间的 SCHEDULED 活动
	ActivateStarted(ctx context.Context, now int64) (int64, error)
	// SumSuccessfulPayments 统计某个维度下所有成功支付的金额
	SumSuccessfulPayments(ctx context.Context, column string, id int64) (int64, error)
	// CountPromotionUsage 使用了活动并且支付成功的订单数，column 为空的时候不区分维度
	CountPromotionUsage(ctx context.Context, promotionID int64, column string, id int64) (int64, error)
	// SumPromotionDiscount 使用了活动并且支付成功的订单的优惠总额
	SumPromotionDiscount(ctx context.Context, promotionID int64) (int64, error)
}

type GORMPromotionDAO struct {
	db *egorm.Component
}

func NewGORMPromotionDAO(db *egorm.Component) PromotionDAO {
	return &GORMPromotionDAO{db: db}
}

func (d *GORMPromotionDAO) Save(ctx context.Context, p Promotion) (int64, error) {
	now := time.Now().UnixMilli()
	p.Ctime, p.Utime = now, now
	err := database.DBFromContext(ctx, d.db).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"name", "description", "tenant_id", "status", "start_time", "end_time",
			"conditions", "limits", "rewards", "utime",
		}),
	}).Create(&p).Error
	return p.Id, err
}

func (d *GORMPromotionDAO) FindByID(ctx context.Context, id int64) (Promotion, error) {
	var p Promotion
	err := database.DBFromContext(ctx, d.db).Where("id = ?", id).First(&p).Error
	return p, err
}

func (d *GORMPromotionDAO) List(ctx context.Context, offset, limit int) ([]Promotion, error) {
	var res []Promotion
	err := database.DBFromContext(ctx, d.db).Order("id DESC").
		Offset(offset).Limit(limit).Find(&res).Error
	return res, err
}

func (d *GORMPromotionDAO) Count(ctx context.Context) (int64, error) {
	var cnt int64
	err := database.DBFromContext(ctx, d.db).Model(&Promotion{}).Count(&cnt).Error
	return cnt, err
}

func (d *GORMPromotionDAO) FindActive(ctx context.Context, now int64) ([]Promotion, error) {
	var res []Promotion
	err := database.DBFromContext(ctx, d.db).
		Where("status = ? AND (end_time = 0 OR end_time >= ?)", StatusActive, now).
		Order("id ASC").Find(&res).Error
	return res, err
}

func (d *GORMPromotionDAO) FinishExpired(ctx context.Context, now int64) (int64, error) {
	res := database.DBFromContext(ctx, d.db).Model(&Promotion{}).
		Where("status IN ? AND end_time > 0 AND end_time < ?",
			[]string{StatusActive, StatusScheduled, StatusPaused}, now).
		Updates(map[string]any{
			"status": StatusFinished,
			"utime":  now,
		})
	return res.RowsAffected, res.Error
}

func (d *GORMPromotionDAO) ActivateStarted(ctx context.Context, now int64) (int64, error) {
	res := database.DBFromContext(ctx, d.db).Model(&Promotion{}).
		Where("status = ? AND start_time <= ? AND (end_time = 0 OR end_time >= ?)",
			StatusScheduled, now, now).
		Updates(map[string]any{
			"status": StatusActive,
			"utime":  now,
		})
	return res.RowsAffected, res.Error
}

func (d *GORMPromotionDAO) SumSuccessfulPayments(ctx context.Context, column string, id int64) (int64, error) {
	var sum int64
	err := database.DBFromContext(ctx, d.db).Table(PaymentsTable).
		Select("COALESCE(SUM(total_amount), 0)").
		Where("status = ? AND dtime = 0", PaymentStatusSuccess).
		Where(clause.Eq{Column: clause.Column{Name: column}, Value: id}).
		Scan(&sum).Error
	return sum, err
}

func (d *GORMPromotionDAO) CountPromotionUsage(ctx context.Context, promotionID int64, column string, id int64) (int64, error) {
	var cnt int64
	db := d.paidOrders(ctx, promotionID)
	if column != "" {
		db = db.Where(clause.Eq{Column: clause.Column{Table: OrdersTable, Name: column}, Value: id})
	}
	err := db.Count(&cnt).Error
	return cnt, err
}

func (d *GORMPromotionDAO) SumPromotionDiscount(ctx context.Context, promotionID int64) (int64, error) {
	var sum int64
	err := d.paidOrders(ctx, promotionID).
		Select("COALESCE(SUM(" + OrdersTable + ".discount_amount), 0)").
		Scan(&sum).Error
	return sum, err
}

// paidOrders 使用了活动的订单，至少有一笔成功的支付
func (d *GORMPromotionDAO) paidOrders(ctx context.Context, promotionID int64) *gorm.DB {
	return database.DBFromContext(ctx, d.db).Table(OrdersTable).
		Where(OrdersTable+".promotion_id = ? AND "+OrdersTable+".dtime = 0", promotionID).
		Where("EXISTS (SELECT 1 FROM "+PaymentsTable+" WHERE "+PaymentsTable+".order_id = "+OrdersTable+".id AND "+
			PaymentsTable+".status = ? AND "+PaymentsTable+".dtime = 0)", PaymentStatusSuccess)
}

const (
	StatusActive    = "ACTIVE"
	StatusScheduled = "SCHEDULED"
	StatusPaused    = "PAUSED"
	StatusFinished  = "FINISHED"

	// 支付表和订单表分别由支付模块和订单模块维护，这里只读
	PaymentsTable        = "payments"
	OrdersTable          = "orders"
	PaymentStatusSuccess = "SUCCESS"

	ColumnStoreID  = "store_id"
	ColumnTenantID = "tenant_id"
	ColumnUserID   = "user_id"
)

type Promotion struct {
	Id          int64                        `gorm:"primaryKey;autoIncrement;comment:促销活动自增ID"`
	Name        string                       `gorm:"type:varchar(255);not null;comment:活动名称"`
	Description string                       `gorm:"type:text;comment:活动描述"`
	TenantId    int64                        `gorm:"not null;default:0;index:idx_promotion_status_tenant;comment:租户ID, 0表示全局活动"`
	Status      string                       `gorm:"type:varchar(32);not null;index:idx_promotion_status_tenant;comment:活动状态"`
	StartTime   int64                        `gorm:"not null;default:0;comment:开始时间"`
	EndTime     int64                        `gorm:"not null;default:0;comment:结束时间, 0表示不结束"`
	Conditions  sqlx.JsonColumn[[]Condition] `gorm:"type:text;comment:使用条件"`
	Limits      sqlx.JsonColumn[[]Limit]     `gorm:"type:text;comment:额度限制"`
	Rewards     sqlx.JsonColumn[[]Reward]    `gorm:"type:text;comment:优惠内容"`
	Ctime       int64
	Utime       int64
}

type Condition struct {
	Type     string   `json:"type"`
	Operator string   `json:"operator"`
	Value    []string `json:"value"`
}

type Limit struct {
	Type  string `json:"type"`
	Value int64  `json:"value"`
	Unit  string `json:"unit"`
}

type Reward struct {
	Type  string `json:"type"`
	Value int64  `json:"value"`
	Unit  string `json:"unit"`
}

func InitTables(db *egorm.Component) error {
	return db.AutoMigrate(&Promotion{})
}
