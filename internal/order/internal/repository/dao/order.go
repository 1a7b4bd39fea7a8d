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

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ekit/sqlx"
	"github.com/ecodeclub/laundry/internal/pkg/database"
	"github.com/ego-component/egorm"
	"gorm.io/gorm"
)

var ErrRecordNotFound = gorm.ErrRecordNotFound

type OrderDAO interface {
	// Create 调用方负责开启事务
	Create(ctx context.Context, o Order, details []OrderDetail) (int64, error)
	FindByID(ctx context.Context, id int64) (Order, error)
	FindBySN(ctx context.Context, sn string) (Order, error)
	FindDetails(ctx context.Context, orderID int64) ([]OrderDetail, error)
	ListByUser(ctx context.Context, uid int64, offset, limit int) ([]Order, error)
	CountByUser(ctx context.Context, uid int64) (int64, error)
	// ListByStatus 按照 id 游标分页
	ListByStatus(ctx context.Context, statuses []string, afterID int64, limit int) ([]Order, error)
	UpdateStatus(ctx context.Context, id int64, from []string, to string) (int64, error)
	Cancel(ctx context.Context, id int64, from []string, by int64) (int64, error)
	UpdateDetailStatus(ctx context.Context, detailID int64, from []string, to string) (int64, error)
	UpdateDetailsStatus(ctx context.Context, orderID int64, from []string, to string) (int64, error)
}

type GORMOrderDAO struct {
	db *egorm.Component
}

func NewGORMOrderDAO(db *egorm.Component) OrderDAO {
	return &GORMOrderDAO{db: db}
}

func (d *GORMOrderDAO) Create(ctx context.Context, o Order, details []OrderDetail) (int64, error) {
	now := time.Now().UnixMilli()
	o.Ctime, o.Utime = now, now
	db := database.DBFromContext(ctx, d.db)
	if err := db.Create(&o).Error; err != nil {
		return 0, err
	}
	if len(details) == 0 {
		return o.Id, nil
	}
	details = slice.Map(details, func(_ int, src OrderDetail) OrderDetail {
		src.OrderId = o.Id
		src.Ctime, src.Utime = now, now
		return src
	})
	return o.Id, db.Create(&details).Error
}

func (d *GORMOrderDAO) FindByID(ctx context.Context, id int64) (Order, error) {
	var o Order
	err := database.DBFromContext(ctx, d.db).Where("id = ?", id).First(&o).Error
	return o, err
}

func (d *GORMOrderDAO) FindBySN(ctx context.Context, sn string) (Order, error) {
	var o Order
	err := database.DBFromContext(ctx, d.db).Where("sn = ?", sn).First(&o).Error
	return o, err
}

func (d *GORMOrderDAO) FindDetails(ctx context.Context, orderID int64) ([]OrderDetail, error) {
	var res []OrderDetail
	err := database.DBFromContext(ctx, d.db).Where("order_id = ?", orderID).
		Order("id ASC").Find(&res).Error
	return res, err
}

func (d *GORMOrderDAO) ListByUser(ctx context.Context, uid int64, offset, limit int) ([]Order, error) {
	var res []Order
	err := database.DBFromContext(ctx, d.db).Where("user_id = ?", uid).
		Order("id DESC").Offset(offset).Limit(limit).Find(&res).Error
	return res, err
}

func (d *GORMOrderDAO) CountByUser(ctx context.Context, uid int64) (int64, error) {
	var cnt int64
	err := database.DBFromContext(ctx, d.db).Model(&Order{}).
		Where("user_id = ?", uid).Count(&cnt).Error
	return cnt, err
}

func (d *GORMOrderDAO) ListByStatus(ctx context.Context, statuses []string, afterID int64, limit int) ([]Order, error) {
	var res []Order
	err := database.DBFromContext(ctx, d.db).
		Where("status IN ? AND id > ? AND dtime = 0", statuses, afterID).
		Order("id ASC").Limit(limit).Find(&res).Error
	return res, err
}

func (d *GORMOrderDAO) UpdateStatus(ctx context.Context, id int64, from []string, to string) (int64, error) {
	res := database.DBFromContext(ctx, d.db).Model(&Order{}).
		Where("id = ? AND status IN ?", id, from).
		Updates(map[string]any{
			"status": to,
			"utime":  time.Now().UnixMilli(),
		})
	return res.RowsAffected, res.Error
}

func (d *GORMOrderDAO) Cancel(ctx context.Context, id int64, from []string, by int64) (int64, error) {
	now := time.Now().UnixMilli()
	res := database.DBFromContext(ctx, d.db).Model(&Order{}).
		Where("id = ? AND status IN ?", id, from).
		Updates(map[string]any{
			"status":     StatusCancelled,
			"deleted_by": by,
			"dtime":      now,
			"utime":      now,
		})
	return res.RowsAffected, res.Error
}

func (d *GORMOrderDAO) UpdateDetailStatus(ctx context.Context, detailID int64, from []string, to string) (int64, error) {
	res := database.DBFromContext(ctx, d.db).Model(&OrderDetail{}).
		Where("id = ? AND status IN ?", detailID, from).
		Updates(map[string]any{
			"status": to,
			"utime":  time.Now().UnixMilli(),
		})
	return res.RowsAffected, res.Error
}

func (d *GORMOrderDAO) UpdateDetailsStatus(ctx context.Context, orderID int64, from []string, to string) (int64, error) {
	res := database.DBFromContext(ctx, d.db).Model(&OrderDetail{}).
		Where("order_id = ? AND status IN ?", orderID, from).
		Updates(map[string]any{
			"status": to,
			"utime":  time.Now().UnixMilli(),
		})
	return res.RowsAffected, res.Error
}

const StatusCancelled = "CANCELLED"

type Order struct {
	Id               int64                             `gorm:"primaryKey;autoIncrement;comment:订单自增ID"`
	SN               string                            `gorm:"type:varchar(64);not null;uniqueIndex:uniq_order_sn;comment:订单序列号"`
	TenantId         int64                             `gorm:"not null;default:0;comment:租户ID"`
	StoreId          int64                             `gorm:"not null;index:idx_order_store_id;comment:门店ID"`
	UserId           int64                             `gorm:"not null;default:0;index:idx_order_user_id;comment:下单用户ID"`
	Status           string                            `gorm:"type:varchar(32);not null;index:idx_order_status;comment:订单状态"`
	SubTotal         int64                             `gorm:"not null;default:0;comment:原价, 单位VND"`
	DiscountAmount   int64                             `gorm:"not null;default:0;comment:优惠金额, 单位VND"`
	TotalAmount      int64                             `gorm:"not null;default:0;comment:应付金额, 单位VND"`
	TotalWasher      int64                             `gorm:"not null;default:0;comment:洗衣机数量"`
	TotalDryer       int64                             `gorm:"not null;default:0;comment:烘干机数量"`
	PromotionId      int64                             `gorm:"not null;default:0;index:idx_order_promotion_id;comment:使用的促销活动ID, 0表示没有"`
	PromotionSummary sqlx.JsonColumn[PromotionSummary] `gorm:"type:text;comment:促销活动快照"`
	DeletedBy        int64                             `gorm:"not null;default:0;comment:取消订单的用户"`
	Ctime            int64
	Utime            int64
	Dtime            int64 `gorm:"not null;default:0;comment:删除时间, 0表示未删除"`
}

type PromotionSummary struct {
	PromotionID    int64  `json:"promotionId"`
	PromotionName  string `json:"promotionName"`
	DiscountAmount int64  `json:"discountAmount"`
}

type OrderDetail struct {
	Id          int64                    `gorm:"primaryKey;autoIncrement;comment:订单明细自增ID"`
	OrderId     int64                    `gorm:"not null;index:idx_order_detail_order_id;comment:订单ID"`
	MachineId   int64                    `gorm:"not null;index:idx_order_detail_machine_id;comment:机器ID"`
	MachineType string                   `gorm:"type:varchar(16);not null;comment:机器类型"`
	Status      string                   `gorm:"type:varchar(32);not null;comment:明细状态"`
	AddOns      sqlx.JsonColumn[[]AddOn] `gorm:"type:text;comment:附加项"`
	Price       int64                    `gorm:"not null;default:0;comment:价格, 单位VND"`
	Ctime       int64
	Utime       int64
}

type AddOn struct {
	Type     string `json:"type"`
	Price    int64  `json:"price"`
	Quantity int64  `json:"quantity"`
}

func InitTables(db *egorm.Component) error {
	return db.AutoMigrate(&Order{}, &OrderDetail{})
}
