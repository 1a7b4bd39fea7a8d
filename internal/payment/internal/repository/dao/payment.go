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
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/ecodeclub/ekit/sqlx"
	"github.com/ecodeclub/laundry/internal/pkg/database"
	"github.com/ego-component/egorm"
	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

var (
	ErrRecordNotFound      = gorm.ErrRecordNotFound
	ErrDuplicatePayment    = errors.New("支付交易码冲突")
	ErrActivePaymentExists = errors.New("订单已经有进行中的支付")
)

const (
	uniqActiveOrderIndex = "uniq_payment_active_order"
	statusNew            = "NEW"
)

type PaymentDAO interface {
	Create(ctx context.Context, p Payment) (int64, error)
	FindByID(ctx context.Context, id int64) (Payment, error)
	FindByTransactionCode(ctx context.Context, code string) (Payment, error)
	FindByOrderID(ctx context.Context, orderID int64) ([]Payment, error)
	ExistsTransactionCode(ctx context.Context, code string) (bool, error)
	CountActiveByOrderID(ctx context.Context, orderID int64, statuses []string) (int64, error)
	// UpdateStatus active 为 true 的时候占用订单的进行中支付位置，否则释放
	UpdateStatus(ctx context.Context, id int64, from []string, to string, active bool) (int64, error)
	UpdateDetails(ctx context.Context, id int64, from []string, to string, providerTxnID string, details map[string]string) (int64, error)
	// ListByStatusBefore 按照 id 游标分页，utime 早于 before 的支付
	ListByStatusBefore(ctx context.Context, statuses []string, before int64, afterID int64, limit int) ([]Payment, error)
}

type GORMPaymentDAO struct {
	db *egorm.Component
}

func NewGORMPaymentDAO(db *egorm.Component) PaymentDAO {
	return &GORMPaymentDAO{db: db}
}

func (d *GORMPaymentDAO) Create(ctx context.Context, p Payment) (int64, error) {
	now := time.Now().UnixMilli()
	p.Ctime, p.Utime = now, now
	p.ActiveOrderId = sql.NullInt64{Int64: p.OrderId, Valid: true}
	err := database.DBFromContext(ctx, d.db).Create(&p).Error
	var me *mysql.MySQLError
	if errors.As(err, &me) {
		const uniqueIndexErrNo uint16 = 1062
		if me.Number == uniqueIndexErrNo {
			if strings.Contains(me.Message, uniqActiveOrderIndex) {
				return 0, ErrActivePaymentExists
			}
			return 0, ErrDuplicatePayment
		}
	}
	return p.Id, err
}

func (d *GORMPaymentDAO) FindByID(ctx context.Context, id int64) (Payment, error) {
	var p Payment
	err := database.DBFromContext(ctx, d.db).Where("id = ? AND dtime = 0", id).First(&p).Error
	return p, err
}

func (d *GORMPaymentDAO) FindByTransactionCode(ctx context.Context, code string) (Payment, error) {
	var p Payment
	err := database.DBFromContext(ctx, d.db).
		Where("transaction_code = ? AND dtime = 0", code).First(&p).Error
	return p, err
}

func (d *GORMPaymentDAO) FindByOrderID(ctx context.Context, orderID int64) ([]Payment, error) {
	var res []Payment
	err := database.DBFromContext(ctx, d.db).
		Where("order_id = ? AND dtime = 0", orderID).Order("id ASC").Find(&res).Error
	return res, err
}

func (d *GORMPaymentDAO) ExistsTransactionCode(ctx context.Context, code string) (bool, error) {
	var cnt int64
	err := database.DBFromContext(ctx, d.db).Model(&Payment{}).
		Where("transaction_code = ?", code).Count(&cnt).Error
	return cnt > 0, err
}

func (d *GORMPaymentDAO) CountActiveByOrderID(ctx context.Context, orderID int64, statuses []string) (int64, error) {
	var cnt int64
	err := database.DBFromContext(ctx, d.db).Model(&Payment{}).
		Where("order_id = ? AND status IN ? AND dtime = 0", orderID, statuses).Count(&cnt).Error
	return cnt, err
}

func (d *GORMPaymentDAO) UpdateStatus(ctx context.Context, id int64, from []string, to string, active bool) (int64, error) {
	now := time.Now().UnixMilli()
	updates := map[string]any{
		"status":          to,
		"active_order_id": nil,
		"utime":           now,
	}
	if active {
		updates["active_order_id"] = gorm.Expr("order_id")
	}
	// 重试相当于重新发起一次支付，超时从这里重新计算
	if to == statusNew {
		updates["ctime"] = now
	}
	res := database.DBFromContext(ctx, d.db).Model(&Payment{}).
		Where("id = ? AND status IN ?", id, from).Updates(updates)
	return res.RowsAffected, res.Error
}

func (d *GORMPaymentDAO) UpdateDetails(ctx context.Context, id int64, from []string, to string,
	providerTxnID string, details map[string]string) (int64, error) {
	res := database.DBFromContext(ctx, d.db).Model(&Payment{}).
		Where("id = ? AND status IN ?", id, from).
		Updates(map[string]any{
			"status":                  to,
			"provider_transaction_id": providerTxnID,
			"details":                 sqlx.JsonColumn[map[string]string]{Val: details, Valid: details != nil},
			"utime":                   time.Now().UnixMilli(),
		})
	return res.RowsAffected, res.Error
}

func (d *GORMPaymentDAO) ListByStatusBefore(ctx context.Context, statuses []string, before int64, afterID int64, limit int) ([]Payment, error) {
	var res []Payment
	err := database.DBFromContext(ctx, d.db).
		Where("status IN ? AND ctime < ? AND id > ? AND dtime = 0", statuses, before, afterID).
		Order("id ASC").Limit(limit).Find(&res).Error
	return res, err
}

type Payment struct {
	Id      int64 `gorm:"primaryKey;autoIncrement;comment:支付自增ID"`
	OrderId int64 `gorm:"not null;index:idx_payment_order_id;comment:订单ID"`
	// 进行中的支付等于 OrderId，否则为 NULL，唯一索引保证一个订单只有一个进行中的支付
	ActiveOrderId         sql.NullInt64                      `gorm:"uniqueIndex:uniq_payment_active_order;comment:进行中支付的订单ID"`
	StoreId               int64                              `gorm:"not null;index:idx_payment_store_id;comment:门店ID"`
	TenantId              int64                              `gorm:"not null;index:idx_payment_tenant_id;comment:租户ID"`
	UserId                int64                              `gorm:"not null;default:0;index:idx_payment_user_id;comment:支付用户ID"`
	TransactionCode       string                             `gorm:"type:varchar(8);not null;uniqueIndex:uniq_payment_transaction_code;comment:交易码"`
	Provider              string                             `gorm:"type:varchar(16);not null;comment:支付渠道"`
	Method                string                             `gorm:"type:varchar(16);not null;comment:支付方式"`
	MethodDetails         sqlx.JsonColumn[map[string]string] `gorm:"type:text;comment:门店支付方式配置快照"`
	ProviderTransactionId string                             `gorm:"type:varchar(255);not null;default:'';index:idx_payment_provider_txn_id;comment:渠道交易ID"`
	Details               sqlx.JsonColumn[map[string]string] `gorm:"type:text;comment:渠道返回的支付详情"`
	TotalAmount           int64                              `gorm:"not null;comment:支付金额, 单位VND"`
	Status                string                             `gorm:"type:varchar(32);not null;index:idx_payment_status_ctime,priority:1;comment:支付状态"`
	Ctime                 int64                              `gorm:"index:idx_payment_status_ctime,priority:2"`
	Utime                 int64
	Dtime                 int64 `gorm:"not null;default:0;comment:删除时间, 0表示未删除"`
}

func InitTables(db *egorm.Component) error {
	return db.AutoMigrate(&Payment{})
}
