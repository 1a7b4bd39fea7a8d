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
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/ecodeclub/ekit/sqlx"
	testioc "github.com/ecodeclub/laundry/internal/test/ioc"
	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormMysql "gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func TestGORMPaymentDAO_Lifecycle(t *testing.T) {
	db := testioc.NewSQLiteDB(t, InitTables)
	d := NewGORMPaymentDAO(db)
	ctx := context.Background()

	id, err := d.Create(ctx, Payment{
		OrderId:         11,
		StoreId:         1,
		TenantId:        1,
		UserId:          7,
		TransactionCode: "ABCD1234",
		Provider:        "VIET_QR",
		Method:          "QR",
		MethodDetails: sqlx.JsonColumn[map[string]string]{
			Val: map[string]string{"bank_code": "MB"}, Valid: true,
		},
		TotalAmount: 240,
		Status:      "NEW",
	})
	require.NoError(t, err)

	p, err := d.FindByTransactionCode(ctx, "ABCD1234")
	require.NoError(t, err)
	assert.Equal(t, id, p.Id)
	assert.True(t, p.ActiveOrderId.Valid)
	assert.Equal(t, int64(11), p.ActiveOrderId.Int64)
	assert.Equal(t, "MB", p.MethodDetails.Val["bank_code"])

	ok, err := d.ExistsTransactionCode(ctx, "ABCD1234")
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = d.ExistsTransactionCode(ctx, "ZZZZ9999")
	require.NoError(t, err)
	assert.False(t, ok)

	cnt, err := d.CountActiveByOrderID(ctx, 11, []string{"NEW", "WAITING_FOR_PAYMENT_DETAIL"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), cnt)

	rows, err := d.UpdateDetails(ctx, id, []string{"WAITING_FOR_PAYMENT_DETAIL"}, "WAITING_FOR_PURCHASE", "txn", nil)
	require.NoError(t, err)
	assert.Zero(t, rows)

	rows, err = d.UpdateStatus(ctx, id, []string{"NEW"}, "WAITING_FOR_PAYMENT_DETAIL", true)
	require.NoError(t, err)
	assert.Equal(t, int64(1), rows)

	rows, err = d.UpdateDetails(ctx, id, []string{"WAITING_FOR_PAYMENT_DETAIL"}, "WAITING_FOR_PURCHASE",
		"txn-1", map[string]string{"qr_code": "000201"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), rows)

	rows, err = d.UpdateStatus(ctx, id, []string{"WAITING_FOR_PURCHASE"}, "FAILED", false)
	require.NoError(t, err)
	assert.Equal(t, int64(1), rows)

	p, err = d.FindByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "FAILED", p.Status)
	assert.Equal(t, "txn-1", p.ProviderTransactionId)
	assert.Equal(t, "000201", p.Details.Val["qr_code"])
	assert.False(t, p.ActiveOrderId.Valid)

	// 释放之后同一个订单可以再创建一个支付
	_, err = d.Create(ctx, Payment{OrderId: 11, TransactionCode: "EFGH5678", Status: "NEW", TotalAmount: 240})
	require.NoError(t, err)
	ps, err := d.FindByOrderID(ctx, 11)
	require.NoError(t, err)
	assert.Len(t, ps, 2)

	_, err = d.FindByID(ctx, 999)
	assert.ErrorIs(t, err, ErrRecordNotFound)
}

func TestGORMPaymentDAO_ListByStatusBefore(t *testing.T) {
	db := testioc.NewSQLiteDB(t, InitTables)
	d := NewGORMPaymentDAO(db)
	ctx := context.Background()

	now := time.Now()
	old := now.Add(-20 * time.Minute).UnixMilli()
	require.NoError(t, db.Create([]Payment{
		{OrderId: 1, TransactionCode: "AAAA0001", Status: "WAITING_FOR_PURCHASE", Ctime: old},
		{OrderId: 2, TransactionCode: "AAAA0002", Status: "NEW", Ctime: old},
		{OrderId: 3, TransactionCode: "AAAA0003", Status: "WAITING_FOR_PURCHASE", Ctime: now.UnixMilli(), Utime: old},
		{OrderId: 4, TransactionCode: "AAAA0004", Status: "SUCCESS", Ctime: old},
		{OrderId: 5, TransactionCode: "AAAA0005", Status: "WAITING_FOR_PURCHASE", Ctime: old},
	}).Error)

	before := now.Add(-10 * time.Minute).UnixMilli()
	statuses := []string{"NEW", "WAITING_FOR_PURCHASE"}
	first, err := d.ListByStatusBefore(ctx, statuses, before, 0, 2)
	require.NoError(t, err)
	require.Len(t, first, 2)
	assert.Equal(t, int64(1), first[0].OrderId)
	assert.Equal(t, int64(2), first[1].OrderId)

	second, err := d.ListByStatusBefore(ctx, statuses, before, first[1].Id, 2)
	require.NoError(t, err)
	require.Len(t, second, 1)
	assert.Equal(t, int64(5), second[0].OrderId)

	// 重试之后重新开始计算超时
	cnt, err := d.UpdateStatus(ctx, first[0].Id, []string{"WAITING_FOR_PURCHASE"}, "NEW", true)
	require.NoError(t, err)
	require.Equal(t, int64(1), cnt)
	all, err := d.ListByStatusBefore(ctx, statuses, before, 0, 10)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, int64(2), all[0].OrderId)
	assert.Equal(t, int64(5), all[1].OrderId)
}

func TestGORMPaymentDAO_CreateDuplicate(t *testing.T) {
	testCases := []struct {
		name    string
		mysqlEr *mysql.MySQLError
		wantErr error
	}{
		{
			name:    "订单已有进行中支付",
			mysqlEr: &mysql.MySQLError{Number: 1062, Message: "Duplicate entry '11' for key 'payments.uniq_payment_active_order'"},
			wantErr: ErrActivePaymentExists,
		},
		{
			name:    "交易码冲突",
			mysqlEr: &mysql.MySQLError{Number: 1062, Message: "Duplicate entry 'ABCD1234' for key 'payments.uniq_payment_transaction_code'"},
			wantErr: ErrDuplicatePayment,
		},
		{
			name:    "其他错误",
			mysqlEr: &mysql.MySQLError{Number: 1213, Message: "Deadlock found"},
			wantErr: &mysql.MySQLError{Number: 1213, Message: "Deadlock found"},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mockDB, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer mockDB.Close()
			mock.ExpectExec("INSERT INTO `payments`").WillReturnError(tc.mysqlEr)

			db, err := gorm.Open(gormMysql.New(gormMysql.Config{
				Conn:                      mockDB,
				SkipInitializeWithVersion: true,
			}), &gorm.Config{
				DisableAutomaticPing:   true,
				SkipDefaultTransaction: true,
			})
			require.NoError(t, err)

			_, err = NewGORMPaymentDAO(db).Create(context.Background(), Payment{
				OrderId: 11, TransactionCode: "ABCD1234", Status: "NEW",
			})
			assert.Equal(t, tc.wantErr, err)
		})
	}
}
