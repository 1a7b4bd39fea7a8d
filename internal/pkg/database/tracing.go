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

package database

import (
	"errors"
	"fmt"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"
)

const (
	instrumentationName = "github.com/ecodeclub/laundry/internal/pkg/database"
	spanKey             = "tracing:span"
)

// GormTracingPlugin 为 GORM 的增删改查以及原始 SQL 加上 OpenTelemetry 追踪
type GormTracingPlugin struct {
	tracer trace.Tracer
}

func NewGormTracingPlugin() *GormTracingPlugin {
	return &GormTracingPlugin{
		tracer: otel.GetTracerProvider().Tracer(instrumentationName),
	}
}

func (p *GormTracingPlugin) Name() string {
	return "GormTracingPlugin"
}

func (p *GormTracingPlugin) Initialize(db *gorm.DB) error {
	cb := db.Callback()
	return errors.Join(
		cb.Query().Before("gorm:query").Register("tracing:before_query", p.before("SELECT")),
		cb.Query().After("gorm:query").Register("tracing:after_query", p.after),
		cb.Create().Before("gorm:create").Register("tracing:before_create", p.before("INSERT")),
		cb.Create().After("gorm:create").Register("tracing:after_create", p.after),
		cb.Update().Before("gorm:update").Register("tracing:before_update", p.before("UPDATE")),
		cb.Update().After("gorm:update").Register("tracing:after_update", p.after),
		cb.Delete().Before("gorm:delete").Register("tracing:before_delete", p.before("DELETE")),
		cb.Delete().After("gorm:delete").Register("tracing:after_delete", p.after),
		cb.Row().Before("gorm:row").Register("tracing:before_row", p.before("ROW")),
		cb.Row().After("gorm:row").Register("tracing:after_row", p.after),
		cb.Raw().Before("gorm:raw").Register("tracing:before_raw", p.before("RAW")),
		cb.Raw().After("gorm:raw").Register("tracing:after_raw", p.after),
	)
}

func (p *GormTracingPlugin) before(op string) func(db *gorm.DB) {
	return func(db *gorm.DB) {
		if db.Statement == nil || db.Statement.Context == nil {
			return
		}
		name := op
		if db.Statement.Table != "" {
			name = fmt.Sprintf("%s %s", db.Statement.Table, op)
		}
		ctx, span := p.tracer.Start(db.Statement.Context, name, trace.WithSpanKind(trace.SpanKindClient))
		db.Statement.Context = ctx
		db.InstanceSet(spanKey, span)
	}
}

func (p *GormTracingPlugin) after(db *gorm.DB) {
	val, ok := db.InstanceGet(spanKey)
	if !ok {
		return
	}
	span, ok := val.(trace.Span)
	if !ok {
		return
	}
	defer span.End()

	attrs := []attribute.KeyValue{
		attribute.String("db.system", db.Dialector.Name()),
		attribute.Int64("db.rows_affected", db.Statement.RowsAffected),
	}
	if db.Statement.Schema != nil {
		attrs = append(attrs, attribute.String("db.table", db.Statement.Schema.Table))
	} else if db.Statement.Table != "" {
		attrs = append(attrs, attribute.String("db.table", db.Statement.Table))
	}
	if sql := db.Statement.SQL.String(); sql != "" {
		if fields := strings.Fields(sql); len(fields) > 0 {
			attrs = append(attrs, attribute.String("db.operation", strings.ToUpper(fields[0])))
		}
		attrs = append(attrs, attribute.String("db.statement", sql))
	}
	span.SetAttributes(attrs...)

	// 记录不存在不算错误
	if db.Error != nil && !errors.Is(db.Error, gorm.ErrRecordNotFound) {
		span.RecordError(db.Error)
		span.SetStatus(codes.Error, db.Error.Error())
		return
	}
	span.SetStatus(codes.Ok, "")
}
