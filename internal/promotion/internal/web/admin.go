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

package web

import (
	"errors"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/laundry/internal/promotion/internal/domain"
	"github.com/ecodeclub/laundry/internal/promotion/internal/errs"
	"github.com/ecodeclub/laundry/internal/promotion/internal/service"
	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	svc service.Service
}

func NewAdminHandler(svc service.Service) *AdminHandler {
	return &AdminHandler{svc: svc}
}

func (h *AdminHandler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/promotion")
	g.POST("/save", ginx.BS[Promotion](h.Save))
	g.POST("/list", ginx.BS[ListReq](h.List))
	g.POST("/detail", ginx.BS[PromotionID](h.Detail))
}

func (h *AdminHandler) Save(ctx *ginx.Context, req Promotion, _ session.Session) (ginx.Result, error) {
	id, err := h.svc.Save(ctx.Request.Context(), req.toDomain())
	if errors.Is(err, service.ErrInvalidPromotion) {
		return ginx.Result{Code: errs.InvalidPromotion.Code, Msg: err.Error()}, nil
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: id}, nil
}

func (h *AdminHandler) List(ctx *ginx.Context, req ListReq, _ session.Session) (ginx.Result, error) {
	if req.Limit <= 0 || req.Limit > 100 {
		req.Limit = 20
	}
	ps, total, err := h.svc.List(ctx.Request.Context(), req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: ListResp{
		Total: total,
		Promotions: slice.Map(ps, func(_ int, src domain.Promotion) Promotion {
			return newPromotion(src)
		}),
	}}, nil
}

func (h *AdminHandler) Detail(ctx *ginx.Context, req PromotionID, _ session.Session) (ginx.Result, error) {
	p, err := h.svc.FindByID(ctx.Request.Context(), req.ID)
	if errors.Is(err, service.ErrPromotionNotFound) {
		return ginx.Result{Code: errs.PromotionNotFound.Code, Msg: errs.PromotionNotFound.Msg}, nil
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: newPromotion(p)}, nil
}
