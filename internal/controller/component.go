package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pavelmamonov20/furnitura/internal/constant"
	"github.com/pavelmamonov20/furnitura/internal/model"
	"github.com/pavelmamonov20/furnitura/internal/util"
	"github.com/pavelmamonov20/furnitura/pkg/placement"
	"gorm.io/gorm"
)

type ComponentController struct {
	*baseController
}

func (cc ComponentController) CreateComponent(ctx *gin.Context) {
	var body model.HardwareComponent

	if err := ctx.ShouldBind(&body); err != nil {
		cc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err), nil)
		return
	}

	// An omitted category is derived from the component name, the same
	// keyword matching used for extracted hardware lists.
	if body.Category == "" {
		body.Category = string(placement.CategorizeHardwareName(body.Name))
	}

	component, err := cc.app.Repository.Component.Create(ctx, nil, &body)
	if err != nil {
		cc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to create component", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{"component": component})
}

func (cc ComponentController) GetComponents(ctx *gin.Context) {
	type Request struct {
		Search   string `form:"search"`
		Category string `form:"category"`
		Page     uint   `form:"page,default=1"`
		PageSize uint   `form:"pageSize,default=10"`
	}
	var query Request

	if err := ctx.ShouldBindQuery(&query); err != nil {
		cc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err), nil)
		return
	}

	components, total, err := cc.app.Repository.Component.List(ctx, nil, query.Search, query.Category, query.Page, query.PageSize)
	if err != nil {
		cc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to list components", util.GenerateErrorMessages(err), nil)
		return
	}

	if query.PageSize < 1 {
		query.PageSize = constant.DefaultPageSize
	}

	util.ResponseSuccess(ctx, gin.H{
		"components": components,
		"total":      total,
		"page":       query.Page,
		"totalPage":  util.CalculateTotalPage(total, query.PageSize),
	})
}

func (cc ComponentController) GetComponentById(ctx *gin.Context) {
	id := ctx.Param("componentId")

	component, err := cc.app.Repository.Component.GetById(ctx, nil, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.ResponseFailed(ctx, http.StatusNotFound, "Component not found", util.GenerateErrorMessages(err), nil)
			return
		}
		cc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to get component", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{"component": component})
}

func (cc ComponentController) UpdateComponent(ctx *gin.Context) {
	id := ctx.Param("componentId")

	var body model.HardwareComponent
	if err := ctx.ShouldBind(&body); err != nil {
		cc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err), nil)
		return
	}

	if _, err := cc.app.Repository.Component.GetById(ctx, nil, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.ResponseFailed(ctx, http.StatusNotFound, "Component not found", util.GenerateErrorMessages(err), nil)
			return
		}
		cc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to get component", util.GenerateErrorMessages(err), nil)
		return
	}

	body.ID = id
	component, err := cc.app.Repository.Component.Update(ctx, nil, &body)
	if err != nil {
		cc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to update component", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{"component": component})
}

func (cc ComponentController) DeleteComponent(ctx *gin.Context) {
	id := ctx.Param("componentId")

	if err := cc.app.Repository.Component.Delete(ctx, nil, id); err != nil {
		cc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to delete component", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, nil)
}
