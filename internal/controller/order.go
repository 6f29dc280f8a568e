package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pavelmamonov20/furnitura/internal/model"
	"github.com/pavelmamonov20/furnitura/internal/util"
	"gorm.io/gorm"
)

type OrderController struct {
	*baseController
}

func (oc OrderController) CreateOrder(ctx *gin.Context) {
	var body model.Order

	if err := ctx.ShouldBind(&body); err != nil {
		oc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err), nil)
		return
	}

	if _, err := oc.app.Repository.ProfileSystem.GetById(ctx, nil, body.ProfileSystemID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.ResponseFailed(ctx, http.StatusNotFound, "Profile system not found", util.GenerateErrorMessages(err, "profileSystemId"), nil)
			return
		}
		oc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to get profile system", util.GenerateErrorMessages(err), nil)
		return
	}

	order, err := oc.app.Repository.Order.Create(ctx, nil, &body)
	if err != nil {
		oc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to create order", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{"order": order})
}

func (oc OrderController) GetOrders(ctx *gin.Context) {
	orders, err := oc.app.Repository.Order.GetAll(ctx, nil)
	if err != nil {
		oc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to list orders", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{"orders": orders})
}

func (oc OrderController) GetOrderById(ctx *gin.Context) {
	id := ctx.Param("orderId")

	order, err := oc.app.Repository.Order.GetById(ctx, nil, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.ResponseFailed(ctx, http.StatusNotFound, "Order not found", util.GenerateErrorMessages(err), nil)
			return
		}
		oc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to get order", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{"order": order})
}

func (oc OrderController) DeleteOrder(ctx *gin.Context) {
	id := ctx.Param("orderId")

	if err := oc.app.Repository.Order.Delete(ctx, nil, id); err != nil {
		oc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to delete order", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, nil)
}

// PinHardware stores computed or manual placements of catalog
// components on an order.
func (oc OrderController) PinHardware(ctx *gin.Context) {
	type Request struct {
		Hardware []model.OrderHardware `json:"hardware" form:"hardware" binding:"required,min=1,dive"`
	}

	orderId := ctx.Param("orderId")
	var body Request

	if err := ctx.ShouldBind(&body); err != nil {
		oc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err), nil)
		return
	}

	if _, err := oc.app.Repository.Order.GetById(ctx, nil, orderId); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.ResponseFailed(ctx, http.StatusNotFound, "Order not found", util.GenerateErrorMessages(err), nil)
			return
		}
		oc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to get order", util.GenerateErrorMessages(err), nil)
		return
	}

	for i := range body.Hardware {
		body.Hardware[i].OrderID = orderId
		if body.Hardware[i].Quantity <= 0 {
			body.Hardware[i].Quantity = 1
		}
	}

	hardware, err := oc.app.Repository.OrderHardware.CreateBatch(ctx, nil, body.Hardware)
	if err != nil {
		oc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to pin hardware", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{"hardware": hardware})
}

func (oc OrderController) UnpinHardware(ctx *gin.Context) {
	hardwareId := ctx.Param("hardwareId")

	if err := oc.app.Repository.OrderHardware.Delete(ctx, nil, hardwareId); err != nil {
		oc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to unpin hardware", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, nil)
}
