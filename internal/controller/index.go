package controller

import (
	"github.com/gin-gonic/gin"
	"github.com/pavelmamonov20/furnitura/internal/util"
)

type IndexController struct {
	*baseController
}

func (ic IndexController) Index(ctx *gin.Context) {
	util.ResponseSuccess(ctx, gin.H{
		"name": "VisualFurnitura API",
		"env":  ic.app.Config.ENV,
	})
}
