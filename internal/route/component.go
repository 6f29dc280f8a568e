package route

import (
	"github.com/gin-gonic/gin"
	"github.com/pavelmamonov20/furnitura/internal/controller"
)

func V1_Components(r *gin.RouterGroup, cc *controller.ComponentController) {
	v1 := r.Group("/v1/components")
	{
		v1.POST("", cc.CreateComponent)
		v1.GET("", cc.GetComponents)
		v1.GET("/:componentId", cc.GetComponentById)
		v1.PATCH("/:componentId", cc.UpdateComponent)
		v1.DELETE("/:componentId", cc.DeleteComponent)
	}
}
