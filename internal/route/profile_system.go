package route

import (
	"github.com/gin-gonic/gin"
	"github.com/pavelmamonov20/furnitura/internal/controller"
)

func V1_ProfileSystems(r *gin.RouterGroup, pc *controller.ProfileSystemController) {
	v1 := r.Group("/v1/profile-systems")
	{
		v1.POST("", pc.CreateProfileSystem)
		v1.GET("", pc.GetProfileSystems)
		v1.GET("/:profileSystemId", pc.GetProfileSystemById)
		v1.PATCH("/:profileSystemId", pc.UpdateProfileSystem)
		v1.DELETE("/:profileSystemId", pc.DeleteProfileSystem)
	}
}
