package route

import (
	"github.com/gin-gonic/gin"
	"github.com/pavelmamonov20/furnitura/internal/controller"
)

func V1_Placements(r *gin.RouterGroup, pc *controller.PlacementController) {
	v1 := r.Group("/v1/placements")
	{
		v1.POST("/category", pc.PlacementsForCategory)
		v1.POST("/specs", pc.PlacementsFromSpecs)
		v1.POST("/symmetric", pc.PlacementsSymmetric)
		v1.POST("/extracted", pc.PlacementsFromExtractedData)
		v1.GET("/recommendations", pc.MountingRecommendations)
	}
}
