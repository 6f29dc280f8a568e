package route

import (
	"github.com/gin-gonic/gin"
	"github.com/pavelmamonov20/furnitura/internal/controller"
)

func V1_Reports(r *gin.RouterGroup, rc *controller.ReportController) {
	v1 := r.Group("/v1/reports")
	{
		v1.GET("/:fileId", rc.ServeReport)
		v1.POST("/merge", rc.MergeReports)
	}
}
