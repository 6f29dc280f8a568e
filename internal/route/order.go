package route

import (
	"github.com/gin-gonic/gin"
	"github.com/pavelmamonov20/furnitura/internal/controller"
)

func V1_Orders(r *gin.RouterGroup, oc *controller.OrderController, rc *controller.ReportController) {
	v1 := r.Group("/v1/orders")
	{
		v1.POST("", oc.CreateOrder)
		v1.GET("", oc.GetOrders)
		v1.GET("/:orderId", oc.GetOrderById)
		v1.DELETE("/:orderId", oc.DeleteOrder)
		v1.POST("/:orderId/hardware", oc.PinHardware)
		v1.DELETE("/:orderId/hardware/:hardwareId", oc.UnpinHardware)
		v1.POST("/:orderId/report", rc.ExportOrderReport)
		v1.GET("/:orderId/reports", rc.GetOrderReports)
	}
}
