package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Roshan-Dewangan/Collegia-Student-Utility-Platform/controllers"
	"github.com/Roshan-Dewangan/Collegia-Student-Utility-Platform/middlewares"
)

func ResourceRouter(incomingRoutes *gin.Engine) {
	resources := incomingRoutes.Group("/resources", middlewares.RequireAuth)
	resources.GET("", controllers.GetResources)
	resources.GET("/filter", controllers.FilterResources)
	resources.POST("", controllers.CreateResource)
	resources.GET("/:id", controllers.GetResource)
	resources.PUT("/download/:id", controllers.DownloadResource)
	resources.DELETE("/:id", controllers.DeleteResource)
}
