package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Roshan-Dewangan/Collegia-Student-Utility-Platform/controllers"
	"github.com/Roshan-Dewangan/Collegia-Student-Utility-Platform/middlewares"
)

func MarketplaceRouter(incomingRoutes *gin.Engine) {
	marketplace := incomingRoutes.Group("/marketplace", middlewares.RequireAuth)
	marketplace.GET("", controllers.GetItems)
	marketplace.POST("", controllers.CreateItem)
	marketplace.GET("/:id", controllers.GetItem)
	marketplace.PUT("/:id", controllers.UpdateItem)
	marketplace.DELETE("/:id", controllers.DeleteItem)
}
