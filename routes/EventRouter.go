package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Roshan-Dewangan/Collegia-Student-Utility-Platform/controllers"
	"github.com/Roshan-Dewangan/Collegia-Student-Utility-Platform/middlewares"
)

func EventRouter(incomingRoutes *gin.Engine) {
	events := incomingRoutes.Group("/events", middlewares.RequireAuth)
	events.GET("", controllers.GetEvents)
	events.POST("", controllers.CreateEvent)
	events.GET("/:id", controllers.GetEvent)
	events.PUT("/attend/:id", controllers.AttendEvent)
	events.DELETE("/:id", controllers.DeleteEvent)
}
