package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Roshan-Dewangan/Collegia-Student-Utility-Platform/controllers"
	"github.com/Roshan-Dewangan/Collegia-Student-Utility-Platform/middlewares"
)

func HomeRoutes(incomingRoutes *gin.Engine) {
	protected := incomingRoutes.Group("/", middlewares.RequireAuth)
	protected.GET("/validate", controllers.ValidateUser)
}
