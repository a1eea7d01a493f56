package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Roshan-Dewangan/Collegia-Student-Utility-Platform/controllers"
	"github.com/Roshan-Dewangan/Collegia-Student-Utility-Platform/middlewares"
)

func UserRouter(incomingRoutes *gin.Engine) {
	users := incomingRoutes.Group("/users", middlewares.RequireAuth)
	users.GET("", controllers.GetUsers)
	users.PUT("/profile", controllers.UpdateProfile)
	users.GET("/:id", controllers.GetUser)
}
