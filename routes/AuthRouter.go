package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Roshan-Dewangan/Collegia-Student-Utility-Platform/controllers"
)

func AuthRouter(incomingRoutes *gin.Engine) {
	incomingRoutes.POST("/signup", controllers.SignUp)
	incomingRoutes.POST("/login", controllers.Login)
	incomingRoutes.GET("/logout", controllers.Logout)
}
