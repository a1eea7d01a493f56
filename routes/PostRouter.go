package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Roshan-Dewangan/Collegia-Student-Utility-Platform/controllers"
	"github.com/Roshan-Dewangan/Collegia-Student-Utility-Platform/middlewares"
)

func PostRouter(incomingRoutes *gin.Engine) {
	posts := incomingRoutes.Group("/posts", middlewares.RequireAuth)
	posts.GET("", controllers.GetPosts)
	posts.POST("", controllers.CreatePost)
	posts.GET("/:id", controllers.GetPost)
	posts.PUT("/like/:id", controllers.LikePost)
	posts.PUT("/unlike/:id", controllers.UnlikePost)
	posts.DELETE("/:id", controllers.DeletePost)
}
