package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Roshan-Dewangan/Collegia-Student-Utility-Platform/controllers"
	"github.com/Roshan-Dewangan/Collegia-Student-Utility-Platform/middlewares"
)

func CommentRouter(incomingRoutes *gin.Engine) {
	comments := incomingRoutes.Group("/comments", middlewares.RequireAuth)
	comments.POST("/:post_id", controllers.AddComment)
	comments.PUT("/upvote/:id", controllers.UpvoteComment)
	comments.DELETE("/:id", controllers.DeleteComment)
}
