package main

import (
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/Roshan-Dewangan/Collegia-Student-Utility-Platform/intializers"
	"github.com/Roshan-Dewangan/Collegia-Student-Utility-Platform/routes"
)

func init() {
	intializers.LoadEnvVariables()
}

func main() {
	router := gin.Default()

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://127.0.0.1:5500", "http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	// stored attachments are plain files behind a static mount
	router.Static("/uploads", "./uploads")

	routes.AuthRouter(router)

	// middleware using routes
	routes.HomeRoutes(router)
	routes.UserRouter(router)
	routes.PostRouter(router)
	routes.CommentRouter(router)
	routes.EventRouter(router)
	routes.MarketplaceRouter(router)
	routes.ResourceRouter(router)

	PORT := os.Getenv("PORT")

	if err := router.Run(":" + PORT); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}
