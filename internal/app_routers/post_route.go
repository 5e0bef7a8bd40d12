package approuters

import (
	"github.com/gin-gonic/gin"
	"github.com/saurabh1105/Socail-Connect/internal/configuration"
	"github.com/saurabh1105/Socail-Connect/internal/handler"
)

func PostRouters(router *gin.Engine, container *configuration.Container) {
	requireAuth := handler.RequireAuth(container.Tokens)

	postRoute := router.Group("/api/posts", requireAuth)
	{
		postRoute.POST("", container.PostHandler.Create)
		postRoute.GET("", container.PostHandler.GetAll)
		postRoute.GET("/:id", container.PostHandler.Get)
		postRoute.DELETE("/:id", container.PostHandler.Delete)

		postRoute.PUT("/like/:id", container.PostHandler.Like)
		postRoute.PUT("/unlike/:id", container.PostHandler.Unlike)

		postRoute.POST("/comment/:id", container.PostHandler.AddComment)
		postRoute.DELETE("/comment/:id/:commentId", container.PostHandler.RemoveComment)
	}

	router.GET("/api/feed/live", requireAuth, container.PostHandler.LiveFeed)
}
