package approuters

import (
	"github.com/gin-gonic/gin"
	"github.com/saurabh1105/Socail-Connect/internal/configuration"
	"github.com/saurabh1105/Socail-Connect/internal/handler"
)

func AuthRouters(router *gin.Engine, container *configuration.Container) {
	router.POST("/api/users", container.AuthHandler.Register)

	authRoute := router.Group("/api/auth")
	{
		authRoute.POST("", container.AuthHandler.Login)
		authRoute.GET("", handler.RequireAuth(container.Tokens), container.AuthHandler.CurrentUser)
	}
}
