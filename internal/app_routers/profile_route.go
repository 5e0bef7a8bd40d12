package approuters

import (
	"github.com/gin-gonic/gin"
	"github.com/saurabh1105/Socail-Connect/internal/configuration"
	"github.com/saurabh1105/Socail-Connect/internal/handler"
)

func ProfileRouters(router *gin.Engine, container *configuration.Container) {
	requireAuth := handler.RequireAuth(container.Tokens)

	profileRoute := router.Group("/api/profile")
	{
		profileRoute.GET("", container.ProfileHandler.GetAll)
		profileRoute.GET("/me", requireAuth, container.ProfileHandler.Me)
		profileRoute.GET("/user/:userId", container.ProfileHandler.GetByUser)
		profileRoute.POST("", requireAuth, container.ProfileHandler.Save)
		profileRoute.DELETE("", requireAuth, container.ProfileHandler.DeleteAccount)

		profileRoute.PUT("/experience", requireAuth, container.ProfileHandler.AddExperience)
		profileRoute.DELETE("/experience/:expId", requireAuth, container.ProfileHandler.RemoveExperience)
		profileRoute.PUT("/education", requireAuth, container.ProfileHandler.AddEducation)
		profileRoute.DELETE("/education/:eduId", requireAuth, container.ProfileHandler.RemoveEducation)

		profileRoute.GET("/github/:username", container.ProfileHandler.GithubRepos)
	}
}
