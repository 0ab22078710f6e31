package router

import (
	"github.com/gin-gonic/gin"
	"github.com/happybirthday/ai-server/controller"
	"github.com/happybirthday/ai-server/middleware"
)

func SetRelayRouter(router *gin.Engine, ai *controller.AIController) {
	aiRouter := router.Group("/ai")
	aiRouter.Use(middleware.RelayPanicRecover())
	{
		aiRouter.POST("/refine", ai.RefinePrompt)
		aiRouter.POST("/generate/image", ai.GenerateImage)
		aiRouter.POST("/generate/video", ai.GenerateVideo)
	}
}
