package router

import (
	"github.com/gin-gonic/gin"
	"github.com/happybirthday/ai-server/controller"
	"github.com/happybirthday/ai-server/middleware"
)

func SetApiRouter(router *gin.Engine, media *controller.MediaController) {
	mediaRouter := router.Group("/media")
	mediaRouter.Use(middleware.RelayPanicRecover())
	{
		mediaRouter.POST("/process/resize", media.ResizeVideo)
		mediaRouter.GET("/info", media.VideoInfo)
	}
}
