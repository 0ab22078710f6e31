package router

import (
	"fmt"
	"os"

	"github.com/gin-contrib/gzip"
	"github.com/gin-contrib/static"
	"github.com/gin-gonic/gin"
	"github.com/happybirthday/ai-server/common/config"
	"github.com/happybirthday/ai-server/common/logger"
	"github.com/happybirthday/ai-server/common/validation"
	"github.com/happybirthday/ai-server/controller"
	_ "github.com/happybirthday/ai-server/docs"
	"github.com/happybirthday/ai-server/middleware"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Controllers are built once at startup and shared by every request.
type Controllers struct {
	AI    *controller.AIController
	Media *controller.MediaController
}

func SetRouter(router *gin.Engine, controllers Controllers) error {
	if err := validation.Register(); err != nil {
		return err
	}
	router.Use(middleware.CORS(config.AllowedOrigins))
	router.Use(gzip.Gzip(gzip.DefaultCompression))

	router.GET("/", controller.Root)
	router.GET("/health", controller.Health)

	SetRelayRouter(router, controllers.AI)
	SetApiRouter(router, controllers.Media)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	logger.SysLog("Swagger UI enabled at /swagger/index.html")

	if config.WebDistDir != "" {
		SetWebRouter(router, config.WebDistDir)
	}
	return nil
}

// SetWebRouter serves a built frontend under /app.
func SetWebRouter(router *gin.Engine, dir string) {
	if _, err := os.Stat(dir); err != nil {
		logger.SysWarn(fmt.Sprintf("WEB_DIST_DIR %s is not readable, frontend disabled: %s", dir, err.Error()))
		return
	}
	router.Use(static.Serve("/app", static.LocalFile(dir, true)))
	logger.SysLog(fmt.Sprintf("serving frontend from %s at /app", dir))
}
