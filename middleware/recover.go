package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"
	"github.com/happybirthday/ai-server/common/helper"
	"github.com/happybirthday/ai-server/common/logger"
)

func RelayPanicRecover() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger.SysError(fmt.Sprintf("panic detected: %v", err))
				logger.SysError(fmt.Sprintf("stacktrace from panic: %s", string(debug.Stack())))
				abortWithDetail(c, http.StatusInternalServerError,
					helper.MessageWithRequestId("internal server error", c.GetString(logger.RequestIdKey)))
			}
		}()
		c.Next()
	}
}
