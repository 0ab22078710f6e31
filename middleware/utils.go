package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/happybirthday/ai-server/common/logger"
	"github.com/happybirthday/ai-server/relay/model"
)

func abortWithDetail(c *gin.Context, statusCode int, detail string) {
	c.AbortWithStatusJSON(statusCode, model.ErrorResponse{Detail: detail})
	logger.Error(c.Request.Context(), detail)
}
