package controller

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/happybirthday/ai-server/relay/model"
)

func abortWithDetail(c *gin.Context, statusCode int, detail string) {
	c.AbortWithStatusJSON(statusCode, model.ErrorResponse{Detail: detail})
}

// relayContext keeps request-scoped values but drops client cancellation,
// so an upstream prediction or ffmpeg run is not killed when the browser disconnects.
func relayContext(c *gin.Context) context.Context {
	return context.WithoutCancel(c.Request.Context())
}
