package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/happybirthday/ai-server/common/config"
)

func Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": config.SystemName + " is running!",
	})
}

func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}
