package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/happybirthday/ai-server/common/logger"
	"github.com/happybirthday/ai-server/relay/channel"
	"github.com/happybirthday/ai-server/relay/model"
)

// AIController serves /ai. Adaptors are shared by all requests and hold no per-request state.
type AIController struct {
	Generator channel.MediaGenerator
	Refiner   channel.PromptRefiner
}

func NewAIController(generator channel.MediaGenerator, refiner channel.PromptRefiner) *AIController {
	return &AIController{Generator: generator, Refiner: refiner}
}

func (ctl *AIController) RefinePrompt(c *gin.Context) {
	var request model.RefineRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		abortWithDetail(c, http.StatusBadRequest, err.Error())
		return
	}
	prompt, err := ctl.Refiner.RefinePrompt(relayContext(c), *request.UserData)
	if err != nil {
		abortWithDetail(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, model.RefineResponse{Prompt: prompt})
}

func (ctl *AIController) GenerateImage(c *gin.Context) {
	var request model.ImageRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		abortWithDetail(c, http.StatusBadRequest, err.Error())
		return
	}
	request = request.WithDefaults()

	url, err := ctl.Generator.GenerateImage(relayContext(c), request.Prompt, request.Model, request.AspectRatio)
	if err != nil {
		abortWithDetail(c, http.StatusInternalServerError, err.Error())
		return
	}
	logger.Debugf(c.Request.Context(), "image generated: %s", url)
	c.JSON(http.StatusOK, model.NewImageResponse(url))
}

func (ctl *AIController) GenerateVideo(c *gin.Context) {
	var request model.VideoRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		abortWithDetail(c, http.StatusBadRequest, err.Error())
		return
	}
	request = request.WithDefaults()

	url, err := ctl.Generator.GenerateVideo(relayContext(c), request.Prompt, request.ImageURL, request.Model)
	if err != nil {
		abortWithDetail(c, http.StatusInternalServerError, err.Error())
		return
	}
	logger.Debugf(c.Request.Context(), "video generated: %s", url)
	c.JSON(http.StatusOK, model.VideoResponse{URL: url})
}
