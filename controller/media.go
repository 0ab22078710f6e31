package controller

import (
	"context"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/happybirthday/ai-server/relay/model"
)

// Transcoder is implemented by service/media.Transcoder.
type Transcoder interface {
	ResizeVideo(ctx context.Context, inputPath string, outputPath string, width int, height int) (string, error)
	GetVideoInfo(ctx context.Context, path string) (model.VideoInfo, error)
}

type MediaController struct {
	Transcoder Transcoder
}

func NewMediaController(transcoder Transcoder) *MediaController {
	return &MediaController{Transcoder: transcoder}
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func (ctl *MediaController) ResizeVideo(c *gin.Context) {
	var request model.ResizeRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		abortWithDetail(c, http.StatusBadRequest, err.Error())
		return
	}
	if !fileExists(request.InputPath) {
		abortWithDetail(c, http.StatusNotFound, "Input file not found")
		return
	}

	output, err := ctl.Transcoder.ResizeVideo(relayContext(c), request.InputPath, request.OutputPath, request.Width, request.Height)
	if err != nil {
		abortWithDetail(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, model.ResizeResponse{Status: "success", OutputPath: output})
}

func (ctl *MediaController) VideoInfo(c *gin.Context) {
	var query model.VideoInfoQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		abortWithDetail(c, http.StatusBadRequest, err.Error())
		return
	}
	if !fileExists(query.Path) {
		abortWithDetail(c, http.StatusNotFound, "File not found")
		return
	}

	info, err := ctl.Transcoder.GetVideoInfo(relayContext(c), query.Path)
	if err != nil {
		abortWithDetail(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, info)
}
