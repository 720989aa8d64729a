package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Healthcheck 用于存活探测
func (a *API) Healthcheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// GetProfile 一次返回公开主页需要的全部内容
func (a *API) GetProfile(c *gin.Context) {
	profile, err := a.directory.Profile(c.Request.Context())
	if err != nil {
		a.handleDirectoryError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}
