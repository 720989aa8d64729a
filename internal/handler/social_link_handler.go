package handler

import (
	"net/http"

	"github.com/creatorpage/internal/service"
	"github.com/gin-gonic/gin"
)

// ListSocialLinks 返回启用中的社交链接
func (a *API) ListSocialLinks(c *gin.Context) {
	links, err := a.directory.SocialLinks.ListActive(c.Request.Context())
	if err != nil {
		a.handleDirectoryError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"social_links": links})
}

// CreateSocialLink 新建社交链接
func (a *API) CreateSocialLink(c *gin.Context) {
	var payload service.CreateSocialLinkInput
	if !bindJSON(c, &payload, "社交链接数据格式不正确") {
		return
	}

	link, err := a.directory.SocialLinks.Create(c.Request.Context(), payload)
	if err != nil {
		a.handleDirectoryError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":     "已新增社交链接",
		"social_link": link,
	})
}

// UpdateSocialLink 局部更新社交链接，请求体中未出现的字段保持不变
func (a *API) UpdateSocialLink(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "无效的社交链接ID")
		return
	}

	var payload service.UpdateSocialLinkInput
	if !bindJSON(c, &payload, "社交链接数据格式不正确") {
		return
	}
	payload.ID = id

	link, err := a.directory.SocialLinks.Update(c.Request.Context(), payload)
	if err != nil {
		a.handleDirectoryError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":     "社交链接已更新",
		"social_link": link,
	})
}
