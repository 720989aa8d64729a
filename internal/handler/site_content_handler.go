package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/creatorpage/internal/service"
	"github.com/gin-gonic/gin"
)

// ListSiteContent 按 section / is_active 过滤站点内容，两者都省略时返回全部
func (a *API) ListSiteContent(c *gin.Context) {
	filter, ok := contentFilterFromQuery(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":  "无效的过滤条件",
			"fields": []service.FieldError{{Field: "is_active", Constraint: "boolean"}},
		})
		return
	}

	items, err := a.directory.SiteContent.ListActive(c.Request.Context(), filter)
	if err != nil {
		a.handleDirectoryError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"site_content": items})
}

func (a *API) CreateSiteContent(c *gin.Context) {
	var payload service.CreateSiteContentInput
	if !bindJSON(c, &payload, "内容数据格式不正确") {
		return
	}

	item, err := a.directory.SiteContent.Create(c.Request.Context(), payload)
	if err != nil {
		a.handleDirectoryError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":      "已新增内容",
		"site_content": item,
	})
}

func (a *API) UpdateSiteContent(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "无效的内容ID")
		return
	}

	var payload service.UpdateSiteContentInput
	if !bindJSON(c, &payload, "内容数据格式不正确") {
		return
	}
	payload.ID = id

	item, err := a.directory.SiteContent.Update(c.Request.Context(), payload)
	if err != nil {
		a.handleDirectoryError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":      "内容已更新",
		"site_content": item,
	})
}

// contentFilterFromQuery 解析 section / is_active 查询参数，空值视为未提供
func contentFilterFromQuery(c *gin.Context) (service.ContentFilter, bool) {
	var filter service.ContentFilter
	if section, ok := c.GetQuery("section"); ok {
		filter.Section = &section
	}

	raw := strings.TrimSpace(c.Query("is_active"))
	if raw == "" {
		return filter, true
	}
	active, err := strconv.ParseBool(raw)
	if err != nil {
		return filter, false
	}
	filter.IsActive = &active
	return filter, true
}
