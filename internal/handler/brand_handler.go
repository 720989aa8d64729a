package handler

import (
	"net/http"

	"github.com/creatorpage/internal/service"
	"github.com/gin-gonic/gin"
)

// ListBrands 返回启用中的合作品牌
func (a *API) ListBrands(c *gin.Context) {
	brands, err := a.directory.Brands.ListActive(c.Request.Context())
	if err != nil {
		a.handleDirectoryError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"brands": brands})
}

func (a *API) CreateBrand(c *gin.Context) {
	var payload service.CreateBrandInput
	if !bindJSON(c, &payload, "品牌数据格式不正确") {
		return
	}

	brand, err := a.directory.Brands.Create(c.Request.Context(), payload)
	if err != nil {
		a.handleDirectoryError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "已新增合作品牌",
		"brand":   brand,
	})
}

// UpdateBrand 支持将 website_url、partnership_type 显式置为 null
func (a *API) UpdateBrand(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "无效的品牌ID")
		return
	}

	var payload service.UpdateBrandInput
	if !bindJSON(c, &payload, "品牌数据格式不正确") {
		return
	}
	payload.ID = id

	brand, err := a.directory.Brands.Update(c.Request.Context(), payload)
	if err != nil {
		a.handleDirectoryError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "合作品牌已更新",
		"brand":   brand,
	})
}
