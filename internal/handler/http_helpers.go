package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/creatorpage/internal/service"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

// bindJSON 解析请求体；字段类型不匹配时在 fields 中指出具体字段
func bindJSON(c *gin.Context, dst interface{}, message string) bool {
	err := c.ShouldBindJSON(dst)
	if err == nil {
		return true
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":  message,
			"fields": []service.FieldError{{Field: typeErr.Field, Constraint: typeConstraint(typeErr)}},
		})
		return false
	}

	respondError(c, http.StatusBadRequest, message)
	return false
}

func typeConstraint(err *json.UnmarshalTypeError) string {
	if err.Type == nil {
		return "type"
	}
	return fmt.Sprintf("type=%s", err.Type.String())
}

func parseUintParam(c *gin.Context, key string) (uint, error) {
	raw := c.Param(key)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid %s", key)
	}
	return uint(id), nil
}

// handleDirectoryError 将服务层错误映射为 HTTP 状态码
func (a *API) handleDirectoryError(c *gin.Context, err error) {
	var (
		invalid  *service.ValidationError
		notFound *service.NotFoundError
		storage  *service.StorageError
	)

	switch {
	case errors.As(err, &invalid):
		c.JSON(http.StatusBadRequest, gin.H{
			"error":  "请检查输入内容",
			"fields": invalid.Fields,
		})
	case errors.As(err, &notFound):
		respondError(c, http.StatusNotFound, fmt.Sprintf("%s %d 不存在", notFound.Kind, notFound.ID))
	case errors.As(err, &storage):
		a.log.Error("directory storage failure",
			zap.String("kind", string(storage.Kind)),
			zap.String("op", storage.Op),
			zap.Error(storage.Err),
		)
		respondError(c, http.StatusInternalServerError, "操作失败")
	default:
		a.log.Error("unexpected directory error", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "操作失败")
	}
}
