package controllers

import (
	"strconv"

	"salesengine/errors"
	"salesengine/models"
	"salesengine/response"
	"salesengine/utils"

	"github.com/gin-gonic/gin"
)

// parseIDParam đọc param :id trên URL
func parseIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "id không hợp lệ")
		return 0, false
	}
	return uint(id), true
}

// finderQuery chọn đúng một cặp (field, value) từ query string theo thứ tự
// registry. Gửi nhiều field cùng lúc thì field đứng trước trong registry thắng.
func finderQuery(c *gin.Context, fields []models.Field) (string, string, bool) {
	query := c.Request.URL.Query()
	for _, f := range fields {
		if values, exists := query[f.Name]; exists && len(values) > 0 {
			return f.Name, values[0], true
		}
	}
	return "", "", false
}

// parseQuantityParam đọc query param quantity của các endpoint xếp hạng
func parseQuantityParam(c *gin.Context) (int, bool) {
	quantityStr := c.Query("quantity")
	if quantityStr == "" {
		response.BadRequest(c, "thiếu tham số quantity")
		return 0, false
	}

	quantity, err := strconv.Atoi(quantityStr)
	if err != nil {
		response.BadRequest(c, "quantity không hợp lệ")
		return 0, false
	}
	return quantity, true
}

// handleServiceError map lỗi service sang response HTTP tương ứng
func handleServiceError(c *gin.Context, err error) {
	appErr := errors.GetAppError(err)

	switch {
	case errors.IsNotFound(err):
		response.NotFound(c)
	case errors.IsValidation(err):
		response.ValidationError(c, appErr.Message)
	case errors.IsInvalidArgument(err):
		response.BadRequest(c, appErr.Message)
	default:
		utils.LogError("Lỗi service: %v", err)
		response.ServerError(c)
	}
}
