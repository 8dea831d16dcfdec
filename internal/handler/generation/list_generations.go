package generation

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	model "veritas/internal/model/generation"
	pkghttp "veritas/internal/pkg/http"
)

const (
	defaultListLimit = 20
	maxListLimit     = 100
)

// ListGenerationsRequest 查询生成日志请求
type ListGenerationsRequest struct {
	Status string `form:"status" binding:"omitempty,oneof=succeeded failed"` // 状态筛选（可选）
	Limit  int    `form:"limit" binding:"omitempty,min=1"`                   // 每页数量（默认20，最大100）
	Offset int    `form:"offset" binding:"omitempty,min=0"`                  // 偏移量
}

// ListGenerationsResponseData 查询生成日志响应数据
type ListGenerationsResponseData struct {
	Generations []*model.Record `json:"generations"` // 生成记录
	Total       int64           `json:"total"`       // 总数量
	Limit       int             `json:"limit"`
	Offset      int             `json:"offset"`
}

// ListGenerations 查询生成日志
// @Summary      查询生成日志
// @Description  按创建时间倒序返回生成记录，支持状态筛选和分页
// @Tags         生成日志
// @Produce      json
// @Param        status  query     string  false  "状态筛选（succeeded/failed）"
// @Param        limit   query     int     false  "每页数量（默认20，最大100）"
// @Param        offset  query     int     false  "偏移量"
// @Success      200     {object}  pkghttp.SuccessResponse{data=ListGenerationsResponseData}
// @Failure      400     {object}  ErrorResponse  "请求参数错误"
// @Failure      500     {object}  ErrorResponse  "服务器内部错误"
// @Router       /api/ai/generations [get]
func (h *Handler) ListGenerations(c *gin.Context) {
	var req ListGenerationsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		resp := pkghttp.NewErrorResponse(40001, "validation_error", "Invalid query parameters")
		resp.Details = map[string]string{"query": err.Error()}
		c.JSON(http.StatusBadRequest, resp)
		return
	}

	if req.Limit <= 0 {
		req.Limit = defaultListLimit
	}
	if req.Limit > maxListLimit {
		req.Limit = maxListLimit
	}

	records, total, err := h.records.List(c.Request.Context(), model.RecordStatus(req.Status), req.Limit, req.Offset)
	if err != nil {
		log.Error().Err(err).Msg("failed to list generation records")
		c.JSON(http.StatusInternalServerError, pkghttp.NewErrorResponse(50000, "internal_error", "Failed to list generation records"))
		return
	}

	c.JSON(http.StatusOK, pkghttp.NewSuccessResponse("success", ListGenerationsResponseData{
		Generations: records,
		Total:       total,
		Limit:       req.Limit,
		Offset:      req.Offset,
	}))
}
