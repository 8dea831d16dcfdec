package generation

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	model "veritas/internal/model/generation"
	pkghttp "veritas/internal/pkg/http"
	"veritas/internal/pkg/id"
	repo "veritas/internal/repository/generation"
)

// GetGenerationRequest 获取生成记录请求
type GetGenerationRequest struct {
	GenerationID string `uri:"generation_id" binding:"required"` // 记录ID（必填）
}

// GetGenerationResponseData 获取生成记录响应数据
type GetGenerationResponseData struct {
	Generation *model.Record `json:"generation"` // 生成记录
}

// GetGeneration 获取生成记录
// @Summary      获取生成记录
// @Description  根据记录ID获取一次生成的详细信息
// @Tags         生成日志
// @Produce      json
// @Param        generation_id  path      string  true  "记录ID"
// @Success      200            {object}  pkghttp.SuccessResponse{data=GetGenerationResponseData}
// @Failure      400            {object}  ErrorResponse  "请求参数错误"
// @Failure      404            {object}  ErrorResponse  "记录不存在"
// @Failure      500            {object}  ErrorResponse  "服务器内部错误"
// @Router       /api/ai/generations/{generation_id} [get]
func (h *Handler) GetGeneration(c *gin.Context) {
	var req GetGenerationRequest
	if err := c.ShouldBindUri(&req); err != nil || !id.IsValid(req.GenerationID) {
		c.JSON(http.StatusBadRequest, pkghttp.NewErrorResponse(40001, "validation_error", "Invalid generation id"))
		return
	}

	record, err := h.records.FindByID(c.Request.Context(), req.GenerationID)
	if err != nil {
		if errors.Is(err, repo.ErrGenerationNotFound) {
			c.JSON(http.StatusNotFound, pkghttp.NewErrorResponse(40401, "not_found", "Generation record not found"))
			return
		}
		log.Error().Err(err).Str("generation_id", req.GenerationID).Msg("failed to get generation record")
		c.JSON(http.StatusInternalServerError, pkghttp.NewErrorResponse(50000, "internal_error", "Failed to get generation record"))
		return
	}

	c.JSON(http.StatusOK, pkghttp.NewSuccessResponse("success", GetGenerationResponseData{
		Generation: record,
	}))
}
