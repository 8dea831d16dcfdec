package generation

import (
	"net/http"

	"github.com/gin-gonic/gin"

	model "veritas/internal/model/generation"
	svc "veritas/internal/service/generation"
)

// Generate 生成回复
// @Summary      生成回复
// @Description  将提示词连同学校参考文档发送给模型，返回完整的生成文本
// @Tags         生成
// @Accept       json
// @Produce      json
// @Param        request  body      model.GenerateRequest   true  "生成请求"
// @Success      200      {object}  model.GenerateResponse
// @Failure      400      {object}  ErrorResponse  "参数错误、提示词为空或被拦截"
// @Failure      429      {object}  ErrorResponse  "请求过于频繁"
// @Failure      500      {object}  ErrorResponse  "服务未配置或内部错误"
// @Failure      503      {object}  ErrorResponse  "模型服务不可用"
// @Router       /api/ai/generate/ [post]
// @Router       /generate/ [post]
func (h *Handler) Generate(c *gin.Context) {
	var req model.GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, svc.BindError(err))
		return
	}

	resp, err := h.generator.Generate(c.Request.Context(), &req)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
