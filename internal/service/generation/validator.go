package generation

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	model "veritas/internal/model/generation"
)

// RequestValidator 校验生成请求
// 只做本地检查，不发生任何网络调用
type RequestValidator struct {
	validate     *validator.Validate
	defaultModel string
}

// NewRequestValidator 创建请求校验器
func NewRequestValidator(defaultModel string) *RequestValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	// 错误信息使用 JSON 字段名
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &RequestValidator{
		validate:     v,
		defaultModel: defaultModel,
	}
}

// Validate 校验请求并应用默认模型
func (v *RequestValidator) Validate(req *model.GenerateRequest) (*model.Request, error) {
	if req == nil {
		return nil, newValidationError("Invalid request body", map[string]string{"body": "request body is required"})
	}

	if err := v.validate.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return nil, newValidationError("Invalid request body", map[string]string{"body": err.Error()})
		}
		details := make(map[string]string, len(verrs))
		for _, fe := range verrs {
			details[fe.Field()] = fieldMessage(fe)
		}
		return nil, newValidationError("Invalid request parameters", details)
	}

	prompt := strings.TrimSpace(*req.Prompt)
	if prompt == "" {
		return nil, &Error{Kind: KindEmptyPrompt, Message: "Prompt cannot be empty"}
	}

	modelName := strings.TrimSpace(req.Model)
	if modelName == "" {
		modelName = v.defaultModel
	}

	return &model.Request{
		Prompt: prompt,
		Model:  modelName,
		Params: model.Params{
			Temperature:     req.Temperature,
			TopP:            req.TopP,
			TopK:            req.TopK,
			MaxOutputTokens: req.MaxOutputTokens,
		},
	}, nil
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "field is required"
	case "gte":
		return fmt.Sprintf("must be greater than or equal to %s", fe.Param())
	case "lte":
		return fmt.Sprintf("must be less than or equal to %s", fe.Param())
	default:
		return fmt.Sprintf("failed on the '%s' rule", fe.Tag())
	}
}

// BindError 将请求体解析错误转换为 validation_error
func BindError(err error) *Error {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return newValidationError("Invalid request parameters", map[string]string{
			typeErr.Field: fmt.Sprintf("must be of type %s", typeErr.Type),
		})
	}

	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		return newValidationError("Malformed JSON body", map[string]string{"body": syntaxErr.Error()})
	}

	return newValidationError("Invalid request body", map[string]string{"body": err.Error()})
}
