package generation

import "strings"

// Role 对话角色
type Role string

const (
	RoleUser  Role = "user"
	RoleModel Role = "model"
)

// FileRef 已上传到远端的文件引用
type FileRef struct {
	URI      string
	MIMEType string
}

// Part 对话内容片段，Text 与 File 二选一
type Part struct {
	Text string
	File *FileRef
}

// TextPart 文本片段
func TextPart(text string) Part {
	return Part{Text: text}
}

// FilePart 文件引用片段
func FilePart(uri, mimeType string) Part {
	return Part{File: &FileRef{URI: uri, MIMEType: mimeType}}
}

// Turn 一轮对话，按顺序回放给模型
type Turn struct {
	Role  Role
	Parts []Part
}

// Text 拼接该轮中的所有文本片段
func (t Turn) Text() string {
	var sb strings.Builder
	for _, p := range t.Parts {
		if p.File == nil {
			sb.WriteString(p.Text)
		}
	}
	return sb.String()
}

// ContextMode 上下文构建结果
type ContextMode string

const (
	ContextWithDocument ContextMode = "with_document" // 附带参考文档（3 轮）
	ContextPromptOnly   ContextMode = "prompt_only"   // 仅用户提示词（1 轮）
)
