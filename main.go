package main

import (
	"os"

	"veritas/cmd"
)

// @title           Veritas AI API
// @version         1.0
// @description     Veritas University AI 生成服务：携带学校参考文档调用大模型生成回复
// @BasePath        /
func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
