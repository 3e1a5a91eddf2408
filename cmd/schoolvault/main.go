// Package main 启动应用程序
package main

import "github.com/yeisme/schoolvault/pkg/cmd"

//	@title			Schoolvault API
//	@version		0.1.0
//	@description	Schoolvault 是学校门户的内容服务，提供新闻、活动、相册、成绩、学籍与教师信息的管理接口，以及可插拔的文件上传存储。

//	@license.name	MIT
//	@license.url	https://opensource.org/license/mit/

func main() {
	if err := cmd.Execute(); err != nil {
		panic(err)
	}
}
