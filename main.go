// @title Skriptio Study API
// @version 1.0
// @description 把PDF或文本一键转成测验、记忆卡片和7天学习计划的后端服务。
// @termsOfService http://swagger.io/terms/

// @contact.name API支持
// @contact.email support@skriptio.local

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080
// @BasePath /api

package main

import (
	"flag"
	"log"

	"skriptio_backend/internal/app"
	"skriptio_backend/internal/config"
	"skriptio_backend/pkg/configwatcher"
)

func main() {
	watch := flag.Bool("watch-config", false, "监听配置文件变化并热更新")
	flag.Parse()

	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	application := app.NewApp(cfg)

	if *watch {
		go configwatcher.WatchConfig("configs/config.yaml", application.ApplyConfig)
	}

	application.Run()
}
