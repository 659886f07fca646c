package main

import (
	"backend/config"
	"backend/logger"
	"backend/routes"

	"go.uber.org/zap"
)

func main() {
	logger.Init()
	defer logger.Close()

	config.InitDB()

	r := routes.SetupRouter()
	logger.Info("listening", zap.String("addr", ":8080"))
	if err := r.Run(":8080"); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
