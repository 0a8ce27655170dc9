package main

import (
	"github.com/hoangfish/HotelSystemFull/config"
	"github.com/hoangfish/HotelSystemFull/di"
	"github.com/hoangfish/HotelSystemFull/shared/logger"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	http := di.InitializeService()
	http.Serve()
}
