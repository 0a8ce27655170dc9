package handler

import (
	"net/http"
	"github.com/hoangfish/HotelSystemFull/config"
	"github.com/hoangfish/HotelSystemFull/di"
	"github.com/hoangfish/HotelSystemFull/shared/logger"
)

func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	handler := di.InitializeService()
	handler.ServeHTTP(w, r)
}
