package handler

import (
	"net/http"
	"sync"

	"hotel/config"
	"hotel/di"
	"hotel/shared/logger"
)

var (
	once    sync.Once
	handler http.Handler
)

// Handler serves the API from a serverless function. The router is built on the first request and reused.
func Handler(w http.ResponseWriter, r *http.Request) {
	once.Do(func() {
		cfg := config.Get()

		logger.InitLogger()
		logger.SetLogLevel(cfg)

		handler = di.InitializeService().Handler()
	})

	r.RequestURI = r.URL.String()

	handler.ServeHTTP(w, r)
}
