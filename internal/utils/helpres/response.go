package helpers

import (
	"encoding/json"
	"net/http"

	"storefront/internal/logger"

	"go.uber.org/zap"
)

// Response — единый конверт JSON-ответов API.
type Response struct {
	Data  interface{} `json:"data,omitempty"`
	Error string      `json:"error,omitempty"`
}

func JSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(Response{Data: data}); err != nil {
		logger.Log.Error("Ошибка сериализации ответа", zap.Int("status", status), zap.Error(err))
	}
}

func Error(w http.ResponseWriter, status int, errMsg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(Response{Error: errMsg}); err != nil {
		logger.Log.Error("Ошибка сериализации ответа", zap.Int("status", status), zap.Error(err))
	}
}
