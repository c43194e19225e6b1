package handler

import (
	"net/http"

	"go.uber.org/zap"

	"checkpoint-bot/internal/api"
)

func Root(logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, logger, api.Status{Status: api.StatusOnline}, http.StatusOK)
	}
}

func Health(logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, logger, api.Status{Status: api.StatusHealthy}, http.StatusOK)
	}
}

func NotFound(logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		api.WriteApiError(w, logger, api.ErrNotFound, api.CodeNotFound, http.StatusNotFound)
	}
}

func MethodNotAllowed(logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		api.WriteApiError(w, logger, api.ErrMethodNotAllowed, api.CodeMethodNotAllowed, http.StatusMethodNotAllowed)
	}
}
