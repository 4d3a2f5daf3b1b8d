// Package http contains utility functions for request and response handling.
package http

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"

	"go.uber.org/zap"

	"github.com/soapboxsocial/stories/pkg/logger"
)

type ErrorCode int

const (
	ErrorCodeInvalidRequestBody ErrorCode = 3
	ErrorCodeMissingParameter   ErrorCode = 5
	ErrorCodeUnauthorized       ErrorCode = 7
	ErrorCodeNotFound           ErrorCode = 8
	ErrorCodeStoryNotFound      ErrorCode = 20
	ErrorCodeFailedToGetStories ErrorCode = 21
	ErrorCodeFailedToStoreStory ErrorCode = 22
	ErrorCodeFailedToRecordView ErrorCode = 23
	ErrorCodeFailedToToggleMute ErrorCode = 24
	ErrorCodeFailedToGetViews   ErrorCode = 25
	ErrorCodeConflict           ErrorCode = 26
	ErrorCodeUnavailable        ErrorCode = 27
)

// JsonError writes an Error to the ResponseWriter with the provided information.
func JsonError(w http.ResponseWriter, responseCode int, code ErrorCode, msg string) {
	type ErrorResponse struct {
		Code    ErrorCode `json:"code"`
		Message string    `json:"message"`
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(responseCode)

	err := json.NewEncoder(w).Encode(ErrorResponse{Code: code, Message: msg})
	if err != nil {
		logger.Log.Warn("failed to encode error response", zap.Error(err))
	}
}

// JsonEncode marshals an interface and writes it to the response.
func JsonEncode(w http.ResponseWriter, v interface{}) error {
	w.Header().Set("Content-Type", "application/json")
	return json.NewEncoder(w).Encode(v)
}

// JsonSuccess writes a generic success response.
func JsonSuccess(w http.ResponseWriter) {
	type Success struct {
		Success bool `json:"success"`
	}

	err := JsonEncode(w, Success{Success: true})
	if err != nil {
		logger.Log.Warn("failed to write success response", zap.Error(err))
	}
}

// GetInt returns the value of key as an int, or defaultValue when it is missing or invalid.
func GetInt(values url.Values, key string, defaultValue int) int {
	str := values.Get(key)
	if str == "" {
		return defaultValue
	}

	val, err := strconv.Atoi(str)
	if err != nil {
		return defaultValue
	}

	return val
}

// NotFoundHandler responds with a JSON not found error.
func NotFoundHandler(w http.ResponseWriter, _ *http.Request) {
	JsonError(w, http.StatusNotFound, ErrorCodeNotFound, "not found")
}
