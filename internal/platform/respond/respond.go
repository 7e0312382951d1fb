// Copyright (c) 2026 Caboomlog. All rights reserved.

// Package respond writes every HTTP response of the API.
//
// # Envelope
//
// Successful responses are wrapped as {"data": ...}. Failures are written as
// {"error": ..., "code": ..., "details": [...]} so clients can branch on the code
// without parsing the message.
package respond

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/caboomlog/backend/internal/platform/apperr"
	"github.com/caboomlog/backend/internal/platform/ctxutil"
)

// SuccessEnvelope wraps successful payloads.
type SuccessEnvelope struct {
	Data any `json:"data"`
}

// ErrorEnvelope is the body of every non-2xx response.
type ErrorEnvelope struct {
	Error   string              `json:"error"`
	Code    string              `json:"code"`
	Details []apperr.FieldError `json:"details,omitempty"`
}

// JSON writes payload with the given status code.
func JSON(writer http.ResponseWriter, statusCode int, payload any) {
	writer.Header().Set("Content-Type", "application/json; charset=utf-8")
	writer.WriteHeader(statusCode)
	_ = json.NewEncoder(writer).Encode(payload)
}

// OK writes 200 with data in the success envelope.
func OK(writer http.ResponseWriter, data any) {
	JSON(writer, http.StatusOK, SuccessEnvelope{Data: data})
}

// Created writes 201 with data in the success envelope.
func Created(writer http.ResponseWriter, data any) {
	JSON(writer, http.StatusCreated, SuccessEnvelope{Data: data})
}

// NoContent writes 204.
func NoContent(writer http.ResponseWriter) {
	writer.WriteHeader(http.StatusNoContent)
}

// Error maps err to its response. Errors that are not an [*apperr.AppError] are
// logged in full and reported to the client as a generic 500.
func Error(writer http.ResponseWriter, request *http.Request, err error) {
	context := request.Context()
	logger := ctxutil.GetLogger(context)

	appError := apperr.As(err)
	if appError == nil {
		logger.ErrorContext(context, "unhandled_error",
			slog.String("error", err.Error()),
			slog.String("request_id", ctxutil.GetRequestID(context)),
		)
		appError = apperr.Internal(err)
	}

	if appError.HTTPStatus >= http.StatusInternalServerError {
		logger.ErrorContext(context, "api_server_error",
			slog.String("code", appError.Code),
			slog.String("request_id", ctxutil.GetRequestID(context)),
			slog.Any("cause", appError.Cause),
		)
	}

	JSON(writer, appError.HTTPStatus, ErrorEnvelope{
		Error:   appError.Message,
		Code:    appError.Code,
		Details: appError.Details,
	})
}
