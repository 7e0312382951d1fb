// Copyright (c) 2026 Caboomlog. All rights reserved.

/*
Package requestutil extracts path parameters, query flags and JSON bodies from HTTP
requests so handlers stay free of router plumbing.
*/
package requestutil

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/caboomlog/backend/internal/platform/validate"
)

// maxBodyBytes caps JSON request bodies.
const maxBodyBytes = 1 << 20

/*
DecodeJSON decodes the request body into target, rejecting unknown fields.

Returns:
  - error: validate.ErrInvalidJSON if decoding fails, otherwise nil
*/
func DecodeJSON(writer http.ResponseWriter, request *http.Request, target any) error {
	decoder := json.NewDecoder(http.MaxBytesReader(writer, request.Body, maxBodyBytes))
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(target); err != nil {
		return validate.ErrInvalidJSON
	}
	return nil
}

/*
Param retrieves a named URL parameter from the request.
*/
func Param(request *http.Request, name string) string {
	return chi.URLParam(request, name)
}

/*
BoolQuery reads a boolean query parameter. Missing or malformed values yield false.
*/
func BoolQuery(request *http.Request, name string) bool {
	value, err := strconv.ParseBool(request.URL.Query().Get(name))
	return err == nil && value
}
