package handlers

import (
	"net/http"

	"github.com/unrolled/render"
)

// Error body per the API contract: a machine-readable code plus a human
// message.
const (
	codeValidation = "validation_error"
	codeNotFound   = "not_found"
	codeInternal   = "internal"
)

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type errorResponse struct {
	Error errorBody `json:"error"`
}

func renderError(rnd *render.Render, w http.ResponseWriter, status int, code, message string) {
	_ = rnd.JSON(w, status, errorResponse{Error: errorBody{Code: code, Message: message}})
}

func renderInternal(rnd *render.Render, w http.ResponseWriter) {
	renderError(rnd, w, http.StatusInternalServerError, codeInternal, "internal server error")
}
