package dto

import "github.com/tu-usuario/crm-pro/pkg/validation"

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ValidationErrorResponse error 400 con la lista de violaciones por campo.
type ValidationErrorResponse struct {
	Code    string                  `json:"code"`
	Message string                  `json:"message"`
	Errors  []validation.FieldError `json:"errors"`
}

// MessageResponse cuerpo de éxito con mensaje simple.
type MessageResponse struct {
	Message string `json:"message"`
}
