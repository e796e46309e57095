package response

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	apperrors "eliavigram/pkg/errors"
)

// ErrorBody is the JSON shape of every failed request.
type ErrorBody struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

type SuccessBody struct {
	Success bool `json:"success"`
}

func Success(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, data)
}

func Created(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusCreated, data)
}

func OK(c echo.Context) error {
	return c.JSON(http.StatusOK, SuccessBody{Success: true})
}

func Error(c echo.Context, err error) error {
	var validationErr validator.ValidationErrors
	if errors.As(err, &validationErr) {
		return handleValidationError(c, validationErr)
	}

	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		body := ErrorBody{
			Error: appErr.Message,
			Code:  appErr.Code,
		}
		if appErr.Status >= http.StatusInternalServerError && appErr.Err != nil {
			body.Details = appErr.Err.Error()
		}
		return c.JSON(appErr.Status, body)
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message := http.StatusText(httpErr.Code)
		if m, ok := httpErr.Message.(string); ok {
			message = m
		}
		return c.JSON(httpErr.Code, ErrorBody{Error: message})
	}

	return c.JSON(http.StatusInternalServerError, ErrorBody{
		Error:   "An unexpected error occurred",
		Code:    "INTERNAL_ERROR",
		Details: err.Error(),
	})
}

func handleValidationError(c echo.Context, validationErr validator.ValidationErrors) error {
	for _, err := range validationErr {
		field := strings.ToLower(err.Field())

		var message string
		switch err.Tag() {
		case "required":
			message = field + " is required"
		case "max":
			message = field + " must be at most " + err.Param() + " characters"
		case "oneof":
			message = field + " must be one of: " + err.Param()
		case "url":
			message = field + " must be a valid URL"
		default:
			message = field + " is invalid"
		}

		return c.JSON(http.StatusBadRequest, ErrorBody{
			Error: message,
			Code:  "VALIDATION_ERROR",
		})
	}

	return c.JSON(http.StatusBadRequest, ErrorBody{
		Error: "Invalid input data",
		Code:  "VALIDATION_ERROR",
	})
}
