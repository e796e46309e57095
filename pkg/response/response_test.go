package response

import (
	"encoding/json"
	stderrors "errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eliavigram/pkg/errors"
)

func render(t *testing.T, err error) (int, ErrorBody) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	require.NoError(t, Error(c, err))

	var body ErrorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec.Code, body
}

func TestErrorMapsAppErrors(t *testing.T) {
	code, body := render(t, errors.NotFound("Photo", stderrors.New("rpc error")))
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, ErrorBody{Error: "Photo not found", Code: "NOT_FOUND"}, body)

	code, body = render(t, errors.Upstream("Failed to upload file", stderrors.New("bucket gone")))
	assert.Equal(t, http.StatusInternalServerError, code)
	assert.Equal(t, "Failed to upload file", body.Error)
	assert.Equal(t, "bucket gone", body.Details)
}

func TestErrorMapsValidation(t *testing.T) {
	type input struct {
		Text string `validate:"required"`
	}
	err := validator.New().Struct(input{})

	code, body := render(t, err)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "VALIDATION_ERROR", body.Code)
	assert.Equal(t, "text is required", body.Error)
}

func TestErrorMapsUnknownErrors(t *testing.T) {
	code, body := render(t, stderrors.New("boom"))
	assert.Equal(t, http.StatusInternalServerError, code)
	assert.Equal(t, "boom", body.Details)

	code, _ = render(t, echo.NewHTTPError(http.StatusRequestEntityTooLarge, "too big"))
	assert.Equal(t, http.StatusRequestEntityTooLarge, code)
}
