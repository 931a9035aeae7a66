package apperror_test

import (
	"errors"
	"net/http"
	"testing"

	"ai-marketing-backend/pkg/apperror"

	"github.com/stretchr/testify/assert"
)

func TestAppErrorWrapsCause(t *testing.T) {
	cause := errors.New("provider said no")
	err := apperror.Internal(cause)

	assert.Equal(t, http.StatusInternalServerError, err.Code)
	assert.Equal(t, "Internal server error. Please try again.", err.Error())
	assert.ErrorIs(t, err, cause)
}

func TestBadRequestHasNoCause(t *testing.T) {
	err := apperror.BadRequest("Invalid email format")

	assert.Equal(t, http.StatusBadRequest, err.Code)
	assert.Nil(t, errors.Unwrap(err))
}
