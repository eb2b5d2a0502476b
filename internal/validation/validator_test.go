package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/glossa-dev/glossa/internal/errors"
	"github.com/glossa-dev/glossa/internal/models"
)

func TestValidateStruct(t *testing.T) {
	v := New()

	assert.Nil(t, v.ValidateStruct(&models.DetectionRequest{Text: "bonjour"}))

	apiErr := v.ValidateStruct(&models.DetectionRequest{})
	require.NotNil(t, apiErr)
	assert.Equal(t, apperrors.ValidationFailed, apiErr.Code)
	assert.Contains(t, apiErr.Fields, "Text")
}
