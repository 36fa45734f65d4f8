package shader

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGLErrorNames(t *testing.T) {
	assert.Equal(t, "GL_ERROR: GL_INVALID_OPERATION", GLError(0x502).Error())
	assert.Equal(t, "GL_ERROR UNKNOWN: 0x42", GLError(0x42).Error())

	err := errors.Join(GLError(0x500), GLError(0x501))
	var glerr GLError
	assert.True(t, errors.As(err, &glerr))
	assert.Equal(t, GLError(0x500), glerr)
}
