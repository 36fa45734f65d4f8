package shader

import (
	"errors"
	"fmt"

	"github.com/go-gl/gl/v3.3-core/gl"
)

var glErrorNames = map[uint32]string{
	0x500: `GL_INVALID_ENUM`,
	0x501: `GL_INVALID_VALUE`,
	0x502: `GL_INVALID_OPERATION`,
	0x503: `GL_STACK_OVERFLOW`,
	0x504: `GL_STACK_UNDERFLOW`,
	0x505: `GL_OUT_OF_MEMORY`,
	0x506: `GL_INVALID_FRAMEBUFFER_OPERATION`,
	0x507: `GL_CONTEXT_LOST`,
}

// GLError is an error code reported by glGetError.
type GLError uint32

func (e GLError) Error() string {
	if name, ok := glErrorNames[uint32(e)]; ok {
		return "GL_ERROR: " + name
	}
	return fmt.Sprintf("GL_ERROR UNKNOWN: 0x%x", uint32(e))
}

// maxGLErrors bounds the drain loop.
const maxGLErrors = 16

// CheckError drains the accumulated OpenGL errors.
func CheckError() error {
	var errs []error
	for i := 0; i < maxGLErrors; i++ {
		glerr := gl.GetError()
		if glerr == gl.NO_ERROR {
			break
		}
		errs = append(errs, GLError(glerr))
	}
	return errors.Join(errs...)
}
