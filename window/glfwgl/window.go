// Package glfwgl opens GLFW windows with a current OpenGL core profile
// context for the examples.
package glfwgl

import (
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/pkg/errors"

	"github.com/james4k/go-glenum/internal/logger"
)

type Config struct {
	Width, Height int
	Title         string
	// Major and Minor select the core profile version, 4.1 by default.
	Major, Minor int
	Hidden       bool
}

// Open initializes GLFW, creates the window and makes its context current
// on the calling thread, which stays locked to it. Call Close when done.
func Open(cfg Config) (*glfw.Window, error) {
	runtime.LockOSThread()
	if cfg.Major == 0 {
		cfg.Major, cfg.Minor = 4, 1
	}
	if err := glfw.Init(); err != nil {
		return nil, errors.Wrap(err, "glfw init")
	}
	glfw.WindowHint(glfw.ContextVersionMajor, cfg.Major)
	glfw.WindowHint(glfw.ContextVersionMinor, cfg.Minor)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.False)
	if cfg.Hidden {
		glfw.WindowHint(glfw.Visible, glfw.False)
	}
	w, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, errors.Wrap(err, "creating window")
	}
	w.MakeContextCurrent()
	logger.L().Debug("window opened", "title", cfg.Title, "width", cfg.Width, "height", cfg.Height, "gl", [2]int{cfg.Major, cfg.Minor})
	return w, nil
}

// Close destroys the window and terminates GLFW.
func Close(w *glfw.Window) {
	w.Destroy()
	glfw.Terminate()
	runtime.UnlockOSThread()
}
