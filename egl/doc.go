// Package egl defines the typed EGL enumerations together with the native
// EGL constants they are built from. The files named enum*.go are
// generated from tables/egl.
package egl

//go:generate go run ../cmd/glenumgen --config ../glenumgen.yaml --api egl
