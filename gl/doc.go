// Package gl defines the typed OpenGL enumerations together with the
// native GL constants they are built from.
//
// Every type implements glenum.Enumeration, so its constant names and
// value ranges are available through glenum.ValueName and
// glenum.ValueRange:
//
//	glenum.ValueName(gl.TextureTarget2D)       // "TEXTURE_2D"
//	glenum.ValueRange[gl.ShaderType]().Len()   // 6
//
// The files named enum*.go are generated from tables/gl.
package gl

//go:generate go run ../cmd/glenumgen --config ../glenumgen.yaml --api gl
