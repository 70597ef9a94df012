// Package shaders provides embedded GLSL shader sources.
package shaders

import _ "embed"

// BackgroundVertexShader passes the screen quad through untransformed.
//
//go:embed background.vert
var BackgroundVertexShader string

// BackgroundFragmentShader samples the star-field texture.
//
//go:embed background.frag
var BackgroundFragmentShader string

// UnlitVertexShader transforms textured geometry without lighting inputs.
//
//go:embed unlit.vert
var UnlitVertexShader string

// UnlitFragmentShader samples the texture at full brightness. Used for the sun.
//
//go:embed unlit.frag
var UnlitFragmentShader string

// LitVertexShader transforms textured geometry and its normals to world space.
//
//go:embed lit.vert
var LitVertexShader string

// LitFragmentShader applies ambient plus diffuse light from a point source.
//
//go:embed lit.frag
var LitFragmentShader string

// LineVertexShader transforms orbit outline points.
//
//go:embed line.vert
var LineVertexShader string

// LineFragmentShader fills lines with a constant color.
//
//go:embed line.frag
var LineFragmentShader string
