package light

// LightBuilderOption is a function that configures a Light instance during construction.
type LightBuilderOption func(*lightImpl)

// WithPosition is an option builder that sets the world-space position of the light.
//
// Parameters:
//   - x: the x position component
//   - y: the y position component
//   - z: the z position component
//
// Returns:
//   - LightBuilderOption: a function that applies the position option to a lightImpl
func WithPosition(x, y, z float32) LightBuilderOption {
	return func(l *lightImpl) {
		l.position = [3]float32{x, y, z}
	}
}

// WithAmbient is an option builder that sets the per-channel ambient intensity.
//
// Parameters:
//   - r, g, b: ambient intensity components
//
// Returns:
//   - LightBuilderOption: a function that applies the ambient option to a lightImpl
func WithAmbient(r, g, b float32) LightBuilderOption {
	return func(l *lightImpl) {
		l.ambient = [3]float32{r, g, b}
	}
}

// WithDiffuse is an option builder that sets the per-channel diffuse intensity.
//
// Parameters:
//   - r, g, b: diffuse intensity components
//
// Returns:
//   - LightBuilderOption: a function that applies the diffuse option to a lightImpl
func WithDiffuse(r, g, b float32) LightBuilderOption {
	return func(l *lightImpl) {
		l.diffuse = [3]float32{r, g, b}
	}
}

// WithSpecular is an option builder that sets the per-channel specular intensity.
//
// Parameters:
//   - r, g, b: specular intensity components
//
// Returns:
//   - LightBuilderOption: a function that applies the specular option to a lightImpl
func WithSpecular(r, g, b float32) LightBuilderOption {
	return func(l *lightImpl) {
		l.specular = [3]float32{r, g, b}
	}
}

// WithSpecularExponent is an option builder that sets the highlight exponent.
//
// Parameters:
//   - exponent: the specular exponent
//
// Returns:
//   - LightBuilderOption: a function that applies the exponent option to a lightImpl
func WithSpecularExponent(exponent float32) LightBuilderOption {
	return func(l *lightImpl) {
		l.specularExponent = exponent
	}
}
