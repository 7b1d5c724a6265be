package light

// lightImpl is the implementation of the Light interface.
type lightImpl struct {
	position         [3]float32
	ambient          [3]float32
	diffuse          [3]float32
	specular         [3]float32
	specularExponent float32
}

// Light is a point light with per-channel Blinn-Phong coefficients.
//
// The ambient, diffuse, and specular values are RGB light intensities, not
// colors shared across terms: a light can tint its specular highlight
// differently from its diffuse contribution. The scene marshals the light
// into a uniform buffer each frame via the gpu_types helpers, transforming
// the position into eye space first.
type Light interface {
	// Position returns the world-space position of the light.
	//
	// Returns:
	//   - [3]float32: position as (x, y, z)
	Position() [3]float32

	// Ambient returns the per-channel ambient intensity.
	//
	// Returns:
	//   - [3]float32: ambient RGB intensity
	Ambient() [3]float32

	// Diffuse returns the per-channel diffuse intensity.
	//
	// Returns:
	//   - [3]float32: diffuse RGB intensity
	Diffuse() [3]float32

	// Specular returns the per-channel specular intensity.
	//
	// Returns:
	//   - [3]float32: specular RGB intensity
	Specular() [3]float32

	// SpecularExponent returns the highlight exponent. Higher values
	// concentrate the highlight into a tighter spot.
	//
	// Returns:
	//   - float32: the specular exponent
	SpecularExponent() float32

	// SetPosition sets the world-space position of the light.
	//
	// Parameters:
	//   - x, y, z: position components
	SetPosition(x, y, z float32)

	// SetAmbient sets the per-channel ambient intensity.
	//
	// Parameters:
	//   - r, g, b: ambient intensity components
	SetAmbient(r, g, b float32)

	// SetDiffuse sets the per-channel diffuse intensity.
	//
	// Parameters:
	//   - r, g, b: diffuse intensity components
	SetDiffuse(r, g, b float32)

	// SetSpecular sets the per-channel specular intensity.
	//
	// Parameters:
	//   - r, g, b: specular intensity components
	SetSpecular(r, g, b float32)

	// SetSpecularExponent sets the highlight exponent.
	//
	// Parameters:
	//   - exponent: the specular exponent
	SetSpecularExponent(exponent float32)
}

var _ Light = &lightImpl{}

// NewLight creates a new point light with sensible defaults and any provided
// options applied. Defaults: position (0, 10, 5), ambient 0.2, diffuse 0.7,
// specular 1.0 (all channels), exponent 100.
//
// Parameters:
//   - opts: variadic list of LightBuilderOption functions to configure the light
//
// Returns:
//   - Light: a new Light instance
func NewLight(opts ...LightBuilderOption) Light {
	l := &lightImpl{
		position:         [3]float32{0, 10, 5},
		ambient:          [3]float32{0.2, 0.2, 0.2},
		diffuse:          [3]float32{0.7, 0.7, 0.7},
		specular:         [3]float32{1, 1, 1},
		specularExponent: 100.0,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

func (l *lightImpl) Position() [3]float32 {
	return l.position
}

func (l *lightImpl) Ambient() [3]float32 {
	return l.ambient
}

func (l *lightImpl) Diffuse() [3]float32 {
	return l.diffuse
}

func (l *lightImpl) Specular() [3]float32 {
	return l.specular
}

func (l *lightImpl) SpecularExponent() float32 {
	return l.specularExponent
}

func (l *lightImpl) SetPosition(x, y, z float32) {
	l.position = [3]float32{x, y, z}
}

func (l *lightImpl) SetAmbient(r, g, b float32) {
	l.ambient = [3]float32{r, g, b}
}

func (l *lightImpl) SetDiffuse(r, g, b float32) {
	l.diffuse = [3]float32{r, g, b}
}

func (l *lightImpl) SetSpecular(r, g, b float32) {
	l.specular = [3]float32{r, g, b}
}

func (l *lightImpl) SetSpecularExponent(exponent float32) {
	l.specularExponent = exponent
}
