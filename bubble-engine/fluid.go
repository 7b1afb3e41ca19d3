package engine

import (
	"errors"
	"fmt"
	"math"
)

// Physical constants shared by the fluid formulas.
const (
	// SurfacePressure is the ambient pressure at the reference datum.
	SurfacePressure = 101325.0 // Pa

	// Gravity is the standard gravitational acceleration.
	Gravity = 9.80665 // m/s²

	gasConstant  = 8.31446   // J/(mol·K)
	airMolarMass = 0.0289644 // kg/mol
	zeroCelsius  = 273.15
)

// MediumKind enumerates the supported ambient fluids.
type MediumKind int

const (
	Air MediumKind = iota
	Water
)

// Defaults substituted by NewMedium for parameters left at zero.
const (
	DefaultAirTemperature   = 27.0 // °C
	DefaultWaterTemperature = 18.0 // °C
	DefaultSalinity         = 10.0 // kg/m³
)

// ErrUnknownMedium is returned for medium keys outside {air, water}.
var ErrUnknownMedium = errors.New("unknown fluid medium")

// Medium is an immutable description of the ambient fluid. Density, pressure
// and viscosity are derived from it on demand; nothing is cached, so a Medium
// is safe to share between any number of readers.
type Medium struct {
	Kind        MediumKind
	Temperature float64 // °C
	Salinity    float64 // kg/m³, water only
}

// NewMedium builds a medium, substituting the kind's defaults for zero
// parameters.
func NewMedium(kind MediumKind, temperature, salinity float64) Medium {
	m := Medium{Kind: kind, Temperature: temperature, Salinity: salinity}
	if m.Temperature == 0 {
		if kind == Water {
			m.Temperature = DefaultWaterTemperature
		} else {
			m.Temperature = DefaultAirTemperature
		}
	}
	if kind == Water && m.Salinity == 0 {
		m.Salinity = DefaultSalinity
	}
	return m
}

// ParseMedium maps a configuration key onto a medium with defaults applied.
// Unknown keys fail instead of silently falling back to air.
func ParseMedium(name string) (Medium, error) {
	switch name {
	case "air":
		return NewMedium(Air, 0, 0), nil
	case "water":
		return NewMedium(Water, 0, 0), nil
	}
	return Medium{}, fmt.Errorf("%w: %q", ErrUnknownMedium, name)
}

// Density returns the fluid density in kg/m³ at the surface datum.
func (m Medium) Density() float64 {
	return m.DensityAt(SurfacePressure)
}

// DensityAt returns the fluid density in kg/m³ at the given ambient pressure.
// Air follows the ideal gas law; water uses a linear empirical fit in
// temperature and salinity and does not depend on pressure.
func (m Medium) DensityAt(pressure float64) float64 {
	if m.Kind == Water {
		return 1000 - 0.12*m.Temperature + 0.35*m.Salinity
	}
	return pressure * airMolarMass / (gasConstant * (m.Temperature + zeroCelsius))
}

// Pressure returns the ambient pressure in Pa at a meters from the surface
// datum. For air a is the altitude above the datum (barometric formula,
// negative below it); for water a is the depth below the surface, one
// atmosphere per ten meters.
func (m Medium) Pressure(a float64) float64 {
	if m.Kind == Water {
		return SurfacePressure * (1 + a/10)
	}
	return SurfacePressure * math.Pow(1-2.25577e-5*a, 5.255)
}

// Viscosity returns the dynamic viscosity in Pa·s. Unused by the
// force-balance buoyancy model; kept for a future drag model.
func (m Medium) Viscosity() float64 {
	if m.Kind == Water {
		return 0.02939 * math.Exp(507.88/(m.Temperature-149.3))
	}
	return 2.791e-7 * math.Pow(m.Temperature+zeroCelsius, 0.7355)
}
