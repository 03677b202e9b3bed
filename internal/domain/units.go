package domain

import "fmt"

// ToKelvin converts a temperature with a unit token ("K", "C" or "F") to
// Kelvin. Unit tokens are passed through from callers and from record data,
// so unrecognized tokens are an error rather than a silent identity.
func ToKelvin(value float64, unit string) (float64, error) {
	switch unit {
	case "K", "":
		return value, nil
	case "C":
		return value + 273.15, nil
	case "F":
		return (value-32.0)*5.0/9.0 + 273.15, nil
	}
	return 0, fmt.Errorf("unknown temperature unit %q", unit)
}

// densityToKgM3 converts a measured density to kg/m³.
func densityToKgM3(m Measurement) (float64, error) {
	switch m.Unit {
	case "kg/m^3", "kg/m3", "":
		return m.Value, nil
	case "g/cm^3", "g/cm3", "g/mL":
		return m.Value * 1000.0, nil
	}
	return 0, fmt.Errorf("unknown density unit %q", m.Unit)
}

// kvisToM2S converts a measured kinematic viscosity to m²/s.
func kvisToM2S(m Measurement) (float64, error) {
	switch m.Unit {
	case "m^2/s", "m2/s", "":
		return m.Value, nil
	case "cSt", "mm^2/s":
		return m.Value * 1e-6, nil
	}
	return 0, fmt.Errorf("unknown viscosity unit %q", m.Unit)
}

// dvisToPaS converts a measured dynamic viscosity to Pa·s.
func dvisToPaS(m Measurement) (float64, error) {
	switch m.Unit {
	case "Pa.s", "Pa s", "kg/(m s)", "":
		return m.Value, nil
	case "mPa.s", "cP":
		return m.Value * 1e-3, nil
	case "P", "poise":
		return m.Value * 0.1, nil
	}
	return 0, fmt.Errorf("unknown viscosity unit %q", m.Unit)
}
