package montecarlo

import (
	"fmt"
	"math"
)

// Params are the shared rule parameters, fixed between Clear calls.
type Params struct {
	Alpha float64 `yaml:"alpha"`
	Beta  float64 `yaml:"beta"`
	Gamma float64 `yaml:"gamma"`
	Mu    float64 `yaml:"mu"`
	R1    float64 `yaml:"r1"`
	R2    float64 `yaml:"r2"`
}

// Defaults returns the nearest-neighbor parameters α=0.5, β=0.8, γ=0.2.
func Defaults() Params {
	return Params{Alpha: 0.5, Beta: 0.8, Gamma: 0.2}
}

// TLDefaults returns the TL/EI parameters: α and β as Defaults,
// γ=0, μ=0.3, r1=0.3, r2=0.5.
func TLDefaults() Params {
	p := Defaults()
	p.Gamma, p.Mu, p.R1, p.R2 = 0, 0.3, 0.3, 0.5

	return p
}

// Validate rejects negative, NaN and infinite parameters.
func (p Params) Validate() error {
	for _, f := range []struct {
		name string
		v    float64
	}{
		{"alpha", p.Alpha}, {"beta", p.Beta}, {"gamma", p.Gamma},
		{"mu", p.Mu}, {"r1", p.R1}, {"r2", p.R2},
	} {
		if f.v < 0 || math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			return fmt.Errorf("Params: %s=%v: %w", f.name, f.v, ErrInvalidParams)
		}
	}

	return nil
}
