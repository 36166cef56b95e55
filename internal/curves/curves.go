/*
 * Copyright (c) 2024. Anton Starikov -- All Rights Reserved
 *
 * This file is part of CHILLERSIM project.
 *
 * CHILLERSIM is free software: you can redistribute it and/or modify
 * it under the terms of the GNU General Public License as the Free Software Foundation,
 * either version 3 of the License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU General Public License
 * along with this program.  If not, see <http://www.gnu.org/licenses/>.
 */

package curves

import (
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
)

// Kind selects the polynomial form of an empirical performance curve.
type Kind int

const (
	// Biquadratic is f(x,y) with 6 coefficients.
	Biquadratic Kind = iota
	// Bicubic is f(x,y) with 10 coefficients.
	Bicubic
	// ChillerPartLoadWithLift is f(x,y,z) with 12 coefficients.
	ChillerPartLoadWithLift
)

func (k Kind) String() string {
	switch k {
	case Biquadratic:
		return "biquadratic"
	case Bicubic:
		return "bicubic"
	case ChillerPartLoadWithLift:
		return "chiller_part_load_with_lift"
	}
	return "unknown"
}

func (k Kind) coefficients() int {
	switch k {
	case Biquadratic:
		return 6
	case Bicubic:
		return 10
	case ChillerPartLoadWithLift:
		return 12
	}
	return 0
}

// ParseKind maps a config string to a curve Kind.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "biquadratic":
		return Biquadratic, nil
	case "bicubic":
		return Bicubic, nil
	case "chiller_part_load_with_lift":
		return ChillerPartLoadWithLift, nil
	}
	return 0, errors.Errorf("unknown curve kind %q", s)
}

// Limits is the declared valid input domain of a curve, one min/max pair per
// independent variable. Z limits are meaningful only for three-variable kinds.
type Limits struct {
	XMin, XMax float64
	YMin, YMax float64
	ZMin, ZMax float64
}

// Curve is an immutable empirical performance curve. Inputs are clamped to
// the declared limits before evaluation; excursions are the caller's business
// to detect and report.
type Curve struct {
	name  string
	kind  Kind
	coeff []float64
	lim   Limits
}

func New(name string, kind Kind, coeff []float64, lim Limits) (*Curve, error) {
	if want := kind.coefficients(); len(coeff) != want {
		return nil, errors.Errorf("curve %q: %s needs %d coefficients, got %d", name, kind, want, len(coeff))
	}
	if lim.XMin > lim.XMax || lim.YMin > lim.YMax || lim.ZMin > lim.ZMax {
		return nil, errors.Errorf("curve %q: inverted limits", name)
	}
	c := &Curve{name: name, kind: kind, lim: lim}
	c.coeff = append(c.coeff, coeff...)
	return c, nil
}

func (c *Curve) Name() string   { return c.name }
func (c *Curve) Kind() Kind     { return c.kind }
func (c *Curve) Limits() Limits { return c.lim }

// Value evaluates a two-variable curve.
func (c *Curve) Value(x, y float64) float64 {
	return c.Value3(x, y, 0)
}

// Value3 evaluates the curve, clamping each input into the declared domain.
func (c *Curve) Value3(x, y, z float64) float64 {
	x = clamp(x, c.lim.XMin, c.lim.XMax)
	y = clamp(y, c.lim.YMin, c.lim.YMax)

	switch c.kind {
	case Biquadratic:
		return floats.Dot(c.coeff, []float64{1, x, x * x, y, y * y, x * y})
	case Bicubic:
		return floats.Dot(c.coeff, []float64{
			1, x, x * x, y, y * y, x * y,
			x * x * x, y * y * y, x * x * y, x * y * y,
		})
	case ChillerPartLoadWithLift:
		z = clamp(z, c.lim.ZMin, c.lim.ZMax)
		return floats.Dot(c.coeff, []float64{
			1, x, x * x, y, y * y, x * y,
			x * x * x, y * y * y, x * x * y, x * y * y,
			x * x * y * y, z * y * y * y,
		})
	}
	return math.NaN()
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}

// Registry is an owned, name-addressed collection of curves.
type Registry struct {
	byName map[string]*Curve
}

func NewRegistry() *Registry {
	return &Registry{byName: make(map[string]*Curve)}
}

func (r *Registry) Add(c *Curve) error {
	if _, dup := r.byName[c.name]; dup {
		return errors.Errorf("duplicate curve %q", c.name)
	}
	r.byName[c.name] = c
	return nil
}

func (r *Registry) Get(name string) (*Curve, error) {
	c, ok := r.byName[name]
	if !ok {
		return nil, errors.Errorf("curve %q is not defined", name)
	}
	return c, nil
}
