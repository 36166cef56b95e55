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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var wideLimits = Limits{XMin: -100, XMax: 100, YMin: -100, YMax: 100, ZMin: -100, ZMax: 100}

func TestParseKind(t *testing.T) {
	k, err := ParseKind("biquadratic")
	require.NoError(t, err)
	assert.Equal(t, Biquadratic, k)

	k, err = ParseKind("bicubic")
	require.NoError(t, err)
	assert.Equal(t, Bicubic, k)

	k, err = ParseKind("chiller_part_load_with_lift")
	require.NoError(t, err)
	assert.Equal(t, ChillerPartLoadWithLift, k)

	_, err = ParseKind("cubic")
	assert.Error(t, err)
}

func TestNewRejectsWrongCoefficientCount(t *testing.T) {
	_, err := New("c", Biquadratic, make([]float64, 5), wideLimits)
	assert.Error(t, err)

	_, err = New("c", Bicubic, make([]float64, 6), wideLimits)
	assert.Error(t, err)

	_, err = New("c", ChillerPartLoadWithLift, make([]float64, 10), wideLimits)
	assert.Error(t, err)
}

func TestNewRejectsInvertedLimits(t *testing.T) {
	_, err := New("c", Biquadratic, make([]float64, 6), Limits{XMin: 10, XMax: 0})
	assert.Error(t, err)
}

func TestBiquadraticValue(t *testing.T) {
	// f(x,y) = 1 + 2x + 3x^2 + 4y + 5y^2 + 6xy
	c, err := New("bq", Biquadratic, []float64{1, 2, 3, 4, 5, 6}, wideLimits)
	require.NoError(t, err)

	// f(2,3) = 1 + 4 + 12 + 12 + 45 + 36 = 110
	assert.InDelta(t, 110.0, c.Value(2, 3), 1e-12)
}

func TestBicubicValue(t *testing.T) {
	// f(x,y) = x^3 + y^3 + x^2*y + x*y^2
	c, err := New("bc", Bicubic, []float64{0, 0, 0, 0, 0, 0, 1, 1, 1, 1}, wideLimits)
	require.NoError(t, err)

	// f(2,3) = 8 + 27 + 12 + 18 = 65
	assert.InDelta(t, 65.0, c.Value(2, 3), 1e-12)
}

func TestChillerPartLoadWithLiftValue(t *testing.T) {
	// last two terms: x^2*y^2 and z*y^3
	c, err := New("lift", ChillerPartLoadWithLift,
		[]float64{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1, 1}, wideLimits)
	require.NoError(t, err)

	// f(2,3,4) = 4*9 + 4*27 = 144
	assert.InDelta(t, 144.0, c.Value3(2, 3, 4), 1e-12)
}

func TestValueClampsInputsToDomain(t *testing.T) {
	// f(x,y) = x + y
	c, err := New("lin", Biquadratic, []float64{0, 1, 0, 1, 0, 0},
		Limits{XMin: 0, XMax: 10, YMin: 0, YMax: 10})
	require.NoError(t, err)

	assert.InDelta(t, 20.0, c.Value(50, 50), 1e-12)
	assert.InDelta(t, 0.0, c.Value(-50, -50), 1e-12)
	assert.InDelta(t, 15.0, c.Value(5, 12), 1e-12)
}

func TestRegistry(t *testing.T) {
	r := NewRegistry()

	c, err := New("capft", Biquadratic, make([]float64, 6), wideLimits)
	require.NoError(t, err)
	require.NoError(t, r.Add(c))

	dup, err := New("capft", Biquadratic, make([]float64, 6), wideLimits)
	require.NoError(t, err)
	assert.Error(t, r.Add(dup))

	got, err := r.Get("capft")
	require.NoError(t, err)
	assert.Same(t, c, got)

	_, err = r.Get("missing")
	assert.Error(t, err)
}
