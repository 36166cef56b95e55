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

package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/antst/chillersim/internal/config"
	"github.com/antst/chillersim/internal/solver"
)

// testSimConfig builds a two-chiller plant with unit CapFT/EIRFT curves and
// EIRFPLR equal to the part-load ratio, so per-chiller power is
// RefCap/RefCOP * PLR exactly.
func testSimConfig() *config.Config {
	tempLim := config.LimitsConfig{XMin: 4, XMax: 15, YMin: 15, YMax: 45}
	baseChiller := func(name string) *config.ChillerConfig {
		return &config.ChillerConfig{
			Name:              name,
			ReferenceCapacity: 500000,
			ReferenceCOP:      5.5,
			RefEvapOutTemp:    6.67,
			RefCondOutTemp:    35.0,
			CapFTCurve:        "capft",
			EIRFTCurve:        "eirft",
			EIRFPLRCurve:      "eirfplr",
		}
	}

	small := baseChiller("small")
	small.OptPLR = config.GetPTR(0.5)

	cfg := &config.Config{
		Simulation: &config.SimulationConfig{WarmupSteps: config.GetPTR(1)},
		Outputs:    &config.OutputsConfig{},
		Curves: []*config.CurveConfig{
			{Name: "capft", Kind: "biquadratic", Coefficients: []float64{1, 0, 0, 0, 0, 0}, Limits: tempLim},
			{Name: "eirft", Kind: "biquadratic", Coefficients: []float64{1, 0, 0, 0, 0, 0}, Limits: tempLim},
			{Name: "eirfplr", Kind: "bicubic", Coefficients: []float64{0, 0, 0, 1, 0, 0, 0, 0, 0, 0},
				Limits: config.LimitsConfig{XMin: 15, XMax: 45, YMin: 0, YMax: 1}},
		},
		Loops: map[string]*config.LoopConfig{
			chilledWaterLoop: {Setpoint: config.GetPTR(6.67)},
		},
		Chillers: []*config.ChillerConfig{baseChiller("big"), small},
		Profile: []*config.ProfileStep{
			{Load: -300000, EvapInletTemp: 12.0, CondInletTemp: 29.4},
			{Load: -300000, EvapInletTemp: 12.0, CondInletTemp: 29.4},
			{Load: 0, EvapInletTemp: 12.0, CondInletTemp: 29.4},
		},
	}
	cfg.FillDefaults()
	return cfg
}

func TestSimControllerRunsProfile(t *testing.T) {
	c := newSimController(testSimConfig())
	c.Run()

	// the warmup step is skipped, both chillers recorded on the other two
	require.Equal(t, 4, c.rec.Len())
	recs := c.rec.Records()

	big, small := recs[0], recs[1]
	assert.Equal(t, 1, big.Step)
	assert.Equal(t, "big", big.Chiller)
	assert.Equal(t, "small", small.Chiller)
	assert.Equal(t, solver.Converged.String(), big.SolveStatus)

	// the plant load splits 2:1 by optimal capacity
	assert.InDelta(t, -200000.0, big.Load, 1e-9)
	assert.InDelta(t, -100000.0, small.Load, 1e-9)
	assert.InDelta(t, 0.4, big.PLR, 1e-9)
	assert.InDelta(t, 0.2, small.PLR, 1e-9)
	assert.InDelta(t, 500000.0/5.5*0.4, big.Power, 1e-6)
	assert.InDelta(t, 500000.0/5.5*0.2, small.Power, 1e-6)
	assert.InDelta(t, big.Power+big.QEvaporator, big.QCondenser, 1e-6)

	// not-modulated flow runs at the design rate, the outlet floats
	evapFlow := 500000.0 / (4186.0 * 6.67)
	assert.InDelta(t, 12.0-200000.0/(evapFlow*4186.0), big.EvapOutletTemp, 1e-6)

	// the idle final step is transparent
	idle := recs[2]
	assert.Equal(t, 2, idle.Step)
	assert.Zero(t, idle.Power)
	assert.Zero(t, idle.QEvaporator)
	assert.Equal(t, 12.0, idle.EvapOutletTemp)
}
