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

package chiller

import (
	"math"

	"github.com/antst/chillersim/internal/solver"
)

const (
	// convergence tolerance on the condenser outlet temperature, K
	condOutTempTol = 1.0e-4
	maxSolverIter  = 500
)

const (
	keyIterLimit  = "cond-temp-iteration-limit"
	keyNoSolution = "cond-temp-no-solution"
)

// Control runs one full evaluation of the chiller for the current timestep's
// boundary conditions: it brackets the leaving condenser water temperature
// from the curves' declared domains, drives the single-point evaluator
// through a false-position search for the self-consistent value, and checks
// the converged point against every curve domain.
//
// The performance curves take the *leaving* condenser temperature as input,
// but that temperature is an output of the condenser energy balance, so we
// look for T with evaluate(T).CondOutletTemp == T.
func (c *Chiller) Control(load float64, runFlag bool, firstIteration bool, flowCtrl FlowControl) {
	st := c.State
	st.SolveStatus = solver.Converged
	st.DegenerateBracket = false

	c.initFlows(load, runFlag, flowCtrl)

	if load >= 0 || !runFlag {
		c.calcSinglePoint(&load, runFlag, flowCtrl, c.CondInlet.Temp)
		return
	}

	sp := c.Spec

	// Widest condenser-temperature window permitted by the curves. The
	// part-load curve participates only when it is parameterized by the
	// leaving condenser temperature.
	capLim := sp.CapFT.Limits()
	eirLim := sp.EIRFT.Limits()
	tMin := math.Min(capLim.YMin, eirLim.YMin)
	tMax := math.Max(capLim.YMax, eirLim.YMax)
	if sp.PLRCurveVariant == PLRLeavingCondenserTemperature {
		plrLim := sp.EIRFPLR.Limits()
		tMin = math.Min(tMin, plrLim.XMin)
		tMax = math.Max(tMax, plrLim.XMax)
	}

	// Probe both ends to see whether the residual changes sign inside the
	// window before committing to the root search.
	probe := load
	c.calcSinglePoint(&probe, runFlag, flowCtrl, tMin)
	condTempMin := st.CondOutletTemp
	probe = load
	c.calcSinglePoint(&probe, runFlag, flowCtrl, tMax)
	condTempMax := st.CondOutletTemp

	if condTempMin > tMin && condTempMax < tMax {
		residual := func(t float64) float64 {
			l := load
			c.calcSinglePoint(&l, runFlag, flowCtrl, t)
			return t - st.CondOutletTemp
		}
		_, status := solver.FalsePosition(residual, tMin, tMax, condOutTempTol, maxSolverIter)
		st.SolveStatus = status

		switch status {
		case solver.IterationLimit:
			// keep the last, non-converged evaluation
			if !c.Warmup {
				st.Diag.WarnRecurring(keyIterLimit,
					"iteration limit exceeded calculating the condenser outlet temperature; continuing with the non-converged value",
					st.CondOutletTemp)
			}
		case solver.NoBracket:
			if !c.Warmup {
				st.Diag.WarnRecurring(keyNoSolution,
					"no condenser outlet temperature solution found; using the condenser inlet temperature instead (check the part-load curve's temperature range)",
					st.CondOutletTemp)
			}
			l := load
			c.calcSinglePoint(&l, runFlag, flowCtrl, c.CondInlet.Temp)
		}
	} else {
		// The window cannot bracket a root. Evaluate at its midpoint, then
		// once more at whatever outlet temperature that produced: a single
		// fixed-point relaxation step as a best-effort approximation.
		st.DegenerateBracket = true
		l := load
		c.calcSinglePoint(&l, runFlag, flowCtrl, (tMin+tMax)/2)
		l = load
		c.calcSinglePoint(&l, runFlag, flowCtrl, st.CondOutletTemp)
	}

	c.checkCurveBoundaries(firstIteration)
}
