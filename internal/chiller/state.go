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
	"github.com/antst/chillersim/internal/diag"
	"github.com/antst/chillersim/internal/solver"
)

// State is the mutable record of one chiller, fully overwritten on every
// evaluation. Inner solver iterations reuse it as scratch space, so callers
// must never evaluate the same chiller concurrently.
type State struct {
	EvapInletTemp  float64
	EvapOutletTemp float64
	CondInletTemp  float64
	CondOutletTemp float64

	EvapMassFlowRate float64
	CondMassFlowRate float64

	Power         float64
	QEvaporator   float64
	QCondenser    float64
	QHeatRecovery float64

	HeatRecInletTemp  float64
	HeatRecOutletTemp float64
	HeatRecMassFlow   float64

	PartLoadRatio float64
	CyclingRatio  float64
	FalseLoadRate float64

	// performance curve outputs at the evaluated point
	CapFT   float64
	EIRFT   float64
	EIRFPLR float64

	// effective condenser temperature used for curve lookups this call
	CondAvgTemp float64

	PossibleSubcooling bool

	// previous-call converged values, read when heat recovery lags the
	// condenser state by one call. Intentional lagged coupling: resolving
	// it simultaneously would need a second nested fixed point.
	PrevQCondenser     float64
	PrevQHeatRecovery  float64
	PrevCondOutletTemp float64
	PrevHeatRecOutTemp float64

	// outcome of the last condenser-temperature solve
	SolveStatus       solver.Status
	DegenerateBracket bool

	FoulingFactor float64
	SWTOffset     float64

	// per-timestep integrated quantities
	Energy             float64
	EvapEnergy         float64
	CondEnergy         float64
	FalseLoad          float64
	EnergyHeatRecovery float64
	ActualCOP          float64

	// recurring-diagnostic suppression, isolated from the physical record
	Diag *diag.Reporter
}

func newState(name string) *State {
	return &State{
		FoulingFactor: 1.0,
		Diag:          diag.NewReporter(name),
	}
}

// snapshotLagged captures the values the next evaluation is allowed to read
// as "previous call" state, before they are overwritten.
func (st *State) snapshotLagged() {
	st.PrevQCondenser = st.QCondenser
	st.PrevQHeatRecovery = st.QHeatRecovery
	st.PrevCondOutletTemp = st.CondOutletTemp
	st.PrevHeatRecOutTemp = st.HeatRecOutletTemp
}
