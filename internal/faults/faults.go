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

// Package faults models equipment degradation injected into an otherwise
// ideal performance model: condenser fouling that derates capacity and COP,
// and a biased supply-water-temperature sensor.
package faults

// FoulingProvider yields the current fouling factor in (0, 1]; reference
// capacity and COP are both scaled by it for the duration of one evaluation.
type FoulingProvider interface {
	FoulingFactor() float64
}

// SWTSensorProvider yields the current offset of the supply (evaporator
// outlet) water temperature sensor, degC.
type SWTSensorProvider interface {
	Offset() float64
}

// ConstantFouling is a time-invariant fouling factor.
type ConstantFouling float64

func (f ConstantFouling) FoulingFactor() float64 { return float64(f) }

// ConstantSWTOffset is a time-invariant sensor bias.
type ConstantSWTOffset float64

func (o ConstantSWTOffset) Offset() float64 { return float64(o) }

// ApplySWT overrides the evaluator's outlet state with what a chiller
// controlled off a biased sensor would actually do. The faulted outlet
// temperature is authoritative; a variable-flow chiller then re-derives its
// flow at unchanged load, a constant-flow chiller re-derives its load at
// unchanged flow.
func ApplySWT(variableFlow bool, offset, cp, inletTemp float64, outletTemp, massFlow, qEvap *float64) {
	faultedOutlet := *outletTemp - offset
	if faultedOutlet > inletTemp {
		faultedOutlet = inletTemp
	}
	*outletTemp = faultedOutlet

	if variableFlow {
		dt := inletTemp - faultedOutlet
		if dt > 0.001 {
			*massFlow = *qEvap / cp / dt
		}
	} else {
		*qEvap = *massFlow * cp * (inletTemp - faultedOutlet)
		if *qEvap < 0 {
			*qEvap = 0
		}
	}
}
