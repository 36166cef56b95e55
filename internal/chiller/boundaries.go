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
	"fmt"
	"math"
)

const (
	keyCapFTEvapRange = "capft-evap-outlet-range"
	keyEIRFTEvapRange = "eirft-evap-outlet-range"
	keyCapFTCondRange = "capft-cond-outlet-range"
	keyEIRFTCondRange = "eirft-cond-outlet-range"
	keyPLRCondRange   = "eirfplr-cond-outlet-range"
	keyPLRRange       = "eirfplr-plr-range"
	keyCapFTNegative  = "capft-negative"
	keyEIRFTNegative  = "eirft-negative"
	keyPLRNegative    = "eirfplr-negative"
)

// checkCurveBoundaries compares the converged operating point against every
// curve's declared valid domain and warns about excursions. Pure diagnostic:
// it never alters the converged results, and it stays quiet during warm-up,
// on the first plant iteration, and while flow is still unlocked.
func (c *Chiller) checkCurveBoundaries(firstIteration bool) {
	if firstIteration || c.Warmup || !c.CWLoop.FlowLocked() {
		return
	}

	sp := c.Spec
	st := c.State
	capLim := sp.CapFT.Limits()
	eirLim := sp.EIRFT.Limits()
	plrLim := sp.EIRFPLR.Limits()

	if st.EvapOutletTemp < capLim.XMin || st.EvapOutletTemp > capLim.XMax {
		st.Diag.WarnRecurring(keyCapFTEvapRange,
			fmt.Sprintf("evaporator outlet temperature %.2f C is outside the capacity curve's evaporator range [%.2f, %.2f] C",
				st.EvapOutletTemp, capLim.XMin, capLim.XMax),
			st.EvapOutletTemp)
	}

	if st.EvapOutletTemp < eirLim.XMin || st.EvapOutletTemp > eirLim.XMax {
		st.Diag.WarnRecurring(keyEIRFTEvapRange,
			fmt.Sprintf("evaporator outlet temperature %.2f C is outside the EIR temperature curve's evaporator range [%.2f, %.2f] C",
				st.EvapOutletTemp, eirLim.XMin, eirLim.XMax),
			st.EvapOutletTemp)
	}

	if st.CondOutletTemp < capLim.YMin || st.CondOutletTemp > capLim.YMax {
		st.Diag.WarnRecurring(keyCapFTCondRange,
			fmt.Sprintf("condenser outlet temperature %.2f C is outside the capacity curve's condenser range [%.2f, %.2f] C",
				st.CondOutletTemp, capLim.YMin, capLim.YMax),
			st.CondOutletTemp)
	}

	if st.CondOutletTemp < eirLim.YMin || st.CondOutletTemp > eirLim.YMax {
		st.Diag.WarnRecurring(keyEIRFTCondRange,
			fmt.Sprintf("condenser outlet temperature %.2f C is outside the EIR temperature curve's condenser range [%.2f, %.2f] C",
				st.CondOutletTemp, eirLim.YMin, eirLim.YMax),
			st.CondOutletTemp)
	}

	if sp.PLRCurveVariant == PLRLeavingCondenserTemperature {
		if st.CondOutletTemp < plrLim.XMin || st.CondOutletTemp > plrLim.XMax {
			st.Diag.WarnRecurring(keyPLRCondRange,
				fmt.Sprintf("condenser outlet temperature %.2f C is outside the part-load curve's temperature range [%.2f, %.2f] C",
					st.CondOutletTemp, plrLim.XMin, plrLim.XMax),
				st.CondOutletTemp)
		}
	}

	if st.PartLoadRatio < plrLim.YMin || st.PartLoadRatio > plrLim.YMax {
		st.Diag.WarnRecurring(keyPLRRange,
			fmt.Sprintf("part-load ratio %.3f is outside the part-load curve's ratio range [%.3f, %.3f]",
				st.PartLoadRatio, plrLim.YMin, plrLim.YMax),
			st.PartLoadRatio)
	}

	// Negative curve outputs are physically implausible; re-evaluate at the
	// final point and report, leaving the converged results as they are.
	capVal := sp.CapFT.Value(c.evapSetPoint(), st.CondOutletTemp)
	if capVal < 0 {
		st.Diag.WarnRecurring(keyCapFTNegative,
			fmt.Sprintf("capacity curve output is negative (%.3f) at evaporator setpoint %.1f C and condenser outlet %.1f C",
				capVal, c.evapSetPoint(), st.CondOutletTemp),
			capVal)
	}

	eirVal := sp.EIRFT.Value(st.EvapOutletTemp, st.CondOutletTemp)
	if eirVal < 0 {
		st.Diag.WarnRecurring(keyEIRFTNegative,
			fmt.Sprintf("EIR temperature curve output is negative (%.3f) at evaporator outlet %.1f C and condenser outlet %.1f C",
				eirVal, st.EvapOutletTemp, st.CondOutletTemp),
			eirVal)
	}

	var plrVal float64
	switch sp.PLRCurveVariant {
	case PLRLeavingCondenserTemperature:
		plrVal = sp.EIRFPLR.Value(st.CondOutletTemp, st.PartLoadRatio)
	case PLRLift:
		refLift := sp.TempRefCondOut - sp.TempRefEvapOut
		if refLift <= 0 {
			refLift = fallbackRefLift
		}
		lift := st.CondOutletTemp - st.EvapOutletTemp
		tdev := math.Abs(st.EvapOutletTemp - sp.TempRefEvapOut)
		plrVal = sp.EIRFPLR.Value3(lift/refLift, st.PartLoadRatio, tdev/refLift)
	}
	if plrVal < 0 {
		st.Diag.WarnRecurring(keyPLRNegative,
			fmt.Sprintf("part-load curve output is negative (%.3f) at part-load ratio %.3f and condenser outlet %.1f C",
				plrVal, st.PartLoadRatio, st.CondOutletTemp),
			plrVal)
	}
}
