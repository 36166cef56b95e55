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

import "math"

// heatRecovery splits the condenser heat between the heat-recovery bundle
// and the condenser proper, reducing qCond by the recovered amount. Without
// a recovery setpoint node the split blends both streams to a common outlet
// temperature; with one it recovers just enough to reach the setpoint.
func (c *Chiller) heatRecovery(qCond *float64, condMassFlow, condInletTemp float64, qHeatRec *float64) {
	hr := c.Spec.HeatRec
	st := c.State

	inletTemp := hr.InletNode.Temp
	recFlow := hr.InletNode.MassFlowRate
	cpRec := hr.Loop.Cp
	cpCond := c.CDLoop.Cp

	qTotal := *qCond

	if hr.SetPointNode == nil {
		capRate := recFlow*cpRec + condMassFlow*cpCond
		tAvgIn := (recFlow*cpRec*inletTemp + condMassFlow*cpCond*condInletTemp) / capRate
		tAvgOut := qTotal/capRate + tAvgIn

		q := recFlow * cpRec * (tAvgOut - inletTemp)
		q = math.Max(q, 0)
		// bundle has a physical size limit
		*qHeatRec = math.Min(q, hr.MaxCapacity)
	} else {
		target := hr.SetPointNode.SetPoint(hr.Loop.DemandScheme)
		qToSetpoint := math.Max(0, recFlow*cpRec*(target-inletTemp))
		*qHeatRec = math.Min(math.Min(qTotal, qToSetpoint), hr.MaxCapacity)
	}

	// A hot recovery loop inlet shuts recovery down to protect the loop.
	if hr.InletLimitSched != nil && inletTemp > hr.InletLimitSched() {
		*qHeatRec = 0
	}

	*qCond = qTotal - *qHeatRec

	st.HeatRecInletTemp = inletTemp
	st.HeatRecMassFlow = recFlow
	if recFlow > 0 {
		st.HeatRecOutletTemp = *qHeatRec/(recFlow*cpRec) + inletTemp
	} else {
		st.HeatRecOutletTemp = inletTemp
	}
}
