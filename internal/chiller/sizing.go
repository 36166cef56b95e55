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

// design loop temperature differences used when a flow rate has to be
// derived from reference capacity alone, K
const (
	designEvapDeltaT = 6.67
	designCondDeltaT = 5.6
)

// Autosize fills the design flow rates that were left to be derived and
// freezes the mass-flow maxima and the heat-recovery capacity limit. Runs
// once, at configuration time, before the Spec is handed to the solver.
func (c *Chiller) Autosize() {
	sp := c.Spec

	if sp.SizFac <= 0 {
		sp.SizFac = 1.0
	}

	if sp.EvapVolFlowRate <= 0 {
		sp.EvapVolFlowRate = sp.RefCap / (c.CWLoop.Density * c.CWLoop.Cp * designEvapDeltaT) * sp.SizFac
	}
	if sp.CondVolFlowRate <= 0 {
		heatRejection := sp.RefCap * (1.0 + (1.0/sp.RefCOP)*sp.CompPowerToCondenserFrac)
		sp.CondVolFlowRate = heatRejection / (c.CDLoop.Density * c.CDLoop.Cp * designCondDeltaT) * sp.SizFac
	}

	sp.EvapMassFlowRateMax = sp.EvapVolFlowRate * c.CWLoop.Density
	sp.CondMassFlowRateMax = sp.CondVolFlowRate * c.CDLoop.Density

	c.EvapInlet.MassFlowRateMaxAvail = sp.EvapMassFlowRateMax
	c.CondInlet.MassFlowRateMaxAvail = sp.CondMassFlowRateMax

	if hr := sp.HeatRec; hr != nil {
		if hr.DesignVolFlow <= 0 {
			hr.DesignVolFlow = sp.CondVolFlowRate * hr.CapacityFraction
		}
		designFlow := hr.DesignVolFlow * hr.Loop.Density
		hr.InletNode.MassFlowRate = designFlow
		hr.InletNode.MassFlowRateMaxAvail = designFlow
		hr.MaxCapacity = hr.CapacityFraction * (sp.RefCap + sp.RefCap/sp.RefCOP)
	}
}
