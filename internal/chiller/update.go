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

// Update publishes the evaluated state to the outlet nodes and integrates
// per-timestep energies. Off or idle, the chiller is transparent: inlet
// conditions pass through and every report field is zeroed.
func (c *Chiller) Update(load float64, runFlag bool, stepSeconds float64) {
	st := c.State
	sp := c.Spec

	st.EvapInletTemp = c.EvapInlet.Temp
	st.CondInletTemp = c.CondInlet.Temp

	if load >= 0 || !runFlag {
		c.EvapOutlet.Temp = c.EvapInlet.Temp
		c.CondOutlet.Temp = c.CondInlet.Temp

		st.PartLoadRatio = 0
		st.CyclingRatio = 0
		st.FalseLoadRate = 0
		st.FalseLoad = 0
		st.Power = 0
		st.QEvaporator = 0
		st.QCondenser = 0
		st.Energy = 0
		st.EvapEnergy = 0
		st.CondEnergy = 0
		st.EvapOutletTemp = c.EvapOutlet.Temp
		st.CondOutletTemp = c.CondOutlet.Temp
		st.ActualCOP = 0

		if sp.HeatRec != nil {
			sp.HeatRec.OutletNode.Temp = sp.HeatRec.InletNode.Temp
			sp.HeatRec.OutletNode.MassFlowRate = sp.HeatRec.InletNode.MassFlowRate
			st.QHeatRecovery = 0
			st.EnergyHeatRecovery = 0
			st.HeatRecInletTemp = sp.HeatRec.InletNode.Temp
			st.HeatRecOutletTemp = sp.HeatRec.OutletNode.Temp
			st.HeatRecMassFlow = sp.HeatRec.InletNode.MassFlowRate
		}
		return
	}

	c.EvapOutlet.Temp = st.EvapOutletTemp
	c.CondOutlet.Temp = st.CondOutletTemp

	st.FalseLoad = st.FalseLoadRate * stepSeconds
	st.Energy = st.Power * stepSeconds
	st.EvapEnergy = st.QEvaporator * stepSeconds
	st.CondEnergy = st.QCondenser * stepSeconds

	if st.Power != 0 {
		st.ActualCOP = (st.QEvaporator + st.FalseLoadRate) / st.Power
	} else {
		st.ActualCOP = 0
	}

	if sp.HeatRec != nil {
		sp.HeatRec.OutletNode.Temp = st.HeatRecOutletTemp
		sp.HeatRec.OutletNode.MassFlowRate = sp.HeatRec.InletNode.MassFlowRate
		st.EnergyHeatRecovery = st.QHeatRecovery * stepSeconds
	}
}
