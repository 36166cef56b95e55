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

	"github.com/antst/chillersim/internal/faults"
	"github.com/antst/chillersim/internal/logger"
	"github.com/antst/chillersim/internal/plant"
)

// smallLoad is the threshold below which a false-load rate is treated as
// numerical noise, W.
const smallLoad = 100.0

// fallback reference lift when the configured reference temperatures
// degenerate, K (35 minus 6.67 degC reference conditions).
const fallbackRefLift = 35.0 - 6.67

// fallback reference COP when fouling drives the configured one to zero.
const fallbackRefCOP = 5.5

const keyEvapDeltaTZero = "evap-delta-t-zero"

// initFlows places this call's flow requests on both loops before the
// evaluation reads the granted rates back off the inlet nodes. A running
// chiller asks for its design flows; an idle one releases them, except on a
// series-active branch, which keeps whatever flows past it. Locked loops
// ignore the request and keep the resolved flow.
func (c *Chiller) initFlows(load float64, runFlag bool, flowCtrl FlowControl) {
	sp := c.Spec

	var evapReq, condReq float64
	if load < 0 && runFlag {
		evapReq = sp.EvapMassFlowRateMax
		condReq = sp.CondMassFlowRateMax
	} else {
		if flowCtrl == FlowControlSeriesActive {
			evapReq = c.EvapInlet.MassFlowRate
		}
		if c.CondFlowCtrl == FlowControlSeriesActive {
			condReq = c.CondInlet.MassFlowRate
		}
	}

	c.CWLoop.ResolveFlow(evapReq, c.EvapInlet, c.EvapOutlet)
	c.CDLoop.ResolveFlow(condReq, c.CondInlet, c.CondOutlet)
}

// calcSinglePoint evaluates the chiller once at an assumed leaving condenser
// water temperature, overwriting State with the resulting operating point.
// load is negative for cooling demand and is written back when the chiller
// cannot or need not meet it.
func (c *Chiller) calcSinglePoint(load *float64, runFlag bool, flowCtrl FlowControl, assumedCondOutTemp float64) {
	sp := c.Spec
	st := c.State

	st.snapshotLagged()

	st.PartLoadRatio = 0
	st.CyclingRatio = 0
	st.FalseLoadRate = 0
	st.EvapMassFlowRate = 0
	st.CondMassFlowRate = 0
	st.Power = 0
	st.QCondenser = 0
	st.QEvaporator = 0
	st.QHeatRecovery = 0
	st.CapFT = 0
	st.EIRFT = 0
	st.EIRFPLR = 0

	condInletTemp := c.CondInlet.Temp

	// No demand or commanded off: zero everything and leave. A
	// series-active branch (or locked flow) still passes inlet flow
	// through so the flow resolver does not shut the branch down.
	if *load >= 0 || !runFlag {
		if flowCtrl == FlowControlSeriesActive || c.CWLoop.FlowLocked() {
			st.EvapMassFlowRate = c.EvapInlet.MassFlowRate
		}
		if c.CondFlowCtrl == FlowControlSeriesActive {
			st.CondMassFlowRate = c.CondInlet.MassFlowRate
		}
		return
	}

	minPLR := sp.MinPLR
	maxPLR := sp.MaxPLR
	minUnload := sp.MinUnloadRatio
	refCap := sp.RefCap
	refCOP := sp.RefCOP
	tempLowLimit := sp.TempLowLimitEvapOut
	evapFlowMax := sp.EvapMassFlowRateMax

	st.EvapOutletTemp = c.EvapOutlet.Temp

	// Fouling derates capacity and COP for this call only.
	st.FoulingFactor = 1.0
	if sp.Fouling != nil && !c.Warmup {
		st.FoulingFactor = sp.Fouling.FoulingFactor()
		refCap *= st.FoulingFactor
		refCOP *= st.FoulingFactor
	}

	// Condenser always runs at design flow; the loop decides what is granted.
	st.CondMassFlowRate = c.CDLoop.ResolveFlow(sp.CondMassFlowRateMax, c.CondInlet, c.CondOutlet)
	if st.CondMassFlowRate < plant.MassFlowTolerance {
		return
	}

	setpoint := c.evapSetPoint()

	// A biased supply-temperature sensor shifts the setpoint the control
	// actually chases, bounded by the low limit and the inlet temperature.
	st.SWTOffset = 0
	if sp.SWTSensor != nil && !c.Warmup {
		rawSetpoint := setpoint
		setpoint = math.Max(tempLowLimit, math.Min(c.EvapInlet.Temp, rawSetpoint-sp.SWTSensor.Offset()))
		st.SWTOffset = rawSetpoint - setpoint
	}

	// Effective condenser temperature for curve lookups. With active heat
	// recovery this blends last call's recovery and condenser outlet
	// temperatures, weighted by last call's heat flows.
	condAvg := assumedCondOutTemp
	if sp.HeatRec != nil && st.PrevQHeatRecovery+st.PrevQCondenser > 0 {
		condAvg = (st.PrevQHeatRecovery*st.PrevHeatRecOutTemp + st.PrevQCondenser*st.PrevCondOutletTemp) /
			(st.PrevQHeatRecovery + st.PrevQCondenser)
	}
	st.CondAvgTemp = condAvg

	st.CapFT = math.Max(0, sp.CapFT.Value(setpoint, condAvg))
	availCap := refCap * st.CapFT

	st.EvapMassFlowRate = c.EvapInlet.MassFlowRate
	if availCap <= 0 || st.EvapMassFlowRate == 0 {
		*load = 0
		return
	}

	cp := c.CWLoop.Cp

	// The dispatched load may exceed what the water loop actually carries;
	// cap it at the water-side load implied by inlet conditions.
	tempLoad := math.Max(0, c.EvapInlet.MassFlowRateMaxAvail*cp*(c.EvapInlet.Temp-setpoint))
	if math.Abs(*load) > tempLoad {
		*load = math.Copysign(tempLoad, *load)
	}

	plr := clampPLR(math.Abs(*load)/availCap, maxPLR)
	st.QEvaporator = availCap * plr
	st.PartLoadRatio = plr

	if !c.CWLoop.FlowLocked() {
		// Component still sets its own flow.
		c.calcUnlockedFlow(load, setpoint, cp, evapFlowMax, &plr)
	} else {
		// Plant already resolved flow; honor it and clamp consistently.
		c.calcLockedFlow(load, setpoint, cp, tempLowLimit, availCap, maxPLR, &plr)
		if st.EvapMassFlowRate == 0 {
			*load = 0
			return
		}
	}

	// The sensor fault is authoritative over the just-computed outlet state.
	if sp.SWTSensor != nil && !c.Warmup && st.EvapMassFlowRate > 0 {
		variableFlow := sp.FlowMode == LeavingSetpointModulated && !c.CWLoop.FlowLocked()
		faults.ApplySWT(variableFlow, st.SWTOffset, cp, c.EvapInlet.Temp,
			&st.EvapOutletTemp, &st.EvapMassFlowRate, &st.QEvaporator)
		plr = clampPLR(st.QEvaporator/availCap, maxPLR)
		st.PartLoadRatio = plr
	}

	// Below the minimum part-load ratio the machine cycles; the cycling
	// ratio is its on-fraction of the timestep.
	frac := 1.0
	if plr < minPLR {
		frac = math.Min(1, plr/minPLR)
	}
	st.CyclingRatio = frac

	// Below the minimum unloading ratio the machine false-loads: energy use
	// follows the floored ratio while the water loop only sees QEvaporator.
	plr = math.Max(plr, minUnload)
	st.PartLoadRatio = plr
	st.FalseLoadRate = availCap*plr*frac - st.QEvaporator
	if st.FalseLoadRate < smallLoad {
		st.FalseLoadRate = 0
	}

	st.EIRFT = math.Max(0, sp.EIRFT.Value(st.EvapOutletTemp, condAvg))

	switch sp.PLRCurveVariant {
	case PLRLeavingCondenserTemperature:
		st.EIRFPLR = math.Max(0, sp.EIRFPLR.Value(condAvg, plr))
	case PLRLift:
		lift := condAvg - st.EvapOutletTemp
		tdev := math.Abs(st.EvapOutletTemp - sp.TempRefEvapOut)
		refLift := sp.TempRefCondOut - sp.TempRefEvapOut
		if refLift <= 0 {
			refLift = fallbackRefLift
		}
		st.EIRFPLR = math.Max(0, sp.EIRFPLR.Value3(lift/refLift, plr, tdev/refLift))
	}

	if refCOP <= 0 {
		refCOP = fallbackRefCOP
	}
	st.Power = (availCap / refCOP) * st.EIRFPLR * st.EIRFT * frac

	st.QCondenser = st.Power*sp.CompPowerToCondenserFrac + st.QEvaporator + st.FalseLoadRate

	if st.CondMassFlowRate > plant.MassFlowTolerance {
		if sp.HeatRec != nil {
			c.heatRecovery(&st.QCondenser, st.CondMassFlowRate, condInletTemp, &st.QHeatRecovery)
		}
		st.CondOutletTemp = st.QCondenser/st.CondMassFlowRate/c.CDLoop.Cp + condInletTemp
	} else {
		// A running chiller without condenser flow is a wiring error, not
		// an operating state.
		logger.L().Panicf("%s: condenser mass flow is zero while the chiller is running; check the condenser loop wiring", sp.Name)
	}
}

// calcUnlockedFlow sets evaporator flow and outlet temperature while the
// component still owns its flow request.
func (c *Chiller) calcUnlockedFlow(load *float64, setpoint, cp, evapFlowMax float64, plr *float64) {
	sp := c.Spec
	st := c.State

	// With a component-setpoint scheme the load is consistent with the
	// setpoint, so subcooling cannot occur on the locked pass.
	st.PossibleSubcooling = !c.CompSetPointControlled

	var evapDT float64
	switch sp.FlowMode {
	case ConstantFlow, NotModulated:
		st.EvapMassFlowRate = c.CWLoop.ResolveFlow(evapFlowMax, c.EvapInlet, c.EvapOutlet)
		if st.EvapMassFlowRate != 0 {
			evapDT = st.QEvaporator / st.EvapMassFlowRate / cp
		}
		st.EvapOutletTemp = c.EvapInlet.Temp - evapDT

	case LeavingSetpointModulated:
		evapDT = c.EvapInlet.Temp - setpoint
		if evapDT != 0 {
			request := math.Max(0, st.QEvaporator/cp/evapDT)
			if request-evapFlowMax > plant.MassFlowTolerance {
				st.PossibleSubcooling = true
			}
			request = math.Min(evapFlowMax, request)
			st.EvapMassFlowRate = c.CWLoop.ResolveFlow(request, c.EvapInlet, c.EvapOutlet)
			st.EvapOutletTemp = setpoint
			st.QEvaporator = math.Max(0, st.EvapMassFlowRate*cp*evapDT)
		} else {
			// Setpoint equals inlet: flow derivation would divide by
			// zero, so request no flow and report no load.
			st.EvapMassFlowRate = c.CWLoop.ResolveFlow(0, c.EvapInlet, c.EvapOutlet)
			st.EvapOutletTemp = c.EvapInlet.Temp
			st.QEvaporator = 0
			*plr = 0
			st.PartLoadRatio = 0
			*load = 0
			if !c.Warmup {
				st.Diag.WarnRecurring(keyEvapDeltaTZero,
					"evaporator delta-T is zero in the flow calculation (inlet temperature equals the outlet setpoint)", evapDT)
			}
		}
	}
}

// calcLockedFlow derives the evaporator state from the plant-resolved flow,
// applying the low-limit, node-minimum, requested-load, and capacity clamps
// in that order. Each clamp keeps heat flow and outlet temperature
// consistent with each other.
func (c *Chiller) calcLockedFlow(load *float64, setpoint, cp, tempLowLimit, availCap, maxPLR float64, plr *float64) {
	st := c.State

	st.EvapMassFlowRate = c.CWLoop.ResolveFlow(c.EvapInlet.MassFlowRate, c.EvapInlet, c.EvapOutlet)
	if st.EvapMassFlowRate == 0 {
		return
	}

	inletTemp := c.EvapInlet.Temp

	var evapDT float64
	if st.PossibleSubcooling {
		// Outlet floats below setpoint at the full requested load.
		st.QEvaporator = math.Abs(*load)
		evapDT = st.QEvaporator / st.EvapMassFlowRate / cp
		st.EvapOutletTemp = inletTemp - evapDT
	} else {
		evapDT = inletTemp - setpoint
		st.QEvaporator = math.Max(0, st.EvapMassFlowRate*cp*evapDT)
		st.EvapOutletTemp = setpoint
	}

	if st.EvapOutletTemp < tempLowLimit {
		if inletTemp-tempLowLimit > plant.DeltaTempTol {
			st.EvapOutletTemp = tempLowLimit
		} else {
			st.EvapOutletTemp = inletTemp
		}
		evapDT = inletTemp - st.EvapOutletTemp
		st.QEvaporator = st.EvapMassFlowRate * cp * evapDT
	}

	if st.EvapOutletTemp < c.EvapOutlet.TempMin {
		if inletTemp-c.EvapOutlet.TempMin > plant.DeltaTempTol {
			st.EvapOutletTemp = c.EvapOutlet.TempMin
		} else {
			st.EvapOutletTemp = inletTemp
		}
		evapDT = inletTemp - st.EvapOutletTemp
		st.QEvaporator = st.EvapMassFlowRate * cp * evapDT
	}

	if st.QEvaporator > math.Abs(*load) {
		if st.EvapMassFlowRate > plant.MassFlowTolerance {
			st.QEvaporator = math.Abs(*load)
			evapDT = st.QEvaporator / st.EvapMassFlowRate / cp
			st.EvapOutletTemp = inletTemp - evapDT
		} else {
			st.QEvaporator = 0
			st.EvapOutletTemp = inletTemp
		}
	}

	if st.QEvaporator > availCap*maxPLR {
		if st.EvapMassFlowRate > plant.MassFlowTolerance {
			st.QEvaporator = availCap * maxPLR
			evapDT = st.QEvaporator / st.EvapMassFlowRate / cp
			// outlet is allowed to float above setpoint here
			st.EvapOutletTemp = inletTemp - evapDT
		} else {
			st.QEvaporator = 0
			st.EvapOutletTemp = inletTemp
		}
	}

	if availCap > 0 {
		*plr = clampPLR(st.QEvaporator/availCap, maxPLR)
	} else {
		*plr = 0
	}
	st.PartLoadRatio = *plr
}

func clampPLR(v, maxPLR float64) float64 {
	return math.Max(0, math.Min(v, maxPLR))
}
