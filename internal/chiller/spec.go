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
	"github.com/pkg/errors"

	"github.com/antst/chillersim/internal/curves"
	"github.com/antst/chillersim/internal/faults"
	"github.com/antst/chillersim/internal/plant"
)

// FlowMode is how the chiller manages its evaporator flow while the plant
// solver still lets components request flow.
type FlowMode int

const (
	ConstantFlow FlowMode = iota
	NotModulated
	LeavingSetpointModulated
)

func ParseFlowMode(s string) (FlowMode, error) {
	switch s {
	case "constant":
		return ConstantFlow, nil
	case "not_modulated", "":
		return NotModulated, nil
	case "leaving_setpoint_modulated":
		return LeavingSetpointModulated, nil
	}
	return 0, errors.Errorf("unknown flow mode %q", s)
}

// PartLoadCurveVariant selects the independent variables of the EIRFPLR curve.
type PartLoadCurveVariant int

const (
	// PLRLeavingCondenserTemperature: curve(leaving condenser temp, PLR).
	PLRLeavingCondenserTemperature PartLoadCurveVariant = iota
	// PLRLift: curve(normalized lift, PLR, normalized temp deviation).
	PLRLift
)

func ParsePartLoadCurveVariant(s string) (PartLoadCurveVariant, error) {
	switch s {
	case "leaving_condenser_temperature", "":
		return PLRLeavingCondenserTemperature, nil
	case "lift":
		return PLRLift, nil
	}
	return 0, errors.Errorf("unknown part-load curve variant %q", s)
}

// FlowControl is the branch-level flow control type of the component.
type FlowControl int

const (
	FlowControlActive FlowControl = iota
	FlowControlSeriesActive
)

func ParseFlowControl(s string) (FlowControl, error) {
	switch s {
	case "active", "":
		return FlowControlActive, nil
	case "series_active":
		return FlowControlSeriesActive, nil
	}
	return 0, errors.Errorf("unknown flow control %q", s)
}

// HeatRecovery describes an optional condenser heat-recovery bundle. A nil
// SetPointNode selects the temperature-blending split policy; a non-nil one
// selects setpoint tracking. InletLimitSched, when set, returns the current
// high limit on recovery inlet temperature; exceeding it shuts recovery down.
type HeatRecovery struct {
	CapacityFraction float64
	MaxCapacity      float64 // W, derived during sizing
	DesignVolFlow    float64 // m3/s

	Loop         *plant.Loop
	InletNode    *plant.Node
	OutletNode   *plant.Node
	SetPointNode *plant.Node

	InletLimitSched func() float64
}

// Spec is the immutable description of one chiller, built once from
// configuration. Performance curves are parameterized by *leaving* condenser
// water temperature, which is what forces the fixed-point solve at runtime.
type Spec struct {
	Name string

	RefCap         float64 // W
	RefCOP         float64 // W/W
	TempRefEvapOut float64 // degC
	TempRefCondOut float64 // degC

	CapFT   *curves.Curve
	EIRFT   *curves.Curve
	EIRFPLR *curves.Curve

	PLRCurveVariant PartLoadCurveVariant
	FlowMode        FlowMode

	MinPLR         float64
	MaxPLR         float64
	OptPLR         float64
	MinUnloadRatio float64

	CompPowerToCondenserFrac float64
	TempLowLimitEvapOut      float64
	SizFac                   float64

	EvapVolFlowRate float64 // m3/s, zero = autosize
	CondVolFlowRate float64 // m3/s, zero = autosize

	// derived mass flow design maxima, kg/s
	EvapMassFlowRateMax float64
	CondMassFlowRateMax float64

	HeatRec *HeatRecovery

	Fouling   faults.FoulingProvider
	SWTSensor faults.SWTSensorProvider
}

// Validate enforces the configuration-time invariants; they are never
// re-derived at runtime.
func (sp *Spec) Validate() error {
	if sp.RefCap <= 0 {
		return errors.Errorf("chiller %q: reference capacity must be positive", sp.Name)
	}
	if sp.RefCOP <= 0 {
		return errors.Errorf("chiller %q: reference COP must be positive", sp.Name)
	}
	if sp.TempRefEvapOut >= sp.TempRefCondOut {
		return errors.Errorf("chiller %q: reference evaporator outlet temperature (%.2f) must be below reference condenser outlet temperature (%.2f)",
			sp.Name, sp.TempRefEvapOut, sp.TempRefCondOut)
	}
	if sp.MinPLR > sp.MaxPLR {
		return errors.Errorf("chiller %q: minimum part-load ratio exceeds maximum", sp.Name)
	}
	if sp.MinUnloadRatio < sp.MinPLR || sp.MinUnloadRatio > sp.MaxPLR {
		return errors.Errorf("chiller %q: minimum unloading ratio must lie within [min, max] part-load ratio", sp.Name)
	}
	if sp.CompPowerToCondenserFrac < 0 || sp.CompPowerToCondenserFrac > 1 {
		return errors.Errorf("chiller %q: compressor power to condenser fraction must be within [0, 1]", sp.Name)
	}
	if sp.CapFT == nil || sp.EIRFT == nil || sp.EIRFPLR == nil {
		return errors.Errorf("chiller %q: all three performance curves are required", sp.Name)
	}
	if sp.HeatRec != nil && (sp.HeatRec.CapacityFraction <= 0 || sp.HeatRec.CapacityFraction > 1) {
		return errors.Errorf("chiller %q: heat recovery capacity fraction must be within (0, 1]", sp.Name)
	}
	return nil
}
