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

package config

const (
	chillerDefaultMinPLR       = 0.1
	chillerDefaultMaxPLR       = 1.0
	chillerDefaultOptPLR       = 1.0
	chillerDefaultCondFrac     = 1.0
	chillerDefaultTempLowLimit = 2.0
	chillerDefaultSizingFactor = 1.0
)

type ChillerConfig struct {
	Name string `yaml:"name"`

	ReferenceCapacity float64 `yaml:"reference_capacity"`
	ReferenceCOP      float64 `yaml:"reference_cop"`
	RefEvapOutTemp    float64 `yaml:"ref_evap_out_temp"`
	RefCondOutTemp    float64 `yaml:"ref_cond_out_temp"`

	CapFTCurve   string `yaml:"cap_ft_curve"`
	EIRFTCurve   string `yaml:"eir_ft_curve"`
	EIRFPLRCurve string `yaml:"eir_fplr_curve"`
	// "leaving_condenser_temperature" (default) or "lift".
	PartLoadCurveVariant string `yaml:"part_load_curve_variant"`

	// "constant", "not_modulated" (default) or "leaving_setpoint_modulated".
	FlowMode string `yaml:"flow_mode"`
	// Condenser branch flow control: "active" (default) or "series_active".
	CondenserFlowControl string `yaml:"condenser_flow_control"`

	MinPLR                   *float64 `yaml:"min_plr"`
	MaxPLR                   *float64 `yaml:"max_plr"`
	OptPLR                   *float64 `yaml:"opt_plr"`
	MinUnloadRatio           *float64 `yaml:"min_unload_ratio"`
	CompPowerToCondenserFrac *float64 `yaml:"comp_power_to_condenser_frac"`
	TempLowLimitEvapOut      *float64 `yaml:"temp_low_limit_evap_out"`
	SizingFactor             *float64 `yaml:"sizing_factor"`

	// Zero or absent means autosize from the reference conditions.
	EvapVolFlowRate *float64 `yaml:"evap_vol_flow_rate"`
	CondVolFlowRate *float64 `yaml:"cond_vol_flow_rate"`

	HeatRecovery *HeatRecoveryConfig `yaml:"heat_recovery,omitempty"`
	Faults       *FaultsConfig       `yaml:"faults,omitempty"`
}

type HeatRecoveryConfig struct {
	CapacityFraction *float64 `yaml:"capacity_fraction"`
	DesignVolFlow    *float64 `yaml:"design_vol_flow"`
	Setpoint         *float64 `yaml:"setpoint,omitempty"`
	InletHighLimit   *float64 `yaml:"inlet_high_limit,omitempty"`
}

type FaultsConfig struct {
	FoulingFactor *float64 `yaml:"fouling_factor"`
	SWTOffset     *float64 `yaml:"swt_offset"`
}

func (c *ChillerConfig) FillDefaults() {
	if c.MinPLR == nil {
		c.MinPLR = GetPTR(chillerDefaultMinPLR)
	}
	if c.MaxPLR == nil {
		c.MaxPLR = GetPTR(chillerDefaultMaxPLR)
	}
	if c.OptPLR == nil {
		c.OptPLR = GetPTR(chillerDefaultOptPLR)
	}
	if c.MinUnloadRatio == nil {
		c.MinUnloadRatio = c.MinPLR
	}
	if c.CompPowerToCondenserFrac == nil {
		c.CompPowerToCondenserFrac = GetPTR(chillerDefaultCondFrac)
	}
	if c.TempLowLimitEvapOut == nil {
		c.TempLowLimitEvapOut = GetPTR(chillerDefaultTempLowLimit)
	}
	if c.SizingFactor == nil {
		c.SizingFactor = GetPTR(chillerDefaultSizingFactor)
	}
	if c.EvapVolFlowRate == nil {
		c.EvapVolFlowRate = GetPTR(0.0)
	}
	if c.CondVolFlowRate == nil {
		c.CondVolFlowRate = GetPTR(0.0)
	}
	if c.HeatRecovery != nil {
		c.HeatRecovery.FillDefaults()
	}
	if c.Faults != nil {
		c.Faults.FillDefaults()
	}
}

func (h *HeatRecoveryConfig) FillDefaults() {
	if h.CapacityFraction == nil {
		h.CapacityFraction = GetPTR(1.0)
	}
	if h.DesignVolFlow == nil {
		h.DesignVolFlow = GetPTR(0.0)
	}
}

func (f *FaultsConfig) FillDefaults() {
	if f.FoulingFactor == nil {
		f.FoulingFactor = GetPTR(1.0)
	}
	if f.SWTOffset == nil {
		f.SWTOffset = GetPTR(0.0)
	}
}
