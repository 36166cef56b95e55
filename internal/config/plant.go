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
	loopDefaultCp      = 4186.0
	loopDefaultDensity = 998.2
)

// LoopConfig describes one plant water loop. DemandScheme is
// "single_setpoint" (default) or "dual_setpoint_deadband".
type LoopConfig struct {
	DemandScheme string   `yaml:"demand_scheme"`
	Setpoint     *float64 `yaml:"setpoint,omitempty"`
	SetpointHi   *float64 `yaml:"setpoint_hi,omitempty"`
	Cp           *float64 `yaml:"cp"`
	Density      *float64 `yaml:"density"`
}

func (l *LoopConfig) FillDefaults() {
	if l.DemandScheme == "" {
		l.DemandScheme = "single_setpoint"
	}
	if l.Cp == nil {
		l.Cp = GetPTR(loopDefaultCp)
	}
	if l.Density == nil {
		l.Density = GetPTR(loopDefaultDensity)
	}
}
