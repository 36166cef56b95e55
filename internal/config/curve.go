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

// CurveConfig declares one performance curve. Kind is one of
// "biquadratic", "bicubic" or "chiller_part_load_with_lift".
type CurveConfig struct {
	Name         string       `yaml:"name"`
	Kind         string       `yaml:"kind"`
	Coefficients []float64    `yaml:"coefficients"`
	Limits       LimitsConfig `yaml:"limits"`
}

type LimitsConfig struct {
	XMin float64  `yaml:"x_min"`
	XMax float64  `yaml:"x_max"`
	YMin float64  `yaml:"y_min"`
	YMax float64  `yaml:"y_max"`
	ZMin *float64 `yaml:"z_min,omitempty"`
	ZMax *float64 `yaml:"z_max,omitempty"`
}
