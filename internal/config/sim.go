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
	simDefaultStepSeconds = 900.0
	simDefaultWarmupSteps = 0
)

type SimulationConfig struct {
	StepSeconds *float64 `yaml:"step_seconds"`
	WarmupSteps *int     `yaml:"warmup_steps"`
}

func NewSimulationConfig() *SimulationConfig {
	cfg := &SimulationConfig{}
	cfg.FillDefaults()
	return cfg
}

func (s *SimulationConfig) FillDefaults() {
	if s.StepSeconds == nil {
		s.StepSeconds = GetPTR(simDefaultStepSeconds)
	}
	if s.WarmupSteps == nil {
		s.WarmupSteps = GetPTR(simDefaultWarmupSteps)
	}
}

type OutputsConfig struct {
	CSVFile string      `yaml:"csv_file"`
	MQTT    *MQTTConfig `yaml:"mqtt,omitempty"`
}

func NewOutputsConfig() *OutputsConfig {
	cfg := &OutputsConfig{}
	cfg.FillDefaults()
	return cfg
}

func (o *OutputsConfig) FillDefaults() {
	if o.MQTT != nil {
		o.MQTT.FillDefaults()
	}
}

type MQTTConfig struct {
	URL         string `yaml:"url"`
	TopicPrefix string `yaml:"topic_prefix"`
}

func (m *MQTTConfig) FillDefaults() {
	if m.URL == "" {
		m.URL = defaultMQTTURL
	}
	if m.TopicPrefix == "" {
		m.TopicPrefix = defaultMQTTPrefix
	}
}

// ProfileStep is one simulated timestep of boundary conditions.
// Load is the dispatched evaporator load, negative for cooling.
type ProfileStep struct {
	Load             float64  `yaml:"load"`
	EvapInletTemp    float64  `yaml:"evap_inlet_temp"`
	CondInletTemp    float64  `yaml:"cond_inlet_temp"`
	HeatRecInletTemp *float64 `yaml:"heat_rec_inlet_temp,omitempty"`
	Run              *bool    `yaml:"run"`
}

func (p *ProfileStep) FillDefaults() {
	if p.Run == nil {
		p.Run = GetPTR(true)
	}
}
