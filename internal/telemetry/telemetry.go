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

// Package telemetry publishes per-step chiller state to an MQTT broker.
package telemetry

import (
	"encoding/json"

	"github.com/google/uuid"

	"github.com/antst/chillersim/internal/chiller"
	"github.com/antst/chillersim/internal/logger"
	"github.com/antst/chillersim/internal/safe_mqtt"
)

type Publisher struct {
	client safe_mqtt.MqttClient
	prefix string
}

type statePayload struct {
	Step           int     `json:"step"`
	Power          float64 `json:"power_w"`
	QEvaporator    float64 `json:"q_evaporator_w"`
	QCondenser     float64 `json:"q_condenser_w"`
	QHeatRecovery  float64 `json:"q_heat_recovery_w"`
	EvapOutletTemp float64 `json:"evap_outlet_temp_c"`
	CondOutletTemp float64 `json:"cond_outlet_temp_c"`
	EvapMassFlow   float64 `json:"evap_mass_flow_kgs"`
	CondMassFlow   float64 `json:"cond_mass_flow_kgs"`
	PLR            float64 `json:"plr"`
	CyclingFrac    float64 `json:"cycling_frac"`
	ActualCOP      float64 `json:"actual_cop"`
}

func NewPublisher(url, prefix string) *Publisher {
	client := safe_mqtt.InitMQTTClient(url, "chillersim-"+uuid.New().String())
	return &Publisher{client: client, prefix: prefix}
}

// PublishState sends the chiller's reported state for one step under
// <prefix>/<chiller>/state.
func (p *Publisher) PublishState(name string, step int, st *chiller.State) {
	payload := statePayload{
		Step:           step,
		Power:          st.Power,
		QEvaporator:    st.QEvaporator,
		QCondenser:     st.QCondenser,
		QHeatRecovery:  st.QHeatRecovery,
		EvapOutletTemp: st.EvapOutletTemp,
		CondOutletTemp: st.CondOutletTemp,
		EvapMassFlow:   st.EvapMassFlowRate,
		CondMassFlow:   st.CondMassFlowRate,
		PLR:            st.PartLoadRatio,
		CyclingFrac:    st.CyclingRatio,
		ActualCOP:      st.ActualCOP,
	}

	data, err := json.Marshal(&payload)
	if err != nil {
		logger.L().Errorf("Failed to marshal state for %s: %v", name, err)
		return
	}

	p.client.SafePublish(p.prefix+"/"+name+"/state", 1, false, data)
}

func (p *Publisher) Close() {
	p.client.Disconnect(250)
}
