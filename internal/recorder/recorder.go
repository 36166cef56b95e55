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

// Package recorder accumulates per-step chiller records and writes them
// out as CSV.
package recorder

import (
	"os"

	"github.com/gocarina/gocsv"
	"github.com/pkg/errors"
)

type Record struct {
	Step           int     `csv:"step"`
	Chiller        string  `csv:"chiller"`
	Load           float64 `csv:"load_w"`
	Power          float64 `csv:"power_w"`
	QEvaporator    float64 `csv:"q_evaporator_w"`
	QCondenser     float64 `csv:"q_condenser_w"`
	QHeatRecovery  float64 `csv:"q_heat_recovery_w"`
	FalseLoadRate  float64 `csv:"false_load_rate_w"`
	EvapInletTemp  float64 `csv:"evap_inlet_temp_c"`
	EvapOutletTemp float64 `csv:"evap_outlet_temp_c"`
	CondInletTemp  float64 `csv:"cond_inlet_temp_c"`
	CondOutletTemp float64 `csv:"cond_outlet_temp_c"`
	EvapMassFlow   float64 `csv:"evap_mass_flow_kgs"`
	CondMassFlow   float64 `csv:"cond_mass_flow_kgs"`
	PLR            float64 `csv:"plr"`
	CyclingFrac    float64 `csv:"cycling_frac"`
	ActualCOP      float64 `csv:"actual_cop"`
	SolveStatus    string  `csv:"solve_status"`
}

type Recorder struct {
	records []*Record
}

func New() *Recorder {
	return &Recorder{}
}

func (r *Recorder) Add(rec *Record) {
	r.records = append(r.records, rec)
}

func (r *Recorder) Len() int {
	return len(r.records)
}

// Records returns the accumulated records in insertion order.
func (r *Recorder) Records() []*Record {
	return r.records
}

// Flush writes all accumulated records to path and keeps them in memory.
func (r *Recorder) Flush(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "create %s", path)
	}
	defer f.Close()

	if err := gocsv.MarshalFile(&r.records, f); err != nil {
		return errors.Wrap(err, "marshal records")
	}
	return nil
}
