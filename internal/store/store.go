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

// Package store persists simulation runs and per-step chiller results
// to a sqlite database.
package store

import (
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/pkg/errors"

	"github.com/antst/chillersim/internal/logger"
)

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	id         TEXT PRIMARY KEY,
	started_at TIMESTAMP NOT NULL,
	config     TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS results (
	run_id           TEXT NOT NULL REFERENCES runs (id),
	step             INTEGER NOT NULL,
	chiller          TEXT NOT NULL,
	power            REAL NOT NULL,
	q_evaporator     REAL NOT NULL,
	q_condenser      REAL NOT NULL,
	q_heat_recovery  REAL NOT NULL,
	false_load_rate  REAL NOT NULL,
	evap_outlet_temp REAL NOT NULL,
	cond_outlet_temp REAL NOT NULL,
	heat_rec_out_temp REAL NOT NULL,
	evap_mass_flow   REAL NOT NULL,
	cond_mass_flow   REAL NOT NULL,
	plr              REAL NOT NULL,
	cycling_frac     REAL NOT NULL,
	actual_cop       REAL NOT NULL,
	solve_status     TEXT NOT NULL,
	PRIMARY KEY (run_id, step, chiller)
);
`

// Result is one chiller's reported state for one simulated step.
type Result struct {
	RunID          string  `db:"run_id"`
	Step           int     `db:"step"`
	Chiller        string  `db:"chiller"`
	Power          float64 `db:"power"`
	QEvaporator    float64 `db:"q_evaporator"`
	QCondenser     float64 `db:"q_condenser"`
	QHeatRecovery  float64 `db:"q_heat_recovery"`
	FalseLoadRate  float64 `db:"false_load_rate"`
	EvapOutletTemp float64 `db:"evap_outlet_temp"`
	CondOutletTemp float64 `db:"cond_outlet_temp"`
	HeatRecOutTemp float64 `db:"heat_rec_out_temp"`
	EvapMassFlow   float64 `db:"evap_mass_flow"`
	CondMassFlow   float64 `db:"cond_mass_flow"`
	PLR            float64 `db:"plr"`
	CyclingFrac    float64 `db:"cycling_frac"`
	ActualCOP      float64 `db:"actual_cop"`
	SolveStatus    string  `db:"solve_status"`
}

type Store struct {
	db    *sqlx.DB
	runID string
}

// Open opens (or creates) the sqlite database at dbFile and registers a
// new run with the given id and serialized config.
func Open(dbFile, runID, configYAML string) *Store {
	db, err := sqlx.Open("sqlite3", dbFile)
	if err != nil {
		logger.L().Panic(err)
	}

	if err := db.Ping(); err != nil {
		logger.L().Panicf("%s: %v", dbFile, err)
	}

	if _, err := db.Exec(schema); err != nil {
		logger.L().Panic(err)
	}

	if _, err := db.Exec(
		`INSERT INTO runs (id, started_at, config) VALUES (?, ?, ?)`,
		runID, time.Now().UTC(), configYAML,
	); err != nil {
		logger.L().Panic(err)
	}

	return &Store{db: db, runID: runID}
}

func (s *Store) RunID() string {
	return s.runID
}

func (s *Store) SaveResult(r *Result) error {
	r.RunID = s.runID
	_, err := s.db.NamedExec(`
		INSERT INTO results (
			run_id, step, chiller, power, q_evaporator, q_condenser,
			q_heat_recovery, false_load_rate, evap_outlet_temp,
			cond_outlet_temp, heat_rec_out_temp, evap_mass_flow,
			cond_mass_flow, plr, cycling_frac, actual_cop, solve_status
		) VALUES (
			:run_id, :step, :chiller, :power, :q_evaporator, :q_condenser,
			:q_heat_recovery, :false_load_rate, :evap_outlet_temp,
			:cond_outlet_temp, :heat_rec_out_temp, :evap_mass_flow,
			:cond_mass_flow, :plr, :cycling_frac, :actual_cop, :solve_status
		)`, r)
	return errors.Wrap(err, "save result")
}

// Results returns all stored results for this run ordered by step.
func (s *Store) Results() ([]Result, error) {
	var out []Result
	err := s.db.Select(&out,
		`SELECT * FROM results WHERE run_id = ? ORDER BY step, chiller`, s.runID)
	return out, errors.Wrap(err, "load results")
}

func (s *Store) Close() error {
	return s.db.Close()
}
