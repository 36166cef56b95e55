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

package store

import (
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveAndLoadResults(t *testing.T) {
	dbFile := filepath.Join(t.TempDir(), "run.db")
	runID := uuid.New().String()

	s := Open(dbFile, runID, "chillers: []\n")
	defer s.Close()

	assert.Equal(t, runID, s.RunID())

	for step := 0; step < 3; step++ {
		require.NoError(t, s.SaveResult(&Result{
			Step:           step,
			Chiller:        "ch-1",
			Power:          54545.45,
			QEvaporator:    300000,
			QCondenser:     354545.45,
			EvapOutletTemp: 8.0,
			CondOutletTemp: 32.76,
			PLR:            0.6,
			CyclingFrac:    1.0,
			ActualCOP:      5.5,
			SolveStatus:    "converged",
		}))
	}

	got, err := s.Results()
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, runID, got[0].RunID)
	assert.Equal(t, "ch-1", got[0].Chiller)
	assert.Equal(t, 0.6, got[1].PLR)
	assert.Equal(t, 2, got[2].Step)
}

func TestDuplicateStepIsRejected(t *testing.T) {
	s := Open(filepath.Join(t.TempDir(), "run.db"), uuid.New().String(), "")
	defer s.Close()

	r := &Result{Step: 0, Chiller: "ch-1", SolveStatus: "converged"}
	require.NoError(t, s.SaveResult(r))
	assert.Error(t, s.SaveResult(r))
}
