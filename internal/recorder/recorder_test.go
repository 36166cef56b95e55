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

package recorder

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gocarina/gocsv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlushWritesReadableCSV(t *testing.T) {
	r := New()
	r.Add(&Record{Step: 0, Chiller: "ch-1", Power: 54545.45, PLR: 0.6, SolveStatus: "converged"})
	r.Add(&Record{Step: 1, Chiller: "ch-1", Power: 0, PLR: 0, SolveStatus: "converged"})
	assert.Equal(t, 2, r.Len())

	path := filepath.Join(t.TempDir(), "out.csv")
	require.NoError(t, r.Flush(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "step,chiller,"))

	var back []*Record
	require.NoError(t, gocsv.UnmarshalBytes(data, &back))
	require.Len(t, back, 2)
	assert.Equal(t, "ch-1", back[0].Chiller)
	assert.Equal(t, 0.6, back[0].PLR)
	assert.Equal(t, 1, back[1].Step)
}
