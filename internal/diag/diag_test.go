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

package diag

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWarnOnceCounts(t *testing.T) {
	r := NewReporter("chiller-1")

	assert.Equal(t, 0, r.Count("k"))
	assert.Equal(t, 1, r.WarnOnce("k", "detail"))
	assert.Equal(t, 2, r.WarnOnce("k", "detail"))
	assert.Equal(t, 2, r.Count("k"))
}

func TestWarnRecurringCounts(t *testing.T) {
	r := NewReporter("chiller-1")

	assert.Equal(t, 1, r.WarnRecurring("iter", "detail", 32.5))
	assert.Equal(t, 2, r.WarnRecurring("iter", "detail", 33.0))
	assert.Equal(t, 3, r.WarnRecurring("iter", "detail", 33.5))
	assert.Equal(t, 3, r.Count("iter"))
}

func TestKeysAreIndependent(t *testing.T) {
	r := NewReporter("chiller-1")

	r.WarnRecurring("a", "detail", 0)
	r.WarnRecurring("a", "detail", 0)
	r.WarnOnce("b", "detail")

	assert.Equal(t, 2, r.Count("a"))
	assert.Equal(t, 1, r.Count("b"))
	assert.Equal(t, 0, r.Count("c"))
}
