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
	"github.com/antst/chillersim/internal/logger"
)

// Reporter tracks recurring warning classes for a single component so that a
// long run emits one detailed message per class and terse summaries after.
// Counts only ever grow; they double as the report-visible occurrence counters.
type Reporter struct {
	name   string
	counts map[string]int
}

func NewReporter(name string) *Reporter {
	return &Reporter{
		name:   name,
		counts: make(map[string]int),
	}
}

// WarnOnce records an occurrence of key and logs detail only the first time.
// Returns the updated occurrence count.
func (r *Reporter) WarnOnce(key, detail string) int {
	r.counts[key]++
	if r.counts[key] == 1 {
		logger.L().Warnf("%s: %s", r.name, detail)
	}
	return r.counts[key]
}

// WarnRecurring records an occurrence of key. The first occurrence logs
// detail at warn level, later ones a terse summary with the occurrence count
// and the offending value, demoted to debug level.
func (r *Reporter) WarnRecurring(key, detail string, value float64) int {
	r.counts[key]++
	if r.counts[key] == 1 {
		logger.L().Warnf("%s: %s", r.name, detail)
	} else {
		logger.L().Debugf("%s: %s warning continues (count=%d, last=%.4f)", r.name, key, r.counts[key], value)
	}
	return r.counts[key]
}

// Count reports how many times key occurred so far.
func (r *Reporter) Count(key string) int {
	return r.counts[key]
}
