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

package faults

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const cp = 4186.0

func TestApplySWTConstantFlowRederivesLoad(t *testing.T) {
	outlet := 8.0
	flow := 10.0
	q := 10.0 * cp * 4.0 // inlet 12, outlet 8

	ApplySWT(false, 1.0, cp, 12.0, &outlet, &flow, &q)

	// positive offset makes the control overcool by one degree
	assert.InDelta(t, 7.0, outlet, 1e-12)
	assert.Equal(t, 10.0, flow)
	assert.InDelta(t, 10.0*cp*5.0, q, 1e-9)
}

func TestApplySWTVariableFlowRederivesFlow(t *testing.T) {
	outlet := 8.0
	flow := 10.0
	q := 10.0 * cp * 4.0

	ApplySWT(true, 1.0, cp, 12.0, &outlet, &flow, &q)

	assert.InDelta(t, 7.0, outlet, 1e-12)
	assert.InDelta(t, q/cp/5.0, flow, 1e-9)
	assert.InDelta(t, 10.0*cp*4.0, q, 1e-9)
}

func TestApplySWTFaultedOutletCappedAtInlet(t *testing.T) {
	outlet := 11.5
	flow := 10.0
	q := 10.0 * cp * 0.5

	// negative offset pushes the faulted outlet above the inlet
	ApplySWT(false, -2.0, cp, 12.0, &outlet, &flow, &q)

	assert.InDelta(t, 12.0, outlet, 1e-12)
	assert.InDelta(t, 0.0, q, 1e-9)
}

func TestConstantProviders(t *testing.T) {
	assert.Equal(t, 0.85, ConstantFouling(0.85).FoulingFactor())
	assert.Equal(t, 1.5, ConstantSWTOffset(1.5).Offset())
}
