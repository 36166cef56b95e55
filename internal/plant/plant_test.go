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

package plant

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNodeSetPointSingle(t *testing.T) {
	n := NewNode()
	assert.False(t, n.HasSetPoint(SingleSetpoint))

	n.TempSetPoint = 6.67
	assert.True(t, n.HasSetPoint(SingleSetpoint))
	assert.Equal(t, 6.67, n.SetPoint(SingleSetpoint))
}

func TestNodeSetPointDualUsesHighEnd(t *testing.T) {
	n := NewNode()
	assert.False(t, n.HasSetPoint(DualSetpointDeadband))

	n.TempSetPoint = 5.0
	// the low setpoint alone does not count for a dual scheme
	assert.False(t, n.HasSetPoint(DualSetpointDeadband))

	n.TempSetPointHi = 7.5
	assert.True(t, n.HasSetPoint(DualSetpointDeadband))
	assert.Equal(t, 7.5, n.SetPoint(DualSetpointDeadband))
}

func TestResolveFlowUnlockedHonorsRequestUpToMax(t *testing.T) {
	l := NewLoop("cw")
	in, out := NewNode(), NewNode()
	in.MassFlowRateMaxAvail = 10.0

	granted := l.ResolveFlow(4.0, in, out)
	assert.Equal(t, 4.0, granted)
	assert.Equal(t, 4.0, in.MassFlowRate)
	assert.Equal(t, 4.0, out.MassFlowRate)

	granted = l.ResolveFlow(25.0, in, out)
	assert.Equal(t, 10.0, granted)

	granted = l.ResolveFlow(-3.0, in, out)
	assert.Equal(t, 0.0, granted)
}

func TestResolveFlowLockedIgnoresRequest(t *testing.T) {
	l := NewLoop("cw")
	in, out := NewNode(), NewNode()
	in.MassFlowRateMaxAvail = 10.0
	in.MassFlowRate = 6.0

	l.SetFlowLock(true)
	assert.True(t, l.FlowLocked())

	granted := l.ResolveFlow(2.0, in, out)
	assert.Equal(t, 6.0, granted)
	assert.Equal(t, 6.0, out.MassFlowRate)
}

func TestLoopSetPoint(t *testing.T) {
	l := NewLoop("cw")
	l.SetPointNode.TempSetPoint = 6.67
	assert.Equal(t, 6.67, l.SetPoint())

	dual := NewLoop("cw2")
	dual.DemandScheme = DualSetpointDeadband
	dual.SetPointNode.TempSetPointHi = 8.0
	assert.Equal(t, 8.0, dual.SetPoint())
}
