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

// Package plant is a minimal in-memory model of the hydronic topology a
// chiller is attached to: water nodes, loops with a demand-calculation
// scheme, the outer solver's flow lock, and component flow resolution.
package plant

import "math"

// SensedNodeFlagValue marks a node setpoint that nothing has written yet.
const SensedNodeFlagValue = -999.0

// MassFlowTolerance is the smallest flow treated as nonzero, kg/s.
const MassFlowTolerance = 1.0e-6

// DeltaTempTol is the smallest temperature difference worth resolving, K.
const DeltaTempTol = 1.0e-4

type DemandScheme int

const (
	SingleSetpoint DemandScheme = iota
	DualSetpointDeadband
)

// Node is one water connection point. Temperatures in degC, flows in kg/s.
type Node struct {
	Temp                 float64
	TempSetPoint         float64
	TempSetPointHi       float64
	TempMin              float64
	MassFlowRate         float64
	MassFlowRateMaxAvail float64
}

func NewNode() *Node {
	return &Node{
		TempSetPoint:   SensedNodeFlagValue,
		TempSetPointHi: SensedNodeFlagValue,
		TempMin:        -math.MaxFloat64,
	}
}

// HasSetPoint reports whether a component-level setpoint has been placed on
// the node for the given demand scheme.
func (n *Node) HasSetPoint(scheme DemandScheme) bool {
	if scheme == DualSetpointDeadband {
		return n.TempSetPointHi != SensedNodeFlagValue
	}
	return n.TempSetPoint != SensedNodeFlagValue
}

// SetPoint returns the node setpoint for the given demand scheme; for a dual
// setpoint with deadband the high (cooling) setpoint governs.
func (n *Node) SetPoint(scheme DemandScheme) float64 {
	if scheme == DualSetpointDeadband {
		return n.TempSetPointHi
	}
	return n.TempSetPoint
}

// Loop is one plant loop. The working fluid's specific heat is treated as
// constant over the simulated temperature range.
type Loop struct {
	Name         string
	DemandScheme DemandScheme
	SetPointNode *Node
	Cp           float64 // J/(kg K)
	Density      float64 // kg/m3

	flowLocked bool
}

func NewLoop(name string) *Loop {
	return &Loop{
		Name:         name,
		SetPointNode: NewNode(),
		Cp:           4186.0,
		Density:      998.2,
	}
}

// FlowLocked reports whether the outer solver has finalized flows for this
// iteration.
func (l *Loop) FlowLocked() bool { return l.flowLocked }

func (l *Loop) SetFlowLock(locked bool) { l.flowLocked = locked }

// SetPoint returns the loop-wide temperature setpoint.
func (l *Loop) SetPoint() float64 {
	return l.SetPointNode.SetPoint(l.DemandScheme)
}

// ResolveFlow grants a component's flow request against the loop. While flow
// is unlocked the request is honored up to the inlet's maximum available
// rate; once locked the already-resolved inlet flow is authoritative and the
// request is ignored. Both nodes are stamped with the granted rate.
func (l *Loop) ResolveFlow(request float64, inlet, outlet *Node) float64 {
	granted := math.Max(request, 0)
	if l.flowLocked {
		granted = inlet.MassFlowRate
	} else if inlet.MassFlowRateMaxAvail > 0 {
		granted = math.Min(granted, inlet.MassFlowRateMaxAvail)
	}
	inlet.MassFlowRate = granted
	outlet.MassFlowRate = granted
	return granted
}
