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

// Package chiller implements the steady-state performance model of a
// water-cooled vapor-compression chiller whose empirical curves take the
// *leaving* condenser water temperature as an independent variable. Since
// that temperature is itself an output of the energy balance, every
// evaluation solves a small fixed point over the condenser outlet
// temperature.
package chiller

import (
	"github.com/pkg/errors"

	"github.com/antst/chillersim/internal/plant"
)

// Chiller couples an immutable Spec with its mutable State and the plant
// topology it is wired into.
type Chiller struct {
	Spec  *Spec
	State *State

	CWLoop *plant.Loop // chilled water
	CDLoop *plant.Loop // condenser water

	EvapInlet  *plant.Node
	EvapOutlet *plant.Node
	CondInlet  *plant.Node
	CondOutlet *plant.Node

	// CondFlowCtrl is the branch flow control on the condenser side,
	// relevant only for the series-active idle passthrough.
	CondFlowCtrl FlowControl

	// CompSetPointControlled marks the component as driven by a
	// component-setpoint operation scheme on the chilled water loop.
	CompSetPointControlled bool

	// Warmup suppresses diagnostics and fault injection while the outer
	// simulation is still settling.
	Warmup bool
}

func New(sp *Spec, cw, cd *plant.Loop, evapIn, evapOut, condIn, condOut *plant.Node) (*Chiller, error) {
	if err := sp.Validate(); err != nil {
		return nil, err
	}
	if cw == nil || cd == nil {
		return nil, errors.Errorf("chiller %q: both chilled and condenser water loops are required", sp.Name)
	}
	return &Chiller{
		Spec:       sp,
		State:      newState(sp.Name),
		CWLoop:     cw,
		CDLoop:     cd,
		EvapInlet:  evapIn,
		EvapOutlet: evapOut,
		CondInlet:  condIn,
		CondOutlet: condOut,
	}, nil
}

// OptimalCapacity is the cooling rate at the machine's optimal part-load
// ratio, the weight used when a plant load is split across chillers.
func (c *Chiller) OptimalCapacity() float64 {
	return c.Spec.RefCap * c.Spec.OptPLR
}

// evapSetPoint resolves the evaporator outlet temperature setpoint under the
// chilled water loop's demand-calculation scheme. A component-level setpoint
// on the outlet node wins over the loop-wide one.
func (c *Chiller) evapSetPoint() float64 {
	scheme := c.CWLoop.DemandScheme
	if c.Spec.FlowMode == LeavingSetpointModulated || c.CompSetPointControlled || c.EvapOutlet.HasSetPoint(scheme) {
		return c.EvapOutlet.SetPoint(scheme)
	}
	return c.CWLoop.SetPoint()
}

// Registry is the owned collection of all chillers of a simulation,
// addressed by a stable handle obtained at configuration time.
type Registry struct {
	items  []*Chiller
	byName map[string]int
}

func NewRegistry() *Registry {
	return &Registry{byName: make(map[string]int)}
}

// Add registers a chiller and returns its handle.
func (r *Registry) Add(c *Chiller) (int, error) {
	if _, dup := r.byName[c.Spec.Name]; dup {
		return 0, errors.Errorf("duplicate chiller %q", c.Spec.Name)
	}
	r.items = append(r.items, c)
	h := len(r.items) - 1
	r.byName[c.Spec.Name] = h
	return h, nil
}

func (r *Registry) Get(handle int) *Chiller { return r.items[handle] }

func (r *Registry) Len() int { return len(r.items) }

// All returns the chillers in registration order.
func (r *Registry) All() []*Chiller { return r.items }

// Dispatch splits a plant cooling load across the registered chillers in
// proportion to their optimal capacities, returning one share per chiller in
// registration order.
func (r *Registry) Dispatch(load float64) []float64 {
	shares := make([]float64, len(r.items))
	var total float64
	for _, c := range r.items {
		total += c.OptimalCapacity()
	}
	if total <= 0 {
		return shares
	}
	for i, c := range r.items {
		shares[i] = load * c.OptimalCapacity() / total
	}
	return shares
}
