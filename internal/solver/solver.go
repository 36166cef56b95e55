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

// Package solver provides a bracketed scalar root finder for residual
// functions whose evaluation carries side effects: the function is guaranteed
// to have been called last at the returned abscissa, so the caller's state
// reflects the returned solution.
package solver

import "math"

type Status int

const (
	Converged Status = iota
	IterationLimit
	NoBracket
)

func (s Status) String() string {
	switch s {
	case Converged:
		return "converged"
	case IterationLimit:
		return "iteration limit exceeded"
	case NoBracket:
		return "no root bracketed"
	}
	return "unknown"
}

const smallSlope = 1.0e-10

// FalsePosition searches [x0, x1] for a root of f by the regula-falsi method.
// The interval must bracket a sign change; otherwise NoBracket is returned
// without further evaluations. On IterationLimit the last, non-converged
// estimate is returned.
func FalsePosition(f func(float64) float64, x0, x1, tol float64, maxIter int) (float64, Status) {
	y0 := f(x0)
	y1 := f(x1)
	if y0*y1 > 0 {
		return x0, NoBracket
	}

	xTemp := x0
	for i := 0; i < maxIter; i++ {
		dy := y0 - y1
		if math.Abs(dy) < smallSlope {
			if dy < 0 {
				dy = -smallSlope
			} else {
				dy = smallSlope
			}
		}
		xTemp = (y0*x1 - y1*x0) / dy
		yTemp := f(xTemp)
		if math.Abs(yTemp) <= tol {
			return xTemp, Converged
		}
		// keep the sign change inside the interval
		if yTemp*y0 < 0 {
			x1, y1 = xTemp, yTemp
		} else {
			x0, y0 = xTemp, yTemp
		}
	}
	return xTemp, IterationLimit
}
