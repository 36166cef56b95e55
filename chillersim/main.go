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

package main

import (
	"github.com/antst/chillersim/internal"
	"github.com/antst/chillersim/internal/logger"
)

// Build version, overridden with flag during build.
var version = "devel"

func main() {
	logger.L().Warnf("Reformulated EIR chiller simulator, version: %+v", version)
	c := internal.NewSimController()
	c.Run()
}
