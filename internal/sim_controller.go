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

package internal

import (
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/antst/chillersim/internal/chiller"
	"github.com/antst/chillersim/internal/config"
	"github.com/antst/chillersim/internal/curves"
	"github.com/antst/chillersim/internal/faults"
	"github.com/antst/chillersim/internal/logger"
	"github.com/antst/chillersim/internal/plant"
	"github.com/antst/chillersim/internal/recorder"
	"github.com/antst/chillersim/internal/store"
	"github.com/antst/chillersim/internal/telemetry"
)

const (
	chilledWaterLoop   = "chilled_water"
	condenserWaterLoop = "condenser_water"
	heatRecoveryLoop   = "heat_recovery"
)

// SimController owns the plant model and drives it through the configured
// load profile, one synchronous step at a time.
type SimController struct {
	cfg      *config.Config
	curves   *curves.Registry
	loops    map[string]*plant.Loop
	registry *chiller.Registry
	rec      *recorder.Recorder
	db       *store.Store
	pub      *telemetry.Publisher
}

func NewSimController() *SimController {
	return newSimController(config.Get())
}

func newSimController(cfg *config.Config) *SimController {
	c := &SimController{
		cfg:      cfg,
		curves:   curves.NewRegistry(),
		loops:    make(map[string]*plant.Loop),
		registry: chiller.NewRegistry(),
		rec:      recorder.New(),
	}

	c.initCurves()
	c.initLoops()
	c.initChillers()
	c.initOutputs()

	return c
}

func (c *SimController) initCurves() {
	for _, cc := range c.cfg.Curves {
		kind, err := curves.ParseKind(cc.Kind)
		if err != nil {
			logger.L().Panicf("Curve `%s`: %v", cc.Name, err)
		}
		lim := curves.Limits{
			XMin: cc.Limits.XMin, XMax: cc.Limits.XMax,
			YMin: cc.Limits.YMin, YMax: cc.Limits.YMax,
		}
		if cc.Limits.ZMin != nil {
			lim.ZMin = *cc.Limits.ZMin
		}
		if cc.Limits.ZMax != nil {
			lim.ZMax = *cc.Limits.ZMax
		}
		cv, err := curves.New(cc.Name, kind, cc.Coefficients, lim)
		if err != nil {
			logger.L().Panicf("Curve `%s`: %v", cc.Name, err)
		}
		if err := c.curves.Add(cv); err != nil {
			logger.L().Panicf("Curve `%s`: %v", cc.Name, err)
		}
	}
}

func (c *SimController) initLoops() {
	for _, name := range []string{chilledWaterLoop, condenserWaterLoop, heatRecoveryLoop} {
		loop := plant.NewLoop(name)
		if lc, ok := c.cfg.Loops[name]; ok {
			if lc.DemandScheme == "dual_setpoint_deadband" {
				loop.DemandScheme = plant.DualSetpointDeadband
			}
			if lc.Setpoint != nil {
				loop.SetPointNode.TempSetPoint = *lc.Setpoint
			}
			if lc.SetpointHi != nil {
				loop.SetPointNode.TempSetPointHi = *lc.SetpointHi
			}
			loop.Cp = *lc.Cp
			loop.Density = *lc.Density
		}
		c.loops[name] = loop
	}
}

func (c *SimController) initChillers() {
	if len(c.cfg.Chillers) == 0 {
		logger.L().Panic("No chillers configured")
	}
	for _, cc := range c.cfg.Chillers {
		ch, err := c.buildChiller(cc)
		if err != nil {
			logger.L().Panicf("Chiller `%s`: %v", cc.Name, err)
		}
		if _, err := c.registry.Add(ch); err != nil {
			logger.L().Panicf("Chiller `%s`: %v", cc.Name, err)
		}
	}
}

func (c *SimController) buildChiller(cc *config.ChillerConfig) (*chiller.Chiller, error) {
	capFT, err := c.curves.Get(cc.CapFTCurve)
	if err != nil {
		return nil, errors.Wrap(err, "cap_ft_curve")
	}
	eirFT, err := c.curves.Get(cc.EIRFTCurve)
	if err != nil {
		return nil, errors.Wrap(err, "eir_ft_curve")
	}
	eirFPLR, err := c.curves.Get(cc.EIRFPLRCurve)
	if err != nil {
		return nil, errors.Wrap(err, "eir_fplr_curve")
	}

	variant, err := chiller.ParsePartLoadCurveVariant(cc.PartLoadCurveVariant)
	if err != nil {
		return nil, err
	}
	flowMode, err := chiller.ParseFlowMode(cc.FlowMode)
	if err != nil {
		return nil, err
	}
	condFlowCtrl, err := chiller.ParseFlowControl(cc.CondenserFlowControl)
	if err != nil {
		return nil, err
	}

	sp := &chiller.Spec{
		Name:           cc.Name,
		RefCap:         cc.ReferenceCapacity,
		RefCOP:         cc.ReferenceCOP,
		TempRefEvapOut: cc.RefEvapOutTemp,
		TempRefCondOut: cc.RefCondOutTemp,

		CapFT:   capFT,
		EIRFT:   eirFT,
		EIRFPLR: eirFPLR,

		PLRCurveVariant: variant,
		FlowMode:        flowMode,

		MinPLR:         *cc.MinPLR,
		MaxPLR:         *cc.MaxPLR,
		OptPLR:         *cc.OptPLR,
		MinUnloadRatio: *cc.MinUnloadRatio,

		CompPowerToCondenserFrac: *cc.CompPowerToCondenserFrac,
		TempLowLimitEvapOut:      *cc.TempLowLimitEvapOut,
		SizFac:                   *cc.SizingFactor,

		EvapVolFlowRate: *cc.EvapVolFlowRate,
		CondVolFlowRate: *cc.CondVolFlowRate,
	}

	if fc := cc.Faults; fc != nil {
		sp.Fouling = faults.ConstantFouling(*fc.FoulingFactor)
		sp.SWTSensor = faults.ConstantSWTOffset(*fc.SWTOffset)
	}

	if hc := cc.HeatRecovery; hc != nil {
		hr := &chiller.HeatRecovery{
			CapacityFraction: *hc.CapacityFraction,
			DesignVolFlow:    *hc.DesignVolFlow,
			Loop:             c.loops[heatRecoveryLoop],
			InletNode:        plant.NewNode(),
			OutletNode:       plant.NewNode(),
		}
		if hc.Setpoint != nil {
			hr.SetPointNode = plant.NewNode()
			hr.SetPointNode.TempSetPoint = *hc.Setpoint
		}
		if hc.InletHighLimit != nil {
			limit := *hc.InletHighLimit
			hr.InletLimitSched = func() float64 { return limit }
		}
		sp.HeatRec = hr
	}

	cw := c.loops[chilledWaterLoop]
	cd := c.loops[condenserWaterLoop]

	ch, err := chiller.New(sp, cw, cd,
		plant.NewNode(), plant.NewNode(), plant.NewNode(), plant.NewNode())
	if err != nil {
		return nil, err
	}
	ch.CondFlowCtrl = condFlowCtrl

	// Leaving-setpoint modulation senses the setpoint on the outlet node.
	if flowMode == chiller.LeavingSetpointModulated && cw.SetPointNode.HasSetPoint(cw.DemandScheme) {
		ch.EvapOutlet.TempSetPoint = cw.SetPointNode.TempSetPoint
		ch.EvapOutlet.TempSetPointHi = cw.SetPointNode.TempSetPointHi
	}

	ch.Autosize()
	logger.L().Infof("Chiller `%s`: evap flow %.4f kg/s, cond flow %.4f kg/s",
		cc.Name, sp.EvapMassFlowRateMax, sp.CondMassFlowRateMax)

	return ch, nil
}

func (c *SimController) initOutputs() {
	if c.cfg.DBFile != "" {
		cfgYAML, err := yaml.Marshal(c.cfg)
		if err != nil {
			logger.L().Panic(err)
		}
		c.db = store.Open(c.cfg.DBFile, uuid.New().String(), string(cfgYAML))
		logger.L().Infof("Recording run `%s`", c.db.RunID())
	}
	if mc := c.cfg.Outputs.MQTT; mc != nil {
		c.pub = telemetry.NewPublisher(mc.URL, mc.TopicPrefix)
	}
}

func (c *SimController) setFlowLocks(locked bool) {
	for _, loop := range c.loops {
		loop.SetFlowLock(locked)
	}
}

// Run executes the configured profile. Each step's plant load is split across
// the chillers by optimal capacity, then every chiller gets two passes: an
// unlocked one where components request flow, and a locked one where the
// resolved flows are authoritative.
func (c *SimController) Run() {
	stepSeconds := *c.cfg.Simulation.StepSeconds
	warmupSteps := *c.cfg.Simulation.WarmupSteps

	for i, ps := range c.cfg.Profile {
		inWarmup := i < warmupSteps
		run := *ps.Run
		shares := c.registry.Dispatch(ps.Load)

		for _, ch := range c.registry.All() {
			ch.Warmup = inWarmup
			ch.EvapInlet.Temp = ps.EvapInletTemp
			ch.CondInlet.Temp = ps.CondInletTemp
			if hr := ch.Spec.HeatRec; hr != nil && ps.HeatRecInletTemp != nil {
				hr.InletNode.Temp = *ps.HeatRecInletTemp
			}
		}

		c.setFlowLocks(false)
		for j, ch := range c.registry.All() {
			ch.Control(shares[j], run, true, chiller.FlowControlActive)
		}

		c.setFlowLocks(true)
		for j, ch := range c.registry.All() {
			ch.Control(shares[j], run, false, chiller.FlowControlActive)
			ch.Update(shares[j], run, stepSeconds)
		}

		if inWarmup {
			continue
		}
		for j, ch := range c.registry.All() {
			c.report(i, shares[j], ch)
		}
	}

	c.finish()
}

func (c *SimController) report(step int, load float64, ch *chiller.Chiller) {
	st := ch.State

	c.rec.Add(&recorder.Record{
		Step:           step,
		Chiller:        ch.Spec.Name,
		Load:           load,
		Power:          st.Power,
		QEvaporator:    st.QEvaporator,
		QCondenser:     st.QCondenser,
		QHeatRecovery:  st.QHeatRecovery,
		FalseLoadRate:  st.FalseLoadRate,
		EvapInletTemp:  st.EvapInletTemp,
		EvapOutletTemp: st.EvapOutletTemp,
		CondInletTemp:  st.CondInletTemp,
		CondOutletTemp: st.CondOutletTemp,
		EvapMassFlow:   st.EvapMassFlowRate,
		CondMassFlow:   st.CondMassFlowRate,
		PLR:            st.PartLoadRatio,
		CyclingFrac:    st.CyclingRatio,
		ActualCOP:      st.ActualCOP,
		SolveStatus:    st.SolveStatus.String(),
	})

	if c.db != nil {
		if err := c.db.SaveResult(&store.Result{
			Step:           step,
			Chiller:        ch.Spec.Name,
			Power:          st.Power,
			QEvaporator:    st.QEvaporator,
			QCondenser:     st.QCondenser,
			QHeatRecovery:  st.QHeatRecovery,
			FalseLoadRate:  st.FalseLoadRate,
			EvapOutletTemp: st.EvapOutletTemp,
			CondOutletTemp: st.CondOutletTemp,
			HeatRecOutTemp: st.HeatRecOutletTemp,
			EvapMassFlow:   st.EvapMassFlowRate,
			CondMassFlow:   st.CondMassFlowRate,
			PLR:            st.PartLoadRatio,
			CyclingFrac:    st.CyclingRatio,
			ActualCOP:      st.ActualCOP,
			SolveStatus:    st.SolveStatus.String(),
		}); err != nil {
			logger.L().Errorf("Failed to persist step %d for `%s`: %v", step, ch.Spec.Name, err)
		}
	}

	if c.pub != nil {
		c.pub.PublishState(ch.Spec.Name, step, st)
	}
}

func (c *SimController) finish() {
	if csv := c.cfg.Outputs.CSVFile; csv != "" && c.rec.Len() > 0 {
		if err := c.rec.Flush(csv); err != nil {
			logger.L().Errorf("Failed to write CSV: %v", err)
		} else {
			logger.L().Infof("Wrote %d records to `%s`", c.rec.Len(), csv)
		}
	}
	if c.db != nil {
		if err := c.db.Close(); err != nil {
			logger.L().Errorf("Failed to close DB: %v", err)
		}
	}
	if c.pub != nil {
		c.pub.Close()
	}
	logger.L().Info("Simulation finished")
}
