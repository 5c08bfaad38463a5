package main

import (
	"fmt"
	"math"

	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/unit"

	"hx_rating/caseio"
	"hx_rating/exchanger"
)

// report logs the outcome of one rating with SI units attached.
func report(log logrus.FieldLogger, c *caseio.Case, r *exchanger.Result) {
	log.WithFields(logrus.Fields{
		"case":          c.Name,
		"arrangement":   r.FlowArrangement,
		"ua":            fmt.Sprintf("%.4g W/K", r.UA),
		"ntu":           fmt.Sprintf("%.4g", r.NTU.NTU),
		"effectiveness": fmt.Sprintf("%.4f", r.Effectiveness),
		"q":             fmt.Sprintf("%.1f", unit.Power(r.Q)),
		"hot_outlet":    fmt.Sprintf("%.2f", unit.Temperature(r.HotOutlet)),
		"cold_outlet":   fmt.Sprintf("%.2f", unit.Temperature(r.ColdOutlet)),
	}).Info("rated")

	log.WithFields(logrus.Fields{
		"case":       c.Name,
		"re_tube":    fmt.Sprintf("%.0f", r.TubeThermal.Reynolds),
		"h_inner":    fmt.Sprintf("%.1f W/(m2 K)", r.TubeThermal.Coefficient),
		"h_outer":    fmt.Sprintf("%.1f W/(m2 K)", r.OutsideThermal.Coefficient),
		"h_source":   r.OutsideThermal.Source,
		"dp_tube":    fmt.Sprintf("%.1f", unit.Pressure(r.TubeHydraulic.Total)),
		"dp_outside": fmt.Sprintf("%.1f", unit.Pressure(r.OutsideHydraulic.PressureDrop)),
		"r_wall":     fmt.Sprintf("%.3g K/W", r.Resistances.Wall),
	}).Debug("rating details")

	reportMoist(log, c.Name, "hot", c.Hot, r.Duty.HotOutletEnthalpy)
	reportMoist(log, c.Name, "cold", c.Cold, r.Duty.ColdOutletEnthalpy)
}

// reportMoist logs the outlet state of an enthalpy-tracked stream.
func reportMoist(log logrus.FieldLogger, name, side string, s caseio.StreamSpec, hOut float64) {
	if math.IsNaN(hOut) {
		return
	}
	entry := log.WithFields(logrus.Fields{
		"case":            name,
		"stream":          side,
		"outlet_enthalpy": fmt.Sprintf("%.1f J/kg", hOut),
	})
	t, dew, err := s.OutletDryBulb(hOut)
	if err != nil {
		entry.WithError(err).Info("moist air outlet")
		return
	}
	entry = entry.WithField("outlet_dry_bulb", fmt.Sprintf("%.2f", unit.Temperature(t)))
	if t < dew {
		entry.WithField("dew_point", fmt.Sprintf("%.2f", unit.Temperature(dew))).
			Warn("moist air outlet is below the inlet dew point; the dry-bulb estimate ignores condensation")
		return
	}
	entry.Info("moist air outlet")
}
