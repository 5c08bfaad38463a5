package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"hx_rating/caseio"
	"hx_rating/exchanger"
)

// Version is the release of hx_rating.
const Version = "0.3.0"

// Cfg holds the command-line configuration.
var Cfg *viper.Viper

var options []struct {
	name, usage, shorthand string
	defaultVal             interface{}
	flagsets               []*pflag.FlagSet
}

func init() {
	options = []struct {
		name, usage, shorthand string
		defaultVal             interface{}
		flagsets               []*pflag.FlagSet
	}{
		{
			name: "config",
			usage: `
              config specifies the case file (TOML, YAML or JSON)
              describing the exchanger and its operating point.`,
			shorthand:  "c",
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "log",
			usage: `
              log specifies the logging level: debug, info, warn or error.`,
			defaultVal: "info",
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "out",
			usage: `
              out specifies a CSV file for the results. The sweep command
              writes to standard output when it is empty.`,
			shorthand:  "o",
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{rateCmd.Flags(), sweepCmd.Flags()},
		},
		{
			name: "watch",
			usage: `
              watch re-rates the case every time the case file changes,
              until interrupted.`,
			shorthand:  "w",
			defaultVal: false,
			flagsets:   []*pflag.FlagSet{rateCmd.Flags()},
		},
		{
			name: "points",
			usage: `
              points specifies a CSV file of operating points with the
              columns tube_mass_flow, outside_mass_flow,
              hot_inlet_temperature and cold_inlet_temperature. An empty
              cell keeps the value of the case.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{sweepCmd.Flags()},
		},
		{
			name: "outside-min",
			usage: `
              outside-min is the lowest outside mass flow in kg/s of a
              sweep without a points file.`,
			defaultVal: 0.0,
			flagsets:   []*pflag.FlagSet{sweepCmd.Flags()},
		},
		{
			name: "outside-max",
			usage: `
              outside-max is the highest outside mass flow in kg/s of a
              sweep without a points file.`,
			defaultVal: 0.0,
			flagsets:   []*pflag.FlagSet{sweepCmd.Flags()},
		},
		{
			name: "steps",
			usage: `
              steps is the number of evenly spaced outside mass flows of a
              sweep without a points file.`,
			defaultVal: 10,
			flagsets:   []*pflag.FlagSet{sweepCmd.Flags()},
		},
		{
			name: "workers",
			usage: `
              workers is the number of operating points solved at once.
              Zero uses one worker per processor.`,
			defaultVal: 0,
			flagsets:   []*pflag.FlagSet{sweepCmd.Flags()},
		},
	}

	Cfg = viper.New()

	// Environment variables are HXRATING_<name>, with dashes as underscores.
	Cfg.SetEnvPrefix("HXRATING")
	Cfg.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	Cfg.AutomaticEnv()

	for _, option := range options {
		for i, set := range option.flagsets {
			if i != 0 { // The flag already exists in the first set.
				set.AddFlag(option.flagsets[0].Lookup(option.name))
				continue
			}
			switch v := option.defaultVal.(type) {
			case string:
				set.StringP(option.name, option.shorthand, v, option.usage)
			case bool:
				set.BoolP(option.name, option.shorthand, v, option.usage)
			case int:
				set.IntP(option.name, option.shorthand, v, option.usage)
			case float64:
				set.Float64P(option.name, option.shorthand, v, option.usage)
			default:
				panic("invalid argument type")
			}
			Cfg.BindPFlag(option.name, set.Lookup(option.name))
		}
	}

	Root.AddCommand(versionCmd)
	Root.AddCommand(rateCmd)
	Root.AddCommand(sweepCmd)
}

// Root is the main command.
var Root = &cobra.Command{
	Use:   "hx_rating",
	Short: "Thermal and hydraulic rating of bare tube bundle heat exchangers.",
	Long: `hx_rating rates a bare tube bundle heat exchanger: tube-side convection
and pressure drop, banked-tube outside convection, overall UA and the
effectiveness-NTU heat duty with outlet temperatures.

Options can be given as command-line flags or as environment variables in the
format 'HXRATING_var', where 'var' is the name of the option with dashes
replaced by underscores. The exchanger itself is described in the case file
given with --config.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	DisableAutoGenTag: true,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Printf("hx_rating v%s\n", Version)
	},
	DisableAutoGenTag: true,
}

var rateCmd = &cobra.Command{
	Use:   "rate",
	Short: "Rate one case",
	Long: `rate solves the operating point of the case file, logs the duty, the
outlet temperatures and the pressure drops, and optionally writes one result row
to --out. With --watch the case is rated again whenever the file changes.`,
	DisableAutoGenTag: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		log, err := newLogger(cmd.ErrOrStderr(), Cfg.GetString("log"))
		if err != nil {
			return err
		}
		path, err := casePath()
		if err != nil {
			return err
		}
		out := Cfg.GetString("out")

		if !Cfg.GetBool("watch") {
			_, err := rate(path, out, log)
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return watchCase(ctx, path, log, func() error {
			_, err := rate(path, out, log)
			return err
		})
	},
}

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Rate many operating points of one case",
	Long: `sweep solves many operating points of the case file in parallel and
writes one CSV row per point. The points come from --points, or from
--outside-min, --outside-max and --steps, which span the outside mass flow.`,
	DisableAutoGenTag: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		log, err := newLogger(cmd.ErrOrStderr(), Cfg.GetString("log"))
		if err != nil {
			return err
		}
		path, err := casePath()
		if err != nil {
			return err
		}
		return sweep(cmd.Context(), path, cmd.OutOrStdout(), log)
	},
}

func casePath() (string, error) {
	path := Cfg.GetString("config")
	if path == "" {
		return "", fmt.Errorf("hx_rating: a case file must be given with --config")
	}
	return path, nil
}

func newLogger(w io.Writer, level string) (*logrus.Logger, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("hx_rating: %w", err)
	}
	log := logrus.New()
	log.SetOutput(w)
	log.SetLevel(lvl)
	return log, nil
}

// rate solves the case file at path and writes the result row to out, if given.
func rate(path, out string, log logrus.FieldLogger) (*exchanger.Result, error) {
	c, err := caseio.Read(path, log)
	if err != nil {
		return nil, err
	}
	hx, err := c.Exchanger()
	if err != nil {
		return nil, fmt.Errorf("hx_rating: case %s: %w", c.Name, err)
	}
	in, err := c.Input()
	if err != nil {
		return nil, fmt.Errorf("hx_rating: case %s: %w", c.Name, err)
	}
	res, err := hx.Solve(in)
	if err != nil {
		return nil, fmt.Errorf("hx_rating: case %s: %w", c.Name, err)
	}
	report(log, c, res)

	if out != "" {
		if err := caseio.WriteResultsFile(out, []caseio.ResultRow{caseio.NewResultRow(c.Name, 0, in, res)}); err != nil {
			return nil, err
		}
		log.WithField("file", out).Info("result written")
	}
	return res, nil
}

// sweep solves the operating points of the case file and writes the result
// CSV to --out, or to w when --out is empty.
func sweep(ctx context.Context, path string, w io.Writer, log logrus.FieldLogger) error {
	start := time.Now()

	c, err := caseio.Read(path, log)
	if err != nil {
		return err
	}
	hx, err := c.Exchanger()
	if err != nil {
		return fmt.Errorf("hx_rating: case %s: %w", c.Name, err)
	}

	var inputs []exchanger.SolveInput
	if points := Cfg.GetString("points"); points != "" {
		pp, err := caseio.ReadPointsFile(points, log)
		if err != nil {
			return err
		}
		if inputs, err = c.Inputs(pp); err != nil {
			return fmt.Errorf("hx_rating: case %s: %w", c.Name, err)
		}
	} else {
		base, err := c.Input()
		if err != nil {
			return fmt.Errorf("hx_rating: case %s: %w", c.Name, err)
		}
		inputs, err = exchanger.OutsideMassFlowSpan(base,
			Cfg.GetFloat64("outside-min"), Cfg.GetFloat64("outside-max"), Cfg.GetInt("steps"))
		if err != nil {
			return fmt.Errorf("hx_rating: case %s: %w", c.Name, err)
		}
	}

	results, err := exchanger.Sweep(ctx, hx, inputs, Cfg.GetInt("workers"))
	if err != nil {
		return fmt.Errorf("hx_rating: case %s: %w", c.Name, err)
	}
	rows, err := caseio.ResultRows(c.Name, inputs, results)
	if err != nil {
		return err
	}

	if out := Cfg.GetString("out"); out != "" {
		if err := caseio.WriteResultsFile(out, rows); err != nil {
			return err
		}
	} else if err := caseio.WriteResults(w, rows); err != nil {
		return err
	}

	log.WithFields(logrus.Fields{
		"case":    c.Name,
		"points":  len(rows),
		"elapsed": time.Since(start).Round(time.Millisecond),
	}).Info("sweep finished")
	return nil
}
