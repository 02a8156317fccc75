package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/lvzhenbang/flex-layout/cli"
	"github.com/lvzhenbang/flex-layout/cli/theme"
	"github.com/lvzhenbang/flex-layout/config"
	"github.com/lvzhenbang/flex-layout/errors"
	"github.com/lvzhenbang/flex-layout/logging"
	"github.com/lvzhenbang/flex-layout/mediaquery"
)

// scenario is a replayable sequence of media change notifications,
// loaded from a YAML file.
type scenario struct {
	Description string          `yaml:"description"`
	Events      []scenarioEvent `yaml:"events"`
}

type scenarioEvent struct {
	// Either a registered alias or a raw media query. An alias is
	// resolved against the effective registry before replay.
	Alias   string `yaml:"alias"`
	Query   string `yaml:"query"`
	Matches bool   `yaml:"matches"`
}

// consoleTarget prints each activation set and style pass to stdout,
// standing in for a real layout engine during simulation.
type consoleTarget struct {
	t          *theme.Theme
	styleCalls int
}

func (c *consoleTarget) SetActivatedBreakpoints(bps []*mediaquery.Breakpoint) {
	aliases := make([]string, len(bps))
	for i, bp := range bps {
		aliases[i] = bp.Alias
	}
	label := strings.Join(aliases, ", ")
	if label == "" {
		label = "(none)"
	}
	fmt.Printf("  %s %s\n", c.t.Info.Render("activate"), label)
}

func (c *consoleTarget) UpdateStyles() {
	c.styleCalls++
	fmt.Printf("  %s pass %d\n", c.t.Muted.Render("restyle"), c.styleCalls)
}

// NewSimulateCmd replays a scenario file through the dispatcher and
// print hook, printing every activation the layout target would see.
func NewSimulateCmd() *cobra.Command {
	var watch bool

	cmd := &cobra.Command{
		Use:   "simulate <scenario.yml>",
		Short: "Replay a media change scenario through the print hook",
		Long: `Reads a scenario file describing a sequence of media change events
and replays it through the dispatcher with print interception
installed. Each event names a registered breakpoint alias or a raw
media query plus whether it matched. Print events ("print", or any
query starting with "print") trigger the print activation queue;
everything else flows through to the simulated layout target.`,
		Example: `  flexlayout simulate scenario.yml
  flexlayout simulate scenario.yml --watch`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logging.NewLogger("simulate")
			if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
				log.Logger.SetLevel(logrus.DebugLevel)
			}

			cfg, cfgPath, err := cli.ResolveConfig(cmd)
			if err != nil {
				return err
			}

			run := func(cfg *config.Config) error {
				return runScenario(cfg, args[0])
			}
			if err := run(cfg); err != nil {
				return err
			}

			if !watch {
				return nil
			}
			if cfgPath == "" {
				return errors.New(errors.ErrCodeConfigNotFound,
					"--watch requires a config file on disk")
			}

			w, err := config.NewWatcher(cfgPath, 0, log, func(name string) {
				fresh, err := config.Load(cfgPath)
				if err != nil {
					log.WithError(err).Warn("Config reload failed, keeping previous run")
					return
				}
				fmt.Printf("\n%s %s changed, replaying\n",
					theme.DefaultTheme.Warning.Render("⟳"), name)
				if err := run(fresh); err != nil {
					log.WithError(err).Error("Replay failed")
				}
			})
			if err != nil {
				return err
			}
			defer w.Close()

			fmt.Printf("\n%s watching %s for changes (ctrl-c to stop)\n",
				theme.DefaultTheme.Muted.Render("…"), cfgPath)
			w.Start(cmd.Context())
			return nil
		},
	}

	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "Replay the scenario whenever the config file changes")
	return cmd
}

func runScenario(cfg *config.Config, path string) error {
	sc, err := loadScenario(path)
	if err != nil {
		return err
	}

	log := logging.NewLogger("simulate")
	reg := mediaquery.FromConfig(cfg.Media)
	hook := mediaquery.NewPrintHook(reg, cfg.Media.PrintWithBreakpoints, log)

	t := theme.DefaultTheme
	target := &consoleTarget{t: t}

	d := mediaquery.NewDispatcher(log)
	d.AddFilter(hook.Intercept(target))
	d.Subscribe(func(e mediaquery.MediaChange) {
		fmt.Printf("  %s %s\n", t.Success.Render("deliver"), e.MediaQuery)
	})

	if sc.Description != "" {
		fmt.Println(t.Title.Render(sc.Description))
	}
	for i, ev := range sc.Events {
		query := ev.Query
		if query == "" && ev.Alias != "" {
			bp := reg.FindByAlias(ev.Alias)
			if bp == nil {
				return errors.BreakpointNotFound(ev.Alias)
			}
			query = bp.MediaQuery
		}
		change := mediaquery.NewMediaChange(ev.Matches, query)
		verb := "deactivate"
		if ev.Matches {
			verb = "activate"
		}
		fmt.Printf("%s event %d: %s %q\n", t.Bold.Render("▸"), i+1, verb, change.MediaQuery)
		d.Send(change)
	}

	aliases := hook.PrintAliases()
	if len(aliases) > 0 {
		fmt.Printf("\n%s print aliases: %s\n", t.Muted.Render("ℹ"), strings.Join(aliases, ", "))
	}
	return nil
}

func loadScenario(path string) (*scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.ScenarioNotFound(path)
	}
	var sc scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, errors.ScenarioInvalid(path, err)
	}
	if len(sc.Events) == 0 {
		return nil, errors.New(errors.ErrCodeScenarioInvalid,
			fmt.Sprintf("scenario %s declares no events", path))
	}
	for i, ev := range sc.Events {
		if ev.Alias == "" && ev.Query == "" {
			return nil, errors.New(errors.ErrCodeScenarioInvalid,
				fmt.Sprintf("event %d needs an alias or a query", i+1))
		}
	}
	return &sc, nil
}
