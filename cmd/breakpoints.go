package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lvzhenbang/flex-layout/cli"
	"github.com/lvzhenbang/flex-layout/cli/theme"
	"github.com/lvzhenbang/flex-layout/mediaquery"
)

// NewBreakpointsCmd lists the effective breakpoint registry: the defaults
// merged with any custom breakpoints declared in flexlayout.yml.
func NewBreakpointsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "breakpoints",
		Short: "List the effective breakpoint registry",
		Long: `Shows every registered breakpoint in descending priority order,
after merging the built-in defaults with the custom breakpoints
declared in flexlayout.yml. Breakpoints listed first win when
several media queries match at once.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := cli.ResolveConfig(cmd)
			if err != nil {
				return err
			}

			reg := mediaquery.FromConfig(cfg.Media)
			items := reg.SortedItems()

			if jsonOut, _ := cmd.Flags().GetBool("json"); jsonOut {
				return printBreakpointsJSON(cmd, items)
			}

			t := theme.DefaultTheme
			maxAlias := 0
			for _, bp := range items {
				if len(bp.Alias) > maxAlias {
					maxAlias = len(bp.Alias)
				}
			}
			for _, bp := range items {
				marker := " "
				if bp.Overlapping {
					marker = "~"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %-*s  %5d  %s\n",
					t.Muted.Render(marker), maxAlias, t.Accent.Render(bp.Alias), bp.Priority, bp.MediaQuery)
			}
			return nil
		},
	}
	return cmd
}

func printBreakpointsJSON(cmd *cobra.Command, items []*mediaquery.Breakpoint) error {
	type row struct {
		Alias       string `json:"alias"`
		MediaQuery  string `json:"mediaQuery"`
		Suffix      string `json:"suffix"`
		Priority    int    `json:"priority"`
		Overlapping bool   `json:"overlapping,omitempty"`
	}
	rows := make([]row, len(items))
	for i, bp := range items {
		rows[i] = row{
			Alias:       bp.Alias,
			MediaQuery:  bp.MediaQuery,
			Suffix:      bp.Suffix,
			Priority:    bp.Priority,
			Overlapping: bp.Overlapping,
		}
	}
	data, err := json.MarshalIndent(rows, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}
