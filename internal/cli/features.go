package cli

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sweengineeringlabs/eprocurement-sub002/internal/features"
	"github.com/sweengineeringlabs/eprocurement-sub002/internal/router"
)

// featureRow is one line of the features listing.
type featureRow struct {
	Name   string         `json:"name"`
	Title  string         `json:"title"`
	Items  int            `json:"items"`
	Counts map[string]int `json:"counts"`
	Routes []string       `json:"routes"`
}

func newFeaturesCmd(a *app) *cobra.Command {
	var by string
	cmd := &cobra.Command{
		Use:   "features",
		Short: "List features with their item counts and routes",
		Long: `Features loads every feature and reports how many items it holds,
broken down by a key field, and the routes that mount it.

Example:
  eproc features
  eproc features --by category_id
  eproc features --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := a.workspace(cmd.Context(), router.NewMemoryHistory(a.cfg.EffectiveRoutePrefix()))
			if err != nil {
				return err
			}
			defer ws.Close()

			patterns := ws.Router().Table().Routes()
			prefix := strings.TrimSuffix(a.cfg.EffectiveRoutePrefix(), "/")

			var rows []featureRow
			for _, info := range features.All() {
				f, err := open(cmd.Context(), ws, info.Name)
				if err != nil {
					return err
				}
				row := featureRow{
					Name:   info.Name,
					Title:  info.Title,
					Items:  f.Summary().Total,
					Counts: f.CountBy(by),
				}
				for _, k := range info.Kinds {
					i := slices.IndexFunc(patterns, func(p router.Pattern) bool { return p.Kind == k })
					if i >= 0 {
						row.Routes = append(row.Routes, prefix+patterns[i].String())
					}
				}
				rows = append(rows, row)
			}

			out := cmd.OutOrStdout()
			if a.flags.jsonMode {
				return writeJSON(out, rows)
			}
			table := make([][]string, 0, len(rows))
			for _, r := range rows {
				route := "-"
				if len(r.Routes) > 0 {
					route = r.Routes[0]
				}
				table = append(table, []string{r.Name, r.Title, fmt.Sprint(r.Items), formatCounts(r.Counts), route})
			}
			return writeTable(out, []string{"FEATURE", "TITLE", "ITEMS", strings.ToUpper(by), "ROUTE"}, table)
		},
	}
	cmd.Flags().StringVar(&by, "by", "status", "key field to break counts down by")
	return cmd
}

// formatCounts renders counts as "a=1 b=2" in key order.
func formatCounts(counts map[string]int) string {
	if len(counts) == 0 {
		return "-"
	}
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%s=%d", k, counts[k])
	}
	return strings.Join(parts, " ")
}
