package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sweengineeringlabs/eprocurement-sub002/internal/features"
	"github.com/sweengineeringlabs/eprocurement-sub002/internal/router"
)

// routeInfo describes one resolved route.
type routeInfo struct {
	Kind    string `json:"kind"`
	ID      string `json:"id,omitempty"`
	Path    string `json:"path"`
	Href    string `json:"href"`
	Feature string `json:"feature,omitempty"`
}

func describe(r *router.Router, rt router.Route) routeInfo {
	info := routeInfo{
		Kind: rt.Kind.String(),
		ID:   rt.ID,
		Path: r.Path(rt),
		Href: r.Href(rt),
	}
	if f, ok := features.ForKind(rt.Kind); ok {
		info.Feature = f.Name
	}
	return info
}

func newRoutesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "routes",
		Short: "Print the route table in match order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			r, _ := a.newRouter(cmd.Context(), a.cfg.EffectiveRoutePrefix())
			prefix := strings.TrimSuffix(a.cfg.EffectiveRoutePrefix(), "/")

			type row struct {
				Kind    string `json:"kind"`
				Pattern string `json:"pattern"`
				Feature string `json:"feature,omitempty"`
			}
			var rows []row
			for _, p := range r.Table().Routes() {
				rw := row{Kind: p.Kind.String(), Pattern: prefix + p.String()}
				if f, ok := features.ForKind(p.Kind); ok {
					rw.Feature = f.Name
				}
				rows = append(rows, rw)
			}

			out := cmd.OutOrStdout()
			if a.flags.jsonMode {
				return writeJSON(out, rows)
			}
			table := make([][]string, len(rows))
			for i, rw := range rows {
				feature := rw.Feature
				if feature == "" {
					feature = "-"
				}
				table[i] = []string{rw.Kind, rw.Pattern, feature}
			}
			return writeTable(out, []string{"KIND", "PATTERN", "FEATURE"}, table)
		},
	}
}

func newRouteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "route <path>",
		Short: "Resolve a path to its route",
		Long: `Route parses a path, with or without the route prefix, and prints the
route it resolves to and that route's canonical path. Paths that match no
pattern resolve to the dashboard.

Example:
  eproc route /app/tenders/tnd-001/edit
  eproc route /catalogue/admin`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, _ := a.newRouter(cmd.Context(), args[0])
			return writeRoute(cmd, a, describe(r, r.Current()))
		},
	}
}

func newHrefCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "href <kind> [id]",
		Short: "Print the link for a route",
		Long: `Href builds the prefixed path for a route kind, as listed by "eproc routes".
Kinds with an {id} placeholder need an id.

Example:
  eproc href tenders
  eproc href contracts-edit "CT 2024/07"`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, ok := router.ParseKind(args[0])
			if !ok {
				return fmt.Errorf("unknown route kind %q (see eproc routes)", args[0])
			}
			rt := router.To(kind)
			if len(args) == 2 {
				rt = router.WithID(kind, args[1])
			}
			if !rt.Valid() {
				if kind.HasID() {
					return fmt.Errorf("%w: %s needs an id", router.ErrInvalidRoute, kind)
				}
				return fmt.Errorf("%w: %s takes no id", router.ErrInvalidRoute, kind)
			}
			r, _ := a.newRouter(cmd.Context(), a.cfg.EffectiveRoutePrefix())
			return writeRoute(cmd, a, describe(r, rt))
		},
	}
}

func writeRoute(cmd *cobra.Command, a *app, info routeInfo) error {
	out := cmd.OutOrStdout()
	if a.flags.jsonMode {
		return writeJSON(out, info)
	}
	fmt.Fprintf(out, "route: %s\n", info.Kind)
	if info.ID != "" {
		fmt.Fprintf(out, "id:    %s\n", info.ID)
	}
	fmt.Fprintf(out, "path:  %s\n", info.Path)
	fmt.Fprintf(out, "href:  %s\n", info.Href)
	if info.Feature != "" {
		fmt.Fprintf(out, "feature: %s\n", info.Feature)
	}
	return nil
}
