package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sweengineeringlabs/eprocurement-sub002/internal/query"
	"github.com/sweengineeringlabs/eprocurement-sub002/internal/router"
	"github.com/sweengineeringlabs/eprocurement-sub002/internal/store"
)

// queryFlags holds the view options of the query command.
type queryFlags struct {
	search   string
	where    []string
	min      []string
	max      []string
	flag     []string
	sort     string
	desc     bool
	page     int
	pageSize int
}

// queryResult is the --json output of query.
type queryResult struct {
	Summary store.Summary `json:"summary"`
	View    any           `json:"view"`
}

func newQueryCmd(a *app) *cobra.Command {
	var q queryFlags
	cmd := &cobra.Command{
		Use:   "query <feature>",
		Short: "Filter, sort and page a feature's items",
		Long: `Query loads a feature and prints one page of its items after filtering
and sorting. Constraints are ANDed together.

Example:
  eproc query catalogue --search chair
  eproc query catalogue --where category_id=cat-furniture --sort price --desc
  eproc query catalogue --max bbbee_level=2 --page 2
  eproc query documents --flag archived=true --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			patches, order, err := q.parse()
			if err != nil {
				return err
			}

			ws, err := a.workspace(cmd.Context(), router.NewMemoryHistory(a.cfg.EffectiveRoutePrefix()))
			if err != nil {
				return err
			}
			defer ws.Close()

			f, err := open(cmd.Context(), ws, args[0])
			if err != nil {
				return err
			}
			for _, p := range patches {
				f.SetFilter(p)
			}
			f.SetSort(order)
			if err := f.Validate(); err != nil {
				return err
			}
			if q.pageSize > 0 {
				f.SetPageSize(q.pageSize)
			}
			if q.page > 0 {
				f.SetPage(q.page)
			}

			out := cmd.OutOrStdout()
			if a.flags.jsonMode {
				return writeJSON(out, queryResult{Summary: f.Summary(), View: f.Snapshot()})
			}
			return writeView(out, f)
		},
	}

	fl := cmd.Flags()
	fl.StringVar(&q.search, "search", "", "case-insensitive text search")
	fl.StringArrayVar(&q.where, "where", nil, "equality constraint key=value (repeatable)")
	fl.StringArrayVar(&q.min, "min", nil, "lower bound key=number (repeatable)")
	fl.StringArrayVar(&q.max, "max", nil, "upper bound key=number (repeatable)")
	fl.StringArrayVar(&q.flag, "flag", nil, "flag constraint key=true|false (repeatable)")
	fl.StringVar(&q.sort, "sort", "", "sort key")
	fl.BoolVar(&q.desc, "desc", false, "sort descending")
	fl.IntVar(&q.page, "page", 0, "page number, starting at 1")
	fl.IntVar(&q.pageSize, "page-size", 0, "items per page (default: the feature's page size)")
	return cmd
}

// parse turns the flags into criteria patches and an order.
func (q queryFlags) parse() ([]query.Patch, query.Order, error) {
	var patches []query.Patch
	if q.search != "" {
		patches = append(patches, query.SearchFor(q.search))
	}
	for _, arg := range q.where {
		k, v, err := splitPair(arg)
		if err != nil {
			return nil, query.Order{}, err
		}
		patches = append(patches, query.Where(k, v))
	}

	ranges := make(map[string]query.Range)
	var keys []string
	bound := func(args []string, set func(r *query.Range, n float64)) error {
		for _, arg := range args {
			k, v, err := splitPair(arg)
			if err != nil {
				return err
			}
			n, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return fmt.Errorf("invalid number in %q", arg)
			}
			r, seen := ranges[k]
			if !seen {
				keys = append(keys, k)
			}
			set(&r, n)
			ranges[k] = r
		}
		return nil
	}
	if err := bound(q.min, func(r *query.Range, n float64) { r.Min = &n }); err != nil {
		return nil, query.Order{}, err
	}
	if err := bound(q.max, func(r *query.Range, n float64) { r.Max = &n }); err != nil {
		return nil, query.Order{}, err
	}
	for _, k := range keys {
		patches = append(patches, query.Within(k, ranges[k]))
	}

	for _, arg := range q.flag {
		k, v, err := splitPair(arg)
		if err != nil {
			return nil, query.Order{}, err
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			return nil, query.Order{}, fmt.Errorf("invalid boolean in %q", arg)
		}
		patches = append(patches, query.Flag(k, b))
	}

	var order query.Order
	if q.sort != "" {
		order = query.By(q.sort)
		if q.desc {
			order = order.Reverse()
		}
	}
	return patches, order, nil
}

// splitPair splits "key=value". The key must be non-empty.
func splitPair(arg string) (string, string, error) {
	k, v, ok := strings.Cut(arg, "=")
	if !ok || k == "" {
		return "", "", fmt.Errorf("invalid constraint %q (expected key=value)", arg)
	}
	return k, v, nil
}
