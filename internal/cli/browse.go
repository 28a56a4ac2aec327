package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sweengineeringlabs/eprocurement-sub002/internal/query"
	"github.com/sweengineeringlabs/eprocurement-sub002/internal/router"
	"github.com/sweengineeringlabs/eprocurement-sub002/internal/shell"
	"github.com/sweengineeringlabs/eprocurement-sub002/internal/store"
)

const browseHelp = `Commands:
  go <path>              navigate to a path
  open <kind> [id]       navigate to a route kind
  back, forward          move through history
  where                  print the current route
  page <n>, next, prev   change page
  search [text]          set or clear the text search
  filter <key>=<value>   add an equality constraint
  sort <key> [asc|desc]  sort the list
  clear                  remove all constraints
  reload                 refetch the current page's data
  help                   print this help
  quit                   leave

Search, filter, sort and clear return to page 1.`

var errNoFeature = errors.New("no feature on this page")

func newBrowseCmd(a *app) *cobra.Command {
	var start string
	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Browse pages from a command prompt",
		Long: `Browse reads commands from standard input, one per line, and drives the
application shell: each navigation mounts the page's feature, loads its data
and prints the visible page.

` + browseHelp,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if start == "" {
				start = a.cfg.EffectiveRoutePrefix()
			}
			h := router.NewMemoryHistory(start)
			ws, err := a.workspace(cmd.Context(), h)
			if err != nil {
				return err
			}
			defer ws.Close()

			b := &browser{ctx: cmd.Context(), ws: ws, history: h, out: cmd.OutOrStdout()}
			b.show()
			return b.run(cmd.InOrStdin())
		},
	}
	cmd.Flags().StringVar(&start, "path", "", "path to start at (default: the route prefix)")
	return cmd
}

// browser is one browse session.
type browser struct {
	ctx     context.Context
	ws      *shell.Workspace
	history *router.MemoryHistory
	out     io.Writer
}

// run executes commands until quit or end of input. Command errors are
// printed and the session continues.
func (b *browser) run(in io.Reader) error {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		quit, err := b.exec(line)
		if err != nil {
			fmt.Fprintf(b.out, "error: %v\n", err)
			continue
		}
		if quit {
			return nil
		}
		if err := b.ctx.Err(); err != nil {
			return err
		}
	}
	return scanner.Err()
}

func (b *browser) exec(line string) (bool, error) {
	verb, rest, _ := strings.Cut(line, " ")
	rest = strings.TrimSpace(rest)
	r := b.ws.Router()

	switch verb {
	case "quit", "exit":
		return true, nil
	case "help":
		fmt.Fprintln(b.out, browseHelp)
		return false, nil
	case "where":
		b.where()
		return false, nil
	case "go":
		if rest == "" {
			return false, errors.New("usage: go <path>")
		}
		r.NavigatePath(rest)
	case "open":
		name, id, _ := strings.Cut(rest, " ")
		kind, ok := router.ParseKind(name)
		if !ok {
			return false, fmt.Errorf("unknown route kind %q", name)
		}
		rt := router.To(kind)
		if id = strings.TrimSpace(id); id != "" {
			rt = router.WithID(kind, id)
		}
		if err := r.Navigate(rt); err != nil {
			return false, err
		}
	case "back":
		if !b.history.Back() {
			return false, errors.New("no previous page")
		}
	case "forward":
		if !b.history.Forward() {
			return false, errors.New("no next page")
		}
	case "reload":
		if err := b.ws.Reload(b.ctx); err != nil {
			return false, err
		}
	default:
		return false, b.viewCommand(verb, rest)
	}
	b.show()
	return false, nil
}

// viewCommand applies a command that changes the mounted feature's view.
func (b *browser) viewCommand(verb, rest string) error {
	_, f := b.ws.Mounted()
	switch verb {
	case "page", "next", "prev", "search", "filter", "sort", "clear":
		if f == nil {
			return errNoFeature
		}
	default:
		return fmt.Errorf("unknown command %q (try help)", verb)
	}

	switch verb {
	case "page":
		n, err := strconv.Atoi(rest)
		if err != nil {
			return fmt.Errorf("invalid page %q", rest)
		}
		f.SetPage(n)
	case "next":
		p := f.Summary().Pagination
		if !p.HasNext() {
			return errors.New("no next page")
		}
		f.SetPage(p.Current + 1)
	case "prev":
		p := f.Summary().Pagination
		if !p.HasPrev() {
			return errors.New("no previous page")
		}
		f.SetPage(p.Current - 1)
	case "search":
		f.SetFilter(query.SearchFor(rest))
		f.SetPage(1)
	case "filter":
		k, v, err := splitPair(rest)
		if err != nil {
			return err
		}
		f.SetFilter(query.Where(k, v))
		if err := f.Validate(); err != nil {
			f.SetFilter(query.Patch{Equals: map[string]*string{k: nil}})
			return err
		}
		f.SetPage(1)
	case "sort":
		key, dir, _ := strings.Cut(rest, " ")
		prev := f.Sorting()
		f.SetSort(query.Order{Key: key, Dir: query.ParseDirection(strings.TrimSpace(dir))})
		if err := f.Validate(); err != nil {
			f.SetSort(prev)
			return err
		}
		f.SetPage(1)
	case "clear":
		f.ClearFilters()
		f.SetPage(1)
	}
	return b.view(f)
}

func (b *browser) where() {
	rt, f := b.ws.Mounted()
	r := b.ws.Router()
	fmt.Fprintf(b.out, "== %s  %s\n", rt, r.Href(rt))
	if f != nil {
		sum := f.Summary()
		if sum.Selected != "" {
			fmt.Fprintf(b.out, "selected: %s\n", sum.Selected)
		}
	}
}

// show waits for the current page's load and prints the page.
func (b *browser) show() {
	if err := b.ws.Wait(b.ctx); err != nil {
		fmt.Fprintf(b.out, "load failed: %v\n", err)
	}
	b.where()
	_, f := b.ws.Mounted()
	if f == nil {
		fmt.Fprintln(b.out, "No feature on this page.")
		return
	}
	if err := b.view(f); err != nil {
		fmt.Fprintf(b.out, "error: %v\n", err)
	}
}

func (b *browser) view(f store.Feature) error {
	return writeView(b.out, f)
}
