package cli

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBrowse(t *testing.T) {
	e := newEnv(t)

	script := strings.Join([]string{
		"open catalogue",
		"page 2",
		"search laptop",
		"page 1",
		"sort price desc",
		"open tenders-edit tnd-002",
		"where",
		"back",
		"forward",
		"go /app/nowhere",
		"page 1",
		"bogus",
		"quit",
		"open audit",
	}, "\n")

	out, err := e.run(t, script, "browse")
	require.NoError(t, err)

	assert.Contains(t, out, "== dashboard  /app/\nNo feature on this page.")
	assert.Equal(t, 2, strings.Count(out, "== catalogue  /app/catalogue\n"))
	assert.Contains(t, out, "Page 1 of 2 (15 items)")
	assert.Contains(t, out, "Page 2 of 2 (15 items)")
	assert.Contains(t, out, "Page 1 of 1 (3 items)")
	assert.NotContains(t, out, "Page 2 of 1", "search returns to page 1")
	assert.Equal(t, 3, strings.Count(out, "== tenders-edit(tnd-002)  /app/tenders/tnd-002/edit\n"))
	assert.Contains(t, out, "selected: tnd-002")
	assert.Contains(t, out, "Page 1 of 1 (1 items)")
	assert.Contains(t, out, "error: no feature on this page")
	assert.Contains(t, out, `error: unknown command "bogus"`)
	assert.NotContains(t, out, "== audit", "commands after quit run")

	laptop := strings.LastIndex(out, "IT-LAP-001")
	keyboard := strings.LastIndex(out, "IT-KBD-001")
	assert.Less(t, laptop, keyboard, "price desc puts the laptop first")
}

func TestBrowsePaging(t *testing.T) {
	e := newEnv(t)

	script := strings.Join([]string{
		"open catalogue",
		"prev",
		"next",
		"next",
		"sort price desc",
		"sort colour",
		"reload",
		"page 2",
		"clear",
	}, "\n")

	out, err := e.run(t, script, "browse")
	require.NoError(t, err)

	assert.Contains(t, out, "error: no previous page")
	assert.Contains(t, out, "error: no next page")
	assert.Contains(t, out, `unknown field: sort key "colour"`)
	assert.Equal(t, 2, strings.Count(out, "Page 2 of 2 (15 items)"))
	assert.Equal(t, 4, strings.Count(out, "Page 1 of 2 (15 items)"), "sort and clear return to page 1")

	// The rejected sort keeps price descending: the cheapest items fall to page 2.
	reloaded := out[strings.LastIndex(out, "== catalogue"):]
	first := reloaded[:strings.Index(reloaded, "Page 1 of 2")]
	assert.Contains(t, first, "IT-LAP-001")
	assert.NotContains(t, first, "OFF-PEN-001")
	assert.NotContains(t, first, "PPE-VST-001")
}

func TestBrowseStartPath(t *testing.T) {
	e := newEnv(t)

	out, err := e.run(t, "filter status=published\nfilter colour=red\nclear\nback\n", "browse", "--path", "/app/tenders")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "== tenders  /app/tenders\n"))
	assert.Contains(t, out, "Page 1 of 1 (5 items)")
	assert.Contains(t, out, "Page 1 of 1 (1 items)")
	assert.Contains(t, out, "unknown field")
	assert.Contains(t, out, "error: no previous page")
}

func TestBrowseErrors(t *testing.T) {
	e := newEnv(t)

	tests := []struct {
		line string
		want string
	}{
		{"go", "usage: go <path>"},
		{"open nowhere", `unknown route kind "nowhere"`},
		{"open tenders-edit", "invalid route"},
		{"forward", "no next page"},
		{"search x", "no feature on this page"},
		{"help", "Commands:"},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			out, err := e.run(t, tt.line+"\n", "browse")
			require.NoError(t, err)
			assert.Contains(t, out, tt.want)
		})
	}
}
