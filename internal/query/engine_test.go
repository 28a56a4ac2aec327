package query

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type item struct {
	ID      string
	Name    string
	Status  string
	Price   float64
	InStock bool
	Tags    []string
	Created time.Time
}

var itemSchema = Schema[item]{
	Search: []func(item) string{
		func(i item) string { return i.Name },
		func(i item) string { return strings.Join(i.Tags, "\n") },
	},
	Keys: map[string]func(item) string{
		"id":     func(i item) string { return i.ID },
		"status": func(i item) string { return i.Status },
	},
	Numbers: map[string]func(item) float64{
		"price":   func(i item) float64 { return i.Price },
		"created": TimeValue(func(i item) time.Time { return i.Created }),
	},
	Flags: map[string]func(item) bool{
		"in_stock": func(i item) bool { return i.InStock },
	},
	Sorts: map[string]SortKey[item]{
		"name":    TextKey(func(i item) string { return i.Name }),
		"price":   NumberKey(func(i item) float64 { return i.Price }),
		"created": NumberKey(TimeValue(func(i item) time.Time { return i.Created })),
	},
}

func day(d int) time.Time {
	return time.Date(2025, time.February, d, 0, 0, 0, 0, time.UTC)
}

func sampleItems() []item {
	return []item{
		{ID: "1", Name: "Dell Latitude Laptop", Status: "active", Price: 18500, InStock: true, Tags: []string{"it"}, Created: day(3)},
		{ID: "2", Name: "Wireless Mouse", Status: "active", Price: 250, InStock: true, Tags: []string{"it", "peripheral"}, Created: day(1)},
		{ID: "3", Name: "office chair", Status: "draft", Price: 3200, InStock: false, Tags: []string{"furniture"}, Created: day(2)},
		{ID: "4", Name: "A4 Paper", Status: "active", Price: 250, InStock: false, Tags: []string{"stationery"}, Created: day(5)},
		{ID: "5", Name: "Desk Lamp", Status: "retired", Price: 480, InStock: true, Tags: nil, Created: day(4)},
	}
}

func ids(items []item) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.ID
	}
	return out
}

func TestFilter(t *testing.T) {
	tests := []struct {
		name     string
		criteria Criteria
		want     []string
	}{
		{name: "zero criteria passes everything", criteria: Criteria{}, want: []string{"1", "2", "3", "4", "5"}},
		{name: "search is case-insensitive substring", criteria: Criteria{Search: "LAP"}, want: []string{"1"}},
		{name: "search spans every search field", criteria: Criteria{Search: "peripheral"}, want: []string{"2"}},
		{name: "search ORs fields", criteria: Criteria{Search: "it"}, want: []string{"1", "2", "3"}},
		{name: "equality", criteria: Criteria{Equals: map[string]string{"status": "active"}}, want: []string{"1", "2", "4"}},
		{name: "equality is exact", criteria: Criteria{Equals: map[string]string{"status": "Active"}}, want: []string{}},
		{name: "range min only", criteria: Criteria{Ranges: map[string]Range{"price": AtLeast(3200)}}, want: []string{"1", "3"}},
		{name: "range max only is inclusive", criteria: Criteria{Ranges: map[string]Range{"price": AtMost(250)}}, want: []string{"2", "4"}},
		{name: "range both bounds", criteria: Criteria{Ranges: map[string]Range{"price": Between(300, 5000)}}, want: []string{"3", "5"}},
		{name: "date range", criteria: Criteria{Ranges: map[string]Range{"created": Between(float64(day(2).UnixMilli()), float64(day(4).UnixMilli()))}}, want: []string{"1", "3", "5"}},
		{name: "flag true", criteria: Criteria{Flags: map[string]bool{"in_stock": true}}, want: []string{"1", "2", "5"}},
		{name: "flag false", criteria: Criteria{Flags: map[string]bool{"in_stock": false}}, want: []string{"3", "4"}},
		{
			name: "constraints are ANDed",
			criteria: Criteria{
				Search: "a",
				Equals: map[string]string{"status": "active"},
				Flags:  map[string]bool{"in_stock": true},
			},
			want: []string{"1", "2"},
		},
		{name: "unknown fields are ignored", criteria: Criteria{Equals: map[string]string{"nope": "x"}}, want: []string{"1", "2", "3", "4", "5"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(sampleItems(), itemSchema, tt.criteria)
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestFilterEmptyCollection(t *testing.T) {
	got := Filter(nil, itemSchema, Criteria{Search: "x"})
	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestFilterLaptopScenario(t *testing.T) {
	items := []item{{ID: "a", Name: "Dell Latitude Laptop"}, {ID: "b", Name: "Wireless Mouse"}}
	got := Filter(items, itemSchema, Criteria{Search: "lap"})
	assert.Equal(t, []string{"a"}, ids(got))
}

func TestFilterSubsetAndCompleteness(t *testing.T) {
	items := sampleItems()
	byID := make(map[string]item, len(items))
	for _, it := range items {
		byID[it.ID] = it
	}

	for _, e := range items {
		criteria := []Criteria{
			{Search: e.Name},
			{Equals: map[string]string{"status": e.Status}},
			{Ranges: map[string]Range{"price": Between(e.Price, e.Price)}},
			{Flags: map[string]bool{"in_stock": e.InStock}},
			{
				Search: strings.ToUpper(e.Name[:3]),
				Equals: map[string]string{"id": e.ID},
				Ranges: map[string]Range{"created": AtLeast(float64(e.Created.UnixMilli()))},
			},
		}
		for i, c := range criteria {
			t.Run(fmt.Sprintf("%s/%d", e.ID, i), func(t *testing.T) {
				got := Filter(items, itemSchema, c)
				assert.Contains(t, ids(got), e.ID, "entity must survive a criterion built from its own fields")
				for _, g := range got {
					orig, ok := byID[g.ID]
					require.True(t, ok, "filter fabricated entity %s", g.ID)
					assert.Equal(t, orig.Name, g.Name)
				}
			})
		}
	}
}

func TestSort(t *testing.T) {
	tests := []struct {
		name  string
		order Order
		want  []string
	}{
		{name: "no order keeps input order", order: Order{}, want: []string{"1", "2", "3", "4", "5"}},
		{name: "unknown key keeps input order", order: By("weight"), want: []string{"1", "2", "3", "4", "5"}},
		{name: "text ascending ignores case", order: By("name"), want: []string{"4", "1", "5", "3", "2"}},
		{name: "text descending", order: By("name").Reverse(), want: []string{"2", "3", "5", "1", "4"}},
		{name: "number ascending is stable on ties", order: By("price"), want: []string{"2", "4", "5", "3", "1"}},
		{name: "number descending is stable on ties", order: Order{Key: "price", Dir: Desc}, want: []string{"1", "3", "5", "2", "4"}},
		{name: "date ascending", order: By("created"), want: []string{"2", "3", "1", "5", "4"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := sampleItems()
			got := Sort(input, itemSchema, tt.order)
			assert.Equal(t, tt.want, ids(got))
			assert.Equal(t, []string{"1", "2", "3", "4", "5"}, ids(input), "input must not be reordered")
		})
	}
}

func TestPaginate(t *testing.T) {
	twelve := make([]int, 12)
	for i := range twelve {
		twelve[i] = i + 1
	}

	t.Run("twelve items in pages of five", func(t *testing.T) {
		page, p := Paginate(twelve, 3, 5)
		assert.Equal(t, []int{11, 12}, page)
		assert.Equal(t, Pagination{Current: 3, Size: 5, TotalItems: 12, TotalPages: 3}, p)
		assert.False(t, p.HasNext())
		assert.True(t, p.HasPrev())
	})

	t.Run("first page", func(t *testing.T) {
		page, _ := Paginate(twelve, 1, 5)
		assert.Equal(t, []int{1, 2, 3, 4, 5}, page)
	})

	t.Run("page past the end is empty, not an error", func(t *testing.T) {
		page, p := Paginate(twelve, 4, 5)
		require.NotNil(t, page)
		assert.Empty(t, page)
		assert.Equal(t, 4, p.Current, "current page is reported verbatim")
		assert.Equal(t, 3, p.TotalPages)
	})

	t.Run("non-positive page is empty", func(t *testing.T) {
		page, _ := Paginate(twelve, 0, 5)
		assert.Empty(t, page)
		page, _ = Paginate(twelve, -2, 5)
		assert.Empty(t, page)
	})

	t.Run("zero items has one page", func(t *testing.T) {
		page, p := Paginate([]int{}, 1, 10)
		assert.Empty(t, page)
		assert.Equal(t, 1, p.TotalPages)
		assert.Equal(t, 0, p.TotalItems)
	})

	t.Run("zero size is treated as one", func(t *testing.T) {
		page, p := Paginate(twelve, 2, 0)
		assert.Equal(t, []int{2}, page)
		assert.Equal(t, 12, p.TotalPages)
	})
}

func TestTotalPages(t *testing.T) {
	for n := 0; n <= 40; n++ {
		for k := 1; k <= 12; k++ {
			want := (n + k - 1) / k
			if want < 1 {
				want = 1
			}
			assert.Equal(t, want, TotalPages(n, k), "n=%d k=%d", n, k)
		}
	}
}

func TestClampPageSize(t *testing.T) {
	assert.Equal(t, 12, ClampPageSize(0, 12, 100))
	assert.Equal(t, 12, ClampPageSize(-3, 12, 100))
	assert.Equal(t, 100, ClampPageSize(500, 12, 100))
	assert.Equal(t, 500, ClampPageSize(500, 12, 0))
	assert.Equal(t, 1, ClampPageSize(0, 0, 0))
}

func TestRun(t *testing.T) {
	res := Run(sampleItems(), itemSchema, View{
		Criteria: Criteria{Equals: map[string]string{"status": "active"}},
		Order:    By("price"),
		Page:     1,
		PageSize: 2,
	})
	assert.Equal(t, []string{"2", "4", "1"}, ids(res.Items))
	assert.Equal(t, []string{"2", "4"}, ids(res.Page))
	assert.Equal(t, 2, res.Pagination.TotalPages)
	assert.Equal(t, 3, res.Pagination.TotalItems)
}

func TestCriteriaMerge(t *testing.T) {
	base := Criteria{
		Search: "lap",
		Equals: map[string]string{"status": "active", "id": "1"},
		Flags:  map[string]bool{"in_stock": true},
	}

	t.Run("omitted fields are untouched", func(t *testing.T) {
		got := base.Merge(Where("status", "draft"))
		assert.Equal(t, "lap", got.Search)
		assert.Equal(t, map[string]string{"status": "draft", "id": "1"}, got.Equals)
		assert.Equal(t, map[string]bool{"in_stock": true}, got.Flags)
		assert.Equal(t, "active", base.Equals["status"], "receiver must not change")
	})

	t.Run("nil entry removes a single constraint", func(t *testing.T) {
		got := base.Merge(Patch{Equals: map[string]*string{"id": nil}, Flags: map[string]*bool{"in_stock": nil}})
		assert.Equal(t, map[string]string{"status": "active"}, got.Equals)
		assert.Nil(t, got.Flags)
	})

	t.Run("search can be cleared explicitly", func(t *testing.T) {
		got := base.Merge(SearchFor(""))
		assert.Equal(t, "", got.Search)
	})

	t.Run("patch on zero criteria", func(t *testing.T) {
		got := Criteria{}.Merge(Within("price", AtMost(10)))
		require.Contains(t, got.Ranges, "price")
		assert.Equal(t, 10.0, *got.Ranges["price"].Max)
		assert.False(t, got.IsZero())
	})
}

func TestSchemaValidate(t *testing.T) {
	require.NoError(t, itemSchema.Validate(Criteria{
		Equals: map[string]string{"status": "x"},
		Ranges: map[string]Range{"price": AtLeast(1)},
		Flags:  map[string]bool{"in_stock": true},
	}, By("name")))

	err := itemSchema.Validate(Criteria{Equals: map[string]string{"colour": "red"}}, Order{})
	require.ErrorIs(t, err, ErrUnknownField)
	assert.Contains(t, err.Error(), "colour")

	assert.ErrorIs(t, itemSchema.Validate(Criteria{Ranges: map[string]Range{"weight": {}}}, Order{}), ErrUnknownField)
	assert.ErrorIs(t, itemSchema.Validate(Criteria{Flags: map[string]bool{"featured": true}}, Order{}), ErrUnknownField)
	assert.ErrorIs(t, itemSchema.Validate(Criteria{}, By("weight")), ErrUnknownField)
}
