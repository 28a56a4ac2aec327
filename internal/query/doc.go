// Package query implements the filter, sort and paginate pipeline shared by
// every feature store.
//
// The pipeline is pure: Filter, Sort and Paginate never mutate their input,
// never panic on degenerate input and never return errors. An empty
// collection, zero matches or a page past the end all produce well-defined
// empty results, so rendering code needs no defensive error handling.
//
// Entities are opaque to the engine. Callers describe them with a Schema of
// accessor functions keyed by field name:
//
//	schema := query.Schema[Item]{
//	    Search:  []func(Item) string{func(i Item) string { return i.Name }},
//	    Keys:    map[string]func(Item) string{"status": func(i Item) string { return i.Status }},
//	    Numbers: map[string]func(Item) float64{"price": func(i Item) float64 { return i.Price }},
//	}
//	res := query.Run(items, schema, query.View{Criteria: c, Page: 1, PageSize: 12})
package query
