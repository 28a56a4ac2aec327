package features

import (
	"time"

	"github.com/dustin/go-humanize"

	"github.com/sweengineeringlabs/eprocurement-sub002/internal/query"
	"github.com/sweengineeringlabs/eprocurement-sub002/internal/store"
	"github.com/sweengineeringlabs/eprocurement-sub002/pkg/types"
)

type doc = types.Document

// Documents defines the document library. Archived documents are only
// hidden when the "archived" flag is set to false.
func Documents() store.Definition[doc] {
	uploaded := query.TimeValue(func(d doc) time.Time { return d.UploadedAt })
	return store.Definition[doc]{
		Name: types.DocumentsTable,
		Schema: query.Schema[doc]{
			Search: []func(doc) string{
				func(d doc) string { return d.Name },
				func(d doc) string { return d.FileName },
				func(d doc) string { return d.Description },
				func(d doc) string { return tags(d.Tags) },
			},
			Keys: map[string]func(doc) string{
				"id":                func(d doc) string { return d.ID },
				"document_type":     func(d doc) string { return d.DocumentType },
				"category":          func(d doc) string { return d.Category },
				"folder_path":       func(d doc) string { return d.FolderPath },
				"uploaded_by":       func(d doc) string { return d.UploadedBy },
				"related_entity_id": func(d doc) string { return d.RelatedEntityID },
			},
			Numbers: map[string]func(doc) float64{
				"size_bytes":  func(d doc) float64 { return float64(d.SizeBytes) },
				"uploaded_at": uploaded,
			},
			Flags: map[string]func(doc) bool{
				"archived": func(d doc) bool { return d.Archived },
			},
			Sorts: map[string]query.SortKey[doc]{
				"name":        query.TextKey(func(d doc) string { return d.Name }),
				"size":        query.NumberKey(func(d doc) float64 { return float64(d.SizeBytes) }),
				"uploaded_at": query.NumberKey(uploaded),
				"type":        query.TextKey(func(d doc) string { return d.DocumentType }),
			},
		},
		DefaultOrder: query.By("uploaded_at").Reverse(),
		PageSize:     DocumentsPageSize,
		ID:           func(d doc) string { return d.ID },
		Columns: []store.Column[doc]{
			{Header: "NAME", Value: func(d doc) string { return d.Name }},
			{Header: "TYPE", Value: func(d doc) string { return d.DocumentType }},
			{Header: "FOLDER", Value: func(d doc) string { return d.FolderPath }},
			{Header: "SIZE", Value: func(d doc) string { return humanize.IBytes(uint64(max(d.SizeBytes, 0))) }},
			{Header: "UPLOADED", Value: func(d doc) string { return date(d.UploadedAt) }},
			{Header: "BY", Value: func(d doc) string { return d.UploadedBy }},
		},
	}
}
