package types

import "time"

// Document types.
const (
	DocumentTypePDF   = "pdf"
	DocumentTypeWord  = "word"
	DocumentTypeExcel = "excel"
	DocumentTypeImage = "image"
	DocumentTypeOther = "other"
)

// Document is a file held in the procurement document library.
type Document struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	FileName        string    `json:"file_name"`
	Description     string    `json:"description,omitempty"`
	DocumentType    string    `json:"document_type"`
	Category        string    `json:"category"`
	FolderPath      string    `json:"folder_path"`
	UploadedBy      string    `json:"uploaded_by"`
	SizeBytes       int64     `json:"size_bytes"`
	Tags            []string  `json:"tags,omitempty"`
	Archived        bool      `json:"archived"`
	RelatedEntityID string    `json:"related_entity_id,omitempty"`
	UploadedAt      time.Time `json:"uploaded_at"`
}

func (d *Document) EntityID() string      { return d.ID }
func (d *Document) SetEntityID(id string) { d.ID = id }
