package views

import "github.com/dgallion1/ragview/internal/metadata"

// MetadataCard is the view model for the "Metadata" card. When HasMetadata
// is false only the N/A placeholder renders; otherwise each field renders
// only if it is non-zero.
type MetadataCard struct {
	HasMetadata bool
	RowNumber   int
	PageNumber  int
	Breadcrumb  []metadata.BreadcrumbItem
}

// NewMetadataCard applies the presence gate and breadcrumb transform.
func NewMetadataCard(m metadata.ChunkMetadata) MetadataCard {
	if !m.HasMetadata() {
		return MetadataCard{}
	}
	return MetadataCard{
		HasMetadata: true,
		RowNumber:   m.Row(),
		PageNumber:  m.Page(),
		Breadcrumb:  m.Breadcrumb(),
	}
}
