package ports

import (
	"context"
	"sculink/internal/types"
)

// SectionStore is a remote home for configuration sections, merged over the
// sections of the configuration file on every reload.
type SectionStore interface {
	// GetSection MUST return types.ErrNotFound if the section does not exist.
	GetSection(ctx context.Context, name string) (types.Section, error)

	ListSections(ctx context.Context) ([]types.Section, error)

	PutSection(ctx context.Context, section types.Section) error

	DeleteSection(ctx context.Context, name string) error

	// ClearAll purges all sections. Used in tests only.
	ClearAll(ctx context.Context) error
}
