package repo

import (
	"context"

	"github.com/placentalab/geocatalog/pkg/repo/model"
)

// StudyQuery is the composable filter set for the listing page. Every field
// is independently optional; an empty value imposes no constraint. Set
// filters combine with AND across fields and IN within a field; Keyword is
// a case-insensitive substring match over the fixed free-text columns and
// ANDs with the set filters.
type StudyQuery struct {
	Keyword string

	Organisms         []string
	DataTypes         []string
	LibraryStrategies []string
	Platforms         []string
	Trimesters        []string

	// Limit 0 returns no rows but still reports the total.
	Limit   int
	Offset  int
	OrderBy string
}

// FilterOptions are the distinct non-empty values backing the search UI
// dropdowns.
type FilterOptions struct {
	Organisms         []string `json:"organisms"`
	DataTypes         []string `json:"data_types"`
	LibraryStrategies []string `json:"library_strategies"`
	Platforms         []string `json:"platforms"`
	Trimesters        []string `json:"trimesters"`
}

type StudyRepo interface {
	// ReplaceAll swaps the whole record set in one transaction; readers
	// never observe a partially loaded state.
	ReplaceAll(ctx context.Context, studies []*model.Study) error
	// GetByGseID is the detail lookup; code.RecordNotFound when absent.
	GetByGseID(ctx context.Context, gseID string) (*model.Study, error)
	ListStudies(ctx context.Context, q StudyQuery) ([]*model.Study, int64, error)
	FilterOptions(ctx context.Context) (*FilterOptions, error)
	CountStudies(ctx context.Context) (int64, error)
}
