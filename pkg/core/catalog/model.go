package catalog

import (
	"context"

	"github.com/placentalab/geocatalog/pkg/common"
	"github.com/placentalab/geocatalog/pkg/repo"
	"github.com/placentalab/geocatalog/pkg/repo/model"
)

// SearchReq carries the listing-page parameters. Every filter is
// independently optional; absent filters impose no constraint. Repeated
// query params bind to the slice fields (organism=Human&organism=Mouse).
type SearchReq struct {
	common.PageReq

	Keyword           string   `form:"keyword"`
	Organisms         []string `form:"organism"`
	DataTypes         []string `form:"data_type"`
	LibraryStrategies []string `form:"library_strategy"`
	Platforms         []string `form:"platform"`
	Trimesters        []string `form:"trimester"`
}

type DetailReq struct {
	GseID string `uri:"gse_id" binding:"required"`
}

// StudyResponse is the listing row: the columns the search page renders,
// not the full record.
type StudyResponse struct {
	GseID              string  `json:"gse_id"`
	Title              *string `json:"title"`
	Organism           *string `json:"organism"`
	DataType           *string `json:"data_type"`
	SampleSize         *int    `json:"sample_size"`
	LibraryStrategy    *string `json:"library_strategy"`
	InstrumentModel    *string `json:"instrument_model"`
	PlatformID         *string `json:"platform_id"`
	PregnancyTrimester *string `json:"pregnancy_trimester"`
	SubmissionDate     *string `json:"submission_date"`
	Pmid               *string `json:"pmid"`
}

type Service interface {
	// Search combines keyword and field filters with AND and returns one
	// bounded page plus the total match count.
	Search(ctx context.Context, req *SearchReq) (*common.PageResp[[]*StudyResponse], error)
	// Detail fetches the full record by accession; code.RecordNotFound maps
	// to the 404 page upstream.
	Detail(ctx context.Context, req *DetailReq) (*model.Study, error)
	FilterOptions(ctx context.Context) (*repo.FilterOptions, error)
	// ColumnInfo maps column names to display labels for the detail view.
	ColumnInfo() map[string]string
}
