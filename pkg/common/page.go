package common

import (
	"github.com/placentalab/geocatalog/pkg/common/code"
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// PageReq carries offset/limit pagination. Limit is a pointer so an absent
// limit (default page) is distinguishable from an explicit limit=0, which
// returns no rows but still reports the total.
type PageReq struct {
	Limit  *int `form:"limit" json:"limit"`
	Offset int  `form:"offset" json:"offset"`
}

// Normalize validates the paging inputs and applies the default and the
// hard cap. Over-limit values are clamped, never rejected; negatives are a
// parameter error.
func (p *PageReq) Normalize() error {
	if p.Offset < 0 {
		return code.ParamErr.WithMsg("offset must not be negative")
	}
	if p.Limit == nil {
		size := DefaultPageSize
		p.Limit = &size
		return nil
	}
	if *p.Limit < 0 {
		return code.ParamErr.WithMsg("limit must not be negative")
	}
	if *p.Limit > MaxPageSize {
		size := MaxPageSize
		p.Limit = &size
	}
	return nil
}

// Size returns the effective page size. Call Normalize first.
func (p *PageReq) Size() int {
	if p.Limit == nil {
		return DefaultPageSize
	}
	return *p.Limit
}

type PageResp[T any] struct {
	Data   T     `json:"data"`
	Total  int64 `json:"total"`
	Limit  int   `json:"limit"`
	Offset int   `json:"offset"`
}
