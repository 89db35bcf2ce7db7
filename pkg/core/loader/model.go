package loader

import (
	"context"
)

// LoadReq points the loader at one export. Source is a local .xlsx/.csv
// path or an HTTP(S) URL; Sheet selects the worksheet (first sheet when
// empty).
type LoadReq struct {
	Source  string
	Sheet   string
	Workers int
}

type LoadResp struct {
	Loaded int `json:"loaded"`
}

// Service performs the one-time dataset load: parse the export, validate
// every row, then replace the stored set in a single transaction. A load
// that fails validation leaves the previous data untouched.
type Service interface {
	Load(ctx context.Context, req *LoadReq) (*LoadResp, error)
}
