package loader

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"os"
	"path"
	"strconv"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"
	"github.com/panjf2000/ants/v2"
	"github.com/xuri/excelize/v2"

	"github.com/placentalab/geocatalog/pkg/common/code"
	core "github.com/placentalab/geocatalog/pkg/core/loader"
	"github.com/placentalab/geocatalog/pkg/middleware/logger"
	"github.com/placentalab/geocatalog/pkg/repo"
	"github.com/placentalab/geocatalog/pkg/repo/model"
	studyStore "github.com/placentalab/geocatalog/pkg/repo/study"
)

type loaderImpl struct {
	studyStore repo.StudyRepo
	httpClient *resty.Client
}

func New() core.Service {
	return &loaderImpl{
		studyStore: studyStore.NewStudyRepo(),
		httpClient: resty.New(),
	}
}

// NewWithStore wires explicit dependencies; used by tests.
func NewWithStore(store repo.StudyRepo) core.Service {
	return &loaderImpl{studyStore: store, httpClient: resty.New()}
}

func (l *loaderImpl) Load(ctx context.Context, req *core.LoadReq) (*core.LoadResp, error) {
	raw, err := l.readSource(ctx, req.Source)
	if err != nil {
		return nil, err
	}

	rows, err := parseExport(raw, req.Source, req.Sheet)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, code.EmptyDatasetErr
	}

	studies, err := buildStudies(ctx, rows, req.Workers)
	if err != nil {
		return nil, err
	}

	if err := l.studyStore.ReplaceAll(ctx, studies); err != nil {
		return nil, err
	}

	logger.Infof(ctx, "loaded %d studies from %s", len(studies), req.Source)
	return &core.LoadResp{Loaded: len(studies)}, nil
}

func (l *loaderImpl) readSource(ctx context.Context, source string) ([]byte, error) {
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		resp, err := l.httpClient.R().SetContext(ctx).Get(source)
		if err != nil {
			return nil, code.SourceFetchErr.WithErr(err)
		}
		if resp.IsError() {
			return nil, code.SourceFetchErr.WithMsg(fmt.Sprintf("fetch %s: status %d", source, resp.StatusCode()))
		}
		return resp.Body(), nil
	}

	b, err := os.ReadFile(source)
	if err != nil {
		return nil, code.SourceFetchErr.WithErr(err)
	}
	return b, nil
}

// parseExport turns the export into rows keyed by canonical column name.
// Cells left empty in the source are absent from the map, which is what
// keeps "no value" distinct from "empty string" downstream.
func parseExport(raw []byte, source, sheet string) ([]map[string]string, error) {
	switch sourceExt(source) {
	case ".csv":
		return parseCSV(raw)
	default:
		return parseXLSX(raw, sheet)
	}
}

// sourceExt resolves the export's file extension. URL sources are parsed
// first so query strings and fragments don't leak into the extension.
func sourceExt(source string) string {
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		if u, err := url.Parse(source); err == nil {
			source = u.Path
		}
	}
	return strings.ToLower(path.Ext(strings.TrimSuffix(source, "/")))
}

func parseXLSX(raw []byte, sheet string) ([]map[string]string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(raw))
	if err != nil {
		return nil, code.SourceParseErr.WithErr(err)
	}
	defer f.Close()

	if sheet == "" {
		sheet = f.GetSheetName(0)
	}
	cells, err := f.GetRows(sheet)
	if err != nil {
		return nil, code.SourceParseErr.WithErr(err)
	}
	return tableToRows(cells), nil
}

func parseCSV(raw []byte) ([]map[string]string, error) {
	r := csv.NewReader(bytes.NewReader(raw))
	r.FieldsPerRecord = -1

	var cells [][]string
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, code.SourceParseErr.WithErr(err)
		}
		cells = append(cells, record)
	}
	return tableToRows(cells), nil
}

func tableToRows(cells [][]string) []map[string]string {
	if len(cells) < 2 {
		return nil
	}

	cols := make([]string, len(cells[0]))
	for i, h := range cells[0] {
		cols[i] = canonicalColumn(h)
	}

	rows := make([]map[string]string, 0, len(cells)-1)
	for _, record := range cells[1:] {
		row := make(map[string]string, len(cols))
		for i, v := range record {
			if i >= len(cols) || cols[i] == "" {
				continue
			}
			if v = strings.TrimSpace(v); v != "" {
				row[cols[i]] = v
			}
		}
		rows = append(rows, row)
	}
	return rows
}

// buildStudies normalizes rows into records on a worker pool, then rejects
// duplicate accessions before anything touches the store.
func buildStudies(ctx context.Context, rows []map[string]string, workers int) ([]*model.Study, error) {
	if workers <= 0 {
		workers = 4
	}

	pool, err := ants.NewPool(workers)
	if err != nil {
		return nil, code.LoadErr.WithErr(err)
	}
	defer pool.Release()

	studies := make([]*model.Study, len(rows))
	errs := make([]error, len(rows))

	var wg sync.WaitGroup
	for i, row := range rows {
		wg.Add(1)
		submitErr := pool.Submit(func() {
			defer wg.Done()
			studies[i], errs[i] = buildStudy(row, i+2) // +2: 1-based with header row
		})
		if submitErr != nil {
			wg.Done()
			errs[i] = code.LoadErr.WithErr(submitErr)
		}
	}
	wg.Wait()

	seen := make(map[string]struct{}, len(rows))
	for i, err := range errs {
		if err != nil {
			logger.Errorf(ctx, "row %d: %+v", i+2, err)
			return nil, err
		}
		if _, dup := seen[studies[i].GseID]; dup {
			return nil, code.DuplicateKeyErr.WithMsg("duplicate accession " + studies[i].GseID)
		}
		seen[studies[i].GseID] = struct{}{}
	}
	return studies, nil
}

func buildStudy(row map[string]string, line int) (*model.Study, error) {
	payload := make(map[string]any, len(row))
	for col, v := range row {
		if col == "sample_size" {
			n, err := strconv.Atoi(v)
			if err != nil {
				return nil, code.MalformedRowErr.WithMsg(fmt.Sprintf("row %d: sample_size %q is not numeric", line, v))
			}
			payload[col] = n
			continue
		}
		payload[col] = v
	}

	b, err := json.Marshal(payload)
	if err != nil {
		return nil, code.MalformedRowErr.WithErr(err)
	}

	st := &model.Study{}
	if err := json.Unmarshal(b, st); err != nil {
		return nil, code.MalformedRowErr.WithErr(err)
	}
	if st.GseID == "" {
		return nil, code.MalformedRowErr.WithMsg(fmt.Sprintf("row %d: missing accession", line))
	}
	st.Raw = b

	return st, nil
}
