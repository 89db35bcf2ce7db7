package loader

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/placentalab/geocatalog/pkg/common/code"
	core "github.com/placentalab/geocatalog/pkg/core/loader"
	"github.com/placentalab/geocatalog/pkg/repo"
	"github.com/placentalab/geocatalog/pkg/repo/model"
)

type captureStore struct {
	replaced []*model.Study
	err      error
}

func (c *captureStore) ReplaceAll(_ context.Context, studies []*model.Study) error {
	if c.err != nil {
		return c.err
	}
	c.replaced = studies
	return nil
}

func (c *captureStore) GetByGseID(_ context.Context, _ string) (*model.Study, error) {
	return nil, code.RecordNotFound
}

func (c *captureStore) ListStudies(_ context.Context, _ repo.StudyQuery) ([]*model.Study, int64, error) {
	return nil, 0, nil
}

func (c *captureStore) FilterOptions(_ context.Context) (*repo.FilterOptions, error) {
	return &repo.FilterOptions{}, nil
}

func (c *captureStore) CountStudies(_ context.Context) (int64, error) {
	return int64(len(c.replaced)), nil
}

func writeTempCSV(t *testing.T, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "export.csv")
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

const sampleCSV = `GEO Series ID (GSE___),Title,Organism,Sample size (placenta),Pregnancy Trimester
GSE100,Placental transcriptome in preeclampsia,Homo sapiens,24,Third
GSE200,Methylation atlas,,12,First
`

func TestCanonicalColumn(t *testing.T) {
	assert.Equal(t, "gse_id", canonicalColumn("GEO Series ID (GSE___)"))
	assert.Equal(t, "sample_size", canonicalColumn("Sample size (placenta)"))
	assert.Equal(t, "title", canonicalColumn("Title"))
	// Already-canonical headers resolve through the snake_case fallback.
	assert.Equal(t, "organism", canonicalColumn("organism"))
	assert.Equal(t, "platform_id", canonicalColumn("Platform ID (list)"))
	assert.Equal(t, "", canonicalColumn("Reviewer notes"))
	assert.Equal(t, "", canonicalColumn(""))
}

func TestSourceExt(t *testing.T) {
	assert.Equal(t, ".csv", sourceExt("/data/export.csv"))
	assert.Equal(t, ".xlsx", sourceExt("/data/export.XLSX"))
	assert.Equal(t, ".csv", sourceExt("https://host/export.csv?download=1"))
	assert.Equal(t, ".csv", sourceExt("https://host/export.csv#sheet1"))
	assert.Equal(t, "", sourceExt("https://host/export"))
}

func TestLoadCSV(t *testing.T) {
	store := &captureStore{}
	svc := NewWithStore(store)

	resp, err := svc.Load(context.Background(), &core.LoadReq{
		Source: writeTempCSV(t, sampleCSV),
	})
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Loaded)
	require.Len(t, store.replaced, 2)

	st := store.replaced[0]
	assert.Equal(t, "GSE100", st.GseID)
	require.NotNil(t, st.Title)
	assert.Equal(t, "Placental transcriptome in preeclampsia", *st.Title)
	require.NotNil(t, st.SampleSize)
	assert.Equal(t, 24, *st.SampleSize)
	require.NotNil(t, st.PregnancyTrimester)
	assert.Equal(t, "Third", *st.PregnancyTrimester)
	assert.NotEmpty(t, []byte(st.Raw))

	// Empty cells stay absent rather than becoming empty strings.
	assert.Nil(t, store.replaced[1].Organism)
}

func TestLoadXLSX(t *testing.T) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	require.NoError(t, f.SetSheetRow(sheet, "A1", &[]string{"GEO Series ID (GSE___)", "Title", "Organism"}))
	require.NoError(t, f.SetSheetRow(sheet, "A2", &[]string{"GSE300", "Mouse placenta atlas", "Mus musculus"}))

	p := filepath.Join(t.TempDir(), "export.xlsx")
	require.NoError(t, f.SaveAs(p))
	require.NoError(t, f.Close())

	store := &captureStore{}
	resp, err := NewWithStore(store).Load(context.Background(), &core.LoadReq{Source: p})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Loaded)
	require.Len(t, store.replaced, 1)
	assert.Equal(t, "GSE300", store.replaced[0].GseID)
	require.NotNil(t, store.replaced[0].Organism)
	assert.Equal(t, "Mus musculus", *store.replaced[0].Organism)
}

func TestLoadFromURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(sampleCSV))
	}))
	defer srv.Close()

	store := &captureStore{}
	resp, err := NewWithStore(store).Load(context.Background(), &core.LoadReq{
		Source: srv.URL + "/export.csv",
	})
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Loaded)
}

func TestLoadFromURLWithQueryString(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(sampleCSV))
	}))
	defer srv.Close()

	// Signed/export-endpoint URLs carry query strings; the extension must
	// come from the path, not the raw source string.
	store := &captureStore{}
	resp, err := NewWithStore(store).Load(context.Background(), &core.LoadReq{
		Source: srv.URL + "/export.csv?download=1",
	})
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Loaded)
	require.Len(t, store.replaced, 2)
	assert.Equal(t, "GSE100", store.replaced[0].GseID)
}

func TestLoadFromURLErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := NewWithStore(&captureStore{}).Load(context.Background(), &core.LoadReq{
		Source: srv.URL + "/export.csv",
	})
	assert.True(t, errors.Is(err, code.SourceFetchErr))
}

func TestLoadMissingFile(t *testing.T) {
	_, err := NewWithStore(&captureStore{}).Load(context.Background(), &core.LoadReq{
		Source: filepath.Join(t.TempDir(), "nope.csv"),
	})
	assert.True(t, errors.Is(err, code.SourceFetchErr))
}

func TestLoadEmptyDataset(t *testing.T) {
	p := writeTempCSV(t, "GEO Series ID (GSE___),Title\n")

	_, err := NewWithStore(&captureStore{}).Load(context.Background(), &core.LoadReq{Source: p})
	assert.True(t, errors.Is(err, code.EmptyDatasetErr))
}

func TestLoadRejectsNonNumericSampleSize(t *testing.T) {
	p := writeTempCSV(t, "GEO Series ID (GSE___),Sample size (placenta)\nGSE100,twenty\n")

	store := &captureStore{}
	_, err := NewWithStore(store).Load(context.Background(), &core.LoadReq{Source: p})
	assert.True(t, errors.Is(err, code.MalformedRowErr))
	assert.Empty(t, store.replaced)
}

func TestLoadRejectsMissingAccession(t *testing.T) {
	p := writeTempCSV(t, "GEO Series ID (GSE___),Title\n,Untitled study\n")

	_, err := NewWithStore(&captureStore{}).Load(context.Background(), &core.LoadReq{Source: p})
	assert.True(t, errors.Is(err, code.MalformedRowErr))
}

func TestLoadRejectsDuplicateAccession(t *testing.T) {
	p := writeTempCSV(t, "GEO Series ID (GSE___),Title\nGSE100,first\nGSE100,second\n")

	store := &captureStore{}
	_, err := NewWithStore(store).Load(context.Background(), &core.LoadReq{Source: p})
	assert.True(t, errors.Is(err, code.DuplicateKeyErr))
	assert.Empty(t, store.replaced)
}

func TestLoadIgnoresUnknownColumns(t *testing.T) {
	p := writeTempCSV(t, "GEO Series ID (GSE___),Reviewer notes\nGSE100,keep out\n")

	store := &captureStore{}
	resp, err := NewWithStore(store).Load(context.Background(), &core.LoadReq{Source: p})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Loaded)
	assert.NotContains(t, string(store.replaced[0].Raw), "keep out")
}

func TestLoadStoreFailurePropagates(t *testing.T) {
	p := writeTempCSV(t, sampleCSV)

	store := &captureStore{err: code.StoreUnavailableErr}
	_, err := NewWithStore(store).Load(context.Background(), &core.LoadReq{Source: p})
	assert.True(t, errors.Is(err, code.StoreUnavailableErr))
}
