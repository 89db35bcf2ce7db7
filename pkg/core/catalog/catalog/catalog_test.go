package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/placentalab/geocatalog/pkg/common"
	"github.com/placentalab/geocatalog/pkg/common/code"
	core "github.com/placentalab/geocatalog/pkg/core/catalog"
	"github.com/placentalab/geocatalog/pkg/repo"
	"github.com/placentalab/geocatalog/pkg/repo/model"
)

type fakeStore struct {
	lastQuery repo.StudyQuery
	list      []*model.Study
	total     int64
	study     *model.Study
	opts      *repo.FilterOptions
	optsCalls int
	err       error
}

func (f *fakeStore) ReplaceAll(_ context.Context, _ []*model.Study) error { return f.err }

func (f *fakeStore) GetByGseID(_ context.Context, _ string) (*model.Study, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.study, nil
}

func (f *fakeStore) ListStudies(_ context.Context, q repo.StudyQuery) ([]*model.Study, int64, error) {
	f.lastQuery = q
	if f.err != nil {
		return nil, 0, f.err
	}
	return f.list, f.total, nil
}

func (f *fakeStore) FilterOptions(_ context.Context) (*repo.FilterOptions, error) {
	f.optsCalls++
	if f.err != nil {
		return nil, f.err
	}
	return f.opts, nil
}

func (f *fakeStore) CountStudies(_ context.Context) (int64, error) { return f.total, f.err }

func ptr(s string) *string { return &s }

func TestSearchDefaultsAndShaping(t *testing.T) {
	store := &fakeStore{
		list: []*model.Study{
			{GseID: "GSE100", Title: ptr("a title"), Organism: ptr("Homo sapiens")},
		},
		total: 42,
	}
	svc := NewWithStore(store, nil)

	resp, err := svc.Search(context.Background(), &core.SearchReq{})
	require.NoError(t, err)

	assert.Equal(t, 20, store.lastQuery.Limit)
	assert.Equal(t, 0, store.lastQuery.Offset)
	assert.EqualValues(t, 42, resp.Total)
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "GSE100", resp.Data[0].GseID)
	assert.Equal(t, "a title", *resp.Data[0].Title)
}

func TestSearchClampsLimit(t *testing.T) {
	store := &fakeStore{}
	svc := NewWithStore(store, nil)

	limit := 5000
	req := &core.SearchReq{}
	req.Limit = &limit

	_, err := svc.Search(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 100, store.lastQuery.Limit)
}

func TestSearchZeroLimitKeepsTotal(t *testing.T) {
	store := &fakeStore{total: 7}
	svc := NewWithStore(store, nil)

	limit := 0
	req := &core.SearchReq{}
	req.Limit = &limit

	resp, err := svc.Search(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 0, store.lastQuery.Limit)
	assert.EqualValues(t, 7, resp.Total)
	assert.Empty(t, resp.Data)
}

func TestSearchRejectsNegativeOffset(t *testing.T) {
	svc := NewWithStore(&fakeStore{}, nil)

	_, err := svc.Search(context.Background(), &core.SearchReq{
		PageReq: common.PageReq{Offset: -1},
	})
	assert.True(t, errors.Is(err, code.ParamErr))
}

func TestSearchPassesFiltersThrough(t *testing.T) {
	store := &fakeStore{}
	svc := NewWithStore(store, nil)

	_, err := svc.Search(context.Background(), &core.SearchReq{
		Keyword:           "  preeclampsia  ",
		Organisms:         []string{"Homo sapiens", " ", ""},
		DataTypes:         []string{"RNA-seq"},
		LibraryStrategies: []string{"RNA-Seq"},
		Platforms:         []string{"GPL24676"},
		Trimesters:        []string{"Third"},
	})
	require.NoError(t, err)

	q := store.lastQuery
	assert.Equal(t, "preeclampsia", q.Keyword)
	assert.Equal(t, []string{"Homo sapiens"}, q.Organisms)
	assert.Equal(t, []string{"RNA-seq"}, q.DataTypes)
	assert.Equal(t, []string{"RNA-Seq"}, q.LibraryStrategies)
	assert.Equal(t, []string{"GPL24676"}, q.Platforms)
	assert.Equal(t, []string{"Third"}, q.Trimesters)
}

func TestDetailPassesNotFoundThrough(t *testing.T) {
	svc := NewWithStore(&fakeStore{err: code.RecordNotFound}, nil)

	_, err := svc.Detail(context.Background(), &core.DetailReq{GseID: "nonexistent-id"})
	assert.True(t, errors.Is(err, code.RecordNotFound))
}

func TestFilterOptionsWithoutCache(t *testing.T) {
	store := &fakeStore{opts: &repo.FilterOptions{Organisms: []string{"Homo sapiens"}}}
	svc := NewWithStore(store, nil)

	opts, err := svc.FilterOptions(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Homo sapiens"}, opts.Organisms)
	assert.Equal(t, 1, store.optsCalls)
}

func TestColumnInfoReturnsCopy(t *testing.T) {
	svc := NewWithStore(&fakeStore{}, nil)

	info := svc.ColumnInfo()
	require.Equal(t, "GEO Series ID", info["gse_id"])

	info["gse_id"] = "mutated"
	assert.Equal(t, "GEO Series ID", svc.ColumnInfo()["gse_id"])
}
