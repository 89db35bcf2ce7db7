package catalog

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	r "github.com/redis/go-redis/v9"

	"github.com/placentalab/geocatalog/pkg/common"
	core "github.com/placentalab/geocatalog/pkg/core/catalog"
	"github.com/placentalab/geocatalog/pkg/middleware/logger"
	"github.com/placentalab/geocatalog/pkg/middleware/redis"
	"github.com/placentalab/geocatalog/pkg/repo"
	"github.com/placentalab/geocatalog/pkg/repo/model"
	studyStore "github.com/placentalab/geocatalog/pkg/repo/study"
	"github.com/placentalab/geocatalog/pkg/utils"
)

const (
	filterOptionsKey = "geocatalog:filter_options"
	filterOptionsTTL = 10 * time.Minute
)

type catalogImpl struct {
	studyStore repo.StudyRepo
	rClient    *r.Client
}

func New() core.Service {
	return &catalogImpl{
		studyStore: studyStore.NewStudyRepo(),
		rClient:    redis.GetClient(),
	}
}

// NewWithStore wires explicit dependencies; used by tests.
func NewWithStore(store repo.StudyRepo, rClient *r.Client) core.Service {
	return &catalogImpl{studyStore: store, rClient: rClient}
}

func (c *catalogImpl) Search(ctx context.Context, req *core.SearchReq) (*common.PageResp[[]*core.StudyResponse], error) {
	if err := req.Normalize(); err != nil {
		return nil, err
	}

	q := repo.StudyQuery{
		Keyword:           strings.TrimSpace(req.Keyword),
		Organisms:         dropEmpty(req.Organisms),
		DataTypes:         dropEmpty(req.DataTypes),
		LibraryStrategies: dropEmpty(req.LibraryStrategies),
		Platforms:         dropEmpty(req.Platforms),
		Trimesters:        dropEmpty(req.Trimesters),
		Limit:             req.Size(),
		Offset:            req.Offset,
	}

	list, total, err := c.studyStore.ListStudies(ctx, q)
	if err != nil {
		return nil, err
	}

	respList := utils.FilterSlice(list, func(st *model.Study) (*core.StudyResponse, bool) {
		return &core.StudyResponse{
			GseID:              st.GseID,
			Title:              st.Title,
			Organism:           st.Organism,
			DataType:           st.DataType,
			SampleSize:         st.SampleSize,
			LibraryStrategy:    st.LibraryStrategy,
			InstrumentModel:    st.InstrumentModel,
			PlatformID:         st.PlatformID,
			PregnancyTrimester: st.PregnancyTrimester,
			SubmissionDate:     st.SubmissionDate,
			Pmid:               st.Pmid,
		}, true
	})

	return &common.PageResp[[]*core.StudyResponse]{
		Data:   respList,
		Total:  total,
		Limit:  req.Size(),
		Offset: req.Offset,
	}, nil
}

func (c *catalogImpl) Detail(ctx context.Context, req *core.DetailReq) (*model.Study, error) {
	return c.studyStore.GetByGseID(ctx, req.GseID)
}

// FilterOptions serves the dropdown values through a short redis cache; any
// cache failure falls through to the store.
func (c *catalogImpl) FilterOptions(ctx context.Context) (*repo.FilterOptions, error) {
	if c.rClient != nil {
		if cached, err := c.rClient.Get(ctx, filterOptionsKey).Bytes(); err == nil {
			opts := &repo.FilterOptions{}
			if err := json.Unmarshal(cached, opts); err == nil {
				return opts, nil
			}
		}
	}

	opts, err := c.studyStore.FilterOptions(ctx)
	if err != nil {
		return nil, err
	}

	if c.rClient != nil {
		if payload, err := json.Marshal(opts); err == nil {
			if err := c.rClient.Set(ctx, filterOptionsKey, payload, filterOptionsTTL).Err(); err != nil {
				logger.Warnf(ctx, "cache filter options err: %+v", err)
			}
		}
	}
	return opts, nil
}

func (c *catalogImpl) ColumnInfo() map[string]string {
	return core.ColumnInfo()
}

func dropEmpty(in []string) []string {
	return utils.FilterSlice(in, func(s string) (string, bool) {
		s = strings.TrimSpace(s)
		return s, s != ""
	})
}
