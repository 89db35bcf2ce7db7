package study

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/placentalab/geocatalog/pkg/common/code"
	"github.com/placentalab/geocatalog/pkg/middleware/db"
	"github.com/placentalab/geocatalog/pkg/middleware/logger"
	"github.com/placentalab/geocatalog/pkg/repo"
	"github.com/placentalab/geocatalog/pkg/repo/model"
)

// keywordColumns is the fixed free-text set the keyword search scans. A
// record matches when any of these contains the keyword.
var keywordColumns = []string{
	"title",
	"organism",
	"pregnancy_complications_list",
	"fetal_complications_list",
	"contact_name",
}

type studyImpl struct {
	*db.Datastore
}

func NewStudyRepo() repo.StudyRepo {
	return &studyImpl{Datastore: db.DB()}
}

func (s *studyImpl) ReplaceAll(ctx context.Context, studies []*model.Study) error {
	seen := make(map[string]struct{}, len(studies))
	for _, st := range studies {
		if st.GseID == "" {
			return code.LoadErr.WithMsg("study without accession")
		}
		if _, dup := seen[st.GseID]; dup {
			return code.DuplicateKeyErr.WithMsg("duplicate accession " + st.GseID)
		}
		seen[st.GseID] = struct{}{}
	}

	err := s.DBWithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&model.Study{}).Error; err != nil {
			return err
		}
		if len(studies) == 0 {
			return nil
		}
		return tx.CreateInBatches(studies, 200).Error
	})
	if err != nil {
		logger.Errorf(ctx, "ReplaceAll err: %+v", err)
		return code.LoadErr.WithErr(err)
	}
	return nil
}

func (s *studyImpl) GetByGseID(ctx context.Context, gseID string) (*model.Study, error) {
	study := &model.Study{}
	err := s.DBWithContext(ctx).Where("gse_id = ?", gseID).First(study).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, code.RecordNotFound
	}
	if err != nil {
		logger.Errorf(ctx, "GetByGseID %s err: %+v", gseID, err)
		return nil, code.StoreUnavailableErr.WithErr(err)
	}
	return study, nil
}

func (s *studyImpl) ListStudies(ctx context.Context, q repo.StudyQuery) ([]*model.Study, int64, error) {
	query := s.DBWithContext(ctx).Model(&model.Study{})
	query = applyFilters(query, q)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		logger.Errorf(ctx, "ListStudies count err: %+v", err)
		return nil, 0, code.StoreUnavailableErr.WithErr(err)
	}

	if q.Limit == 0 {
		return []*model.Study{}, total, nil
	}

	order := q.OrderBy
	if order == "" {
		order = "gse_id asc"
	}

	list := make([]*model.Study, 0, q.Limit)
	if err := query.Order(order).Offset(q.Offset).Limit(q.Limit).Find(&list).Error; err != nil {
		logger.Errorf(ctx, "ListStudies err: %+v", err)
		return nil, 0, code.StoreUnavailableErr.WithErr(err)
	}
	return list, total, nil
}

func (s *studyImpl) FilterOptions(ctx context.Context) (*repo.FilterOptions, error) {
	opts := &repo.FilterOptions{}
	for _, c := range []struct {
		col string
		dst *[]string
	}{
		{"organism", &opts.Organisms},
		{"data_type", &opts.DataTypes},
		{"library_strategy", &opts.LibraryStrategies},
		{"platform_id", &opts.Platforms},
		{"pregnancy_trimester", &opts.Trimesters},
	} {
		col, dst := c.col, c.dst
		if err := s.DBWithContext(ctx).Model(&model.Study{}).
			Distinct(col).
			Where(col+" IS NOT NULL AND "+col+" != ''").
			Order(col).
			Pluck(col, dst).Error; err != nil {
			logger.Errorf(ctx, "FilterOptions %s err: %+v", col, err)
			return nil, code.StoreUnavailableErr.WithErr(err)
		}
	}
	return opts, nil
}

func (s *studyImpl) CountStudies(ctx context.Context) (int64, error) {
	var total int64
	if err := s.DBWithContext(ctx).Model(&model.Study{}).Count(&total).Error; err != nil {
		return 0, code.StoreUnavailableErr.WithErr(err)
	}
	return total, nil
}

// applyFilters folds the active constraints onto query. Every user value is
// passed as a bound parameter; column names come only from the fixed lists
// above.
func applyFilters(query *gorm.DB, q repo.StudyQuery) *gorm.DB {
	if kw := strings.TrimSpace(q.Keyword); kw != "" {
		pattern := "%" + escapeLike(strings.ToLower(kw)) + "%"
		conds := make([]string, 0, len(keywordColumns))
		args := make([]any, 0, len(keywordColumns))
		for _, col := range keywordColumns {
			conds = append(conds, "LOWER("+col+") LIKE ? ESCAPE '\\'")
			args = append(args, pattern)
		}
		query = query.Where("("+strings.Join(conds, " OR ")+")", args...)
	}

	if len(q.Organisms) > 0 {
		query = query.Where("organism IN ?", q.Organisms)
	}
	if len(q.DataTypes) > 0 {
		query = query.Where("data_type IN ?", q.DataTypes)
	}
	if len(q.LibraryStrategies) > 0 {
		query = query.Where("library_strategy IN ?", q.LibraryStrategies)
	}
	if len(q.Platforms) > 0 {
		query = query.Where("platform_id IN ?", q.Platforms)
	}
	if len(q.Trimesters) > 0 {
		query = query.Where("pregnancy_trimester IN ?", q.Trimesters)
	}
	return query
}

// escapeLike neutralizes LIKE wildcards so a keyword is matched literally.
func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}
