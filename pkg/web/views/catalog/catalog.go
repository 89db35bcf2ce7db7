package catalog

import (
	"github.com/gin-gonic/gin"

	"github.com/placentalab/geocatalog/pkg/common"
	"github.com/placentalab/geocatalog/pkg/common/code"
	coreCatalog "github.com/placentalab/geocatalog/pkg/core/catalog"
	impl "github.com/placentalab/geocatalog/pkg/core/catalog/catalog"
	"github.com/placentalab/geocatalog/pkg/middleware/logger"
)

type Handle struct {
	svc coreCatalog.Service
}

func NewHandle() *Handle {
	return &Handle{svc: impl.New()}
}

// Search godoc
// @Summary  Search the study catalog
// @Param    keyword          query string   false "case-insensitive substring over free-text fields"
// @Param    organism         query []string false "organism filter" collectionFormat(multi)
// @Param    data_type        query []string false "data type filter" collectionFormat(multi)
// @Param    library_strategy query []string false "library strategy filter" collectionFormat(multi)
// @Param    platform         query []string false "platform filter" collectionFormat(multi)
// @Param    trimester        query []string false "pregnancy trimester filter" collectionFormat(multi)
// @Param    limit            query int      false "page size, clamped to 100"
// @Param    offset           query int      false "page offset"
// @Success  200 {object} common.Resp
// @Router   /api/v1/catalog/search [get]
func (h *Handle) Search(ctx *gin.Context) {
	req := &coreCatalog.SearchReq{}
	if err := ctx.ShouldBindQuery(req); err != nil {
		logger.Errorf(ctx, "parse Search param err: %+v", err)
		common.ReplyErr(ctx, code.ParamErr.WithMsg(err.Error()))
		return
	}
	resp, err := h.svc.Search(ctx, req)
	common.Reply(ctx, err, resp)
}

// Detail godoc
// @Summary  Fetch one study by accession
// @Param    gse_id path string true "GEO series accession"
// @Success  200 {object} common.Resp
// @Failure  404 {object} common.Resp
// @Router   /api/v1/catalog/studies/{gse_id} [get]
func (h *Handle) Detail(ctx *gin.Context) {
	req := &coreCatalog.DetailReq{}
	if err := ctx.ShouldBindUri(req); err != nil {
		logger.Errorf(ctx, "parse Detail param err: %+v", err)
		common.ReplyErr(ctx, code.ParamErr.WithMsg(err.Error()))
		return
	}
	resp, err := h.svc.Detail(ctx, req)
	common.Reply(ctx, err, resp)
}

// FilterOptions godoc
// @Summary  Distinct values for the search dropdowns
// @Success  200 {object} common.Resp
// @Router   /api/v1/catalog/filters [get]
func (h *Handle) FilterOptions(ctx *gin.Context) {
	resp, err := h.svc.FilterOptions(ctx)
	common.Reply(ctx, err, resp)
}

// Columns godoc
// @Summary  Column display labels for the detail view
// @Success  200 {object} common.Resp
// @Router   /api/v1/catalog/columns [get]
func (h *Handle) Columns(ctx *gin.Context) {
	common.Reply(ctx, nil, h.svc.ColumnInfo())
}
