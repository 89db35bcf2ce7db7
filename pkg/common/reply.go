package common

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/placentalab/geocatalog/pkg/common/code"
)

// Resp is the uniform reply envelope for every JSON endpoint.
type Resp struct {
	Code int    `json:"code"`
	Msg  string `json:"msg"`
	Data any    `json:"data,omitempty"`
}

// Reply writes data when err is nil, otherwise the error envelope.
func Reply(ctx *gin.Context, err error, data ...any) {
	if err != nil {
		ReplyErr(ctx, err)
		return
	}
	if len(data) > 0 {
		ctx.JSON(http.StatusOK, &Resp{Code: code.OK.Code, Msg: code.OK.Msg, Data: data[0]})
		return
	}
	ReplyOk(ctx)
}

func ReplyOk(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, &Resp{Code: code.OK.Code, Msg: code.OK.Msg})
}

// ReplyErr maps *code.Code values to their HTTP status; anything else is an
// opaque internal error. Raw storage errors must already be wrapped by the
// time they reach here.
func ReplyErr(ctx *gin.Context, err error) {
	c := &code.Code{}
	if !errors.As(err, &c) {
		c = code.UnknownErr
	}
	ctx.JSON(c.HTTPCode, &Resp{Code: c.Code, Msg: c.Msg})
}
