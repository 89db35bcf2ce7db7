package code

import (
	"errors"
	"fmt"
	"net/http"
)

// Code is the error currency of the whole service: a stable business code
// plus the HTTP status it maps to at the web boundary. Storage and loader
// failures are wrapped into one of these before they leave the repo layer,
// so handlers never branch on driver internals.
type Code struct {
	HTTPCode int    `json:"-"`
	Code     int    `json:"code"`
	Msg      string `json:"msg"`
	cause    error
}

func New(httpCode int, code int, msg string) *Code {
	return &Code{HTTPCode: httpCode, Code: code, Msg: msg}
}

func (c *Code) Error() string {
	if c.cause != nil {
		return fmt.Sprintf("[%d] %s: %v", c.Code, c.Msg, c.cause)
	}
	return fmt.Sprintf("[%d] %s", c.Code, c.Msg)
}

// WithErr returns a copy carrying err as the cause. The original value is
// never mutated, so package-level codes stay safe to compare against.
func (c *Code) WithErr(err error) *Code {
	n := *c
	n.cause = err
	return &n
}

// WithMsg returns a copy with a more specific message.
func (c *Code) WithMsg(msg string) *Code {
	n := *c
	n.Msg = msg
	return &n
}

func (c *Code) Unwrap() error { return c.cause }

// Is matches on the business code so errors.Is works across WithErr/WithMsg
// copies.
func (c *Code) Is(target error) bool {
	t := &Code{}
	if !errors.As(target, &t) {
		return false
	}
	return c.Code == t.Code
}

var (
	OK = New(http.StatusOK, 0, "ok")

	// 1xxxx request validation
	ParamErr = New(http.StatusBadRequest, 10001, "invalid parameter")

	// 2xxxx record store
	RecordNotFound      = New(http.StatusNotFound, 20001, "record not found")
	QueryRecordErr      = New(http.StatusInternalServerError, 20002, "query record failed")
	StoreUnavailableErr = New(http.StatusServiceUnavailable, 20003, "record store unavailable")

	// 3xxxx loader
	LoadErr         = New(http.StatusInternalServerError, 30001, "load dataset failed")
	SourceParseErr  = New(http.StatusInternalServerError, 30002, "parse source export failed")
	SourceFetchErr  = New(http.StatusInternalServerError, 30003, "fetch source export failed")
	DuplicateKeyErr = New(http.StatusConflict, 30004, "duplicate accession in dataset")
	MalformedRowErr = New(http.StatusUnprocessableEntity, 30005, "malformed source row")
	EmptyDatasetErr = New(http.StatusUnprocessableEntity, 30006, "source export contains no rows")

	UnknownErr = New(http.StatusInternalServerError, 99999, "internal error")
)
