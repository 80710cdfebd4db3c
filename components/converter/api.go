package converter

import (
	"context"
	"errors"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"strings"
	"sync"

	"github.com/goliatone/go-unitconv/pkg/apidoc"
	"github.com/goliatone/go-unitconv/pkg/convert"
	"github.com/goliatone/go-unitconv/pkg/i18n"
)

const (
	convertRoute    = "/convert"
	categoriesRoute = "/categories"
	openAPIRoute    = "/openapi.json"
)

// Error codes reported in API error bodies.
const (
	CodeInvalidValue    = "invalid_value"
	CodeUnknownCategory = "unknown_category"
	CodeUnknownUnit     = "unknown_unit"
	CodeUnsupportedPair = "unsupported_pair"
	CodeInternal        = "internal"
)

// Conversion is the body of a successful convert call.
type Conversion struct {
	Category string  `json:"category"`
	Value    float64 `json:"value"`
	From     string  `json:"from"`
	To       string  `json:"to"`
	Result   float64 `json:"result"`
}

// CategoryInfo describes one category for API clients.
type CategoryInfo struct {
	Name        string         `json:"name"`
	Label       string         `json:"label"`
	Units       []convert.Unit `json:"units"`
	DefaultFrom string         `json:"default_from"`
	DefaultTo   string         `json:"default_to"`
}

// ErrorBody is the body of a failed API call.
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type dataResponse[T any] struct {
	Data T `json:"data"`
}

type errorResponse struct {
	Error ErrorBody `json:"error"`
}

// apiError is a StatusError with an API error code.
type apiError struct {
	StatusError
	code string
}

func invalidValue(raw string) error {
	return apiError{
		StatusError: StatusError{Code: http.StatusBadRequest, Err: fmt.Errorf("converter: invalid value %q", raw)},
		code:        CodeInvalidValue,
	}
}

// classify maps conversion errors onto an HTTP status and API code.
func classify(err error) (int, string) {
	var apiErr apiError
	switch {
	case errors.As(err, &apiErr):
		return apiErr.StatusCode(), apiErr.code
	case errors.Is(err, convert.ErrUnknownCategory):
		return http.StatusNotFound, CodeUnknownCategory
	case errors.Is(err, convert.ErrUnknownUnit):
		return http.StatusBadRequest, CodeUnknownUnit
	case errors.Is(err, convert.ErrUnsupportedPair):
		return http.StatusBadRequest, CodeUnsupportedPair
	}
	var httpErr HTTPError
	if errors.As(err, &httpErr) && httpErr != nil {
		return httpErr.StatusCode(), CodeInternal
	}
	return http.StatusInternalServerError, CodeInternal
}

func (s *service) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, code := classify(err)
	message := err.Error()
	if status >= http.StatusInternalServerError {
		message = http.StatusText(status)
	}
	s.writePayload(w, r, status, errorResponse{Error: ErrorBody{Code: code, Message: message}})
}

func (s *service) convertHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !s.allowRead(w, r) {
			return
		}

		req, err := parseConvertRequest(r)
		if err != nil {
			s.writeError(w, r, err)
			return
		}

		result, err := convert.ConvertRequest(req)
		if err != nil {
			s.logf(r, "convert %s %s %s->%s: %v", req.Category, strconv.FormatFloat(req.Value, 'g', -1, 64), req.From, req.To, err)
			s.writeError(w, r, err)
			return
		}

		s.writePayload(w, r, http.StatusOK, dataResponse[Conversion]{Data: Conversion{
			Category: req.Category,
			Value:    req.Value,
			From:     req.From,
			To:       req.To,
			Result:   result,
		}})
	})
}

func parseConvertRequest(r *http.Request) (convert.Request, error) {
	q := r.URL.Query()
	raw := strings.TrimSpace(q.Get("value"))
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return convert.Request{}, invalidValue(raw)
	}
	return convert.Request{
		Category: foldName(q.Get("category")),
		Value:    value,
		From:     foldName(q.Get("from")),
		To:       foldName(q.Get("to")),
	}, nil
}

// foldName lets API callers send names in any case; the conversion core
// matches them exactly.
func foldName(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

func (s *service) categoriesHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !s.allowRead(w, r) {
			return
		}

		locale := i18n.NormalizeLocale(r.URL.Query().Get("locale"))
		if locale == "" {
			locale = s.opts.DefaultLocale
		}

		infos, err := Categories(s.translator, locale)
		if err != nil {
			s.logf(r, "list categories: %v", err)
			s.writeError(w, r, err)
			return
		}
		s.writePayload(w, r, http.StatusOK, dataResponse[[]CategoryInfo]{Data: infos})
	})
}

// Categories lists every category with its units, default pair and a label
// translated for locale.
func Categories(t i18n.Translator, locale string) ([]CategoryInfo, error) {
	categories := convert.Categories()
	out := make([]CategoryInfo, 0, len(categories))
	for _, category := range categories {
		units, err := convert.Units(category)
		if err != nil {
			return nil, err
		}
		from, to := convert.DefaultPair(category)
		out = append(out, CategoryInfo{
			Name:        string(category),
			Label:       i18n.Translate(t, locale, "category."+string(category), category.Title(), nil),
			Units:       units,
			DefaultFrom: from,
			DefaultTo:   to,
		})
	}
	return out, nil
}

// apiDocument loads the API description on first use.
type apiDocument struct {
	basePath string

	once    sync.Once
	payload []byte
	err     error
}

func newAPIDocument(basePath string) *apiDocument {
	return &apiDocument{basePath: basePath}
}

func (d *apiDocument) load(ctx context.Context) ([]byte, error) {
	d.once.Do(func() {
		d.payload, d.err = apidoc.JSON(ctx, d.basePath)
	})
	return d.payload, d.err
}

func (s *service) openAPIHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !s.allowRead(w, r) {
			return
		}

		payload, err := s.apiDoc.load(context.WithoutCancel(r.Context()))
		if err != nil {
			s.logf(r, "load api description: %v", err)
			s.writeError(w, r, StatusError{Code: http.StatusInternalServerError, Err: err})
			return
		}

		w.Header().Set("Content-Type", contentTypeJSON)
		w.WriteHeader(http.StatusOK)
		if r.Method == http.MethodHead {
			return
		}
		_, _ = w.Write(payload)
	})
}
