package apidoc

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
)

//go:embed openapi.yaml
var rawDocument []byte

// Raw returns a copy of the embedded YAML document.
func Raw() []byte {
	return append([]byte(nil), rawDocument...)
}

// Operation summarises one documented route.
type Operation struct {
	ID      string
	Method  string
	Path    string
	Summary string
}

// Load parses and validates the embedded document.
func Load(ctx context.Context) (*openapi3.T, error) {
	return LoadData(ctx, rawDocument)
}

// LoadData parses and validates raw as an OpenAPI 3 document.
func LoadData(ctx context.Context, raw []byte) (*openapi3.T, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return nil, errors.New("apidoc: document payload is empty")
	}

	loader := &openapi3.Loader{Context: ctx}
	doc, err := loader.LoadFromData(raw)
	if err != nil {
		return nil, fmt.Errorf("apidoc: load document: %w", err)
	}
	if doc.Paths == nil || doc.Paths.Len() == 0 {
		return nil, errors.New("apidoc: document does not contain any paths")
	}
	if err := doc.Validate(ctx, openapi3.DisableExamplesValidation()); err != nil {
		return nil, fmt.Errorf("apidoc: validate: %w", err)
	}
	return doc, nil
}

// JSON loads the embedded document and encodes it as JSON. When basePath is
// set the document declares it as its server URL and paths stay relative.
func JSON(ctx context.Context, basePath string) ([]byte, error) {
	doc, err := Load(ctx)
	if err != nil {
		return nil, err
	}
	if basePath = strings.TrimRight(strings.TrimSpace(basePath), "/"); basePath != "" {
		if !strings.HasPrefix(basePath, "/") {
			basePath = "/" + basePath
		}
		doc.Servers = openapi3.Servers{&openapi3.Server{URL: basePath}}
	}
	payload, err := doc.MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("apidoc: encode json: %w", err)
	}
	return payload, nil
}

// Operations lists the documented operations sorted by path then method.
func Operations(doc *openapi3.T) []Operation {
	if doc == nil || doc.Paths == nil {
		return nil
	}
	var out []Operation
	for path, item := range doc.Paths.Map() {
		if item == nil {
			continue
		}
		for method, op := range item.Operations() {
			if op == nil {
				continue
			}
			id := op.OperationID
			if id == "" {
				id = strings.ToLower(method) + ":" + path
			}
			out = append(out, Operation{ID: id, Method: method, Path: path, Summary: op.Summary})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Path != out[j].Path {
			return out[i].Path < out[j].Path
		}
		return out[i].Method < out[j].Method
	})
	return out
}
