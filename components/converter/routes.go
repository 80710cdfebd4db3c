package converter

import (
	"fmt"
	"net/http"
	"strings"
)

// Mux is the minimal interface required to register a net/http handler.
// It is satisfied by *http.ServeMux.
type Mux interface {
	Handle(pattern string, handler http.Handler)
}

// MountPath returns the page route prefix under basePath. Category pages live
// at MountPath(...) + "/<category>".
func MountPath(basePath string, fns ...OptionFn) string {
	opts := NewOptions(fns...)
	return mountPath(basePath, opts.PageRoutePath)
}

// APIPath returns the API route prefix under basePath.
func APIPath(basePath string, fns ...OptionFn) string {
	opts := NewOptions(fns...)
	return mountPath(basePath, opts.APIRoutePath)
}

// RegisterRoutes registers the converter routes under basePath on mux.
func RegisterRoutes(mux Mux, basePath string, fns ...OptionFn) ([]string, error) {
	opts := NewOptions(fns...)
	return RegisterRoutesWithOptions(mux, basePath, opts)
}

// RegisterRoutesWithOptions registers the page, locale-prefixed page and API
// routes under basePath and returns the patterns in registration order.
// Patterns use net/http wildcards, so mux should route like *http.ServeMux.
func RegisterRoutesWithOptions(mux Mux, basePath string, opts Options) ([]string, error) {
	if mux == nil {
		return nil, fmt.Errorf("converter: missing mux")
	}
	opts = NewOptions(func(o *Options) { *o = opts })
	if strings.Contains(opts.PageRoutePath, "{") || strings.Contains(opts.APIRoutePath, "{") {
		return nil, fmt.Errorf("converter: route paths must not contain wildcards")
	}

	svc := newService(opts, basePath)
	pageRoute := joinRoute(opts.PageRoutePath, "/{category}")

	routes := []struct {
		route   string
		handler http.Handler
	}{
		{route: pageRoute, handler: svc.pageHandler()},
		{route: joinRoute("/{locale}", pageRoute), handler: svc.pageHandler()},
		{route: joinRoute(opts.APIRoutePath, convertRoute), handler: svc.convertHandler()},
		{route: joinRoute(opts.APIRoutePath, categoriesRoute), handler: svc.categoriesHandler()},
		{route: joinRoute(opts.APIRoutePath, openAPIRoute), handler: svc.openAPIHandler()},
	}

	patterns := make([]string, 0, len(routes))
	for _, rt := range routes {
		pattern := mountPath(basePath, rt.route)
		mux.Handle(pattern, RequestIDMiddleware(rt.handler))
		patterns = append(patterns, pattern)
	}
	return patterns, nil
}

func joinRoute(prefix, route string) string {
	return mountPath(prefix, route)
}

func normalizeBasePath(basePath string) string {
	basePath = strings.TrimSpace(basePath)
	if basePath == "" || basePath == "/" {
		return ""
	}
	if !strings.HasPrefix(basePath, "/") {
		basePath = "/" + basePath
	}
	return strings.TrimRight(basePath, "/")
}

func mountPath(basePath, routePath string) string {
	basePath = strings.TrimSpace(basePath)
	routePath = strings.TrimSpace(routePath)

	if routePath == "" {
		routePath = "/"
	}
	if !strings.HasPrefix(routePath, "/") {
		routePath = "/" + routePath
	}

	if basePath == "" || basePath == "/" {
		return routePath
	}
	if !strings.HasPrefix(basePath, "/") {
		basePath = "/" + basePath
	}
	basePath = strings.TrimRight(basePath, "/")
	return basePath + routePath
}
