// Package template defines the renderer-agnostic template contract used by the
// converter page. Concrete engines live in subpackages (see gotemplate).
package template
