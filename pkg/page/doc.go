// Package page builds and renders the converter page: it parses navigation
// parameters, resolves defaults, runs the conversion and turns the outcome
// into a template-ready View.
package page
