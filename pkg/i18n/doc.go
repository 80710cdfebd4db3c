// Package i18n loads the page's message catalogs and resolves translated
// strings by locale. Catalogs are YAML files named after their locale
// (en.yaml, es.yaml) holding a flat messages map.
package i18n
