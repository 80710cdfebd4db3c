// Package apidoc embeds the description of the converter JSON API and loads it
// with kin-openapi so it is validated before being served.
package apidoc
