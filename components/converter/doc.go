// Package converter serves the unit converter over net/http: an HTML page per
// category (optionally under a locale prefix) and a small JSON API.
//
// Page routes respond to GET and HEAD and read the val and units query
// parameters, with the form's from and to fields taking precedence. Failed
// conversions render a generic error and are logged with the request id.
// The API answers in JSON, or msgpack when the client accepts
// application/msgpack.
package converter
