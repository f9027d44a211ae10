// Package spec embeds the OpenAPI specification for the plann.er API.
// It is served by the HTTP server at /openapi.yaml so the published contract
// always matches the running binary.
package spec

import _ "embed"

// OpenAPI contains the raw bytes of openapi.yaml, embedded at compile time.
//
//go:embed openapi.yaml
var OpenAPI []byte
