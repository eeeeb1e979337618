// Package scaffold provides the embedded starter site written by
// "folio new".
package scaffold

import "embed"

// Templates contains the starter site. Files use Go text/template syntax;
// a .tmpl suffix is stripped when written.
//
//go:embed all:templates
var Templates embed.FS
