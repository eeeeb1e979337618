package folio

import "embed"

// EmbeddedLocales contains the UI string catalogs shipped with folio:
// locales/en.yaml, locales/pt.yaml
//
//go:embed locales/*.yaml
var EmbeddedLocales embed.FS
