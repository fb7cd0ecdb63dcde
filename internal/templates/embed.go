package templates

import "embed"

// Files holds base.html plus one file per page.
//
//go:embed *.html
var Files embed.FS
