package schema

import "embed"

// Files holds the CREATE TABLE IF NOT EXISTS statements for each supported
// dialect, one table per file, applied in file-prefix order.
//
//go:embed postgres/*.sql sqlite/*.sql
var Files embed.FS
