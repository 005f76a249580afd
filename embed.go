package cleanblog

import "embed"

// migrationFiles holds the versioned schema migrations applied by NewStore.
//
//go:embed migrations/*.sql
var migrationFiles embed.FS
