package iacinit

import "embed"

//go:embed topics/*.md
var topicsFS embed.FS
