package assets

import "embed"

// AssetsFS holds the stylesheet. Run "go run ./cmd/do gen" after
// changing classes in internal/ui to rebuild css/output.css.
//
//go:embed css/output.css
var AssetsFS embed.FS
