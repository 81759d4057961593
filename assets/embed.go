package assets

import _ "embed"

// PlaceholderPNG is shown on the display surface before the first page loads.
//
//go:embed placeholder.png
var PlaceholderPNG []byte
