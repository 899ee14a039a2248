package icons

import _ "embed"

//go:embed churnlens.png
var appIconPNG []byte

// AppIconPNG is the application icon used when no local window icon is found.
func AppIconPNG() []byte {
	return appIconPNG
}
