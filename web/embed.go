package web

import "embed"

// Templates holds the default page templates; a custom template directory
// overrides them file by file.
//
//go:embed templates
var Templates embed.FS
