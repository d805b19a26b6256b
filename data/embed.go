// Package data ships the sample sprite types so the viewers run without a
// data directory on disk.
package data

import (
	"embed"
	"io/fs"
)

//go:embed sprite_types
var spriteTypesFS embed.FS

// ListFile is the type list document at the root of SpriteTypes.
const ListFile = "sprite_type_list.xml"

// SpriteTypes returns the embedded sprite_types directory.
func SpriteTypes() fs.FS {
	sub, err := fs.Sub(spriteTypesFS, "sprite_types")
	if err != nil {
		panic(err)
	}
	return sub
}
