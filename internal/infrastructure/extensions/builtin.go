package extensions

import (
	"embed"
	"io/fs"
)

// BuiltinScheme is the URI scheme of extensions shipped inside the binary.
const BuiltinScheme = "builtin"

//go:embed all:builtin
var builtinFS embed.FS

// BuiltinFS returns the embedded extensions, one directory per extension.
func BuiltinFS() fs.FS {
	sub, err := fs.Sub(builtinFS, "builtin")
	if err != nil {
		// fs.Sub only fails on an invalid path literal.
		panic(err)
	}
	return sub
}
