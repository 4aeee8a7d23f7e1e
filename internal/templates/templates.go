// Package templates holds the files embedded into the installer binary.
package templates

import (
	"embed"
	"io/fs"
)

//go:embed propapp-install.toml
var embedded embed.FS

// Read returns the embedded file at name.
func Read(name string) ([]byte, error) {
	return fs.ReadFile(embedded, name)
}
