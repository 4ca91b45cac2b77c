// Package templates provides embedded scaffold template files.
package templates

import "embed"

// all: is required so files like __init__.py.tmpl (leading underscore)
// are embedded too.
//
//go:embed all:scaffold
var FS embed.FS

// Get reads a scaffold template file by its path under the scaffold directory.
func Get(path string) (string, error) {
	data, err := FS.ReadFile("scaffold/" + path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
