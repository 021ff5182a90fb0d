// Package data provides the embedded map, spawn tables and dialogue content.
package data

import "embed"

// File names inside the embedded filesystem
const (
	MapFile       = "map.json"
	EntitiesFile  = "entities.yaml"
	DialoguesFile = "dialogues.yaml"
	ItemsFile     = "items.yaml"
)

//go:embed *.json *.yaml
var dataFS embed.FS

// FS returns the embedded filesystem containing game data.
func FS() embed.FS {
	return dataFS
}
