package formats

import (
	"bytes"
	"encoding/json"

	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/nanotasks/tasklist"
)

// JSON renders the snapshot as indented JSON
var JSON = &Format{
	Name:      "json",
	Extension: ".json",
	Render: func(snap tasklist.Snapshot) ([]byte, error) {
		out, err := json.MarshalIndent(normalize(snap), "", "  ")
		if err != nil {
			return nil, err
		}
		return append(out, '\n'), nil
	},
}

// YAML renders the snapshot as YAML
var YAML = &Format{
	Name:      "yaml",
	Extension: ".yaml",
	Render: func(snap tasklist.Snapshot) ([]byte, error) {
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(normalize(snap)); err != nil {
			return nil, err
		}
		if err := enc.Close(); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	},
}

// normalize makes the empty state serialize rows as an empty list rather
// than null
func normalize(snap tasklist.Snapshot) tasklist.Snapshot {
	if snap.Rows == nil {
		snap.Rows = []tasklist.Row{}
	}
	return snap
}

func init() {
	mustRegister(JSON)
	mustRegister(YAML)
}
