package sink

import (
	"encoding/json"

	"github.com/matzehuels/mandala/pkg/layout"
)

// RenderJSON serializes a scene for external tools. Coordinates are in
// frame space.
func RenderJSON(s *layout.Scene) ([]byte, error) {
	return json.MarshalIndent(s, "", "  ")
}
