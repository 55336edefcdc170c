// Package io provides JSON import and export for mandala documents.
//
// # JSON Format
//
//	{
//	  "id": "workshop",
//	  "configuration": {
//	    "dimensions": [{"name": "Ecology", "color": "#4caf50"}],
//	    "scales": ["Person", "Community"]
//	  },
//	  "notes": [
//	    {"id": "n1", "content": "Seed library", "position": {"x": 0.2, "y": -0.1},
//	     "children": [{"id": "n1a", "content": "Swap day"}]}
//	  ],
//	  "characters": [],
//	  "images": []
//	}
//
// Positions are normalized to [-1, 1] relative to the outer ring. An empty
// configuration is replaced by the default one on import.
//
// # Import
//
// Use [ImportJSON] to read a document from a file path, or [ReadJSON] to read
// from any io.Reader:
//
//	m, err := io.ImportJSON("workshop.json")
//
// # Export
//
// Use [ExportJSON] to write a document to a file, or [WriteJSON] to write to
// any io.Writer. The output re-imports identically.
//
// For computed layout positions, use the JSON sink in [render/sink], which
// dumps the complete scene in logical pixel space.
//
// [render/sink]: github.com/matzehuels/mandala/pkg/render/sink
package io
