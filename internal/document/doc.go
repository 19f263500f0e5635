// Package document reads view trees from JSON layout documents and writes
// solved frames back out.
//
// A document is a single node object:
//
//	{
//	  "id": "root",
//	  "orientation": "horizontal",
//	  "width": "fill",
//	  "height": 10,
//	  "padding": [1, 2],
//	  "children": [
//	    {"id": "side", "width": 20, "label": "menu", "border": "rounded"},
//	    {"id": "main", "width": "fill:0.5", "visibility": "invisible"}
//	  ]
//	}
//
// Sizes are a number (fixed), "wrap", "fill" or "fill:<weight>". Edges are a
// number for all sides, [vertical, horizontal] or [top, right, bottom, left].
// The border is a boolean (true draws a single line) or a style name.
package document
