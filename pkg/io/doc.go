// Package io reads and writes diagram input files.
//
// # Format
//
// A diagram file holds the branch names in row order, the commits, and the
// links between them. JSON and YAML share the same shape:
//
//	{
//	  "branches": ["Master", "HotFix", "Release"],
//	  "commits": [
//	    {"commit": 2, "branch": 1},
//	    {"commit": 3, "branch": 2}
//	  ],
//	  "links": [
//	    {"from": {"commit": 2, "branch": 1}, "to": {"commit": 3, "branch": 2}}
//	  ]
//	}
//
// Unknown keys are rejected so typos surface instead of being ignored.
// Decoded diagrams are validated with [diagram.Diagram.Validate] before they
// are returned.
//
// # Files
//
// [Import] and [Export] pick the encoding from the file extension (.json,
// .yaml or .yml). Every file this package writes goes through
// [WriteFileAtomic]: the content lands in a uniquely named temporary file
// next to the target and is renamed into place only once fully written, so
// an interrupted run never leaves a truncated output behind.
//
// [diagram.Diagram.Validate]: github.com/matzehuels/gitdiagram/pkg/diagram.Diagram.Validate
package io
