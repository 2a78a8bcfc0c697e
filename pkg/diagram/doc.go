// Package diagram defines the input model of a branch/commit diagram.
//
// # Overview
//
// A [Diagram] is an ordered list of branch names plus commits and links
// placed on an abstract grid:
//
//   - Branch rows are indexed by their position in [Diagram.Branches]
//   - A [Commit] is a (commit index, branch index) pair; the commit index is
//     the horizontal slot, increasing left to right
//   - A [Link] connects two commits and is drawn as an arrow ending at To
//
// Commits carry no identity beyond their coordinates, so two links may refer
// to the same commit simply by repeating its coordinates.
//
// # Validation
//
// [Diagram.Validate] checks every coordinate against the branch list before
// anything is drawn and reports the first offending commit or link:
//
//	d := diagram.Example()
//	if err := d.Validate(); err != nil {
//	    log.Fatal(err)
//	}
//
// Validation errors carry the [errors.ErrCodeInvalidConfig] code.
//
// [errors.ErrCodeInvalidConfig]: github.com/matzehuels/gitdiagram/pkg/errors.ErrCodeInvalidConfig
package diagram
