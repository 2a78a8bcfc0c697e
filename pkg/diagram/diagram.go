package diagram

import (
	"fmt"

	"github.com/matzehuels/gitdiagram/pkg/errors"
)

// Commit is a commit marker at a grid position.
type Commit struct {
	Commit int // horizontal slot, >= 0
	Branch int // branch row, index into Diagram.Branches
}

// String formats the commit as "(commit,branch)".
func (c Commit) String() string { return fmt.Sprintf("(%d,%d)", c.Commit, c.Branch) }

// Link is a directed connection between two commits.
type Link struct {
	From, To Commit
}

// String formats the link as "(c,b)->(c,b)".
func (l Link) String() string { return l.From.String() + "->" + l.To.String() }

// SameBranch reports whether both ends sit on the same branch row.
func (l Link) SameBranch() bool { return l.From.Branch == l.To.Branch }

// Branch is a named branch row.
type Branch struct {
	Index int
	Name  string
}

// Diagram is the complete input of a render.
type Diagram struct {
	Branches []string
	Commits  []Commit
	Links    []Link
}

// BranchCount returns the number of branch rows.
func (d *Diagram) BranchCount() int { return len(d.Branches) }

// BranchList returns the branches in row order.
func (d *Diagram) BranchList() []Branch {
	out := make([]Branch, len(d.Branches))
	for i, name := range d.Branches {
		out[i] = Branch{Index: i, Name: name}
	}
	return out
}

// MaxCommit returns the largest commit index used by any commit or link
// endpoint, or -1 if the diagram has neither.
func (d *Diagram) MaxCommit() int {
	maxIdx := -1
	for _, c := range d.Commits {
		maxIdx = max(maxIdx, c.Commit)
	}
	for _, l := range d.Links {
		maxIdx = max(maxIdx, l.From.Commit, l.To.Commit)
	}
	return maxIdx
}

// Validate checks that the diagram has at least one branch, that every
// branch name is printable, and that every commit and link endpoint lies on
// an existing branch row at a non-negative commit index.
func (d *Diagram) Validate() error {
	if len(d.Branches) == 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "diagram needs at least one branch")
	}
	for i, name := range d.Branches {
		if err := errors.ValidateBranchName(name); err != nil {
			return errors.New(errors.ErrCodeInvalidConfig, "branch %d: %s", i, errors.UserMessage(err))
		}
	}
	for i, c := range d.Commits {
		if err := d.checkCommit(c); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidConfig, err, "commit %d %s", i, c)
		}
	}
	for i, l := range d.Links {
		if err := d.checkCommit(l.From); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidConfig, err, "link %d %s: from", i, l)
		}
		if err := d.checkCommit(l.To); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidConfig, err, "link %d %s: to", i, l)
		}
	}
	return nil
}

func (d *Diagram) checkCommit(c Commit) error {
	if c.Commit < 0 {
		return fmt.Errorf("commit index %d is negative", c.Commit)
	}
	if c.Branch < 0 || c.Branch >= len(d.Branches) {
		return fmt.Errorf("branch index %d out of range [0, %d)", c.Branch, len(d.Branches))
	}
	return nil
}
