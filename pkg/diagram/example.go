package diagram

// Example returns the built-in sample diagram: six branch rows, three
// commits and three links, one of them between commits on the same row.
func Example() *Diagram {
	return &Diagram{
		Branches: []string{
			"Master",
			"HotFix",
			"Release",
			"Dev",
			"Feature 1",
			"Feature 2",
		},
		Commits: []Commit{
			{Commit: 2, Branch: 1},
			{Commit: 3, Branch: 2},
			{Commit: 4, Branch: 1},
		},
		Links: []Link{
			{From: Commit{2, 1}, To: Commit{3, 2}},
			{From: Commit{2, 1}, To: Commit{4, 1}},
			{From: Commit{3, 2}, To: Commit{4, 1}},
		},
	}
}
