package graph

// FromTiers builds the DAG implied by a temporal ordering: every variable of
// an earlier tier gets an edge to every variable of every later tier, adjacent
// or not. Variables inside one tier are not connected to each other.
//
// A name should appear in one tier only. Repeating a name across tiers is not
// checked; the would-be self loop is skipped and the result is unspecified.
func FromTiers(tiers [][]string) *DAG {
	d := New()
	for _, tier := range tiers {
		for _, name := range tier {
			d.node(name)
		}
	}
	for i := range tiers {
		for j := i + 1; j < len(tiers); j++ {
			for _, from := range tiers[i] {
				for _, to := range tiers[j] {
					_ = d.AddEdge(from, to)
				}
			}
		}
	}
	return d
}
