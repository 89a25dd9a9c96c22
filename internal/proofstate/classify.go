package proofstate

import "saturn/internal/clause"

// classify returns which of the four processed sets c belongs in
// (spec.md §4.6 step 6 "classify it into one of four processed sets
// (positive rules vs. positive equations vs. negative units vs.
// non-units) based on structure"). c's literals must already have
// MaximalLiterals/Orient run so Oriented() is current.
func (st *State) classify(c *clause.Clause) *clause.Set {
	if len(c.Literals) != 1 {
		return st.NonUnits
	}
	l := c.Literals[0]
	if !l.Positive {
		return st.NegUnits
	}
	if l.Oriented() {
		return st.PosRules
	}
	return st.PosEqs
}

// insertProcessed classifies and inserts c into its processed set,
// marking it processed (spec.md §4.6 step 6).
func (st *State) insertProcessed(c *clause.Clause) {
	c.MarkProcessed()
	st.classify(c).Insert(c)
}
