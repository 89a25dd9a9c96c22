package clause

import "saturn/internal/term"

// Set is a doubly linked clause set anchored at a sentinel node, with
// lazily built auxiliary indices (spec.md §3 "Clause set"): a
// feature-vector index for subsumption, a discrimination-tree-style
// demodulator index on maximal sides of positive unit equations, and a
// fingerprint index on paramodulation positions. Invariant I12 (every
// member's set pointer is exactly this Set) is maintained by Insert/
// Extract; I13 (indices reflect current membership) is maintained by
// invalidating the relevant index on every mutation and rebuilding it
// lazily on next use, mirroring the teacher's OptimizationPipeline
// "invalidate, rebuild on demand" discipline.
type Set struct {
	sentinel Clause
	size     int

	subsumption *featureIndex
	demod       *demodIndex
	paramodPos  *fingerprintIndex
}

func NewSet() *Set {
	s := &Set{}
	s.sentinel.next = &s.sentinel
	s.sentinel.prev = &s.sentinel
	return s
}

func (s *Set) Size() int { return s.size }

// Insert links c into the set (I12) and invalidates every lazy index
// (I13).
func (s *Set) Insert(c *Clause) {
	c.set = s
	c.next = s.sentinel.next
	c.prev = &s.sentinel
	s.sentinel.next.prev = c
	s.sentinel.next = c
	s.size++
	s.invalidate()
}

// Extract unlinks c (I12) and invalidates the lazy indices (I13).
func (s *Set) Extract(c *Clause) {
	if c.set != s {
		return
	}
	c.prev.next = c.next
	c.next.prev = c.prev
	c.next, c.prev, c.set = nil, nil, nil
	s.size--
	s.invalidate()
}

func (s *Set) invalidate() {
	s.subsumption = nil
	s.demod = nil
	s.paramodPos = nil
}

// All returns every member clause in set order (used by maintenance
// passes and tests; not on any inference-engine hot path).
func (s *Set) All() []*Clause {
	out := make([]*Clause, 0, s.size)
	for c := s.sentinel.next; c != &s.sentinel; c = c.next {
		out = append(out, c)
	}
	return out
}

// SubsumptionIndex returns the feature-vector index (spec.md §4.4
// "non-unit subsumption via feature-vector index"), building it on
// first use after the last invalidation.
func (s *Set) SubsumptionIndex(b *term.Bank) *featureIndex {
	if s.subsumption == nil {
		s.subsumption = buildFeatureIndex(b, s.All())
	}
	return s.subsumption
}

// DemodulatorIndex returns the discrimination-tree-style index over
// maximal sides of positive unit equations (spec.md §3).
func (s *Set) DemodulatorIndex(b *term.Bank) *demodIndex {
	if s.demod == nil {
		s.demod = buildDemodIndex(b, s.All())
	}
	return s.demod
}

// ParamodPositionIndex returns the fingerprint index used to prune
// paramodulation-into candidates (spec.md §3).
func (s *Set) ParamodPositionIndex(b *term.Bank) *fingerprintIndex {
	if s.paramodPos == nil {
		s.paramodPos = buildFingerprintIndex(b, s.All())
	}
	return s.paramodPos
}
