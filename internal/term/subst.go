package term

// Substitution binds variable term IDs to replacement term IDs. Since
// every term is hash-consed, two terms are syntactically equal iff
// their IDs are equal — substitution application is the only place
// that needs to walk term structure rather than just compare IDs.
type Substitution map[ID]ID

// Lookup follows chained bindings (x -> y -> f(a)) to a final value,
// returning x itself if x is unbound.
func (s Substitution) Lookup(x ID) ID {
	seen := map[ID]bool{}
	for {
		v, ok := s[x]
		if !ok {
			return x
		}
		if seen[v] {
			return v // defensive: a cyclic binding should never occur post-occurs-check
		}
		seen[v] = true
		x = v
	}
}

// Apply rebuilds t with every variable replaced per s, reusing the
// Bank's hash-consing so the result is itself maximally shared
// (invariant I2).
func (b *Bank) Apply(s Substitution, t ID) ID {
	n := b.Node(t)
	if n.IsVar {
		bound := s.Lookup(t)
		if bound == t {
			return t
		}
		return b.Apply(s, bound)
	}
	if len(n.Args) == 0 {
		return t
	}
	newArgs := make([]ID, len(n.Args))
	changed := false
	for i, a := range n.Args {
		na := b.Apply(s, a)
		newArgs[i] = na
		if na != a {
			changed = true
		}
	}
	if !changed {
		return t
	}
	return b.Insert(n.Functor, newArgs)
}

// Occurs reports whether variable v occurs in t under the bank's
// current sharing (used by MGU's occurs check).
func (b *Bank) Occurs(v, t ID) bool {
	if v == t {
		return true
	}
	n := b.Node(t)
	if n.IsVar {
		return false
	}
	for _, a := range n.Args {
		if b.Occurs(v, a) {
			return true
		}
	}
	return false
}

// VarsIn collects, in first-occurrence order, every variable id
// appearing in t.
func (b *Bank) VarsIn(t ID) []ID {
	var out []ID
	seen := map[ID]bool{}
	var walk func(ID)
	walk = func(id ID) {
		n := b.Node(id)
		if n.IsVar {
			if !seen[id] {
				seen[id] = true
				out = append(out, id)
			}
			return
		}
		for _, a := range n.Args {
			walk(a)
		}
	}
	walk(t)
	return out
}

// Unify computes the most general unifier of s and t, returning
// (subst, true) on success or (nil, false) if no unifier exists
// (occurs check included — used by paramodulation, equality
// resolution, and equality factoring, spec.md §4.4).
func (b *Bank) Unify(s, t ID) (Substitution, bool) {
	subst := Substitution{}
	if b.unify(s, t, subst) {
		return subst, true
	}
	return nil, false
}

func (b *Bank) unify(s, t ID, subst Substitution) bool {
	s = b.resolve(s, subst)
	t = b.resolve(t, subst)
	if s == t {
		return true
	}
	sn, tn := b.Node(s), b.Node(t)
	if sn.IsVar {
		if b.occursUnder(s, t, subst) {
			return false
		}
		subst[s] = t
		return true
	}
	if tn.IsVar {
		if b.occursUnder(t, s, subst) {
			return false
		}
		subst[t] = s
		return true
	}
	if sn.Functor != tn.Functor || len(sn.Args) != len(tn.Args) {
		return false
	}
	for i := range sn.Args {
		if !b.unify(sn.Args[i], tn.Args[i], subst) {
			return false
		}
	}
	return true
}

// resolve follows bindings accumulated so far in an in-progress unify
// call (distinct from Substitution.Lookup, which operates on a
// finished substitution and does not need the intermediate subst map
// passed around).
func (b *Bank) resolve(t ID, subst Substitution) ID {
	for {
		n := b.Node(t)
		if !n.IsVar {
			return t
		}
		v, ok := subst[t]
		if !ok {
			return t
		}
		t = v
	}
}

func (b *Bank) occursUnder(v, t ID, subst Substitution) bool {
	t = b.resolve(t, subst)
	if v == t {
		return true
	}
	n := b.Node(t)
	if n.IsVar {
		return false
	}
	for _, a := range n.Args {
		if b.occursUnder(v, a, subst) {
			return true
		}
	}
	return false
}
