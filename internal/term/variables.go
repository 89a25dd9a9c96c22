package term

// VarBank maps (index, type) pairs to a unique variable term node and
// hands out fresh variables for clause copying (spec.md §3 "Variable
// bank... plus a fresh-variable counter used during clause copying to
// ensure variable-disjointness between premises"). It shares the owning
// Bank's id space so variable IDs and function-term IDs interoperate
// transparently everywhere a term.ID is expected.
type VarBank struct {
	bank  *Bank
	byKey map[varKey]ID
	fresh int
}

type varKey struct {
	index int
	typ   FunCode
}

func newVarBank(b *Bank) *VarBank {
	return &VarBank{bank: b, byKey: make(map[varKey]ID)}
}

// Get returns the unique shared variable node for (index, typ),
// allocating it on first use.
func (vb *VarBank) Get(index int, typ FunCode) ID {
	key := varKey{index, typ}
	if id, ok := vb.byKey[key]; ok {
		return id
	}
	id := vb.bank.alloc()
	n := vb.bank.Node(id)
	n.IsVar = true
	n.VarIndex = index
	n.VarType = typ
	n.Weight = 1
	n.EntryNo = vb.bank.entryNo
	vb.bank.entryNo++
	vb.byKey[key] = id
	if index > vb.fresh {
		vb.fresh = index
	}
	return id
}

// Fresh allocates a variable index not used anywhere yet for the given
// type, for use when copying a clause variable-disjoint from its
// premises (spec.md §3, §4.3 "copy (variable-disjoint)").
func (vb *VarBank) Fresh(typ FunCode) ID {
	vb.fresh++
	return vb.Get(vb.fresh, typ)
}

// ReserveOffset returns an index guaranteed unused so far, for use as a
// base when renumbering a whole block of variables at once (clause
// copying, spec.md §3, §4.3). Get() bumps the fresh counter past
// whatever offset-shifted indices are subsequently allocated, so later
// reservations never collide with this block.
func (vb *VarBank) ReserveOffset() int {
	vb.fresh++
	return vb.fresh
}

// all returns every live variable node id, used by Bank.GC to keep the
// variable bank itself from ever being swept (spec.md §5: the variable
// bank is shared global state, alongside the term bank).
func (vb *VarBank) all() []ID {
	ids := make([]ID, 0, len(vb.byKey))
	for _, id := range vb.byKey {
		ids = append(ids, id)
	}
	return ids
}
