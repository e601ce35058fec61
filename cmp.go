package biguint

// Cmp compares u and n and returns:
//
//	-1 if u <  n
//	 0 if u == n
//	+1 if u >  n
//
// Trailing zero limbs are ignored, so equal magnitudes compare equal whatever
// form they are held in.
func (u Uint) Cmp(n Uint) int {
	switch {
	case !u.expanded && !n.expanded:
		return cmp64(u.word, n.word)

	case !u.expanded:
		return -n.cmpWord(u.word)

	case !n.expanded:
		return u.cmpWord(n.word)
	}

	ul, nl := len(u.limbs), len(n.limbs)
	top := ul
	if nl > top {
		top = nl
	}
	for i := top - 1; i >= 0; i-- {
		if c := cmp64(u.limb(i), n.limb(i)); c != 0 {
			return c
		}
	}
	return 0
}

// cmpWord compares an expanded u against a single word. Any nonzero limb
// above limb 0 makes u the greater.
func (u Uint) cmpWord(w uint64) int {
	if len(u.limbs) == 0 {
		return cmp64(0, w)
	}
	for _, l := range u.limbs[1:] {
		if l != 0 {
			return 1
		}
	}
	return cmp64(u.limbs[0], w)
}

func cmp64(a, b uint64) int {
	if a > b {
		return 1
	} else if a < b {
		return -1
	}
	return 0
}

func (u Uint) Cmp64(n uint64) int { return u.Cmp(Uint{word: n}) }

func (u Uint) Equal(n Uint) bool     { return u.Cmp(n) == 0 }
func (u Uint) Equal64(n uint64) bool { return u.Cmp64(n) == 0 }

func (u Uint) GreaterThan(n Uint) bool      { return u.Cmp(n) > 0 }
func (u Uint) GreaterOrEqualTo(n Uint) bool { return u.Cmp(n) >= 0 }
func (u Uint) LessThan(n Uint) bool         { return u.Cmp(n) < 0 }
func (u Uint) LessOrEqualTo(n Uint) bool    { return u.Cmp(n) <= 0 }
