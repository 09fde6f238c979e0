package lp

// Ratio constraints relate a weighted sum of variables to a fraction of
// another weighted sum, e.g. "farm+commercial loans >= 40% of all loans"
// or "blended octane >= 87". They cannot be fed to a solver as written:
// the right-hand side holds variables. Rewriting moves every variable
// term to the left so the row becomes a plain "<= 0" inequality, and the
// sign of the moved terms is easy to get wrong by hand, so the algebra
// lives here once and is shared by every scenario.

// RatioAtLeast rewrites
//
//	sum(lhs) >= fraction * sum(rhs)
//
// into the terms of an equivalent "<= 0" constraint:
//
//	fraction*sum(rhs) - sum(lhs) <= 0
//
// Terms referring to the same variable on both sides are merged, so for
// the common "subset >= fraction of total" case a member variable x ends
// up with coefficient -(1-fraction) and a non-member with +fraction.
func RatioAtLeast(lhs, rhs []Term, fraction float64) []Term {
	return combineScaled(rhs, fraction, lhs, -1)
}

// RatioAtMost rewrites
//
//	sum(lhs) <= fraction * sum(rhs)
//
// into the terms of an equivalent "<= 0" constraint:
//
//	sum(lhs) - fraction*sum(rhs) <= 0
func RatioAtMost(lhs, rhs []Term, fraction float64) []Term {
	return combineScaled(lhs, 1, rhs, -fraction)
}

// combineScaled returns the merged terms of aScale*sum(a) + bScale*sum(b).
func combineScaled(a []Term, aScale float64, b []Term, bScale float64) []Term {
	acc := make(map[Var]float64, len(a)+len(b))
	order := make([]Var, 0, len(a)+len(b))
	add := func(v Var, c float64) {
		if _, seen := acc[v]; !seen {
			order = append(order, v)
		}
		acc[v] += c
	}
	for _, t := range a {
		add(t.Var, aScale*t.Coeff)
	}
	for _, t := range b {
		add(t.Var, bScale*t.Coeff)
	}
	out := make([]Term, 0, len(order))
	for _, v := range order {
		if c := acc[v]; c != 0 {
			out = append(out, Term{Var: v, Coeff: c})
		}
	}
	return out
}
