package symbolic

import (
	"fmt"
	"math/bits"
	"sort"
	"strings"

	"github.com/hupe1980/galgo/algebra"
)

// Add returns the canonical sum of a and b.
func Add(a, b Multivector) Multivector {
	return Canonical(concat(a, b))
}

// Sub returns the canonical difference a-b.
func Sub(a, b Multivector) Multivector {
	return Add(a, Scale(b, RatMinusOne))
}

// Scale returns a scaled by the rational r.
func Scale(a Multivector, r Rat) Multivector {
	out := Multivector{
		Inds:  append([]Ind(nil), a.Inds...),
		Mons:  make([]Mon, len(a.Mons)),
		Terms: append([]Term(nil), a.Terms...),
	}
	for i, m := range a.Mons {
		m.Coeff = m.Coeff.Mul(r)
		out.Mons[i] = m
	}
	return Canonical(out)
}

// Rev returns the canonical reversion of a: terms of grade 2 and 3 mod 4
// change sign.
func Rev(alg *algebra.Algebra, a Multivector) Multivector {
	var out Multivector
	for _, t := range a.Terms {
		m := a.Mons[t.Mon]
		start := len(out.Inds)
		out.Inds = append(out.Inds, a.Inds[m.Start:m.Start+m.Width]...)
		c := m.Coeff
		if algebra.ReverseSign(alg.Grade(t.Blade)) < 0 {
			c = c.Neg()
		}
		out.Mons = append(out.Mons, Mon{Coeff: c, Width: m.Width, Start: start})
		out.Terms = append(out.Terms, Term{Count: t.Count, Mon: len(out.Mons) - 1, Blade: t.Blade})
	}
	return Canonical(out)
}

// Mul returns the canonical geometric product of a and b under alg. Every
// term pair whose blade product survives the metric emits a term whose
// monomial concatenates the source monomials; degenerate pairs (a shared
// null generator) are pruned before canonicalization.
func Mul(alg *algebra.Algebra, a, b Multivector) Multivector {
	var out Multivector
	for _, ta := range a.Terms {
		ma := a.Mons[ta.Mon]
		for _, tb := range b.Terms {
			mb := b.Mons[tb.Mon]
			blade, mult := alg.Product(ta.Blade, tb.Blade)
			if mult == 0 {
				continue
			}
			start := len(out.Inds)
			out.Inds = append(out.Inds, a.Inds[ma.Start:ma.Start+ma.Width]...)
			out.Inds = append(out.Inds, b.Inds[mb.Start:mb.Start+mb.Width]...)
			coeff := ma.Coeff.Mul(mb.Coeff)
			if mult < 0 {
				coeff = coeff.Neg()
			}
			out.Mons = append(out.Mons, Mon{Coeff: coeff, Width: ma.Width + mb.Width, Start: start})
			out.Terms = append(out.Terms, Term{Count: ta.Count * tb.Count, Mon: len(out.Mons) - 1, Blade: blade})
		}
	}
	return Canonical(out)
}

// concat appends b's arrays to a copy of a's, rebasing b's offsets.
func concat(a, b Multivector) Multivector {
	out := Multivector{
		Inds:  append(append([]Ind(nil), a.Inds...), b.Inds...),
		Mons:  append([]Mon(nil), a.Mons...),
		Terms: append([]Term(nil), a.Terms...),
	}
	indOff, monOff := len(a.Inds), len(a.Mons)
	for _, m := range b.Mons {
		m.Start += indOff
		out.Mons = append(out.Mons, m)
	}
	for _, t := range b.Terms {
		t.Mon += monOff
		out.Terms = append(out.Terms, t)
	}
	return out
}

// entry is one term flattened for sorting: its blade, its monomial's
// indeterminate window (sorted by source id, so commuted products compare
// equal) and its count-scaled coefficient.
type entry struct {
	blade algebra.Blade
	inds  []Ind
	coeff Rat
}

// Canonical reduces a to its canonical term list: per-monomial ind windows
// sorted by source id, terms ordered by (blade, width, ids), structurally
// identical monomials merged by summing coefficients, zero terms dropped.
// Canonical is idempotent, and the ordering is load-bearing: closed-form
// consumers rely on the scalar part, when present, being term 0.
func Canonical(a Multivector) Multivector {
	entries := make([]entry, 0, len(a.Terms))
	for _, t := range a.Terms {
		m := a.Mons[t.Mon]
		if m.Coeff.IsZero() {
			continue
		}
		w := make([]Ind, m.Width)
		copy(w, a.Inds[m.Start:m.Start+m.Width])
		sort.Slice(w, func(i, j int) bool {
			if w[i].Source != w[j].Source {
				return w[i].Source < w[j].Source
			}
			return lessRat(w[i].Mult, w[j].Mult)
		})
		coeff := m.Coeff
		if t.Count != 1 {
			coeff = coeff.MulInt(int64(t.Count))
		}
		entries = append(entries, entry{blade: t.Blade, inds: w, coeff: coeff})
	}

	sort.SliceStable(entries, func(i, j int) bool { return lessEntry(entries[i], entries[j]) })

	merged := make([]entry, 0, len(entries))
	for _, e := range entries {
		if n := len(merged); n > 0 && sameMonomial(merged[n-1], e) {
			merged[n-1].coeff = merged[n-1].coeff.Add(e.coeff)
			continue
		}
		merged = append(merged, e)
	}

	var out Multivector
	for _, e := range merged {
		if e.coeff.IsZero() {
			continue
		}
		start := len(out.Inds)
		out.Inds = append(out.Inds, e.inds...)
		out.Mons = append(out.Mons, Mon{Coeff: e.coeff, Width: len(e.inds), Start: start})
		out.Terms = append(out.Terms, Term{Count: 1, Mon: len(out.Mons) - 1, Blade: e.blade})
	}
	return out
}

func lessRat(x, y Rat) bool {
	return x.n*y.d < y.n*x.d
}

func lessEntry(x, y entry) bool {
	if x.blade != y.blade {
		return x.blade < y.blade
	}
	if len(x.inds) != len(y.inds) {
		return len(x.inds) < len(y.inds)
	}
	for k := range x.inds {
		if x.inds[k].Source != y.inds[k].Source {
			return x.inds[k].Source < y.inds[k].Source
		}
	}
	for k := range x.inds {
		if x.inds[k].Mult != y.inds[k].Mult {
			return lessRat(x.inds[k].Mult, y.inds[k].Mult)
		}
	}
	return false
}

func sameMonomial(x, y entry) bool {
	if x.blade != y.blade || len(x.inds) != len(y.inds) {
		return false
	}
	for k := range x.inds {
		if x.inds[k] != y.inds[k] {
			return false
		}
	}
	return true
}

// String renders the multivector in e-notation, e.g. "x0 - 1/2 x1 x2 e01".
func (m Multivector) String() string {
	if len(m.Terms) == 0 {
		return "0"
	}
	var sb strings.Builder
	for i, t := range m.Terms {
		mon := m.Mons[t.Mon]
		c := mon.Coeff
		if t.Count != 1 {
			c = c.MulInt(int64(t.Count))
		}
		neg := c.Sign() < 0
		if neg {
			c = c.Neg()
		}
		switch {
		case i == 0 && neg:
			sb.WriteString("-")
		case i > 0 && neg:
			sb.WriteString(" - ")
		case i > 0:
			sb.WriteString(" + ")
		}
		wrote := false
		if c != RatOne || (mon.Width == 0 && t.Blade == 0) {
			sb.WriteString(c.String())
			wrote = true
		}
		for k := 0; k < mon.Width; k++ {
			if wrote {
				sb.WriteString(" ")
			}
			fmt.Fprintf(&sb, "x%d", m.Inds[mon.Start+k].Source)
			wrote = true
		}
		if t.Blade != 0 {
			if wrote {
				sb.WriteString(" ")
			}
			sb.WriteString(BladeName(t.Blade))
		}
	}
	return sb.String()
}

// BladeName renders a blade in e-notation, e.g. 0b1010 as "e13". Blade 0
// renders as "e".
func BladeName(b algebra.Blade) string {
	var sb strings.Builder
	sb.WriteString("e")
	for v := uint8(b); v != 0; v &= v - 1 {
		fmt.Fprintf(&sb, "%d", bits.TrailingZeros8(v))
	}
	return sb.String()
}
