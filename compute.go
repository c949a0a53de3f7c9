package galgo

import (
	"context"
	"fmt"

	"github.com/RoaringBitmap/roaring/v2"
	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/galgo/algebra"
	"github.com/hupe1980/galgo/symbolic"
)

// Func builds a symbolic expression over the bound entity operands. It must
// be pure: the same args always produce the same expression. args[i] is the
// binding of the i-th entity passed to Compile/Compute.
type Func func(args []Expr) Expr

// evalTerm is one surviving canonical term lowered for evaluation: the
// count, coefficient and indeterminate multipliers are folded into a single
// factor, leaving one multiply per indeterminate plus one accumulate.
type evalTerm struct {
	factor float64
	slot   int
	inds   []uint32
}

// Program is a compiled expression: the canonical symbolic form plus the
// binding layout of its entity prototypes. Compilation is independent of
// concrete values, so one Program can be evaluated over many entity sets;
// Programs are immutable and safe for concurrent use.
type Program struct {
	alg     *algebra.Algebra
	mv      symbolic.Multivector
	terms   []evalTerm
	blades  []algebra.Blade
	offsets []uint32
	counts  []int
	total   int
	opts    options
}

// Compile binds the prototypes at contiguous, disjoint id ranges (assigned
// in entity order from id 0), reduces fn's expression to canonical form and
// lowers it for evaluation. The prototypes fix only shape; any entities of
// the same shape may be supplied to Eval.
func Compile(alg *algebra.Algebra, fn Func, prototypes []Entity, optFns ...Option) (*Program, error) {
	opts := defaultOptions()
	for _, f := range optFns {
		f(&opts)
	}
	if alg == nil {
		return nil, ErrNilAlgebra
	}
	if fn == nil {
		return nil, ErrNilFunc
	}

	p := &Program{
		alg:     alg,
		offsets: make([]uint32, len(prototypes)),
		counts:  make([]int, len(prototypes)),
		opts:    opts,
	}

	args := make([]Expr, len(prototypes))
	seen := roaring.New()
	var base uint32
	for i, ent := range prototypes {
		n := len(ent.Values())
		p.offsets[i] = base
		p.counts[i] = n

		mv := ent.Bind(base)

		ids := roaring.New()
		for _, ind := range mv.Inds {
			ids.Add(ind.Source)
		}
		if seen.Intersects(ids) {
			err := &ErrOverlappingRange{Entity: i}
			opts.logger.LogCompile(len(prototypes), 0, 0, err)
			return nil, err
		}
		reserved := roaring.New()
		reserved.AddRange(uint64(base), uint64(base)+uint64(n))
		if !roaring.AndNot(ids, reserved).IsEmpty() {
			err := &ErrBindingOutOfRange{Entity: i, Base: base, Count: n}
			opts.logger.LogCompile(len(prototypes), 0, 0, err)
			return nil, err
		}
		seen.Or(ids)

		args[i] = Expr{alg: alg, mv: mv}
		base += uint32(n)
	}
	p.total = int(base)

	res := fn(args)
	if res.err != nil {
		opts.logger.LogCompile(len(prototypes), p.total, 0, res.err)
		return nil, res.err
	}
	if res.alg != alg {
		opts.logger.LogCompile(len(prototypes), p.total, 0, ErrAlgebraMismatch)
		return nil, ErrAlgebraMismatch
	}

	p.mv = symbolic.Canonical(res.mv)
	p.lower()

	opts.logger.LogCompile(len(prototypes), p.total, len(p.terms), nil)
	return p, nil
}

// lower flattens the canonical form into evaluation terms and the output
// blade layout.
func (p *Program) lower() {
	slots := make(map[algebra.Blade]int, len(p.mv.Terms))
	for _, t := range p.mv.Terms {
		if _, ok := slots[t.Blade]; !ok {
			slots[t.Blade] = len(p.blades)
			p.blades = append(p.blades, t.Blade) // canonical order is ascending
		}
	}

	p.terms = make([]evalTerm, 0, len(p.mv.Terms))
	for _, t := range p.mv.Terms {
		m := p.mv.Mons[t.Mon]
		factor := m.Coeff.Float64() * float64(t.Count)
		inds := make([]uint32, 0, m.Width)
		for _, ind := range p.mv.Inds[m.Start : m.Start+m.Width] {
			if ind.Mult != symbolic.RatOne {
				factor *= ind.Mult.Float64()
			}
			inds = append(inds, ind.Source)
		}
		p.terms = append(p.terms, evalTerm{factor: factor, slot: slots[t.Blade], inds: inds})
	}
}

// Terms returns the number of surviving canonical terms, which is the exact
// multiply-accumulate count of one evaluation.
func (p *Program) Terms() int { return len(p.terms) }

// Blades returns the output blade layout in ascending order.
func (p *Program) Blades() []algebra.Blade { return p.blades }

// Multivector returns the reduced canonical form.
func (p *Program) Multivector() symbolic.Multivector { return p.mv }

// Eval substitutes the entities' concrete storage into the compiled form
// and returns the accumulated per-blade values as a generic Element. The
// entities must match the compiled prototypes in count and storage shape.
func (p *Program) Eval(entities ...Entity) (*Element, error) {
	if len(entities) != len(p.counts) {
		err := fmt.Errorf("%w: %d entities, compiled for %d", ErrLengthMismatch, len(entities), len(p.counts))
		p.opts.logger.LogEval(len(p.terms), err)
		return nil, err
	}

	vals := make([]float64, p.total)
	for i, ent := range entities {
		v := ent.Values()
		if len(v) != p.counts[i] {
			err := &ErrShapeMismatch{Entity: i, Want: p.counts[i], Got: len(v)}
			p.opts.logger.LogEval(len(p.terms), err)
			return nil, err
		}
		copy(vals[p.offsets[i]:], v)
	}

	out := make([]float64, len(p.blades))
	for _, t := range p.terms {
		acc := t.factor
		for _, id := range t.inds {
			acc *= vals[id]
		}
		out[t.slot] += acc
	}

	return NewElement(p.alg, p.blades, out)
}

// EvalBatch evaluates the program over many entity sets concurrently,
// bounded by WithParallelism. Evaluation is referentially transparent, so
// results are position-stable and independent of scheduling.
func (p *Program) EvalBatch(ctx context.Context, sets [][]Entity) ([]*Element, error) {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(p.opts.parallelism)

	results := make([]*Element, len(sets))
	for i, set := range sets {
		i, set := i, set
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			el, err := p.Eval(set...)
			if err != nil {
				return err
			}
			results[i] = el
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// Compute compiles fn over the entities' bindings and evaluates it once.
// For repeated evaluation over entities of the same shape, use Compile and
// reuse the Program.
func Compute(alg *algebra.Algebra, fn Func, entities ...Entity) (*Element, error) {
	return ComputeWith(alg, fn, entities)
}

// ComputeWith is Compute with explicit options.
func ComputeWith(alg *algebra.Algebra, fn Func, entities []Entity, optFns ...Option) (*Element, error) {
	prog, err := Compile(alg, fn, entities, optFns...)
	if err != nil {
		return nil, err
	}
	return prog.Eval(entities...)
}
