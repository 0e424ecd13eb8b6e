package render

import "github.com/marben/simd_mandel/lanes"

// consts holds the broadcast vectors of one engine. They are computed once in New.
type consts struct {
	one       lanes.U32x8
	maxIter   lanes.U32x8
	threshold lanes.U32x8
	four      lanes.F32x8
}

func newConsts(maxIter, periodThreshold uint32) consts {
	return consts{
		one:       lanes.SplatU(1),
		maxIter:   lanes.SplatU(maxIter),
		threshold: lanes.SplatU(periodThreshold),
		four:      lanes.SplatF(4),
	}
}

// escape iterates z <- z²+c on all eight lanes in lock-step until every lane
// is done, and returns the per-lane iteration counts.
//
// A lane is done when |z|² > 4, when its count reaches MaxIterations, or when
// z repeats bit for bit the value snapshotted at the last periodicity
// checkpoint. A repeated z means the orbit is a cycle, so the count is set to
// MaxIterations. Lanes outside valid are done from the start and return 0.
// Done lanes are frozen: neither z nor the count changes afterwards.
func (e *Engine) escape(cr, ci lanes.F32x8, valid lanes.U32x8) lanes.U32x8 {
	k := &e.k

	var iter lanes.U32x8
	done := valid.Not()
	if !e.cfg.DisablePrefilter {
		inside := interior(cr, ci).And(valid)
		iter = lanes.SelectU(inside, k.maxIter, iter)
		done = done.Or(inside)
	}

	var (
		zr, zi, zr2, zi2 lanes.F32x8
		period           lanes.U32x8
		oldR, oldI       lanes.U32x8
	)
	periodicity := !e.cfg.DisablePeriodicity

	for !done.All() {
		active := done.Not()

		nzi := zr.Add(zr).Mul(zi).Add(ci)
		nzr := zr2.Sub(zi2).Add(cr)
		zr = lanes.SelectF(active, nzr, zr)
		zi = lanes.SelectF(active, nzi, zi)
		zr2 = zr.Mul(zr)
		zi2 = zi.Mul(zi)

		inc := k.one.And(active)
		iter = iter.Add(inc)

		finished := zr2.Add(zi2).Gt(k.four).Or(iter.Ge(k.maxIter))

		if periodicity {
			period = period.Add(inc)

			rBits, iBits := zr.Bits(), zi.Bits()
			cycle := rBits.Eq(oldR).And(iBits.Eq(oldI)).And(active)
			iter = lanes.SelectU(cycle, k.maxIter, iter)
			finished = finished.Or(cycle)

			snap := period.Gt(k.threshold).And(active)
			period = period.AndNot(snap)
			oldR = lanes.SelectU(snap, rBits, oldR)
			oldI = lanes.SelectU(snap, iBits, oldI)
		}

		done = done.Or(finished.And(active))
	}
	return iter
}
