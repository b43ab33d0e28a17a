package mapping

import (
	"github.com/andersfylling/chronosync/sample"
	"github.com/andersfylling/chronosync/timeval"
)

// PredictStreamTime answers "what time is it, right now, on the
// stream this window is sampling" (spec.md §4.5): it builds a
// transient TimeMapping from the window's current entries and
// evaluates it at currentLocal. It reuses exactly the same fixed-slope
// regression as TimeMapping rather than a bespoke estimator, because
// spec.md §4.5 defines stream-time prediction as "the TimeMapping
// fitted against this window's evidence, evaluated now" — there is no
// separate model.
//
// tgtSeconds/tgtFromSeconds are the same glue TimeMapping takes;
// RejectOutOfOrder/Smoothing from cfg apply identically, since the
// window's entries are fed through RecordEvidence in order.
func PredictStreamTime[Tgt any](
	cfg Config,
	entries []sample.Entry[Tgt],
	currentLocal timeval.LocalTime,
	tgtSeconds func(Tgt) float64,
	tgtFromSeconds func(float64) Tgt,
) (Tgt, bool) {
	m := New[timeval.LocalTime, Tgt](cfg, timeval.LocalTime.Seconds, tgtSeconds, tgtFromSeconds)
	for _, e := range entries {
		m.RecordEvidence(e.At, e.Value)
	}
	return m.Eval(currentLocal)
}
