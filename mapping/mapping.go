// Package mapping implements TimeMapping (spec.md §4.4): a
// sliding-window, fixed-unit-slope linear regression from a source
// timeline to a target timeline, used to predict "what time is it,
// right now, on the other end of the wire".
//
// The model is deliberately NOT a general linear fit. Both slope and
// intercept could in principle be estimated jointly, but with the
// small evidence windows (8-32 points) this library fits, a free
// slope is numerically unstable — spec.md §9 warns explicitly against
// re-enabling it. Fixing slope at 1.0 and fitting only the intercept
// (the mean residual tgt_i - src_i) is far more robust, because both
// timelines genuinely advance at one second per second; any apparent
// drift is network jitter, not clock skew.
package mapping

// Config controls evidence retention and fit smoothing.
type Config struct {
	// MaxEvidenceLen bounds the ring of (src, tgt) evidence points.
	// Typical values are 8-32 (spec.md §4.4).
	MaxEvidenceLen int

	// Smoothing is the EMA factor alpha applied to the intercept
	// across updates: intercept_new = alpha*fit + (1-alpha)*prev.
	// Zero disables smoothing (the default, per spec.md §4.4); any
	// value in (0, 1] enables it.
	Smoothing float64

	// RejectOutOfOrder drops any (src, tgt) pair whose src or tgt
	// does not strictly exceed the newest existing entry, per
	// spec.md §4.4's "Evidence management".
	RejectOutOfOrder bool
}

type evidence[Src, Tgt any] struct {
	src Src
	tgt Tgt
}

// TimeMapping fits tgt = src + intercept from a bounded ring of
// (Src, Tgt) evidence points. Src and Tgt are usually different
// timeval.Time[...] instantiations (e.g. LocalTime -> GameTime);
// SrcSeconds/TgtSeconds/TgtFromSeconds are the glue that lets this
// type stay generic over both without tying it to one tag pair.
type TimeMapping[Src, Tgt any] struct {
	cfg            Config
	srcSeconds     func(Src) float64
	tgtSeconds     func(Tgt) float64
	tgtFromSeconds func(float64) Tgt

	evidence     []evidence[Src, Tgt]
	intercept    float64
	hasIntercept bool
}

// New creates an empty TimeMapping. srcSeconds/tgtSeconds extract the
// raw seconds value from Src/Tgt instants; tgtFromSeconds is the
// inverse for Tgt, used to build eval's result.
func New[Src, Tgt any](
	cfg Config,
	srcSeconds func(Src) float64,
	tgtSeconds func(Tgt) float64,
	tgtFromSeconds func(float64) Tgt,
) *TimeMapping[Src, Tgt] {
	return &TimeMapping[Src, Tgt]{
		cfg:            cfg,
		srcSeconds:     srcSeconds,
		tgtSeconds:     tgtSeconds,
		tgtFromSeconds: tgtFromSeconds,
	}
}

// RecordEvidence adds an (src, tgt) observation and refits the model.
func (m *TimeMapping[Src, Tgt]) RecordEvidence(src Src, tgt Tgt) {
	if m.cfg.RejectOutOfOrder && len(m.evidence) > 0 {
		newest := m.evidence[len(m.evidence)-1]
		if m.srcSeconds(src) <= m.srcSeconds(newest.src) || m.tgtSeconds(tgt) <= m.tgtSeconds(newest.tgt) {
			return
		}
	}

	m.evidence = append(m.evidence, evidence[Src, Tgt]{src: src, tgt: tgt})
	if max := m.cfg.MaxEvidenceLen; max > 0 && len(m.evidence) > max {
		m.evidence = m.evidence[len(m.evidence)-max:]
	}

	m.fit()
}

func (m *TimeMapping[Src, Tgt]) fit() {
	if len(m.evidence) < 2 {
		return
	}

	sum := 0.0
	for _, e := range m.evidence {
		sum += m.tgtSeconds(e.tgt) - m.srcSeconds(e.src)
	}
	fitted := sum / float64(len(m.evidence))

	if m.cfg.Smoothing > 0 && m.hasIntercept {
		m.intercept = m.cfg.Smoothing*fitted + (1-m.cfg.Smoothing)*m.intercept
	} else {
		m.intercept = fitted
	}
	m.hasIntercept = true
}

// Eval returns the predicted Tgt for the given Src, or false if fewer
// than two evidence points have been recorded (spec.md §4.4
// "Failure").
func (m *TimeMapping[Src, Tgt]) Eval(src Src) (Tgt, bool) {
	if !m.hasIntercept {
		var zero Tgt
		return zero, false
	}
	return m.tgtFromSeconds(m.srcSeconds(src) + m.intercept), true
}

// Len returns the number of evidence points currently retained.
func (m *TimeMapping[Src, Tgt]) Len() int {
	return len(m.evidence)
}
