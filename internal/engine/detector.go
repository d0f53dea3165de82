package engine

// Detector runs the clarity rule battery against instruction text. It holds
// no mutable state; concurrent Analyze calls need no synchronization.
type Detector struct {
	rules []rule
	opts  options
}

// NewDetector creates a Detector with the built-in rules registered in
// their fixed evaluation order.
func NewDetector(opts ...Option) *Detector {
	return &Detector{
		rules: builtinRules(),
		opts:  applyOptions(opts),
	}
}

// Analyze scores the given text against every rule in the battery. Each
// rule's deduction is subtracted from a starting score of 100, floored at
// zero. Callers are responsible for rejecting blank text; Analyze itself
// never fails for any string input.
func (d *Detector) Analyze(text string) Analysis {
	d.opts.wait()

	doc := newDocument(text)
	score := 100
	var issues []Issue
	for _, r := range d.rules {
		found, deduction := r.check(doc)
		issues = append(issues, found...)
		score -= deduction
	}
	if score < 0 {
		score = 0
	}
	return Analysis{Score: score, Issues: issues}
}

// Rules returns descriptive metadata for the battery in evaluation order.
func (d *Detector) Rules() []RuleInfo {
	infos := make([]RuleInfo, len(d.rules))
	for i, r := range d.rules {
		infos[i] = r.info
	}
	return infos
}
