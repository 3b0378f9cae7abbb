package diag

import "decaf/internal/source"

// Reporter: минимальный контракт получения диагностик от фаз.
// Реализации: ErrorReporter (классический вывод), BagReporter (кладёт в Bag),
// MultiReporter (fan-out).
type Reporter interface {
	Report(d Diagnostic)
}

// ReportBuilder accumulates diagnostic details before emitting to Reporter.
type ReportBuilder struct {
	reporter Reporter
	diag     Diagnostic
	emitted  bool
}

// NewReportBuilder constructs a builder bound to Reporter.
func NewReportBuilder(r Reporter, d Diagnostic) *ReportBuilder {
	return &ReportBuilder{reporter: r, diag: d}
}

// WithNote appends a note to diagnostic.
func (b *ReportBuilder) WithNote(sp source.Span, msg string) *ReportBuilder {
	if b == nil {
		return nil
	}
	b.diag = b.diag.WithNote(sp, msg)
	return b
}

// Emit sends diagnostic to underlying reporter exactly once.
func (b *ReportBuilder) Emit() {
	if b == nil || b.emitted {
		return
	}
	if b.reporter != nil {
		b.reporter.Report(b.diag)
	}
	b.emitted = true
}


// BagReporter: адаптер, который пишет в *Bag и считает ошибки в Counter.
// Errors are counted even when the bag is full.
type BagReporter struct {
	Bag     *Bag
	Counter *Counter
}

func (r BagReporter) Report(d Diagnostic) {
	if d.Severity >= SevError {
		r.Counter.Inc()
	}
	if r.Bag != nil {
		r.Bag.Add(d)
	}
}

// MultiReporter fans a diagnostic out to every non-nil reporter.
type MultiReporter []Reporter

func (m MultiReporter) Report(d Diagnostic) {
	for _, r := range m {
		if r != nil {
			r.Report(d)
		}
	}
}
