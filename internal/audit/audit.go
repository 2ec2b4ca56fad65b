// Package audit provides append-only sinks for executed trades. Records
// are written and never read back by the core.
package audit

import "github.com/zappabad/tapetrader/internal/ledger"

// Sink receives one record per executed buy or sell.
type Sink interface {
	Append(ledger.Trade) error
	Close() error
}

// NoopSink discards everything. Used when auditing is disabled.
type NoopSink struct{}

func NewNoopSink() *NoopSink                  { return &NoopSink{} }
func (*NoopSink) Append(ledger.Trade) error   { return nil }
func (*NoopSink) Close() error                { return nil }

// MultiSink fans every record out to all underlying sinks, returning the
// first append error encountered.
type MultiSink struct {
	sinks []Sink
}

func NewMultiSink(sinks ...Sink) *MultiSink {
	return &MultiSink{sinks: sinks}
}

func (m *MultiSink) Append(tr ledger.Trade) error {
	var first error
	for _, s := range m.sinks {
		if err := s.Append(tr); err != nil && first == nil {
			first = err
		}
	}
	return first
}

func (m *MultiSink) Close() error {
	var first error
	for _, s := range m.sinks {
		if err := s.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}
