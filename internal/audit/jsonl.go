package audit

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/zappabad/tapetrader/internal/ledger"
)

type record struct {
	ID     string          `json:"id"`
	Time   float64         `json:"time"`
	Symbol string          `json:"symbol"`
	Action string          `json:"action"`
	Amount decimal.Decimal `json:"amount"`
	Delta  decimal.Decimal `json:"delta"`
}

// JSONLSink appends one JSON object per line to a log file.
type JSONLSink struct {
	mu sync.Mutex
	f  *os.File
}

// NewJSONLSink opens (or creates) the log file in append mode.
func NewJSONLSink(path string) (*JSONLSink, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open audit log %q: %w", path, err)
	}
	return &JSONLSink{f: f}, nil
}

func (s *JSONLSink) Append(tr ledger.Trade) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := json.Marshal(record{
		ID:     tr.ID.String(),
		Time:   tr.Time,
		Symbol: tr.Symbol,
		Action: tr.Action.String(),
		Amount: tr.Amount,
		Delta:  tr.Delta,
	})
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(s.f, string(b))
	return err
}

func (s *JSONLSink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.f.Close()
}
