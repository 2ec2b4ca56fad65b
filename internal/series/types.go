package series

import "fmt"

// Sample spacing and session constants, in simulated seconds.
const (
	SampleInterval = 5
	DaySeconds     = 86400

	// Stocks open 9 hours into each simulated day.
	stockSessionOffset = 9 * 3600
)

// Kind distinguishes instruments with different session semantics.
type Kind uint8

const (
	KindStock Kind = iota
	KindCrypto
)

func (k Kind) String() string {
	switch k {
	case KindStock:
		return "STOCK"
	case KindCrypto:
		return "CRYPTO"
	default:
		return "UNKNOWN"
	}
}

// ParseKind converts a config string into a Kind.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "stock":
		return KindStock, nil
	case "crypto":
		return KindCrypto, nil
	default:
		return 0, fmt.Errorf("unknown asset kind %q", s)
	}
}

// SessionOffset returns how many seconds into a simulated day the
// instrument starts trading. Crypto trades from day start.
func (k Kind) SessionOffset() float64 {
	if k == KindStock {
		return stockSessionOffset
	}
	return 0
}

// Asset is one instrument's identity plus its full recorded history.
// Days is ordered, index 0 = first simulated day; each day holds
// 5-second-interval samples with NaN marking instants with no trade.
// Days is never mutated after Load.
type Asset struct {
	Symbol string
	Kind   Kind
	Days   [][]float64
}

func (a *Asset) IsStock() bool  { return a.Kind == KindStock }
func (a *Asset) IsCrypto() bool { return a.Kind == KindCrypto }

// Pseudonym is the display name for the asset: a shift-3 Caesar transform
// of the real symbol, so participants can't recognize the instrument.
func (a *Asset) Pseudonym() string {
	return Caesar(a.Symbol, 3)
}

// Caesar shifts ASCII letters by the given amount, wrapping within the
// alphabet and preserving case. Non-letters pass through unchanged.
// Reversible with shift 26-n.
func Caesar(text string, shift int) string {
	out := []rune(text)
	for i, r := range out {
		switch {
		case r >= 'A' && r <= 'Z':
			out[i] = (r-'A'+rune(shift))%26 + 'A'
		case r >= 'a' && r <= 'z':
			out[i] = (r-'a'+rune(shift))%26 + 'a'
		}
	}
	return string(out)
}
