package sim

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// AccountState is the persisted slice of one ledger account.
type AccountState struct {
	InvestedMoney  decimal.Decimal `json:"invested_money"`
	InvestedAmount decimal.Decimal `json:"invested_amount"`
	ReturnedMoney  decimal.Decimal `json:"returned_money"`
	ReturnedAmount decimal.Decimal `json:"returned_amount"`
}

// State is the session snapshot written between runs.
type State struct {
	Balance decimal.Decimal         `json:"balance"`
	Time    float64                 `json:"time"`
	Assets  map[string]AccountState `json:"assets"`
}

// Save writes the session state to the configured state file. A session
// with no state file configured saves nothing.
func (s *Session) Save() error {
	if s.cfg.StateFile == "" {
		return nil
	}

	st := State{
		Balance: s.balance,
		Time:    s.simTime,
		Assets:  make(map[string]AccountState, len(s.accounts)),
	}
	for sym, acc := range s.accounts {
		st.Assets[sym] = AccountState{
			InvestedMoney:  acc.InvestedMoney,
			InvestedAmount: acc.InvestedAmount,
			ReturnedMoney:  acc.ReturnedMoney,
			ReturnedAmount: acc.ReturnedAmount,
		}
	}

	data, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(s.cfg.StateFile, data, 0o644); err != nil {
		return fmt.Errorf("write state file %q: %w", s.cfg.StateFile, err)
	}
	return nil
}

// Restore loads a previously saved state if one exists. A missing file
// is a fresh session, not an error. Accounts for symbols the session
// doesn't know are ignored.
func (s *Session) Restore() error {
	if s.cfg.StateFile == "" {
		return nil
	}

	data, err := os.ReadFile(s.cfg.StateFile)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read state file %q: %w", s.cfg.StateFile, err)
	}

	var st State
	if err := json.Unmarshal(data, &st); err != nil {
		return fmt.Errorf("parse state file %q: %w", s.cfg.StateFile, err)
	}

	s.balance = st.Balance
	s.simTime = st.Time
	for sym, as := range st.Assets {
		acc, ok := s.accounts[sym]
		if !ok {
			s.logger.Warn("state file references unknown asset", zap.String("symbol", sym))
			continue
		}
		acc.InvestedMoney = as.InvestedMoney
		acc.InvestedAmount = as.InvestedAmount
		acc.ReturnedMoney = as.ReturnedMoney
		acc.ReturnedAmount = as.ReturnedAmount
	}
	return nil
}
