package domain

import (
	"fmt"

	"github.com/btcsuite/btcd/btcutil"
)

// InputCoin is the immutable description of a single selectable UTXO, as
// consumed by the coin-selection algorithms. It carries only what the
// algorithms need to reason about: the gross amount, the fee to spend it
// now, and the fee to spend it under the wallet's expected future fee
// rate.
//
// ID is never interpreted by the core; it is the caller's own handle
// (e.g. a serialized outpoint) used to tell apart candidates that carry
// identical Value/Fee/LongTermFee. Selection results are reported as
// copies of the chosen InputCoin values, not as positions into the
// pool, so ID is how the caller maps them back to its own bookkeeping
// and how tests assert on "which coin".
type InputCoin struct {
	ID          string
	Value       int64
	Fee         int64
	LongTermFee int64
}

// EffectiveValue is the amount actually available to the target once the
// cost of spending this coin now is subtracted out.
func (c InputCoin) EffectiveValue() int64 {
	return c.Value - c.Fee
}

// Waste is this coin's marginal contribution to the waste metric: the
// difference between what it costs to spend now and what it would cost
// to spend later. It may be negative.
func (c InputCoin) Waste() int64 {
	return c.Fee - c.LongTermFee
}

func (c InputCoin) String() string {
	return fmt.Sprintf(
		"InputCoin{id: %s, value: %s, fee: %s, long_term_fee: %s}",
		c.ID,
		btcutil.Amount(c.Value),
		btcutil.Amount(c.Fee),
		btcutil.Amount(c.LongTermFee),
	)
}
