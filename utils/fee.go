package utils

import (
	"errors"
	"strings"

	"fin2x/models"

	"github.com/shopspring/decimal"
)

// Withdrawal fee rules live in models so the seeded Setting row and the quote
// math share one set of numbers. Withdrawals above 80% of the wallet balance
// pay the high tier; everything else pays the base tier.
const (
	MinWithdrawal     = models.MinWithdraw
	BaseFeePercent    = models.BaseFeePercent
	HighFeePercent    = models.HighFeePercent
	HighFeeBalanceCut = models.HighFeeThreshold
)

var (
	ErrAmountInvalid     = errors.New("please enter a valid amount")
	ErrAmountBelowMin    = errors.New("minimum withdrawal amount is $35")
	ErrAmountOverBalance = errors.New("withdrawal amount cannot exceed your wallet balance")
	ErrWalletNameMissing = errors.New("please enter a wallet name")
	ErrNetworkMissing    = errors.New("please enter the network")
	ErrAddressMissing    = errors.New("please enter a valid wallet address")
)

// WithdrawalQuote is the live preview shown while the user types an amount.
// Nothing here is persisted; Remaining is a projection, not a debit.
type WithdrawalQuote struct {
	Amount     float64 `json:"amount"`
	FeePercent float64 `json:"fee_percent"`
	Fee        float64 `json:"fee"`
	Net        float64 `json:"net"`
	Remaining  float64 `json:"remaining_balance"`
}

// QuoteWithdrawal derives the fee preview for a requested amount against the
// current wallet balance. An amount that is not a positive number, or that
// exceeds the balance, yields a zero-fee preview with the base percentage; it
// cannot be submitted (see ValidateWithdrawal).
func QuoteWithdrawal(amount, balance float64) WithdrawalQuote {
	bal := decimal.NewFromFloat(balance)

	if amount <= 0 || amount != amount { // non-positive or NaN
		return WithdrawalQuote{
			FeePercent: BaseFeePercent,
			Remaining:  round2(bal),
		}
	}

	amt := decimal.NewFromFloat(amount)
	remaining := bal.Sub(amt)
	if remaining.IsNegative() {
		remaining = decimal.Zero
	}

	if amt.GreaterThan(bal) {
		return WithdrawalQuote{
			Amount:     round2(amt),
			FeePercent: BaseFeePercent,
			Net:        round2(amt),
			Remaining:  round2(remaining),
		}
	}

	feePercent := BaseFeePercent
	if amt.GreaterThan(bal.Mul(decimal.NewFromFloat(HighFeeBalanceCut))) {
		feePercent = HighFeePercent
	}

	fee := amt.Mul(decimal.NewFromFloat(feePercent)).Div(decimal.NewFromInt(100)).Round(2)
	net := amt.Sub(fee)
	if net.IsNegative() {
		net = decimal.Zero
	}

	return WithdrawalQuote{
		Amount:     round2(amt),
		FeePercent: feePercent,
		Fee:        round2(fee),
		Net:        round2(net),
		Remaining:  round2(remaining),
	}
}

// ValidateWithdrawal applies the submit-time rules, which are stricter than
// the live preview: positive amount, $35 minimum, within balance, and all
// wallet fields present.
func ValidateWithdrawal(amount, balance float64, walletName, network, walletAddress string) error {
	if amount <= 0 || amount != amount {
		return ErrAmountInvalid
	}
	if amount < MinWithdrawal {
		return ErrAmountBelowMin
	}
	if decimal.NewFromFloat(amount).GreaterThan(decimal.NewFromFloat(balance)) {
		return ErrAmountOverBalance
	}
	if strings.TrimSpace(walletName) == "" {
		return ErrWalletNameMissing
	}
	if strings.TrimSpace(network) == "" {
		return ErrNetworkMissing
	}
	if strings.TrimSpace(walletAddress) == "" {
		return ErrAddressMissing
	}
	return nil
}

func round2(d decimal.Decimal) float64 {
	f, _ := d.Round(2).Float64()
	return f
}
