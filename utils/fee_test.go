package utils

import (
	"errors"
	"math"
	"testing"
)

func TestQuoteWithdrawal_HighTier(t *testing.T) {
	// 850 of a 1000 balance is above the 80% cut, so the 20% fee applies
	q := QuoteWithdrawal(850, 1000)
	if q.FeePercent != HighFeePercent {
		t.Fatalf("fee percent = %v, want %v", q.FeePercent, HighFeePercent)
	}
	if q.Fee != 170 {
		t.Fatalf("fee = %v, want 170", q.Fee)
	}
	if q.Net != 680 {
		t.Fatalf("net = %v, want 680", q.Net)
	}
	if q.Remaining != 150 {
		t.Fatalf("remaining = %v, want 150", q.Remaining)
	}
}

func TestQuoteWithdrawal_BaseTier(t *testing.T) {
	q := QuoteWithdrawal(500, 1000)
	if q.FeePercent != BaseFeePercent {
		t.Fatalf("fee percent = %v, want %v", q.FeePercent, BaseFeePercent)
	}
	if q.Fee != 30 {
		t.Fatalf("fee = %v, want 30", q.Fee)
	}
	if q.Net != 470 {
		t.Fatalf("net = %v, want 470", q.Net)
	}
}

func TestQuoteWithdrawal_ExactThresholdStaysBase(t *testing.T) {
	// exactly 80% of balance is not above the cut
	q := QuoteWithdrawal(800, 1000)
	if q.FeePercent != BaseFeePercent {
		t.Fatalf("fee percent = %v, want %v at the exact threshold", q.FeePercent, BaseFeePercent)
	}
}

func TestQuoteWithdrawal_InvalidAmount(t *testing.T) {
	for _, amount := range []float64{0, -5, math.NaN()} {
		q := QuoteWithdrawal(amount, 1000)
		if q.Fee != 0 || q.Net != 0 {
			t.Fatalf("amount %v: fee/net = %v/%v, want zeros", amount, q.Fee, q.Net)
		}
		if q.FeePercent != BaseFeePercent {
			t.Fatalf("amount %v: fee percent = %v, want base", amount, q.FeePercent)
		}
		if q.Remaining != 1000 {
			t.Fatalf("amount %v: remaining = %v, want full balance", amount, q.Remaining)
		}
	}
}

func TestQuoteWithdrawal_OverBalancePreview(t *testing.T) {
	q := QuoteWithdrawal(1500, 1000)
	if q.Fee != 0 {
		t.Fatalf("fee = %v, want 0 for over-balance preview", q.Fee)
	}
	if q.Net != 1500 {
		t.Fatalf("net = %v, want amount echoed back", q.Net)
	}
	if q.Remaining != 0 {
		t.Fatalf("remaining = %v, want clamped to 0", q.Remaining)
	}
}

func TestValidateWithdrawal(t *testing.T) {
	tests := []struct {
		name    string
		amount  float64
		balance float64
		wallet  string
		network string
		address string
		wantErr error
	}{
		{"ok at minimum", 35.00, 1000, "Binance", "TRC20", "Txyz", nil},
		{"below minimum", 34.99, 1000, "Binance", "TRC20", "Txyz", ErrAmountBelowMin},
		{"zero amount", 0, 1000, "Binance", "TRC20", "Txyz", ErrAmountInvalid},
		{"negative amount", -10, 1000, "Binance", "TRC20", "Txyz", ErrAmountInvalid},
		{"over balance", 1001, 1000, "Binance", "TRC20", "Txyz", ErrAmountOverBalance},
		{"blank wallet name", 50, 1000, "  ", "TRC20", "Txyz", ErrWalletNameMissing},
		{"blank network", 50, 1000, "Binance", "", "Txyz", ErrNetworkMissing},
		{"blank address", 50, 1000, "Binance", "TRC20", " ", ErrAddressMissing},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateWithdrawal(tt.amount, tt.balance, tt.wallet, tt.network, tt.address)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("err = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
