package solana

import (
	"context"
	"encoding/json"

	"github.com/shopspring/decimal"
)

const (
	// Lookback bound: only the most recent signatures touching the reference
	// key are inspected per verification attempt.
	signatureLookback = 10

	// SPL token amounts arrive as raw integers scaled by the token's decimal
	// precision.
	tokenDecimals = 9
)

type Verifier struct {
	client Ledger
}

func NewVerifier(client Ledger) *Verifier {
	return &Verifier{client: client}
}

// VerifyPayment scans recent transactions referencing the correlation key for
// a checked SPL transfer of exactly expectedAmount of tokenMint. It returns
// the matching transaction signature when found. Absence of a match is not an
// error; the payment simply has not settled yet.
func (v *Verifier) VerifyPayment(ctx context.Context, reference string, expectedAmount decimal.Decimal, tokenMint string) (bool, string, error) {
	sigs, err := v.client.GetSignaturesForAddress(ctx, reference, signatureLookback)
	if err != nil {
		return false, "", err
	}

	for _, sigInfo := range sigs {
		tx, err := v.client.GetTransaction(ctx, sigInfo.Signature)
		if err != nil {
			return false, "", err
		}
		if tx == nil {
			continue
		}

		for _, instruction := range tx.Transaction.Message.Instructions {
			if len(instruction.Parsed) == 0 {
				continue
			}

			var detail InstructionDetail
			if err := json.Unmarshal(instruction.Parsed, &detail); err != nil {
				// Opaque instruction from an unknown program.
				continue
			}

			if detail.Type != "transferChecked" {
				continue
			}

			if tokenMint != "" && detail.Info.Mint != tokenMint {
				continue
			}

			raw, err := decimal.NewFromString(detail.Info.TokenAmount.Amount)
			if err != nil {
				continue
			}
			if !raw.Shift(-tokenDecimals).Equal(expectedAmount) {
				continue
			}

			return true, sigInfo.Signature, nil
		}
	}

	return false, "", nil
}
