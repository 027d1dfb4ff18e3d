package solana

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockLedger is a mock implementation of Ledger
type MockLedger struct {
	mock.Mock
}

func (m *MockLedger) GetSignaturesForAddress(ctx context.Context, address string, limit int) ([]SignatureInfo, error) {
	args := m.Called(ctx, address, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]SignatureInfo), args.Error(1)
}

func (m *MockLedger) GetTransaction(ctx context.Context, signature string) (*ParsedTransaction, error) {
	args := m.Called(ctx, signature)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ParsedTransaction), args.Error(1)
}

func transferTx(t *testing.T, instructionType, mint, rawAmount string) *ParsedTransaction {
	t.Helper()

	parsed, err := json.Marshal(InstructionDetail{
		Type: instructionType,
		Info: InstructionInfo{
			Mint:        mint,
			TokenAmount: TokenAmount{Amount: rawAmount, Decimals: 9},
		},
	})
	require.NoError(t, err)

	var tx ParsedTransaction
	tx.Transaction.Message.Instructions = []ParsedInstruction{
		{Program: "spl-token", Parsed: parsed},
	}
	return &tx
}

func TestVerifyPayment_Match(t *testing.T) {
	ledger := new(MockLedger)
	verifier := NewVerifier(ledger)

	ledger.On("GetSignaturesForAddress", mock.Anything, "Ref1", 10).
		Return([]SignatureInfo{{Signature: "sig-a"}}, nil)
	ledger.On("GetTransaction", mock.Anything, "sig-a").
		Return(transferTx(t, "transferChecked", "Mint1", "30000000000"), nil)

	matched, signature, err := verifier.VerifyPayment(context.Background(), "Ref1",
		decimal.RequireFromString("30.00"), "Mint1")

	require.NoError(t, err)
	assert.True(t, matched)
	assert.Equal(t, "sig-a", signature)
	ledger.AssertExpectations(t)
}

func TestVerifyPayment_NoSignatures(t *testing.T) {
	ledger := new(MockLedger)
	verifier := NewVerifier(ledger)

	ledger.On("GetSignaturesForAddress", mock.Anything, "Ref1", 10).
		Return([]SignatureInfo{}, nil)

	matched, signature, err := verifier.VerifyPayment(context.Background(), "Ref1",
		decimal.NewFromInt(10), "Mint1")

	require.NoError(t, err)
	assert.False(t, matched)
	assert.Empty(t, signature)
}

func TestVerifyPayment_AmountMismatch(t *testing.T) {
	ledger := new(MockLedger)
	verifier := NewVerifier(ledger)

	ledger.On("GetSignaturesForAddress", mock.Anything, "Ref1", 10).
		Return([]SignatureInfo{{Signature: "sig-a"}}, nil)
	ledger.On("GetTransaction", mock.Anything, "sig-a").
		Return(transferTx(t, "transferChecked", "Mint1", "5000000000"), nil)

	matched, _, err := verifier.VerifyPayment(context.Background(), "Ref1",
		decimal.RequireFromString("30.00"), "Mint1")

	require.NoError(t, err)
	assert.False(t, matched)
}

func TestVerifyPayment_MintMismatch(t *testing.T) {
	ledger := new(MockLedger)
	verifier := NewVerifier(ledger)

	ledger.On("GetSignaturesForAddress", mock.Anything, "Ref1", 10).
		Return([]SignatureInfo{{Signature: "sig-a"}}, nil)
	ledger.On("GetTransaction", mock.Anything, "sig-a").
		Return(transferTx(t, "transferChecked", "OtherMint", "30000000000"), nil)

	matched, _, err := verifier.VerifyPayment(context.Background(), "Ref1",
		decimal.RequireFromString("30.00"), "Mint1")

	require.NoError(t, err)
	assert.False(t, matched)
}

func TestVerifyPayment_IgnoresOtherInstructionTypes(t *testing.T) {
	ledger := new(MockLedger)
	verifier := NewVerifier(ledger)

	ledger.On("GetSignaturesForAddress", mock.Anything, "Ref1", 10).
		Return([]SignatureInfo{{Signature: "sig-a"}}, nil)
	ledger.On("GetTransaction", mock.Anything, "sig-a").
		Return(transferTx(t, "transfer", "Mint1", "30000000000"), nil)

	matched, _, err := verifier.VerifyPayment(context.Background(), "Ref1",
		decimal.RequireFromString("30.00"), "Mint1")

	require.NoError(t, err)
	assert.False(t, matched)
}

func TestVerifyPayment_SkipsOpaqueInstructions(t *testing.T) {
	ledger := new(MockLedger)
	verifier := NewVerifier(ledger)

	var tx ParsedTransaction
	tx.Transaction.Message.Instructions = []ParsedInstruction{
		{Program: "unknown", Parsed: json.RawMessage(`"3Bxs4h24hBtQy9rw"`)},
	}

	ledger.On("GetSignaturesForAddress", mock.Anything, "Ref1", 10).
		Return([]SignatureInfo{{Signature: "sig-a"}}, nil)
	ledger.On("GetTransaction", mock.Anything, "sig-a").Return(&tx, nil)

	matched, _, err := verifier.VerifyPayment(context.Background(), "Ref1",
		decimal.NewFromInt(10), "Mint1")

	require.NoError(t, err)
	assert.False(t, matched)
}

func TestVerifyPayment_FirstMatchWins(t *testing.T) {
	ledger := new(MockLedger)
	verifier := NewVerifier(ledger)

	ledger.On("GetSignaturesForAddress", mock.Anything, "Ref1", 10).
		Return([]SignatureInfo{{Signature: "sig-a"}, {Signature: "sig-b"}}, nil)
	ledger.On("GetTransaction", mock.Anything, "sig-a").
		Return(transferTx(t, "transferChecked", "Mint1", "30000000000"), nil)

	matched, signature, err := verifier.VerifyPayment(context.Background(), "Ref1",
		decimal.RequireFromString("30.00"), "Mint1")

	require.NoError(t, err)
	assert.True(t, matched)
	assert.Equal(t, "sig-a", signature)
	ledger.AssertNotCalled(t, "GetTransaction", mock.Anything, "sig-b")
}

func TestVerifyPayment_RPCError(t *testing.T) {
	ledger := new(MockLedger)
	verifier := NewVerifier(ledger)

	ledger.On("GetSignaturesForAddress", mock.Anything, "Ref1", 10).
		Return(nil, errors.New("rpc unreachable"))

	_, _, err := verifier.VerifyPayment(context.Background(), "Ref1",
		decimal.NewFromInt(10), "Mint1")

	assert.Error(t, err)
}
