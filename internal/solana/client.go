package solana

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Ledger is the slice of the settlement rail the verifier needs. RPCClient is
// the production implementation.
type Ledger interface {
	GetSignaturesForAddress(ctx context.Context, address string, limit int) ([]SignatureInfo, error)
	GetTransaction(ctx context.Context, signature string) (*ParsedTransaction, error)
}

type RPCClient struct {
	url        string
	httpClient *http.Client
}

func NewRPCClient(url string) *RPCClient {
	return &RPCClient{
		url: url,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

type rpcRequest struct {
	Jsonrpc string        `json:"jsonrpc"`
	ID      int           `json:"id"`
	Method  string        `json:"method"`
	Params  []interface{} `json:"params"`
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type rpcResponse struct {
	Result json.RawMessage `json:"result"`
	Error  *rpcError       `json:"error"`
}

// SignatureInfo is one entry from getSignaturesForAddress, newest first.
type SignatureInfo struct {
	Signature string `json:"signature"`
	Slot      uint64 `json:"slot"`
	Err       any    `json:"err"`
}

// ParsedTransaction mirrors the jsonParsed transaction envelope down to the
// per-instruction parsed transfer fields the verifier inspects.
type ParsedTransaction struct {
	Transaction struct {
		Message struct {
			Instructions []ParsedInstruction `json:"instructions"`
		} `json:"message"`
	} `json:"transaction"`
}

type ParsedInstruction struct {
	Program string `json:"program"`
	// Parsed is a structured object for known programs and an opaque string
	// otherwise, so it stays raw until the verifier tries to decode it.
	Parsed json.RawMessage `json:"parsed"`
}

type InstructionDetail struct {
	Type string          `json:"type"`
	Info InstructionInfo `json:"info"`
}

type InstructionInfo struct {
	Mint        string      `json:"mint"`
	TokenAmount TokenAmount `json:"tokenAmount"`
}

type TokenAmount struct {
	Amount   string `json:"amount"`
	Decimals int    `json:"decimals"`
}

func (c *RPCClient) call(ctx context.Context, method string, params []interface{}, result interface{}) error {
	body, err := json.Marshal(rpcRequest{
		Jsonrpc: "2.0",
		ID:      1,
		Method:  method,
		Params:  params,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("solana rpc request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("solana rpc response read failed: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("solana rpc returned status %d", resp.StatusCode)
	}

	var rpcResp rpcResponse
	if err := json.Unmarshal(respBody, &rpcResp); err != nil {
		return fmt.Errorf("solana rpc response decode failed: %w", err)
	}
	if rpcResp.Error != nil {
		return fmt.Errorf("solana rpc error %d: %s", rpcResp.Error.Code, rpcResp.Error.Message)
	}

	if result != nil && len(rpcResp.Result) > 0 {
		if err := json.Unmarshal(rpcResp.Result, result); err != nil {
			return fmt.Errorf("solana rpc result decode failed: %w", err)
		}
	}

	return nil
}

func (c *RPCClient) GetSignaturesForAddress(ctx context.Context, address string, limit int) ([]SignatureInfo, error) {
	var sigs []SignatureInfo
	err := c.call(ctx, "getSignaturesForAddress",
		[]interface{}{address, map[string]interface{}{"limit": limit}}, &sigs)
	if err != nil {
		return nil, err
	}
	return sigs, nil
}

func (c *RPCClient) GetTransaction(ctx context.Context, signature string) (*ParsedTransaction, error) {
	var tx *ParsedTransaction
	err := c.call(ctx, "getTransaction",
		[]interface{}{signature, map[string]interface{}{"encoding": "jsonParsed"}}, &tx)
	if err != nil {
		return nil, err
	}
	return tx, nil
}
