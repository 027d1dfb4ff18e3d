package solana

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRPCClient_GetSignaturesForAddress(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req rpcRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "getSignaturesForAddress", req.Method)
		assert.Equal(t, "Ref1", req.Params[0])
		assert.Equal(t, map[string]interface{}{"limit": float64(10)}, req.Params[1])

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"jsonrpc":"2.0","id":1,"result":[
			{"signature":"sig-a","slot":100},
			{"signature":"sig-b","slot":99}
		]}`))
	}))
	defer srv.Close()

	client := NewRPCClient(srv.URL)

	sigs, err := client.GetSignaturesForAddress(context.Background(), "Ref1", 10)
	require.NoError(t, err)
	require.Len(t, sigs, 2)
	assert.Equal(t, "sig-a", sigs[0].Signature)
	assert.Equal(t, uint64(100), sigs[0].Slot)
}

func TestRPCClient_GetTransaction(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req rpcRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "getTransaction", req.Method)
		assert.Equal(t, "sig-a", req.Params[0])

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"jsonrpc":"2.0","id":1,"result":{
			"transaction":{"message":{"instructions":[
				{"program":"spl-token","parsed":{"type":"transferChecked","info":{
					"mint":"Mint1","tokenAmount":{"amount":"30000000000","decimals":9}}}}
			]}}
		}}`))
	}))
	defer srv.Close()

	client := NewRPCClient(srv.URL)

	tx, err := client.GetTransaction(context.Background(), "sig-a")
	require.NoError(t, err)
	require.NotNil(t, tx)
	require.Len(t, tx.Transaction.Message.Instructions, 1)

	var detail InstructionDetail
	require.NoError(t, json.Unmarshal(tx.Transaction.Message.Instructions[0].Parsed, &detail))
	assert.Equal(t, "transferChecked", detail.Type)
	assert.Equal(t, "Mint1", detail.Info.Mint)
	assert.Equal(t, "30000000000", detail.Info.TokenAmount.Amount)
}

func TestRPCClient_GetTransaction_NullResult(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"jsonrpc":"2.0","id":1,"result":null}`))
	}))
	defer srv.Close()

	client := NewRPCClient(srv.URL)

	tx, err := client.GetTransaction(context.Background(), "sig-missing")
	require.NoError(t, err)
	assert.Nil(t, tx)
}

func TestRPCClient_RPCError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"jsonrpc":"2.0","id":1,"error":{"code":-32602,"message":"invalid params"}}`))
	}))
	defer srv.Close()

	client := NewRPCClient(srv.URL)

	_, err := client.GetSignaturesForAddress(context.Background(), "Ref1", 10)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid params")
}

func TestRPCClient_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	client := NewRPCClient(srv.URL)

	_, err := client.GetSignaturesForAddress(context.Background(), "Ref1", 10)
	assert.Error(t, err)
}
