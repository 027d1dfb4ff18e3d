package solana

import (
	"fmt"
	"strings"
)

// PayURLParams are the Solana Pay transfer-request fields. Empty fields are
// omitted from the URL.
type PayURLParams struct {
	Amount    string
	Reference string
	Label     string
	Message   string
	Memo      string
	SPLToken  string
}

// BuildPayURL renders a solana: payment deep link. Wallets parse these
// byte-for-byte, so the query keys are emitted in a fixed order and values
// use strict RFC 3986 percent-encoding (space as %20, '/' left alone).
func BuildPayURL(destination string, p PayURLParams) string {
	base := "solana:" + destination

	pairs := []struct{ key, value string }{
		{"amount", p.Amount},
		{"reference", p.Reference},
		{"label", p.Label},
		{"message", p.Message},
		{"memo", p.Memo},
		{"spl-token", p.SPLToken},
	}

	var query []string
	for _, pair := range pairs {
		if pair.value == "" {
			continue
		}
		query = append(query, escape(pair.key)+"="+escape(pair.value))
	}

	if len(query) == 0 {
		return base
	}
	return base + "?" + strings.Join(query, "&")
}

func escape(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 'A' && c <= 'Z' || c >= 'a' && c <= 'z' || c >= '0' && c <= '9' ||
			c == '-' || c == '_' || c == '.' || c == '~' || c == '/' {
			b.WriteByte(c)
			continue
		}
		fmt.Fprintf(&b, "%%%02X", c)
	}
	return b.String()
}
