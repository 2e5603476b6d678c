// Package entropy supplies the uniform samples behind stochastic event
// draws. It prefers true randomness from random.org, with a crypto/rand
// fallback when no API key is configured or the API is unreachable.
package entropy

import (
	"bytes"
	"crypto/rand"
	"encoding/binary"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"sync"
	"time"
)

// Source provides uniform float64 samples in [0, 1). A nil Source is valid
// and falls back to crypto/rand.
type Source struct {
	apiKey string
	client *http.Client

	mu   sync.Mutex
	pool []float64
}

// NewSource creates a random.org-backed source. Returns nil if apiKey is
// empty, which callers treat as the crypto/rand fallback.
func NewSource(apiKey string) *Source {
	if apiKey == "" {
		return nil
	}
	return &Source{
		apiKey: apiKey,
		client: &http.Client{Timeout: 15 * time.Second},
	}
}

// Float returns the next sample, refilling the pool from random.org when it
// runs low and falling back to crypto/rand on any API failure.
func (s *Source) Float() float64 {
	if s == nil {
		return cryptoFloat()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.pool) < 10 {
		s.refill()
	}
	if len(s.pool) == 0 {
		return cryptoFloat()
	}

	v := s.pool[0]
	s.pool = s.pool[1:]
	return v
}

func (s *Source) refill() {
	req := map[string]any{
		"jsonrpc": "2.0",
		"method":  "generateDecimalFractions",
		"params": map[string]any{
			"apiKey":        s.apiKey,
			"n":             100,
			"decimalPlaces": 6,
		},
		"id": 1,
	}

	body, err := json.Marshal(req)
	if err != nil {
		slog.Debug("random.org marshal failed", "error", err)
		return
	}

	resp, err := s.client.Post("https://api.random.org/json-rpc/4/invoke", "application/json", bytes.NewReader(body))
	if err != nil {
		slog.Debug("random.org fetch failed", "error", err)
		return
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		slog.Debug("random.org read failed", "error", err)
		return
	}

	var result struct {
		Result struct {
			Random struct {
				Data []float64 `json:"data"`
			} `json:"random"`
		} `json:"result"`
		Error *struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(respBody, &result); err != nil {
		slog.Debug("random.org parse failed", "error", err)
		return
	}
	if result.Error != nil {
		slog.Debug("random.org API error", "error", result.Error.Message)
		return
	}

	s.pool = append(s.pool, result.Result.Random.Data...)
	slog.Debug("random.org pool refilled", "count", len(result.Result.Random.Data))
}

// CryptoFloat returns a uniform float64 in [0, 1) from crypto/rand, for
// callers that never want the network path.
func CryptoFloat() float64 {
	return cryptoFloat()
}

func cryptoFloat() float64 {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		// crypto/rand should never fail; 0.5 keeps draws valid if it does.
		return 0.5
	}
	// 53 bits gives a uniform float64 in [0, 1).
	n := binary.LittleEndian.Uint64(buf[:]) >> 11
	return float64(n) / float64(1<<53)
}
