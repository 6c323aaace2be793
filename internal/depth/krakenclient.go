// Package depth implements the periodic market-data ingestor: it fetches
// full per-symbol depth from Kraken (or loads it once from offline
// snapshot files) and atomically replaces the resident book for that
// symbol.
package depth

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

// DefaultFetchTimeout bounds a single depth fetch so a stalled upstream
// can't block a whole ingest cycle indefinitely.
const DefaultFetchTimeout = 5 * time.Second

// depthResponse mirrors the subset of the Kraken public Depth endpoint
// response this client consumes: result.<pair>.{asks,bids}, each an array
// of [price_str, volume_str, ...] with only the first two fields used.
type depthResponse struct {
	Result map[string]struct {
		Asks [][]interface{} `json:"asks"`
		Bids [][]interface{} `json:"bids"`
	} `json:"result"`
}

// RawLevel is one parsed (price, volume) pair from the upstream feed,
// before it is turned into a resting Order by the ingestor.
type RawLevel struct {
	Price  string
	Volume string
}

// KrakenClient fetches full order book depth for a single trading pair.
type KrakenClient struct {
	http    *resty.Client
	baseURL string
}

// NewKrakenClient returns a client hitting baseURL (e.g.
// "https://api.kraken.com/0/public/Depth") with DefaultFetchTimeout.
func NewKrakenClient(baseURL string) *KrakenClient {
	return &KrakenClient{
		http:    resty.New().SetTimeout(DefaultFetchTimeout),
		baseURL: baseURL,
	}
}

// FetchDepth retrieves asks and bids for pair. Only the first two
// positional fields of each level are consumed; the remainder of the
// Kraken payload (e.g. order count) is ignored.
func (c *KrakenClient) FetchDepth(ctx context.Context, pair string) (asks, bids []RawLevel, err error) {
	var body depthResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("pair", pair).
		SetResult(&body).
		Get(c.baseURL)
	if err != nil {
		return nil, nil, fmt.Errorf("fetch depth for %s: %w", pair, err)
	}
	if resp.IsError() {
		return nil, nil, fmt.Errorf("fetch depth for %s: status %s", pair, resp.Status())
	}

	entry, ok := body.Result[pair]
	if !ok {
		return nil, nil, fmt.Errorf("fetch depth for %s: pair missing from response", pair)
	}

	return toLevels(entry.Asks), toLevels(entry.Bids), nil
}

func toLevels(raw [][]interface{}) []RawLevel {
	levels := make([]RawLevel, 0, len(raw))
	for _, fields := range raw {
		if len(fields) < 2 {
			continue
		}
		price, ok1 := fields[0].(string)
		volume, ok2 := fields[1].(string)
		if !ok1 || !ok2 {
			continue
		}
		levels = append(levels, RawLevel{Price: price, Volume: volume})
	}
	return levels
}
