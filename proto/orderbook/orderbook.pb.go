// Code generated from orderbook.proto. Hand-maintained in this repository
// since the build does not run protoc; keep in sync with the .proto file.

package orderbook

// OrderBookRequest is the GetOrderBook request message.
type OrderBookRequest struct {
	Pair string
}

// Order is a single resting (price, volume) level, as returned by
// GetOrderBook. It intentionally carries no id or side.
type Order struct {
	Price  float64
	Volume float64
}

// OrderBookResponse is the GetOrderBook response message.
type OrderBookResponse struct {
	Orders []*Order
}

// OrderRequest is the PlaceMarketOrder request message.
type OrderRequest struct {
	Pair      string
	Volume    float64
	Side      string
	OrderType string
	Price     float64
	Trader    string
}

// OrderResponse is the PlaceMarketOrder response message.
type OrderResponse struct {
	Status  string
	Message string
}

// TradeBookRequest is the GetTradeBook request message.
type TradeBookRequest struct {
	Trader string
}

// Trade is a single ledger record, as returned by GetTradeBook.
type Trade struct {
	Id        string
	Trader    string
	OrderType string
	Pair      string
	Side      string
	Price     float64
	Volume    float64
	Timestamp string
	Status    string
}

// TradeBookResponse is the GetTradeBook response message.
type TradeBookResponse struct {
	Trades []*Trade
}
