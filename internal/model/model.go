// Package model defines the immutable-after-creation value objects shared
// across the book, ledger, matching, and snapshot packages.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/matchbook/exchange/internal/quant"
)

// Side is the resting or submitted direction of an order.
type Side string

const (
	Ask Side = "ask"
	Bid Side = "bid"
)

// SubmissionSide is the direction a remote trader submits an order under;
// it is translated to a resting Side (Ask/Bid) by the matching engine.
type SubmissionSide string

const (
	Buy  SubmissionSide = "buy"
	Sell SubmissionSide = "sell"
)

// OrderType distinguishes resting limit orders from non-resting market
// orders.
type OrderType string

const (
	Limit  OrderType = "limit"
	Market OrderType = "market"
)

// TradeStatus is the lifecycle stage of a ledger record.
type TradeStatus string

const (
	StatusNew             TradeStatus = "new"
	StatusPartiallyFilled TradeStatus = "partially_filled"
	StatusFilled          TradeStatus = "filled"
)

// Order is a resting or about-to-rest limit order; market submissions are
// matched as OrderRequest values and never become an Order. Volume is
// mutable only while the matching engine holds exclusive access to the
// book it belongs to.
type Order struct {
	ID        uuid.UUID
	Price     quant.Price
	Volume    quant.Volume
	Side      Side
	OrderType OrderType
	Timestamp time.Time
}

// Trade is a ledger record: either a "new" acknowledgement of a submission
// or a fill resulting from consuming a counterparty order. Trades are
// never modified after creation.
//
// Side carries two different vocabularies depending on Status: a "new"
// record's Side is the submission's own side (buy/sell), while a fill
// record's Side is the consumed counterparty order's resting side
// (ask/bid). The "new" record captures submission intent; the fill
// records describe what was actually resting on the book.
type Trade struct {
	ID        uuid.UUID
	Trader    string
	Pair      string
	Side      string
	Price     quant.Price
	Volume    quant.Volume
	OrderType OrderType
	Timestamp time.Time
	Status    TradeStatus
}

// OrderRequest is an incoming submission from the RPC surface, queued on
// the intake channel for the matcher to consume in arrival order.
type OrderRequest struct {
	Pair      string
	Side      SubmissionSide
	Volume    quant.Volume
	Price     quant.Price
	OrderType OrderType
	Trader    string
}

// RestingSideFor returns the book side a residual limit order rests on
// given the submission side: a buy that doesn't fully fill rests as a bid,
// a sell that doesn't fully fill rests as an ask.
func RestingSideFor(side SubmissionSide) Side {
	if side == Buy {
		return Bid
	}
	return Ask
}

// CounterpartySideFor returns the resting side a submission matches
// against: a buy matches asks, a sell matches bids.
func CounterpartySideFor(side SubmissionSide) Side {
	if side == Buy {
		return Ask
	}
	return Bid
}
