package rpc

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/matchbook/exchange/internal/book"
	"github.com/matchbook/exchange/internal/intake"
	"github.com/matchbook/exchange/internal/ledger"
	"github.com/matchbook/exchange/internal/logging"
	"github.com/matchbook/exchange/internal/model"
	"github.com/matchbook/exchange/internal/query"
	"github.com/matchbook/exchange/internal/quant"
	pb "github.com/matchbook/exchange/proto/orderbook"
)

func newTestServer() (*Server, *intake.Queue, *book.Store, *ledger.Ledger) {
	store := book.NewStore()
	led := ledger.New()
	q := intake.New(intake.MinCapacity)
	surf := query.New(store, led)
	return New(q, surf, logging.NewNop()), q, store, led
}

func TestGetOrderBookNotFound(t *testing.T) {
	s, _, _, _ := newTestServer()
	_, err := s.GetOrderBook(context.Background(), &pb.OrderBookRequest{Pair: "XBTUSD"})
	require.Error(t, err)
	assert.Equal(t, codes.NotFound, status.Code(err))
}

func TestGetOrderBookReturnsLevels(t *testing.T) {
	s, _, store, _ := newTestServer()
	price, _ := quant.NewPrice("100")
	volume, _ := quant.NewVolume("1")
	store.Replace("XBTUSD", []model.Order{{Price: price, Volume: volume}})

	resp, err := s.GetOrderBook(context.Background(), &pb.OrderBookRequest{Pair: "XBTUSD"})
	require.NoError(t, err)
	require.Len(t, resp.Orders, 1)
	assert.Equal(t, 100.0, resp.Orders[0].Price)
}

func TestPlaceMarketOrderEnqueuesAndAcknowledges(t *testing.T) {
	s, q, _, _ := newTestServer()
	resp, err := s.PlaceMarketOrder(context.Background(), &pb.OrderRequest{
		Pair:      "XBTUSD",
		Volume:    1.5,
		Side:      "buy",
		OrderType: "limit",
		Price:     100,
		Trader:    "alice",
	})
	require.NoError(t, err)
	assert.Equal(t, "new", resp.Status)
	assert.Equal(t, "order registered and is being processed", resp.Message)

	req, ok := q.Next()
	require.True(t, ok)
	assert.Equal(t, "alice", req.Trader)
	assert.Equal(t, model.Buy, req.Side)
}

func TestPlaceMarketOrderRejectsUnknownSide(t *testing.T) {
	s, _, _, _ := newTestServer()
	_, err := s.PlaceMarketOrder(context.Background(), &pb.OrderRequest{
		Pair: "XBTUSD", Volume: 1, Side: "sideways", OrderType: "limit", Price: 1, Trader: "alice",
	})
	require.Error(t, err)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestPlaceMarketOrderRejectsNonPositiveVolume(t *testing.T) {
	s, _, _, _ := newTestServer()
	_, err := s.PlaceMarketOrder(context.Background(), &pb.OrderRequest{
		Pair: "XBTUSD", Volume: 0, Side: "buy", OrderType: "market", Trader: "alice",
	})
	require.Error(t, err)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestPlaceMarketOrderRejectsClosedQueue(t *testing.T) {
	s, q, _, _ := newTestServer()
	q.Close()
	_, err := s.PlaceMarketOrder(context.Background(), &pb.OrderRequest{
		Pair: "XBTUSD", Volume: 1, Side: "buy", OrderType: "market", Trader: "alice",
	})
	require.Error(t, err)
	assert.Equal(t, codes.Internal, status.Code(err))
}

func TestGetTradeBookNotFound(t *testing.T) {
	s, _, _, _ := newTestServer()
	_, err := s.GetTradeBook(context.Background(), &pb.TradeBookRequest{Trader: "alice"})
	require.Error(t, err)
	assert.Equal(t, codes.NotFound, status.Code(err))
}

func TestGetTradeBookReturnsHistory(t *testing.T) {
	s, _, _, led := newTestServer()
	led.Append("alice", model.Trade{Status: model.StatusNew, Side: "buy"})

	resp, err := s.GetTradeBook(context.Background(), &pb.TradeBookRequest{Trader: "alice"})
	require.NoError(t, err)
	require.Len(t, resp.Trades, 1)
	assert.Equal(t, "new", resp.Trades[0].Status)
}
