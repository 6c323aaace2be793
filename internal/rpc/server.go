// Package rpc implements the gRPC-facing OrderBookServer: book lookups,
// order submission onto the intake queue, and trade history lookups.
package rpc

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/matchbook/exchange/internal/intake"
	"github.com/matchbook/exchange/internal/model"
	"github.com/matchbook/exchange/internal/query"
	"github.com/matchbook/exchange/internal/quant"
	pb "github.com/matchbook/exchange/proto/orderbook"
)

// Server implements pb.OrderBookServer over an intake queue and a
// read-only query surface. It holds no book or ledger state itself.
type Server struct {
	pb.UnimplementedOrderBookServer

	queue  *intake.Queue
	query  *query.Surface
	logger *zap.SugaredLogger
}

// New constructs an RPC server wired to queue for submissions and surf
// for lookups.
func New(queue *intake.Queue, surf *query.Surface, logger *zap.SugaredLogger) *Server {
	return &Server{queue: queue, query: surf, logger: logger}
}

// GetOrderBook returns the current resting orders for a pair.
func (s *Server) GetOrderBook(ctx context.Context, req *pb.OrderBookRequest) (*pb.OrderBookResponse, error) {
	levels, err := s.query.GetBook(req.Pair)
	if err != nil {
		if errors.Is(err, query.ErrNotFound) {
			return nil, status.Errorf(codes.NotFound, "no order book for pair %q", req.Pair)
		}
		return nil, status.Errorf(codes.Internal, "lookup failed: %v", err)
	}
	out := make([]*pb.Order, len(levels))
	for i, lvl := range levels {
		price, err := quant.NewPrice(lvl.Price)
		if err != nil {
			return nil, status.Errorf(codes.Internal, "malformed book level: %v", err)
		}
		volume, err := quant.NewVolume(lvl.Volume)
		if err != nil {
			return nil, status.Errorf(codes.Internal, "malformed book level: %v", err)
		}
		out[i] = &pb.Order{Price: price.Float64(), Volume: volume.Float64()}
	}
	return &pb.OrderBookResponse{Orders: out}, nil
}

// PlaceMarketOrder validates and enqueues a submission. It returns as
// soon as the request is accepted onto the intake queue; matching
// happens asynchronously.
func (s *Server) PlaceMarketOrder(ctx context.Context, req *pb.OrderRequest) (*pb.OrderResponse, error) {
	side, err := parseSubmissionSide(req.Side)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "%v", err)
	}
	orderType, err := parseOrderType(req.OrderType)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "%v", err)
	}
	if req.Volume <= 0 {
		return nil, status.Error(codes.InvalidArgument, "volume must be positive")
	}
	volume := quant.VolumeFromFloat(req.Volume)
	price := quant.ZeroPrice
	if orderType == model.Limit {
		if req.Price <= 0 {
			return nil, status.Error(codes.InvalidArgument, "price must be positive for limit orders")
		}
		price = quant.PriceFromFloat(req.Price)
	}
	if req.Pair == "" {
		return nil, status.Error(codes.InvalidArgument, "pair must not be empty")
	}
	if req.Trader == "" {
		return nil, status.Error(codes.InvalidArgument, "trader must not be empty")
	}

	err = s.queue.Submit(model.OrderRequest{
		Pair:      req.Pair,
		Side:      side,
		Volume:    volume,
		Price:     price,
		OrderType: orderType,
		Trader:    req.Trader,
	})
	if err != nil {
		if errors.Is(err, intake.ErrClosed) {
			return nil, status.Error(codes.Internal, "exchange is shutting down")
		}
		return nil, status.Errorf(codes.Internal, "submit failed: %v", err)
	}

	s.logger.Infow("order accepted", "pair", req.Pair, "trader", req.Trader, "side", req.Side)
	return &pb.OrderResponse{
		Status:  "new",
		Message: "order registered and is being processed",
	}, nil
}

// GetTradeBook returns trader's full trade history.
func (s *Server) GetTradeBook(ctx context.Context, req *pb.TradeBookRequest) (*pb.TradeBookResponse, error) {
	trades, err := s.query.GetTrades(req.Trader)
	if err != nil {
		if errors.Is(err, query.ErrNotFound) {
			return nil, status.Errorf(codes.NotFound, "no trade history for trader %q", req.Trader)
		}
		return nil, status.Errorf(codes.Internal, "lookup failed: %v", err)
	}
	out := make([]*pb.Trade, len(trades))
	for i, t := range trades {
		out[i] = &pb.Trade{
			Id:        t.ID.String(),
			Trader:    t.Trader,
			OrderType: string(t.OrderType),
			Pair:      t.Pair,
			Side:      t.Side,
			Price:     t.Price.Float64(),
			Volume:    t.Volume.Float64(),
			Timestamp: t.Timestamp.Format(timestampFormat),
			Status:    string(t.Status),
		}
	}
	return &pb.TradeBookResponse{Trades: out}, nil
}

const timestampFormat = "2006-01-02T15:04:05Z07:00"

func parseSubmissionSide(raw string) (model.SubmissionSide, error) {
	switch model.SubmissionSide(raw) {
	case model.Buy, model.Sell:
		return model.SubmissionSide(raw), nil
	default:
		return "", fmt.Errorf("unknown side %q, want buy or sell", raw)
	}
}

func parseOrderType(raw string) (model.OrderType, error) {
	switch model.OrderType(raw) {
	case model.Limit, model.Market:
		return model.OrderType(raw), nil
	default:
		return "", fmt.Errorf("unknown order type %q, want limit or market", raw)
	}
}
