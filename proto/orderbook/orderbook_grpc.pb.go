// Code generated from orderbook.proto. Hand-maintained in this repository
// since the build does not run protoc; keep in sync with the .proto file.

package orderbook

import (
	context "context"

	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

const (
	OrderBook_GetOrderBook_FullMethodName     = "/orderbook.OrderBook/GetOrderBook"
	OrderBook_PlaceMarketOrder_FullMethodName = "/orderbook.OrderBook/PlaceMarketOrder"
	OrderBook_GetTradeBook_FullMethodName     = "/orderbook.OrderBook/GetTradeBook"
)

// OrderBookClient is the client API for the OrderBook service.
type OrderBookClient interface {
	GetOrderBook(ctx context.Context, in *OrderBookRequest, opts ...grpc.CallOption) (*OrderBookResponse, error)
	PlaceMarketOrder(ctx context.Context, in *OrderRequest, opts ...grpc.CallOption) (*OrderResponse, error)
	GetTradeBook(ctx context.Context, in *TradeBookRequest, opts ...grpc.CallOption) (*TradeBookResponse, error)
}

type orderBookClient struct {
	cc grpc.ClientConnInterface
}

// NewOrderBookClient wraps a grpc.ClientConnInterface for use as an
// OrderBookClient.
func NewOrderBookClient(cc grpc.ClientConnInterface) OrderBookClient {
	return &orderBookClient{cc}
}

func (c *orderBookClient) GetOrderBook(ctx context.Context, in *OrderBookRequest, opts ...grpc.CallOption) (*OrderBookResponse, error) {
	out := new(OrderBookResponse)
	if err := c.cc.Invoke(ctx, OrderBook_GetOrderBook_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *orderBookClient) PlaceMarketOrder(ctx context.Context, in *OrderRequest, opts ...grpc.CallOption) (*OrderResponse, error) {
	out := new(OrderResponse)
	if err := c.cc.Invoke(ctx, OrderBook_PlaceMarketOrder_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *orderBookClient) GetTradeBook(ctx context.Context, in *TradeBookRequest, opts ...grpc.CallOption) (*TradeBookResponse, error) {
	out := new(TradeBookResponse)
	if err := c.cc.Invoke(ctx, OrderBook_GetTradeBook_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// OrderBookServer is the server API for the OrderBook service.
type OrderBookServer interface {
	GetOrderBook(context.Context, *OrderBookRequest) (*OrderBookResponse, error)
	PlaceMarketOrder(context.Context, *OrderRequest) (*OrderResponse, error)
	GetTradeBook(context.Context, *TradeBookRequest) (*TradeBookResponse, error)
}

// UnimplementedOrderBookServer may be embedded to satisfy forward
// compatibility; all methods return codes.Unimplemented.
type UnimplementedOrderBookServer struct{}

func (UnimplementedOrderBookServer) GetOrderBook(context.Context, *OrderBookRequest) (*OrderBookResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetOrderBook not implemented")
}

func (UnimplementedOrderBookServer) PlaceMarketOrder(context.Context, *OrderRequest) (*OrderResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method PlaceMarketOrder not implemented")
}

func (UnimplementedOrderBookServer) GetTradeBook(context.Context, *TradeBookRequest) (*TradeBookResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetTradeBook not implemented")
}

// RegisterOrderBookServer registers srv with s under the OrderBook service
// descriptor.
func RegisterOrderBookServer(s grpc.ServiceRegistrar, srv OrderBookServer) {
	s.RegisterService(&OrderBook_ServiceDesc, srv)
}

func _OrderBook_GetOrderBook_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(OrderBookRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(OrderBookServer).GetOrderBook(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: OrderBook_GetOrderBook_FullMethodName}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(OrderBookServer).GetOrderBook(ctx, req.(*OrderBookRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _OrderBook_PlaceMarketOrder_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(OrderRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(OrderBookServer).PlaceMarketOrder(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: OrderBook_PlaceMarketOrder_FullMethodName}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(OrderBookServer).PlaceMarketOrder(ctx, req.(*OrderRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _OrderBook_GetTradeBook_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(TradeBookRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(OrderBookServer).GetTradeBook(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: OrderBook_GetTradeBook_FullMethodName}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(OrderBookServer).GetTradeBook(ctx, req.(*TradeBookRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// OrderBook_ServiceDesc is the grpc.ServiceDesc for the OrderBook service.
var OrderBook_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "orderbook.OrderBook",
	HandlerType: (*OrderBookServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "GetOrderBook", Handler: _OrderBook_GetOrderBook_Handler},
		{MethodName: "PlaceMarketOrder", Handler: _OrderBook_PlaceMarketOrder_Handler},
		{MethodName: "GetTradeBook", Handler: _OrderBook_GetTradeBook_Handler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "orderbook.proto",
}
