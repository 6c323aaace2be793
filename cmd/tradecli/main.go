// Command tradecli is a thin gRPC client for submitting orders and
// retrieving trade history against a running server.
package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	pb "github.com/matchbook/exchange/proto/orderbook"
)

var serverAddr string

func main() {
	pb.RegisterCodec()

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "tradecli",
		Short: "Submit orders and query trade history against the exchange",
	}
	root.PersistentFlags().StringVar(&serverAddr, "server", "[::1]:50051", "exchange gRPC address")
	root.AddCommand(newMarketOrderCmd())
	root.AddCommand(newRetrieveTradesCmd())
	return root
}

func newMarketOrderCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "market-order <pair> <volume> <side> <order_type> <price> <trader>",
		Short: "Submit an order",
		Args:  cobra.ExactArgs(6),
		RunE: func(cmd *cobra.Command, args []string) error {
			pair, volumeStr, side, orderType, priceStr, trader := args[0], args[1], args[2], args[3], args[4], args[5]
			volume, err := strconv.ParseFloat(volumeStr, 64)
			if err != nil {
				return fmt.Errorf("invalid volume %q: %w", volumeStr, err)
			}
			price, err := strconv.ParseFloat(priceStr, 64)
			if err != nil {
				return fmt.Errorf("invalid price %q: %w", priceStr, err)
			}

			conn, err := dial()
			if err != nil {
				return err
			}
			defer conn.Close()

			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			resp, err := pb.NewOrderBookClient(conn).PlaceMarketOrder(ctx, &pb.OrderRequest{
				Pair:      pair,
				Volume:    volume,
				Side:      side,
				OrderType: orderType,
				Price:     price,
				Trader:    trader,
			})
			if err != nil {
				return fmt.Errorf("place order: %w", err)
			}
			fmt.Printf("%s: %s\n", resp.Status, resp.Message)
			return nil
		},
	}
}

func newRetrieveTradesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "retrieve-trades <trader>",
		Short: "Print a trader's trade history",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			trader := args[0]

			conn, err := dial()
			if err != nil {
				return err
			}
			defer conn.Close()

			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			resp, err := pb.NewOrderBookClient(conn).GetTradeBook(ctx, &pb.TradeBookRequest{Trader: trader})
			if err != nil {
				return fmt.Errorf("retrieve trades: %w", err)
			}
			for _, t := range resp.Trades {
				fmt.Printf("%s  %-4s %-16s %s %10.4f @ %10.4f  [%s]\n",
					t.Timestamp, t.Side, t.Pair, t.Status, t.Volume, t.Price, t.Id)
			}
			return nil
		},
	}
}

func dial() (*grpc.ClientConn, error) {
	conn, err := grpc.NewClient(serverAddr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", serverAddr, err)
	}
	return conn, nil
}
