// Command server runs the matching engine, the Kraken depth ingestor, and
// the gRPC surface over a single process.
package main

import (
	"context"
	"flag"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"

	"google.golang.org/grpc"

	"github.com/matchbook/exchange/internal/book"
	"github.com/matchbook/exchange/internal/config"
	"github.com/matchbook/exchange/internal/depth"
	"github.com/matchbook/exchange/internal/intake"
	"github.com/matchbook/exchange/internal/ledger"
	"github.com/matchbook/exchange/internal/logging"
	"github.com/matchbook/exchange/internal/matching"
	"github.com/matchbook/exchange/internal/query"
	"github.com/matchbook/exchange/internal/rpc"
	"github.com/matchbook/exchange/internal/snapshot"
	pb "github.com/matchbook/exchange/proto/orderbook"
)

func main() {
	pb.RegisterCodec()

	configPath := flag.String("config", "config.yaml", "path to config.yaml")
	offline := flag.Bool("offline", false, "load order books from the configured offline snapshot files instead of polling Kraken")
	addr := flag.String("addr", "[::1]:50051", "gRPC listen address")
	flag.Parse()

	logger, err := logging.New()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Fatalw("failed to load config", "path", *configPath, "error", err)
	}

	store := book.NewStore()
	led := ledger.New()
	persister := snapshot.NewPersister(cfg.Kraken.Persist)
	queue := intake.New(intake.MinCapacity)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if *offline {
		loader := snapshot.NewLoader(func(path string, line int, err error) {
			logger.Warnw("skipping malformed snapshot row", "path", path, "line", line, "error", err)
		})
		if err := depth.LoadOffline(cfg.Kraken.Offline, store, loader); err != nil {
			logger.Fatalw("failed to load offline snapshots", "error", err)
		}
		logger.Infow("loaded offline order books", "files", cfg.Kraken.Offline)
	} else {
		ingestor := depth.New(cfg.Kraken.Symbols, depth.DefaultPollInterval,
			depth.NewKrakenClient("https://api.kraken.com/0/public/Depth"),
			store, persister, logger)
		go ingestor.Run(ctx)
	}

	engine := matching.New(queue, store, led, persister, logger)
	engineDone := make(chan struct{})
	go func() {
		defer close(engineDone)
		engine.Run(ctx)
	}()

	surf := query.New(store, led)
	server := rpc.New(queue, surf, logger)

	lis, err := net.Listen("tcp", *addr)
	if err != nil {
		logger.Fatalw("failed to listen", "addr", *addr, "error", err)
	}
	grpcServer := grpc.NewServer()
	pb.RegisterOrderBookServer(grpcServer, server)

	go func() {
		logger.Infow("gRPC server listening", "addr", *addr)
		if err := grpcServer.Serve(lis); err != nil {
			logger.Fatalw("gRPC server stopped", "error", err)
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	logger.Infow("shutting down")
	queue.Close()
	<-engineDone
	cancel()
	grpcServer.GracefulStop()
}
