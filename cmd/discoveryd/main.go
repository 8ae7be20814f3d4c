package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	v1 "github.com/machinehub/discovery-pipeline/gen/proto/discovery/v1"
	"github.com/machinehub/discovery-pipeline/internal/catalog"
	"github.com/machinehub/discovery-pipeline/internal/classify"
	"github.com/machinehub/discovery-pipeline/internal/common"
	"github.com/machinehub/discovery-pipeline/internal/dedup"
	"github.com/machinehub/discovery-pipeline/internal/export"
	"github.com/machinehub/discovery-pipeline/internal/ledger"
	repo "github.com/machinehub/discovery-pipeline/internal/repository"
	"github.com/machinehub/discovery-pipeline/internal/scrape"
	"github.com/machinehub/discovery-pipeline/internal/server"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	entc, pool, err := server.ConnectDB(ctx, cfg.Database, logger)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer server.CloseDB(entc, pool, logger)

	if err := server.PingDB(ctx, pool, logger, cfg.Database.DialTimeout); err != nil {
		logger.Error("database health check failed", "error", err)
		os.Exit(1)
	}

	// Wire repositories
	urlsRepo := repo.NewDiscoveredURLRepository(entc, logger)
	manufacturersRepo := repo.NewManufacturerRepository(entc, logger)
	machinesRepo := repo.NewCatalogMachineRepository(entc, logger)

	// Wire pipeline services
	ledgerSvc := ledger.NewService(urlsRepo, machinesRepo, logger)

	extractor, err := scrape.NewClient(cfg.Extraction, logger)
	if err != nil {
		logger.Error("failed to build extraction client", "error", err)
		os.Exit(1)
	}
	orchestrator := scrape.NewOrchestrator(ledgerSvc, extractor, logger,
		scrape.WithWorkers(cfg.Extraction.MaxWorkers),
		scrape.WithPerURLTimeout(cfg.Extraction.Timeout),
	)

	index := catalog.NewIndex(machinesRepo, cfg.Dedup.MaxCandidates, logger)
	resolver := dedup.NewResolver(ledgerSvc, index, urlsRepo, cfg.Dedup, logger)

	classifier := classify.NewClient(cfg.Classifier)
	gate := classify.NewGate(ledgerSvc, classifier, urlsRepo, cfg.Classifier.AutoSkipThreshold, logger)

	exporter := export.NewService(urlsRepo, machinesRepo, logger)

	// gRPC server
	grpcServer := grpc.NewServer()
	hs := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, hs)
	hs.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)

	svc := server.NewDiscoveryService(ledgerSvc, orchestrator, resolver, gate, exporter, manufacturersRepo, logger)
	v1.RegisterDiscoveryServiceServer(grpcServer, svc)

	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		logger.Error("failed to listen", "addr", cfg.Server.GRPCAddr, "error", err)
		os.Exit(1)
	}
	logger.Info("gRPC serving", "addr", cfg.Server.GRPCAddr)

	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			logger.Error("grpc serve failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")
	grpcServer.GracefulStop()
	logger.Info("stopped")
}
