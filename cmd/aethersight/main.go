package main

import (
	"context"
	"fmt"
	"os"

	"github.com/gabapcia/aethersight/internal/blockcache"
	"github.com/gabapcia/aethersight/internal/config"
	"github.com/gabapcia/aethersight/internal/edgeexport"
	"github.com/gabapcia/aethersight/internal/explorer"
	"github.com/gabapcia/aethersight/internal/handlers/api"
	"github.com/gabapcia/aethersight/internal/handlers/cli"
	"github.com/gabapcia/aethersight/internal/infra/blockchain/ethereum"
	"github.com/gabapcia/aethersight/internal/infra/storage/file"
	"github.com/gabapcia/aethersight/internal/infra/storage/leveldb"
	"github.com/gabapcia/aethersight/internal/infra/storage/memory"
	"github.com/gabapcia/aethersight/internal/infra/storage/redis"
	"github.com/gabapcia/aethersight/internal/infra/stream/kafka"
	"github.com/gabapcia/aethersight/internal/pkg/logger"
	"github.com/gabapcia/aethersight/internal/pkg/telemetry"
	transporthttp "github.com/gabapcia/aethersight/internal/pkg/transport/http"
	"github.com/gabapcia/aethersight/internal/pkg/transport/jsonrpc"
	"github.com/gabapcia/aethersight/internal/txlinks"
)

func nopClose() error { return nil }

// openStorage opens the configured block cache backend.
func openStorage(ctx context.Context, cfg config.Config) (blockcache.BlockStorage, func() error, error) {
	switch cfg.CacheBackend {
	case config.CacheMemory:
		return memory.New(), nopClose, nil
	case config.CacheRedis:
		c, err := redis.NewClient(ctx, cfg.Redis.Addr, cfg.Redis.Username, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			return nil, nil, err
		}
		return c, c.Close, nil
	case config.CacheLevelDB:
		s, err := leveldb.Open(cfg.LevelDBPath)
		if err != nil {
			return nil, nil, err
		}
		return s, s.Close, nil
	default:
		return file.New(cfg.DataDir), nopClose, nil
	}
}

// exporter connects the Kafka edge exporter on demand.
func exporter(cfg config.Config, links txlinks.Service) cli.ExporterFunc {
	return func(ctx context.Context) (edgeexport.Service, func() error, error) {
		producer, err := kafka.NewProducer(ctx, cfg.Kafka.Brokers, cfg.Kafka.Topic)
		if err != nil {
			return nil, nil, err
		}

		svc, err := edgeexport.NewService(links, producer)
		if err != nil {
			_ = producer.Close()
			return nil, nil, err
		}

		return svc, producer.Close, nil
	}
}

func run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	var logOpts []logger.Option
	if cfg.LogFile != "" {
		logOpts = append(logOpts, logger.WithFile(cfg.LogFile))
	}
	if err := logger.Init(cfg.LogLevel, logOpts...); err != nil {
		return err
	}
	defer logger.Sync()

	shutdown, err := telemetry.Init(ctx, cfg.Telemetry.ServiceName, cfg.Telemetry.Enabled)
	if err != nil {
		return err
	}
	defer func() {
		if err := shutdown(context.WithoutCancel(ctx)); err != nil {
			logger.Warn(ctx, "failed to flush telemetry", "error", err)
		}
	}()

	storage, closeStorage, err := openStorage(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStorage()

	rpc := jsonrpc.NewClient(cfg.ProviderEndpoint(), transporthttp.NewClient(
		transporthttp.WithTimeout(cfg.ProviderTimeout),
		transporthttp.WithRequestLogging(),
	))

	blocks := blockcache.New(ethereum.NewClient(rpc, cfg.APIKey), blockcache.WithStorage(storage))
	links := txlinks.NewService(blocks)

	router := api.NewRouter(links,
		api.WithAllowedOrigin(cfg.CORSAllowedOrigin),
		api.WithServiceName(cfg.Telemetry.ServiceName),
	)

	return cli.Run(ctx, links, router,
		cli.WithAddr(cfg.HTTPAddr),
		cli.WithExporter(exporter(cfg, links)),
		cli.WithSceneOptions(
			explorer.WithSize(cfg.ViewWidth, cfg.ViewHeight),
			explorer.WithExplorerURL(cfg.ExplorerURL),
		),
	)
}

func main() {
	ctx := context.Background()

	if err := run(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
