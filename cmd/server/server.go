package main

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
	"google.golang.org/grpc/status"

	grpc_auth "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/auth"
	grpc_logging "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"

	"github.com/KirkDiggler/tamagotchi-api/internal/config"
	"github.com/KirkDiggler/tamagotchi-api/internal/engine/rpgtoolkit"
	"github.com/KirkDiggler/tamagotchi-api/internal/errors"
	"github.com/KirkDiggler/tamagotchi-api/internal/handlers/tamagotchi/v1alpha1"
	creatureorch "github.com/KirkDiggler/tamagotchi-api/internal/orchestrators/creature"
	"github.com/KirkDiggler/tamagotchi-api/internal/pkg/clock"
	"github.com/KirkDiggler/tamagotchi-api/internal/pkg/idgen"
	"github.com/KirkDiggler/tamagotchi-api/internal/redis"
	creaturerepo "github.com/KirkDiggler/tamagotchi-api/internal/repositories/creature"
	"github.com/KirkDiggler/tamagotchi-api/internal/repositories/journal"
)

const shutdownTimeout = 30 * time.Second

var (
	envFile   string
	grpcPort  int
	httpPort  int
	storeKind string
	dataFile  string
	redisAddr string
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the gRPC server and WebSocket gateway",
	Long: `Start the BotService gRPC server and, unless the HTTP port is 0, the WebSocket
gateway. Settings come from .env and the environment; flags override both.`,
	RunE: runServer,
}

func init() {
	serverCmd.Flags().StringVar(&envFile, "env-file", config.DefaultEnvFile, "optional dotenv file")
	serverCmd.Flags().IntVar(&grpcPort, "port", config.DefaultGRPCPort, "gRPC server port")
	serverCmd.Flags().IntVar(&httpPort, "http-port", config.DefaultHTTPPort, "WebSocket gateway port, 0 disables it")
	serverCmd.Flags().StringVar(&storeKind, "store", config.DefaultStoreBackend, "creature store: memory, file or redis")
	serverCmd.Flags().StringVar(&dataFile, "data-file", config.DefaultDataFile, "JSON file used by the file store")
	serverCmd.Flags().StringVar(&redisAddr, "redis-addr", config.DefaultRedisAddr, "Redis address used by the redis store")
}

// loadConfig applies explicitly set flags on top of the environment
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(envFile)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("port") {
		cfg.GRPCPort = grpcPort
	}
	if flags.Changed("http-port") {
		cfg.HTTPPort = httpPort
	}
	if flags.Changed("store") {
		cfg.StoreBackend = strings.ToLower(storeKind)
	}
	if flags.Changed("data-file") {
		cfg.DataFile = dataFile
	}
	if flags.Changed("redis-addr") {
		cfg.RedisAddr = redisAddr
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runServer(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	slog.SetDefault(cfg.NewLogger(os.Stderr))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	creatures, journals, closeStores, err := buildStores(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStores()

	eng, err := rpgtoolkit.NewAdapter(&rpgtoolkit.AdapterConfig{
		DiceRoller: dice.DefaultRoller,
	})
	if err != nil {
		return fmt.Errorf("failed to create engine: %w", err)
	}

	svc, err := creatureorch.NewOrchestrator(&creatureorch.Config{
		CreatureRepo:  creatures,
		JournalRepo:   journals,
		Engine:        eng,
		EventBus:      events.NewBus(),
		Clock:         clock.New(),
		DriftInterval: cfg.DriftInterval,
		DailyCooldown: cfg.DailyCooldown,
	})
	if err != nil {
		return fmt.Errorf("failed to create creature orchestrator: %w", err)
	}

	dispatcher, err := v1alpha1.NewDispatcher(&v1alpha1.DispatcherConfig{
		CreatureService: svc,
		AdminIDs:        cfg.AdminIDs,
	})
	if err != nil {
		return fmt.Errorf("failed to create dispatcher: %w", err)
	}

	handler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{Dispatcher: dispatcher})
	if err != nil {
		return fmt.Errorf("failed to create bot handler: %w", err)
	}

	srv := newGRPCServer(cfg.BotToken)
	v1alpha1.RegisterBotServiceServer(srv, handler)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(srv, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(v1alpha1.BotServiceName, grpc_health_v1.HealthCheckResponse_SERVING)

	reflection.Register(srv)

	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.GRPCPort))
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}

	errChan := make(chan error, 2)
	go func() {
		slog.Info("gRPC server starting", "port", cfg.GRPCPort, "store", cfg.StoreBackend)
		if err := srv.Serve(lis); err != nil {
			errChan <- fmt.Errorf("failed to serve gRPC: %w", err)
		}
	}()

	var httpServer *http.Server
	if cfg.HTTPPort > 0 {
		gateway, err := v1alpha1.NewGateway(&v1alpha1.GatewayConfig{
			Dispatcher: dispatcher,
			Token:      cfg.BotToken,
		})
		if err != nil {
			return fmt.Errorf("failed to create websocket gateway: %w", err)
		}

		httpServer = &http.Server{
			Addr:              fmt.Sprintf(":%d", cfg.HTTPPort),
			Handler:           gateway.Routes(),
			ReadHeaderTimeout: 10 * time.Second,
		}
		go func() {
			slog.Info("websocket gateway starting", "port", cfg.HTTPPort)
			if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				errChan <- fmt.Errorf("failed to serve websocket gateway: %w", err)
			}
		}()
	}

	select {
	case <-ctx.Done():
		slog.Info("received shutdown signal, gracefully stopping")
	case err := <-errChan:
		srv.Stop()
		return err
	}

	healthServer.Shutdown()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if httpServer != nil {
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			slog.Warn("websocket gateway shutdown failed", "error", err.Error())
		}
	}

	stopped := make(chan struct{})
	go func() {
		srv.GracefulStop()
		close(stopped)
	}()

	select {
	case <-shutdownCtx.Done():
		slog.Warn("graceful shutdown timeout exceeded, forcing stop")
		srv.Stop()
	case <-stopped:
		slog.Info("server stopped gracefully")
	}
	return nil
}

func newGRPCServer(token string) *grpc.Server {
	logger := grpc_logging.LoggerFunc(logFunc)
	recovery := grpc_recovery.WithRecoveryHandlerContext(recoverPanic)

	unary := []grpc.UnaryServerInterceptor{
		grpc_logging.UnaryServerInterceptor(logger),
		grpc_recovery.UnaryServerInterceptor(recovery),
	}
	stream := []grpc.StreamServerInterceptor{
		grpc_logging.StreamServerInterceptor(logger),
		grpc_recovery.StreamServerInterceptor(recovery),
	}
	if token != "" {
		authFn := bearerAuth(token)
		unary = append(unary, grpc_auth.UnaryServerInterceptor(authFn))
		stream = append(stream, grpc_auth.StreamServerInterceptor(authFn))
	}

	return grpc.NewServer(
		grpc.ChainUnaryInterceptor(unary...),
		grpc.ChainStreamInterceptor(stream...),
	)
}

// bearerAuth guards the BotService; health checks and reflection stay open
func bearerAuth(token string) grpc_auth.AuthFunc {
	return func(ctx context.Context) (context.Context, error) {
		if method, ok := grpc.Method(ctx); ok && !strings.HasPrefix(method, "/"+v1alpha1.BotServiceName+"/") {
			return ctx, nil
		}

		presented, err := grpc_auth.AuthFromMD(ctx, "bearer")
		if err != nil {
			return nil, err
		}
		if presented != token {
			return nil, errors.ToGRPCError(errors.Unauthenticated("invalid bot token"))
		}
		return ctx, nil
	}
}

func recoverPanic(ctx context.Context, p any) error {
	slog.ErrorContext(ctx, "panic while handling request", "panic", fmt.Sprint(p))
	return status.Error(codes.Internal, errors.GenericApology)
}

func logFunc(ctx context.Context, level grpc_logging.Level, msg string, fields ...any) {
	slog.Log(ctx, slog.Level(level), msg, fields...)
}

// buildStores opens the configured creature store. The journal lives in Redis
// when Redis is the backend and in memory otherwise.
func buildStores(ctx context.Context, cfg *config.Config) (creaturerepo.Repository, journal.Repository, func(), error) {
	noop := func() {}

	switch cfg.StoreBackend {
	case config.StoreMemory:
		return creaturerepo.NewInMemory(), journal.NewInMemory(nil), noop, nil

	case config.StoreFile:
		creatures, err := creaturerepo.NewFile(&creaturerepo.FileConfig{Path: cfg.DataFile})
		if err != nil {
			return nil, nil, nil, fmt.Errorf("failed to open %s: %w", cfg.DataFile, err)
		}
		return creatures, journal.NewInMemory(nil), noop, nil

	case config.StoreRedis:
		client, err := redis.NewClient(cfg.RedisAddr, cfg.RedisOptions())
		if err != nil {
			return nil, nil, nil, fmt.Errorf("failed to create redis client: %w", err)
		}
		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close()
			return nil, nil, nil, fmt.Errorf("failed to reach redis at %s: %w", cfg.RedisAddr, err)
		}

		creatures, err := creaturerepo.NewRedis(&creaturerepo.RedisConfig{Client: client})
		if err != nil {
			return nil, nil, nil, err
		}
		journals, err := journal.NewRedis(&journal.RedisConfig{
			Client: client,
			IDGen:  idgen.NewUUID("jrn"),
		})
		if err != nil {
			return nil, nil, nil, err
		}
		return creatures, journals, func() { _ = client.Close() }, nil

	default:
		return nil, nil, nil, fmt.Errorf("unknown store backend %q", cfg.StoreBackend)
	}
}
