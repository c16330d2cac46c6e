package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"google.golang.org/grpc"
	"liyu1981.xyz/energy-monitor-service/pkg/common"
	"liyu1981.xyz/energy-monitor-service/pkg/config"
	"liyu1981.xyz/energy-monitor-service/pkg/db"
	"liyu1981.xyz/energy-monitor-service/pkg/energy"
	energyGrpc "liyu1981.xyz/energy-monitor-service/pkg/grpc"
	pb "liyu1981.xyz/energy-monitor-service/pkg/grpc/energy_service"
	energyHttp "liyu1981.xyz/energy-monitor-service/pkg/http"
	"liyu1981.xyz/energy-monitor-service/pkg/live"
	"liyu1981.xyz/energy-monitor-service/pkg/metrics"
	"liyu1981.xyz/energy-monitor-service/pkg/mqtt"
	"liyu1981.xyz/energy-monitor-service/pkg/redisstream"
	"liyu1981.xyz/energy-monitor-service/pkg/sampler"
	"liyu1981.xyz/energy-monitor-service/pkg/simulator"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Invalid configuration: ", err)
	}

	logger := common.GetLogger()

	switch cfg.Service.DBType {
	case "file", "memory":
	default:
		log.Fatal("Unknown ENERGY_DB_TYPE: " + cfg.Service.DBType)
	}
	dbInstance := db.GetInstance(db.UseDialectorFor(cfg.Service.DBType))

	energyCore := energy.New(*dbInstance, cfg.Thresholds, cfg.Policy)
	energyCore.Tariff = cfg.Service.TariffPerKWh

	collector := metrics.New()
	energyCore.WithObservers(collector).WithActuators(collector)

	liveHub := live.NewHub()
	energyCore.WithNotifiers(liveHub).WithActuators(liveHub)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	deviceID := cfg.Service.DeviceID

	var latest *sampler.LatestSource
	if cfg.Service.Source == config.SourceMQTT {
		latest = sampler.NewLatestSource(cfg.SensorMaxAge(), cfg.Thresholds)
	}

	mqttClient := mqtt.NewClient(cfg.MQTT)
	if err := mqttClient.Connect(); err != nil {
		if latest != nil {
			log.Fatal("Failed to connect to MQTT broker: ", err)
		}
		logger.Warn("MQTT broker not reachable, running without MQTT", zap.Error(err))
		mqttClient = nil
	}

	if mqttClient != nil {
		publisher := mqtt.NewPublisher(mqttClient)
		energyCore.WithNotifiers(publisher).WithActuators(publisher)

		ingestor := mqtt.NewIngestor(mqttClient, energyCore, deviceID)
		if latest != nil {
			ingestor.WithPusher(deviceID, latest)
		}
		if err := ingestor.Start(); err != nil {
			log.Fatal("Failed to subscribe MQTT topics: ", err)
		}
		defer func() {
			_ = ingestor.Stop()
			mqttClient.Disconnect()
		}()
	}

	if cfg.Service.RedisAddr != "" {
		client := redisstream.NewClient(cfg.Service.RedisAddr)
		if err := redisstream.Ping(ctx, client); err != nil {
			logger.Warn("Redis not reachable, events are not streamed",
				zap.String("addr", cfg.Service.RedisAddr), zap.Error(err))
		} else {
			sink := redisstream.NewSink(client, cfg.Service.RedisStream)
			energyCore.WithNotifiers(sink).WithActuators(sink)
			logger.Info("Streaming events to redis",
				zap.String("addr", cfg.Service.RedisAddr), zap.String("stream", cfg.Service.RedisStream))
		}
		defer client.Close()
	}

	var source sampler.Source
	switch cfg.Service.Source {
	case config.SourceSimulator:
		source = simulator.New(cfg.Sensor.SampleInterval)
	case config.SourceMQTT:
		source = latest
	default:
		log.Fatal("Unknown ENERGY_SOURCE: " + cfg.Service.Source)
	}

	s := sampler.New(deviceID, source, cfg.Sensor.SampleInterval, cfg.Sensor.Timeout, energyCore)
	go func() {
		_ = s.Run(ctx)
	}()

	limiterSummary := zap.String("default_limiter",
		fmt.Sprintf("{\"default_rate\": %v, \"default_burst\": %v}", cfg.Service.DefaultRate, cfg.Service.DefaultBurst))

	if grpcHostPort := cfg.Service.GrpcHostPort; grpcHostPort != "" {
		energyGrpcServer := energyGrpc.EnergyServer{
			Energy:           energyCore,
			RateLimiterStore: energy.NewRateLimiterStore(rate.Limit(cfg.Service.DefaultRate), cfg.Service.DefaultBurst),
		}
		interceptor := energyGrpcServer.CreateRateLimitInterceptor(energyGrpc.LimitedRequests())
		gs := grpc.NewServer(grpc.UnaryInterceptor(interceptor))
		pb.RegisterEnergyServiceServer(gs, &energyGrpcServer)
		logger.Info("gRPC server created with:", limiterSummary)

		listener, err := net.Listen("tcp", grpcHostPort)
		if err != nil {
			log.Fatalf("failed to listen: %v", err)
		}

		go func() {
			logger.Info("start gRPC server on " + grpcHostPort)
			if err := gs.Serve(listener); err != nil {
				log.Fatalf("grpc server failed to serve: %v", err)
			}
		}()
		defer gs.GracefulStop()
	}

	rs := &energyHttp.RestfulServer{
		Server:           gin.Default(),
		Energy:           energyCore,
		RateLimiterStore: energy.NewRateLimiterStore(rate.Limit(cfg.Service.DefaultRate), cfg.Service.DefaultBurst),
		Metrics:          collector.Handler(),
		Live:             liveHub,
	}
	rs.Setup()
	logger.Info("http server created with:", limiterSummary)

	httpServer := &http.Server{Addr: cfg.Service.HTTPHostPort, Handler: rs.Server}
	go func() {
		logger.Info("Starting HTTP server on: " + cfg.Service.HTTPHostPort)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("http server failed to serve: %v", err)
		}
	}()

	logger.Info("Energy monitor running",
		zap.String(common.LoggerFieldDeviceID, deviceID),
		zap.String("source", cfg.Service.Source),
		zap.Duration("sample_interval", cfg.Sensor.SampleInterval),
	)

	<-ctx.Done()
	logger.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Warn("HTTP server shutdown", zap.Error(err))
	}
}
