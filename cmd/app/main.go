package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/raveberry/netinfo-agent/infrastructure"
	"github.com/raveberry/netinfo-agent/internal/constants"
	"github.com/raveberry/netinfo-agent/internal/environment"
	"github.com/raveberry/netinfo-agent/internal/server"
)

const shutdownTimeout = 5 * time.Second

var (
	env            environment.Environment
	serviceVersion = "0.0.1"
)

func init() {
	var err error
	if env, err = environment.New(); err != nil {
		log.Fatal().Err(err).Msg("error loading environment")
	}
}

func main() {
	logWriter, err := setupRollingLogFile(env.Agent.LogfilePath)
	if err != nil {
		log.Fatal().Err(err).Msg("main")
	}

	log.Logger = log.Output(logWriter)
	if err = setLogLevel(env.Agent.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("main")
	}

	log.Info().
		Str("agent version", serviceVersion).
		Str("listen addr", env.Agent.ListenAddr).
		Str("log path", env.Agent.LogfilePath).
		Str("log level", env.Agent.LogLevel).
		Msg("main: app started")

	cancelCtx, cancelFunc := signal.NotifyContext(context.Background(), os.Kill, os.Interrupt, syscall.SIGTERM)
	defer cancelFunc()

	kernel := infrastructure.Inject(env)
	httpServer := server.New(env.Agent.ListenAddr, getHTTPRoutes(kernel))

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- httpServer.Run()
	}()

	select {
	case <-cancelCtx.Done():
	case err = <-serverErr:
		log.Fatal().Err(err).Msg("main: http server failed")
	}

	log.Info().Msg("main: stopping app...")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	if err = httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("main: http server shutdown error")
	}
	log.Info().Msg("main: app gracefully stopped")
}

func setLogLevel(level string) (err error) {
	parsed, err := zerolog.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("setLogLevel: %w", err)
	}

	zerolog.SetGlobalLevel(parsed)

	return nil
}

func setupRollingLogFile(filename string) (logWriter *lumberjack.Logger, err error) {
	// create log dir if not exists
	if err = os.MkdirAll(filepath.Dir(filename), constants.LogFilePerm); err != nil {
		return logWriter, fmt.Errorf("setupRollingLogFile: %w", err)
	}

	if _, statErr := os.Stat(filename); statErr != nil {
		if !os.IsNotExist(statErr) {
			return logWriter, fmt.Errorf("setupRollingLogFile: %w", statErr)
		}

		// create new log file
		logFile, err := os.OpenFile(filename, os.O_CREATE, constants.LogFilePerm)
		if err != nil {
			return logWriter, fmt.Errorf("setupRollingLogFile: %w", err)
		}
		defer logFile.Close()
	}

	return &lumberjack.Logger{
		Filename:   filename,
		MaxSize:    15,   // megabytes per log file
		MaxAge:     30,   // store retained log files for 30 days
		MaxBackups: 10,   // store maximum 10 retained log files
		Compress:   true, // compress files via gzip
	}, nil
}
