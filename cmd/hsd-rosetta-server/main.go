// Copyright 2021 Optakt Labs OÜ
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not
// use this file except in compliance with the License. You may obtain a copy of
// the License at
//
//     https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS, WITHOUT
// WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the
// License for the specific language governing permissions and limitations under
// the License.

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"time"

	"github.com/btcsuite/btcd/rpcclient"
	"github.com/dgraph-io/badger/v2"
	"github.com/hashicorp/go-multierror"
	"github.com/klauspost/compress/zstd"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/ziflex/lecho/v2"

	"github.com/optakt/hsd-rosetta/api/rosetta"
	"github.com/optakt/hsd-rosetta/codec/zbor"
	"github.com/optakt/hsd-rosetta/models/hns"
	"github.com/optakt/hsd-rosetta/rosetta/configuration"
	"github.com/optakt/hsd-rosetta/rosetta/converter"
	"github.com/optakt/hsd-rosetta/rosetta/retriever"
	"github.com/optakt/hsd-rosetta/rosetta/validator"
	"github.com/optakt/hsd-rosetta/service/index"
	"github.com/optakt/hsd-rosetta/service/indexer"
	"github.com/optakt/hsd-rosetta/service/mempool"
	"github.com/optakt/hsd-rosetta/service/metrics"
	"github.com/optakt/hsd-rosetta/service/node"
	"github.com/optakt/hsd-rosetta/service/profiler"
	"github.com/optakt/hsd-rosetta/service/storage"
)

const (
	success = 0
	failure = 1
)

func main() {
	os.Exit(run())
}

func run() int {

	// Signal catching for clean shutdown.
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt)

	// Command line parameter initialization.
	var (
		flagCacheSize uint64
		flagDepth     uint
		flagIndex     string
		flagInterval  time.Duration
		flagLevel     string
		flagMetrics   string
		flagNetwork   string
		flagNodeAPI   string
		flagNodePass  string
		flagNodeUser  string
		flagPort      uint16
		flagProfiler  string
		flagStart     uint64
	)

	pflag.Uint64VarP(&flagCacheSize, "cache-size", "c", 1000, "maximum number of decoded blocks kept in memory")
	pflag.UintVarP(&flagDepth, "depth", "d", indexer.DefaultConfig.Depth, "maximum depth of reorganizations that can be unwound")
	pflag.StringVarP(&flagIndex, "index", "i", "index", "database directory for the chain index")
	pflag.DurationVar(&flagInterval, "interval", indexer.DefaultConfig.Interval, "interval between polls of the node tip")
	pflag.StringVarP(&flagLevel, "level", "l", "info", "log output level")
	pflag.StringVarP(&flagMetrics, "metrics", "m", "", "address on which to expose metrics (no metrics are collected when empty)")
	pflag.StringVarP(&flagNetwork, "network", "n", hns.HandshakeMainnet, "name of the Handshake network")
	pflag.StringVarP(&flagNodeAPI, "node-api", "a", "127.0.0.1:12037", "host and port of the hsd node RPC API")
	pflag.StringVar(&flagNodePass, "node-pass", "", "API key of the hsd node RPC API")
	pflag.StringVar(&flagNodeUser, "node-user", "x", "user name of the hsd node RPC API")
	pflag.Uint16VarP(&flagPort, "port", "p", 8080, "port to host Rosetta API on")
	pflag.StringVar(&flagProfiler, "profiler", "", "address on which to expose pprof (profiler is disabled when empty)")
	pflag.Uint64VarP(&flagStart, "start", "s", indexer.DefaultConfig.StartHeight, "first block height to index on an empty index")

	pflag.Parse()

	// Logger initialization.
	zerolog.TimestampFunc = func() time.Time { return time.Now().UTC() }
	log := zerolog.New(os.Stderr).With().Timestamp().Logger().Level(zerolog.DebugLevel)
	level, err := zerolog.ParseLevel(flagLevel)
	if err != nil {
		log.Error().Str("level", flagLevel).Err(err).Msg("could not parse log level")
		return failure
	}
	log = log.Level(level)
	elog := lecho.From(log)

	params, err := hns.ParamsFor(flagNetwork)
	if err != nil {
		log.Error().Str("network", flagNetwork).Err(err).Msg("invalid network")
		return failure
	}

	// Metrics go to a dedicated registry, which is only exposed when a metrics
	// address is given.
	registry := prometheus.NewRegistry()
	if flagMetrics != "" {
		err = metrics.RegisterBadgerMetrics(registry)
		if err != nil {
			log.Error().Err(err).Msg("could not register badger metrics")
			return failure
		}
	}

	// Initialize the index database.
	db, err := badger.Open(hns.DefaultOptions(flagIndex))
	if err != nil {
		log.Error().Str("index", flagIndex).Err(err).Msg("could not open index database")
		return failure
	}
	defer func() {
		err := db.Close()
		if err != nil {
			log.Error().Err(err).Msg("could not close index database")
		}
	}()

	codec := zbor.NewCodec(zstd.SpeedDefault)
	lib := storage.New(codec)
	read, err := index.NewReader(db, lib, index.WithCacheSize(flagCacheSize))
	if err != nil {
		log.Error().Err(err).Msg("could not initialize index reader")
		return failure
	}
	var write hns.Writer = index.NewWriter(db, lib)
	if flagMetrics != "" {
		write = index.NewMetricsWriter(write, registry)
	}

	// Initialize the node client. Handshake nodes speak a Bitcoin-style
	// JSON-RPC dialect over plain HTTP POST requests.
	rpc, err := rpcclient.New(&rpcclient.ConnConfig{
		Host:         flagNodeAPI,
		User:         flagNodeUser,
		Pass:         flagNodePass,
		HTTPPostMode: true,
		DisableTLS:   true,
	}, nil)
	if err != nil {
		log.Error().Str("node_api", flagNodeAPI).Err(err).Msg("could not create node RPC client")
		return failure
	}
	defer rpc.Shutdown()
	var requester node.Requester = rpc
	if flagMetrics != "" {
		requester = node.NewMetricsRequester(requester, registry)
	}
	client := node.NewClient(log, requester)

	// Initialize the indexer that keeps the index in sync with the node.
	follow := indexer.New(log, client, read, write,
		indexer.WithStartHeight(flagStart),
		indexer.WithInterval(flagInterval),
		indexer.WithDepth(flagDepth),
	)

	// Rosetta API initialization.
	config := configuration.New(params)
	pool := mempool.New(log, client, read)
	convert := converter.New(params, config.Currency())
	retrieve := retriever.New(params, config.Currency(), read, pool, client, convert)
	validate := validator.New(params)
	data := rosetta.NewData(log, config, validate, retrieve)
	construct := rosetta.NewConstruction(log, config, validate, retrieve)

	server := echo.New()
	server.HideBanner = true
	server.HidePort = true
	server.Logger = elog
	server.Use(lecho.Middleware(lecho.Config{Logger: elog}))
	server.POST("/network/list", data.Networks)
	server.POST("/network/options", data.Options)
	server.POST("/network/status", data.Status)
	server.POST("/account/balance", data.Balance)
	server.POST("/block", data.Block)
	server.POST("/block/transaction", data.Transaction)
	server.POST("/mempool", data.Mempool)
	server.POST("/mempool/transaction", data.MempoolTransaction)
	server.POST("/construction/metadata", construct.Metadata)
	server.POST("/construction/submit", construct.Submit)

	var expose *metrics.Server
	if flagMetrics != "" {
		expose = metrics.NewServer(log, flagMetrics, registry)
	}
	var profile *profiler.Server
	if flagProfiler != "" {
		profile = profiler.NewServer(log, flagProfiler)
	}

	// This section launches the main executing components in their own
	// goroutine, so they can run concurrently. Afterwards, we wait for an
	// interrupt signal in order to proceed with the next section.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var wg sync.WaitGroup
	done := make(chan struct{})
	failed := make(chan struct{})
	var once sync.Once
	fail := func() { once.Do(func() { close(failed) }) }

	wg.Add(1)
	go func() {
		defer wg.Done()
		log.Info().Msg("Handshake indexer starting")
		err := follow.Run(ctx)
		if err != nil {
			log.Error().Err(err).Msg("Handshake indexer failed")
			fail()
			return
		}
		log.Info().Msg("Handshake indexer stopped")
	}()

	if expose != nil {
		go func() {
			err := expose.Start()
			if err != nil {
				log.Error().Err(err).Msg("metrics server failed")
				fail()
			}
		}()
	}

	if profile != nil {
		go func() {
			err := profile.Start()
			if err != nil {
				log.Warn().Err(err).Msg("profiler server failed")
			}
		}()
	}

	go func() {
		log.Info().Uint16("port", flagPort).Msg("Handshake Rosetta Server starting")
		err := server.Start(fmt.Sprint(":", flagPort))
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Warn().Err(err).Msg("Handshake Rosetta Server failed")
			fail()
		} else {
			close(done)
		}
		log.Info().Msg("Handshake Rosetta Server stopped")
	}()

	result := success
	select {
	case <-sig:
		log.Info().Msg("Handshake Rosetta Server stopping")
	case <-done:
		log.Info().Msg("Handshake Rosetta Server done")
	case <-failed:
		log.Warn().Msg("Handshake Rosetta Server aborted")
		result = failure
	}
	go func() {
		<-sig
		log.Warn().Msg("forcing exit")
		os.Exit(1)
	}()

	// The following code starts a shut down with a certain timeout and makes
	// sure that the main executing components are shutting down within the
	// allocated shutdown time. Otherwise, we will force the shutdown and log
	// an error. We then wait for shutdown on each component to complete.
	shutdown, stop := context.WithTimeout(context.Background(), 30*time.Second)
	defer stop()

	var merr *multierror.Error
	err = server.Shutdown(shutdown)
	if err != nil {
		merr = multierror.Append(merr, fmt.Errorf("could not shut down Rosetta API: %w", err))
	}
	if expose != nil {
		err = expose.Stop(shutdown)
		if err != nil {
			merr = multierror.Append(merr, fmt.Errorf("could not shut down metrics server: %w", err))
		}
	}
	if profile != nil {
		err = profile.Stop(shutdown)
		if err != nil {
			merr = multierror.Append(merr, fmt.Errorf("could not shut down profiler server: %w", err))
		}
	}

	cancel()
	wg.Wait()

	err = merr.ErrorOrNil()
	if err != nil {
		log.Error().Err(err).Msg("could not shut down cleanly")
		return failure
	}

	return result
}
