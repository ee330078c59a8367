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

package profiler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/pprof"

	"github.com/rs/zerolog"
)

// Server serves the pprof endpoints under /debug/pprof/, for profiling the
// indexer and the API of a running middleware.
type Server struct {
	log    zerolog.Logger
	server *http.Server
}

// NewServer creates a new server that exposes pprof on the given address.
func NewServer(log zerolog.Logger, address string) *Server {
	mux := http.NewServeMux()
	mux.HandleFunc("/debug/pprof/", pprof.Index)
	mux.HandleFunc("/debug/pprof/cmdline", pprof.Cmdline)
	mux.HandleFunc("/debug/pprof/profile", pprof.Profile)
	mux.HandleFunc("/debug/pprof/symbol", pprof.Symbol)
	mux.HandleFunc("/debug/pprof/trace", pprof.Trace)

	s := Server{
		log: log.With().Str("component", "profiler_server").Logger(),
		server: &http.Server{
			Addr:    address,
			Handler: mux,
		},
	}

	return &s
}

// Start launches the server and blocks until it is stopped.
func (s *Server) Start() error {
	s.log.Info().Str("address", s.server.Addr).Msg("profiler server starting")

	err := s.server.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("could not listen and serve: %w", err)
	}

	return nil
}

// Stop gracefully shuts the server down.
func (s *Server) Stop(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}
