package server

import (
	"context"
	"testing"

	"github.com/deppfellow/student-records/internal/config"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStartWithoutSetup(t *testing.T) {
	logger := zerolog.Nop()
	s := &Server{Config: &config.Config{}, Logger: &logger}
	assert.EqualError(t, s.Start(), "HTTP server not initialized")
}

func TestSetupHTTPServer(t *testing.T) {
	logger := zerolog.Nop()
	s := &Server{
		Config: &config.Config{Server: config.ServerConfig{
			Port:         "9090",
			ReadTimeout:  30,
			WriteTimeout: 15,
			IdleTimeout:  60,
		}},
		Logger: &logger,
	}

	s.SetupHTTPServer(nil)
	require.NotNil(t, s.httpServer)
	assert.Equal(t, ":9090", s.httpServer.Addr)
	assert.Equal(t, "15s", s.httpServer.WriteTimeout.String())
}

func TestShutdownWithoutDependencies(t *testing.T) {
	logger := zerolog.Nop()
	s := &Server{Config: &config.Config{}, Logger: &logger}
	assert.NoError(t, s.Shutdown(context.Background()))
}
