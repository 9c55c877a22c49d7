package server

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teemow/labelguard/internal/config"
)

func TestNewServerContext_RequiresConfig(t *testing.T) {
	_, err := NewServerContext(context.Background(), nil, nil)
	assert.Error(t, err)
}

func TestServerContext_Shutdown(t *testing.T) {
	sc, err := NewServerContext(context.Background(), &config.Config{}, nil)
	require.NoError(t, err)

	assert.False(t, sc.IsShutdown())
	assert.NotNil(t, sc.Metrics())

	require.NoError(t, sc.Shutdown())
	assert.True(t, sc.IsShutdown())

	// Shutdown is idempotent
	require.NoError(t, sc.Shutdown())

	select {
	case <-sc.Context().Done():
	default:
		t.Error("context should be canceled after shutdown")
	}
}
