package common

import (
	"context"
	"errors"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teemow/labelguard/internal/config"
	"github.com/teemow/labelguard/internal/instrumentation"
	"github.com/teemow/labelguard/internal/server"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		name   string
		result *mcp.CallToolResult
		err    error
		want   string
	}{
		{"success", mcp.NewToolResultText("ok"), nil, instrumentation.StatusSuccess},
		{"handler error", nil, errors.New("boom"), instrumentation.StatusError},
		{"error result", mcp.NewToolResultError("bad input"), nil, instrumentation.StatusError},
		{"nil result", nil, nil, instrumentation.StatusSuccess},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusFor(tt.result, tt.err))
		})
	}
}

func TestInstrumentedToolHandler_PassesThrough(t *testing.T) {
	sc, err := server.NewServerContext(context.Background(), &config.Config{}, nil)
	require.NoError(t, err)
	defer func() { _ = sc.Shutdown() }()

	called := false
	handler := InstrumentedToolHandler("test_tool", sc, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		called = true
		return mcp.NewToolResultText("done"), nil
	})

	result, err := handler(context.Background(), mcp.CallToolRequest{})
	require.NoError(t, err)

	assert.True(t, called)
	assert.False(t, result.IsError)
}

func TestInstrumentedToolHandlerWithService_PropagatesError(t *testing.T) {
	sc, err := server.NewServerContext(context.Background(), &config.Config{}, nil)
	require.NoError(t, err)
	defer func() { _ = sc.Shutdown() }()

	wantErr := errors.New("handler failed")
	handler := InstrumentedToolHandlerWithService("test_tool", "drive", "files.list", sc, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return nil, wantErr
	})

	_, err = handler(context.Background(), mcp.CallToolRequest{})
	assert.ErrorIs(t, err, wantErr)
}
