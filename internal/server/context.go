package server

import (
	"context"
	"fmt"
	"sync"

	"github.com/teemow/labelguard/internal/config"
	"github.com/teemow/labelguard/internal/drive"
	"github.com/teemow/labelguard/internal/gmail"
	"github.com/teemow/labelguard/internal/google"
	"github.com/teemow/labelguard/internal/instrumentation"
	"github.com/teemow/labelguard/internal/labels"
	"github.com/teemow/labelguard/internal/sheets"
)

// ServerContext holds the context for the MCP server
type ServerContext struct {
	ctx    context.Context
	cancel context.CancelFunc

	cfg     *config.Config
	metrics *instrumentation.Metrics

	driveClients  map[string]*drive.Client  // Maps account name to Drive client
	labelsClients map[string]*labels.Client // Maps account name to Drive Labels client
	sheetsClients map[string]*sheets.Client // Maps account name to Sheets client
	gmailClients  map[string]*gmail.Client  // Maps account name to Gmail client

	mu       sync.RWMutex
	shutdown bool
}

// NewServerContext creates a new server context. Clients are created lazily
// on first use, so a missing token does not fail server startup.
func NewServerContext(ctx context.Context, cfg *config.Config, metrics *instrumentation.Metrics) (*ServerContext, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}
	if metrics == nil {
		metrics = &instrumentation.Metrics{}
	}

	shutdownCtx, cancel := context.WithCancel(ctx)

	return &ServerContext{
		ctx:           shutdownCtx,
		cancel:        cancel,
		cfg:           cfg,
		metrics:       metrics,
		driveClients:  make(map[string]*drive.Client),
		labelsClients: make(map[string]*labels.Client),
		sheetsClients: make(map[string]*sheets.Client),
		gmailClients:  make(map[string]*gmail.Client),
	}, nil
}

// Context returns the server context
func (sc *ServerContext) Context() context.Context {
	return sc.ctx
}

// Config returns the runtime configuration
func (sc *ServerContext) Config() *config.Config {
	return sc.cfg
}

// Metrics returns the metrics recorder
func (sc *ServerContext) Metrics() *instrumentation.Metrics {
	return sc.metrics
}

// DriveClientForAccount returns the Drive client for a specific account.
// Creates and caches the client if it doesn't exist yet.
// Returns nil if the account has no token.
func (sc *ServerContext) DriveClientForAccount(account string) *drive.Client {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	if client, ok := sc.driveClients[account]; ok {
		return client
	}

	if !google.HasTokenForAccount(account) {
		return nil
	}

	client, err := drive.NewClientForAccount(sc.ctx, account)
	if err != nil {
		return nil
	}

	sc.driveClients[account] = client
	return client
}

// DriveClient returns the Drive client for the default account
func (sc *ServerContext) DriveClient() *drive.Client {
	return sc.DriveClientForAccount("default")
}

// LabelsClientForAccount returns the Drive Labels client for a specific account.
// Creates and caches the client if it doesn't exist yet.
// Returns nil if the account has no token.
func (sc *ServerContext) LabelsClientForAccount(account string) *labels.Client {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	if client, ok := sc.labelsClients[account]; ok {
		return client
	}

	if !google.HasTokenForAccount(account) {
		return nil
	}

	client, err := labels.NewClientForAccount(sc.ctx, account)
	if err != nil {
		return nil
	}

	sc.labelsClients[account] = client
	return client
}

// LabelsClient returns the Drive Labels client for the default account
func (sc *ServerContext) LabelsClient() *labels.Client {
	return sc.LabelsClientForAccount("default")
}

// SheetsClientForAccount returns the Sheets client for a specific account.
// Creates and caches the client if it doesn't exist yet.
// Returns nil if the account has no token.
func (sc *ServerContext) SheetsClientForAccount(account string) *sheets.Client {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	if client, ok := sc.sheetsClients[account]; ok {
		return client
	}

	if !google.HasTokenForAccount(account) {
		return nil
	}

	client, err := sheets.NewClientForAccount(sc.ctx, account)
	if err != nil {
		return nil
	}

	sc.sheetsClients[account] = client
	return client
}

// SheetsClient returns the Sheets client for the default account
func (sc *ServerContext) SheetsClient() *sheets.Client {
	return sc.SheetsClientForAccount("default")
}

// GmailClientForAccount returns the Gmail client for a specific account.
// Creates and caches the client if it doesn't exist yet.
// Returns nil if the account has no token.
func (sc *ServerContext) GmailClientForAccount(account string) *gmail.Client {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	if client, ok := sc.gmailClients[account]; ok {
		return client
	}

	if !gmail.HasTokenForAccount(account) {
		return nil
	}

	client, err := gmail.NewClientForAccount(sc.ctx, account)
	if err != nil {
		return nil
	}

	sc.gmailClients[account] = client
	return client
}

// GmailClient returns the Gmail client for the default account
func (sc *ServerContext) GmailClient() *gmail.Client {
	return sc.GmailClientForAccount("default")
}

// IsShutdown returns whether the server has been shutdown
func (sc *ServerContext) IsShutdown() bool {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.shutdown
}

// Shutdown shuts down the server context
func (sc *ServerContext) Shutdown() error {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	if sc.shutdown {
		return nil
	}

	sc.shutdown = true
	sc.cancel()
	return nil
}
