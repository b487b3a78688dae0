// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package sheet

import (
	"context"
	"log/slog"
	"sync"

	"github.com/Daphne-CPAdmin/Grade5PotluckApp/apperror"
)

// Client is a lazily opened, shared worksheet handle.
// A failed operation drops the handle so the next call re-opens it.
type Client struct {
	backend Backend

	mu sync.Mutex
	ws Worksheet
}

func NewClient(backend Backend) *Client {
	return &Client{backend: backend}
}

// ReadAllRows reads the full grid. Nothing is cached between calls.
func (c *Client) ReadAllRows(ctx context.Context) ([][]string, error) {
	ws, err := c.worksheet(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := ws.ReadAllRows(ctx)
	if err != nil {
		c.invalidate(ws, err)
		return nil, err
	}
	return rows, nil
}

// WriteCell overwrites one cell in place
func (c *Client) WriteCell(ctx context.Context, row, col int, value string) error {
	ws, err := c.worksheet(ctx)
	if err != nil {
		return err
	}

	if err := ws.WriteCell(ctx, row, col, value); err != nil {
		c.invalidate(ws, err)
		return err
	}
	return nil
}

// Close releases the open handle, if any. The client may be used again afterwards.
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.ws == nil {
		return nil
	}
	err := c.ws.Close()
	c.ws = nil
	return err
}

func (c *Client) worksheet(ctx context.Context) (Worksheet, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.ws != nil {
		return c.ws, nil
	}

	ws, err := c.backend.Open(ctx)
	if err != nil {
		return nil, err
	}

	slog.Info("worksheet opened", "title", ws.Title())
	c.ws = ws
	return ws, nil
}

// invalidate drops ws after a failure that may have left it unusable.
// Other holders may already have replaced it, so only the same handle is dropped.
func (c *Client) invalidate(ws Worksheet, cause error) {
	switch apperror.KindOf(cause) {
	case apperror.KindAuth, apperror.KindBackend:
	default:
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.ws != ws {
		return
	}
	if err := ws.Close(); err != nil {
		slog.Warn("failed to close worksheet", "error", err)
	}
	c.ws = nil
	slog.Warn("worksheet handle reset", "error", cause)
}
