// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/nats-io/nats.go"

	"github.com/taibuivan/bazaar/internal/platform/constants"
)

const (
	connectTimeout = 5 * time.Second
	maxReconnects  = 10
	reconnectWait  = 2 * time.Second
)

// NATSPublisher publishes JSON envelopes on a core NATS connection.
type NATSPublisher struct {
	conn *nats.Conn
}

// Connect dials the broker at url. Connection state changes are logged.
func Connect(url string, logger *slog.Logger) (*NATSPublisher, error) {
	options := []nats.Option{
		nats.Name(constants.AppName),
		nats.Timeout(connectTimeout),
		nats.MaxReconnects(maxReconnects),
		nats.ReconnectWait(reconnectWait),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			logger.Warn("nats_disconnected", slog.Any("error", err))
		}),
		nats.ReconnectHandler(func(conn *nats.Conn) {
			logger.Info("nats_reconnected", slog.String("url", conn.ConnectedUrl()))
		}),
	}

	conn, err := nats.Connect(url, options...)
	if err != nil {
		return nil, fmt.Errorf("events: connect to %s: %w", url, err)
	}

	logger.Info("nats_connected", slog.String("url", conn.ConnectedUrl()))
	return &NATSPublisher{conn: conn}, nil
}

// Publish implements [Publisher].
func (p *NATSPublisher) Publish(ctx context.Context, subject string, payload any) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := json.Marshal(NewEnvelope(subject, payload))
	if err != nil {
		return fmt.Errorf("events: encode %s: %w", subject, err)
	}

	if err := p.conn.Publish(subject, data); err != nil {
		return fmt.Errorf("events: publish %s: %w", subject, err)
	}
	return nil
}

// Close flushes pending messages and closes the connection.
func (p *NATSPublisher) Close() {
	if err := p.conn.Drain(); err != nil {
		p.conn.Close()
	}
}
