// Pasarela - Localized API Aggregation Backends
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pasarela

package events

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	wmNats "github.com/ThreeDotsLabs/watermill-nats/v2/pkg/nats"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/goccy/go-json"
	natsgo "github.com/nats-io/nats.go"

	"github.com/tomtom215/pasarela/internal/config"
	"github.com/tomtom215/pasarela/internal/metrics"
)

// Transport names accepted by Open.
const (
	DriverGoChannel = "gochannel"
	DriverNATS      = "nats"
)

// ErrClosed is returned by Publish after Close.
var ErrClosed = errors.New("event bus is closed")

// Bus publishes and consumes Events on a single topic.
type Bus struct {
	driver     string
	topic      string
	publisher  message.Publisher
	subscriber message.Subscriber
	logger     watermill.LoggerAdapter
	now        func() time.Time

	mu     sync.RWMutex
	closed bool
}

// Open builds the bus selected by cfg.Driver. For the nats driver, url
// overrides cfg.NATSURL when not empty (the embedded server's address).
func Open(cfg config.EventsConfig, url string, logger watermill.LoggerAdapter) (*Bus, error) {
	switch cfg.Driver {
	case DriverGoChannel:
		return NewGoChannel(cfg.Topic, logger), nil
	case DriverNATS:
		if url == "" {
			url = cfg.NATSURL
		}
		return NewNATS(cfg.Topic, url, logger)
	default:
		return nil, fmt.Errorf("unsupported events driver %q", cfg.Driver)
	}
}

// NewGoChannel creates an in-process bus.
func NewGoChannel(topic string, logger watermill.LoggerAdapter) *Bus {
	if logger == nil {
		logger = watermill.NopLogger{}
	}
	ps := gochannel.NewGoChannel(gochannel.Config{
		OutputChannelBuffer: 256,
	}, logger)

	return &Bus{
		driver:     DriverGoChannel,
		topic:      topic,
		publisher:  ps,
		subscriber: ps,
		logger:     logger,
		now:        time.Now,
	}
}

// NewNATS creates a bus on core NATS subjects. Subscribers use no queue
// group so every instance sees every event.
func NewNATS(topic, url string, logger watermill.LoggerAdapter) (*Bus, error) {
	if logger == nil {
		logger = watermill.NopLogger{}
	}

	natsOpts := []natsgo.Option{
		natsgo.Name("pasarela-chat"),
		natsgo.RetryOnFailedConnect(true),
		natsgo.MaxReconnects(-1),
		natsgo.ReconnectWait(2 * time.Second),
		natsgo.DisconnectErrHandler(func(nc *natsgo.Conn, err error) {
			if err != nil {
				logger.Error("NATS disconnected", err, nil)
			}
		}),
		natsgo.ReconnectHandler(func(nc *natsgo.Conn) {
			logger.Info("NATS reconnected", watermill.LogFields{
				"url": nc.ConnectedUrl(),
			})
		}),
	}

	pub, err := wmNats.NewPublisher(wmNats.PublisherConfig{
		URL:         url,
		NatsOptions: natsOpts,
		Marshaler:   &wmNats.NATSMarshaler{},
		JetStream:   wmNats.JetStreamConfig{Disabled: true},
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("create watermill publisher: %w", err)
	}

	sub, err := wmNats.NewSubscriber(wmNats.SubscriberConfig{
		URL:              url,
		SubscribersCount: 1,
		AckWaitTimeout:   30 * time.Second,
		CloseTimeout:     10 * time.Second,
		NatsOptions:      natsOpts,
		Unmarshaler:      &wmNats.NATSMarshaler{},
		JetStream:        wmNats.JetStreamConfig{Disabled: true},
	}, logger)
	if err != nil {
		_ = pub.Close()
		return nil, fmt.Errorf("create watermill subscriber: %w", err)
	}

	return &Bus{
		driver:     DriverNATS,
		topic:      topic,
		publisher:  pub,
		subscriber: sub,
		logger:     logger,
		now:        time.Now,
	}, nil
}

// Driver returns the transport name.
func (b *Bus) Driver() string {
	return b.driver
}

// Topic returns the topic events are published on.
func (b *Bus) Topic() string {
	return b.topic
}

// Publish encodes datos as an Event of type tipo and publishes it.
func (b *Bus) Publish(ctx context.Context, tipo string, datos interface{}) (err error) {
	defer func() { metrics.RecordEventPublish(tipo, err) }()

	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.closed {
		return ErrClosed
	}

	ev, err := NewEvent(tipo, datos, b.now())
	if err != nil {
		return err
	}
	payload, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.Metadata.Set(MetadataType, tipo)
	msg.SetContext(ctx)

	if err := b.publisher.Publish(b.topic, msg); err != nil {
		return fmt.Errorf("publish %s: %w", tipo, err)
	}
	return nil
}

// Run consumes the topic and calls handle for each event until ctx is
// canceled or the bus is closed. Undecodable messages are logged and
// acknowledged so they are not redelivered.
func (b *Bus) Run(ctx context.Context, handle func(Event)) error {
	messages, err := b.subscriber.Subscribe(ctx, b.topic)
	if err != nil {
		return fmt.Errorf("subscribe to %s: %w", b.topic, err)
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case msg, ok := <-messages:
			if !ok {
				return ctx.Err()
			}

			var ev Event
			if err := json.Unmarshal(msg.Payload, &ev); err != nil {
				b.logger.Error("Discarding undecodable event", err, watermill.LogFields{
					"message_uuid": msg.UUID,
					"topic":        b.topic,
				})
				msg.Ack()
				continue
			}

			handle(ev)
			metrics.EventsConsumed.WithLabelValues(ev.Tipo).Inc()
			msg.Ack()
		}
	}
}

// Close shuts down the publisher and subscriber. It is safe to call more
// than once.
func (b *Bus) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return nil
	}
	b.closed = true

	if b.driver == DriverGoChannel {
		return b.publisher.Close()
	}
	return errors.Join(b.publisher.Close(), b.subscriber.Close())
}
