package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"safe-rescue/safe-common/config"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"go.uber.org/zap"
)

// MQTTPublisher publishes JSON payloads to the event topic
type MQTTPublisher struct {
	client mqtt.Client
	qos    byte
	logger *zap.Logger
}

// NewMQTTPublisher connects to the broker
func NewMQTTPublisher(cfg *config.MQTTConfig, logger *zap.Logger) (*MQTTPublisher, error) {
	opts := mqtt.NewClientOptions()
	opts.AddBroker(cfg.Broker)
	opts.SetClientID(cfg.ClientID)
	if cfg.Username != "" {
		opts.SetUsername(cfg.Username)
	}
	if cfg.Password != "" {
		opts.SetPassword(cfg.Password)
	}
	opts.SetAutoReconnect(true)
	opts.SetCleanSession(true)
	opts.SetConnectionLostHandler(func(_ mqtt.Client, err error) {
		logger.Warn("MQTT connection lost", zap.Error(err))
	})

	client := mqtt.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		return nil, fmt.Errorf("failed to connect to MQTT broker: %w", token.Error())
	}
	return NewMQTTPublisherWithClient(client, cfg.QoS, logger), nil
}

// NewMQTTPublisherWithClient wraps an already connected client
func NewMQTTPublisherWithClient(client mqtt.Client, qos byte, logger *zap.Logger) *MQTTPublisher {
	return &MQTTPublisher{client: client, qos: qos, logger: logger}
}

func (p *MQTTPublisher) Publish(ctx context.Context, ev Event) error {
	payload, err := json.Marshal(ev.Payload)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}
	token := p.client.Publish(ev.Topic, p.qos, false, payload)

	timeout := 5 * time.Second
	if dl, ok := ctx.Deadline(); ok {
		timeout = time.Until(dl)
	}
	if !token.WaitTimeout(timeout) {
		return fmt.Errorf("publish to %s timed out", ev.Topic)
	}
	if token.Error() != nil {
		return fmt.Errorf("failed to publish to topic %s: %w", ev.Topic, token.Error())
	}
	p.logger.Debug("event published", zap.String("topic", ev.Topic))
	return nil
}

// Close disconnects, waiting up to 250ms for in-flight messages
func (p *MQTTPublisher) Close() {
	p.client.Disconnect(250)
}
