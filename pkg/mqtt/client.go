// Package mqtt connects the energy service to the meter over an MQTT
// broker: readings and reset commands come in, relay commands and alerts
// go out.
package mqtt

import (
	"errors"
	"fmt"
	"time"

	paho "github.com/eclipse/paho.mqtt.golang"
	"go.uber.org/zap"
	"liyu1981.xyz/energy-monitor-service/pkg/common"
	"liyu1981.xyz/energy-monitor-service/pkg/config"
)

const (
	disconnectQuiesceMs = 250
	operationTimeout    = 5 * time.Second
)

var ErrOperationTimeout = errors.New("mqtt operation timed out")

type MessageHandler func(topic string, payload []byte) error

type Client struct {
	client  paho.Client
	config  config.MQTTConfig
	timeout time.Duration
	logger  *zap.Logger
}

func clientOptions(cfg config.MQTTConfig) *paho.ClientOptions {
	opts := paho.NewClientOptions()
	opts.AddBroker(cfg.Broker)
	opts.SetClientID(cfg.ClientID)
	if cfg.Username != "" {
		opts.SetUsername(cfg.Username)
	}
	if cfg.Password != "" {
		opts.SetPassword(cfg.Password)
	}
	if cfg.KeepAlive > 0 {
		opts.SetKeepAlive(time.Duration(cfg.KeepAlive) * time.Second)
	}
	opts.SetAutoReconnect(true)
	opts.SetCleanSession(true)
	opts.SetConnectTimeout(10 * time.Second)
	// handlers publish relay commands and must not run on the router goroutine
	opts.SetOrderMatters(false)
	opts.SetWriteTimeout(operationTimeout)
	return opts
}

// NewClient creates a client for the configured broker. Call Connect
// before subscribing or publishing.
func NewClient(cfg config.MQTTConfig) *Client {
	c := Wrap(nil, cfg)
	opts := clientOptions(cfg)
	opts.SetOnConnectHandler(func(paho.Client) {
		c.logger.Info("Connected to broker", zap.String("broker", cfg.Broker))
	})
	opts.SetConnectionLostHandler(func(_ paho.Client, err error) {
		c.logger.Warn("Connection to broker lost", zap.Error(err))
	})
	c.client = paho.NewClient(opts)
	return c
}

// Wrap uses an existing paho client.
func Wrap(pc paho.Client, cfg config.MQTTConfig) *Client {
	return &Client{
		client:  pc,
		config:  cfg,
		timeout: operationTimeout,
		logger:  common.GetLoggerWith(common.LoggerNameMqtt),
	}
}

// wait bounds a token so a broker outage does not stall the caller.
func (c *Client) wait(token paho.Token) error {
	if !token.WaitTimeout(c.timeout) {
		return ErrOperationTimeout
	}
	return token.Error()
}

func (c *Client) Connect() error {
	if token := c.client.Connect(); token.Wait() && token.Error() != nil {
		return fmt.Errorf("failed to connect to MQTT broker %s: %w", c.config.Broker, token.Error())
	}
	return nil
}

// Subscribe registers handler for topic. Handler errors are logged and do
// not stop the subscription.
func (c *Client) Subscribe(topic string, handler MessageHandler) error {
	token := c.client.Subscribe(topic, byte(c.config.QoS), func(_ paho.Client, msg paho.Message) {
		if err := handler(msg.Topic(), msg.Payload()); err != nil {
			c.logger.Error("Error handling MQTT message", zap.String("topic", msg.Topic()), zap.Error(err))
		}
	})
	if err := c.wait(token); err != nil {
		return fmt.Errorf("failed to subscribe to topic %s: %w", topic, err)
	}
	return nil
}

// Publish sends payload with the configured QoS and retain flag.
func (c *Client) Publish(topic string, payload []byte) error {
	token := c.client.Publish(topic, byte(c.config.QoS), c.config.Retain, payload)
	if err := c.wait(token); err != nil {
		return fmt.Errorf("failed to publish to topic %s: %w", topic, err)
	}
	return nil
}

func (c *Client) Unsubscribe(topics ...string) error {
	token := c.client.Unsubscribe(topics...)
	if err := c.wait(token); err != nil {
		return fmt.Errorf("failed to unsubscribe: %w", err)
	}
	return nil
}

func (c *Client) Disconnect() {
	c.client.Disconnect(disconnectQuiesceMs)
}

func (c *Client) IsConnected() bool {
	return c.client.IsConnected()
}
