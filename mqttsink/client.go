package mqttsink

import (
	"fmt"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
)

// BrokerConfig holds the connection settings for Connect. It is meant to be
// embedded in a YAML config file.
type BrokerConfig struct {
	URL      string `yaml:"url"`
	ClientID string `yaml:"clientId"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
}

// ClientOptions builds paho client options from cfg.
func ClientOptions(cfg BrokerConfig) *mqtt.ClientOptions {
	id := cfg.ClientID
	if id == "" {
		id = "motion"
	}
	return mqtt.NewClientOptions().
		AddBroker(cfg.URL).
		SetClientID(id).
		SetUsername(cfg.Username).
		SetPassword(cfg.Password).
		SetKeepAlive(30 * time.Second).
		SetPingTimeout(5 * time.Second)
}

// Connect dials the broker and waits for the connection to complete.
func Connect(cfg BrokerConfig) (mqtt.Client, error) {
	if cfg.URL == "" {
		return nil, fmt.Errorf("mqtt connect: no broker url")
	}
	client := mqtt.NewClient(ClientOptions(cfg))
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		return nil, fmt.Errorf("mqtt connect %s: %w", cfg.URL, token.Error())
	}
	return client, nil
}
