// Package mqttsink mirrors animations to a remote display over MQTT.
//
// A [Target] implements [motion.TextTarget], [motion.StyleTarget] and
// [motion.Sink]: every write the engine makes is published as a small
// plain-text message under the target's topic, so an LED matrix, a kiosk or
// another process can render the animation frame by frame.
//
//	<topic>/text            "87%"
//	<topic>/style/<prop>    "scaleX(0.42)"
//	<topic>/value           "0.42"
package mqttsink

import (
	"fmt"
	"log"
	"strconv"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
)

// Publisher is the part of mqtt.Client a Target needs.
type Publisher interface {
	Publish(topic string, qos byte, retained bool, payload interface{}) mqtt.Token
}

// Options configures a Target.
type Options struct {
	// QoS is the MQTT quality of service for every message.
	QoS byte
	// Retained asks the broker to keep the last value of each topic, so a
	// display that reconnects shows the final state.
	Retained bool
	// Timeout bounds how long a write waits for the broker. Zero publishes
	// without waiting; delivery errors are still logged when they arrive.
	Timeout time.Duration
	// Logger receives delivery errors. Nil selects log.Default().
	Logger *log.Logger
}

// Target is a remote render surface addressed by an MQTT topic prefix.
type Target struct {
	pub   Publisher
	topic string
	opts  Options
}

// New creates a Target that publishes under topic.
func New(pub Publisher, topic string, opts Options) *Target {
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	return &Target{pub: pub, topic: topic, opts: opts}
}

// Topic returns the target's topic prefix.
func (t *Target) Topic() string {
	return t.topic
}

// SetText publishes text to <topic>/text.
func (t *Target) SetText(text string) {
	t.publish("text", text)
}

// SetStyle publishes value to <topic>/style/<property>.
func (t *Target) SetStyle(property, value string) {
	t.publish("style/"+property, value)
}

// Write publishes a raw tween value to <topic>/value.
func (t *Target) Write(v float64) {
	t.publish("value", strconv.FormatFloat(v, 'f', -1, 64))
}

func (t *Target) publish(sub, payload string) {
	topic := t.topic + "/" + sub
	token := t.pub.Publish(topic, t.opts.QoS, t.opts.Retained, payload)
	if token == nil {
		return
	}
	if t.opts.Timeout <= 0 {
		go func() {
			<-token.Done()
			t.report(topic, token.Error())
		}()
		return
	}
	if !token.WaitTimeout(t.opts.Timeout) {
		t.report(topic, fmt.Errorf("timed out after %v", t.opts.Timeout))
		return
	}
	t.report(topic, token.Error())
}

func (t *Target) report(topic string, err error) {
	if err != nil {
		t.opts.Logger.Printf("mqttsink: publish %s: %v", topic, err)
	}
}
