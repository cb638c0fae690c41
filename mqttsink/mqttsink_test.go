package mqttsink

import (
	"bytes"
	"errors"
	"log"
	"strings"
	"sync"
	"testing"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/skilllens/motion"
)

type fakeToken struct {
	done chan struct{}
	err  error
}

func newFakeToken(err error, completed bool) *fakeToken {
	tok := &fakeToken{done: make(chan struct{}), err: err}
	if completed {
		close(tok.done)
	}
	return tok
}

func (t *fakeToken) Wait() bool { <-t.done; return true }

func (t *fakeToken) WaitTimeout(d time.Duration) bool {
	select {
	case <-t.done:
		return true
	case <-time.After(d):
		return false
	}
}

func (t *fakeToken) Done() <-chan struct{} { return t.done }

func (t *fakeToken) Error() error { return t.err }

type message struct {
	topic    string
	qos      byte
	retained bool
	payload  string
}

type fakePublisher struct {
	mu    sync.Mutex
	msgs  []message
	token func() mqtt.Token
}

func (p *fakePublisher) Publish(topic string, qos byte, retained bool, payload interface{}) mqtt.Token {
	p.mu.Lock()
	p.msgs = append(p.msgs, message{topic, qos, retained, payload.(string)})
	p.mu.Unlock()
	if p.token != nil {
		return p.token()
	}
	return newFakeToken(nil, true)
}

func (p *fakePublisher) last(topic string) (string, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for i := len(p.msgs) - 1; i >= 0; i-- {
		if p.msgs[i].topic == topic {
			return p.msgs[i].payload, true
		}
	}
	return "", false
}

func TestTargetTopics(t *testing.T) {
	pub := &fakePublisher{}
	tg := New(pub, "dash/score", Options{QoS: 1, Retained: true, Timeout: time.Second})

	tg.SetText("87%")
	tg.SetStyle("transform", "scaleX(0.5)")
	tg.Write(0.25)

	want := []message{
		{"dash/score/text", 1, true, "87%"},
		{"dash/score/style/transform", 1, true, "scaleX(0.5)"},
		{"dash/score/value", 1, true, "0.25"},
	}
	if len(pub.msgs) != len(want) {
		t.Fatalf("published %d messages, want %d", len(pub.msgs), len(want))
	}
	for i := range want {
		if pub.msgs[i] != want[i] {
			t.Errorf("msg %d = %+v, want %+v", i, pub.msgs[i], want[i])
		}
	}
	if tg.Topic() != "dash/score" {
		t.Errorf("Topic = %q", tg.Topic())
	}
}

func TestTargetDrivenByAnimator(t *testing.T) {
	clock := motion.NewVirtualClock(10 * time.Millisecond)
	a := motion.NewAnimator(clock)
	a.SetMotionPreference(motion.StaticPreference(false))
	pub := &fakePublisher{}
	tg := New(pub, "kiosk/ats", Options{Timeout: time.Second})

	a.AnimateCounter(tg, 87, motion.CounterOptions{Suffix: "%", Duration: 200 * time.Millisecond})
	a.AnimateProgressBar(tg, 50, motion.BarOptions{Duration: 200 * time.Millisecond})
	clock.Settle(time.Second)

	if got, _ := pub.last("kiosk/ats/text"); got != "87%" {
		t.Errorf("final text = %q, want 87%%", got)
	}
	if got, _ := pub.last("kiosk/ats/style/transform"); got != "scaleX(0.5)" {
		t.Errorf("final transform = %q, want scaleX(0.5)", got)
	}
	if len(pub.msgs) < 10 {
		t.Errorf("published %d messages, want one per frame", len(pub.msgs))
	}
}

func TestTargetLogsDeliveryErrors(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf, "", 0)
	pub := &fakePublisher{token: func() mqtt.Token { return newFakeToken(errors.New("not connected"), true) }}

	New(pub, "t", Options{Timeout: time.Second, Logger: logger}).SetText("x")

	if !strings.Contains(buf.String(), "publish t/text: not connected") {
		t.Errorf("log = %q", buf.String())
	}
}

func TestTargetLogsTimeout(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf, "", 0)
	pub := &fakePublisher{token: func() mqtt.Token { return newFakeToken(nil, false) }}

	New(pub, "t", Options{Timeout: time.Millisecond, Logger: logger}).SetText("x")

	if !strings.Contains(buf.String(), "timed out") {
		t.Errorf("log = %q", buf.String())
	}
}

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestTargetFireAndForgetReportsLater(t *testing.T) {
	var out syncBuffer
	logger := log.New(&out, "", 0)
	tok := newFakeToken(errors.New("broker gone"), false)
	pub := &fakePublisher{token: func() mqtt.Token { return tok }}

	New(pub, "t", Options{Logger: logger}).Write(1)
	if out.String() != "" {
		t.Fatal("fire-and-forget write blocked on delivery")
	}
	close(tok.done)

	deadline := time.Now().Add(2 * time.Second)
	for !strings.Contains(out.String(), "broker gone") {
		if time.Now().After(deadline) {
			t.Fatalf("delivery error never logged: %q", out.String())
		}
		time.Sleep(time.Millisecond)
	}
}

func TestConnectRequiresURL(t *testing.T) {
	if _, err := Connect(BrokerConfig{}); err == nil {
		t.Error("expected error for empty broker url")
	}
}

func TestClientOptions(t *testing.T) {
	opts := ClientOptions(BrokerConfig{URL: "tcp://localhost:1883", Username: "u"})
	if opts.ClientID != "motion" {
		t.Errorf("ClientID = %q, want default", opts.ClientID)
	}
	if len(opts.Servers) != 1 || opts.Servers[0].Host != "localhost:1883" {
		t.Errorf("Servers = %v", opts.Servers)
	}
	if opts.Username != "u" || opts.KeepAlive != 30 {
		t.Errorf("Username = %q KeepAlive = %d", opts.Username, opts.KeepAlive)
	}
}
