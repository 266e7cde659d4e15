package statsd

import (
	"net"
	"strings"
	"testing"
	"time"
)

func TestMetricName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		prefix, name, want string
	}{
		{"", " upstream/request ", "upstream_request"},
		{"web", "foo..bar", "web.foo.bar"},
		{"web", "..", ""},
		{"", "multi  space", "multi__space"},
	}
	for _, tt := range tests {
		if got := metricName(tt.prefix, tt.name); got != tt.want {
			t.Fatalf("metricName(%q, %q) = %q, want %q", tt.prefix, tt.name, got, tt.want)
		}
	}
}

func TestLineMergesAndSortsTags(t *testing.T) {
	t.Parallel()

	c := &Client{
		prefix: "web",
		//nolint:gocritic // whitespace is part of the test case
		global: newTagSet(map[string]string{"env": "prod", " service ": " web "}),
	}
	got := c.line("upstream.request", "1", "c", map[string]string{"result": " success ", "": "ignored", "env": "stage"})
	want := "web.upstream.request:1|c|#env:stage,result:success,service:web"
	if got != want {
		t.Fatalf("line mismatch\n got: %q\nwant: %q", got, want)
	}
}

func TestLineWithoutTags(t *testing.T) {
	t.Parallel()

	c := &Client{global: newTagSet(nil)}
	if got := c.line("x", "2", "g", nil); got != "x:2|g" {
		t.Fatalf("line = %q", got)
	}
	if got := c.line("  ", "2", "g", nil); got != "" {
		t.Fatalf("blank name should produce no line, got %q", got)
	}
}

func TestNilClientIsNoop(t *testing.T) {
	t.Parallel()

	var c *Client
	c.Count("a", 1, nil)
	c.Gauge("a", 1, nil)
	c.Timing("a", time.Second, nil)
	if c.Enabled() {
		t.Fatal("nil client must report disabled")
	}
	if err := c.Close(); err != nil {
		t.Fatalf("Close on nil client: %v", err)
	}
}

func TestDisabledClientDoesNotDial(t *testing.T) {
	t.Parallel()

	c, err := NewClient(Config{Enabled: false, Address: "127.0.0.1:1"})
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	if c.Enabled() {
		t.Fatal("client should be disabled")
	}
}

func TestClientSendsUDP(t *testing.T) {
	t.Parallel()

	pc, err := net.ListenPacket("udp", "127.0.0.1:0")
	if err != nil {
		t.Skipf("udp listen unavailable: %v", err)
	}
	defer pc.Close()

	c, err := NewClient(Config{Enabled: true, Address: pc.LocalAddr().String(), Prefix: "web"})
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	defer c.Close()

	c.Timing("upstream.duration", 1500*time.Microsecond, map[string]string{"operation": "x"})

	buf := make([]byte, 512)
	_ = pc.SetReadDeadline(time.Now().Add(2 * time.Second))
	n, _, err := pc.ReadFrom(buf)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	got := string(buf[:n])
	if !strings.HasPrefix(got, "web.upstream.duration:1.5|ms") {
		t.Fatalf("unexpected datagram %q", got)
	}
}
