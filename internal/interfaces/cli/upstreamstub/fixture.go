package upstreamstub

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/orris-inc/statsboard/internal/domain/console"
)

//go:embed fixture.yaml
var defaultFixture []byte

// Response is one canned console reply. Status overrides the HTTP status
// (200 when zero); Delay postpones the reply.
type Response struct {
	Status int    `yaml:"status"`
	Code   int    `yaml:"code"`
	Msg    string `yaml:"msg"`
	Data   any    `yaml:"data"`
	Delay  string `yaml:"delay"`
}

// Fixture holds the replies of both console endpoints.
type Fixture struct {
	ServerTotal     Response `yaml:"server_total"`
	TicketWaitReply Response `yaml:"ticket_wait_reply"`
}

// LoadFixture reads a fixture file, or the built-in one when path is empty.
func LoadFixture(path string) (*Fixture, error) {
	raw := defaultFixture
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read fixture: %w", err)
		}
		raw = b
	}
	return ParseFixture(raw)
}

// ParseFixture decodes a YAML fixture and checks that the data blocks have
// the shape the dashboard expects.
func ParseFixture(raw []byte) (*Fixture, error) {
	var f Fixture
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("failed to parse fixture: %w", err)
	}

	if err := checkShape(f.ServerTotal.Data, &console.ServerTotal{}); err != nil {
		return nil, fmt.Errorf("server_total: %w", err)
	}
	if err := checkShape(f.TicketWaitReply.Data, &console.TicketTotal{}); err != nil {
		return nil, fmt.Errorf("ticket_wait_reply: %w", err)
	}
	for name, r := range map[string]Response{"server_total": f.ServerTotal, "ticket_wait_reply": f.TicketWaitReply} {
		if _, err := r.delay(); err != nil {
			return nil, fmt.Errorf("%s: invalid delay %q: %w", name, r.Delay, err)
		}
	}
	return &f, nil
}

// checkShape round-trips data through JSON into target.
func checkShape(data any, target any) error {
	if data == nil {
		return nil
	}
	b, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("data is not JSON-encodable: %w", err)
	}
	if err := json.Unmarshal(b, target); err != nil {
		return fmt.Errorf("unexpected data shape: %w", err)
	}
	return nil
}
