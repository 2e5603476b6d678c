package events

import (
	"strings"
	"testing"
)

func TestLoadEmbeddedDeck(t *testing.T) {
	d, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if d.Len() == 0 {
		t.Fatal("deck is empty")
	}

	seen := make(map[string]bool)
	for _, ev := range d.All() {
		if seen[ev.ID] {
			t.Errorf("duplicate event id %q", ev.ID)
		}
		seen[ev.ID] = true
		if ev.Title == "" || ev.Narrative == "" {
			t.Errorf("event %q missing title or narrative", ev.ID)
		}
		if len(ev.Choices) == 0 {
			t.Errorf("event %q has no choices", ev.ID)
		}
		for _, c := range ev.Choices {
			if c.ID == "" || c.Label == "" {
				t.Errorf("event %q has an unlabelled choice", ev.ID)
			}
			if c.Cost < 0 {
				t.Errorf("event %q choice %q: negative cost", ev.ID, c.ID)
			}
			for _, ef := range c.Effects {
				if ef.Duration < 1 {
					t.Errorf("event %q choice %q: effect duration %d", ev.ID, c.ID, ef.Duration)
				}
			}
		}
	}
}

func TestParseRejectsBadDecks(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{
			"unknown severity",
			`events:
  - id: e1
    title: T
    severity: apocalyptic
    choices: [{id: a, label: A}]`,
			"unknown severity",
		},
		{
			"unknown pillar in impact",
			`events:
  - id: e1
    title: T
    severity: minor
    choices:
      - id: a
        label: A
        impact: {vibes: 1.0}`,
			"unknown pillar",
		},
		{
			"event without choices",
			`events:
  - id: e1
    title: T
    severity: minor`,
			"no choices",
		},
		{"empty deck", `events: []`, "empty"},
	}
	for _, tt := range tests {
		if _, err := parse([]byte(tt.yaml)); err == nil || !strings.Contains(err.Error(), tt.want) {
			t.Errorf("%s: err = %v, want containing %q", tt.name, err, tt.want)
		}
	}
}

func TestDrawCoversSampleRange(t *testing.T) {
	d, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	valid := make(map[string]string)
	for _, ev := range d.All() {
		valid[ev.ID] = ev.Severity
	}

	severities := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		ev := d.Draw(float64(i) / 1000)
		if _, ok := valid[ev.ID]; !ok {
			t.Fatalf("draw returned unknown event %q", ev.ID)
		}
		severities[ev.Severity] = true
	}
	for _, sev := range []string{"minor", "moderate", "critical"} {
		if !severities[sev] {
			t.Errorf("sweeping samples never drew a %s event", sev)
		}
	}

	// Out-of-range samples are clamped, not panics.
	d.Draw(-0.5)
	d.Draw(1.0)
	d.Draw(2.0)
}

func TestDrawSeverityBands(t *testing.T) {
	d, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if got := d.Draw(0.1).Severity; got != "minor" {
		t.Errorf("sample 0.1 drew %s, want minor", got)
	}
	if got := d.Draw(0.6).Severity; got != "moderate" {
		t.Errorf("sample 0.6 drew %s, want moderate", got)
	}
	if got := d.Draw(0.95).Severity; got != "critical" {
		t.Errorf("sample 0.95 drew %s, want critical", got)
	}
}
