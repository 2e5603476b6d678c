// Package events loads the decision-event deck from embedded YAML and draws
// events for the host to feed into the engine.
package events

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/ohindex/sovereign-health/internal/catalog"
	"github.com/ohindex/sovereign-health/internal/game"
)

//go:embed deck.yaml
var deckYAML []byte

// Severity draw weights. Critical events are rare.
var severityWeights = map[string]float64{
	"minor":    0.50,
	"moderate": 0.35,
	"critical": 0.15,
}

// yaml schema: pillars are referenced by name so the deck stays readable.
type rawEffect struct {
	Pillar      string  `yaml:"pillar"`
	Delta       float64 `yaml:"delta"`
	Duration    int     `yaml:"duration"`
	Description string  `yaml:"description"`
}

type rawChoice struct {
	ID      string             `yaml:"id"`
	Label   string             `yaml:"label"`
	Impact  map[string]float64 `yaml:"impact"`
	Cost    int                `yaml:"cost"`
	Effects []rawEffect        `yaml:"effects"`
}

type rawEvent struct {
	ID        string      `yaml:"id"`
	Title     string      `yaml:"title"`
	Type      string      `yaml:"type"`
	Severity  string      `yaml:"severity"`
	Narrative string      `yaml:"narrative"`
	Choices   []rawChoice `yaml:"choices"`
}

type rawDeck struct {
	Events []rawEvent `yaml:"events"`
}

// Deck holds the parsed event pool grouped by severity.
type Deck struct {
	events     []game.GameEvent
	bySeverity map[string][]game.GameEvent
}

// Load parses the embedded deck. Unknown pillar names are load errors so a
// bad deck fails at startup, not mid-session.
func Load() (*Deck, error) {
	return parse(deckYAML)
}

func parse(data []byte) (*Deck, error) {
	var raw rawDeck
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse event deck: %w", err)
	}
	if len(raw.Events) == 0 {
		return nil, fmt.Errorf("event deck is empty")
	}

	d := &Deck{bySeverity: make(map[string][]game.GameEvent)}
	for _, re := range raw.Events {
		if _, ok := severityWeights[re.Severity]; !ok {
			return nil, fmt.Errorf("event %q: unknown severity %q", re.ID, re.Severity)
		}
		ev := game.GameEvent{
			ID:        re.ID,
			Title:     re.Title,
			Type:      re.Type,
			Severity:  re.Severity,
			Narrative: re.Narrative,
		}
		for _, rc := range re.Choices {
			choice := game.EventChoice{
				ID:    rc.ID,
				Label: rc.Label,
				Cost:  rc.Cost,
			}
			for name, delta := range rc.Impact {
				p, ok := catalog.PillarFromString(name)
				if !ok {
					return nil, fmt.Errorf("event %q choice %q: unknown pillar %q", re.ID, rc.ID, name)
				}
				choice.Impact[p] = delta
			}
			for _, ef := range rc.Effects {
				p, ok := catalog.PillarFromString(ef.Pillar)
				if !ok {
					return nil, fmt.Errorf("event %q choice %q: unknown pillar %q", re.ID, rc.ID, ef.Pillar)
				}
				choice.Effects = append(choice.Effects, game.EffectTemplate{
					Pillar:      p,
					Delta:       ef.Delta,
					Duration:    ef.Duration,
					Description: ef.Description,
				})
			}
			ev.Choices = append(ev.Choices, choice)
		}
		if len(ev.Choices) == 0 {
			return nil, fmt.Errorf("event %q has no choices", re.ID)
		}
		d.events = append(d.events, ev)
		d.bySeverity[ev.Severity] = append(d.bySeverity[ev.Severity], ev)
	}
	return d, nil
}

// Len returns the number of events in the deck.
func (d *Deck) Len() int { return len(d.events) }

// All returns every event in deck order.
func (d *Deck) All() []game.GameEvent {
	out := make([]game.GameEvent, len(d.events))
	copy(out, d.events)
	return out
}

// Draw picks an event from the deck using a single uniform sample in
// [0, 1): the sample first lands in a severity band (minor 50%, moderate
// 35%, critical 15%), then the residue indexes uniformly into that band.
func (d *Deck) Draw(sample float64) game.GameEvent {
	if sample < 0 {
		sample = 0
	}
	if sample >= 1 {
		sample = 0.999999
	}

	order := []string{"minor", "moderate", "critical"}
	acc := 0.0
	for _, sev := range order {
		w := severityWeights[sev]
		pool := d.bySeverity[sev]
		if sample < acc+w && len(pool) > 0 {
			residue := (sample - acc) / w
			return pool[int(residue*float64(len(pool)))]
		}
		acc += w
	}
	// Sample fell in a band with no events; fall back to the full pool.
	return d.events[int(sample*float64(len(d.events)))]
}
