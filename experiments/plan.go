package experiments

import (
	"fmt"
	"gamesearch/experiments/metrics"
	"gamesearch/searcher"
	"os"

	"gopkg.in/yaml.v3"
)

// Plan describes an experiment: the agents taking part and which of them meet on the map.
type Plan struct {
	Name        string                `yaml:"name"`
	Map         string                `yaml:"map"`         // Layout accepted by game.ParseMap
	Games       int                   `yaml:"games"`       // Per matchup
	Concurrency int                   `yaml:"concurrency"` // Games played at the same time
	Agents      []metrics.AgentConfig `yaml:"agents"`
	MatchUps    [][]int               `yaml:"matchups"` // AgentConfig IDs, one per seat
}

// LoadPlan reads a YAML experiment plan.
func LoadPlan(path string) (*Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read plan: %w", err)
	}
	return ParsePlan(data)
}

func ParsePlan(data []byte) (*Plan, error) {
	plan := &Plan{Name: "experiment", Map: DefaultMap, Games: 1, Concurrency: 1}
	if err := yaml.Unmarshal(data, plan); err != nil {
		return nil, fmt.Errorf("failed to parse plan: %w", err)
	}
	if err := plan.Validate(); err != nil {
		return nil, err
	}
	return plan, nil
}

func (p *Plan) Validate() error {
	if p.Games <= 0 {
		return fmt.Errorf("plan %s: games must be positive", p.Name)
	}
	if p.Concurrency <= 0 {
		return fmt.Errorf("plan %s: concurrency must be positive", p.Name)
	}

	configs := map[int]bool{}
	for _, config := range p.Agents {
		if configs[config.ID] {
			return fmt.Errorf("plan %s: agent %d defined twice", p.Name, config.ID)
		}
		configs[config.ID] = true
		if config.Algorithm != RandomName {
			if _, err := searcher.New(config.Algorithm); err != nil {
				return fmt.Errorf("plan %s: agent %d: %w", p.Name, config.ID, err)
			}
		}
		if !config.Depth.Valid() {
			return fmt.Errorf("plan %s: agent %d: invalid depth %d", p.Name, config.ID, int(config.Depth))
		}
	}

	if len(p.MatchUps) == 0 {
		return fmt.Errorf("plan %s: no matchups", p.Name)
	}
	for i, matchUp := range p.MatchUps {
		for _, id := range matchUp {
			if !configs[id] {
				return fmt.Errorf("plan %s: matchup %d refers to unknown agent %d", p.Name, i+1, id)
			}
		}
	}
	return nil
}

func (p *Plan) configsByID() map[int]metrics.AgentConfig {
	configs := make(map[int]metrics.AgentConfig, len(p.Agents))
	for _, config := range p.Agents {
		configs[config.ID] = config
	}
	return configs
}
