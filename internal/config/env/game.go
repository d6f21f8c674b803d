package env

import (
	"errors"
	"fmt"
	"os"

	"starspin_backend/internal/config"

	"gopkg.in/yaml.v3"
)

// Структура yaml-файла с настройками игры
type gameYAML struct {
	Game struct {
		CapRatio              float64 `yaml:"cap_ratio"`
		ProbAtCap             float64 `yaml:"prob_at_cap"`
		ProbNetAhead          float64 `yaml:"prob_net_ahead"`
		ProbDefault           float64 `yaml:"prob_default"`
		CapFallbackMultiplier float64 `yaml:"cap_fallback_multiplier"`
		SpinCost              int     `yaml:"spin_cost"`
		Symbols               []struct {
			Symbol     string  `yaml:"symbol"`
			Multiplier float64 `yaml:"multiplier"`
		} `yaml:"symbols"`
		WinMultipliers []struct {
			Multiplier float64 `yaml:"multiplier"`
			Weight     int     `yaml:"weight"`
		} `yaml:"win_multipliers"`
	} `yaml:"game"`
}

type gameConfig struct {
	symbols               []config.SymbolPayout
	capRatio              float64
	probAtCap             float64
	probNetAhead          float64
	probDefault           float64
	winMultipliers        []config.WeightedMultiplier
	capFallbackMultiplier float64
	spinCost              int
}

// NewGameConfigFromYAML читает параметры контроллера выплат из yaml-файла
func NewGameConfigFromYAML(path string) (config.GameConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read game config: %w", err)
	}

	var parsed gameYAML
	if err := yaml.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse game config: %w", err)
	}

	g := parsed.Game
	if len(g.Symbols) == 0 {
		return nil, errors.New("game config: empty symbol table")
	}
	if len(g.WinMultipliers) == 0 {
		return nil, errors.New("game config: empty win multipliers")
	}
	if g.CapRatio <= 0 || g.CapRatio >= 1 {
		return nil, errors.New("game config: cap_ratio must be in (0,1)")
	}

	cfg := &gameConfig{
		capRatio:              g.CapRatio,
		probAtCap:             g.ProbAtCap,
		probNetAhead:          g.ProbNetAhead,
		probDefault:           g.ProbDefault,
		capFallbackMultiplier: g.CapFallbackMultiplier,
		spinCost:              g.SpinCost,
	}
	for _, s := range g.Symbols {
		cfg.symbols = append(cfg.symbols, config.SymbolPayout{
			Symbol:     s.Symbol,
			Multiplier: s.Multiplier,
		})
	}
	for _, m := range g.WinMultipliers {
		cfg.winMultipliers = append(cfg.winMultipliers, config.WeightedMultiplier{
			Multiplier: m.Multiplier,
			Weight:     m.Weight,
		})
	}

	return cfg, nil
}

func (cfg *gameConfig) Symbols() []config.SymbolPayout {
	return cfg.symbols
}

func (cfg *gameConfig) CapRatio() float64 {
	return cfg.capRatio
}

func (cfg *gameConfig) ProbAtCap() float64 {
	return cfg.probAtCap
}

func (cfg *gameConfig) ProbNetAhead() float64 {
	return cfg.probNetAhead
}

func (cfg *gameConfig) ProbDefault() float64 {
	return cfg.probDefault
}

func (cfg *gameConfig) WinMultipliers() []config.WeightedMultiplier {
	return cfg.winMultipliers
}

func (cfg *gameConfig) CapFallbackMultiplier() float64 {
	return cfg.capFallbackMultiplier
}

func (cfg *gameConfig) SpinCost() int {
	return cfg.spinCost
}
