package env

import (
	"errors"
	"fmt"
	"os"

	"starspin_backend/internal/config"

	"gopkg.in/yaml.v3"
)

// Структура yaml-файла с экономическими настройками
type economyYAML struct {
	Economy struct {
		MinWithdrawal           int   `yaml:"min_withdrawal"`
		ReferralBonus           int   `yaml:"referral_bonus"`
		StarPackages            []int `yaml:"star_packages"`
		ContestQualifyThreshold int   `yaml:"contest_qualify_threshold"`
	} `yaml:"economy"`
}

type economyConfig struct {
	minWithdrawal           int
	referralBonus           int
	starPackages            map[int]int
	contestQualifyThreshold int
}

// NewEconomyConfigFromYAML читает экономические параметры из yaml-файла
func NewEconomyConfigFromYAML(path string) (config.EconomyConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read economy config: %w", err)
	}

	var parsed economyYAML
	if err := yaml.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse economy config: %w", err)
	}

	e := parsed.Economy
	if e.MinWithdrawal <= 0 {
		return nil, errors.New("economy config: min_withdrawal must be positive")
	}
	if len(e.StarPackages) == 0 {
		return nil, errors.New("economy config: empty star packages")
	}

	// Пакеты звёзд: количество звёзд = цена в Telegram Stars (1:1)
	packages := make(map[int]int, len(e.StarPackages))
	for _, p := range e.StarPackages {
		packages[p] = p
	}

	return &economyConfig{
		minWithdrawal:           e.MinWithdrawal,
		referralBonus:           e.ReferralBonus,
		starPackages:            packages,
		contestQualifyThreshold: e.ContestQualifyThreshold,
	}, nil
}

func (cfg *economyConfig) MinWithdrawal() int {
	return cfg.minWithdrawal
}

func (cfg *economyConfig) ReferralBonus() int {
	return cfg.referralBonus
}

func (cfg *economyConfig) StarPackages() map[int]int {
	return cfg.starPackages
}

func (cfg *economyConfig) ContestQualifyThreshold() int {
	return cfg.contestQualifyThreshold
}
