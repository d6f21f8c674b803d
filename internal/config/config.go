package config

import (
	"time"

	"github.com/joho/godotenv"
)

func Load(path string) error {
	err := godotenv.Load(path)
	if err != nil {
		return err
	}
	return nil
}

// SymbolPayout - символ алфавита и его базовый множитель.
// Таблица статическая, упорядочена по "престижу" символа.
type SymbolPayout struct {
	Symbol     string
	Multiplier float64
}

// WeightedMultiplier - множитель выигрыша и его относительный вес
type WeightedMultiplier struct {
	Multiplier float64
	Weight     int
}

// GameConfig - параметры контроллера выплат.
// Дефолты обязаны в точности воспроизводить ступени 0.05/0.10/0.20,
// кап 40% и веса множителей {60,25,12,3} — на них завязаны тесты.
type GameConfig interface {
	Symbols() []SymbolPayout
	CapRatio() float64
	ProbAtCap() float64
	ProbNetAhead() float64
	ProbDefault() float64
	WinMultipliers() []WeightedMultiplier
	CapFallbackMultiplier() float64
	SpinCost() int
}

// EconomyConfig - экономические параметры вне контроллера выплат
type EconomyConfig interface {
	MinWithdrawal() int
	ReferralBonus() int
	StarPackages() map[int]int
	ContestQualifyThreshold() int
}

type HTTPConfig interface {
	Address() string
}

type PGConfig interface {
	DSN() string
}

type JWTConfig interface {
	AccessTokenSecretKey() []byte
	AccessTokenDuration() time.Duration
	RefreshTokenDuration() time.Duration
}
