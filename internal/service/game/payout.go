package game

import (
	"starspin_backend/internal/config"
	"starspin_backend/internal/model"
	"math/rand"
)

// Rand - источник равномерной случайности для контроллера.
// В проде это math/rand поверх глобального генератора,
// в тестах — детерминированный генератор с фиксированным сидом
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// globalRand использует глобальный генератор math/rand —
// он потокобезопасный и автосидится при старте процесса
type globalRand struct{}

func (globalRand) Float64() float64 { return rand.Float64() }
func (globalRand) Intn(n int) int   { return rand.Intn(n) }

// NewGlobalRand возвращает потокобезопасный источник случайности
func NewGlobalRand() Rand {
	return globalRand{}
}

// Engine - контроллер выплат. Чистая функция трёх входов и источника
// случайности: ставка, накопленные депозиты и накопленные выигрыши игрока.
// Никакого I/O и собственных ошибок у контроллера нет — валидность входа
// обеспечивает вызывающий (Spin).
//
// Экономический инвариант: накопленные выигрыши игрока держатся в пределах
// capRatio (40%) от накопленных депозитов. Отсюда ступени вероятности:
//   - totalWon >= cap          -> probAtCap (0.05), игрок уже выбрал лимит
//   - totalWon > totalDeposited -> probNetAhead (0.10), игрок в плюсе
//   - иначе                     -> probDefault (0.20)
//
// При totalDeposited == 0 кап равен нулю и первая ветка срабатывает всегда:
// ни разу не депозитивший игрок крутит с минимальным шансом. Это осознанный
// антиабьюз-пол, а не баг (см. DESIGN.md)
type Engine struct {
	symbols            []config.SymbolPayout
	capRatio           float64
	probAtCap          float64
	probNetAhead       float64
	probDefault        float64
	multipliers        []config.WeightedMultiplier
	fallbackMultiplier float64

	rnd Rand
}

func NewEngine(cfg config.GameConfig, rnd Rand) *Engine {
	return &Engine{
		symbols:            cfg.Symbols(),
		capRatio:           cfg.CapRatio(),
		probAtCap:          cfg.ProbAtCap(),
		probNetAhead:       cfg.ProbNetAhead(),
		probDefault:        cfg.ProbDefault(),
		multipliers:        cfg.WinMultipliers(),
		fallbackMultiplier: cfg.CapFallbackMultiplier(),
		rnd:                rnd,
	}
}

// WinProbability - ступень вероятности выигрыша для текущих счётчиков игрока.
// Самая строгая ветка проверяется первой
func (e *Engine) WinProbability(totalDeposited, totalWon int) float64 {
	cap := float64(totalDeposited) * e.capRatio

	switch {
	case float64(totalWon) >= cap:
		return e.probAtCap
	case totalWon > totalDeposited:
		return e.probNetAhead
	default:
		return e.probDefault
	}
}

// Play - решает исход одной ставки.
// Шанс выигрыша и размер выигрыша — два независимых случайных решения:
// ступень вероятности не влияет на выбор множителя и наоборот
func (e *Engine) Play(wager, totalDeposited, totalWon int) model.SpinOutcome {
	cap := float64(totalDeposited) * e.capRatio
	p := e.WinProbability(totalDeposited, totalWon)

	// Решение выигрыш/проигрыш принимается до генерации символов
	if e.rnd.Float64() >= p {
		return model.SpinOutcome{
			Multiplier: 0.0,
			Symbols:    e.loseSymbols(),
		}
	}

	mult := e.pickMultiplier()
	winAmount := int(float64(wager) * mult)

	// Страховка капа: одиночный выигрыш не может пробить накопленный лимит
	// больше чем на floor(wager * fallback)
	if float64(totalWon+winAmount) > cap {
		mult = e.fallbackMultiplier
		winAmount = int(float64(wager) * mult)
	}

	return model.SpinOutcome{
		Win:        true,
		Multiplier: mult,
		WinAmount:  winAmount,
		Symbols:    e.winSymbols(),
	}
}

// Выбор множителя выигрыша на основе весов
func (e *Engine) pickMultiplier() float64 {
	totalWeight := 0
	for _, m := range e.multipliers {
		totalWeight += m.Weight
	}

	num := e.rnd.Intn(totalWeight)
	cumulative := 0
	for _, m := range e.multipliers {
		cumulative += m.Weight
		if num < cumulative {
			return m.Multiplier
		}
	}

	// Недостижимо при корректных весах
	return e.multipliers[len(e.multipliers)-1].Multiplier
}
