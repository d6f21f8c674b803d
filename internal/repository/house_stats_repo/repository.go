package house_stats_repo

import (
	"starspin_backend/internal/model"
	"starspin_backend/internal/repository"
	"sync"
)

const (
	// Размер окна последних спинов для скользящего RTP
	windowSize = 500
)

// Результат спина для окна
type spinResult struct {
	bet    int
	payout int
}

// Реализация репозитория для хранения статистики казино в памяти процесса
type StateRepo struct {
	mtx sync.RWMutex

	totalSpins  int
	totalBet    int
	totalPayout int

	spinWindow []spinResult
}

// NewHouseStatsRepository Конструктор для создания нового репозитория с нулевой статистикой
func NewHouseStatsRepository() repository.HouseStatsRepository {
	return &StateRepo{
		spinWindow: make([]spinResult, 0, windowSize),
	}
}

// Update Обновление статистики казино после спина
func (r *StateRepo) Update(bet, payout int) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.totalSpins++
	r.totalBet += bet
	r.totalPayout += payout

	// Добавляем спин в окно
	r.spinWindow = append(r.spinWindow, spinResult{bet: bet, payout: payout})

	// Поддерживаем размер окна
	if len(r.spinWindow) > windowSize {
		r.spinWindow = r.spinWindow[1:]
	}
}

// Snapshot Получение копии текущей статистики
func (r *StateRepo) Snapshot() model.HouseStats {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	stats := model.HouseStats{
		TotalSpins:  r.totalSpins,
		TotalBet:    r.totalBet,
		TotalPayout: r.totalPayout,
	}
	if r.totalBet > 0 {
		stats.RTP = float64(r.totalPayout) / float64(r.totalBet) * 100
	}

	// Пересчитываем RTP в окне
	var windowBet, windowPayout int
	for _, spin := range r.spinWindow {
		windowBet += spin.bet
		windowPayout += spin.payout
	}
	if windowBet > 0 {
		stats.WindowRTP = float64(windowPayout) / float64(windowBet) * 100
	}

	return stats
}
