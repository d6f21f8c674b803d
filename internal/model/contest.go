package model

import "time"

// Contest - конкурс с ограниченным сроком проведения
type Contest struct {
	ID               int
	Title            string
	Description      string
	StartDate        time.Time
	EndDate          time.Time
	IsActive         bool
	Winner1          int64
	Winner2          int64
	Winner3          int64
	WinnersAnnounced bool
}

// ContestParticipant - участник конкурса.
// Квалифицируется при достижении порога приглашённых рефералов,
// после чего получает конкурсный номер.
type ContestParticipant struct {
	ID                 int
	TelegramID         int64
	ContestID          int
	ReferralsCompleted int
	ContestNumber      int // 0 — номер ещё не присвоен
	NumberAssignedAt   *time.Time
	RegisteredAt       time.Time
	IsQualified        bool
}
