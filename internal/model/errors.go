package model

import "errors"

// Ошибки доменного уровня. Все локальные и восстановимые:
// хендлеры отдают их игроку как отклонённый запрос, процесс не падает.
var (
	// ErrInvalidWager - ставка меньше либо равна нулю
	ErrInvalidWager = errors.New("invalid wager")
	// ErrInsufficientFunds - ставка или вывод превышают баланс
	ErrInsufficientFunds = errors.New("insufficient funds")
	// ErrConcurrentModification - гонка при обновлении игрока, нужно повторить операцию с чистого чтения
	ErrConcurrentModification = errors.New("concurrent modification")
	// ErrDuplicatePendingWithdrawal - у игрока уже есть ожидающая заявка на вывод
	ErrDuplicatePendingWithdrawal = errors.New("pending withdrawal already exists")
	// ErrPlayerNotFound - игрок не найден в хранилище
	ErrPlayerNotFound = errors.New("player not found")
	// ErrPlayerBanned - игрок заблокирован
	ErrPlayerBanned = errors.New("player is banned")
	// ErrWithdrawalNotPending - заявка не найдена или уже обработана
	ErrWithdrawalNotPending = errors.New("withdrawal not found or already processed")
	// ErrBelowMinWithdrawal - сумма вывода ниже минимальной
	ErrBelowMinWithdrawal = errors.New("amount below minimal withdrawal")
	// ErrUnknownPackage - неизвестный пакет звёзд
	ErrUnknownPackage = errors.New("unknown star package")
	// ErrContestNotFound - активный конкурс не найден
	ErrContestNotFound = errors.New("contest not found")
	// ErrUnknownTransactionType - тип транзакции вне закрытого набора
	ErrUnknownTransactionType = errors.New("unknown transaction type")
	// ErrAdminNotFound - администратор не найден
	ErrAdminNotFound = errors.New("admin not found")
	// ErrSessionNotFound - сессия не найдена или истекла
	ErrSessionNotFound = errors.New("session not found")
)
