package player

import (
	"context"
	"fmt"
	"math/rand"
	"strconv"
	"strings"
)

// NewCaptcha генерирует арифметическую капчу для игрока.
// Ответ живёт в кэше сессий с TTL, а не в глобальной map-е
func (s *serv) NewCaptcha(ctx context.Context, telegramID int64) (string, error) {
	if _, err := s.playerRepo.GetByTelegramID(ctx, telegramID); err != nil {
		return "", err
	}

	a := rand.Intn(9) + 1
	b := rand.Intn(9) + 1

	s.sessionCache.SetCaptcha(telegramID, strconv.Itoa(a+b))

	return fmt.Sprintf("%d + %d = ?", a, b), nil
}

// VerifyCaptcha сверяет ответ игрока с сохранённым.
// Верный ответ помечает игрока прошедшим капчу и удаляет её из кэша
func (s *serv) VerifyCaptcha(ctx context.Context, telegramID int64, answer string) (bool, error) {
	expected, ok := s.sessionCache.Captcha(telegramID)
	if !ok {
		return false, nil
	}

	if strings.TrimSpace(answer) != expected {
		return false, nil
	}

	s.sessionCache.DeleteCaptcha(telegramID)
	if err := s.playerRepo.SetCaptchaPassed(ctx, telegramID, true); err != nil {
		return false, err
	}

	return true, nil
}
