package session_cache

import (
	"starspin_backend/internal/repository"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

const (
	// Максимум одновременно живущих диалоговых состояний
	maxEntries = 10000
)

// Реализация кэша диалоговых состояний игроков.
// Записи живут ограниченное время и вытесняются по TTL
type cache struct {
	captcha *expirable.LRU[int64, string]
}

func NewSessionCache(ttl time.Duration) repository.SessionCacheRepository {
	return &cache{
		captcha: expirable.NewLRU[int64, string](maxEntries, nil, ttl),
	}
}

// SetCaptcha - запоминает ожидаемый ответ капчи для игрока
func (c *cache) SetCaptcha(telegramID int64, answer string) {
	c.captcha.Add(telegramID, answer)
}

// Captcha - ожидаемый ответ капчи, false если истёк или не задавался
func (c *cache) Captcha(telegramID int64) (string, bool) {
	return c.captcha.Get(telegramID)
}

// DeleteCaptcha - сбрасывает состояние капчи
func (c *cache) DeleteCaptcha(telegramID int64) {
	c.captcha.Remove(telegramID)
}
