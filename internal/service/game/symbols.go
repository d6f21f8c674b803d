package game

// winSymbols - тройка одинаковых символов для показа выигрыша.
// Какой именно символ "выпал" выбирается равномерно из всего алфавита
// и никак не связан с выбранным множителем — символ чисто декоративный
func (e *Engine) winSymbols() [3]string {
	s := e.symbols[e.rnd.Intn(len(e.symbols))].Symbol
	return [3]string{s, s, s}
}

// loseSymbols - тройка символов минимум с двумя различными.
// Каждый символ берётся независимо; если случайно выпали три одинаковых,
// средний пересэмплируется из алфавита без первого символа.
// Это только отображение: решение выигрыш/проигрыш уже принято
func (e *Engine) loseSymbols() [3]string {
	var out [3]string
	for i := range out {
		out[i] = e.symbols[e.rnd.Intn(len(e.symbols))].Symbol
	}

	if out[0] == out[1] && out[1] == out[2] {
		// Позиция первого символа в алфавите
		pos := 0
		for i, s := range e.symbols {
			if s.Symbol == out[0] {
				pos = i
				break
			}
		}
		// Равномерный выбор из оставшихся символов
		idx := e.rnd.Intn(len(e.symbols) - 1)
		if idx >= pos {
			idx++
		}
		out[1] = e.symbols[idx].Symbol
	}

	return out
}

// BaseMultiplier - базовый множитель выигрышного символа из статической
// таблицы. Неизвестный символ даёт 0
func (e *Engine) BaseMultiplier(symbol string) float64 {
	for _, s := range e.symbols {
		if s.Symbol == symbol {
			return s.Multiplier
		}
	}
	return 0
}
