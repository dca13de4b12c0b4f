// Package age содержит арифметику дат для фильтрации пользователей по возрасту.
package age

import (
	"fmt"
	"time"
)

// Cutoff возвращает границу дат рождения: пользователи, родившиеся строго раньше
// результата, старше years полных лет на дату now.
// Время суток отбрасывается, граница считается в часовом поясе now.
func Cutoff(now time.Time, years int) time.Time {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return today.AddDate(-years, 0, 0)
}

// Years считает количество полных лет между датой рождения и now.
func Years(birthday, now time.Time) int {
	years := now.Year() - birthday.Year()

	// день рождения в этом году ещё не наступил
	if now.Month() < birthday.Month() ||
		(now.Month() == birthday.Month() && now.Day() < birthday.Day()) {
		years--
	}
	if years < 0 {
		return 0
	}
	return years
}

// DateLayout формат даты рождения во входящих запросах.
const DateLayout = "2006-01-02"

// ParseDate разбирает дату рождения в формате DateLayout (UTC).
func ParseDate(s string) (time.Time, error) {
	const op = "age.ParseDate"

	d, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%s: %w", op, err)
	}
	return d, nil
}
