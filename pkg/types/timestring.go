package types

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidTimeString возвращается при некорректном формате времени
var ErrInvalidTimeString = errors.New("types: invalid time string format")

// TimeString время внутри суток в формате "HH:MM" или "HH:MM:SS"
// Используется для хранения времени слотов и границ интервалов без привязки к дате
type TimeString string

// NewTimeString создает TimeString из time.Time (формат HH:MM)
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format("15:04"))
}

// NewTimeStringFromString создает TimeString из строки с валидацией
func NewTimeStringFromString(s string) (TimeString, error) {
	ts := TimeString(s)
	if err := ts.Validate(); err != nil {
		return "", err
	}
	return ts, nil
}

// IsZero проверяет, что значение не задано
func (t TimeString) IsZero() bool {
	return t == ""
}

// String возвращает строковое представление времени
func (t TimeString) String() string {
	return string(t)
}

// Validate проверяет формат времени
func (t TimeString) Validate() error {
	_, err := t.parse()
	return err
}

// SecondsFromMidnight возвращает количество секунд с начала суток
// Для некорректного значения возвращает 0 - валидация выполняется раньше, на границе API
func (t TimeString) SecondsFromMidnight() int {
	secs, err := t.parse()
	if err != nil {
		return 0
	}
	return secs
}

// AddMinutes возвращает время, сдвинутое на minutes минут вперёд
// Возвращает ошибку, если результат выходит за границы суток
func (t TimeString) AddMinutes(minutes int) (TimeString, error) {
	secs, err := t.parse()
	if err != nil {
		return "", err
	}

	total := secs + minutes*60
	if total < 0 || total >= 24*3600 {
		return "", fmt.Errorf("%w: %s + %d minutes is out of day bounds", ErrInvalidTimeString, t, minutes)
	}

	return fromSeconds(total), nil
}

// IsBefore проверяет, что время строго раньше other
func (t TimeString) IsBefore(other TimeString) bool {
	return t.SecondsFromMidnight() < other.SecondsFromMidnight()
}

// IsAfter проверяет, что время строго позже other
func (t TimeString) IsAfter(other TimeString) bool {
	return t.SecondsFromMidnight() > other.SecondsFromMidnight()
}

// parse разбирает значение в секунды с начала суток
// Допустимые форматы: "HH:MM" и "HH:MM:SS"
func (t TimeString) parse() (int, error) {
	parts := strings.Split(string(t), ":")
	if len(parts) != 2 && len(parts) != 3 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}

	nums := make([]int, len(parts))
	for i, p := range parts {
		if len(p) != 2 {
			return 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
		}
		n, err := strconv.Atoi(p)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
		}
		nums[i] = n
	}

	hour, minute, second := nums[0], nums[1], 0
	if len(nums) == 3 {
		second = nums[2]
	}

	if hour < 0 || hour > 23 || minute < 0 || minute > 59 || second < 0 || second > 59 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}

	return hour*3600 + minute*60 + second, nil
}

// fromSeconds восстанавливает TimeString из секунд с начала суток
// Секунды добавляются только когда они ненулевые
func fromSeconds(total int) TimeString {
	hour := total / 3600
	minute := (total % 3600) / 60
	second := total % 60

	if second == 0 {
		return TimeString(fmt.Sprintf("%02d:%02d", hour, minute))
	}
	return TimeString(fmt.Sprintf("%02d:%02d:%02d", hour, minute, second))
}
