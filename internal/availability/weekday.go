package availability

import "time"

// ===============================
// Weekday (domínio cíclico de 7 dias)
// ===============================

type Weekday int

const (
	Sunday Weekday = iota
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
)

var weekdayKeys = [7]string{"sun", "mon", "tue", "wed", "thu", "fri", "sat"}

// Key devolve a chave usada no documento semanal ("sun".."sat").
func (d Weekday) Key() string {
	return weekdayKeys[int(d)%7]
}

// Add avança o dia em offset posições, circular sobre a semana.
func (d Weekday) Add(offset int) Weekday {
	return Weekday((int(d) + offset) % 7)
}

// ValidDayKey informa se a chave existe no domínio semanal.
func ValidDayKey(key string) bool {
	for _, k := range weekdayKeys {
		if k == key {
			return true
		}
	}
	return false
}

// weekdayOf aproveita que time.Weekday também usa domingo = 0.
func weekdayOf(t time.Time) Weekday {
	return Weekday(t.Weekday())
}
