package alerting

import "time"

// WeekNumber calcula a semana do ano usada nas FIVIs: semanas começam no domingo
// e a semana 1 é a que contém 1º de janeiro. Não é a numeração ISO-8601.
//
//	semana = ceil((diasDesde1Jan + diaDaSemana(1Jan) + 1) / 7)
func WeekNumber(t time.Time) int {
	jan1 := time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, t.Location())
	daysSinceJan1 := t.YearDay() - 1

	return (daysSinceJan1 + int(jan1.Weekday()) + 1 + 6) / 7
}
