package alerting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWeekNumber(t *testing.T) {
	tests := []struct {
		name     string
		date     time.Time
		expected int
	}{
		{
			name:     "1º de janeiro numa segunda-feira",
			date:     time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			expected: 1,
		},
		{
			name:     "sábado da primeira semana",
			date:     time.Date(2024, 1, 6, 23, 59, 0, 0, time.UTC),
			expected: 1,
		},
		{
			name:     "domingo abre a segunda semana",
			date:     time.Date(2024, 1, 7, 0, 0, 0, 0, time.UTC),
			expected: 2,
		},
		{
			name:     "1º de janeiro num domingo",
			date:     time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC),
			expected: 1,
		},
		{
			name:     "segundo domingo de 2023",
			date:     time.Date(2023, 1, 8, 0, 0, 0, 0, time.UTC),
			expected: 2,
		},
		{
			name:     "1º de janeiro num sábado fica sozinho na semana 1",
			date:     time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC),
			expected: 1,
		},
		{
			name:     "2 de janeiro de 2022 já é semana 2",
			date:     time.Date(2022, 1, 2, 0, 0, 0, 0, time.UTC),
			expected: 2,
		},
		{
			name:     "meio de maio",
			date:     time.Date(2024, 5, 16, 9, 0, 0, 0, time.UTC),
			expected: 20,
		},
		{
			name:     "último dia de ano bissexto chega à semana 53",
			date:     time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC),
			expected: 53,
		},
		{
			name:     "ano iniciado na sexta termina na semana 53",
			date:     time.Date(2021, 12, 31, 0, 0, 0, 0, time.UTC),
			expected: 53,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, WeekNumber(tt.date))
		})
	}
}
