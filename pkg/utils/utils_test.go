package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		expected string
	}{
		{name: "Zero", value: 0, expected: "R$ 0,00"},
		{name: "Centavos arredondados", value: 12.346, expected: "R$ 12,35"},
		{name: "Milhar", value: 5000, expected: "R$ 5.000,00"},
		{name: "Milhões", value: 1234567.8, expected: "R$ 1.234.567,80"},
		{name: "Negativo", value: -2500.5, expected: "-R$ 2.500,50"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatCurrency(tt.value))
		})
	}
}

func TestParseOptionalDate(t *testing.T) {
	empty := ""
	valid := "2024-03-15"
	invalid := "15/03/2024"

	date, err := ParseOptionalDate(nil)
	require.NoError(t, err)
	assert.Nil(t, date)

	date, err = ParseOptionalDate(&empty)
	require.NoError(t, err)
	assert.Nil(t, date)

	date, err = ParseOptionalDate(&valid)
	require.NoError(t, err)
	require.NotNil(t, date)
	assert.Equal(t, time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC), *date)

	_, err = ParseOptionalDate(&invalid)
	assert.Error(t, err)
}

func TestDateHelpers(t *testing.T) {
	moment := time.Date(2024, time.February, 10, 18, 30, 0, 0, time.UTC)

	assert.Equal(t, time.Date(2024, time.February, 10, 0, 0, 0, 0, time.UTC), StartOfDay(moment))
	assert.True(t, SameDay(moment, StartOfDay(moment)))
	assert.False(t, SameDay(moment, moment.AddDate(0, 0, 1)))
	assert.Equal(t, 29, DaysInMonth(moment))
	assert.Equal(t, 31, DaysInMonth(time.Date(2023, time.December, 31, 0, 0, 0, 0, time.UTC)))
}

func TestGenerateID(t *testing.T) {
	first, err := GenerateID()
	require.NoError(t, err)
	second, err := GenerateID()
	require.NoError(t, err)

	assert.Len(t, first, idLength)
	assert.NotEqual(t, first, second)
}
