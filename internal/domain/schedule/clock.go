package schedule

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseClock converte "HH:mm" em minutos desde meia-noite.
// Parsing estrito: rejeita string vazia, campos não numéricos
// e valores fora de 00:00–23:59.
func ParseClock(s string) (int, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid clock %q", s)
	}

	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid clock %q", s)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("invalid clock %q", s)
	}

	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, fmt.Errorf("clock out of range %q", s)
	}

	return h*60 + m, nil
}

// ClockOrZero é a variante leniente: entrada malformada vira 0.
// Usada apenas onde a degradação é intencional (campos de almoço
// gravados antes da validação estrita existir).
func ClockOrZero(s string) int {
	m, err := ParseClock(s)
	if err != nil {
		return 0
	}
	return m
}

// FormatClock converte minutos desde meia-noite em "HH:mm".
// Não faz clamping: o chamador garante 0 <= m < 1440.
func FormatClock(m int) string {
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}
