package schedule

// Interval é um intervalo semiaberto [Start, End) em minutos.
type Interval struct {
	Start int
	End   int
}

// Overlaps aplica a regra semiaberta: fronteiras iguais não colidem,
// permitindo agendamentos colados (fim de um == início do outro).
func (i Interval) Overlaps(o Interval) bool {
	return i.Start < o.End && i.End > o.Start
}
