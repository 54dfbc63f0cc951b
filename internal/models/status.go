package models

// Status do agendamento. Conjunto fechado, usado também pela UI.
const (
	StatusPending    = "pending"
	StatusConfirmed  = "confirmed"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
	StatusCancelled  = "cancelled"
)

// StatusLabels traduz o status para exibição.
var StatusLabels = map[string]string{
	StatusPending:    "Agendado",
	StatusConfirmed:  "Confirmado",
	StatusInProgress: "Em Atendimento",
	StatusCompleted:  "Concluído",
	StatusCancelled:  "Cancelado",
}

// AllStatuses preserva a ordem natural do ciclo de vida.
var AllStatuses = []string{
	StatusPending,
	StatusConfirmed,
	StatusInProgress,
	StatusCompleted,
	StatusCancelled,
}

func IsValidStatus(s string) bool {
	_, ok := StatusLabels[s]
	return ok
}
