package appointment

import (
	"github.com/Wesley-Alves-Desenv/SalaoElianeMelo/internal/httperr"
	"github.com/Wesley-Alves-Desenv/SalaoElianeMelo/internal/models"
)

// ===============================
// Ciclo de vida do agendamento
// ===============================
//
// pending → confirmed → in_progress → completed, com cancelled
// alcançável de qualquer estado não terminal. A troca de status pela
// administração continua livre entre estados não terminais (o painel
// usa um select simples); só os terminais são de fato terminais.

func IsTerminal(status string) bool {
	return status == models.StatusCompleted || status == models.StatusCancelled
}

// CanTransition valida uma troca de status. Ponto único de decisão:
// endurecer para uma tabela de transições estrita não toca os chamadores.
func CanTransition(current, next string) error {
	if !models.IsValidStatus(next) {
		return httperr.ErrBusiness("invalid_status")
	}
	if IsTerminal(current) {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// CanCancel define se um agendamento pode ser cancelado
func CanCancel(current string) error {
	return CanTransition(current, models.StatusCancelled)
}

// CanComplete define se um agendamento pode ser concluído
func CanComplete(current string) error {
	return CanTransition(current, models.StatusCompleted)
}

// InitialStatus valida status inicial
func InitialStatus() string {
	return models.StatusPending
}
