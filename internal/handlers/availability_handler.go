package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	domain "github.com/Wesley-Alves-Desenv/SalaoElianeMelo/internal/domain/appointment"
	"github.com/Wesley-Alves-Desenv/SalaoElianeMelo/internal/httperr"
	"github.com/Wesley-Alves-Desenv/SalaoElianeMelo/internal/httpresp"
	ucAppointment "github.com/Wesley-Alves-Desenv/SalaoElianeMelo/internal/usecase/appointment"
)

type AvailabilityHandler struct {
	getAvailability *ucAppointment.GetAvailability
}

func NewAvailabilityHandler(uc *ucAppointment.GetAvailability) *AvailabilityHandler {
	return &AvailabilityHandler{getAvailability: uc}
}

// Get responde os horários livres de uma profissional num dia.
// closed=true diferencia "salão fechado" de "dia lotado" na tela.
func (h *AvailabilityHandler) Get(c *gin.Context) {
	professionalID, err1 := strconv.ParseUint(c.Query("professional_id"), 10, 32)
	serviceID, err2 := strconv.ParseUint(c.Query("service_id"), 10, 32)
	date := c.Query("date")

	if err1 != nil || err2 != nil || date == "" {
		httperr.BadRequest(c, "invalid_request", "Parâmetros obrigatórios: professional_id, service_id, date.")
		return
	}

	out, err := h.getAvailability.Execute(c.Request.Context(), domain.AvailabilityInput{
		ProfessionalID: uint(professionalID),
		ServiceID:      uint(serviceID),
		Date:           date,
	})
	if err != nil {
		switch {
		case httperr.IsBusiness(err, "service_not_found"):
			httperr.NotFound(c, "service_not_found", "Serviço não encontrado.")
		case httperr.IsBusiness(err, "invalid_date"):
			httperr.BadRequest(c, "invalid_date", "Data inválida.")
		default:
			httperr.Internal(c, "failed_to_get_availability", "Erro ao calcular disponibilidade.")
		}
		return
	}

	httpresp.OK(c, out)
}
