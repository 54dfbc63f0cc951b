package handlers

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	domain "github.com/Wesley-Alves-Desenv/SalaoElianeMelo/internal/domain/appointment"
	"github.com/Wesley-Alves-Desenv/SalaoElianeMelo/internal/httperr"
	"github.com/Wesley-Alves-Desenv/SalaoElianeMelo/internal/httpresp"
	"github.com/Wesley-Alves-Desenv/SalaoElianeMelo/internal/notification"
)

type MessageHandler struct {
	repo     domain.Repository
	composer *notification.Composer
}

func NewMessageHandler(repo domain.Repository, composer *notification.Composer) *MessageHandler {
	return &MessageHandler{repo: repo, composer: composer}
}

// Compose gera o texto de WhatsApp para um agendamento e o link
// wa.me pronto para a recepção clicar.
func (h *MessageHandler) Compose(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	ap, err := h.repo.GetAppointment(c.Request.Context(), uint(id))
	if err != nil {
		httperr.NotFound(c, "appointment_not_found", "Agendamento não encontrado.")
		return
	}

	msg := h.composer.WhatsAppMessage(c.Request.Context(), ap, &ap.Service, &ap.Professional)

	out := gin.H{"message": msg}
	if phone := digitsOnly(ap.ClientPhone); phone != "" {
		out["whatsapp_url"] = fmt.Sprintf("https://wa.me/55%s", phone)
	}

	httpresp.OK(c, out)
}

func digitsOnly(s string) string {
	var sb strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
