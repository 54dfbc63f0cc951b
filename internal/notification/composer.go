package notification

import (
	"context"
	"fmt"
	"strings"

	genai "github.com/google/generative-ai-go/genai"
	"go.uber.org/zap"
	"google.golang.org/api/option"

	"github.com/Wesley-Alves-Desenv/SalaoElianeMelo/internal/logger"
	"github.com/Wesley-Alves-Desenv/SalaoElianeMelo/internal/models"
)

// Composer gera a mensagem de lembrete/confirmação enviada ao cliente
// por WhatsApp. Sem chave de API configurada cai no texto padrão.
type Composer struct {
	model *genai.GenerativeModel
}

func NewComposer(apiKey string) *Composer {
	if apiKey == "" {
		logger.Get().Warn("GEMINI_API_KEY ausente, mensagens usarão o texto padrão")
		return &Composer{}
	}

	client, err := genai.NewClient(context.Background(), option.WithAPIKey(apiKey))
	if err != nil {
		logger.Get().Warn("falha ao criar cliente Gemini, mensagens usarão o texto padrão",
			zap.Error(err))
		return &Composer{}
	}

	return &Composer{model: client.GenerativeModel("gemini-1.5-flash")}
}

func (c *Composer) WhatsAppMessage(
	ctx context.Context,
	ap *models.Appointment,
	service *models.Service,
	pro *models.Professional,
) string {

	fallback := fmt.Sprintf(
		"Olá %s, confirmamos seu agendamento de %s para o dia %s às %s com %s.",
		ap.UserName, service.Name, ap.Date, ap.Time, pro.Name,
	)

	if c.model == nil {
		return fallback
	}

	prompt := fmt.Sprintf(`Você é o assistente virtual do Salão Eliane Melo.
Escreva uma mensagem curta, educada e amigável para ser enviada via WhatsApp para a cliente.

Detalhes do agendamento:
Cliente: %s
Serviço: %s
Profissional: %s
Data: %s
Horário: %s
Status atual: %s

A mensagem serve como lembrete ou confirmação. Inclua emojis relevantes.
Não use formatação markdown, apenas texto simples.`,
		ap.UserName, service.Name, pro.Name, ap.Date, ap.Time,
		models.StatusLabels[ap.Status],
	)

	resp, err := c.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		logger.Get().Warn("gemini generate error", zap.Error(err))
		return fallback
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return fallback
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}

	msg := strings.TrimSpace(sb.String())
	if msg == "" {
		return fallback
	}
	return msg
}
