package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	domain "github.com/Wesley-Alves-Desenv/SalaoElianeMelo/internal/domain/appointment"
	"github.com/Wesley-Alves-Desenv/SalaoElianeMelo/internal/httperr"
	"github.com/Wesley-Alves-Desenv/SalaoElianeMelo/internal/httpresp"
	"github.com/Wesley-Alves-Desenv/SalaoElianeMelo/internal/middleware"
	"github.com/Wesley-Alves-Desenv/SalaoElianeMelo/internal/models"
	ucAppointment "github.com/Wesley-Alves-Desenv/SalaoElianeMelo/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	repo         domain.Repository
	book         *ucAppointment.BookAppointment
	createDirect *ucAppointment.CreateDirectAppointment
	updateStatus *ucAppointment.UpdateStatus
	cancel       *ucAppointment.CancelAppointment
	attachReview *ucAppointment.AttachReview
	listByDate   *ucAppointment.ListAppointmentsByDate
	listByMonth  *ucAppointment.ListAppointmentsByMonth
}

func NewAppointmentHandler(
	repo domain.Repository,
	book *ucAppointment.BookAppointment,
	createDirect *ucAppointment.CreateDirectAppointment,
	updateStatus *ucAppointment.UpdateStatus,
	cancel *ucAppointment.CancelAppointment,
	attachReview *ucAppointment.AttachReview,
	listByDate *ucAppointment.ListAppointmentsByDate,
	listByMonth *ucAppointment.ListAppointmentsByMonth,
) *AppointmentHandler {
	return &AppointmentHandler{
		repo:         repo,
		book:         book,
		createDirect: createDirect,
		updateStatus: updateStatus,
		cancel:       cancel,
		attachReview: attachReview,
		listByDate:   listByDate,
		listByMonth:  listByMonth,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type BookAppointmentRequest struct {
	ServiceID      uint   `json:"service_id" binding:"required"`
	ProfessionalID uint   `json:"professional_id" binding:"required"`
	Date           string `json:"date" binding:"required"`
	Time           string `json:"time" binding:"required"`
	ClientPhone    string `json:"client_phone"`
	ClientEmail    string `json:"client_email"`
	Notes          string `json:"notes"`
}

type DirectAppointmentRequest struct {
	ClientName     string `json:"client_name" binding:"required"`
	ClientPhone    string `json:"client_phone"`
	ClientEmail    string `json:"client_email"`
	ServiceID      uint   `json:"service_id" binding:"required"`
	ProfessionalID uint   `json:"professional_id" binding:"required"`
	Date           string `json:"date" binding:"required"`
	Time           string `json:"time" binding:"required"`
	Notes          string `json:"notes"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type ReviewRequest struct {
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Comment string `json:"comment"`
}

// ======================================================
// CLIENTE
// ======================================================

func (h *AppointmentHandler) Book(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req BookAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	// O nome denormalizado facilita a listagem da administração
	var user models.User
	if u, err := h.repo.GetUser(c.Request.Context(), userID); err == nil {
		user = *u
	}

	ap, err := h.book.Execute(c.Request.Context(), ucAppointment.BookAppointmentInput{
		UserID:         userID,
		UserName:       user.Name,
		ClientPhone:    firstNonEmpty(req.ClientPhone, user.Phone),
		ClientEmail:    firstNonEmpty(req.ClientEmail, user.Email),
		ServiceID:      req.ServiceID,
		ProfessionalID: req.ProfessionalID,
		Date:           req.Date,
		Time:           req.Time,
		Notes:          req.Notes,
	})
	if err != nil {
		h.writeBookingError(c, err)
		return
	}

	httpresp.Created(c, ap)
}

func (h *AppointmentHandler) ListMine(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	apps, err := h.repo.ListAppointmentsByUser(c.Request.Context(), userID)
	if err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Erro ao listar agendamentos.")
		return
	}

	httpresp.List(c, apps)
}

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	ap, err := h.cancel.Execute(c.Request.Context(), userID, uint(id))
	if err != nil {
		switch {
		case httperr.IsBusiness(err, "appointment_not_found"):
			httperr.NotFound(c, "appointment_not_found", "Agendamento não encontrado.")
		case httperr.IsBusiness(err, "invalid_state"):
			httperr.BadRequest(c, "invalid_state", "Agendamento não pode ser cancelado.")
		default:
			httperr.Internal(c, "failed_to_cancel", "Erro ao cancelar agendamento.")
		}
		return
	}

	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) Review(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	var req ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Avaliação deve ter nota entre 1 e 5.")
		return
	}

	ap, err := h.attachReview.Execute(c.Request.Context(), userID, uint(id), req.Rating, req.Comment)
	if err != nil {
		switch {
		case httperr.IsBusiness(err, "appointment_not_found"):
			httperr.NotFound(c, "appointment_not_found", "Agendamento não encontrado.")
		case httperr.IsBusiness(err, "invalid_state"):
			httperr.BadRequest(c, "invalid_state", "Só é possível avaliar atendimentos concluídos.")
		case httperr.IsBusiness(err, "invalid_rating"):
			httperr.BadRequest(c, "invalid_rating", "Nota deve ser entre 1 e 5.")
		default:
			httperr.Internal(c, "failed_to_review", "Erro ao registrar avaliação.")
		}
		return
	}

	httpresp.OK(c, ap)
}

// ======================================================
// ADMINISTRAÇÃO
// ======================================================

// List atende as duas formas da agenda administrativa:
// ?date=AAAA-MM-DD para o dia, ?year=&month= para o calendário do mês.
func (h *AppointmentHandler) List(c *gin.Context) {
	if c.Query("date") != "" {
		h.listDay(c)
		return
	}
	h.listMonth(c)
}

func (h *AppointmentHandler) listDay(c *gin.Context) {
	out, err := h.listByDate.Execute(c.Request.Context(), c.Query("date"))
	if err != nil {
		if httperr.IsBusiness(err, "invalid_date") {
			httperr.BadRequest(c, "invalid_date", "Data inválida.")
			return
		}
		httperr.Internal(c, "failed_to_list_appointments", "Erro ao listar agendamentos.")
		return
	}

	httpresp.List(c, out)
}

func (h *AppointmentHandler) listMonth(c *gin.Context) {
	year, err1 := strconv.Atoi(c.Query("year"))
	month, err2 := strconv.Atoi(c.Query("month"))
	if err1 != nil || err2 != nil {
		httperr.BadRequest(c, "missing_year_or_month", "Ano e mês são obrigatórios.")
		return
	}

	out, err := h.listByMonth.Execute(c.Request.Context(), year, month)
	if err != nil {
		if httperr.IsBusiness(err, "invalid_month") {
			httperr.BadRequest(c, "invalid_month", "Ano ou mês inválido.")
			return
		}
		httperr.Internal(c, "failed_to_list_appointments", "Erro ao listar agendamentos.")
		return
	}

	httpresp.List(c, out)
}

// CreateDirect é o encaixe manual da recepção. Conflito devolve 409
// com a mensagem nomeando a cliente e o horário em choque.
func (h *AppointmentHandler) CreateDirect(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextUserID).(uint)

	var req DirectAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	ap, conflict, err := h.createDirect.Execute(c.Request.Context(), ucAppointment.CreateDirectAppointmentInput{
		AdminID:        adminID,
		ClientName:     req.ClientName,
		ClientPhone:    req.ClientPhone,
		ClientEmail:    req.ClientEmail,
		ServiceID:      req.ServiceID,
		ProfessionalID: req.ProfessionalID,
		Date:           req.Date,
		Time:           req.Time,
		Notes:          req.Notes,
	})
	if err != nil {
		h.writeBookingError(c, err)
		return
	}

	if conflict != nil {
		pro, perr := h.repo.GetProfessional(c.Request.Context(), req.ProfessionalID)
		if perr != nil {
			httperr.Conflict(c, "time_conflict", "Conflito de horário.")
			return
		}
		httperr.Conflict(c, "time_conflict", ucAppointment.ConflictMessage(pro, conflict))
		return
	}

	httpresp.Created(c, ap)
}

func (h *AppointmentHandler) UpdateStatus(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	ap, err := h.updateStatus.Execute(c.Request.Context(), adminID, uint(id), req.Status)
	if err != nil {
		switch {
		case httperr.IsBusiness(err, "appointment_not_found"):
			httperr.NotFound(c, "appointment_not_found", "Agendamento não encontrado.")
		case httperr.IsBusiness(err, "invalid_status"):
			httperr.BadRequest(c, "invalid_status", "Status desconhecido.")
		case httperr.IsBusiness(err, "invalid_state"):
			httperr.BadRequest(c, "invalid_state", "Agendamento já está num estado final.")
		default:
			httperr.Internal(c, "failed_to_update_status", "Erro ao atualizar status.")
		}
		return
	}

	httpresp.OK(c, ap)
}

// ======================================================
// HELPERS
// ======================================================

func (h *AppointmentHandler) writeBookingError(c *gin.Context, err error) {
	switch {
	case httperr.IsBusiness(err, "service_not_found"):
		httperr.BadRequest(c, "service_not_found", "Serviço não encontrado.")
	case httperr.IsBusiness(err, "professional_not_found"):
		httperr.BadRequest(c, "professional_not_found", "Profissional não encontrado.")
	case httperr.IsBusiness(err, "specialty_mismatch"):
		httperr.BadRequest(c, "specialty_mismatch", "Profissional não atende este serviço.")
	case httperr.IsBusiness(err, "invalid_date"):
		httperr.BadRequest(c, "invalid_date", "Data inválida.")
	case httperr.IsBusiness(err, "invalid_time"):
		httperr.BadRequest(c, "invalid_time", "Hora inválida.")
	case httperr.IsBusiness(err, "date_in_past"):
		httperr.BadRequest(c, "date_in_past", "Não é possível agendar no passado.")
	case httperr.IsBusiness(err, "outside_working_hours"):
		httperr.BadRequest(c, "outside_working_hours", "Fora do horário de atendimento.")
	case httperr.IsBusiness(err, "time_conflict"), httperr.IsExclusionConflict(err):
		httperr.Conflict(c, "time_conflict", "Conflito de horário.")
	default:
		httperr.Internal(c, "failed_to_create_appointment", "Erro ao criar agendamento.")
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
