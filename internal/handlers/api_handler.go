package handlers

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/diegoclair/friday-rota/internal/domain"
	"github.com/diegoclair/friday-rota/internal/domain/contract"
	"github.com/diegoclair/friday-rota/internal/domain/entity"
	"github.com/diegoclair/friday-rota/internal/notify"
	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

const scheduleCSVFilename = "friday_rota.csv"

// APIHandler serves the settings API used to edit the rota and its overrides
type APIHandler struct {
	rotaService contract.RotaService
	log         *logrus.Logger
}

func NewAPIHandler(rotaService contract.RotaService, log *logrus.Logger) *APIHandler {
	return &APIHandler{
		rotaService: rotaService,
		log:         log,
	}
}

type overrideRequest struct {
	Assignee string `json:"assignee"`
}

func (r overrideRequest) validate() error {
	if strings.TrimSpace(r.Assignee) == "" {
		return domain.ErrEmptyAssignee
	}
	return nil
}

func (h *APIHandler) Routes(r chi.Router) {
	r.Get("/config", h.GetConfig)
	r.Put("/config", h.UpdateSettings)

	r.Get("/schedule", h.GetSchedule)
	r.Get("/schedule.csv", h.ExportScheduleCSV)
	r.Get("/schedule/next", h.GetNext)

	r.Delete("/overrides", h.ClearOverrides)
	r.Put("/overrides/{date}", h.SetOverride)
	r.Delete("/overrides/{date}", h.ClearOverride)

	r.Post("/notify", h.NotifyNext)
	r.Post("/notify/{date}", h.NotifyDate)
}

func (h *APIHandler) GetConfig(w http.ResponseWriter, r *http.Request) {
	cfg, err := h.rotaService.GetConfig()
	if err != nil {
		h.handleDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, cfg)
}

func (h *APIHandler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	var req entity.Settings
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "BAD_REQUEST", "invalid request body")
		return
	}

	cfg, err := h.rotaService.UpdateSettings(req)
	if err != nil {
		h.handleDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, cfg)
}

func (h *APIHandler) GetSchedule(w http.ResponseWriter, r *http.Request) {
	assignments, err := h.rotaService.Schedule()
	if err != nil {
		h.handleDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"schedule": assignments,
	})
}

// ExportScheduleCSV downloads the schedule, overrides applied, as date,on_duty rows
func (h *APIHandler) ExportScheduleCSV(w http.ResponseWriter, r *http.Request) {
	assignments, err := h.rotaService.Schedule()
	if err != nil {
		h.handleDomainError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", "attachment; filename="+scheduleCSVFilename)

	cw := csv.NewWriter(w)
	cw.Write([]string{"date", "on_duty"})
	for _, a := range assignments {
		cw.Write([]string{a.Date, a.Assignee})
	}
	cw.Flush()

	if err := cw.Error(); err != nil {
		h.log.WithError(err).Error("failed to write schedule csv")
	}
}

func (h *APIHandler) GetNext(w http.ResponseWriter, r *http.Request) {
	next, err := h.rotaService.NextAssignment()
	if err != nil {
		h.handleDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, next)
}

func (h *APIHandler) SetOverride(w http.ResponseWriter, r *http.Request) {
	var req overrideRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "BAD_REQUEST", "invalid request body")
		return
	}

	if err := req.validate(); err != nil {
		respondError(w, http.StatusBadRequest, "BAD_REQUEST", err.Error())
		return
	}

	date := chi.URLParam(r, "date")
	if err := h.rotaService.SetOverride(date, req.Assignee); err != nil {
		h.handleDomainError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *APIHandler) ClearOverride(w http.ResponseWriter, r *http.Request) {
	if err := h.rotaService.ClearOverride(chi.URLParam(r, "date")); err != nil {
		h.handleDomainError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *APIHandler) ClearOverrides(w http.ResponseWriter, r *http.Request) {
	if err := h.rotaService.ClearOverrides(); err != nil {
		h.handleDomainError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *APIHandler) NotifyNext(w http.ResponseWriter, r *http.Request) {
	result, err := h.rotaService.NotifyNext(r.Context())
	if err != nil {
		h.handleDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, result)
}

func (h *APIHandler) NotifyDate(w http.ResponseWriter, r *http.Request) {
	result, err := h.rotaService.NotifyDate(r.Context(), chi.URLParam(r, "date"))
	if err != nil {
		h.handleDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, result)
}

func (h *APIHandler) handleDomainError(w http.ResponseWriter, err error) {
	var httpErr *notify.HTTPError

	switch {
	case errors.Is(err, domain.ErrInvalidDate), errors.Is(err, domain.ErrEmptyAssignee):
		respondError(w, http.StatusBadRequest, "BAD_REQUEST", err.Error())
	case errors.Is(err, domain.ErrNoUpcomingDate), errors.Is(err, domain.ErrNoAssignee):
		respondError(w, http.StatusNotFound, "NOT_FOUND", err.Error())
	case errors.Is(err, domain.ErrWebhookNotConfigured):
		respondError(w, http.StatusConflict, "WEBHOOK_NOT_CONFIGURED", err.Error())
	case errors.As(err, &httpErr):
		h.log.WithError(err).Warn("slack webhook rejected notification")
		respondError(w, http.StatusBadGateway, "WEBHOOK_FAILED", err.Error())
	default:
		h.log.WithError(err).Error("request failed")
		respondError(w, http.StatusInternalServerError, "INTERNAL", "internal error")
	}
}
