package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/diegoclair/friday-rota/internal/domain"
	"github.com/diegoclair/friday-rota/internal/domain/contract"
	slackcmd "github.com/diegoclair/friday-rota/internal/domain/slack"
	"github.com/diegoclair/friday-rota/internal/notify"
	"github.com/sirupsen/logrus"
	"github.com/slack-go/slack"
)

// maxListed caps how many upcoming dates /rota list prints
const maxListed = 8

type SlackHandler struct {
	rotaService   contract.RotaService
	signingSecret string
	log           *logrus.Logger
}

func NewSlackHandler(rotaService contract.RotaService, signingSecret string, log *logrus.Logger) *SlackHandler {
	return &SlackHandler{
		rotaService:   rotaService,
		signingSecret: signingSecret,
		log:           log,
	}
}

func (h *SlackHandler) HandleSlashCommand(w http.ResponseWriter, r *http.Request) {
	// an empty secret would let anyone sign requests
	if h.signingSecret == "" {
		h.log.Warn("rejected slash command: no signing secret configured")
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	// Verify request from Slack
	body, err := io.ReadAll(r.Body)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	r.Body = io.NopCloser(bytes.NewBuffer(body))

	verifier, err := slack.NewSecretsVerifier(r.Header, h.signingSecret)
	if err != nil {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	if _, err := verifier.Write(body); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if err := verifier.Ensure(); err != nil {
		h.log.WithError(err).Warn("rejected slash command with invalid signature")
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	s, err := slack.SlashCommandParse(r)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	cmd, err := slackcmd.ParseCommand(s.Text)
	if err != nil {
		h.respondWithError(w, err.Error())
		return
	}

	response := h.handleCommand(r, cmd, &s)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func (h *SlackHandler) handleCommand(r *http.Request, cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	h.log.WithFields(logrus.Fields{
		"command": cmd.Type,
		"user_id": slashCmd.UserID,
	}).Debug("handling slash command")

	switch cmd.Type {
	case slackcmd.CmdList:
		return h.handleList()
	case slackcmd.CmdNext:
		return h.handleNext()
	case slackcmd.CmdOverride:
		return h.handleOverride(cmd, slashCmd)
	case slackcmd.CmdClear:
		return h.handleClear(cmd)
	case slackcmd.CmdNotify:
		return h.handleNotify(r)
	case slackcmd.CmdHelp:
		return h.handleHelp()
	default:
		return h.createErrorResponse("Unknown command")
	}
}

func (h *SlackHandler) handleList() *slack.Msg {
	assignments, err := h.rotaService.Schedule()
	if err != nil {
		h.log.WithError(err).Error("failed to compute schedule")
		return h.createErrorResponse("Error loading the rota")
	}

	if len(assignments) == 0 {
		return &slack.Msg{
			ResponseType: slack.ResponseTypeEphemeral,
			Text:         "No Fridays left on the rota this year.",
		}
	}

	var list strings.Builder
	list.WriteString("*Upcoming Friday rota:*\n")
	for i, a := range assignments {
		if i == maxListed {
			list.WriteString(fmt.Sprintf("_…and %d more_\n", len(assignments)-maxListed))
			break
		}
		if a.Overridden {
			list.WriteString(fmt.Sprintf("• %s: %s _(override)_\n", a.Date, a.Assignee))
			continue
		}
		list.WriteString(fmt.Sprintf("• %s: %s\n", a.Date, a.Assignee))
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         list.String(),
	}
}

func (h *SlackHandler) handleNext() *slack.Msg {
	next, err := h.rotaService.NextAssignment()
	if errors.Is(err, domain.ErrNoUpcomingDate) {
		return &slack.Msg{
			ResponseType: slack.ResponseTypeEphemeral,
			Text:         "No Fridays left on the rota this year.",
		}
	}
	if err != nil {
		h.log.WithError(err).Error("failed to get next assignment")
		return h.createErrorResponse("Error determining who is next")
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         fmt.Sprintf("📅 Next up: *%s* on *%s*", next.Assignee, next.Date),
	}
}

func (h *SlackHandler) handleOverride(cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	if len(cmd.Args) < 2 {
		return h.createErrorResponse("Usage: `/rota override YYYY-MM-DD Name`")
	}

	date := cmd.Args[0]
	assignee, err := h.resolveName(strings.Join(cmd.Args[1:], " "))
	if err != nil {
		return h.createErrorResponse(err.Error())
	}

	if err := h.rotaService.SetOverride(date, assignee); err != nil {
		if errors.Is(err, domain.ErrInvalidDate) {
			return h.createErrorResponse("Invalid date. Use YYYY-MM-DD, for example 2024-01-12")
		}
		h.log.WithError(err).Error("failed to save override")
		return h.createErrorResponse("Error saving override")
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeInChannel,
		Text:         fmt.Sprintf("✅ %s is now covered by %s (set by <@%s>)", date, assignee, slashCmd.UserID),
	}
}

func (h *SlackHandler) handleClear(cmd *slackcmd.Command) *slack.Msg {
	if len(cmd.Args) == 0 {
		return h.createErrorResponse("Usage: `/rota clear YYYY-MM-DD`")
	}

	date := cmd.Args[0]
	if err := h.rotaService.ClearOverride(date); err != nil {
		if errors.Is(err, domain.ErrInvalidDate) {
			return h.createErrorResponse("Invalid date. Use YYYY-MM-DD, for example 2024-01-12")
		}
		h.log.WithError(err).Error("failed to clear override")
		return h.createErrorResponse("Error clearing override")
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         fmt.Sprintf("✅ Override for %s removed.", date),
	}
}

func (h *SlackHandler) handleNotify(r *http.Request) *slack.Msg {
	result, err := h.rotaService.NotifyNext(r.Context())
	if err != nil {
		h.log.WithError(err).Error("failed to send reminder from slash command")

		var httpErr *notify.HTTPError
		if errors.As(err, &httpErr) {
			return h.createErrorResponse(fmt.Sprintf("Slack webhook answered %d", httpErr.StatusCode))
		}
		return h.createErrorResponse("Error sending reminder")
	}

	responseType := slack.ResponseTypeEphemeral
	if result.Sent {
		responseType = slack.ResponseTypeInChannel
	}

	return &slack.Msg{
		ResponseType: responseType,
		Text:         result.Summary(),
	}
}

func (h *SlackHandler) handleHelp() *slack.Msg {
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         slackcmd.GetHelpText(),
	}
}

// resolveName turns a Slack mention like <@U123|leo> into the member name
// mapped to that user ID. Plain names are returned as typed.
func (h *SlackHandler) resolveName(arg string) (string, error) {
	arg = strings.TrimSpace(arg)
	if !strings.HasPrefix(arg, "<@") {
		return arg, nil
	}

	userID := strings.TrimSuffix(strings.TrimPrefix(arg, "<@"), ">")
	if idx := strings.Index(userID, "|"); idx >= 0 {
		userID = userID[:idx]
	}

	cfg, err := h.rotaService.GetConfig()
	if err != nil {
		h.log.WithError(err).Error("failed to load config")
		return "", errors.New("could not load the rota")
	}

	for name, id := range cfg.SlackIDMap {
		if id == userID {
			return name, nil
		}
	}

	return "", fmt.Errorf("<@%s> has no Slack ID mapping, use their rota name instead", userID)
}

func (h *SlackHandler) createErrorResponse(message string) *slack.Msg {
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         fmt.Sprintf("❌ %s", message),
	}
}

func (h *SlackHandler) respondWithError(w http.ResponseWriter, message string) {
	response := h.createErrorResponse(message)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}
