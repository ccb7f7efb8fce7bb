package chat

import (
	"concierge/config"
	"concierge/infras/otel"
	"concierge/internal/domains/chat/hub"
	"concierge/internal/domains/chat/model/dto"
	"concierge/internal/domains/chat/service"
	"concierge/shared"
	"concierge/shared/constant"
	gDto "concierge/shared/dto"
	"concierge/shared/failure"
	"concierge/shared/validator"
	"concierge/transport/http/response"
	"net/http"
	"slices"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

const paramUserID = "user_id"

var staffRoles = []string{constant.RoleSuperAdmin, constant.RoleAdmin, constant.RoleStaff}

type Handler struct {
	service  service.Chat
	hub      *hub.Hub
	otel     otel.Otel
	upgrader websocket.Upgrader
}

func New(service service.Chat, hub *hub.Hub, cfg *config.Config, otel otel.Otel) Handler {
	allowed := cfg.Chat.AllowedOrigins

	return Handler{
		service: service,
		hub:     hub,
		otel:    otel,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")

				if len(allowed) == 0 || slices.Contains(allowed, origin) {
					return true
				}

				log.Warn().Str("origin", origin).Msg("chat websocket origin rejected")

				return false
			},
		},
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Route("/chat", func(r chi.Router) {
		r.Get("/ws", handler.WebSocket)
		r.Get("/messages", handler.GetMyMessages)
		r.Post("/messages", handler.SendMessage)
		r.Get("/threads", handler.GetThreads)
		r.Get("/threads/{user_id}", handler.GetThread)
		r.Post("/threads/{user_id}/reply", handler.Reply)
		r.Post("/threads/{user_id}/read", handler.MarkRead)
	})
}

// WebSocket upgrades the connection and streams chat events.
// Guests receive their own thread; staff receive every thread.
// @Summary Chat event stream
// @Tags Chat
// @Param access_token query string false "Access token when the Authorization header cannot be set"
// @Success 101
// @Failure 401 {object} response.Error
// @Router /v1/chat/ws [get]
// @Security BearerAuth
func (handler *Handler) WebSocket(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)
	if userID == constant.Empty {
		response.WithError(w, failure.Unauthorized("unauthorized"))

		return
	}

	role, _ := ctx.Value(constant.ContextKeyUserRole).(string)

	conn, err := handler.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Error().Err(err).Str("user_id", userID).Msg("chat websocket upgrade failed")

		return
	}

	handler.hub.Serve(handler.hub.NewConnection(userID, slices.Contains(staffRoles, role), conn))
}

// GetMyMessages lists the signed-in guest's conversation with the front desk.
// @Summary Get my chat messages
// @Tags Chat
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Success 200 {object} dto.GetMessagesResponse
// @Failure 401 {object} response.Error
// @Router /v1/chat/messages [get]
// @Security BearerAuth
func (handler *Handler) GetMyMessages(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMyMessages")
	defer scope.End()

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	res, err := handler.service.GetThread(ctx, userID, queryParams)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get chat messages")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// SendMessage posts a message from the signed-in guest.
// @Summary Send a chat message
// @Tags Chat
// @Accept json
// @Produce json
// @Param request body dto.SendMessageRequest true "Send Message Request"
// @Success 201 {object} dto.MessageResponse
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Router /v1/chat/messages [post]
// @Security BearerAuth
func (handler *Handler) SendMessage(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SendMessage")
	defer scope.End()

	req := dto.SendMessageRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	res, err := handler.service.Send(ctx, userID, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to send chat message")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusCreated, res)
}

// GetThreads lists guest conversations for staff.
// @Summary Get chat threads
// @Tags Chat
// @Produce json
// @Param limit query int false "Maximum number of threads"
// @Success 200 {object} dto.GetThreadsResponse
// @Failure 403 {object} response.Error
// @Router /v1/chat/threads [get]
// @Security BearerAuth
func (handler *Handler) GetThreads(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetThreads")
	defer scope.End()

	limit := 0
	if raw := r.URL.Query().Get(constant.RequestParamLimit); raw != constant.Empty {
		parsed, err := shared.ConvertStringToInt(raw)
		if err != nil {
			response.WithError(w, failure.InvalidLimitParam)

			return
		}

		limit = parsed
	}

	res, err := handler.service.GetThreads(ctx, limit)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get chat threads")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetThread lists one guest conversation for staff.
// @Summary Get a guest chat thread
// @Tags Chat
// @Produce json
// @Param user_id path string true "Guest user ID"
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Success 200 {object} dto.GetMessagesResponse
// @Router /v1/chat/threads/{user_id} [get]
// @Security BearerAuth
func (handler *Handler) GetThread(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetThread")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	res, err := handler.service.GetThread(ctx, chi.URLParam(r, paramUserID), queryParams)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get chat thread")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// Reply answers a guest thread as staff.
// @Summary Reply to a guest
// @Tags Chat
// @Accept json
// @Produce json
// @Param user_id path string true "Guest user ID"
// @Param request body dto.ReplyRequest true "Reply Request"
// @Success 201 {object} dto.MessageResponse
// @Failure 404 {object} response.Error
// @Router /v1/chat/threads/{user_id}/reply [post]
// @Security BearerAuth
func (handler *Handler) Reply(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Reply")
	defer scope.End()

	req := dto.ReplyRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Reply(ctx, chi.URLParam(r, paramUserID), req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to reply to chat thread")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusCreated, res)
}

// MarkRead marks a guest thread as read.
// @Summary Mark a chat thread read
// @Tags Chat
// @Param user_id path string true "Guest user ID"
// @Success 200 {object} response.Message
// @Router /v1/chat/threads/{user_id}/read [post]
// @Security BearerAuth
func (handler *Handler) MarkRead(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".MarkRead")
	defer scope.End()

	if err := handler.service.MarkRead(ctx, chi.URLParam(r, paramUserID)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to mark chat thread read")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Thread marked as read")
}
