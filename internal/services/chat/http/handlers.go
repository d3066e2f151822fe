// Package http provides http transport for chat
package http

import (
	stdhttp "net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"careerassist/internal/modkit/httpkit"
	perr "careerassist/internal/platform/errors"
	"careerassist/internal/platform/logger"
	pnet "careerassist/internal/platform/net"
	"careerassist/internal/platform/net/http/bind"
	"careerassist/internal/services/chat/domain"
	svc "careerassist/internal/services/chat/service"
)

// Register mounts chat endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}
	httpkit.PostJSON[domain.SendInput](r, "/messages", h.send)
	httpkit.Get(r, "/chats", h.chats)
	httpkit.Get(r, "/chats/{id}/messages", h.messages)
}

type handlers struct{ svc svc.Service }

// swagger:route POST /chat/messages Chat chatSend
// @Summary Send a message and get the assistant reply
// @Description The reply is plain text, markdown, or a sentinel line (/jobdata, /courses, /community, /portals, /generatepdf) followed by its payload
// @Tags Chat
// @Accept json
// @Produce json
// @Param payload body domain.SendInput true "Message"
// @Success 200 {object} domain.SendOutput "ok"
// @Failure 403 {object} httpkit.Envelope "chat belongs to another user"
// @Failure 503 {object} httpkit.Envelope "model not configured"
// @Router /chat/messages [post]
func (h *handlers) send(r *stdhttp.Request, in domain.SendInput) (any, error) {
	ctx := logger.WithRequest(r.Context(), pnet.RequestID(r.Context()), in.UserID)
	return h.svc.Send(ctx, in)
}

// swagger:route GET /chat/chats Chat chatList
// @Summary List a user's chats, newest first
// @Tags Chat
// @Produce json
// @Param user_id query string true "User id"
// @Param limit query int false "Max chats (1-200)"
// @Success 200 {array} domain.Chat "ok"
// @Router /chat/chats [get]
func (h *handlers) chats(r *stdhttp.Request) (any, error) {
	q := domain.ChatsQuery{UserID: r.URL.Query().Get("user_id")}
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return nil, perr.WithField(perr.InvalidArgf("limit must be an integer"), "limit")
		}
		q.Limit = n
	}
	if err := bind.Validate(q); err != nil {
		return nil, err
	}
	return h.svc.Chats(r.Context(), q)
}

// swagger:route GET /chat/chats/{id}/messages Chat chatMessages
// @Summary Recent messages of a chat, oldest first
// @Tags Chat
// @Produce json
// @Param id path string true "Chat id"
// @Param user_id query string true "Owner of the chat"
// @Success 200 {array} domain.Message "ok"
// @Failure 400 {object} httpkit.Envelope "missing user"
// @Failure 403 {object} httpkit.Envelope "chat belongs to another user"
// @Failure 404 {object} httpkit.Envelope "unknown chat"
// @Router /chat/chats/{id}/messages [get]
func (h *handlers) messages(r *stdhttp.Request) (any, error) {
	q := domain.MessagesQuery{ChatID: chi.URLParam(r, "id"), UserID: r.URL.Query().Get("user_id")}
	if err := bind.Validate(q); err != nil {
		return nil, err
	}
	return h.svc.Messages(r.Context(), q)
}
