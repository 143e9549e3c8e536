package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/sgrinev/habit-streak-bot/internal/logger"
	"github.com/sgrinev/habit-streak-bot/internal/models"
	"github.com/sgrinev/habit-streak-bot/internal/services"
)

// ChatManager defines the interface that the service must implement.
type ChatManager interface {
	Join(ctx context.Context, userID int64, username string) error
	Leave(ctx context.Context, userID int64, username string) error
	Post(ctx context.Context, userID int64, username, text string) error
	Recent(ctx context.Context, limit int) ([]models.ChatMessageDB, error)
}

// ChatMembershipRequest represents the JSON body for joining or leaving the chat
// swagger:model ChatMembershipRequest
type ChatMembershipRequest struct {
	// Messenger user identifier
	// required: true
	// default: 123456789
	UserID int64 `json:"user_id"`

	// Display name
	// required: true
	// default: alice
	Username string `json:"username"`
}

// ChatMessageRequest represents the JSON body for posting a chat message
// swagger:model ChatMessageRequest
type ChatMessageRequest struct {
	// Messenger user identifier
	// required: true
	// default: 123456789
	UserID int64 `json:"user_id"`

	// Display name
	// required: true
	// default: alice
	Username string `json:"username"`

	// Message text
	// required: true
	Text string `json:"text"`
}

// ChatStatusResponse represents a membership change confirmation
// swagger:model ChatStatusResponse
type ChatStatusResponse struct {
	// Confirmation shown to the user
	Message string `json:"message"`
}

// ChatFeedMessage represents one message of the community feed
// swagger:model ChatFeedMessage
type ChatFeedMessage struct {
	// Feed sequence number
	MessageID int64 `json:"message_id"`

	// Author identifier
	UserID int64 `json:"user_id"`

	// Author display name
	Username string `json:"username"`

	// Message text
	Text string `json:"text"`

	// Creation time, RFC 3339
	CreatedAt string `json:"created_at"`
}

// ChatHistoryResponse represents the recent community feed
// swagger:model ChatHistoryResponse
type ChatHistoryResponse struct {
	// Messages in insertion order
	Messages []ChatFeedMessage `json:"messages"`
}

// ChatErrorResponse represents an error response for chat operations
// swagger:model ChatErrorResponse
type ChatErrorResponse struct {
	// Error message
	// default: You are not in the chat
	Error string `json:"error"`
}

// NewChatJoinHandler returns an HTTP handler for joining the community chat.
// @Summary Join the community chat
// @Description Marks the user as a chat member and announces the join to everyone else.
// @Tags chat
// @Accept json
// @Produce json
// @Param request body handlers.ChatMembershipRequest true "Membership Request"
// @Success 200 {object} handlers.ChatStatusResponse "Joined"
// @Failure 400 {object} handlers.ChatErrorResponse "Invalid request body"
// @Router /chat/join [post]
// @Security BearerAuth
func NewChatJoinHandler(svc ChatManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		req, ok := decodeMembership(w, r)
		if !ok {
			return
		}

		if err := svc.Join(ctx, req.UserID, req.Username); err != nil {
			logger.Log.Errorw("failed to join chat", "user_id", req.UserID, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ChatErrorResponse{Error: "Internal server error"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(ChatStatusResponse{Message: "💬 You joined the community chat. Your messages are now shared with everyone."})
	}
}

// NewChatLeaveHandler returns an HTTP handler for leaving the community chat.
// @Summary Leave the community chat
// @Tags chat
// @Accept json
// @Produce json
// @Param request body handlers.ChatMembershipRequest true "Membership Request"
// @Success 200 {object} handlers.ChatStatusResponse "Left"
// @Failure 400 {object} handlers.ChatErrorResponse "Invalid request body"
// @Router /chat/leave [post]
// @Security BearerAuth
func NewChatLeaveHandler(svc ChatManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		req, ok := decodeMembership(w, r)
		if !ok {
			return
		}

		if err := svc.Leave(ctx, req.UserID, req.Username); err != nil {
			logger.Log.Errorw("failed to leave chat", "user_id", req.UserID, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ChatErrorResponse{Error: "Internal server error"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(ChatStatusResponse{Message: "You left the community chat."})
	}
}

// NewChatMessageHandler returns an HTTP handler for posting to the community chat.
// @Summary Post a chat message
// @Description Appends the message to the feed and delivers it to every other user.
// @Tags chat
// @Accept json
// @Produce json
// @Param request body handlers.ChatMessageRequest true "Message Request"
// @Success 200 {object} handlers.ChatStatusResponse "Posted"
// @Failure 400 {object} handlers.ChatErrorResponse "Invalid request body"
// @Failure 403 {object} handlers.ChatErrorResponse "You are not in the chat"
// @Router /chat/message [post]
// @Security BearerAuth
func NewChatMessageHandler(svc ChatManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var req ChatMessageRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Errorw("failed to decode chat message request", "error", err)
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ChatErrorResponse{Error: "Invalid request body"})
			return
		}

		if req.UserID <= 0 || req.Username == "" || req.Text == "" {
			logger.Log.Warnw("invalid chat message request", "user_id", req.UserID)
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ChatErrorResponse{Error: "Invalid user_id, username or text"})
			return
		}

		if err := svc.Post(ctx, req.UserID, req.Username, req.Text); err != nil {
			if errors.Is(err, services.ErrNotInChat) {
				w.WriteHeader(http.StatusForbidden)
				json.NewEncoder(w).Encode(ChatErrorResponse{Error: "You are not in the chat"})
				return
			}
			logger.Log.Errorw("failed to post chat message", "user_id", req.UserID, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ChatErrorResponse{Error: "Internal server error"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(ChatStatusResponse{Message: "Message sent."})
	}
}

// NewChatHistoryHandler returns an HTTP handler for reading the community feed.
// @Summary Recent chat messages
// @Description Returns the latest feed messages, oldest first.
// @Tags chat
// @Produce json
// @Param limit query int false "Maximum number of messages, default 50"
// @Success 200 {object} handlers.ChatHistoryResponse "Messages"
// @Router /chat/messages [get]
// @Security BearerAuth
func NewChatHistoryHandler(svc ChatManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

		messages, err := svc.Recent(ctx, limit)
		if err != nil {
			logger.Log.Errorw("failed to read chat history", "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ChatErrorResponse{Error: "Internal server error"})
			return
		}

		feed := make([]ChatFeedMessage, 0, len(messages))
		for _, m := range messages {
			feed = append(feed, ChatFeedMessage{
				MessageID: m.MessageID,
				UserID:    m.UserID,
				Username:  m.Username,
				Text:      m.Message,
				CreatedAt: m.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
			})
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(ChatHistoryResponse{Messages: feed})
	}
}

func decodeMembership(w http.ResponseWriter, r *http.Request) (ChatMembershipRequest, bool) {
	var req ChatMembershipRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Log.Errorw("failed to decode chat membership request", "error", err)
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(ChatErrorResponse{Error: "Invalid request body"})
		return req, false
	}
	if req.UserID <= 0 || req.Username == "" {
		logger.Log.Warnw("invalid chat membership request", "user_id", req.UserID)
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(ChatErrorResponse{Error: "Invalid user_id or username"})
		return req, false
	}
	return req, true
}
