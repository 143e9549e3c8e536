package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/sgrinev/habit-streak-bot/internal/content"
)

// TaskResponse represents a daily task
// swagger:model TaskResponse
type TaskResponse struct {
	// Task text
	Task string `json:"task"`
}

// MotivationResponse represents a motivational quote
// swagger:model MotivationResponse
type MotivationResponse struct {
	// Quote text
	Quote string `json:"quote"`
}

// EmergencyTipResponse represents an emergency help tip
// swagger:model EmergencyTipResponse
type EmergencyTipResponse struct {
	// Tip category
	Category string `json:"category"`

	// Tip text
	Tip string `json:"tip"`
}

// NewTaskHandler returns an HTTP handler for the task-of-the-day command.
// @Summary Task of the day
// @Description Returns a random personal growth task.
// @Tags content
// @Produce json
// @Success 200 {object} handlers.TaskResponse "Task"
// @Router /task [get]
// @Security BearerAuth
func NewTaskHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(TaskResponse{Task: "📝 Task of the Day:\n\n" + content.RandomTask()})
	}
}

// NewMotivationHandler returns an HTTP handler for the motivation command.
// @Summary Motivational quote
// @Description Returns a random motivational quote.
// @Tags content
// @Produce json
// @Success 200 {object} handlers.MotivationResponse "Quote"
// @Router /motivation [get]
// @Security BearerAuth
func NewMotivationHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(MotivationResponse{Quote: "🖼 " + content.RandomQuote()})
	}
}

// NewEmergencyTipHandler returns an HTTP handler for the emergency help command.
// @Summary Emergency tip
// @Description Returns a coping tip. An unknown or missing category falls back to the general pool.
// @Tags content
// @Produce json
// @Param category query string false "Tip category: physical, mental, shower or distraction"
// @Success 200 {object} handlers.EmergencyTipResponse "Tip"
// @Router /emergency/tip [get]
// @Security BearerAuth
func NewEmergencyTipHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		category := content.TipCategory(r.URL.Query().Get("category"))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(EmergencyTipResponse{
			Category: string(category),
			Tip:      "🆘 " + content.RandomTip(category),
		})
	}
}
