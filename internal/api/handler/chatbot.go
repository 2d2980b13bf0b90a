package handler

import (
	"encoding/json"
	"net/http"

	"github.com/Dharamchandpatle/RefineryIQ/internal/api/response"
	"github.com/Dharamchandpatle/RefineryIQ/internal/domain"
	"github.com/Dharamchandpatle/RefineryIQ/internal/service"
)

// ChatbotHandler serves the chatbot endpoint.
type ChatbotHandler struct {
	chatService *service.ChatService
}

// NewChatbotHandler creates a new chatbot handler
func NewChatbotHandler(chatService *service.ChatService) *ChatbotHandler {
	return &ChatbotHandler{chatService: chatService}
}

// Chat produces a reply for one exchange and logs it.
func (h *ChatbotHandler) Chat(w http.ResponseWriter, r *http.Request) {
	var input domain.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}

	if err := validate.Struct(input); err != nil {
		response.BadRequest(w, validationMessages(err))
		return
	}

	response.OK(w, h.chatService.Reply(r.Context(), input))
}
