package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"

	"hospital-portal-server/internal/utils"
)

// ChatbotHandler answers portal questions by keyword matching against
// canned responses. No generated text.
type ChatbotHandler struct{}

// NewChatbotHandler creates a new ChatbotHandler.
func NewChatbotHandler() *ChatbotHandler {
	return &ChatbotHandler{}
}

// chatbotResponses maps language -> topic -> response.
var chatbotResponses = map[string]map[string]string{
	"english": {
		"hello":       "Hello! How can I help you with your healthcare needs today?",
		"appointment": "To book an appointment, please contact our reception at +91-1234567890 or visit the appointments section.",
		"emergency":   "For emergencies, please call 108 immediately or visit our Emergency Department.",
		"default":     "Thank you for your message. Our healthcare team is here to help. Could you please provide more details?",
	},
	"hindi": {
		"hello":       "नमस्ते! मैं आपकी स्वास्थ्य सेवा में कैसे मदद कर सकता हूं?",
		"appointment": "अपॉइंटमेंट बुक करने के लिए, कृपया +91-1234567890 पर संपर्क करें।",
		"emergency":   "आपातकाल के लिए, कृपया तुरंत 108 पर कॉल करें।",
		"default":     "आपके संदेश के लिए धन्यवाद। कृपया अधिक विवरण प्रदान करें।",
	},
	"kannada": {
		"hello":       "ನಮಸ್ಕಾರ! ನಿಮ್ಮ ಆರೋಗ್ಯ ಅಗತ್ಯಗಳಿಗೆ ನಾನು ಹೇಗೆ ಸಹಾಯ ಮಾಡಬಹುದು?",
		"appointment": "ಅಪಾಯಿಂಟ್ಮೆಂಟ್ ಬುಕ್ ಮಾಡಲು +91-1234567890 ಗೆ ಸಂಪರ್ಕಿಸಿ।",
		"emergency":   "ತುರ್ತು ಪರಿಸ್ಥಿತಿಗಾಗಿ ತಕ್ಷಣ 108 ಗೆ ಕರೆ ಮಾಡಿ।",
		"default":     "ನಿಮ್ಮ ಸಂದೇಶಕ್ಕೆ ಧನ್ಯವಾದಗಳು। ದಯವಿಟ್ಟು ಹೆಚ್ಚಿನ ವಿವರಗಳನ್ನು ನೀಡಿ।",
	},
}

// chatbotKeywords maps trigger words to a topic, checked in order.
var chatbotKeywords = []struct {
	topic    string
	triggers []string
}{
	{"hello", []string{"hello", "hi", "hey"}},
	{"appointment", []string{"appointment", "book"}},
	{"emergency", []string{"emergency", "urgent"}},
}

// ChatRequest represents the request body for a chatbot message.
type ChatRequest struct {
	Message  string `json:"message" binding:"required"`
	Language string `json:"language"`
}

// Chat matches the message against known keywords and returns the canned
// response in the requested language, falling back to English.
func (h *ChatbotHandler) Chat(c *gin.Context) {
	var req ChatRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	responses, ok := chatbotResponses[strings.ToLower(req.Language)]
	if !ok {
		responses = chatbotResponses["english"]
	}

	messageLower := strings.ToLower(req.Message)
	reply := responses["default"]
matching:
	for _, kw := range chatbotKeywords {
		for _, trigger := range kw.triggers {
			if strings.Contains(messageLower, trigger) {
				reply = responses[kw.topic]
				break matching
			}
		}
	}

	utils.Success(c, "Chatbot response", gin.H{"response": reply})
}
