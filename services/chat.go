package services

import "strings"

// ChatGreeting is the assistant's opening message.
const ChatGreeting = "Hi! Welcome to Galaxy Dental Clinic. How can I help you today?"

// ChatService answers visitor questions with canned keyword responses.
// There is no conversational backend; the widget is decorative.
type ChatService interface {
	Reply(message string) string
}

type DefaultChatService struct{}

func (s *DefaultChatService) Reply(message string) string {
	msg := strings.ToLower(message)
	switch {
	case strings.Contains(msg, "book"):
		return "You can book an appointment by clicking the 'Book Appointment' button in the menu."
	case strings.Contains(msg, "price"), strings.Contains(msg, "cost"):
		return "Our consultation starts at ₹500. Check our Pricing page for more details."
	case strings.Contains(msg, "time"), strings.Contains(msg, "open"):
		return "We are open Mon-Sat 10AM to 9PM."
	default:
		return "I'm a virtual assistant. Please call us at +91 98765 43210 for detailed queries."
	}
}
