package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChatReplies(t *testing.T) {
	svc := &DefaultChatService{}

	tests := []struct {
		message string
		want    string
	}{
		{"How do I book a visit?", "You can book an appointment by clicking the 'Book Appointment' button in the menu."},
		{"What's the PRICE of a cleaning?", "Our consultation starts at ₹500. Check our Pricing page for more details."},
		{"what does a root canal cost", "Our consultation starts at ₹500. Check our Pricing page for more details."},
		{"Are you open on Sundays?", "We are open Mon-Sat 10AM to 9PM."},
		{"What time do you close?", "We are open Mon-Sat 10AM to 9PM."},
		{"Do you do implants?", "I'm a virtual assistant. Please call us at +91 98765 43210 for detailed queries."},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, svc.Reply(tt.message), "message: %q", tt.message)
	}
}
