package requests

type WhatsAppMessage struct {
	To      string `json:"to" validate:"required"`
	Message string `json:"message" validate:"required"`
}

type SMSMessage struct {
	Phone   string `json:"phone" validate:"required"`
	Message string `json:"message" validate:"required"`
}

type EmailPayload struct {
	To          string            `json:"to" validate:"required,email"`
	Subject     string            `json:"subject" validate:"required"`
	HTMLBody    string            `json:"html_body"`
	Attachments map[string]string `json:"attachments,omitempty"`
}
