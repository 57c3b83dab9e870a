package types

// SuccessEnvelope is the shape of every 2xx JSON body. Data and Message
// are mutually optional; delete and logout endpoints answer with only a
// message.
type SuccessEnvelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
}

// ErrorEnvelope is the shape of every non-2xx JSON body. Error carries a
// stable machine-readable code, Message the human-readable text.
type ErrorEnvelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error"`
}
