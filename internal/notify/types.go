// Package notify delivers outbound notifications through a mail-sender
// webhook (an n8n flow in the deployed setup).
package notify

// ResetRequest is the payload posted to the webhook when a user asks for
// a password reset. The token is the plaintext one-time token; only its
// encrypted form is stored server-side.
type ResetRequest struct {
	Email      string `json:"email"`
	ResetToken string `json:"reset_token"`
}
