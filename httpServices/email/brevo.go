package emailapi

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"time"
)

const brevoBaseURL = "https://api.brevo.com"

// BrevoClient sends mail through the Brevo (Sendinblue) transactional API.
type BrevoClient struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

func NewBrevoClient(apiKey string, timeout time.Duration) *BrevoClient {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &BrevoClient{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL: brevoBaseURL,
		apiKey:  apiKey,
	}
}

type brevoAddress struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

type brevoSendRequest struct {
	Sender      brevoAddress   `json:"sender"`
	To          []brevoAddress `json:"to"`
	Subject     string         `json:"subject"`
	HTMLContent string         `json:"htmlContent"`
}

// SendMail posts one message to the Brevo transactional email endpoint.
func (c *BrevoClient) SendMail(msg Message) error {
	payload := brevoSendRequest{
		Sender:      brevoAddress{Email: msg.SenderEmail, Name: msg.SenderName},
		Subject:     msg.Subject,
		HTMLContent: msg.HTML,
	}
	for _, recipient := range msg.To {
		payload.To = append(payload.To, brevoAddress{Email: recipient})
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	httpReq, err := http.NewRequest(http.MethodPost, c.baseURL+"/v3/smtp/email", bytes.NewBuffer(body))
	if err != nil {
		return err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("api-key", c.apiKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return newAPIError("brevo", resp.StatusCode, respBody)
	}

	return nil
}
