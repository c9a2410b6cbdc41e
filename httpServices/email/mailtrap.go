package emailapi

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"time"
)

const mailtrapBaseURL = "https://send.api.mailtrap.io"

// MailtrapClient sends mail through the Mailtrap sending API.
type MailtrapClient struct {
	httpClient *http.Client
	baseURL    string
	token      string
}

func NewMailtrapClient(token string, timeout time.Duration) *MailtrapClient {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &MailtrapClient{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL: mailtrapBaseURL,
		token:   token,
	}
}

type mailtrapAddress struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

type mailtrapSendRequest struct {
	From    mailtrapAddress   `json:"from"`
	To      []mailtrapAddress `json:"to"`
	Subject string            `json:"subject"`
	HTML    string            `json:"html"`
}

// SendMail posts one message to the Mailtrap send endpoint.
func (c *MailtrapClient) SendMail(msg Message) error {
	payload := mailtrapSendRequest{
		From:    mailtrapAddress{Email: msg.SenderEmail, Name: msg.SenderName},
		Subject: msg.Subject,
		HTML:    msg.HTML,
	}
	for _, recipient := range msg.To {
		payload.To = append(payload.To, mailtrapAddress{Email: recipient})
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	httpReq, err := http.NewRequest(http.MethodPost, c.baseURL+"/api/send", bytes.NewBuffer(body))
	if err != nil {
		return err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return newAPIError("mailtrap", resp.StatusCode, respBody)
	}

	return nil
}
