// File: services/notification/push.go
package notification

import (
	"context"

	"firebase.google.com/go/v4/messaging"
)

// SendResponse is the delivery result for a single device token.
type SendResponse struct {
	Success bool
}

// MulticastResult reports per-token delivery results. Responses is
// positionally aligned with the token list passed to SendMulticast so failed
// entries can be zipped back to the offending tokens.
type MulticastResult struct {
	FailureCount int
	Responses    []SendResponse
}

// PushSender is the multicast push transport consumed by dispatch. It is
// best-effort: the dispatcher never retries and treats transport errors the
// same as all tokens failing.
type PushSender interface {
	SendMulticast(ctx context.Context, body string, data map[string]string, tokens []string) (*MulticastResult, error)
}

// FCMSender sends multicast pushes through Firebase Cloud Messaging.
type FCMSender struct {
	client *messaging.Client
}

// NewFCMSender wraps an initialized FCM messaging client.
func NewFCMSender(client *messaging.Client) *FCMSender {
	return &FCMSender{client: client}
}

// SendMulticast delivers one message to all given tokens in a single FCM call.
func (s *FCMSender) SendMulticast(ctx context.Context, body string, data map[string]string, tokens []string) (*MulticastResult, error) {
	msg := &messaging.MulticastMessage{
		Tokens: tokens,
		Notification: &messaging.Notification{
			Body: body,
		},
		Data: data,
	}

	batch, err := s.client.SendEachForMulticast(ctx, msg)
	if err != nil {
		return nil, err
	}

	result := &MulticastResult{FailureCount: batch.FailureCount}
	for _, resp := range batch.Responses {
		result.Responses = append(result.Responses, SendResponse{Success: resp.Success})
	}
	return result, nil
}
