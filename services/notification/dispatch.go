// File: services/notification/dispatch.go
package notification

import (
	"context"
	"time"

	commentRepo "linkup/database/repository/comment"
	notifRepo "linkup/database/repository/notification"
	userRepo "linkup/database/repository/user"
	"linkup/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SkipReason explains why a dispatch stopped before pushing.
type SkipReason string

const (
	SkipSelfNotification SkipReason = "self_notification"
	SkipRecipientMissing SkipReason = "recipient_not_found"
	SkipNoTemplate       SkipReason = "no_template"
	SkipCommentMissing   SkipReason = "comment_not_found"
	SkipPersistFailed    SkipReason = "persist_failed"
	SkipPaused           SkipReason = "notifications_paused"
	SkipNoTokens         SkipReason = "no_push_tokens"
	SkipPushFailed       SkipReason = "push_failed"
	SkipInternal         SkipReason = "internal_error"
)

// Result describes what a dispatch actually did. It is informational only:
// callers fire and forget, and no failure inside Dispatch is ever surfaced as
// an error.
type Result struct {
	Persisted    bool       `json:"persisted"`
	Pushed       bool       `json:"pushed"`
	Skip         SkipReason `json:"skip,omitempty"`
	FailedTokens []string   `json:"failedTokens,omitempty"`
}

// NotificationService is the single entry point sibling features call after
// their primary write succeeds.
type NotificationService interface {
	Dispatch(ctx context.Context, evt Event) Result
}

// DefaultNotificationService is the production implementation. All
// collaborators are injected so tests can substitute in-memory fakes.
type DefaultNotificationService struct {
	Users    userRepo.UserRepository
	Comments commentRepo.CommentRepository
	Records  notifRepo.NotificationRepository
	Push     PushSender
	// Now overrides the clock; nil means time.Now.
	Now func() time.Time
}

func (s *DefaultNotificationService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// Dispatch persists and best-effort pushes one notification event.
//
// Notification delivery is a side effect of an action that already succeeded,
// so nothing here may fail the caller: precondition failures drop the event
// silently, and store or transport failures after that are logged and
// swallowed. Persistence always happens before any push attempt, and a paused
// or token-less recipient still gets the in-app record.
func (s *DefaultNotificationService) Dispatch(ctx context.Context, evt Event) (res Result) {
	logger := zap.L()
	defer func() {
		if r := recover(); r != nil {
			logger.Error("notification dispatch panicked",
				zap.Any("error", r),
				zap.String("kind", string(evt.Kind)),
				zap.String("recipient", evt.RecipientID))
			res.Skip = SkipInternal
		}
	}()

	if evt.Actor.ID == evt.RecipientID {
		res.Skip = SkipSelfNotification
		return
	}

	recipient, err := s.Users.GetByID(evt.RecipientID)
	if err != nil {
		logger.Error("failed to load notification recipient",
			zap.String("recipient", evt.RecipientID), zap.Error(err))
		res.Skip = SkipRecipientMissing
		return
	}
	if recipient == nil {
		// Stale ID from an already-deleted account.
		logger.Warn("notification recipient not found",
			zap.String("recipient", evt.RecipientID))
		res.Skip = SkipRecipientMissing
		return
	}

	body, ok := renderMessage(evt)
	if !ok {
		logger.Warn("no message template for notification event",
			zap.String("kind", string(evt.Kind)),
			zap.String("targetType", evt.Resource.TargetType))
		res.Skip = SkipNoTemplate
		return
	}

	record := models.Notification{
		ID:         uuid.NewString(),
		From:       evt.Actor.ID,
		To:         evt.RecipientID,
		Subject:    string(evt.Kind),
		Content:    body,
		ResourceID: evt.Resource.ID,
	}

	switch {
	case evt.Kind == KindImpression && evt.Resource.TargetType == TargetPost:
		record.RelatedPostID = evt.Resource.TargetID
	case evt.Kind == KindImpression && evt.Resource.TargetType == TargetComment:
		comment, err := s.Comments.GetByID(evt.Resource.TargetID)
		if err != nil {
			logger.Error("failed to resolve reacted-to comment",
				zap.String("comment", evt.Resource.TargetID), zap.Error(err))
			res.Skip = SkipCommentMissing
			return
		}
		if comment == nil {
			// A comment notification with no resolvable parent post is
			// invalid; nothing is persisted.
			logger.Warn("reacted-to comment not found",
				zap.String("comment", evt.Resource.TargetID))
			res.Skip = SkipCommentMissing
			return
		}
		record.RelatedPostID = comment.PostID
		record.RelatedCommentID = comment.ID
	case evt.Kind == KindComment:
		record.RelatedPostID = evt.Resource.PostID
	case evt.Kind == KindMessage:
		record.RelatedChatID = evt.Resource.ChatID
	}

	if err := s.Records.Create(&record); err != nil {
		logger.Error("failed to persist notification",
			zap.String("recipient", evt.RecipientID),
			zap.String("subject", record.Subject), zap.Error(err))
		res.Skip = SkipPersistFailed
		return
	}
	res.Persisted = true

	if pause := recipient.NotificationPauseUntil; pause != nil {
		if pause.After(s.now()) {
			res.Skip = SkipPaused
			return
		}
		// Lazy expiry: clear the stale flag on access. A failed clear does
		// not block this delivery; the next dispatch retries the write.
		if err := s.Users.SetPauseUntil(recipient.ID, nil); err != nil {
			logger.Warn("failed to clear expired notification pause",
				zap.String("recipient", recipient.ID), zap.Error(err))
		}
	}

	if len(recipient.PushTokens) == 0 {
		logger.Debug("recipient has no push tokens",
			zap.String("recipient", recipient.ID))
		res.Skip = SkipNoTokens
		return
	}

	data := map[string]string{
		"subject":    string(evt.Kind),
		"resourceId": evt.Resource.ID,
	}
	sent, err := s.Push.SendMulticast(ctx, body, data, recipient.PushTokens)
	if err != nil {
		logger.Error("push delivery failed",
			zap.String("recipient", recipient.ID), zap.Error(err))
		res.Skip = SkipPushFailed
		return
	}

	if sent.FailureCount > 0 {
		for i, resp := range sent.Responses {
			if !resp.Success && i < len(recipient.PushTokens) {
				res.FailedTokens = append(res.FailedTokens, recipient.PushTokens[i])
			}
		}
		// Failed tokens are logged for token-pruning tooling; a partial
		// failure never fails the dispatch.
		logger.Warn("push delivery failed for some tokens",
			zap.String("recipient", recipient.ID),
			zap.Int("failureCount", sent.FailureCount),
			zap.Strings("failedTokens", res.FailedTokens))
	}
	res.Pushed = true
	return
}
