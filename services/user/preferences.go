// File: services/user/preferences.go
package user

import (
	"fmt"
	"time"
)

// Pause duration bounds. Pausing is a low-frequency, single-user action;
// anything beyond a week is almost certainly a client bug.
const (
	minPause = time.Minute
	maxPause = 7 * 24 * time.Hour
)

// PauseNotifications sets the pause expiry d from now.
func (s *DefaultUserService) PauseNotifications(userID string, d time.Duration) (time.Time, error) {
	if d < minPause || d > maxPause {
		return time.Time{}, fmt.Errorf("pause duration must be between %s and %s", minPause, maxPause)
	}

	until := time.Now().Add(d)
	if err := s.Repo.SetPauseUntil(userID, &until); err != nil {
		return time.Time{}, fmt.Errorf("failed to pause notifications: %w", err)
	}
	return until, nil
}

// ResumeNotifications clears any active pause.
func (s *DefaultUserService) ResumeNotifications(userID string) error {
	if err := s.Repo.SetPauseUntil(userID, nil); err != nil {
		return fmt.Errorf("failed to resume notifications: %w", err)
	}
	return nil
}

// RegisterPushToken adds a device token for the user.
func (s *DefaultUserService) RegisterPushToken(userID, token string) error {
	if token == "" {
		return fmt.Errorf("push token must not be empty")
	}
	if err := s.Repo.AddPushToken(userID, token); err != nil {
		return fmt.Errorf("failed to register push token: %w", err)
	}
	return nil
}

// UnregisterPushToken removes a device token for the user.
func (s *DefaultUserService) UnregisterPushToken(userID, token string) error {
	if token == "" {
		return fmt.Errorf("push token must not be empty")
	}
	if err := s.Repo.RemovePushToken(userID, token); err != nil {
		return fmt.Errorf("failed to unregister push token: %w", err)
	}
	return nil
}
