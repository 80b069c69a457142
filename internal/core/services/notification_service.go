package services

import (
	"fmt"
	"sync"
	"time"

	"fastpay-network/internal/core/domain"

	"github.com/google/uuid"
)

// maxNotifications caps the in-memory feed; older notices fall off the end
const maxNotifications = 200

// NotificationService keeps the in-app audit feed. Notices live in memory
// only and are deliberately not part of the persisted snapshot.
type NotificationService struct {
	mu    sync.Mutex
	items []domain.Notification
}

// NewNotificationService creates a new notification service
func NewNotificationService() *NotificationService {
	return &NotificationService{}
}

// Push adds a notice to the front of the feed
func (s *NotificationService) Push(title string, notifyType domain.NotificationType, format string, args ...interface{}) {
	if s == nil {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	n := domain.Notification{
		ID:        uuid.NewString(),
		Title:     title,
		Message:   fmt.Sprintf(format, args...),
		Type:      notifyType,
		Timestamp: time.Now(),
	}
	s.items = append([]domain.Notification{n}, s.items...)
	if len(s.items) > maxNotifications {
		s.items = s.items[:maxNotifications]
	}
}

// List returns the feed, newest first
func (s *NotificationService) List() []domain.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Notification, len(s.items))
	copy(out, s.items)
	return out
}

// MarkAllRead marks every notice as read
func (s *NotificationService) MarkAllRead() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		s.items[i].IsRead = true
	}
}
