// File: services/notification/event.go
package notification

// EventKind is the category of user action that can trigger a notification.
// Reactions on posts and comments share the single persisted kind
// KindImpression and are told apart by Resource.TargetType.
type EventKind string

const (
	KindImpression         EventKind = "impression"
	KindComment            EventKind = "comment"
	KindFollow             EventKind = "follow"
	KindMessage            EventKind = "message"
	KindMention            EventKind = "mention"
	KindTag                EventKind = "tag"
	KindRepost             EventKind = "repost"
	KindShare              EventKind = "share"
	KindPost               EventKind = "post"
	KindConnectionRequest  EventKind = "connectionRequest"
	KindConnectionAccepted EventKind = "connectionAccepted"
	KindConnectionRejected EventKind = "connectionRejected"
)

// Target types for impression events.
const (
	TargetPost    = "Post"
	TargetComment = "Comment"
)

// Actor identifies the user who triggered the event. The name fields are used
// only for rendering the message text.
type Actor struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// Resource references the entity that was acted upon. ID is always required;
// the remaining fields depend on the event kind.
type Resource struct {
	ID           string `json:"id"`
	TargetType   string `json:"targetType,omitempty"`   // impression: Post or Comment
	TargetID     string `json:"targetId,omitempty"`     // impression: reacted-to entity
	PostID       string `json:"postId,omitempty"`       // comment: parent post
	ChatID       string `json:"chatId,omitempty"`       // message: chat the message belongs to
	ReactionKind string `json:"reactionKind,omitempty"` // impression: e.g. "like", "love"
}

// Event is the transient dispatch input. It is built by the feature that
// performed the primary write and consumed synchronously, never stored.
type Event struct {
	Actor       Actor     `json:"actor"`
	RecipientID string    `json:"recipientId"`
	Kind        EventKind `json:"kind"`
	Resource    Resource  `json:"resource"`
}
