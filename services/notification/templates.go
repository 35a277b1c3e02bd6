// File: services/notification/templates.go
package notification

import (
	"fmt"
	"strings"
)

// renderMessage resolves the human-readable body for an event. It fails
// closed: an unknown kind, a missing actor name, or a malformed impression
// resource yields ok=false, and the caller must drop the event without
// persisting or pushing anything.
func renderMessage(evt Event) (string, bool) {
	first := strings.TrimSpace(evt.Actor.FirstName)
	last := strings.TrimSpace(evt.Actor.LastName)
	if first == "" || last == "" {
		return "", false
	}
	name := first + " " + last

	switch evt.Kind {
	case KindImpression:
		if evt.Resource.ReactionKind == "" {
			return "", false
		}
		switch evt.Resource.TargetType {
		case TargetPost:
			return fmt.Sprintf("%s reacted with %s to your post", name, evt.Resource.ReactionKind), true
		case TargetComment:
			return fmt.Sprintf("%s reacted with %s to your comment", name, evt.Resource.ReactionKind), true
		default:
			return "", false
		}
	case KindComment:
		return name + " commented on your post", true
	case KindFollow:
		return name + " started following you", true
	case KindMessage:
		return name + " sent you a message", true
	case KindMention:
		return name + " mentioned you in a post", true
	case KindTag:
		return name + " tagged you in a post", true
	case KindRepost:
		return name + " reposted your post", true
	case KindShare:
		return name + " shared your post", true
	case KindPost:
		return name + " published a new post", true
	case KindConnectionRequest:
		return name + " sent you a connection request", true
	case KindConnectionAccepted:
		return name + " accepted your connection request", true
	case KindConnectionRejected:
		return name + " declined your connection request", true
	default:
		return "", false
	}
}
