package notification

import (
	"strings"
	"testing"
)

func TestRenderMessageAllKinds(t *testing.T) {
	actor := Actor{ID: "u1", FirstName: "John", LastName: "Doe"}

	kinds := []EventKind{
		KindComment, KindFollow, KindMessage, KindMention, KindTag,
		KindRepost, KindShare, KindPost, KindConnectionRequest,
		KindConnectionAccepted, KindConnectionRejected,
	}
	for _, kind := range kinds {
		body, ok := renderMessage(Event{Actor: actor, Kind: kind})
		if !ok {
			t.Errorf("kind %s: expected a message", kind)
			continue
		}
		if body == "" {
			t.Errorf("kind %s: empty body", kind)
		}
		if !strings.HasPrefix(body, "John Doe ") {
			t.Errorf("kind %s: body %q does not start with actor name", kind, body)
		}
	}
}

func TestRenderMessageImpression(t *testing.T) {
	actor := Actor{ID: "u1", FirstName: "John", LastName: "Doe"}

	tests := []struct {
		name     string
		resource Resource
		want     string
		wantOK   bool
	}{
		{
			name:     "post reaction",
			resource: Resource{TargetType: TargetPost, ReactionKind: "like"},
			want:     "John Doe reacted with like to your post",
			wantOK:   true,
		},
		{
			name:     "comment reaction",
			resource: Resource{TargetType: TargetComment, ReactionKind: "love"},
			want:     "John Doe reacted with love to your comment",
			wantOK:   true,
		},
		{
			name:     "unknown target type",
			resource: Resource{TargetType: "Story", ReactionKind: "like"},
			wantOK:   false,
		},
		{
			name:     "missing reaction kind",
			resource: Resource{TargetType: TargetPost},
			wantOK:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body, ok := renderMessage(Event{Actor: actor, Kind: KindImpression, Resource: tt.resource})
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if tt.wantOK && body != tt.want {
				t.Errorf("body = %q, want %q", body, tt.want)
			}
		})
	}
}

func TestRenderMessageFailsClosed(t *testing.T) {
	tests := []struct {
		name string
		evt  Event
	}{
		{
			name: "unknown kind",
			evt:  Event{Actor: Actor{FirstName: "John", LastName: "Doe"}, Kind: EventKind("birthday")},
		},
		{
			name: "missing first name",
			evt:  Event{Actor: Actor{LastName: "Doe"}, Kind: KindFollow},
		},
		{
			name: "missing last name",
			evt:  Event{Actor: Actor{FirstName: "John"}, Kind: KindFollow},
		},
		{
			name: "whitespace name",
			evt:  Event{Actor: Actor{FirstName: "  ", LastName: "Doe"}, Kind: KindFollow},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if body, ok := renderMessage(tt.evt); ok {
				t.Errorf("expected no message, got %q", body)
			}
		})
	}
}
