package memory

import (
	"context"
	"testing"

	"github.com/JakeFAU/ufc-athletes/internal/service"
)

func TestPublisherStoresEvents(t *testing.T) {
	t.Parallel()

	pub := New()
	if err := pub.Publish(context.Background(), service.ScrapeEvent{ID: "1", Slug: "jon-jones"}); err != nil {
		t.Fatalf("Publish() error = %v", err)
	}
	if err := pub.Publish(context.Background(), service.ScrapeEvent{ID: "2", Slug: "amanda-nunes"}); err != nil {
		t.Fatalf("Publish() error = %v", err)
	}

	events := pub.Events()
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}
	if events[0].Slug != "jon-jones" || events[1].Slug != "amanda-nunes" {
		t.Fatalf("events not recorded in order: %+v", events)
	}

	events[0].Slug = "modified"
	if pub.Events()[0].Slug == "modified" {
		t.Fatal("expected Events() to return a copy")
	}
}
