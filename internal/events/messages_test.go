package events

import (
	"testing"
	"time"
)

func TestPurchaseSyncMessageRoundTrip(t *testing.T) {
	msg := NewPurchaseSyncMessage("id-1", "2024-03-05", "Priya", 54.5, "Capsules + filters")
	if msg.Timestamp.IsZero() {
		t.Error("Timestamp not set")
	}

	body, err := msg.ToJSON()
	if err != nil {
		t.Fatalf("ToJSON: %v", err)
	}
	got, err := PurchaseSyncMessageFromJSON(body)
	if err != nil {
		t.Fatalf("FromJSON: %v", err)
	}
	if got.ID != "id-1" || got.Buyer != "Priya" || got.Amount != 54.5 || got.Notes != "Capsules + filters" {
		t.Errorf("round trip mismatch: %+v", got)
	}
	if !got.Timestamp.Truncate(time.Millisecond).Equal(msg.Timestamp.Truncate(time.Millisecond)) {
		t.Errorf("timestamp drifted: %v vs %v", got.Timestamp, msg.Timestamp)
	}
}

func TestPurchaseSyncMessageFromJSONInvalid(t *testing.T) {
	if _, err := PurchaseSyncMessageFromJSON([]byte("{broken")); err == nil {
		t.Fatal("expected error for malformed payload")
	}
}
