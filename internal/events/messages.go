package events

import (
	"encoding/json"
	"time"
)

// PurchaseSyncMessage carries a recorded purchase to the spreadsheet
// mirror worker. It is self-contained: the worker never reaches back into
// the server's state.
type PurchaseSyncMessage struct {
	ID        string    `json:"id"`
	Date      string    `json:"date"`
	Buyer     string    `json:"buyer"`
	Amount    float64   `json:"amount"`
	Notes     string    `json:"notes"`
	Timestamp time.Time `json:"timestamp"`
}

// NewPurchaseSyncMessage builds a sync message for a purchase entry.
func NewPurchaseSyncMessage(id, date, buyer string, amount float64, notes string) *PurchaseSyncMessage {
	return &PurchaseSyncMessage{
		ID:        id,
		Date:      date,
		Buyer:     buyer,
		Amount:    amount,
		Notes:     notes,
		Timestamp: time.Now(),
	}
}

// ToJSON converts the message to JSON bytes.
func (m *PurchaseSyncMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

// PurchaseSyncMessageFromJSON creates a message from JSON bytes.
func PurchaseSyncMessageFromJSON(data []byte) (*PurchaseSyncMessage, error) {
	var msg PurchaseSyncMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
