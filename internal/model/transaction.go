package model

// MovementKind distinguishes stock arriving from stock leaving.
type MovementKind string

const (
	MovementReceipt  MovementKind = "receipt"
	MovementShipment MovementKind = "shipment"
)

// Valid reports whether k is one of the two known movement kinds.
func (k MovementKind) Valid() bool {
	return k == MovementReceipt || k == MovementShipment
}

// Direction returns the ledger-line code for the kind: "IN" for receipts,
// "OUT" for shipments.
func (k MovementKind) Direction() string {
	if k == MovementReceipt {
		return "IN"
	}
	return "OUT"
}

// Transaction is one line of the append-only movement log. Quantity holds the
// magnitude as entered; the sign of the stock change is implied by Kind.
type Transaction struct {
	Date     Date         `json:"date"`
	ItemID   int          `json:"item_id"`
	Quantity int          `json:"quantity"`
	Note     string       `json:"note"`
	Kind     MovementKind `json:"kind"`
}
