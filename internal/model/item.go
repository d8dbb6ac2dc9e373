package model

// InventoryItem represents one entry in the item catalog. IDs are assigned
// sequentially by the ledger and are never reused or mutated; the only field
// that changes after creation is QuantityOnHand.
type InventoryItem struct {
	ID             int    `json:"id"`
	Name           string `json:"name"`
	SKU            string `json:"sku"`
	Unit           string `json:"unit"`
	Location       string `json:"location"`
	QuantityOnHand int    `json:"quantity_on_hand"`
}
