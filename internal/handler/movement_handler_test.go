package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inventory-service/internal/model"
)

func TestRecordMovement(t *testing.T) {
	l := seedLedger(t)
	h := NewMovementHandler(l, testConfig())

	rec := doJSON(h.RecordMovement, http.MethodPost, "/api/movements",
		`{"item_id":1,"quantity":"4","note":"order 42","kind":"shipment","date":{"year":2025,"month":2,"day":14}}`, nil)
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp struct {
		Status string              `json:"status"`
		Item   model.InventoryItem `json:"item"`
	}
	decodeBody(t, rec, &resp)
	assert.Equal(t, "Recorded", resp.Status)
	assert.Equal(t, 6, resp.Item.QuantityOnHand)

	rec = doJSON(h.RecordMovement, http.MethodPost, "/api/movements",
		`{"item_id":1,"quantity":"10","kind":"receipt"}`, nil)
	require.Equal(t, http.StatusCreated, rec.Code)
	decodeBody(t, rec, &resp)
	assert.Equal(t, 16, resp.Item.QuantityOnHand)
}

func TestRecordMovement_InsufficientStock(t *testing.T) {
	l := seedLedger(t)
	h := NewMovementHandler(l, testConfig())

	rec := doJSON(h.RecordMovement, http.MethodPost, "/api/movements",
		`{"item_id":1,"quantity":"11","kind":"shipment"}`, nil)
	assert.Equal(t, http.StatusConflict, rec.Code)

	var resp map[string]string
	decodeBody(t, rec, &resp)
	assert.Equal(t, "Insufficient stock", resp["error"])

	item, _ := l.Item(1)
	assert.Equal(t, 10, item.QuantityOnHand)
	assert.Equal(t, 0, l.TransactionCount())
}

func TestRecordMovement_UnknownItem(t *testing.T) {
	h := NewMovementHandler(seedLedger(t), testConfig())

	rec := doJSON(h.RecordMovement, http.MethodPost, "/api/movements",
		`{"item_id":99,"quantity":"1","kind":"receipt"}`, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRecordMovement_InvalidKind(t *testing.T) {
	h := NewMovementHandler(seedLedger(t), testConfig())

	rec := doJSON(h.RecordMovement, http.MethodPost, "/api/movements",
		`{"item_id":1,"quantity":"1","kind":"teleport"}`, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRecordMovement_DefaultDate(t *testing.T) {
	l := seedLedger(t)
	cfg := testConfig()
	h := NewMovementHandler(l, cfg)

	rec := doJSON(h.RecordMovement, http.MethodPost, "/api/movements",
		`{"item_id":1,"quantity":"1","kind":"receipt"}`, nil)
	require.Equal(t, http.StatusCreated, rec.Code)

	txns := l.RecentTransactions(1)
	require.Len(t, txns, 1)
	assert.Equal(t, cfg.DefaultEntryDate, txns[0].Date)
}

func TestListTransactions(t *testing.T) {
	l := seedLedger(t)
	h := NewMovementHandler(l, testConfig())

	for _, note := range []string{"M1", "M2", "M3"} {
		require.NoError(t, l.RecordMovement(0, "1", note, model.MovementShipment,
			model.Date{Year: 2025, Month: 1, Day: 1}))
	}

	rec := doJSON(h.ListTransactions, http.MethodGet, "/api/transactions?limit=2", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var views []TransactionView
	decodeBody(t, rec, &views)
	require.Len(t, views, 2)
	assert.Equal(t, "M3", views[0].Note)
	assert.Equal(t, "M2", views[1].Note)
	assert.Equal(t, "Widget", views[0].ItemName)
	assert.Equal(t, "OUT", views[0].Direction)
	assert.Equal(t, "2025-01-01 [OUT] Widget x1 - M3", views[0].Summary)

	// Default limit applies when the query leaves it out.
	rec = doJSON(h.ListTransactions, http.MethodGet, "/api/transactions", "", nil)
	decodeBody(t, rec, &views)
	assert.Len(t, views, 3)

	rec = doJSON(h.ListTransactions, http.MethodGet, "/api/transactions?limit=-1", "", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(h.ListTransactions, http.MethodGet, "/api/transactions?limit=abc", "", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
