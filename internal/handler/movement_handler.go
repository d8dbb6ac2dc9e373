package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"inventory-service/internal/ledger"
	"inventory-service/internal/model"
	"inventory-service/pkg/config"
	"inventory-service/pkg/logger"
	"inventory-service/prometheus"
)

// MovementRequest defines the structure for stock movement requests. As with
// item creation, quantity arrives as text and falls back to zero when it
// does not parse; a zero-quantity movement is still recorded. The date is
// whatever the caller chose and is not validated against a calendar; when
// omitted it defaults to the configured entry date.
type MovementRequest struct {
	ItemID   int                `json:"item_id"`
	Quantity string             `json:"quantity"`
	Note     string             `json:"note"`
	Kind     model.MovementKind `json:"kind"`
	Date     model.Date         `json:"date"`
}

// TransactionView is one rendered line of the transaction log: the raw
// transaction joined with the item name and a direction code.
type TransactionView struct {
	Date      model.Date         `json:"date"`
	ItemID    int                `json:"item_id"`
	ItemName  string             `json:"item_name"`
	Quantity  int                `json:"quantity"`
	Note      string             `json:"note"`
	Kind      model.MovementKind `json:"kind"`
	Direction string             `json:"direction"`
	Summary   string             `json:"summary"`
}

// MovementHandler serves the stock movement and transaction log endpoints.
type MovementHandler struct {
	ledger *ledger.Ledger
	cfg    config.LedgerConfig
}

// NewMovementHandler returns a handler backed by the given ledger.
func NewMovementHandler(l *ledger.Ledger, cfg config.LedgerConfig) *MovementHandler {
	return &MovementHandler{ledger: l, cfg: cfg}
}

// RecordMovement handles recording a stock receipt or shipment
func (h *MovementHandler) RecordMovement(c echo.Context) error {
	log := logger.FromContext(c)

	var req MovementRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Invalid request data",
		})
	}

	if !req.Kind.Valid() {
		log.Warn("Unknown movement kind", zap.String("kind", string(req.Kind)))
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Movement kind must be receipt or shipment",
		})
	}

	date := req.Date
	if date.IsZero() {
		date = h.cfg.DefaultEntryDate
	}

	log.Info("Movement request",
		zap.Int("item_id", req.ItemID),
		zap.String("kind", string(req.Kind)),
		zap.String("quantity", req.Quantity),
		zap.String("date", date.String()))

	index, ok := h.ledger.IndexOf(req.ItemID)
	if !ok {
		log.Warn("Item not found for movement", zap.Int("item_id", req.ItemID))
		return c.JSON(http.StatusNotFound, echo.Map{
			"error": "Item not found",
		})
	}

	if err := h.ledger.RecordMovement(index, req.Quantity, req.Note, req.Kind, date); err != nil {
		if errors.Is(err, ledger.ErrInsufficientStock) {
			prometheus.RecordMovementOperation(string(req.Kind), "rejected")
			log.Warn("Movement rejected: insufficient stock",
				zap.Int("item_id", req.ItemID),
				zap.String("quantity", req.Quantity))
			return c.JSON(http.StatusConflict, echo.Map{
				"error": "Insufficient stock",
			})
		}
		log.Error("Failed to record movement",
			zap.Int("item_id", req.ItemID),
			zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to record movement",
		})
	}

	item, _ := h.ledger.Item(req.ItemID)
	prometheus.RecordMovementOperation(string(req.Kind), "recorded")
	prometheus.UpdateItemStock(item.ID, item.Name, item.Location, item.QuantityOnHand)

	log.Info("Movement recorded successfully",
		zap.Int("item_id", item.ID),
		zap.String("kind", string(req.Kind)),
		zap.Int("quantity_on_hand", item.QuantityOnHand))
	return c.JSON(http.StatusCreated, echo.Map{
		"status": "Recorded",
		"item":   item,
	})
}

// ListTransactions handles retrieving the transaction log, most recent first
func (h *MovementHandler) ListTransactions(c echo.Context) error {
	log := logger.FromContext(c)

	limit := h.cfg.RecentLimit
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			log.Warn("Invalid limit parameter", zap.String("limit", raw))
			return c.JSON(http.StatusBadRequest, echo.Map{
				"error": "Invalid limit parameter",
			})
		}
		limit = parsed
	}

	transactions := h.ledger.RecentTransactions(limit)
	views := make([]TransactionView, 0, len(transactions))
	for _, txn := range transactions {
		name := "?"
		if item, ok := h.ledger.Item(txn.ItemID); ok {
			name = item.Name
		}
		views = append(views, TransactionView{
			Date:      txn.Date,
			ItemID:    txn.ItemID,
			ItemName:  name,
			Quantity:  txn.Quantity,
			Note:      txn.Note,
			Kind:      txn.Kind,
			Direction: txn.Kind.Direction(),
			Summary: fmt.Sprintf("%s [%s] %s x%d - %s",
				txn.Date, txn.Kind.Direction(), name, txn.Quantity, txn.Note),
		})
	}

	log.Info("Transactions retrieved successfully",
		zap.Int("limit", limit),
		zap.Int("count", len(views)))
	return c.JSON(http.StatusOK, views)
}
