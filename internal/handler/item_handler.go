package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"inventory-service/internal/ledger"
	"inventory-service/pkg/logger"
	"inventory-service/prometheus"
)

// ItemRequest defines the structure for item creation requests. Quantity is
// carried as text and parsed leniently by the ledger: unparsable input means
// an initial quantity of zero, never a rejected item.
type ItemRequest struct {
	Name     string `json:"name"`
	SKU      string `json:"sku"`
	Unit     string `json:"unit"`
	Location string `json:"location"`
	Quantity string `json:"quantity"`
}

// ItemHandler serves the item catalog endpoints. The ledger is owned
// explicitly and passed in at construction; there is no package-level state.
type ItemHandler struct {
	ledger *ledger.Ledger
}

// NewItemHandler returns a handler backed by the given ledger.
func NewItemHandler(l *ledger.Ledger) *ItemHandler {
	return &ItemHandler{ledger: l}
}

// CreateItem handles adding a new item to the catalog
func (h *ItemHandler) CreateItem(c echo.Context) error {
	log := logger.FromContext(c)

	var req ItemRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Invalid request data",
		})
	}

	log.Info("Item creation request",
		zap.String("name", req.Name),
		zap.String("sku", req.SKU))

	id, err := h.ledger.AddItem(req.Name, req.SKU, req.Unit, req.Location, req.Quantity)
	if err != nil {
		if errors.Is(err, ledger.ErrMissingRequiredField) {
			log.Warn("Item creation rejected: missing required field",
				zap.String("name", req.Name),
				zap.String("sku", req.SKU))
			return c.JSON(http.StatusBadRequest, echo.Map{
				"error": "Name and SKU are required",
			})
		}
		log.Error("Failed to create item", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to create item",
		})
	}

	item, _ := h.ledger.Item(id)
	prometheus.RecordItemOperation("create")
	prometheus.UpdateItemStock(item.ID, item.Name, item.Location, item.QuantityOnHand)

	log.Info("Item created successfully",
		zap.Int("item_id", item.ID),
		zap.String("name", item.Name),
		zap.String("sku", item.SKU),
		zap.Int("quantity_on_hand", item.QuantityOnHand))
	return c.JSON(http.StatusCreated, echo.Map{
		"status": "Item added",
		"item":   item,
	})
}

// ListItems handles retrieving the catalog with optional filtering
func (h *ItemHandler) ListItems(c echo.Context) error {
	log := logger.FromContext(c)

	filter := c.QueryParam("filter")
	items := h.ledger.ListItems(filter)
	prometheus.RecordItemOperation("list")

	log.Info("Items retrieved successfully",
		zap.String("filter", filter),
		zap.Int("count", len(items)))
	return c.JSON(http.StatusOK, items)
}

// GetItem handles retrieving a single item by ID
func (h *ItemHandler) GetItem(c echo.Context) error {
	log := logger.FromContext(c)

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		log.Warn("Invalid item ID", zap.String("id", c.Param("id")))
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Invalid item ID",
		})
	}

	item, ok := h.ledger.Item(id)
	if !ok {
		log.Warn("Item not found", zap.Int("item_id", id))
		return c.JSON(http.StatusNotFound, echo.Map{
			"error": "Item not found",
		})
	}

	prometheus.RecordItemOperation("get")
	return c.JSON(http.StatusOK, item)
}
