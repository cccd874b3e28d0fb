package handlers

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/nernstsolution/nernst-web/internal/cart"
	"github.com/nernstsolution/nernst-web/internal/catalog"
)

// CartHandler serves the session cart API. Carts live in memory only,
// scoped to a uuid session cookie; nothing is persisted.
type CartHandler struct {
	store *cart.Store
}

func NewCartHandler(store *cart.Store) *CartHandler {
	return &CartHandler{store: store}
}

// HandleGetCart returns the current cart contents with totals.
func (h *CartHandler) HandleGetCart(c echo.Context) error {
	sessionID := getOrCreateSessionID(c)
	return h.cartJSON(c, h.store.Items(sessionID))
}

// HandleAddToCart adds an item to the session cart. Quote-only catalog
// products are rejected; they go through the quote form instead.
func (h *CartHandler) HandleAddToCart(c echo.Context) error {
	var item cart.Item
	if err := c.Bind(&item); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	if item.ID == "" || item.Quantity <= 0 || item.Price < 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "Missing or invalid id, quantity, or price")
	}

	// When the item matches a catalog product, the catalog is authoritative
	if product, ok := catalog.Get(item.ID); ok {
		if product.TransactionCategory == catalog.TransactionQuote {
			return echo.NewHTTPError(http.StatusBadRequest, "This product is available by quote only")
		}
		item.Name = product.Name
		item.Price = cart.ParsePrice(product.Price)
		if len(product.Images) > 0 {
			item.Image = product.Images[0]
		}
	}

	sessionID := getOrCreateSessionID(c)
	return h.cartJSON(c, h.store.Add(sessionID, item))
}

// HandleUpdateCartItem sets the quantity of a cart line; zero removes it.
func (h *CartHandler) HandleUpdateCartItem(c echo.Context) error {
	var req struct {
		Quantity int64 `json:"quantity"`
	}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	sessionID := getOrCreateSessionID(c)
	items, found := h.store.UpdateQuantity(sessionID, c.Param("id"), req.Quantity)
	if !found {
		return echo.NewHTTPError(http.StatusNotFound, "Item not in cart")
	}

	return h.cartJSON(c, items)
}

// HandleRemoveFromCart deletes a cart line.
func (h *CartHandler) HandleRemoveFromCart(c echo.Context) error {
	sessionID := getOrCreateSessionID(c)
	return h.cartJSON(c, h.store.Remove(sessionID, c.Param("id")))
}

// HandleClearCart empties the session cart. The checkout success page
// calls this after Stripe redirects back.
func (h *CartHandler) HandleClearCart(c echo.Context) error {
	sessionID := getOrCreateSessionID(c)
	h.store.Clear(sessionID)
	return h.cartJSON(c, nil)
}

func (h *CartHandler) cartJSON(c echo.Context, items []cart.Item) error {
	if items == nil {
		items = []cart.Item{}
	}
	return c.JSON(http.StatusOK, map[string]any{
		"items":     items,
		"total":     cart.Total(items),
		"itemCount": cart.ItemCount(items),
	})
}

// getOrCreateSessionID gets the existing session cookie or sets a new one
func getOrCreateSessionID(c echo.Context) string {
	cookie, err := c.Cookie("session_id")
	if err == nil && cookie.Value != "" {
		return cookie.Value
	}

	sessionID := uuid.New().String()
	c.SetCookie(&http.Cookie{
		Name:     "session_id",
		Value:    sessionID,
		Path:     "/",
		MaxAge:   86400 * 30, // 30 days
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	return sessionID
}
