package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"math"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	stripego "github.com/stripe/stripe-go/v80"
	"github.com/stripe/stripe-go/v80/webhook"

	"github.com/nernstsolution/nernst-web/internal/email"
	"github.com/nernstsolution/nernst-web/internal/refcode"
)

// CheckoutProvider is the slice of the Stripe API the payment handler
// needs; tests substitute a fake.
type CheckoutProvider interface {
	CreateCheckoutSession(params *stripego.CheckoutSessionParams) (*stripego.CheckoutSession, error)
	GetCheckoutSession(id string, params *stripego.CheckoutSessionParams) (*stripego.CheckoutSession, error)
}

type PaymentHandler struct {
	checkout      CheckoutProvider
	sender        email.Sender
	webhookSecret string
	baseURL       string
	contactEmail  string
}

func NewPaymentHandler(checkout CheckoutProvider, sender email.Sender, webhookSecret, baseURL, contactEmail string) *PaymentHandler {
	return &PaymentHandler{
		checkout:      checkout,
		sender:        sender,
		webhookSecret: webhookSecret,
		baseURL:       baseURL,
		contactEmail:  contactEmail,
	}
}

// CheckoutItem is one cart line as submitted by the client for checkout.
type CheckoutItem struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int64   `json:"quantity"`
	Image    string  `json:"image"`
}

type CreateCheckoutSessionRequest struct {
	Items      []CheckoutItem `json:"items"`
	SuccessURL string         `json:"successUrl"`
	CancelURL  string         `json:"cancelUrl"`
}

// CreateCheckoutSession builds Stripe line items from the cart and
// requests a hosted checkout session.
func (h *PaymentHandler) CreateCheckoutSession(c echo.Context) error {
	var req CreateCheckoutSessionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	if len(req.Items) == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "Cart is empty")
	}

	var lineItems []*stripego.CheckoutSessionLineItemParams
	for _, item := range req.Items {
		if item.Quantity <= 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "Invalid item quantity")
		}

		productData := &stripego.CheckoutSessionLineItemPriceDataProductDataParams{
			Name: stripego.String(item.Name),
			Metadata: map[string]string{
				"product_id": item.ID,
			},
		}
		if imageURL := h.absoluteImageURL(item.Image); imageURL != "" {
			productData.Images = []*string{stripego.String(imageURL)}
		}

		lineItems = append(lineItems, &stripego.CheckoutSessionLineItemParams{
			PriceData: &stripego.CheckoutSessionLineItemPriceDataParams{
				Currency:    stripego.String("usd"),
				UnitAmount:  stripego.Int64(int64(math.Round(item.Price * 100))),
				ProductData: productData,
			},
			Quantity: stripego.Int64(item.Quantity),
		})
	}

	params := &stripego.CheckoutSessionParams{
		Mode:               stripego.String(string(stripego.CheckoutSessionModePayment)),
		PaymentMethodTypes: []*string{stripego.String("card")},
		LineItems:          lineItems,
		SuccessURL:         stripego.String(req.SuccessURL),
		CancelURL:          stripego.String(req.CancelURL),
		ShippingAddressCollection: &stripego.CheckoutSessionShippingAddressCollectionParams{
			AllowedCountries: []*string{
				stripego.String("US"), stripego.String("CA"), stripego.String("GB"),
				stripego.String("AU"), stripego.String("DE"), stripego.String("FR"),
				stripego.String("JP"),
			},
		},
		BillingAddressCollection: stripego.String("required"),
	}
	params.Metadata = map[string]string{
		"order_type": "hardware_purchase",
	}

	session, err := h.checkout.CreateCheckoutSession(params)
	if err != nil {
		slog.Error("failed to create stripe checkout session", "error", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "Failed to create checkout session",
		})
	}

	return c.JSON(http.StatusOK, map[string]string{"sessionId": session.ID})
}

// HandleWebhook verifies and processes inbound Stripe events. Signature
// verification is the only authentication boundary in the system; a bad
// signature drops the request before any processing.
func (h *PaymentHandler) HandleWebhook(c echo.Context) error {
	payload, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Failed to read request body")
	}

	var event stripego.Event
	if h.webhookSecret != "" {
		signatureHeader := c.Request().Header.Get("Stripe-Signature")
		event, err = webhook.ConstructEvent(payload, signatureHeader, h.webhookSecret)
		if err != nil {
			slog.Error("webhook signature verification failed", "error", err)
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid signature"})
		}
	} else {
		// Development only: no signing secret configured, parse unverified
		if err := json.Unmarshal(payload, &event); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "Error parsing webhook JSON")
		}
	}

	switch event.Type {
	case "checkout.session.completed":
		var session stripego.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
			slog.Error("error parsing checkout session", "error", err)
			return echo.NewHTTPError(http.StatusBadRequest, "Error parsing webhook JSON")
		}

		if err := h.handleCheckoutCompleted(c.Request().Context(), session.ID); err != nil {
			slog.Error("error handling checkout completed", "error", err, "session_id", session.ID)
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Webhook handler failed"})
		}

	default:
		// Any other event type is accepted and ignored
		slog.Debug("unhandled webhook event type", "type", event.Type)
	}

	return c.JSON(http.StatusOK, map[string]bool{"received": true})
}

// handleCheckoutCompleted re-fetches the session with line items
// expanded, derives a transient order record, and fires the confirmation
// and notification emails best-effort.
func (h *PaymentHandler) handleCheckoutCompleted(ctx context.Context, sessionID string) error {
	params := &stripego.CheckoutSessionParams{}
	params.AddExpand("line_items")
	params.AddExpand("line_items.data.price.product")

	session, err := h.checkout.GetCheckoutSession(sessionID, params)
	if err != nil {
		return fmt.Errorf("failed to retrieve checkout session: %w", err)
	}

	order := deriveOrder(session)
	order.OrderNumber = refcode.NewOrderNumber()

	slog.Info("processing completed checkout session",
		"session_id", sessionID,
		"order_number", order.OrderNumber,
		"customer_email", order.CustomerEmail,
		"total", order.Total)

	confirmation, err := email.NewOrderEmail(order, email.AudienceCustomer, h.contactEmail)
	if err != nil {
		return fmt.Errorf("failed to build order confirmation: %w", err)
	}
	notification, err := email.NewOrderEmail(order, email.AudienceInternal, h.contactEmail)
	if err != nil {
		return fmt.Errorf("failed to build order notification: %w", err)
	}

	confirmationResult, notificationResult := email.SendPair(ctx, h.sender, confirmation, notification)

	if !confirmationResult.Success {
		slog.Error("failed to send customer confirmation email",
			"error", confirmationResult.Err, "order_number", order.OrderNumber)
	} else {
		slog.Info("customer confirmation email sent",
			"order_number", order.OrderNumber, "email_id", confirmationResult.ID)
	}

	if !notificationResult.Success {
		slog.Error("failed to send company notification email",
			"error", notificationResult.Err, "order_number", order.OrderNumber)
	} else {
		slog.Info("company notification email sent",
			"order_number", order.OrderNumber, "email_id", notificationResult.ID)
	}

	return nil
}

// deriveOrder shapes a Stripe session (with expanded line items) into the
// transient order record used by the email templates. Stripe amounts are
// minor units; the order carries dollars.
func deriveOrder(session *stripego.CheckoutSession) *email.OrderData {
	order := &email.OrderData{
		CustomerName: "Customer",
		Total:        float64(session.AmountTotal) / 100,
	}

	if session.CustomerDetails != nil {
		order.CustomerEmail = session.CustomerDetails.Email
		if session.CustomerDetails.Name != "" {
			order.CustomerName = session.CustomerDetails.Name
		}
	}

	if session.LineItems != nil {
		for _, item := range session.LineItems.Data {
			name := item.Description
			if item.Price != nil && item.Price.Product != nil && item.Price.Product.Name != "" {
				name = item.Price.Product.Name
			}
			if name == "" {
				name = "Product"
			}

			quantity := item.Quantity
			if quantity == 0 {
				quantity = 1
			}

			var unitPrice float64
			if item.Price != nil {
				unitPrice = float64(item.Price.UnitAmount) / 100
			}

			order.Items = append(order.Items, email.OrderItem{
				Name:     name,
				Quantity: quantity,
				Price:    unitPrice,
			})
		}
	}

	if session.ShippingDetails != nil && session.ShippingDetails.Address != nil {
		addr := session.ShippingDetails.Address
		order.ShippingAddress = &email.Address{
			Line1:      addr.Line1,
			Line2:      addr.Line2,
			City:       addr.City,
			State:      addr.State,
			PostalCode: addr.PostalCode,
			Country:    addr.Country,
		}
	}

	return order
}

func (h *PaymentHandler) absoluteImageURL(image string) string {
	if image == "" {
		return ""
	}
	if strings.HasPrefix(image, "http") {
		return image
	}
	return h.baseURL + image
}
