package handlers

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/nernstsolution/nernst-web/internal/email"
	"github.com/nernstsolution/nernst-web/internal/refcode"
)

// LeadHandler serves the two lead-generation flows: contact inquiries
// and quote requests. Both generate a reference code and send a customer
// confirmation plus an internal notification.
type LeadHandler struct {
	sender       email.Sender
	contactEmail string
}

func NewLeadHandler(sender email.Sender, contactEmail string) *LeadHandler {
	return &LeadHandler{
		sender:       sender,
		contactEmail: contactEmail,
	}
}

// HandleContactMessage processes a contact form submission.
func (h *LeadHandler) HandleContactMessage(c echo.Context) error {
	var data email.ContactFormData
	if err := c.Bind(&data); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	if !h.sender.Configured() {
		slog.Error("RESEND_API_KEY environment variable is not set")
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "Email service not configured",
		})
	}

	data.InquiryReference = refcode.NewInquiryReference()
	slog.Info("processing contact inquiry", "reference", data.InquiryReference)

	confirmation, err := email.NewContactEmail(&data, email.AudienceCustomer, h.contactEmail)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to build email")
	}
	notification, err := email.NewContactEmail(&data, email.AudienceInternal, h.contactEmail)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to build email")
	}

	confirmationResult, notificationResult := email.SendPair(c.Request().Context(), h.sender, confirmation, notification)

	if !confirmationResult.Success {
		// Best effort: the customer ack failing does not fail the request
		slog.Error("failed to send customer confirmation email",
			"error", confirmationResult.Err, "reference", data.InquiryReference)
	}

	if !notificationResult.Success {
		slog.Error("failed to send company notification email",
			"error", notificationResult.Err, "reference", data.InquiryReference)
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error":   "Failed to send contact message",
			"details": errDetails(notificationResult),
		})
	}

	slog.Info("contact inquiry processed", "reference", data.InquiryReference)

	return c.JSON(http.StatusOK, map[string]any{
		"success":          true,
		"message":          "Contact message sent successfully",
		"inquiryReference": data.InquiryReference,
		"customerEmailId":  confirmationResult.ID,
		"companyEmailId":   notificationResult.ID,
	})
}

// HandleQuoteRequest processes a quote request form submission.
func (h *LeadHandler) HandleQuoteRequest(c echo.Context) error {
	var data email.QuoteRequestData
	if err := c.Bind(&data); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	if !h.sender.Configured() {
		slog.Error("RESEND_API_KEY environment variable is not set")
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "Email service not configured",
		})
	}

	data.QuoteReference = refcode.NewQuoteReference()
	slog.Info("processing quote request", "reference", data.QuoteReference, "product_id", data.ProductID)

	confirmation, err := email.NewQuoteEmail(&data, email.AudienceCustomer, h.contactEmail)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to build email")
	}
	notification, err := email.NewQuoteEmail(&data, email.AudienceInternal, h.contactEmail)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to build email")
	}

	confirmationResult, notificationResult := email.SendPair(c.Request().Context(), h.sender, confirmation, notification)

	if !confirmationResult.Success {
		slog.Error("failed to send customer confirmation email",
			"error", confirmationResult.Err, "reference", data.QuoteReference)
	}

	if !notificationResult.Success {
		slog.Error("failed to send company notification email",
			"error", notificationResult.Err, "reference", data.QuoteReference)
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error":   "Failed to send quote request",
			"details": errDetails(notificationResult),
		})
	}

	slog.Info("quote request processed", "reference", data.QuoteReference)

	return c.JSON(http.StatusOK, map[string]any{
		"success":         true,
		"message":         "Quote request sent successfully",
		"quoteReference":  data.QuoteReference,
		"customerEmailId": confirmationResult.ID,
		"companyEmailId":  notificationResult.ID,
	})
}

func errDetails(r email.Result) string {
	if r.Err != nil {
		return r.Err.Error()
	}
	return "unknown error"
}
