package email

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func orderFixture() *OrderData {
	return &OrderData{
		OrderNumber:   "ORD-TEST123",
		CustomerEmail: "buyer@example.com",
		CustomerName:  "Ada Lovelace",
		Items: []OrderItem{
			{Name: "Single Cell Hardware", Quantity: 1, Price: 4499},
			{Name: "Membrane Electrode Assembly", Quantity: 2, Price: 199},
		},
		Total: 4897,
		ShippingAddress: &Address{
			Line1:      "1 Research Way",
			City:       "Madison",
			State:      "WI",
			PostalCode: "53703",
			Country:    "US",
		},
	}
}

func TestNewOrderEmail_Customer(t *testing.T) {
	tmpl, err := NewOrderEmail(orderFixture(), AudienceCustomer, "contact@nernstsolution.com")
	require.NoError(t, err)

	assert.Equal(t, AudienceCustomer, tmpl.Audience)
	assert.Equal(t, "buyer@example.com", tmpl.To)
	assert.Equal(t, "Order Confirmation - ORD-TEST123", tmpl.Subject)
	assert.Contains(t, tmpl.HTML, "Ada Lovelace")
	assert.Contains(t, tmpl.HTML, "$4,897.00")
	assert.Contains(t, tmpl.HTML, "$4,499.00")
	assert.Contains(t, tmpl.HTML, "Madison")
	assert.Contains(t, tmpl.Text, "ORD-TEST123")
	assert.Contains(t, tmpl.Text, "$4,897.00")
}

func TestNewOrderEmail_Internal(t *testing.T) {
	tmpl, err := NewOrderEmail(orderFixture(), AudienceInternal, "contact@nernstsolution.com")
	require.NoError(t, err)

	assert.Equal(t, AudienceInternal, tmpl.Audience)
	assert.Equal(t, "contact@nernstsolution.com", tmpl.To)
	assert.Equal(t, "New Order: ORD-TEST123 - Ada Lovelace", tmpl.Subject)
	assert.Contains(t, tmpl.HTML, "New Order Received")
}

func TestNewOrderEmail_NoShippingAddress(t *testing.T) {
	data := orderFixture()
	data.ShippingAddress = nil

	tmpl, err := NewOrderEmail(data, AudienceInternal, "contact@nernstsolution.com")
	require.NoError(t, err)
	assert.Contains(t, tmpl.Text, "No shipping address collected.")
}

func TestNewQuoteEmail_OptionalFieldFallbacks(t *testing.T) {
	data := &QuoteRequestData{
		FirstName:          "Grace",
		LastName:           "Hopper",
		Email:              "grace@example.com",
		Company:            "Navy Research Lab",
		ProjectDescription: "Stack-level durability testing",
		ProductName:        "600 W PEM Electrolyzer Test Stand",
		ProductID:          "600w-pem-test-stand",
		QuoteReference:     "QUO-TEST123",
	}

	tmpl, err := NewQuoteEmail(data, AudienceInternal, "contact@nernstsolution.com")
	require.NoError(t, err)

	assert.Equal(t, "Quote Request: 600 W PEM Electrolyzer Test Stand - Navy Research Lab", tmpl.Subject)
	assert.Contains(t, tmpl.Text, "Phone: Not provided")
	assert.Contains(t, tmpl.Text, "Timeline: Not specified")
	assert.Contains(t, tmpl.Text, "Budget Range: Not specified")
	assert.Contains(t, tmpl.Text, "Newsletter Subscription: No")
	assert.NotContains(t, tmpl.Text, "ADDITIONAL REQUIREMENTS", "empty section is omitted")
	assert.Contains(t, tmpl.HTML, "Not provided")
}

func TestNewQuoteEmail_Customer(t *testing.T) {
	data := &QuoteRequestData{
		FirstName:      "Grace",
		LastName:       "Hopper",
		Email:          "grace@example.com",
		ProductName:    "Multi-cell Hardware",
		QuoteReference: "QUO-TEST456",
	}

	tmpl, err := NewQuoteEmail(data, AudienceCustomer, "contact@nernstsolution.com")
	require.NoError(t, err)

	assert.Equal(t, "grace@example.com", tmpl.To)
	assert.Contains(t, tmpl.Subject, "QUO-TEST456")
	assert.Contains(t, tmpl.HTML, "Multi-cell Hardware")
	assert.Contains(t, tmpl.Text, "QUO-TEST456")
}

func TestNewContactEmail(t *testing.T) {
	data := &ContactFormData{
		FirstName:        "Alan",
		LastName:         "Turing",
		Email:            "alan@example.com",
		Subject:          "MEA compatibility",
		Message:          "Will the 25 cm2 MEA fit third-party hardware?",
		Newsletter:       true,
		InquiryReference: "INQ-TEST789",
	}

	notification, err := NewContactEmail(data, AudienceInternal, "contact@nernstsolution.com")
	require.NoError(t, err)
	assert.Equal(t, "contact@nernstsolution.com", notification.To)
	assert.Equal(t, "Contact Inquiry: MEA compatibility - Alan Turing", notification.Subject)
	assert.Contains(t, notification.Text, "Type: General Inquiry")
	assert.Contains(t, notification.Text, "Newsletter Subscription: Yes")
	assert.Contains(t, notification.Text, "Company: Not provided")

	confirmation, err := NewContactEmail(data, AudienceCustomer, "contact@nernstsolution.com")
	require.NoError(t, err)
	assert.Equal(t, "alan@example.com", confirmation.To)
	assert.Contains(t, confirmation.HTML, "INQ-TEST789")
}

func TestNewOrderEmail_UnknownAudience(t *testing.T) {
	_, err := NewOrderEmail(orderFixture(), Audience("nobody"), "contact@nernstsolution.com")
	assert.Error(t, err)
}
