package email

import (
	"bytes"
	"fmt"
	htmltemplate "html/template"
	texttemplate "text/template"

	"github.com/nernstsolution/nernst-web/internal/cart"
)

// OrderItem is one purchased line as derived from the checkout session.
type OrderItem struct {
	Name     string
	Quantity int64
	Price    float64
}

type Address struct {
	Line1      string
	Line2      string
	City       string
	State      string
	PostalCode string
	Country    string
}

// OrderData is the transient order record built inside the webhook
// handler. It is never persisted; it exists to render the two order
// emails and is then discarded.
type OrderData struct {
	OrderNumber     string
	CustomerEmail   string
	CustomerName    string
	Items           []OrderItem
	Total           float64
	ShippingAddress *Address
}

// templateFuncs is shared by the HTML and text templates.
var templateFuncs = map[string]any{
	"orDefault": func(value, fallback string) string {
		if value == "" {
			return fallback
		}
		return value
	},
	"price": cart.FormatPrice,
	"lineTotal": func(item OrderItem) string {
		return cart.FormatPrice(item.Price * float64(item.Quantity))
	},
	"yesNo": func(b bool) string {
		if b {
			return "Yes"
		}
		return "No"
	},
}

func parseHTML(name, src string) *htmltemplate.Template {
	return htmltemplate.Must(htmltemplate.New(name).Funcs(templateFuncs).Parse(src))
}

func parseText(name, src string) *texttemplate.Template {
	return texttemplate.Must(texttemplate.New(name).Funcs(templateFuncs).Parse(src))
}

func render(html *htmltemplate.Template, text *texttemplate.Template, data any) (string, string, error) {
	var htmlBuf bytes.Buffer
	if err := html.Execute(&htmlBuf, data); err != nil {
		return "", "", fmt.Errorf("render %s: %w", html.Name(), err)
	}

	var textBuf bytes.Buffer
	if err := text.Execute(&textBuf, data); err != nil {
		return "", "", fmt.Errorf("render %s: %w", text.Name(), err)
	}

	return htmlBuf.String(), textBuf.String(), nil
}

// NewOrderEmail maps an order onto the template for the given audience.
// The customer template goes to the buyer, the internal one to notifyTo.
func NewOrderEmail(data *OrderData, audience Audience, notifyTo string) (*Template, error) {
	switch audience {
	case AudienceCustomer:
		html, text, err := render(orderConfirmationHTML, orderConfirmationText, data)
		if err != nil {
			return nil, err
		}
		return &Template{
			Audience: audience,
			To:       data.CustomerEmail,
			Subject:  fmt.Sprintf("Order Confirmation - %s", data.OrderNumber),
			HTML:     html,
			Text:     text,
		}, nil

	case AudienceInternal:
		html, text, err := render(orderNotificationHTML, orderNotificationText, data)
		if err != nil {
			return nil, err
		}
		return &Template{
			Audience: audience,
			To:       notifyTo,
			Subject:  fmt.Sprintf("New Order: %s - %s", data.OrderNumber, data.CustomerName),
			HTML:     html,
			Text:     text,
		}, nil

	default:
		return nil, fmt.Errorf("unknown email audience %q", audience)
	}
}

var (
	orderConfirmationHTML = parseHTML("order-confirmation", `
<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <title>Order Confirmation - {{.OrderNumber}}</title>
  <style>
    body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
    .container { max-width: 600px; margin: 0 auto; padding: 20px; }
    .header { background-color: #164e63; color: white; padding: 20px; text-align: center; }
    .content { padding: 20px; background-color: #f9f9f9; }
    .order-info { background-color: #ecfeff; padding: 15px; border-radius: 5px; margin-bottom: 20px; }
    .items-table { width: 100%; border-collapse: collapse; margin: 20px 0; }
    .items-table th { background-color: #164e63; color: white; padding: 10px; text-align: left; }
    .items-table td { padding: 10px; border-bottom: 1px solid #ddd; }
    .total-row { font-size: 18px; font-weight: bold; color: #164e63; }
    .section h3 { color: #164e63; border-bottom: 2px solid #84cc16; padding-bottom: 5px; }
  </style>
</head>
<body>
  <div class="container">
    <div class="header">
      <h1>Order Confirmation</h1>
      <p>Nernst Solution LLC</p>
    </div>

    <div class="content">
      <p>Thank you for your order, {{.CustomerName}}!</p>

      <div class="order-info">
        <p><strong>Order Number:</strong> {{.OrderNumber}}</p>
        <p><strong>Customer Email:</strong> {{.CustomerEmail}}</p>
      </div>

      <table class="items-table">
        <thead>
          <tr><th>Product</th><th>Quantity</th><th>Unit Price</th><th>Total</th></tr>
        </thead>
        <tbody>
          {{range .Items}}
          <tr>
            <td>{{.Name}}</td>
            <td>{{.Quantity}}</td>
            <td>{{price .Price}}</td>
            <td>{{lineTotal .}}</td>
          </tr>
          {{end}}
          <tr class="total-row"><td colspan="3">Order Total</td><td>{{price .Total}}</td></tr>
        </tbody>
      </table>

      {{with .ShippingAddress}}
      <div class="section">
        <h3>Shipping Address</h3>
        <p>{{.Line1}}<br>
        {{if .Line2}}{{.Line2}}<br>{{end}}
        {{.City}}, {{.State}} {{.PostalCode}}<br>
        {{.Country}}</p>
      </div>
      {{end}}

      <p>We will send tracking information as soon as your order ships.
      Please reference order number {{.OrderNumber}} in any correspondence.</p>
    </div>
  </div>
</body>
</html>
`)

	orderConfirmationText = parseText("order-confirmation-text", `
Order Confirmation - Nernst Solution LLC

Thank you for your order, {{.CustomerName}}!

Order Number: {{.OrderNumber}}
Customer Email: {{.CustomerEmail}}

ORDER ITEMS:
{{range .Items}}- {{.Name}} x{{.Quantity}} @ {{price .Price}} = {{lineTotal .}}
{{end}}
Order Total: {{price .Total}}
{{with .ShippingAddress}}
SHIPPING ADDRESS:
{{.Line1}}
{{if .Line2}}{{.Line2}}
{{end}}{{.City}}, {{.State}} {{.PostalCode}}
{{.Country}}
{{end}}
We will send tracking information as soon as your order ships.
Please reference order number {{.OrderNumber}} in any correspondence.
`)

	orderNotificationHTML = parseHTML("order-notification", `
<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <title>New Order - {{.OrderNumber}}</title>
  <style>
    body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
    .container { max-width: 600px; margin: 0 auto; padding: 20px; }
    .header { background-color: #164e63; color: white; padding: 20px; text-align: center; }
    .content { padding: 20px; background-color: #f9f9f9; }
    .order-info { background-color: #ecfeff; padding: 15px; border-radius: 5px; margin-bottom: 20px; }
    .items-table { width: 100%; border-collapse: collapse; margin: 20px 0; }
    .items-table th { background-color: #164e63; color: white; padding: 10px; text-align: left; }
    .items-table td { padding: 10px; border-bottom: 1px solid #ddd; }
    .total-row { font-size: 18px; font-weight: bold; color: #164e63; }
    .section h3 { color: #164e63; border-bottom: 2px solid #84cc16; padding-bottom: 5px; }
  </style>
</head>
<body>
  <div class="container">
    <div class="header">
      <h1>New Order Received</h1>
      <p>Nernst Solution LLC</p>
    </div>

    <div class="content">
      <div class="order-info">
        <p><strong>Order Number:</strong> {{.OrderNumber}}</p>
        <p><strong>Customer:</strong> {{.CustomerName}}</p>
        <p><strong>Email:</strong> {{.CustomerEmail}}</p>
      </div>

      <table class="items-table">
        <thead>
          <tr><th>Product</th><th>Quantity</th><th>Unit Price</th><th>Total</th></tr>
        </thead>
        <tbody>
          {{range .Items}}
          <tr>
            <td>{{.Name}}</td>
            <td>{{.Quantity}}</td>
            <td>{{price .Price}}</td>
            <td>{{lineTotal .}}</td>
          </tr>
          {{end}}
          <tr class="total-row"><td colspan="3">Order Total</td><td>{{price .Total}}</td></tr>
        </tbody>
      </table>

      {{with .ShippingAddress}}
      <div class="section">
        <h3>Ship To</h3>
        <p>{{.Line1}}<br>
        {{if .Line2}}{{.Line2}}<br>{{end}}
        {{.City}}, {{.State}} {{.PostalCode}}<br>
        {{.Country}}</p>
      </div>
      {{else}}
      <p><strong>No shipping address collected.</strong></p>
      {{end}}
    </div>
  </div>
</body>
</html>
`)

	orderNotificationText = parseText("order-notification-text", `
New Order Received - {{.OrderNumber}}

Customer: {{.CustomerName}}
Email: {{.CustomerEmail}}

ORDER ITEMS:
{{range .Items}}- {{.Name}} x{{.Quantity}} @ {{price .Price}} = {{lineTotal .}}
{{end}}
Order Total: {{price .Total}}
{{with .ShippingAddress}}
SHIP TO:
{{.Line1}}
{{if .Line2}}{{.Line2}}
{{end}}{{.City}}, {{.State}} {{.PostalCode}}
{{.Country}}
{{else}}
No shipping address collected.
{{end}}`)
)
