package email

import "fmt"

// QuoteRequestData is the payload of a quote request form submission.
// It exists only for the duration of one request.
type QuoteRequestData struct {
	FirstName              string `json:"firstName"`
	LastName               string `json:"lastName"`
	Email                  string `json:"email"`
	Phone                  string `json:"phone"`
	Company                string `json:"company"`
	JobTitle               string `json:"jobTitle"`
	OrganizationType       string `json:"organizationType"`
	Country                string `json:"country"`
	ProjectDescription     string `json:"projectDescription"`
	Timeline               string `json:"timeline"`
	Budget                 string `json:"budget"`
	AdditionalRequirements string `json:"additionalRequirements"`
	Newsletter             bool   `json:"newsletter"`
	ProductName            string `json:"productName"`
	ProductID              string `json:"productId"`

	// QuoteReference is generated server-side, never bound from the client.
	QuoteReference string `json:"-"`
}

// ContactFormData is the payload of a contact form submission.
type ContactFormData struct {
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Company     string `json:"company"`
	Subject     string `json:"subject"`
	InquiryType string `json:"inquiryType"`
	Message     string `json:"message"`
	Newsletter  bool   `json:"newsletter"`

	InquiryReference string `json:"-"`
}

// NewQuoteEmail maps a quote request onto the template for the given
// audience: the confirmation goes back to the requester, the full request
// details go to notifyTo.
func NewQuoteEmail(data *QuoteRequestData, audience Audience, notifyTo string) (*Template, error) {
	switch audience {
	case AudienceCustomer:
		html, text, err := render(quoteConfirmationHTML, quoteConfirmationText, data)
		if err != nil {
			return nil, err
		}
		return &Template{
			Audience: audience,
			To:       data.Email,
			Subject:  fmt.Sprintf("Quote Request Received - %s", data.QuoteReference),
			HTML:     html,
			Text:     text,
		}, nil

	case AudienceInternal:
		html, text, err := render(quoteRequestHTML, quoteRequestText, data)
		if err != nil {
			return nil, err
		}
		return &Template{
			Audience: audience,
			To:       notifyTo,
			Subject:  fmt.Sprintf("Quote Request: %s - %s", data.ProductName, data.Company),
			HTML:     html,
			Text:     text,
		}, nil

	default:
		return nil, fmt.Errorf("unknown email audience %q", audience)
	}
}

// NewContactEmail maps a contact inquiry onto the template for the given
// audience.
func NewContactEmail(data *ContactFormData, audience Audience, notifyTo string) (*Template, error) {
	switch audience {
	case AudienceCustomer:
		html, text, err := render(contactConfirmationHTML, contactConfirmationText, data)
		if err != nil {
			return nil, err
		}
		return &Template{
			Audience: audience,
			To:       data.Email,
			Subject:  fmt.Sprintf("We Received Your Inquiry - %s", data.InquiryReference),
			HTML:     html,
			Text:     text,
		}, nil

	case AudienceInternal:
		html, text, err := render(contactInquiryHTML, contactInquiryText, data)
		if err != nil {
			return nil, err
		}
		return &Template{
			Audience: audience,
			To:       notifyTo,
			Subject:  fmt.Sprintf("Contact Inquiry: %s - %s %s", data.Subject, data.FirstName, data.LastName),
			HTML:     html,
			Text:     text,
		}, nil

	default:
		return nil, fmt.Errorf("unknown email audience %q", audience)
	}
}

var (
	quoteRequestHTML = parseHTML("quote-request", `
<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <title>New Quote Request - {{.ProductName}}</title>
  <style>
    body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
    .container { max-width: 600px; margin: 0 auto; padding: 20px; }
    .header { background-color: #164e63; color: white; padding: 20px; text-align: center; }
    .content { padding: 20px; background-color: #f9f9f9; }
    .section { margin-bottom: 20px; }
    .section h3 { color: #164e63; border-bottom: 2px solid #84cc16; padding-bottom: 5px; }
    .field { margin-bottom: 10px; }
    .field strong { color: #164e63; }
    .product-info { background-color: #ecfeff; padding: 15px; border-radius: 5px; margin-bottom: 20px; }
  </style>
</head>
<body>
  <div class="container">
    <div class="header">
      <h1>New Quote Request</h1>
      <p>Nernst Solution LLC</p>
    </div>

    <div class="content">
      <div class="product-info">
        <h2>Requested Product</h2>
        <p><strong>Reference:</strong> {{.QuoteReference}}</p>
        <p><strong>Product:</strong> {{.ProductName}}</p>
        <p><strong>Product ID:</strong> {{.ProductID}}</p>
      </div>

      <div class="section">
        <h3>Contact Information</h3>
        <div class="field"><strong>Name:</strong> {{.FirstName}} {{.LastName}}</div>
        <div class="field"><strong>Email:</strong> {{.Email}}</div>
        <div class="field"><strong>Phone:</strong> {{orDefault .Phone "Not provided"}}</div>
        <div class="field"><strong>Company:</strong> {{.Company}}</div>
        <div class="field"><strong>Job Title:</strong> {{orDefault .JobTitle "Not provided"}}</div>
        <div class="field"><strong>Organization Type:</strong> {{orDefault .OrganizationType "Not specified"}}</div>
        <div class="field"><strong>Country:</strong> {{orDefault .Country "Not provided"}}</div>
      </div>

      <div class="section">
        <h3>Project Details</h3>
        <div class="field"><strong>Project Description:</strong></div>
        <p>{{.ProjectDescription}}</p>
        <div class="field"><strong>Timeline:</strong> {{orDefault .Timeline "Not specified"}}</div>
        <div class="field"><strong>Budget Range:</strong> {{orDefault .Budget "Not specified"}}</div>
      </div>

      {{if .AdditionalRequirements}}
      <div class="section">
        <h3>Additional Requirements</h3>
        <p>{{.AdditionalRequirements}}</p>
      </div>
      {{end}}

      <div class="section">
        <h3>Marketing Preferences</h3>
        <div class="field"><strong>Newsletter Subscription:</strong> {{yesNo .Newsletter}}</div>
      </div>
    </div>
  </div>
</body>
</html>
`)

	quoteRequestText = parseText("quote-request-text", `
New Quote Request - {{.ProductName}}

Reference: {{.QuoteReference}}

REQUESTED PRODUCT:
Product: {{.ProductName}}
Product ID: {{.ProductID}}

CONTACT INFORMATION:
Name: {{.FirstName}} {{.LastName}}
Email: {{.Email}}
Phone: {{orDefault .Phone "Not provided"}}
Company: {{.Company}}
Job Title: {{orDefault .JobTitle "Not provided"}}
Organization Type: {{orDefault .OrganizationType "Not specified"}}
Country: {{orDefault .Country "Not provided"}}

PROJECT DETAILS:
Project Description: {{.ProjectDescription}}
Timeline: {{orDefault .Timeline "Not specified"}}
Budget Range: {{orDefault .Budget "Not specified"}}
{{if .AdditionalRequirements}}
ADDITIONAL REQUIREMENTS:
{{.AdditionalRequirements}}
{{end}}
MARKETING PREFERENCES:
Newsletter Subscription: {{yesNo .Newsletter}}
`)

	quoteConfirmationHTML = parseHTML("quote-confirmation", `
<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <title>Quote Request Received</title>
  <style>
    body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
    .container { max-width: 600px; margin: 0 auto; padding: 20px; }
    .header { background-color: #164e63; color: white; padding: 20px; text-align: center; }
    .content { padding: 20px; background-color: #f9f9f9; }
    .reference { background-color: #ecfeff; padding: 15px; border-radius: 5px; margin-bottom: 20px; }
  </style>
</head>
<body>
  <div class="container">
    <div class="header">
      <h1>Quote Request Received</h1>
      <p>Nernst Solution LLC</p>
    </div>

    <div class="content">
      <p>Dear {{.FirstName}} {{.LastName}},</p>

      <p>Thank you for your interest in the <strong>{{.ProductName}}</strong>.
      We have received your quote request and our team will review your
      project details and respond within 1-2 business days.</p>

      <div class="reference">
        <p><strong>Your Reference Number:</strong> {{.QuoteReference}}</p>
        <p>Please include this reference in any follow-up correspondence.</p>
      </div>

      <p>Best regards,<br>
      The Nernst Solution Team</p>
    </div>
  </div>
</body>
</html>
`)

	quoteConfirmationText = parseText("quote-confirmation-text", `
Quote Request Received - Nernst Solution LLC

Dear {{.FirstName}} {{.LastName}},

Thank you for your interest in the {{.ProductName}}. We have received
your quote request and our team will review your project details and
respond within 1-2 business days.

Your Reference Number: {{.QuoteReference}}
Please include this reference in any follow-up correspondence.

Best regards,
The Nernst Solution Team
`)

	contactInquiryHTML = parseHTML("contact-inquiry", `
<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <title>New Contact Inquiry - {{.Subject}}</title>
  <style>
    body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
    .container { max-width: 600px; margin: 0 auto; padding: 20px; }
    .header { background-color: #164e63; color: white; padding: 20px; text-align: center; }
    .content { padding: 20px; background-color: #f9f9f9; }
    .section { margin-bottom: 20px; }
    .section h3 { color: #164e63; border-bottom: 2px solid #84cc16; padding-bottom: 5px; }
    .field { margin-bottom: 10px; }
    .field strong { color: #164e63; }
    .inquiry-info { background-color: #ecfeff; padding: 15px; border-radius: 5px; margin-bottom: 20px; }
  </style>
</head>
<body>
  <div class="container">
    <div class="header">
      <h1>New Contact Inquiry</h1>
      <p>Nernst Solution LLC</p>
    </div>

    <div class="content">
      <div class="inquiry-info">
        <h2>Inquiry Details</h2>
        <p><strong>Reference:</strong> {{.InquiryReference}}</p>
        <p><strong>Subject:</strong> {{.Subject}}</p>
        <p><strong>Type:</strong> {{orDefault .InquiryType "General Inquiry"}}</p>
      </div>

      <div class="section">
        <h3>Contact Information</h3>
        <div class="field"><strong>Name:</strong> {{.FirstName}} {{.LastName}}</div>
        <div class="field"><strong>Email:</strong> {{.Email}}</div>
        <div class="field"><strong>Phone:</strong> {{orDefault .Phone "Not provided"}}</div>
        <div class="field"><strong>Company:</strong> {{orDefault .Company "Not provided"}}</div>
      </div>

      <div class="section">
        <h3>Message</h3>
        <p>{{.Message}}</p>
      </div>

      <div class="section">
        <h3>Marketing Preferences</h3>
        <div class="field"><strong>Newsletter Subscription:</strong> {{yesNo .Newsletter}}</div>
      </div>
    </div>
  </div>
</body>
</html>
`)

	contactInquiryText = parseText("contact-inquiry-text", `
New Contact Inquiry - {{.Subject}}

Reference: {{.InquiryReference}}

INQUIRY DETAILS:
Subject: {{.Subject}}
Type: {{orDefault .InquiryType "General Inquiry"}}

CONTACT INFORMATION:
Name: {{.FirstName}} {{.LastName}}
Email: {{.Email}}
Phone: {{orDefault .Phone "Not provided"}}
Company: {{orDefault .Company "Not provided"}}

MESSAGE:
{{.Message}}

MARKETING PREFERENCES:
Newsletter Subscription: {{yesNo .Newsletter}}
`)

	contactConfirmationHTML = parseHTML("contact-confirmation", `
<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <title>We Received Your Inquiry</title>
  <style>
    body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
    .container { max-width: 600px; margin: 0 auto; padding: 20px; }
    .header { background-color: #164e63; color: white; padding: 20px; text-align: center; }
    .content { padding: 20px; background-color: #f9f9f9; }
    .reference { background-color: #ecfeff; padding: 15px; border-radius: 5px; margin-bottom: 20px; }
  </style>
</head>
<body>
  <div class="container">
    <div class="header">
      <h1>Thank You for Contacting Us</h1>
      <p>Nernst Solution LLC</p>
    </div>

    <div class="content">
      <p>Dear {{.FirstName}} {{.LastName}},</p>

      <p>We have received your inquiry regarding
      "<strong>{{.Subject}}</strong>" and will get back to you within
      1-2 business days.</p>

      <div class="reference">
        <p><strong>Your Reference Number:</strong> {{.InquiryReference}}</p>
        <p>Please include this reference in any follow-up correspondence.</p>
      </div>

      <p>Best regards,<br>
      The Nernst Solution Team</p>
    </div>
  </div>
</body>
</html>
`)

	contactConfirmationText = parseText("contact-confirmation-text", `
Thank You for Contacting Us - Nernst Solution LLC

Dear {{.FirstName}} {{.LastName}},

We have received your inquiry regarding "{{.Subject}}" and will get back
to you within 1-2 business days.

Your Reference Number: {{.InquiryReference}}
Please include this reference in any follow-up correspondence.

Best regards,
The Nernst Solution Team
`)
)
