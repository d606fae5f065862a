package payment

import "time"

// Order is the payment provider's transaction record for a checkout order
type Order struct {
	ID            string         `json:"id"`
	Status        string         `json:"status"`
	Payer         Payer          `json:"payer"`
	PurchaseUnits []PurchaseUnit `json:"purchase_units"`
	CreateTime    time.Time      `json:"create_time"`
}

// Payer identifies the paying customer
type Payer struct {
	Name  PayerName `json:"name"`
	Email string    `json:"email_address"`
}

// PayerName holds the payer's split name fields
type PayerName struct {
	Given   string `json:"given_name"`
	Surname string `json:"surname"`
}

// FullName joins the name fields for display
func (n PayerName) FullName() string {
	if n.Given == "" {
		return n.Surname
	}
	if n.Surname == "" {
		return n.Given
	}
	return n.Given + " " + n.Surname
}

// PurchaseUnit is one unit of the order: amount, shipping and captures
type PurchaseUnit struct {
	Amount   Amount   `json:"amount"`
	Shipping Shipping `json:"shipping"`
	Payments Payments `json:"payments"`
}

// Amount is a provider money value
type Amount struct {
	CurrencyCode string `json:"currency_code"`
	Value        string `json:"value"`
}

// Shipping holds the shipping destination
type Shipping struct {
	Address Address `json:"address"`
}

// Address is the provider's postal address shape
type Address struct {
	Line1      string `json:"address_line_1"`
	Line2      string `json:"address_line_2,omitempty"`
	City       string `json:"admin_area_2"`
	Region     string `json:"admin_area_1"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country_code"`
}

// Payments lists completed capture records
type Payments struct {
	Captures []Capture `json:"captures"`
}

// Capture is a completed payment capture
type Capture struct {
	ID         string    `json:"id"`
	Status     string    `json:"status"`
	Amount     Amount    `json:"amount"`
	CreateTime time.Time `json:"create_time"`
}

// tokenResponse is the OAuth2 client-credentials grant response
type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}
