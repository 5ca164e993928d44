package model

import (
	"fmt"
	"time"
)

const (
	CardTypeCredit = "Credit"
	CardTypeDebit  = "Debit"

	PaymentMethodUPI  = "UPI Payment"
	PaymentMethodCash = "Cash on Delivery"
)

// PaymentCard is a stored card. At most one card per user has IsDefault set;
// the flip happens inside a single repo transaction.
type PaymentCard struct {
	ID          string    `json:"id"`
	UserID      string    `json:"-"`
	HolderName  string    `json:"holder_name"`
	Number      string    `json:"-"`
	ExpiryMonth string    `json:"expiry_month"`
	ExpiryYear  string    `json:"expiry_year"`
	CVV         string    `json:"-"`
	CardType    string    `json:"card_type"`
	IsDefault   bool      `json:"is_default"`
	CreatedAt   time.Time `json:"created_at"`
}

func (c PaymentCard) MaskedNumber() string {
	last4 := c.Number
	if len(last4) > 4 {
		last4 = last4[len(last4)-4:]
	}
	return "**** **** **** " + last4
}

func (c PaymentCard) FormattedExpiry() string {
	return c.ExpiryMonth + "/" + c.ExpiryYear
}

// MethodLabel is the payment method string attached to a booking paid by card.
func (c PaymentCard) MethodLabel() string {
	last4 := c.Number
	if len(last4) > 4 {
		last4 = last4[len(last4)-4:]
	}
	return fmt.Sprintf("%s Card **** %s", c.CardType, last4)
}
