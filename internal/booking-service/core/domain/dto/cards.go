package dto

type AddCardRequest struct {
	HolderName  string `json:"holder_name" validate:"required"`
	Number      string `json:"number" validate:"required,len=16,numeric"`
	ExpiryMonth string `json:"expiry_month" validate:"required"`
	ExpiryYear  string `json:"expiry_year" validate:"required"`
	CVV         string `json:"cvv" validate:"required,min=3,max=4,numeric"`
	CardType    string `json:"card_type" validate:"required,oneof=Credit Debit"`
	MakeDefault bool   `json:"make_default"`
}

type CardResponse struct {
	ID           string `json:"id"`
	HolderName   string `json:"holder_name"`
	MaskedNumber string `json:"masked_number"`
	Expiry       string `json:"expiry"`
	CardType     string `json:"card_type"`
	IsDefault    bool   `json:"is_default"`
}
