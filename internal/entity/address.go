package entity

// Address is a value object for a postal address.
type Address struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zip_code"`
	Country string `json:"country"`
}

// ShippingAddress extends Address with recipient contact details.
type ShippingAddress struct {
	Address
	RecipientName        string `json:"recipient_name"`
	PhoneNumber          string `json:"phone_number"`
	DeliveryInstructions string `json:"delivery_instructions,omitempty"`
}

func (a Address) isZero() bool {
	return a == Address{}
}

func (a ShippingAddress) isZero() bool {
	return a == ShippingAddress{}
}
