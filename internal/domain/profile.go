package domain

// Profile is the shopper's record. UserID and Email come from the identity
// provider's claims and are read-only from the client's side.
type Profile struct {
	UserID          string `json:"UserID"`
	Email           string `json:"Email"`
	FirstName       string `json:"FirstName,omitempty"`
	LastName        string `json:"LastName,omitempty"`
	ShippingAddress string `json:"ShippingAddress,omitempty"`
	UpdatedAt       string `json:"UpdatedAt"`
}

// ProfileUpdate carries only the fields the shopper may edit.
type ProfileUpdate struct {
	FirstName       *string `json:"FirstName,omitempty"`
	LastName        *string `json:"LastName,omitempty"`
	ShippingAddress *string `json:"ShippingAddress,omitempty"`
}
