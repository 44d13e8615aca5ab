package models

// UserProfile is the single demo account. Profile updates overwrite the
// whole record; there is no partial-update path.
type UserProfile struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	Email   string `json:"email"`
	Pincode string `json:"pincode"`
}
