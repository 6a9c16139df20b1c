// Package models defines the records exchanged with the Virtual Wardrobe
// backend. Field tags follow the backend's JSON contract.
package models

// User is the profile record returned by GET /user. A nil *User means
// "unknown": consumers must not treat it as an empty profile.
type User struct {
	Name             string  `json:"name"`
	Email            string  `json:"email"`
	PhoneNumber      string  `json:"phone_number"`
	ProfilePic       string  `json:"profile_pic"`
	IsEmailVerified  bool    `json:"is_email_verified"`
	IsPhoneVerified  bool    `json:"is_phone_verified"`
	IsGoogleVerified bool    `json:"is_google_verified"`
	TryOns           []TryOn `json:"VirtualTryOn"`
}

// ContactMessage is the payload of POST /contacts.
type ContactMessage struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}
