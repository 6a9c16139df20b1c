// Package api implements the client side of the Virtual Wardrobe REST
// contract: JSON envelope responses, bearer-token authentication, multipart
// image uploads, and a per-call deadline.
package api

import (
	"context"

	"github.com/VirtualWardrobe/wardrobe-cli/internal/models"
)

// TokenSource yields the current session token, or "" when logged out.
// The session manager provides it; the client never stores the token itself.
type TokenSource func() string

// UserUpdate describes a partial profile update. The backend takes these as
// query parameters on PUT /user.
type UserUpdate struct {
	PhoneNumber       string
	DeletePhoneNumber bool
	DeleteProfilePic  bool
}

// Client defines every backend operation the CLI performs. The interface
// exists so services and command handlers can be tested against fakes.
type Client interface {
	// Login exchanges credentials for a bearer token. A 409 response maps
	// to ErrAccountPendingDeletion (soft-deleted account, restorable).
	Login(ctx context.Context, email, password string) (string, error)

	// RestoreAccount re-activates a soft-deleted account and, like Login,
	// returns a fresh bearer token.
	RestoreAccount(ctx context.Context, email, password string) (string, error)

	// Register creates an account and returns the OTP session id used by
	// VerifyOTP/ResendOTP.
	Register(ctx context.Context, name, email, password string) (string, error)

	// VerifyOTP confirms the 6-digit code for a registration or password
	// reset session. Returns the server's acknowledgement message.
	VerifyOTP(ctx context.Context, sessionID, code string) (string, error)

	// ResendOTP asks the backend to send a fresh code for the session.
	ResendOTP(ctx context.Context, sessionID string) error

	// ForgotPassword starts a password reset and returns its OTP session id.
	ForgotPassword(ctx context.Context, email string) (string, error)

	// ResetPassword completes a reset with the verified code.
	ResetPassword(ctx context.Context, sessionID, code, newPassword string) error

	GetUser(ctx context.Context) (*models.User, error)
	UpdateUser(ctx context.Context, upd UserUpdate) error
	UploadProfilePic(ctx context.Context, path string) (string, error)
	DeleteAccount(ctx context.Context) error

	ListWardrobeItems(ctx context.Context) ([]models.WardrobeItem, error)
	AddWardrobeItem(ctx context.Context, attrs models.ItemAttrs, imagePath string) (*models.WardrobeItem, error)
	UpdateWardrobeItem(ctx context.Context, id string, attrs models.ItemAttrs) (*models.WardrobeItem, error)
	DeleteWardrobeItem(ctx context.Context, id string) (string, error)

	CreateTryOn(ctx context.Context, humanPath, garmentPath string) (*models.TryOn, error)
	ListTryOns(ctx context.Context) ([]models.TryOn, error)
	DeleteTryOn(ctx context.Context, id string) error

	SendContactMessage(ctx context.Context, msg models.ContactMessage) error

	// GoogleAuthURL is the backend page that starts the Google sign-in
	// flow; the backend redirects back to redirectURI with the token in
	// query parameters.
	GoogleAuthURL(redirectURI string) string
}
