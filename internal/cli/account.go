package cli

import (
	"context"
	"fmt"
	"regexp"

	"github.com/VirtualWardrobe/wardrobe-cli/internal/api"
	"github.com/VirtualWardrobe/wardrobe-cli/internal/flow"
)

var phoneRE = regexp.MustCompile(`^\d{10}$`)

// Profile shows the cached account profile, fetching it first if the cache
// is still empty.
func (a *App) Profile(ctx context.Context) error {
	return a.requireLogin(ctx, func(ctx context.Context) error {
		u := a.profile.User()
		if u == nil {
			a.profile.Refresh(ctx)
			u = a.profile.User()
		}
		if u == nil {
			a.ui.Error("profile is not available right now, try again later")
			return nil
		}

		fmt.Fprintf(a.out, "Name:            %s\n", u.Name)
		fmt.Fprintf(a.out, "Email:           %s (verified: %v)\n", u.Email, u.IsEmailVerified)
		if u.PhoneNumber != "" {
			fmt.Fprintf(a.out, "Phone:           %s (verified: %v)\n", u.PhoneNumber, u.IsPhoneVerified)
		} else {
			fmt.Fprintln(a.out, "Phone:           not set")
		}
		if u.ProfilePic != "" {
			fmt.Fprintf(a.out, "Profile picture: %s\n", u.ProfilePic)
		}
		fmt.Fprintf(a.out, "Google account:  %v\n", u.IsGoogleVerified)
		fmt.Fprintf(a.out, "Try-ons:         %d\n", len(u.TryOns))
		return nil
	})
}

// SetPhone updates or removes the phone number. The 10-digit check runs
// locally; an invalid number never reaches the backend.
func (a *App) SetPhone(ctx context.Context) error {
	return a.requireLogin(ctx, func(ctx context.Context) error {
		phone, err := getSimpleText(a.reader, "Enter a 10-digit phone number (leave empty to remove)", a.out)
		if err != nil {
			return err
		}

		if phone == "" {
			if err := a.api.UpdateUser(ctx, api.UserUpdate{DeletePhoneNumber: true}); err != nil {
				a.ui.Error(err.Error())
				return err
			}
			if u := a.profile.User(); u != nil {
				c := *u
				c.PhoneNumber = ""
				c.IsPhoneVerified = false
				a.profile.Set(&c)
			}
			a.ui.Success("Phone number removed")
			return nil
		}

		if !phoneRE.MatchString(phone) {
			a.ui.Error("phone number must be exactly 10 digits")
			return nil
		}

		if err := a.api.UpdateUser(ctx, api.UserUpdate{PhoneNumber: phone}); err != nil {
			a.ui.Error(err.Error())
			return err
		}
		if u := a.profile.User(); u != nil {
			c := *u
			c.PhoneNumber = phone
			a.profile.Set(&c)
		}
		a.ui.Success("Phone number updated")
		return nil
	})
}

// SetProfilePic uploads a new profile picture or removes the current one.
func (a *App) SetProfilePic(ctx context.Context) error {
	return a.requireLogin(ctx, func(ctx context.Context) error {
		path, err := getSimpleText(a.reader, "Path to the new profile picture (leave empty to remove)", a.out)
		if err != nil {
			return err
		}

		if path == "" {
			if err := a.api.UpdateUser(ctx, api.UserUpdate{DeleteProfilePic: true}); err != nil {
				a.ui.Error(err.Error())
				return err
			}
			if u := a.profile.User(); u != nil {
				c := *u
				c.ProfilePic = ""
				a.profile.Set(&c)
			}
			a.ui.Success("Profile picture removed")
			return nil
		}

		url, err := a.api.UploadProfilePic(ctx, path)
		if err != nil {
			a.ui.Error(err.Error())
			return err
		}
		if u := a.profile.User(); u != nil {
			c := *u
			c.ProfilePic = url
			a.profile.Set(&c)
		}
		a.ui.Success("Profile picture updated")
		return nil
	})
}

// DeleteAccount soft-deletes the account after confirmation and clears the
// local session. The account stays restorable through the login prompt.
func (a *App) DeleteAccount(ctx context.Context) error {
	return a.requireLogin(ctx, func(ctx context.Context) error {
		return flow.Run(ctx, a.deleteFlow, a.ui,
			"Delete your account? You can restore it by logging in again later.",
			func(ctx context.Context) (string, error) {
				if err := a.api.DeleteAccount(ctx); err != nil {
					return "", err
				}
				return "Account deleted", nil
			},
			func() {
				if err := a.sessions.Logout(ctx); err != nil {
					a.log.Error(ctx, "error clearing session after account deletion", "error", err)
				}
			},
		)
	})
}
