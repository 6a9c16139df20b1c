package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/VirtualWardrobe/wardrobe-cli/internal/api"
	"github.com/VirtualWardrobe/wardrobe-cli/internal/common"
	"github.com/VirtualWardrobe/wardrobe-cli/internal/flow"
	"github.com/VirtualWardrobe/wardrobe-cli/internal/googleauth"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

var errPasswordMismatch = errors.New("passwords do not match")

// googleLoginWait bounds how long the CLI waits for the browser redirect.
const googleLoginWait = 2 * time.Minute

// Register prompts for name, email and password, creates the account, and
// runs email verification: the backend sends a 6-digit code, the user types
// it in, and may request resends while the cooldown allows.
//
// The password byte slice is securely wiped before returning.
func (a *App) Register(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter your name", a.out)
	if err != nil {
		return err
	}

	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := a.getNewPassword()
	if err != nil {
		if errors.Is(err, errPasswordMismatch) {
			a.ui.Error(err.Error())
			return nil
		}
		return err
	}
	defer common.WipeByteArray(password)

	sessionID, err := a.api.Register(ctx, name, email, string(password))
	if err != nil {
		a.ui.Error(err.Error())
		return err
	}

	if err := a.verifyEmail(ctx, sessionID); err != nil {
		if errors.Is(err, errOTPCancelled) {
			fmt.Fprintln(a.out, "Verification postponed. Log in later to finish it.")
			return nil
		}
		return err
	}

	fmt.Fprintln(a.out, "Email verified. You can now log in.")
	return nil
}

// verifyEmail loops over code entry and submission until the backend accepts
// a code or the user quits.
func (a *App) verifyEmail(ctx context.Context, sessionID string) error {
	for {
		code, err := a.collectOTP(ctx, sessionID, "A 6-digit code was sent to your email.")
		if err != nil {
			return err
		}

		msg, err := a.api.VerifyOTP(ctx, sessionID, code)
		if err != nil {
			a.ui.Error(err.Error())
			continue
		}
		a.ui.Success(msg)
		return nil
	}
}

// Login prompts for credentials and authenticates. A 409 from the backend
// means the account is soft-deleted; the user is offered a restore, which
// on success logs them in with the fresh token.
//
// The password is securely wiped before returning.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out, "Enter password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	token, err := a.api.Login(ctx, email, string(password))
	if err != nil {
		if errors.Is(err, api.ErrAccountPendingDeletion) {
			return a.restoreAccount(ctx, email, string(password))
		}
		a.ui.Error(err.Error())
		return err
	}

	return a.completeLogin(ctx, token)
}

// completeLogin persists the token; the profile cache fetch is triggered by
// the session subscription, not called here.
func (a *App) completeLogin(ctx context.Context, token string) error {
	if err := a.sessions.Login(ctx, token); err != nil {
		a.log.Error(ctx, "error saving session", "error", err)
		a.ui.Error("could not save the session")
		return err
	}

	if u := a.profile.User(); u != nil {
		fmt.Fprintf(a.out, "Welcome, %s!\n", u.Name)
	} else {
		fmt.Fprintln(a.out, "Logged in.")
	}
	return nil
}

// restoreAccount runs the restore flow for a soft-deleted account: confirm,
// re-activate, then log in with the returned token.
func (a *App) restoreAccount(ctx context.Context, email, password string) error {
	var token string
	return flow.Run(ctx, a.restoreFlow, a.ui,
		"This account is scheduled for deletion. Restore it and log back in?",
		func(ctx context.Context) (string, error) {
			t, err := a.api.RestoreAccount(ctx, email, password)
			if err != nil {
				return "", err
			}
			token = t
			return "Account restored", nil
		},
		func() {
			_ = a.completeLogin(ctx, token)
		},
	)
}

// GoogleLogin starts a loopback listener, prints the backend's Google
// sign-in URL, and waits for the browser redirect carrying the token.
func (a *App) GoogleLogin(ctx context.Context) error {
	l, err := googleauth.NewListener(a.config.OAuthCallbackAddr, a.log)
	if err != nil {
		a.ui.Error("could not start the sign-in listener: " + err.Error())
		return err
	}
	defer l.Close()

	fmt.Fprintln(a.out, "Open this URL in your browser to continue:")
	fmt.Fprintln(a.out, a.api.GoogleAuthURL(l.RedirectURI()))

	waitCtx, cancel := context.WithTimeout(ctx, googleLoginWait)
	defer cancel()

	res, err := l.Wait(waitCtx)
	if err != nil {
		a.ui.Error("Google sign-in failed: " + err.Error())
		return err
	}

	fmt.Fprintf(a.out, "Signed in with Google as %s\n", res.Email)
	return a.completeLogin(ctx, res.Token)
}

// ForgotPassword starts a reset session, collects the emailed code and a new
// password, and completes the reset.
func (a *App) ForgotPassword(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter your account email", a.out)
	if err != nil {
		return err
	}

	sessionID, err := a.api.ForgotPassword(ctx, email)
	if err != nil {
		a.ui.Error(err.Error())
		return err
	}

	code, err := a.collectOTP(ctx, sessionID, "A 6-digit reset code was sent to your email.")
	if err != nil {
		if errors.Is(err, errOTPCancelled) {
			fmt.Fprintln(a.out, "Password reset cancelled.")
			return nil
		}
		return err
	}

	password, err := a.getNewPassword()
	if err != nil {
		if errors.Is(err, errPasswordMismatch) {
			a.ui.Error(err.Error())
			return nil
		}
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.api.ResetPassword(ctx, sessionID, code, string(password)); err != nil {
		a.ui.Error(err.Error())
		return err
	}

	a.ui.Success("Password updated. You can now log in.")
	return nil
}

// Logout clears the stored credential; the profile cache empties itself via
// the session subscription.
func (a *App) Logout(ctx context.Context) error {
	if err := a.sessions.Logout(ctx); err != nil {
		a.ui.Error(err.Error())
		return err
	}
	fmt.Fprintln(a.out, "Logged out.")
	return nil
}

// getNewPassword reads a password twice and rejects a mismatch. The caller
// owns the returned slice and should wipe it.
func (a *App) getNewPassword() ([]byte, error) {
	pw, err := getPassword(a.out, "Enter new password")
	if err != nil {
		return nil, err
	}
	confirm, err := getPassword(a.out, "Repeat new password")
	if err != nil {
		common.WipeByteArray(pw)
		return nil, err
	}
	defer common.WipeByteArray(confirm)

	if !bytes.Equal(pw, confirm) {
		common.WipeByteArray(pw)
		return nil, errPasswordMismatch
	}
	return pw, nil
}
