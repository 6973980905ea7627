package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/harifurniture/internal/client/services"
	"github.com/dmitrijs2005/harifurniture/internal/client/session"
	"github.com/dmitrijs2005/harifurniture/internal/client/view"
)

// getSimpleText, getSecret and getMultiline are indirections used to
// facilitate testing. They point to interactive input helpers and can be
// swapped in tests.
var (
	getSimpleText = GetSimpleText
	getSecret     = GetSecret
	getMultiline  = GetMultiline
)

// Login opens the login modal, exchanges a Google credential for a session
// and, when the account has no phone number yet, runs the phone step. The
// phone step cannot be skipped; it ends when a phone is saved or input ends.
func (a *App) Login(ctx context.Context) error {
	if u := a.session.State().User; u != nil {
		printlnFn(fmt.Sprintf("Already signed in as %s", u.Name))
		return nil
	}

	a.session.SetLoginModalVisible(true)
	printlnFn(a.renderer.Title("Welcome to " + view.BusinessName))
	printlnFn("Sign in with Google to like, order and review products.")

	credential, err := getSecret(a.reader, "Paste your Google credential", a.out)
	if err != nil {
		a.session.SetLoginModalVisible(false)
		return err
	}
	if credential == "" {
		a.session.SetLoginModalVisible(false)
		printlnFn("Login cancelled")
		return nil
	}

	resp, err := a.session.LoginWithExternalCredential(ctx, credential)
	if err != nil {
		a.notifyFailure(err, "Google sign-in failed")
		a.session.SetLoginModalVisible(false)
		return err
	}

	if resp.NeedsPhone {
		a.notifySuccess("Signed in with Google! Please add your phone number.")
		return a.completePhoneStep(ctx)
	}
	a.notifySuccess(fmt.Sprintf("Welcome back, %s!", resp.User.Name))
	return nil
}

func (a *App) completePhoneStep(ctx context.Context) error {
	for a.session.State().PhoneEntryPending {
		phone, err := getSimpleText(a.reader, "Enter your phone number", a.out)
		if err != nil {
			return err
		}
		if err := services.ValidatePhone(phone); err != nil {
			a.notifyError("Please enter a valid phone number")
			continue
		}

		user := a.session.State().User
		if user == nil {
			return session.ErrNotSignedIn
		}
		if _, err := a.session.UpdateProfile(ctx, user.Name, strings.TrimSpace(phone)); err != nil {
			a.notifyFailure(err, "Failed to save phone")
			if errors.Is(err, session.ErrSessionSuperseded) {
				return err
			}
			continue
		}
		a.notifySuccess("Phone number saved!")
	}
	return nil
}

// Profile opens the profile editor for the signed-in user. Empty answers
// keep the current values.
func (a *App) Profile(ctx context.Context) error {
	if !a.session.SetProfileModalVisible(true) {
		a.notifyError("Please login first")
		a.loginHint()
		return services.ErrLoginRequired
	}
	defer a.session.SetProfileModalVisible(false)

	user := a.session.State().User
	printlnFn(a.renderer.Title("Edit Profile"))
	printlnFn(fmt.Sprintf("Email: %s", user.Email))

	name, err := getSimpleText(a.reader, fmt.Sprintf("Name [%s]", user.Name), a.out)
	if err != nil {
		return err
	}
	if name == "" {
		name = user.Name
	}
	phone, err := getSimpleText(a.reader, fmt.Sprintf("Phone [%s]", user.Phone), a.out)
	if err != nil {
		return err
	}
	if phone == "" {
		phone = user.Phone
	}

	if strings.TrimSpace(name) == "" {
		a.notifyError("Name is required")
		return services.ErrInvalidInput
	}
	if err := services.ValidatePhone(phone); err != nil {
		a.notifyError("Please enter a valid phone number")
		return err
	}

	if _, err := a.session.UpdateProfile(ctx, strings.TrimSpace(name), strings.TrimSpace(phone)); err != nil {
		a.notifyFailure(err, "Failed to update")
		return err
	}
	a.notifySuccess("Profile updated!")
	return nil
}

// WhoAmI prints the signed-in profile and when the credential expires.
func (a *App) WhoAmI(ctx context.Context) error {
	user := a.session.State().User
	if user == nil {
		printlnFn(fmt.Sprintf("Not signed in (visitor %s)", a.visitorID))
		return nil
	}

	printlnFn(fmt.Sprintf("Name:  %s", user.Name))
	printlnFn(fmt.Sprintf("Email: %s", user.Email))
	if user.Phone != "" {
		printlnFn(fmt.Sprintf("Phone: %s", user.Phone))
	}

	token, err := a.creds.Token(ctx)
	if err != nil {
		a.logger.Warn(ctx, "failed to read credential", "error", err)
		return err
	}
	if exp, err := session.CredentialExpiry(token); err == nil {
		printlnFn(fmt.Sprintf("Session expires: %s", exp.Local().Format("02 Jan 2006 15:04")))
	} else {
		a.logger.Debug(ctx, "credential expiry unavailable", "error", err)
	}
	return nil
}

// Logout forgets the credential and the cached profile.
func (a *App) Logout(ctx context.Context) error {
	if err := a.session.Logout(ctx); err != nil {
		a.logger.Warn(ctx, "logout could not clear stored credential", "error", err)
		a.notifyError("Signed out, but the stored credential could not be removed")
		return err
	}
	printlnFn("Logged out")
	return nil
}
