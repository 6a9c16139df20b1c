package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	GoogleLogin(ctx context.Context) error
	ForgotPassword(ctx context.Context) error
	Logout(ctx context.Context) error
	Profile(ctx context.Context) error
	SetPhone(ctx context.Context) error
	SetProfilePic(ctx context.Context) error
	DeleteAccount(ctx context.Context) error
	Wardrobe(ctx context.Context) error
	AddItem(ctx context.Context) error
	EditItem(ctx context.Context) error
	DeleteItem(ctx context.Context) error
	NewTryOn(ctx context.Context) error
	TryOns(ctx context.Context) error
	SaveTryOn(ctx context.Context) error
	DeleteTryOn(ctx context.Context) error
	Contact(ctx context.Context) error
	About()
	FAQ()
	Testimonials()
}

// runREPL starts a read–eval–print loop for the Virtual Wardrobe CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Not logged in:
//	  - help           — show available commands
//	  - register       — create an account (with email verification)
//	  - login          — authenticate
//	  - google         — sign in with Google
//	  - forgot         — reset a forgotten password
//	  - about | faq | testimonials — informational pages
//	  - contact        — send a message to the team
//	  - exit | quit    — leave the program
//
//	Logged in adds:
//	  - profile        — show the account profile
//	  - setphone       — set or remove the phone number
//	  - setpic         — upload or remove the profile picture
//	  - wardrobe       — list wardrobe items
//	  - additem        — add a wardrobe item
//	  - edititem       — edit a wardrobe item
//	  - delitem        — delete a wardrobe item
//	  - tryon          — create a virtual try-on
//	  - tryons         — list virtual try-ons
//	  - savetryon      — download a try-on result image
//	  - deltryon       — delete a virtual try-on
//	  - deleteaccount  — delete the account (restorable at login)
//	  - logout         — log out
//
// Any errors returned by command handlers are ignored here; handlers show
// their own dialogs. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("vw %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: profile, setphone, setpic, wardrobe, additem, edititem, delitem, tryon, tryons, savetryon, deltryon, contact, about, faq, testimonials, deleteaccount, logout, exit")
			} else {
				printlnFn("Available commands: register, login, google, forgot, contact, about, faq, testimonials, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "google":
			_ = a.GoogleLogin(ctx)

		case "forgot":
			_ = a.ForgotPassword(ctx)

		case "profile":
			_ = a.Profile(ctx)

		case "setphone":
			_ = a.SetPhone(ctx)

		case "setpic":
			_ = a.SetProfilePic(ctx)

		case "wardrobe":
			_ = a.Wardrobe(ctx)

		case "additem":
			_ = a.AddItem(ctx)

		case "edititem":
			_ = a.EditItem(ctx)

		case "delitem":
			_ = a.DeleteItem(ctx)

		case "tryon":
			_ = a.NewTryOn(ctx)

		case "tryons":
			_ = a.TryOns(ctx)

		case "savetryon":
			_ = a.SaveTryOn(ctx)

		case "deltryon":
			_ = a.DeleteTryOn(ctx)

		case "deleteaccount":
			_ = a.DeleteAccount(ctx)

		case "contact":
			_ = a.Contact(ctx)

		case "about":
			a.About()

		case "faq":
			a.FAQ()

		case "testimonials":
			a.Testimonials()

		case "logout":
			_ = a.Logout(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
