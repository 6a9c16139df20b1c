// Package cli provides the interactive Virtual Wardrobe command-line client.
//
// It wires configuration, the local credential store, the REST API client,
// and an interactive REPL. Typical flow: restore a saved session, show the
// prompt, and execute user commands against the backend.
//
// Key features:
//   - Register with email verification (6-digit code entry with resend)
//   - Login / Logout, Google sign-in, password reset
//   - Restore a soft-deleted account during login
//   - Manage the profile: phone number, profile picture, account deletion
//   - Wardrobe items: list, add, edit, delete
//   - Virtual try-ons: create, list, save results to disk, delete
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
