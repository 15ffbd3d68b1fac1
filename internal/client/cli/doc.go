// Package cli provides the interactive Volunteam command-line client.
//
// It wires configuration, the local session cache, the platform API client,
// and an interactive REPL. On startup the cached session is restored and the
// initial flow (login or events) is resolved by the navigation gate; after a
// successful login the REPL switches to the authenticated command set.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// The presentation layer only ever talks to the session state, the login
// form, and the auth service — it never inspects tokens or storage itself.
package cli
