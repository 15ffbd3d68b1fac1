package cli

import (
	"context"
	"fmt"
)

// Events fetches and prints the volunteer events visible to the current user.
func (a *App) Events(ctx context.Context) {
	events, err := a.api.Events(ctx)
	if err != nil {
		fmt.Println("Error loading events:", err)
		return
	}

	if len(events) == 0 {
		fmt.Println("No events found.")
		return
	}

	for _, e := range events {
		title := e.Title
		if title == "" {
			title = "(untitled)"
		}
		fmt.Printf("%s  %s  (%.5f, %.5f)", e.ID, title, e.Position.Latitude, e.Position.Longitude)
		if e.Date != "" {
			fmt.Printf("  %s", e.Date)
		}
		fmt.Println()
	}
}

// Whoami prints the current session's user.
func (a *App) Whoami() {
	u := a.state.User()
	if u == nil {
		fmt.Println("Not logged in.")
		return
	}
	fmt.Printf("%s <%s>\n", u.Name, u.Email)
}
