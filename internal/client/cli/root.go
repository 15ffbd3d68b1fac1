package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/volunteam/internal/client/navigation"
)

func (a *App) getStatus() string {
	if u := a.state.User(); u != nil {
		return fmt.Sprintf("(%s) ", u.Email)
	}
	return ""
}

// Root runs the interactive loop. The command set follows the navigation
// gate: while it sits at the login route only the login flow is offered, even
// when a stale cached user was restored into the session state. Once the gate
// has moved to the events route the login flow is no longer reachable.
//
// Login attempts are serialized by the loop itself: a new prompt is not shown
// until the previous attempt finished, so two submissions can never race
// their writes into the session cache.
func (a *App) Root(ctx context.Context, route navigation.Route) {
	fmt.Println("Welcome to Volunteam CLI (type 'help' for commands)")

	if route == navigation.RouteEvents {
		if u := a.state.User(); u != nil {
			fmt.Printf("Welcome back, %s!\n", u.Name)
		}
	} else {
		fmt.Println("Please log in to continue.")
	}

	scanner := bufio.NewScanner(a.reader)

	for {
		fmt.Printf("volunteam %s> ", a.getStatus())
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		cmd := parts[0]

		switch cmd {
		case "help":
			if a.gate.Current() == navigation.RouteEvents {
				fmt.Println("Available commands: events, whoami, logout, exit")
			} else {
				fmt.Println("Available commands: login, exit")
			}

		case "login":
			if a.gate.Current() == navigation.RouteEvents {
				fmt.Println("Already logged in.")
				continue
			}
			if err := a.Login(ctx); err != nil {
				fmt.Println("error:", err)
			}

		case "events":
			if a.gate.Current() != navigation.RouteEvents {
				fmt.Println("Please log in first.")
				continue
			}
			a.Events(ctx)

		case "whoami":
			a.Whoami()

		case "logout":
			if a.gate.Current() != navigation.RouteEvents {
				fmt.Println("Not logged in.")
				continue
			}
			a.Logout(ctx)

		case "exit", "quit":
			fmt.Println("Bye!")
			return

		default:
			fmt.Println("Unknown command:", cmd)
		}
	}
}
