package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output.
var printlnFn = fmt.Println

// execIface is the minimal command surface the REPL dispatches to. The real
// App type satisfies it; tests provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Profile(ctx context.Context) error
	EditProfile(ctx context.Context) error
	Users(ctx context.Context) error
	Search(ctx context.Context, args []string) error
	Page(ctx context.Context, args []string) error
	NextPage(ctx context.Context) error
	PrevPage(ctx context.Context) error
	Refresh(ctx context.Context) error
	Show(ctx context.Context, args []string) error
}

// runREPL reads a line per iteration, parses the first token as the command,
// and dispatches to a. Unknown commands are reported back. The loop exits on
// scanner EOF or "exit"/"quit". Handler errors are ignored here; handlers
// report their own failures, which keeps the loop focused on I/O.
//
// Commands:
//
//	Not logged in:
//	  - help | login | exit | quit
//
//	Logged in:
//	  - profile        — show the current profile
//	  - edit           — edit and save the profile
//	  - users | u      — show the current directory page
//	  - search <text>  — filter by name (empty text clears the filter)
//	  - page <n>       — jump to page n
//	  - next | prev    — move one page
//	  - refresh        — refetch the directory
//	  - show <id>      — show one entry in detail
//	  - logout | exit | quit
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("qtask> %s > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: profile, edit, (u)sers, search <text>, page <n>, next, prev, refresh, show <id>, logout, exit")
			} else {
				printlnFn("Available commands: login, exit")
			}

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "profile":
			_ = a.Profile(ctx)

		case "edit":
			_ = a.EditProfile(ctx)

		case "u", "users":
			_ = a.Users(ctx)

		case "search":
			_ = a.Search(ctx, args)

		case "page":
			_ = a.Page(ctx, args)

		case "next":
			_ = a.NextPage(ctx)

		case "prev":
			_ = a.PrevPage(ctx)

		case "refresh":
			_ = a.Refresh(ctx)

		case "show":
			_ = a.Show(ctx, args)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
