package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

// Users prints the current page of the directory, fetching the batch first
// if none is loaded yet.
func (a *App) Users(ctx context.Context) error {
	if len(a.users.Users()) == 0 {
		a.users.FetchUsers(ctx)
		if a.users.Err() != "" {
			return nil
		}
	}
	a.renderPage()
	return nil
}

// Search applies the given text as the name filter; no arguments clears it.
func (a *App) Search(ctx context.Context, args []string) error {
	a.users.SetSearchQuery(strings.Join(args, " "))
	a.renderPage()
	return nil
}

// Page jumps to the requested page; out-of-range targets leave the view as
// is, matching the store's silent-ignore rule.
func (a *App) Page(ctx context.Context, args []string) error {
	if len(args) != 1 {
		fmt.Fprintln(a.out, "Usage: page <n>")
		return nil
	}
	n, err := strconv.Atoi(args[0])
	if err != nil {
		fmt.Fprintln(a.out, "Usage: page <n>")
		return nil
	}
	a.users.SetPage(n)
	a.renderPage()
	return nil
}

func (a *App) NextPage(ctx context.Context) error {
	a.users.NextPage()
	a.renderPage()
	return nil
}

func (a *App) PrevPage(ctx context.Context) error {
	a.users.PrevPage()
	a.renderPage()
	return nil
}

// Refresh refetches the directory, resetting search and page position.
func (a *App) Refresh(ctx context.Context) error {
	a.users.RefreshUsers(ctx)
	a.renderPage()
	return nil
}

// Show prints a single entry in detail, going through the modal selection
// so the store's selected/visible fields behave as they would under the UI.
func (a *App) Show(ctx context.Context, args []string) error {
	if len(args) != 1 {
		fmt.Fprintln(a.out, "Usage: show <id>")
		return nil
	}

	user, err := a.userService.FindByID(args[0], a.users.Users())
	if err != nil {
		fmt.Fprintf(a.out, "No user with id %s\n", args[0])
		return nil
	}

	a.users.OpenUserModal(*user)
	defer a.users.CloseUserModal()

	selected := a.users.SelectedUser()
	fmt.Fprintf(a.out, "%s %s\n", selected.Name.Title, selected.FullName())
	fmt.Fprintf(a.out, "  id:       %s\n", selected.Login.UUID)
	fmt.Fprintf(a.out, "  email:    %s\n", selected.Email)
	fmt.Fprintf(a.out, "  phone:    %s / %s\n", selected.Phone, selected.Cell)
	fmt.Fprintf(a.out, "  address:  %d %s, %s, %s %s, %s\n",
		selected.Location.Street.Number, selected.Location.Street.Name,
		selected.Location.City, selected.Location.State,
		string(selected.Location.Postcode), selected.Location.Country)
	fmt.Fprintf(a.out, "  photo:    %s\n", selected.Picture.Large)
	fmt.Fprintf(a.out, "  nat:      %s\n", selected.Nat)
	return nil
}

func (a *App) renderPage() {
	page := a.users.PaginatedUsers()
	total := a.users.TotalUsers()
	if total == 0 {
		fmt.Fprintln(a.out, "No users match the current view")
		return
	}

	fmt.Fprintf(a.out, "Page %d/%d, %d users", a.users.CurrentPage(), a.users.TotalPages(), total)
	if q := a.users.SearchQuery(); strings.TrimSpace(q) != "" {
		fmt.Fprintf(a.out, ", filter %q", q)
	}
	fmt.Fprintln(a.out)

	offset := (a.users.CurrentPage() - 1) * a.users.PageSize()
	for i, u := range page {
		fmt.Fprintf(a.out, "%3d. %-28s %-32s %s, %s [%s]\n",
			offset+i+1, u.FullName(), u.Email, u.Location.City, u.Location.Country, u.Login.UUID)
	}
}
