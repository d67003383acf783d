package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/quantumio/qtask/internal/client/models"
	"github.com/quantumio/qtask/internal/common"
)

// getSimpleText and getPassword are indirections for testing.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts for credentials and attempts to authenticate. The outcome
// is reported through the notification channel by the auth store; the
// password buffer is wiped before returning.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	a.auth.Login(ctx, models.Credentials{Email: email, Password: string(password)})
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	return a.auth.Logout(ctx)
}

// Profile refreshes and prints the current user's profile.
func (a *App) Profile(ctx context.Context) error {
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, "Not logged in")
		return nil
	}

	a.auth.LoadProfile(ctx)

	profile := a.auth.Profile()
	if profile == nil {
		fmt.Fprintln(a.out, "No profile available")
		return nil
	}

	fmt.Fprintf(a.out, "Name:            %s\n", profile.Name)
	fmt.Fprintf(a.out, "Email:           %s\n", profile.Email)
	fmt.Fprintf(a.out, "Phone:           %s\n", profile.Phone)
	fmt.Fprintf(a.out, "Job title:       %s\n", profile.JobTitle)
	fmt.Fprintf(a.out, "Experience:      %d years\n", profile.YearsOfExperience)
	fmt.Fprintf(a.out, "Address:         %s\n", profile.Address)
	fmt.Fprintf(a.out, "Working hours:   %s\n", profile.WorkingHours)
	return nil
}

// EditProfile prompts for each profile field, keeping the current value on
// blank input, and saves the result through the auth store.
func (a *App) EditProfile(ctx context.Context) error {
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, "Not logged in")
		return nil
	}

	current := a.auth.Profile()
	if current == nil {
		current = &models.UserProfile{}
	}
	updated := *current

	prompts := []struct {
		label string
		value *string
	}{
		{"Name", &updated.Name},
		{"Email", &updated.Email},
		{"Phone", &updated.Phone},
		{"Job title", &updated.JobTitle},
		{"Address", &updated.Address},
		{"Working hours", &updated.WorkingHours},
	}

	for _, p := range prompts {
		line, err := getSimpleText(a.reader, fmt.Sprintf("%s [%s]", p.label, *p.value), a.out)
		if err != nil {
			return err
		}
		if line != "" {
			*p.value = line
		}
	}

	line, err := getSimpleText(a.reader, fmt.Sprintf("Years of experience [%d]", updated.YearsOfExperience), a.out)
	if err != nil {
		return err
	}
	if line != "" {
		years, err := strconv.Atoi(line)
		if err != nil || years < 0 {
			fmt.Fprintln(a.out, "Years of experience must be a non-negative number")
			return nil
		}
		updated.YearsOfExperience = years
	}

	a.auth.UpdateProfile(ctx, &updated)
	return nil
}
