package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/mkazarin/skinaid/internal/models"
)

// Post appends an entry to the user's forum log.
func (a *App) Post(ctx context.Context) error {
	title, err := getSimpleText(a.reader, "Post title", os.Stdout)
	if err != nil {
		return err
	}
	body, err := GetMultiline(a.reader, "Post body", os.Stdout)
	if err != nil {
		return err
	}

	post, err := a.profile.AddForumPost(ctx, a.userName, title, body)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Posted %q.\n", post.Title)
	return nil
}

// Consult records an expert consultation request.
func (a *App) Consult(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Your name", os.Stdout)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Contact email", os.Stdout)
	if err != nil {
		return err
	}
	date, err := getSimpleText(a.reader, "Preferred date (YYYY-MM-DD)", os.Stdout)
	if err != nil {
		return err
	}
	timeSlot, err := getSimpleText(a.reader, "Preferred time (HH:MM)", os.Stdout)
	if err != nil {
		return err
	}
	note, err := GetMultiline(a.reader, "What would you like to discuss?", os.Stdout)
	if err != nil {
		return err
	}

	req, err := a.profile.AddExpertRequest(ctx, a.userName, models.ExpertRequest{
		Name:  name,
		Email: email,
		Date:  date,
		Time:  timeSlot,
		Note:  note,
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Request submitted (status: %s). We'll be in touch!\n", req.Status)
	return nil
}
