package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/mkazarin/skinaid/internal/models"
)

var languages = []string{"English", "Hindi"}

// Onboard collects the profile snapshot and saves it wholesale; running it
// again replaces the previous answers.
func (a *App) Onboard(ctx context.Context) error {
	fmt.Fprintln(a.out, "Let's set up your skin profile.")

	fullName, err := getSimpleText(a.reader, "Full name", os.Stdout)
	if err != nil {
		return err
	}
	age, err := GetInt(a.reader, "Age", os.Stdout, 13, 120)
	if err != nil {
		return err
	}
	location, err := getSimpleText(a.reader, "Location (city)", os.Stdout)
	if err != nil {
		return err
	}

	skinType, err := GetChoice(a.reader, "Skin type:", os.Stdout, models.SkinTypes)
	if err != nil {
		return err
	}

	fmt.Fprintln(a.out, "Primary concerns:")
	var concerns []string
	for _, concern := range models.Concerns {
		yes, err := GetYesNo(a.reader, concern+"?", os.Stdout)
		if err != nil {
			return err
		}
		if yes {
			concerns = append(concerns, concern)
		}
	}

	language, err := GetChoice(a.reader, "Preferred language:", os.Stdout, languages)
	if err != nil {
		return err
	}

	ob := models.Onboarding{
		FullName:          fullName,
		Age:               age,
		Location:          location,
		Concerns:          concerns,
		SkinType:          skinType,
		PreferredLanguage: language,
	}
	if err := a.profile.SaveOnboarding(ctx, a.userName, ob); err != nil {
		return err
	}

	fmt.Fprintln(a.out, "Profile saved. You can run 'analyze' now.")
	return nil
}
