package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/mkazarin/skinaid/internal/catalog"
)

// Market lists the product catalog with optional concern filtering and lets
// the user save products into the kit.
func (a *App) Market(ctx context.Context) error {
	filter, err := getSimpleText(a.reader, "Filter by concern (comma-separated, empty for all)", os.Stdout)
	if err != nil {
		return err
	}

	var concerns []string
	for _, c := range strings.Split(filter, ",") {
		if c = strings.TrimSpace(c); c != "" {
			concerns = append(concerns, c)
		}
	}

	products := catalog.FilterByConcern(concerns)
	if len(products) == 0 {
		fmt.Fprintln(a.out, "No products match that filter.")
		return nil
	}

	fmt.Fprintf(a.out, "Showing %d products:\n", len(products))
	for _, p := range products {
		fmt.Fprintf(a.out, "\n[%d] %s ($%.2f)\n", p.ID, p.Name, p.Price)
		fmt.Fprintf(a.out, "    Concerns: %s | Ingredients: %s\n", strings.Join(p.Concerns, ", "), strings.Join(p.Ingredients, ", "))
		fmt.Fprintf(a.out, "    %s\n", p.Description)
	}

	id, err := GetInt(a.reader, "Product id to save to your kit (0 to skip)", os.Stdout, 0, len(catalog.Products))
	if err != nil {
		return err
	}
	if id == 0 {
		return nil
	}

	product, added, err := a.profile.AddToKit(ctx, a.userName, id)
	if err != nil {
		return err
	}
	if added {
		fmt.Fprintf(a.out, "Added %s to your kit!\n", product.Name)
	} else {
		fmt.Fprintf(a.out, "%s is already in your kit.\n", product.Name)
	}
	return nil
}

// Kit shows the saved products, explains their relevance against the last
// analysis and offers removal.
func (a *App) Kit(ctx context.Context) error {
	rec, err := a.profile.Record(ctx, a.userName)
	if err != nil {
		return err
	}

	if len(rec.Kit) == 0 {
		fmt.Fprintln(a.out, "Your kit is empty. Browse the 'market' to add products.")
		return nil
	}

	fmt.Fprintf(a.out, "Current kit (%d products):\n", len(rec.Kit))
	for _, item := range rec.Kit {
		fmt.Fprintf(a.out, "[%d] %s (targets: %s)\n", item.ID, item.Name, strings.Join(item.Concerns, ", "))
	}

	notes, err := a.profile.KitNotes(ctx, a.userName)
	if err != nil {
		return err
	}
	if len(notes) > 0 {
		fmt.Fprintln(a.out, "\nWhy this kit:")
		for _, note := range notes {
			fmt.Fprintf(a.out, "- %s\n", note)
		}
	} else if rec.LastAnalysis() == nil {
		fmt.Fprintln(a.out, "\nRun 'analyze' to see how your kit matches your skin.")
	}

	id, err := GetInt(a.reader, "Product id to remove (0 to skip)", os.Stdout, 0, len(catalog.Products))
	if err != nil {
		return err
	}
	if id == 0 {
		return nil
	}
	if err := a.profile.RemoveFromKit(ctx, a.userName, id); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Removed.")
	return nil
}
