package cli

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/VirtualWardrobe/wardrobe-cli/internal/flow"
	"github.com/VirtualWardrobe/wardrobe-cli/internal/models"
)

// Wardrobe fetches and lists the user's wardrobe items.
func (a *App) Wardrobe(ctx context.Context) error {
	return a.requireLogin(ctx, func(ctx context.Context) error {
		items, err := a.wardrobe.List(ctx)
		if err != nil {
			a.ui.Error(err.Error())
			return err
		}
		a.printItems(items)
		return nil
	})
}

func (a *App) printItems(items []models.WardrobeItem) {
	if len(items) == 0 {
		fmt.Fprintln(a.out, "Your wardrobe is empty. Use 'additem' to add something.")
		return
	}

	w := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tCATEGORY\tTYPE\tBRAND\tSIZE\tCOLOR")
	for _, it := range items {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n", it.ID, it.Category, it.Type, it.Brand, it.Size, it.Color)
	}
	w.Flush()
}

// AddItem reads the item attributes and a photo path and creates the item.
func (a *App) AddItem(ctx context.Context) error {
	return a.requireLogin(ctx, func(ctx context.Context) error {
		attrs, err := a.readItemAttrs("")
		if err != nil {
			return err
		}

		imagePath, err := getSimpleText(a.reader, "Path to the item photo", a.out)
		if err != nil {
			return err
		}

		item, err := a.wardrobe.Add(ctx, attrs, imagePath)
		if err != nil {
			a.ui.Error(err.Error())
			return err
		}
		a.ui.Success(fmt.Sprintf("Added %s %s (id %s)", item.Brand, item.Type, item.ID))
		return nil
	})
}

// EditItem updates the attributes of an existing item. Fields left empty
// keep their current value.
func (a *App) EditItem(ctx context.Context) error {
	return a.requireLogin(ctx, func(ctx context.Context) error {
		id, err := getSimpleText(a.reader, "Item id to edit", a.out)
		if err != nil {
			return err
		}

		attrs, err := a.readItemAttrs(" (leave empty to keep)")
		if err != nil {
			return err
		}

		item, err := a.wardrobe.Update(ctx, id, attrs)
		if err != nil {
			a.ui.Error(err.Error())
			return err
		}
		a.ui.Success(fmt.Sprintf("Updated item %s", item.ID))
		return nil
	})
}

// DeleteItem removes an item after confirmation. On success the cached list
// is already updated; no refetch happens.
func (a *App) DeleteItem(ctx context.Context) error {
	return a.requireLogin(ctx, func(ctx context.Context) error {
		id, err := getSimpleText(a.reader, "Item id to delete", a.out)
		if err != nil {
			return err
		}

		// Describe the item in the prompt when the cached list knows it.
		prompt := fmt.Sprintf("Remove item %s from your wardrobe?", id)
		for _, it := range a.wardrobe.Cached() {
			if it.ID == id {
				prompt = fmt.Sprintf("Remove %s %s (id %s) from your wardrobe?", it.Brand, it.Type, id)
				break
			}
		}

		return flow.Run(ctx, a.itemFlow, a.ui, prompt,
			func(ctx context.Context) (string, error) {
				return a.wardrobe.Delete(ctx, id)
			},
			nil,
		)
	})
}

func (a *App) readItemAttrs(suffix string) (models.ItemAttrs, error) {
	var attrs models.ItemAttrs

	fields := []struct {
		prompt string
		dst    *string
	}{
		{"Category (e.g. UPPER_BODY)", &attrs.Category},
		{"Type (e.g. TSHIRT)", &attrs.Type},
		{"Brand", &attrs.Brand},
		{"Size (e.g. M)", &attrs.Size},
		{"Color (e.g. BLACK)", &attrs.Color},
	}
	for _, f := range fields {
		v, err := getSimpleText(a.reader, f.prompt+suffix, a.out)
		if err != nil {
			return models.ItemAttrs{}, err
		}
		*f.dst = v
	}
	return attrs, nil
}
