package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"text/tabwriter"

	"github.com/VirtualWardrobe/wardrobe-cli/internal/filex"
	"github.com/VirtualWardrobe/wardrobe-cli/internal/flow"
	"github.com/VirtualWardrobe/wardrobe-cli/internal/netx"
)

// NewTryOn reads the two source photos and asks the backend to generate a
// try-on. Both paths are checked locally before anything is uploaded.
func (a *App) NewTryOn(ctx context.Context) error {
	return a.requireLogin(ctx, func(ctx context.Context) error {
		human, err := getSimpleText(a.reader, "Path to your photo", a.out)
		if err != nil {
			return err
		}
		garment, err := getSimpleText(a.reader, "Path to the garment photo", a.out)
		if err != nil {
			return err
		}

		fmt.Fprintln(a.out, "Generating, this can take a while...")
		rec, err := a.tryons.Create(ctx, human, garment)
		if err != nil {
			a.ui.Error(err.Error())
			return err
		}
		a.ui.Success("Try-on ready: " + rec.ResultImageURL)
		return nil
	})
}

// TryOns lists the user's generated try-ons.
func (a *App) TryOns(ctx context.Context) error {
	return a.requireLogin(ctx, func(ctx context.Context) error {
		recs, err := a.tryons.List(ctx)
		if err != nil {
			a.ui.Error(err.Error())
			return err
		}
		if len(recs) == 0 {
			fmt.Fprintln(a.out, "No try-ons yet. Use 'tryon' to create one.")
			return nil
		}

		w := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tCREATED\tRESULT")
		for _, r := range recs {
			fmt.Fprintf(w, "%s\t%s\t%s\n", r.ID, r.CreatedAt, r.ResultImageURL)
		}
		w.Flush()
		return nil
	})
}

// SaveTryOn downloads a try-on result image into ./downloads.
func (a *App) SaveTryOn(ctx context.Context) error {
	return a.requireLogin(ctx, func(ctx context.Context) error {
		id, err := getSimpleText(a.reader, "Try-on id to save", a.out)
		if err != nil {
			return err
		}

		recs, err := a.tryons.List(ctx)
		if err != nil {
			a.ui.Error(err.Error())
			return err
		}

		var url string
		for _, r := range recs {
			if r.ID == id {
				url = r.ResultImageURL
				break
			}
		}
		if url == "" {
			a.ui.Error("no try-on with id " + id)
			return nil
		}

		dir, err := filex.EnsureSubDir("downloads")
		if err != nil {
			a.ui.Error(err.Error())
			return err
		}
		path := filepath.Join(dir, id+".jpg")

		if err := netx.DownloadToFile(ctx, url, path); err != nil {
			a.ui.Error(err.Error())
			return err
		}
		a.ui.Success("Saved to " + path)
		return nil
	})
}

// DeleteTryOn removes a try-on record after confirmation.
func (a *App) DeleteTryOn(ctx context.Context) error {
	return a.requireLogin(ctx, func(ctx context.Context) error {
		id, err := getSimpleText(a.reader, "Try-on id to delete", a.out)
		if err != nil {
			return err
		}

		return flow.Run(ctx, a.tryonFlow, a.ui,
			fmt.Sprintf("Delete try-on %s?", id),
			func(ctx context.Context) (string, error) {
				if err := a.tryons.Delete(ctx, id); err != nil {
					return "", err
				}
				return "Try-on deleted", nil
			},
			nil,
		)
	})
}
