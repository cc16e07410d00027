package admin

import (
	"context"
	"encoding/base64"

	"golang.org/x/sync/errgroup"
)

// Preview is a data URL for showing a selected file before upload.
type Preview struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

const previewWorkers = 4

// Previews encodes the uploads concurrently. The result is in selection
// order regardless of which encoding finishes first.
func Previews(ctx context.Context, uploads []Upload) ([]Preview, error) {
	out := make([]Preview, len(uploads))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(previewWorkers)
	for i, u := range uploads {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			out[i] = Preview{
				Name: u.Name,
				URL:  "data:" + u.ContentType + ";base64," + base64.StdEncoding.EncodeToString(u.Data),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
