package registry

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// maxConcurrentFetches bounds the number of in-flight file requests.
const maxConcurrentFetches = 8

// FetchFiles downloads the files of every component concurrently. The result
// follows component order, then file declaration order. The first failure
// cancels the remaining fetches and is returned.
func FetchFiles(ctx context.Context, source FileSource, components []Component) ([]ResolvedFile, error) {
	var out []ResolvedFile
	for _, c := range components {
		for _, f := range c.Files {
			out = append(out, ResolvedFile{File: f, Component: c.Name})
		}
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentFetches)

	for i := range out {
		g.Go(func() error {
			content, err := source.File(gctx, out[i].Path)
			if err != nil {
				return err
			}
			out[i].Content = content
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
