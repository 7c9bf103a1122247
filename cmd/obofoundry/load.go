package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/reoring/obofoundry"
)

// load reads and decodes one registry document from a URL, a file or "-"
// for stdin.
func (a *app) load(ctx context.Context, in string, stdin io.Reader) (*obofoundry.Registry, error) {
	rc, err := a.open(ctx, in, stdin)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	a.log.Debugf("decoding %s as %s", in, obofoundry.DetectFormat(in))
	return obofoundry.ParseReader(ctx, rc, obofoundry.DetectFormat(in), obofoundry.ParseOpt{
		MaxBytes: a.cfg.MaxBytes,
	})
}

func (a *app) open(ctx context.Context, in string, stdin io.Reader) (io.ReadCloser, error) {
	switch {
	case in == "-":
		return io.NopCloser(stdin), nil
	case strings.HasPrefix(in, "http://") || strings.HasPrefix(in, "https://"):
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, in, nil)
		if err != nil {
			return nil, fmt.Errorf("build request for %s: %w", in, err)
		}
		a.log.Debugf("fetching %s", in)
		resp, err := a.client.Do(req)
		if err != nil {
			return nil, fmt.Errorf("fetch %s: %w", in, err)
		}
		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			return nil, fmt.Errorf("fetch %s: unexpected status %s", in, resp.Status)
		}
		return resp.Body, nil
	default:
		f, err := os.Open(in)
		if err != nil {
			return nil, fmt.Errorf("open %s: %w", in, err)
		}
		return f, nil
	}
}

// reportIssues logs every decoding issue of err. It reports whether err
// carried issues at all.
func (a *app) reportIssues(in string, err error) bool {
	iss, ok := obofoundry.AsIssues(err)
	if !ok {
		return false
	}
	for _, it := range iss {
		entry := a.log.WithField("input", in)
		if it.Record != "" {
			entry = entry.WithField("ontology", it.Record)
		}
		entry.Errorf("%s [%s] %s", it.Path, it.Code, it.Message)
	}
	return true
}
