package programs

import (
	"context"
	"fmt"
	"net/http"

	"github.com/reusee/intcode/intconfigs"
	"github.com/reusee/intcode/intvm"
	"github.com/reusee/intcode/logs"
	"github.com/reusee/intcode/nets"
	"github.com/reusee/intcode/syncs"
)

// Fetch downloads program text from url. A non-empty session is sent as the
// session cookie.
func Fetch(ctx context.Context, client *http.Client, url string, session string) (intvm.Program, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, wrap(err)
	}
	if session != "" {
		req.AddCookie(&http.Cookie{
			Name:  "session",
			Value: session,
		})
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, wrap(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, wrap(fmt.Errorf("fetch %s: status %s", url, resp.Status))
	}
	return Parse(resp.Body)
}

// maxFetches bounds concurrent requests to the program server.
const maxFetches = 2

type FetchProgram func(ctx context.Context, url string) (intvm.Program, error)

func (Module) FetchProgram(
	client nets.HTTPClient,
	session intconfigs.Session,
	logger logs.Logger,
) FetchProgram {
	sem := syncs.NewSemaphore(maxFetches)
	return func(ctx context.Context, url string) (intvm.Program, error) {
		sem.Acquire()
		defer sem.Release()
		program, err := Fetch(ctx, client, url, string(session))
		if err != nil {
			return nil, err
		}
		logger.InfoContext(ctx, "fetched program",
			"url", url,
			"len", len(program),
		)
		return program, nil
	}
}
