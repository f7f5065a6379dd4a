package face

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"os"
	"strings"
	"time"
)

// DefaultPredictionSource is where the data pipeline writes its output.
const DefaultPredictionSource = "data/output/prediction.json"

const maxPredictionBytes = 8 << 20

// Loader fetches and validates the prediction file. Source is either a path
// on disk or an http(s) URL.
type Loader struct {
	source  string
	client  *http.Client
	journal *Journal
}

// NewLoader creates an instance of a Loader.
func NewLoader(source string, timeout time.Duration, journal *Journal) *Loader {
	if source == "" {
		source = DefaultPredictionSource
	}
	l := new(Loader)
	l.source = source
	l.client = &http.Client{Timeout: timeout}
	l.journal = journal
	return l
}

// Source returns where the loader reads from.
func (l *Loader) Source() string {
	return l.source
}

// Load fetches and parses the prediction file. Failures are journalled once
// and returned; they wrap ErrNotProduced when nothing could be fetched and
// are a *ValidationError when the document is malformed.
func (l *Loader) Load(ctx context.Context) (Sequence, error) {
	l.journal.Appendf("loading %s", l.source)

	data, err := l.fetch(ctx)
	if err == nil {
		var seq Sequence
		seq, err = ParseSequence(data)
		if err == nil {
			l.journal.Appendf("loaded %d frames", len(seq))
			return seq, nil
		}
	}

	l.journal.Appendf("error: %v", err)
	return nil, err
}

func (l *Loader) fetch(ctx context.Context) ([]byte, error) {
	if strings.HasPrefix(l.source, "http://") || strings.HasPrefix(l.source, "https://") {
		return l.fetchURL(ctx)
	}

	data, err := os.ReadFile(l.source)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s not found", ErrNotProduced, l.source)
		}
		return nil, fmt.Errorf("%w: %v", ErrNotProduced, err)
	}
	return data, nil
}

func (l *Loader) fetchURL(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.source, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotProduced, err)
	}
	resp, err := l.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotProduced, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: %s returned %s", ErrNotProduced, l.source, resp.Status)
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, maxPredictionBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %v", ErrNotProduced, l.source, err)
	}
	return data, nil
}
