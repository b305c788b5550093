package git

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/plumbing/storer"

	"github.com/ariel-frischer/semrel/internal/commit"
)

// Range selects commits reachable from To but not from From, like
// "git log From..To". An empty From means all history; an empty To means HEAD.
type Range struct {
	From string
	To   string
}

func (r Range) String() string {
	to := r.To
	if to == "" {
		to = "HEAD"
	}
	if r.From == "" {
		return to
	}
	return r.From + ".." + to
}

// LogSource produces commit records, newest first.
type LogSource interface {
	Log(ctx context.Context, r Range) ([]commit.Record, error)
}

var (
	_ LogSource = (*Repo)(nil)
	_ LogSource = (*FileSource)(nil)
)

// Log walks history from rng.To back to, but excluding, rng.From.
func (r *Repo) Log(ctx context.Context, rng Range) ([]commit.Record, error) {
	to := rng.To
	if to == "" {
		to = "HEAD"
	}
	tip, err := r.resolveCommit(to)
	if err != nil {
		if errors.Is(err, plumbing.ErrReferenceNotFound) && to == "HEAD" {
			// Empty repository.
			return nil, nil
		}
		return nil, err
	}

	exclude := map[plumbing.Hash]bool{}
	if rng.From != "" {
		base, err := r.resolveCommit(rng.From)
		if err != nil {
			return nil, err
		}
		if err := r.walk(ctx, base.Hash, func(c *object.Commit) error {
			exclude[c.Hash] = true
			return nil
		}); err != nil {
			return nil, err
		}
	}

	var records []commit.Record
	err = r.walk(ctx, tip.Hash, func(c *object.Commit) error {
		if exclude[c.Hash] {
			return nil
		}
		records = append(records, recordFromObject(c))
		return nil
	})
	if err != nil {
		return nil, err
	}

	logDebug("[git] Log %s: %d commits", rng, len(records))
	return records, nil
}

func (r *Repo) walk(ctx context.Context, from plumbing.Hash, fn func(*object.Commit) error) error {
	iter, err := r.repo.Log(&git.LogOptions{From: from, Order: git.LogOrderCommitterTime})
	if err != nil {
		return fmt.Errorf("reading log: %w", err)
	}
	defer iter.Close()

	err = iter.ForEach(func(c *object.Commit) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		return fn(c)
	})
	if err != nil && !errors.Is(err, storer.ErrStop) {
		return fmt.Errorf("walking log: %w", err)
	}
	return nil
}

func recordFromObject(c *object.Commit) commit.Record {
	header, body, _ := strings.Cut(strings.TrimRight(c.Message, "\n"), "\n")
	return commit.Record{
		Hash:    c.Hash.String(),
		Message: strings.TrimRight(header, "\r"),
		Body:    strings.TrimSpace(body),
		Author:  c.Author.Name,
		Date:    c.Author.When,
	}
}

// FileSource reads records in the "%H|%s|%an|%ad" one-line log format from
// a file, or from Reader when Path is "-". Lines that do not parse are
// skipped. The file already is the selected history, so Range is ignored.
type FileSource struct {
	Path   string
	Reader io.Reader
}

// Log reads every record from the source.
func (f *FileSource) Log(ctx context.Context, _ Range) ([]commit.Record, error) {
	var in io.Reader
	switch {
	case f.Path == "-" || f.Path == "":
		if f.Reader == nil {
			return nil, errors.New("no input reader for log source")
		}
		in = f.Reader
	default:
		file, err := os.Open(f.Path)
		if err != nil {
			return nil, fmt.Errorf("opening log file: %w", err)
		}
		defer file.Close()
		in = file
	}

	var records []commit.Record
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		rec, ok := commit.ParseLogLine(scanner.Text())
		if !ok {
			continue
		}
		records = append(records, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading log input: %w", err)
	}

	logDebug("[git] FileSource %s: %d records", f.Path, len(records))
	return records, nil
}
