package commit

import (
	"strings"
	"time"
)

// ShortHashLength is the number of hash characters kept for display.
const ShortHashLength = 8

// Record is a raw entry from a commit-log source, before classification.
type Record struct {
	Hash    string
	Message string
	Body    string
	Author  string
	Date    time.Time
}

// Commit is a classified unit of history.
type Commit struct {
	Hash     string
	Type     Type
	Scope    string
	Subject  string
	Breaking bool
	Author   string
	Date     time.Time
	// Conventional is false for legacy messages classified by keyword.
	Conventional bool
	// Raw is the original header line.
	Raw string
}

// FromRecord classifies a raw log record. A record with no fields set still
// yields a chore commit with an empty subject; skipping such entries is up to
// the caller.
func FromRecord(r Record) Commit {
	p := Parse(r.Message)
	return Commit{
		Hash:         ShortHash(r.Hash),
		Type:         p.Type,
		Scope:        p.Scope,
		Subject:      p.Subject,
		Breaking:     p.Breaking || HasBreakingFooter(r.Body),
		Author:       r.Author,
		Date:         r.Date,
		Conventional: p.Conventional,
		Raw:          FirstLine(r.Message),
	}
}

// FromRecords classifies records in order.
func FromRecords(records []Record) []Commit {
	commits := make([]Commit, 0, len(records))
	for _, r := range records {
		commits = append(commits, FromRecord(r))
	}
	return commits
}

// ShortHash truncates a hash to ShortHashLength characters.
func ShortHash(hash string) string {
	hash = strings.TrimSpace(hash)
	if len(hash) > ShortHashLength {
		return hash[:ShortHashLength]
	}
	return hash
}

// logDateLayout is the --date=short layout used by one-line log files.
const logDateLayout = "2006-01-02"

// ParseLogLine parses a line in the `%H|%s|%an|%ad` format produced by
// `git log --pretty=format:%H|%s|%an|%ad --date=short`. The subject may itself
// contain '|' characters. Returns false for blank lines and lines with fewer
// than four fields. An unparseable date leaves Date as the zero time.
func ParseLogLine(line string) (Record, bool) {
	line = strings.TrimRight(line, "\r\n")
	if strings.TrimSpace(line) == "" {
		return Record{}, false
	}

	first := strings.IndexByte(line, '|')
	last := strings.LastIndexByte(line, '|')
	if first < 0 || last <= first {
		return Record{}, false
	}
	middle := strings.LastIndexByte(line[:last], '|')
	if middle <= first {
		return Record{}, false
	}

	r := Record{
		Hash:    line[:first],
		Message: line[first+1 : middle],
		Author:  line[middle+1 : last],
	}
	if d, err := time.Parse(logDateLayout, strings.TrimSpace(line[last+1:])); err == nil {
		r.Date = d
	}
	return r, true
}
