package invtrack

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// DecodeLog reads a history log from a JSONL stream, one snapshot per line.
func DecodeLog(r io.Reader) (*Log, error) {
	l := NewLog()
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		b := scanner.Bytes()
		if len(b) == 0 {
			continue
		}
		var s Snapshot
		if err := json.Unmarshal(b, &s); err != nil {
			return nil, fmt.Errorf("could not decode history line %d: %w", line, err)
		}
		if s.Ticker == "" || s.Date.IsZero() {
			return nil, fmt.Errorf("history line %d is missing a date or ticker", line)
		}
		l.Append(s)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading history: %w", err)
	}
	return l, nil
}

// EncodeLog writes the whole history log as JSONL, one snapshot per line.
// The engine rewrites the full log on every run (read-merge-write).
func EncodeLog(w io.Writer, l *Log) error {
	for s := range l.Snapshots() {
		b, err := json.Marshal(s)
		if err != nil {
			return fmt.Errorf("failed to marshal snapshot %s/%s: %w", s.Date, s.Ticker, err)
		}
		if _, err := w.Write(append(b, '\n')); err != nil {
			return fmt.Errorf("failed to write history: %w", err)
		}
	}
	return nil
}
