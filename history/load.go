// SPDX-License-Identifier: MIT

package history

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"
)

// Policy decides what ingestion does with an invalid archive entry.
type Policy int

const (
	// Strict aborts on the first invalid entry.
	Strict Policy = iota
	// Filter drops invalid entries and reports them as Rejections.
	Filter
)

// String returns "strict" or "filter".
func (p Policy) String() string {
	switch p {
	case Strict:
		return "strict"
	case Filter:
		return "filter"
	default:
		return "unknown"
	}
}

// ParsePolicy accepts "strict" or "filter".
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "strict":
		return Strict, nil
	case "filter":
		return Filter, nil
	default:
		return 0, ErrUnknownPolicy
	}
}

// Rejection describes one archive entry dropped under Filter.
type Rejection struct {
	Index int    // zero-based position in the source
	ID    string // archive label, when present
	Err   error  // reason, matching one of the package sentinels
}

// record is the union of the accepted JSON entry shapes:
// a bare array, {"numbers": [...]} or {"value": [...]}, each object form
// optionally labelled by "id", "draw" or "date".
type record struct {
	ID      json.RawMessage `json:"id"`
	Draw    json.RawMessage `json:"draw"`
	Date    string          `json:"date"`
	Numbers []int           `json:"numbers"`
	Value   []int           `json:"value"`
}

func (r record) label() string {
	for _, raw := range []json.RawMessage{r.ID, r.Draw} {
		if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
			continue
		}
		var s string
		if err := json.Unmarshal(raw, &s); err == nil {
			return s
		}
		return string(raw)
	}
	return r.Date
}

func decodeEntry(raw json.RawMessage) (nums []int, id string, err error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		if err = json.Unmarshal(trimmed, &nums); err != nil {
			return nil, "", fmt.Errorf("%w: %v", ErrMalformedRecord, err)
		}
		return nums, "", nil
	}
	var rec record
	if err = json.Unmarshal(trimmed, &rec); err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrMalformedRecord, err)
	}
	nums = rec.Numbers
	if len(nums) == 0 {
		nums = rec.Value
	}
	return nums, rec.label(), nil
}

// ReadJSON decodes a JSON array of draws stored in the given order.
// Under Strict the first invalid entry aborts with its index; under Filter
// invalid entries are dropped and returned as Rejections.
func ReadJSON(r io.Reader, order Order, policy Policy) (History, []Rejection, error) {
	var entries []json.RawMessage
	if err := json.NewDecoder(r).Decode(&entries); err != nil {
		return History{}, nil, fmt.Errorf("%w: %v", ErrMalformedRecord, err)
	}
	b := builder{policy: policy}
	for i, raw := range entries {
		nums, id, err := decodeEntry(raw)
		if err == nil {
			var d Draw
			d, err = NewDraw(nums...)
			if err == nil {
				b.accept(d.WithID(id))
				continue
			}
		}
		if ferr := b.reject(i, id, err); ferr != nil {
			return History{}, nil, ferr
		}
	}
	return b.build(order)
}

// ReadCSV decodes one draw per row. A first column that is not a number in
// [1,49] followed by numeric columns is treated as the row label; a header
// row whose every field is non-numeric is skipped. Empty fields are ignored.
func ReadCSV(r io.Reader, order Order, policy Policy) (History, []Rejection, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	b := builder{policy: policy}
	for i := 0; ; i++ {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return History{}, nil, fmt.Errorf("%w: row %d: %v", ErrMalformedRecord, i, err)
		}
		if i == 0 && isHeader(row) {
			continue
		}
		id, nums, err := parseRow(row)
		if err == nil {
			var d Draw
			d, err = NewDraw(nums...)
			if err == nil {
				b.accept(d.WithID(id))
				continue
			}
		}
		if ferr := b.reject(i, id, err); ferr != nil {
			return History{}, nil, ferr
		}
	}
	return b.build(order)
}

// Load reads an archive file, choosing the decoder by extension
// (.json or .csv). Returns ErrUnsupportedFormat for anything else.
func Load(path string, order Order, policy Policy) (History, []Rejection, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".json" && ext != ".csv" {
		return History{}, nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	f, err := os.Open(path)
	if err != nil {
		return History{}, nil, fmt.Errorf("open history: %w", err)
	}
	defer f.Close()
	if ext == ".json" {
		return ReadJSON(f, order, policy)
	}
	return ReadCSV(f, order, policy)
}

func isHeader(row []string) bool {
	for _, f := range row {
		if _, err := strconv.Atoi(strings.TrimSpace(f)); err == nil {
			return false
		}
	}
	return len(row) > 0
}

func parseRow(row []string) (id string, nums []int, err error) {
	fields := make([]string, 0, len(row))
	for _, f := range row {
		if f = strings.TrimSpace(f); f != "" {
			fields = append(fields, f)
		}
	}
	if len(fields) == 0 {
		return "", nil, ErrEmptyDraw
	}
	if n, perr := strconv.Atoi(fields[0]); perr != nil || n < 1 || n > 49 {
		if len(fields) > 1 {
			id, fields = fields[0], fields[1:]
		}
	}
	nums = make([]int, 0, len(fields))
	for _, f := range fields {
		n, perr := strconv.Atoi(f)
		if perr != nil {
			return id, nil, fmt.Errorf("%w: %q", ErrMalformedRecord, f)
		}
		nums = append(nums, n)
	}
	return id, nums, nil
}

// builder accumulates accepted draws and applies the Policy to failures.
type builder struct {
	policy   Policy
	draws    []Draw
	rejected []Rejection
}

func (b *builder) accept(d Draw) { b.draws = append(b.draws, d) }

func (b *builder) reject(i int, id string, err error) error {
	if b.policy == Strict {
		return fmt.Errorf("entry %d: %w", i, err)
	}
	b.rejected = append(b.rejected, Rejection{Index: i, ID: id, Err: err})
	return nil
}

func (b *builder) build(order Order) (History, []Rejection, error) {
	h, err := New(order, b.draws)
	if err != nil {
		return History{}, nil, err
	}
	return h, b.rejected, nil
}
