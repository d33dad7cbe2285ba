// SPDX-License-Identifier: MIT

// Package report writes analysis and backtest artifacts to disk.
//
// A backtest produces three files in the writer's directory:
//
//	records.jsonl  one JSON object per simulated week
//	summary.json   run metadata, configuration and the aggregate summary
//	report.md      human readable tables
//
// Every Writer carries a random RunID that is stamped into summary.json and
// the report header so artifacts from different runs can be told apart.
package report

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"

	"github.com/katalvlaran/gridcover/backtest"
)

// Artifact file names.
const (
	RecordsFile = "records.jsonl"
	SummaryFile = "summary.json"
	ReportFile  = "report.md"
)

// Writer handles writing artifacts to one output directory.
type Writer struct {
	dir   string
	runID uuid.UUID
	now   func() time.Time
}

// NewWriter returns a Writer for dir with a fresh RunID.
func NewWriter(dir string) *Writer {
	return &Writer{dir: dir, runID: uuid.New(), now: time.Now}
}

// Dir returns the output directory.
func (w *Writer) Dir() string { return w.dir }

// RunID returns the run identifier stamped into every artifact.
func (w *Writer) RunID() string { return w.runID.String() }

// Meta heads summary.json.
type Meta struct {
	RunID       string    `json:"run_id"`
	GeneratedAt time.Time `json:"generated_at"`
}

// SummaryDoc is the content of summary.json.
type SummaryDoc struct {
	Meta    Meta             `json:"meta"`
	Config  backtest.Config  `json:"config"`
	Summary backtest.Summary `json:"summary"`
}

// Artifacts lists the files written by WriteBacktest.
type Artifacts struct {
	Records string `json:"records"`
	Summary string `json:"summary"`
	Report  string `json:"report"`
}

// WriteBacktest writes records.jsonl, summary.json and report.md for res.
func (w *Writer) WriteBacktest(res backtest.Result) (Artifacts, error) {
	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return Artifacts{}, fmt.Errorf("report: create output directory: %w", err)
	}
	art := Artifacts{
		Records: filepath.Join(w.dir, RecordsFile),
		Summary: filepath.Join(w.dir, SummaryFile),
		Report:  filepath.Join(w.dir, ReportFile),
	}
	meta := Meta{RunID: w.RunID(), GeneratedAt: w.now().UTC()}

	if err := writeFile(art.Records, func(out io.Writer) error { return WriteJSONL(out, res.Records) }); err != nil {
		return Artifacts{}, err
	}
	doc := SummaryDoc{Meta: meta, Config: res.Config, Summary: res.Summary}
	if err := writeFile(art.Summary, func(out io.Writer) error { return WriteJSON(out, doc) }); err != nil {
		return Artifacts{}, err
	}
	if err := writeFile(art.Report, func(out io.Writer) error {
		_, err := io.WriteString(out, Markdown(meta, res))
		return err
	}); err != nil {
		return Artifacts{}, err
	}
	return art, nil
}

// WriteJSON writes v as indented JSON followed by a newline.
func WriteJSON(out io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("report: marshal: %w", err)
	}
	if _, err := out.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("report: write: %w", err)
	}
	return nil
}

// WriteJSONL writes one compact JSON line per record.
func WriteJSONL(out io.Writer, records []backtest.Record) error {
	enc := json.NewEncoder(out)
	for _, r := range records {
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("report: encode week %d: %w", r.Week, err)
		}
	}
	return nil
}

// ReadJSONL decodes a records.jsonl stream.
func ReadJSONL(in io.Reader) ([]backtest.Record, error) {
	var out []backtest.Record
	sc := bufio.NewScanner(in)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for line := 1; sc.Scan(); line++ {
		if len(strings.TrimSpace(sc.Text())) == 0 {
			continue
		}
		var r backtest.Record
		if err := json.Unmarshal(sc.Bytes(), &r); err != nil {
			return nil, fmt.Errorf("report: line %d: %w", line, err)
		}
		out = append(out, r)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("report: read: %w", err)
	}
	return out, nil
}

func writeFile(path string, fill func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("report: create %s: %w", filepath.Base(path), err)
	}
	bw := bufio.NewWriter(f)
	if err := fill(bw); err != nil {
		f.Close()
		return err
	}
	if err := bw.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("report: flush %s: %w", filepath.Base(path), err)
	}
	return f.Close()
}
