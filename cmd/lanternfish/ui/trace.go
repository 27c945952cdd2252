package ui

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"lanternfish/internal/lanternfish"

	"github.com/charmbracelet/glamour"
)

// TraceWriter receives one snapshot per traced tick and writes the
// rendered trace on Flush.
type TraceWriter interface {
	WriteStep(step lanternfish.Step) error
	Flush() error
}

// NewTraceWriter returns the writer for format ("table", "markdown" or
// "json"). pretty enables terminal styling for the markdown renderer.
func NewTraceWriter(format string, w io.Writer, styles Styles, pretty bool) (TraceWriter, error) {
	switch format {
	case "table":
		return &tableTrace{w: w, styles: styles, table: NewSimpleTable("", traceHeaders())}, nil
	case "markdown":
		return &markdownTrace{w: w, pretty: pretty}, nil
	case "json":
		return &jsonTrace{enc: json.NewEncoder(w)}, nil
	default:
		return nil, fmt.Errorf("unknown trace format %q", format)
	}
}

func traceHeaders() []string {
	headers := make([]string, 0, lanternfish.Phases+2)
	headers = append(headers, "tick")
	for phase := 0; phase < lanternfish.Phases; phase++ {
		headers = append(headers, strconv.Itoa(phase))
	}
	return append(headers, "total")
}

func traceCells(step lanternfish.Step) []string {
	cells := make([]string, 0, lanternfish.Phases+2)
	cells = append(cells, strconv.Itoa(step.Tick))
	for _, n := range step.Buckets {
		cells = append(cells, strconv.FormatUint(n, 10))
	}
	return append(cells, strconv.FormatUint(step.Total, 10))
}

type tableTrace struct {
	w      io.Writer
	styles Styles
	table  *SimpleTable
}

func (t *tableTrace) WriteStep(step lanternfish.Step) error {
	cells := traceCells(step)
	cells[1+lanternfish.SpawnPhase] = t.styles.Spawn.Render(cells[1+lanternfish.SpawnPhase])
	cells[1+lanternfish.NewbornPhase] = t.styles.Newborn.Render(cells[1+lanternfish.NewbornPhase])
	cells[len(cells)-1] = t.styles.Total.Render(cells[len(cells)-1])
	t.table.AddRow(cells...)
	return nil
}

func (t *tableTrace) Flush() error {
	_, err := io.WriteString(t.w, t.table.View(t.styles))
	return err
}

type markdownTrace struct {
	w      io.Writer
	pretty bool
	sb     strings.Builder
	rows   int
}

func (m *markdownTrace) WriteStep(step lanternfish.Step) error {
	if m.rows == 0 {
		headers := traceHeaders()
		m.sb.WriteString("| " + strings.Join(headers, " | ") + " |\n")
		m.sb.WriteString(strings.Repeat("|---:", len(headers)) + "|\n")
	}
	m.sb.WriteString("| " + strings.Join(traceCells(step), " | ") + " |\n")
	m.rows++
	return nil
}

func (m *markdownTrace) Flush() error {
	out := m.sb.String()
	if m.pretty && out != "" {
		renderer, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(120),
		)
		if err != nil {
			return fmt.Errorf("markdown renderer: %w", err)
		}
		if out, err = renderer.Render(out); err != nil {
			return fmt.Errorf("render markdown: %w", err)
		}
	}
	_, err := io.WriteString(m.w, out)
	return err
}

type jsonTrace struct {
	enc *json.Encoder
}

func (j *jsonTrace) WriteStep(step lanternfish.Step) error {
	return j.enc.Encode(step)
}

func (j *jsonTrace) Flush() error {
	return nil
}
