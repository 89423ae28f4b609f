package dataset

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// Defaults for CSVLoader discovery.
const (
	// DefaultSuffix is the file suffix snapshots are matched against.
	DefaultSuffix = ".csv"

	// DefaultComma is the CSV field separator.
	DefaultComma = ','
)

// defaultVertexColumns are the header names treated as point coordinates
// when the caller does not configure their own.
var defaultVertexColumns = []string{"x", "y", "z"}

// CSVOption configures a CSVLoader.
type CSVOption func(*CSVLoader)

// WithPrefix sets the file-name part before the time label.
func WithPrefix(p string) CSVOption {
	return func(l *CSVLoader) { l.prefix = p }
}

// WithSuffix sets the file-name part after the time label.
func WithSuffix(s string) CSVOption {
	return func(l *CSVLoader) { l.suffix = s }
}

// WithComma sets the CSV field separator.
func WithComma(c rune) CSVOption {
	return func(l *CSVLoader) { l.comma = c }
}

// WithVertexColumns names the header columns holding point coordinates,
// in the order Vertices should return them.
func WithVertexColumns(names ...string) CSVOption {
	if len(names) == 0 {
		panic("dataset: WithVertexColumns: at least one column name is required")
	}

	return func(l *CSVLoader) { l.vertexCols = names }
}

// CSVLoader loads a snapshot series stored as one CSV file per write
// time, named <prefix><time><suffix>, with a header row of field names
// and one data row per spatial point. Discovery happens once in
// NewCSVLoader; the loader is immutable afterwards.
type CSVLoader struct {
	dir        string
	prefix     string
	suffix     string
	comma      rune
	vertexCols []string

	times   []string
	headers map[string][]string // write time → header row
}

var _ Dataloader = (*CSVLoader)(nil)

// NewCSVLoader scans dir for snapshot files and reads their headers. The
// write time is the file-name part between prefix and suffix.
func NewCSVLoader(dir string, opts ...CSVOption) (*CSVLoader, error) {
	l := &CSVLoader{
		dir:        dir,
		suffix:     DefaultSuffix,
		comma:      DefaultComma,
		vertexCols: defaultVertexColumns,
		headers:    make(map[string][]string),
	}
	for _, opt := range opts {
		opt(l)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("dataset: scanning %q: %w", dir, err)
	}
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasPrefix(name, l.prefix) || !strings.HasSuffix(name, l.suffix) {
			continue
		}
		time := strings.TrimSuffix(strings.TrimPrefix(name, l.prefix), l.suffix)
		if time == "" {
			continue
		}

		header, err := l.readHeader(name)
		if err != nil {
			return nil, err
		}
		l.times = append(l.times, time)
		l.headers[time] = header
	}
	if len(l.times) == 0 {
		return nil, fmt.Errorf("%w: %q with prefix %q and suffix %q", ErrNoSnapshots, dir, l.prefix, l.suffix)
	}
	sortTimes(l.times)

	return l, nil
}

// sortTimes orders time labels numerically when every label parses as a
// number, lexicographically otherwise.
func sortTimes(times []string) {
	numeric := true
	vals := make([]float64, len(times))
	for i, t := range times {
		v, err := strconv.ParseFloat(t, 64)
		if err != nil {
			numeric = false

			break
		}
		vals[i] = v
	}
	if numeric {
		sort.Slice(times, func(i, j int) bool { return vals[i] < vals[j] })

		return
	}
	sort.Strings(times)
}

func (l *CSVLoader) fileFor(time string) string {
	return filepath.Join(l.dir, l.prefix+time+l.suffix)
}

func (l *CSVLoader) readHeader(name string) ([]string, error) {
	f, err := os.Open(filepath.Join(l.dir, name))
	if err != nil {
		return nil, fmt.Errorf("dataset: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.Comma = l.comma
	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("dataset: reading header of %q: %w", name, err)
	}

	return header, nil
}

// readColumns reads the named columns of one snapshot file into parallel
// float slices, one entry per spatial point.
func (l *CSVLoader) readColumns(time string, fields []string) ([][]float64, error) {
	header, ok := l.headers[time]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTime, time)
	}

	idx := make([]int, len(fields))
	for i, field := range fields {
		idx[i] = -1
		for j, h := range header {
			if h == field {
				idx[i] = j

				break
			}
		}
		if idx[i] < 0 {
			return nil, fmt.Errorf("%w: %q at time %q", ErrUnknownField, field, time)
		}
	}

	f, err := os.Open(l.fileFor(time))
	if err != nil {
		return nil, fmt.Errorf("dataset: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.Comma = l.comma
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("dataset: reading %q: %w", l.fileFor(time), err)
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("%w: %q at time %q", ErrNoDataRows, l.fileFor(time), time)
	}

	out := make([][]float64, len(fields))
	for i := range out {
		out[i] = make([]float64, 0, len(records)-1)
	}
	for _, rec := range records[1:] { // skip header
		for i, j := range idx {
			v, err := strconv.ParseFloat(rec[j], 64)
			if err != nil {
				return nil, fmt.Errorf("%w: %q in field %q at time %q", ErrBadValue, rec[j], fields[i], time)
			}
			out[i] = append(out[i], v)
		}
	}

	return out, nil
}

// WriteTimes returns the discovered time labels, sorted ascending.
func (l *CSVLoader) WriteTimes() []string {
	out := make([]string, len(l.times))
	copy(out, l.times)

	return out
}

// FieldNames maps each write time to its data fields, excluding the
// configured vertex columns.
func (l *CSVLoader) FieldNames() map[string][]string {
	out := make(map[string][]string, len(l.headers))
	for time, header := range l.headers {
		fields := make([]string, 0, len(header))
		for _, h := range header {
			if !contains(l.vertexCols, h) {
				fields = append(fields, h)
			}
		}
		out[time] = fields
	}

	return out
}

// LoadSnapshot assembles the named field at the given write times into a
// points × len(times) matrix, columns in the requested order.
func (l *CSVLoader) LoadSnapshot(field string, times []string) (*mat.Dense, error) {
	if len(times) == 0 {
		return nil, fmt.Errorf("%w: no times requested", ErrUnknownTime)
	}

	var out *mat.Dense
	points := 0
	for j, time := range times {
		cols, err := l.readColumns(time, []string{field})
		if err != nil {
			return nil, err
		}
		col := cols[0]
		if out == nil {
			points = len(col)
			out = mat.NewDense(points, len(times), nil)
		}
		if len(col) != points {
			return nil, fmt.Errorf("%w: time %q has %d points, expected %d", ErrInconsistentRows, time, len(col), points)
		}
		for i, v := range col {
			out.Set(i, j, v)
		}
	}

	return out, nil
}

// Vertices returns the point coordinates taken from the vertex columns of
// the first write time, one row per point. Only the configured columns
// that actually appear in the header are used; if none do, the loader has
// no geometry and ErrUnknownField is returned.
func (l *CSVLoader) Vertices() (*mat.Dense, error) {
	first := l.times[0]
	present := make([]string, 0, len(l.vertexCols))
	for _, name := range l.vertexCols {
		if contains(l.headers[first], name) {
			present = append(present, name)
		}
	}
	if len(present) == 0 {
		return nil, fmt.Errorf("%w: no vertex columns %v at time %q", ErrUnknownField, l.vertexCols, first)
	}

	cols, err := l.readColumns(first, present)
	if err != nil {
		return nil, err
	}

	out := mat.NewDense(len(cols[0]), len(present), nil)
	for j, col := range cols {
		for i, v := range col {
			out.Set(i, j, v)
		}
	}

	return out, nil
}

// Weights is intentionally unimplemented for CSV series: the format
// carries no quadrature information. The failure is propagated verbatim,
// never replaced by uniform weights.
func (l *CSVLoader) Weights() (*mat.Dense, error) {
	return nil, fmt.Errorf("%w: CSV series carry no point weights", ErrNotImplemented)
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}

	return false
}
