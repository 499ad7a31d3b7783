package quest

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// The registry is persisted as a line oriented text:
//
//	<total points>
//	SimpleGoal|<name>|<description>|<points>[|<completed>]
//	EternalGoal|<name>|<description>|<points>
//	ChecklistGoal|<name>|<description>|<points>|<required>|<current>|<bonus>
//
// Inside names and descriptions '\', '|' and line breaks are escaped with a
// backslash.

const fieldSep = '|'

// fieldCount returns the minimum and maximum number of fields a record of
// this type can have.
func fieldCount(kind GoalType) (lo, hi int, ok bool) {
	switch kind {
	case TypeSimple:
		return 4, 5, true
	case TypeEternal:
		return 4, 4, true
	case TypeChecklist:
		return 7, 7, true
	default:
		return 0, 0, false
	}
}

var escaper = strings.NewReplacer(`\`, `\\`, "|", `\|`, "\n", `\n`, "\r", `\r`)

// splitFields splits a record on unescaped separators and unescapes each
// field. Unknown escape sequences are kept as is.
func splitFields(line string) []string {
	var fields []string
	var b strings.Builder
	for i := 0; i < len(line); i++ {
		c := line[i]
		switch {
		case c == '\\' && i+1 < len(line):
			i++
			switch line[i] {
			case '\\', fieldSep:
				b.WriteByte(line[i])
			case 'n':
				b.WriteByte('\n')
			case 'r':
				b.WriteByte('\r')
			default:
				b.WriteByte('\\')
				b.WriteByte(line[i])
			}
		case c == fieldSep:
			fields = append(fields, b.String())
			b.Reset()
		default:
			b.WriteByte(c)
		}
	}
	return append(fields, b.String())
}

// EncodeGoal writes a single goal record, followed by a newline.
func EncodeGoal(w io.Writer, g Goal) error {
	fields := []string{string(g.Kind()), escaper.Replace(g.Name()), escaper.Replace(g.Description()), strconv.Itoa(g.Points())}
	switch v := g.(type) {
	case *SimpleGoal:
		fields = append(fields, strconv.FormatBool(v.completed))
	case *EternalGoal:
	case *ChecklistGoal:
		fields = append(fields, strconv.Itoa(v.required), strconv.Itoa(v.current), strconv.Itoa(v.bonus))
	default:
		return fmt.Errorf("unsupported goal type %T", g)
	}
	if _, err := io.WriteString(w, strings.Join(fields, string(fieldSep))+"\n"); err != nil {
		return fmt.Errorf("failed to write goal %q: %w", g.Name(), err)
	}
	return nil
}

// EncodeRegistry writes the total points and every goal in order.
//
// The output only depends on the registry state.
func EncodeRegistry(w io.Writer, r *Registry) error {
	total, goals := r.snapshot()
	if _, err := fmt.Fprintf(w, "%d\n", total); err != nil {
		return fmt.Errorf("failed to write total points: %w", err)
	}
	for _, g := range goals {
		if err := EncodeGoal(w, g); err != nil {
			return err
		}
	}
	return nil
}

// DecodeGoal parses a single goal record.
func DecodeGoal(line string) (Goal, error) {
	fields := splitFields(line)
	kind := GoalType(fields[0])
	lo, hi, ok := fieldCount(kind)
	if !ok {
		return nil, fmt.Errorf("%w: unknown goal type %q", ErrMalformedRecord, fields[0])
	}
	if len(fields) < lo || len(fields) > hi {
		return nil, fmt.Errorf("%w: %s record has %d fields, want %d to %d", ErrMalformedRecord, kind, len(fields), lo, hi)
	}
	name, description := fields[1], fields[2]
	if name == "" {
		return nil, fmt.Errorf("%w: goal name is missing", ErrMalformedRecord)
	}
	points, err := atoi(fields, 3)
	if err != nil {
		return nil, err
	}

	switch kind {
	case TypeSimple:
		g := NewSimpleGoal(name, description, points)
		if len(fields) == 5 {
			completed, err := strconv.ParseBool(strings.TrimSpace(fields[4]))
			if err != nil {
				return nil, fmt.Errorf("%w: completion flag is not a boolean: %q", ErrMalformedRecord, fields[4])
			}
			g.completed = completed
		}
		return g, nil
	case TypeEternal:
		return NewEternalGoal(name, description, points), nil
	case TypeChecklist:
		var counts [3]int // required, current, bonus
		for i := range counts {
			if counts[i], err = atoi(fields, 4+i); err != nil {
				return nil, err
			}
		}
		required, current, bonus := counts[0], counts[1], counts[2]
		g, err := NewChecklistGoal(name, description, points, required, bonus)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformedRecord, err)
		}
		if current < 0 || current > required {
			return nil, fmt.Errorf("%w: checklist count %d not in [0, %d]", ErrMalformedRecord, current, required)
		}
		g.current = current
		return g, nil
	}
	// unreachable, fieldCount has rejected other kinds.
	return nil, fmt.Errorf("%w: unknown goal type %q", ErrMalformedRecord, kind)
}

// atoi parses the i-th field as an int.
func atoi(fields []string, i int) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(fields[i]))
	if err != nil {
		return 0, fmt.Errorf("%w: field %d of %s record is not a number: %q", ErrMalformedRecord, i+1, fields[0], fields[i])
	}
	return n, nil
}

// DecodeRegistry reads a registry from r.
//
// Any invalid line makes the whole decoding fail with ErrMalformedRecord.
// Lines have no length limit, whatever EncodeRegistry writes can be read
// back.
func DecodeRegistry(r io.Reader) (*Registry, error) {
	reg := NewRegistry()
	br := bufio.NewReader(r)

	lineNo := 0
	headerRead := false
	for {
		line, readErr := br.ReadString('\n')
		if readErr != nil && readErr != io.EOF {
			return nil, fmt.Errorf("%w: error reading from input: %w", ErrMalformedRecord, readErr)
		}
		if readErr == io.EOF && line == "" {
			break
		}
		lineNo++
		line = strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r")

		switch {
		case !headerRead:
			total, err := strconv.Atoi(strings.TrimSpace(line))
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: total points is not a number: %q", ErrMalformedRecord, lineNo, line)
			}
			reg.total = total
			headerRead = true
		case strings.TrimSpace(line) == "":
			// Skip empty lines
		default:
			g, err := DecodeGoal(line)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			reg.goals = append(reg.goals, g)
		}

		if readErr == io.EOF {
			break
		}
	}
	if !headerRead {
		return nil, fmt.Errorf("%w: missing total points", ErrMalformedRecord)
	}
	return reg, nil
}

// Load replaces the whole state of r with the registry read from src.
//
// On error r is left unchanged.
func (r *Registry) Load(src io.Reader) error {
	loaded, err := DecodeRegistry(src)
	if err != nil {
		return err
	}
	r.replace(loaded)
	return nil
}
