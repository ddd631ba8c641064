package thing

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

// Thing definition files are plain text, one section per thing:
//
//	[Lamp]
//	width = 32
//	height = 64
//	id = 7
//	preview = lamp_on
//
// Lines starting with ';' are comments. The id is mandatory and must lie in
// [0, 65534].

// ParseDefinitions reads thing definitions from r. The name argument is used
// in error messages only.
func ParseDefinitions(r io.Reader, name string) ([]Definition, error) {
	var (
		defs    []Definition
		current *parsedDef
		line    int
	)

	flush := func() error {
		if current == nil {
			return nil
		}
		if current.ID == 0 && !current.hasID {
			return fmt.Errorf("%s: thing %q has no id", name, current.Name)
		}
		defs = append(defs, current.Definition)
		current = nil
		return nil
	}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())

		if i := strings.IndexByte(text, ';'); i >= 0 {
			text = strings.TrimSpace(text[:i])
		}
		if text == "" {
			continue
		}

		if strings.HasPrefix(text, "[") {
			if !strings.HasSuffix(text, "]") {
				return nil, fmt.Errorf("%s:%d: unterminated section header", name, line)
			}
			if err := flush(); err != nil {
				return nil, err
			}
			current = &parsedDef{Definition: Definition{Name: strings.TrimSpace(text[1 : len(text)-1])}}
			continue
		}

		if current == nil {
			return nil, fmt.Errorf("%s:%d: key outside a section", name, line)
		}

		key, value, ok := strings.Cut(text, "=")
		if !ok {
			return nil, fmt.Errorf("%s:%d: expected key = value", name, line)
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)

		switch key {
		case "width":
			f, err := strconv.ParseFloat(value, 32)
			if err != nil {
				return nil, fmt.Errorf("%s:%d: bad width %q", name, line, value)
			}
			current.Width = float32(f)
		case "height":
			f, err := strconv.ParseFloat(value, 32)
			if err != nil {
				return nil, fmt.Errorf("%s:%d: bad height %q", name, line, value)
			}
			current.Height = float32(f)
		case "id":
			n, err := strconv.ParseUint(value, 10, 16)
			if err != nil || n > uint64(MaxID) {
				return nil, fmt.Errorf("%s:%d: id %q out of range [0, %d]", name, line, value, MaxID)
			}
			current.ID = uint16(n)
			current.hasID = true
		case "preview":
			current.Preview = value
		default:
			return nil, fmt.Errorf("%s:%d: unknown key %q", name, line, key)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	if err := flush(); err != nil {
		return nil, err
	}
	return defs, nil
}

type parsedDef struct {
	Definition
	hasID bool
}

// LoadDefinitionsFile parses a single definition file from disk.
func LoadDefinitionsFile(path string) ([]Definition, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("reading thing definitions: %w", err)
	}
	defer f.Close()
	return ParseDefinitions(f, filepath.Base(path))
}

// LoadDefinitionsDir parses every .ini file in dir, in file name order.
func LoadDefinitionsDir(dir string) ([]Definition, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading thing definitions dir: %w", err)
	}

	var names []string
	for _, e := range entries {
		if !e.IsDir() && strings.EqualFold(filepath.Ext(e.Name()), ".ini") {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	var defs []Definition
	for _, name := range names {
		fileDefs, err := LoadDefinitionsFile(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}
		defs = append(defs, fileDefs...)
	}
	return defs, nil
}
