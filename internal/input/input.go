// Package input loads the sequence of elements to compare.
package input

import (
	"bufio"
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"slices"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/goccy/go-yaml"
	"github.com/spf13/afero"
)

type Format string

const (
	Lines Format = "lines"
	JSON  Format = "json"
	YAML  Format = "yaml"
)

var Formats = []string{string(Lines), string(JSON), string(YAML)}

func ParseFormat(s string) (Format, error) {
	if !slices.Contains(Formats, s) {
		return "", errors.Newf("unknown input format: %s", s)
	}
	return Format(s), nil
}

// Load reads the sequence from path on fs, or from stdin when path is "-".
func Load(fs afero.Fs, stdin io.Reader, path string, format Format) ([]any, error) {
	if path == "-" {
		return Decode(stdin, format)
	}
	f, err := fs.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open %s", path)
	}
	defer f.Close()

	seq, err := Decode(f, format)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read %s", path)
	}
	slog.Debug("loaded sequence", "path", path, "format", format, "elements", len(seq))
	return seq, nil
}

// Decode reads a sequence from r.
// Lines yields one string per non-empty line; JSON and YAML expect a top level array.
func Decode(r io.Reader, format Format) ([]any, error) {
	switch format {
	case Lines:
		return decodeLines(r)
	case JSON, YAML:
		b, err := io.ReadAll(r)
		if err != nil {
			return nil, errors.WithStack(err)
		}
		if len(bytes.TrimSpace(b)) == 0 {
			return []any{}, nil
		}
		seq := make([]any, 0)
		if format == JSON {
			err = json.Unmarshal(b, &seq)
		} else {
			err = yaml.Unmarshal(b, &seq)
		}
		if err != nil {
			return nil, errors.Wrapf(err, "failed to decode %s array", format)
		}
		return seq, nil
	default:
		return nil, errors.Newf("unknown input format: %s", format)
	}
}

func decodeLines(r io.Reader) ([]any, error) {
	seq := make([]any, 0)
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")
		if line == "" {
			continue
		}
		seq = append(seq, line)
	}
	if err := sc.Err(); err != nil {
		return nil, errors.WithStack(err)
	}
	return seq, nil
}
