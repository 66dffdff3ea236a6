package lockfile

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"

	"go.trai.ch/pin/internal/core/domain"
	"go.trai.ch/zerr"
)

// Encode renders a record in artifact form: one "group:module=version" line per
// entry, sorted by coordinate, each terminated by a newline.
func Encode(record *domain.LockRecord) []byte {
	var buf bytes.Buffer
	if record == nil {
		return buf.Bytes()
	}
	for e := range record.All() {
		buf.WriteString(e.String())
		buf.WriteByte('\n')
	}
	return buf.Bytes()
}

// Decode parses an artifact. An empty artifact is a lock with no entries.
// Any line that is not a well-formed, unique entry in coordinate order fails with
// domain.ErrMalformedLockArtifact carrying the configuration and line number.
func Decode(configuration string, data []byte) (*domain.LockRecord, error) {
	if len(data) == 0 {
		return domain.NewLockRecord()
	}

	text := strings.TrimSuffix(string(data), "\n")
	lines := strings.Split(text, "\n")

	entries := make([]domain.LockEntry, 0, len(lines))
	seen := make(map[domain.ModuleCoordinate]int, len(lines))

	for i, line := range lines {
		lineNo := i + 1
		if line == "" {
			return nil, malformed(configuration, lineNo, line, "blank line")
		}
		if !utf8.ValidString(line) {
			return nil, malformed(configuration, lineNo, line, "invalid UTF-8")
		}

		coordinate, version, ok := strings.Cut(line, "=")
		if !ok {
			return nil, malformed(configuration, lineNo, line, "expected group:module=version")
		}

		c, err := domain.ParseModuleCoordinate(coordinate)
		if err != nil {
			return nil, malformed(configuration, lineNo, line, "invalid coordinate "+quote(coordinate))
		}
		if err := domain.ValidateVersion(version); err != nil {
			return nil, malformed(configuration, lineNo, line, "invalid version "+quote(version))
		}
		if first, dup := seen[c]; dup {
			return nil, zerr.With(
				malformed(configuration, lineNo, line, fmt.Sprintf("duplicate coordinate %s, first declared on line %d", c, first)),
				"coordinate", c.String(),
			)
		}

		if n := len(entries); n > 0 && c.Compare(entries[n-1].Coordinate) < 0 {
			return nil, zerr.With(
				malformed(configuration, lineNo, line, fmt.Sprintf("%s is out of order, must sort before %s", c, entries[n-1].Coordinate)),
				"coordinate", c.String(),
			)
		}

		seen[c] = lineNo
		entries = append(entries, domain.LockEntry{Coordinate: c, Version: version})
	}

	return domain.NewLockRecord(entries...)
}

func malformed(configuration string, line int, content, reason string) error {
	err := zerr.Wrap(domain.ErrMalformedLockArtifact, fmt.Sprintf("%s line %d: %s", configuration, line, reason))
	err = zerr.With(err, "configuration", configuration)
	err = zerr.With(err, "line", line)
	return zerr.With(err, "content", content)
}

func quote(s string) string {
	return fmt.Sprintf("%q", s)
}
