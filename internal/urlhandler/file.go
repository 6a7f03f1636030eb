package urlhandler

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

var (
	ErrFileNotFound = errors.New("targets file not found")
	ErrFileEmpty    = errors.New("targets file contains no valid targets")
)

// ReadTargetsFromFile loads one target per line from path. Blank lines and
// '#' comments are ignored. Lines NormalizeTarget rejects are logged and dropped.
func ReadTargetsFromFile(path string, logger zerolog.Logger) ([]string, error) {
	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}
	if err != nil {
		return nil, fmt.Errorf("open targets file %s: %w", path, err)
	}
	defer f.Close()

	targets, err := readTargets(f, logger.With().Str("file_path", path).Logger())
	if err != nil {
		return nil, fmt.Errorf("read targets file %s: %w", path, err)
	}
	if len(targets) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrFileEmpty, path)
	}
	return targets, nil
}

func readTargets(r io.Reader, logger zerolog.Logger) ([]string, error) {
	var targets []string
	skipped := 0

	sc := bufio.NewScanner(r)
	for line := 1; sc.Scan(); line++ {
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		target, err := NormalizeTarget(text)
		if err != nil {
			logger.Warn().Err(err).Int("line", line).Str("raw", text).Msg("Skipping invalid target")
			skipped++
			continue
		}
		targets = append(targets, target)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	logger.Debug().Int("targets", len(targets)).Int("skipped", skipped).Msg("Targets file read")
	return targets, nil
}
