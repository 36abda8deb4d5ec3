package breach

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ParseRange scans a range response of SUFFIX:COUNT lines for suffix and
// returns its count, or 0 when it is absent. Padding records carry a count
// of 0 and therefore read as absent. Any malformed line fails the whole
// response.
func ParseRange(body io.Reader, suffix string) (int, error) {
	scanner := bufio.NewScanner(body)
	found := 0
	line := 0

	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}

		candidate, rawCount, ok := strings.Cut(text, ":")
		if !ok || candidate == "" {
			return 0, fmt.Errorf("%w: line %d has no count", ErrMalformedResponse, line)
		}
		count, err := strconv.Atoi(rawCount)
		if err != nil || count < 0 {
			return 0, fmt.Errorf("%w: line %d has invalid count %q", ErrMalformedResponse, line, rawCount)
		}

		if strings.EqualFold(candidate, suffix) {
			found = count
		}
	}
	if err := scanner.Err(); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	return found, nil
}
