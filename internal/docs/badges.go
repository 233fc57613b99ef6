package docs

import (
	"fmt"
	"os"
	"strings"
)

// badgeMarker is the sentinel that makes badge injection idempotent: if it
// already appears anywhere in a file, the file is left untouched.
const badgeMarker = "![Reproducible](https://img.shields.io/badge/Reproducible-Yes-brightgreen)"

// badgeBlock returns the badge section inserted after the first heading of a
// workflow file. The surrounding blank lines are part of the block.
func badgeBlock(repoURL string) string {
	return fmt.Sprintf(`
[![Reproducible](https://img.shields.io/badge/Reproducible-Yes-brightgreen)](%s)
[![R](https://img.shields.io/badge/R-4.0+-blue)](https://www.r-project.org/)
[![Tidyverse](https://img.shields.io/badge/Tidyverse-Compatible-orange)](https://www.tidyverse.org/)
[![License](https://img.shields.io/badge/License-MIT-yellow.svg)](https://opensource.org/licenses/MIT)

`, repoURL)
}

// InjectBadges adds the reproduction badge block to the file at path,
// immediately after the first heading found within the first 10 lines. If
// the badges are already present, or no heading occurs early enough, the
// file is left as is.
func InjectBadges(path, repoURL string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	content := string(data)

	if strings.Contains(content, badgeMarker) {
		return nil
	}

	lines := strings.Split(content, "\n")
	limit := len(lines)
	if limit > 10 {
		limit = 10
	}
	for i := 0; i < limit; i++ {
		if strings.HasPrefix(lines[i], "#") {
			inserted := make([]string, 0, len(lines)+1)
			inserted = append(inserted, lines[:i+1]...)
			inserted = append(inserted, badgeBlock(repoURL))
			inserted = append(inserted, lines[i+1:]...)
			out := strings.Join(inserted, "\n")
			if err := os.WriteFile(path, []byte(out), 0o644); err != nil {
				return fmt.Errorf("writing %s: %w", path, err)
			}
			return nil
		}
	}

	// No heading in the first 10 lines: nothing to anchor the badges to.
	return nil
}
