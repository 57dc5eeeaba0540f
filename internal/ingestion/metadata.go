package ingestion

import (
	"path/filepath"
	"regexp"
	"strings"
)

// JobMeta is the source metadata attached to an ingested job description.
type JobMeta struct {
	Filename string
	Company  string
	Role     string
}

// metaHeaderLines is how far into the document header comments are honored.
const metaHeaderLines = 5

var stemSeparators = regexp.MustCompile(`[_\-]+`)

// ParseJobMeta extracts company and role for a job description. Explicit
// "# Company:" / "# Role:" lines within the first few lines of the text win;
// otherwise the filename stem is split on underscores and hyphens, with the
// first part taken as the company and the rest as the role.
func ParseJobMeta(text, filename string) JobMeta {
	meta := JobMeta{Filename: filepath.Base(filename)}

	lines := strings.Split(text, "\n")
	if len(lines) > metaHeaderLines {
		lines = lines[:metaHeaderLines]
	}
	for _, line := range lines {
		lower := strings.ToLower(line)
		switch {
		case strings.HasPrefix(lower, "# company:"):
			meta.Company = strings.TrimSpace(line[len("# company:"):])
		case strings.HasPrefix(lower, "# role:"):
			meta.Role = strings.TrimSpace(line[len("# role:"):])
		}
	}

	if meta.Company != "" && meta.Role != "" {
		return meta
	}

	stem := strings.TrimSuffix(meta.Filename, filepath.Ext(meta.Filename))
	parts := stemSeparators.Split(stem, -1)
	if meta.Company == "" && len(parts) > 0 {
		meta.Company = parts[0]
	}
	if meta.Role == "" && len(parts) > 1 {
		meta.Role = strings.Join(parts[1:], " ")
	}
	return meta
}
