package scoring

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/jonathan/resume-matcher/internal/taxonomy"
)

// Band is a coarse seniority level inferred from keyword cues and
// years-of-experience numerals.
type Band int

const (
	// BandUnknown means the text carried no seniority signal at all.
	BandUnknown Band = iota - 1
	BandEntry
	BandMid
	BandSenior
	BandStaff
)

// String returns the band's display name.
func (b Band) String() string {
	switch b {
	case BandEntry:
		return "entry"
	case BandMid:
		return "mid"
	case BandSenior:
		return "senior"
	case BandStaff:
		return "staff"
	default:
		return "unknown"
	}
}

// SeniorityCue maps keyword terms to the band they indicate.
type SeniorityCue struct {
	Band  Band
	Terms []string
}

// DomainBucket is a coarse domain classification driven by keyword-set
// membership. A text may belong to several buckets at once.
type DomainBucket struct {
	Name     string
	Keywords []string
}

// Policy holds the keyword vocabularies and tuning constants behind the
// responsibility, seniority and domain components. The lists are heuristic
// policy choices rather than structural requirements, so they are carried as
// swappable data instead of hard-coded inside the calculator.
type Policy struct {
	// ResponsibilityTerms is the fixed vocabulary of action/responsibility
	// words counted in both texts (single tokens, matched exactly).
	ResponsibilityTerms []string

	// SeniorityCues is scanned in order; the highest band with a matching
	// term wins. Years-of-experience numerals are folded in via the
	// Years* thresholds below.
	SeniorityCues []SeniorityCue

	// YearsMid, YearsSenior and YearsStaff are the minimum years of
	// experience that map onto the respective bands.
	YearsMid    int
	YearsSenior int
	YearsStaff  int

	// AdjacentBandCredit is the partial score given when the two bands
	// differ by exactly one step, and when only one side is classifiable.
	AdjacentBandCredit float64

	// DomainBuckets drive the domain-alignment component.
	DomainBuckets []DomainBucket
}

// DefaultPolicy returns the built-in vocabularies. Callers that need
// different calibration construct their own Policy; the calculator treats
// whatever it is given as fixed data.
func DefaultPolicy() *Policy {
	return &Policy{
		ResponsibilityTerms: []string{
			"design", "implement", "deploy", "scale", "optimize",
			"build", "lead", "collaborate", "maintain", "own",
			"pipelines", "apis", "services", "models", "evaluation", "benchmark",
		},
		SeniorityCues: []SeniorityCue{
			{Band: BandEntry, Terms: []string{"intern", "internship", "junior", "new grad", "entry level", "entry-level"}},
			{Band: BandMid, Terms: []string{"mid-level", "mid level", "intermediate"}},
			{Band: BandSenior, Terms: []string{"senior", "sr", "lead"}},
			{Band: BandStaff, Terms: []string{"staff", "principal", "distinguished"}},
		},
		YearsMid:           2,
		YearsSenior:        5,
		YearsStaff:         8,
		AdjacentBandCredit: 0.5,
		DomainBuckets: []DomainBucket{
			{Name: "ai", Keywords: []string{"ml", "machine learning", "deep learning", "pytorch", "tensorflow", "llm", "nlp", "computer vision"}},
			{Name: "robotics", Keywords: []string{"ros", "ros2", "slam", "lidar", "autonomy", "control", "pid", "isaac"}},
			{Name: "backend", Keywords: []string{"api", "microservices", "grpc", "rest", "database", "postgres", "cassandra", "redis", "kafka", "kubernetes"}},
			{Name: "fullstack", Keywords: []string{"react", "next.js", "frontend", "backend", "full stack", "full-stack", "typescript"}},
			{Name: "firmware", Keywords: []string{"embedded", "rtos", "baremetal", "stm32", "fpga", "uart", "spi", "i2c"}},
			{Name: "data", Keywords: []string{"airflow", "spark", "pyspark", "hadoop", "etl", "data pipeline", "bigquery", "snowflake"}},
		},
	}
}

// yearsPattern matches years-of-experience numerals such as "5+ years" or
// "3 yrs".
var yearsPattern = regexp.MustCompile(`(\d{1,2})\s*\+?\s*(?:years?|yrs?)`)

// maxYears extracts the largest years-of-experience figure mentioned in text.
func maxYears(text string) (int, bool) {
	matches := yearsPattern.FindAllStringSubmatch(strings.ToLower(text), -1)
	best, found := 0, false
	for _, m := range matches {
		n, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		found = true
		if n > best {
			best = n
		}
	}
	return best, found
}

// ClassifySeniority assigns text to a seniority band. Cue terms and years
// numerals both contribute; the highest indicated band wins. Texts with no
// signal classify as BandUnknown.
func (p *Policy) ClassifySeniority(text string) Band {
	padded := " " + taxonomy.Normalize(text) + " "
	band := BandUnknown
	for _, cue := range p.SeniorityCues {
		if cue.Band <= band {
			continue
		}
		for _, term := range cue.Terms {
			if strings.Contains(padded, " "+taxonomy.Normalize(term)+" ") {
				band = cue.Band
				break
			}
		}
	}
	if years, ok := maxYears(text); ok {
		if yb := p.yearsBand(years); yb > band {
			band = yb
		}
	}
	return band
}

func (p *Policy) yearsBand(years int) Band {
	switch {
	case years >= p.YearsStaff:
		return BandStaff
	case years >= p.YearsSenior:
		return BandSenior
	case years >= p.YearsMid:
		return BandMid
	default:
		return BandEntry
	}
}

// ClassifyDomains returns the names of every bucket whose keyword set
// intersects the text, in bucket declaration order.
func (p *Policy) ClassifyDomains(text string) []string {
	padded := " " + taxonomy.Normalize(text) + " "
	var buckets []string
	for _, bucket := range p.DomainBuckets {
		for _, keyword := range bucket.Keywords {
			if strings.Contains(padded, " "+taxonomy.Normalize(keyword)+" ") {
				buckets = append(buckets, bucket.Name)
				break
			}
		}
	}
	return buckets
}
