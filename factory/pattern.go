/*
Package factory provides JSON to Go registration-pattern conversion.

PURPOSE:
  Converts JSON pattern definitions into regperiod.Pattern values. This
  enables period configuration without code changes - the scheme operator
  can adjust opening and closing dates in configuration, and the factory
  creates the proper Go structs.

JSON SCHEMA:
  {
    "patterns": [
      {
        "name": "scheme-years-2026-onwards",
        "initial_registration_year": 2026,
        "windows": [
          {
            "window_type": "DirectLargeProducer",
            "opening_date":  {"year_offset": -1, "month": 10, "day": 1},
            "deadline_date": {"year_offset": 0,  "month": 4,  "day": 1},
            "closing_date":  {"year_offset": 0,  "month": 10, "day": 1}
          }
        ]
      }
    ]
  }

  final_registration_year is optional; omitted means "derive from the
  current year" (see regperiod.Pattern).

VALIDATION:
  Structural validation (known window type, month/day ranges, year sanity)
  happens here via struct tags. The cross-pattern duplicate-year invariant
  is enforced later, at expansion time, because it depends on the current
  year when final years are dynamic.

SEE ALSO:
  - regperiod/types.go: Target types
  - config/config.go: Names the pattern file to load
*/
package factory

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/packlane/compliance-engine/regperiod"
)

// =============================================================================
// JSON SCHEMA TYPES
// =============================================================================

// PatternsJSON is the top-level configuration document.
type PatternsJSON struct {
	Patterns []PatternJSON `json:"patterns" validate:"required,min=1,dive"`
}

// PatternJSON is the JSON representation of one pattern.
type PatternJSON struct {
	Name                    string       `json:"name" validate:"required"`
	InitialRegistrationYear int          `json:"initial_registration_year" validate:"required,min=2000,max=2200"`
	FinalRegistrationYear   *int         `json:"final_registration_year,omitempty" validate:"omitempty,min=2000,max=2200"`
	Windows                 []WindowJSON `json:"windows" validate:"required,min=1,dive"`
}

// WindowJSON is one recurring window template.
type WindowJSON struct {
	WindowType   string   `json:"window_type" validate:"required,oneof=DirectLargeProducer DirectSmallProducer CsoLargeProducer CsoSmallProducer Cso"`
	OpeningDate  DateJSON `json:"opening_date"`
	DeadlineDate DateJSON `json:"deadline_date"`
	ClosingDate  DateJSON `json:"closing_date"`
}

// DateJSON is a recurring date: offset from the registration year plus a
// fixed month and day.
type DateJSON struct {
	YearOffset int `json:"year_offset" validate:"min=-5,max=5"`
	Month      int `json:"month" validate:"required,min=1,max=12"`
	Day        int `json:"day" validate:"required,min=1,max=31"`
}

// =============================================================================
// PATTERN FACTORY
// =============================================================================

// PatternFactory converts JSON pattern documents to regperiod values.
type PatternFactory struct {
	validate *validator.Validate
}

// NewPatternFactory creates a new pattern factory.
func NewPatternFactory() *PatternFactory {
	return &PatternFactory{validate: validator.New()}
}

// ParsePatterns parses and validates a JSON document.
func (f *PatternFactory) ParsePatterns(raw []byte) ([]regperiod.Pattern, error) {
	var doc PatternsJSON
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse patterns JSON: %w", err)
	}
	if err := f.validate.Struct(doc); err != nil {
		return nil, fmt.Errorf("invalid patterns configuration: %w", err)
	}

	patterns := make([]regperiod.Pattern, 0, len(doc.Patterns))
	for _, pj := range doc.Patterns {
		patterns = append(patterns, fromJSON(pj))
	}
	return patterns, nil
}

// LoadPatterns reads and parses the pattern file named in configuration.
func (f *PatternFactory) LoadPatterns(path string) ([]regperiod.Pattern, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read patterns file %s: %w", path, err)
	}
	return f.ParsePatterns(raw)
}

func fromJSON(pj PatternJSON) regperiod.Pattern {
	windows := make([]regperiod.WindowTemplate, 0, len(pj.Windows))
	for _, wj := range pj.Windows {
		windows = append(windows, regperiod.WindowTemplate{
			Type:        regperiod.WindowType(wj.WindowType),
			OpeningDate: dateFromJSON(wj.OpeningDate),
			Deadline:    dateFromJSON(wj.DeadlineDate),
			ClosingDate: dateFromJSON(wj.ClosingDate),
		})
	}
	return regperiod.Pattern{
		Name:                    pj.Name,
		InitialRegistrationYear: pj.InitialRegistrationYear,
		FinalRegistrationYear:   pj.FinalRegistrationYear,
		Windows:                 windows,
	}
}

func dateFromJSON(dj DateJSON) regperiod.DateTemplate {
	return regperiod.DateTemplate{
		YearOffset: dj.YearOffset,
		Month:      time.Month(dj.Month),
		Day:        dj.Day,
	}
}

// DefaultPatternsJSON returns the built-in pattern set used when no
// pattern file is configured: the 2025 transition year with its scheme
// split, then a single ongoing pattern from 2026 whose windows open on
// 1 October of the preceding year.
func DefaultPatternsJSON() []byte {
	return []byte(`{
  "patterns": [
    {
      "name": "transition-2025",
      "initial_registration_year": 2025,
      "final_registration_year": 2025,
      "windows": [
        {
          "window_type": "DirectLargeProducer",
          "opening_date":  {"year_offset": 0, "month": 1, "day": 1},
          "deadline_date": {"year_offset": 0, "month": 4, "day": 1},
          "closing_date":  {"year_offset": 1, "month": 1, "day": 1}
        },
        {
          "window_type": "DirectSmallProducer",
          "opening_date":  {"year_offset": 0, "month": 1, "day": 1},
          "deadline_date": {"year_offset": 0, "month": 4, "day": 1},
          "closing_date":  {"year_offset": 1, "month": 1, "day": 1}
        },
        {
          "window_type": "Cso",
          "opening_date":  {"year_offset": 0, "month": 1, "day": 1},
          "deadline_date": {"year_offset": 0, "month": 4, "day": 1},
          "closing_date":  {"year_offset": 1, "month": 1, "day": 1}
        }
      ]
    },
    {
      "name": "ongoing-2026",
      "initial_registration_year": 2026,
      "windows": [
        {
          "window_type": "DirectLargeProducer",
          "opening_date":  {"year_offset": -1, "month": 10, "day": 1},
          "deadline_date": {"year_offset": 0,  "month": 4,  "day": 1},
          "closing_date":  {"year_offset": 0,  "month": 10, "day": 1}
        },
        {
          "window_type": "DirectSmallProducer",
          "opening_date":  {"year_offset": -1, "month": 10, "day": 1},
          "deadline_date": {"year_offset": 0,  "month": 4,  "day": 1},
          "closing_date":  {"year_offset": 0,  "month": 10, "day": 1}
        },
        {
          "window_type": "CsoLargeProducer",
          "opening_date":  {"year_offset": -1, "month": 10, "day": 1},
          "deadline_date": {"year_offset": 0,  "month": 4,  "day": 1},
          "closing_date":  {"year_offset": 0,  "month": 10, "day": 1}
        },
        {
          "window_type": "CsoSmallProducer",
          "opening_date":  {"year_offset": -1, "month": 10, "day": 1},
          "deadline_date": {"year_offset": 0,  "month": 4,  "day": 1},
          "closing_date":  {"year_offset": 0,  "month": 10, "day": 1}
        }
      ]
    }
  ]
}`)
}
