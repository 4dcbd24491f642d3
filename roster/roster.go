/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */

// Package roster loads competitor rosters from delimited text or HTML
// tables and turns them into bracket.Competitor values.
package roster

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/mikeb26/kyutd/bracket"
)

var ErrEmptyRoster = errors.New("roster: no header row")

// Roster is a parsed roster. Skipped lists rows that were dropped.
type Roster struct {
	Competitors []bracket.Competitor
	Skipped     []SkippedRow
}

// SkippedRow describes a data row that was not turned into a competitor.
// Line is 1-based within Source (the header is line 1 of a text roster).
type SkippedRow struct {
	Source string
	Line   int
	Reason string
}

func (s SkippedRow) String() string {
	if s.Source == "" {
		return fmt.Sprintf("line %d: %s", s.Line, s.Reason)
	}
	return fmt.Sprintf("%s:%d: %s", s.Source, s.Line, s.Reason)
}

// DuplicateIDError reports an id used by more than one competitor.
type DuplicateIDError struct {
	ID string
	// Names of the clashing competitors, in roster order.
	Names []string
}

func (e *DuplicateIDError) Error() string {
	return fmt.Sprintf("roster: duplicate id %q (%s)", e.ID,
		strings.Join(e.Names, ", "))
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// checkCompetitor returns "" when c passes validation, otherwise a reason
// naming the failing fields.
func checkCompetitor(c *bracket.Competitor) string {
	err := validate.Struct(c)
	if err == nil {
		return ""
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	reasons := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		reasons = append(reasons, fmt.Sprintf("%s is %s", fe.Field(), fe.Tag()))
	}
	return strings.Join(reasons, ", ")
}

// checkDuplicates returns a *DuplicateIDError for the first id that
// appears twice.
func checkDuplicates(competitors []bracket.Competitor) error {
	firstAt := make(map[string]int, len(competitors))
	for i, c := range competitors {
		j, ok := firstAt[c.ID]
		if !ok {
			firstAt[c.ID] = i
			continue
		}
		return &DuplicateIDError{
			ID:    c.ID,
			Names: []string{competitors[j].Name, c.Name},
		}
	}
	return nil
}

// Merge concatenates rosters in order and rejects ids shared between them.
func Merge(rosters ...*Roster) (*Roster, error) {
	var out Roster
	for _, r := range rosters {
		if r == nil {
			continue
		}
		out.Competitors = append(out.Competitors, r.Competitors...)
		out.Skipped = append(out.Skipped, r.Skipped...)
	}
	if err := checkDuplicates(out.Competitors); err != nil {
		return nil, err
	}
	return &out, nil
}
