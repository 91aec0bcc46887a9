// Package charmtext reads and writes the bulk charm line format.
//
// Each line holds twelve comma-separated fields:
//
//	skill1,level1,skill2,level2,skill3,level3,armor1,armor2,armor3,weapon,reserved1,reserved2
//
// Fields are not quoted, so skill names cannot contain commas.
package charmtext

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/KirkDiggler/charm-tracker/internal/entities"
	"github.com/KirkDiggler/charm-tracker/internal/errors"
)

// FieldCount is the number of fields in a line
const FieldCount = 2*entities.SkillsPerCharm + entities.SlotCount

// Record is one parsed line. It has no ID; the store assigns one on import.
type Record struct {
	Line   int
	Skills entities.Skills
	Slots  entities.Slots
}

// LineError explains why a line was skipped
type LineError struct {
	Line int
	Err  error
}

func (e LineError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e LineError) Unwrap() error {
	return e.Err
}

// Parse reads every non-blank line of text. Lines that cannot be read are
// reported in the returned LineErrors and skipped; they never stop the batch.
// Line numbers are 1-based.
func Parse(text string) ([]Record, []LineError) {
	var records []Record
	var skipped []LineError

	for i, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		record, err := ParseLine(line)
		if err != nil {
			skipped = append(skipped, LineError{Line: i + 1, Err: err})
			continue
		}
		record.Line = i + 1
		records = append(records, record)
	}

	return records, skipped
}

// ParseLine reads a single line. Levels that are not integers read as 0,
// matching how the format has always been exported by hand. A blank slot
// reads as 0; any other slot value must be a non-negative integer. Fields past
// the twelfth are ignored.
func ParseLine(line string) (Record, error) {
	fields := strings.Split(line, ",")
	if len(fields) < FieldCount {
		return Record{}, errors.InvalidArgumentf("expected %d fields, got %d", FieldCount, len(fields))
	}
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}

	var record Record
	for i := range record.Skills {
		name := fields[2*i]
		level, err := strconv.Atoi(fields[2*i+1])
		if err != nil {
			level = 0
		}
		record.Skills[i] = entities.Skill{Name: name, Level: level}
	}
	record.Skills = record.Skills.Normalize()

	vb := errors.NewValidationBuilder()
	offset := 2 * entities.SkillsPerCharm
	for i := range record.Slots {
		if fields[offset+i] == "" {
			continue
		}
		capacity, err := strconv.Atoi(fields[offset+i])
		if err != nil || capacity < 0 {
			vb.Fieldf(fmt.Sprintf("slots[%d]", i), "must be a non-negative integer, got %q", fields[offset+i])
			continue
		}
		record.Slots[i] = capacity
	}
	if err := vb.Build(); err != nil {
		return Record{}, err
	}

	return record, nil
}

// FormatLine renders one charm as a line
func FormatLine(charm entities.Charm) string {
	fields := make([]string, 0, FieldCount)
	for _, skill := range charm.Skills {
		fields = append(fields, skill.Name, strconv.Itoa(skill.Level))
	}
	for _, capacity := range charm.Slots {
		fields = append(fields, strconv.Itoa(capacity))
	}
	return strings.Join(fields, ",")
}

// Format renders charms in order, one per line, with no trailing newline
func Format(charms []entities.Charm) string {
	lines := make([]string, len(charms))
	for i, charm := range charms {
		lines[i] = FormatLine(charm)
	}
	return strings.Join(lines, "\n")
}
