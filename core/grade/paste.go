package grade

import (
	"regexp"
	"strings"
)

var (
	lineBreaks = regexp.MustCompile(`\r?\n`)
	tabRuns    = regexp.MustCompile(`\t+`)
)

// nonEmptyLines splits raw clipboard text into trimmed lines, dropping the
// ones that are empty after trimming.
func nonEmptyLines(raw string) []string {
	var lines []string
	for _, line := range lineBreaks.Split(raw, -1) {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// splitColumns splits a line on runs of tabs (one or more consecutive tabs
// count as one separator) and trims each segment.
func splitColumns(line string) []string {
	cols := tabRuns.Split(line, -1)
	for i, col := range cols {
		cols[i] = strings.TrimSpace(col)
	}
	return cols
}

// applyPaste interprets raw clipboard text pasted into the cell identified by
// (targetID, field) and returns the revised course list:
//
//   - a single line with ≥3 tab-separated segments fans out positionally to
//     name/credits/grade of the target, whatever cell received the paste;
//   - any other single line is written verbatim into the target field only;
//   - multiple lines map positionally onto the records at and after the
//     target; rows with ≥3 segments overwrite all three fields, shorter rows
//     overwrite only the target field with the trimmed line;
//   - rows extending past the end of the list append new records (all three
//     fields when ≥3 segments, otherwise only the target field).
//
// A missing target makes the whole operation a no-op.
func applyPaste(courses []Course, targetID string, field Field, raw string, genID IDGenerator) []Course {
	idx := -1
	for i, c := range courses {
		if c.ID == targetID {
			idx = i
			break
		}
	}
	if idx < 0 || !field.IsValid() {
		return courses
	}

	lines := nonEmptyLines(raw)
	if len(lines) == 0 {
		return courses
	}

	out := cloneCourses(courses)

	if len(lines) == 1 {
		if cols := splitColumns(lines[0]); len(cols) >= 3 {
			out[idx].Name, out[idx].Credits, out[idx].Grade = cols[0], cols[1], cols[2]
		} else {
			// plain single value: paste verbatim, parsing happens later
			out[idx].SetField(field, raw)
		}
		return out
	}

	for k, line := range lines {
		pos := idx + k
		cols := splitColumns(line)
		if pos < len(out) {
			if len(cols) >= 3 {
				out[pos].Name, out[pos].Credits, out[pos].Grade = cols[0], cols[1], cols[2]
			} else {
				out[pos].SetField(field, line)
			}
			continue
		}
		// row overflows the current list: append a fresh record
		c := Course{ID: genID()}
		if len(cols) >= 3 {
			c.Name, c.Credits, c.Grade = cols[0], cols[1], cols[2]
		} else {
			c.SetField(field, line)
		}
		out = append(out, c)
	}
	return out
}
