package engine

import (
	"fmt"
	"strings"

	"csv-refine/internal/dataset"
	"csv-refine/internal/errors"
	"csv-refine/internal/frame"
)

// Validate applies the variant's declared checks to a refined frame.
// Every check runs so a single pass reports all broken columns together.
func Validate(spec dataset.Spec, f *frame.Frame) error {
	var failures []string
	for _, check := range spec.Checks {
		col, ok := f.Column(check.Column)
		if !ok {
			failures = append(failures, fmt.Sprintf("%s: column not present", check.Column))
			continue
		}
		bad := 0
		for _, v := range col.Cells {
			if !check.OK(v) {
				bad++
			}
		}
		if bad > 0 {
			failures = append(failures, fmt.Sprintf("%s: %d rows fail: %s", check.Column, bad, check.Rule))
		}
	}
	if len(failures) > 0 {
		return errors.New(errors.Validation, "%s: %s", spec.Name, strings.Join(failures, "; "))
	}
	return nil
}
