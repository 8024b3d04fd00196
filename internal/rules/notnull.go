// SPDX-License-Identifier: AGPL-3.0-or-later

// Package rules provides the built-in validation rules and the factory that
// interprets a rule spec's validation directives into engine rules.
package rules

import (
	"fmt"

	"github.com/datavet/datavet/internal/engine"
)

// NotNull fails a batch when any record has a nil or missing value for the
// target field.
type NotNull struct {
	field string
}

// NewNotNull creates a not-null rule for the given field.
func NewNotNull(field string) *NotNull {
	return &NotNull{field: field}
}

func (r *NotNull) ID() string {
	return "not-null:" + r.field
}

func (r *NotNull) Description() string {
	return fmt.Sprintf("field '%s' must not be null", r.field)
}

// AppliesTo accepts every batch; field presence is part of the check itself.
func (r *NotNull) AppliesTo(engine.Batch) bool { return true }

func (r *NotNull) Validate(batch engine.Batch) []engine.Result {
	passed := true
	for _, record := range batch.Records() {
		if record[r.field] == nil {
			passed = false
			break
		}
	}

	result := engine.Result{
		RuleID:   r.ID(),
		BatchID:  batch.ID(),
		Passed:   passed,
		Metadata: r.Metadata(),
	}
	if !passed {
		result.Message = fmt.Sprintf("nulls found for '%s'", r.field)
	}
	return []engine.Result{result}
}

func (r *NotNull) Metadata() map[string]string {
	return map[string]string{"field": r.field}
}
