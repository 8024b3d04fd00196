// SPDX-License-Identifier: AGPL-3.0-or-later

package engine

import (
	"strconv"
)

// SimpleEngine applies registered rules in order and concatenates their
// results. Rules whose AppliesTo declines the batch are skipped; execution
// continues past failing rules, accumulating every result.
type SimpleEngine struct {
	rules []Rule
}

var _ Engine = (*SimpleEngine)(nil)

// NewSimpleEngine creates an engine with an initial rule set.
func NewSimpleEngine(rules ...Rule) *SimpleEngine {
	return &SimpleEngine{rules: rules}
}

// Register appends rules to the execution order.
func (e *SimpleEngine) Register(rules ...Rule) {
	e.rules = append(e.rules, rules...)
}

// Validate runs every applicable rule against the batch.
func (e *SimpleEngine) Validate(batch Batch) []Result {
	var results []Result
	for _, rule := range e.rules {
		if rule.AppliesTo(batch) {
			results = append(results, rule.Validate(batch)...)
		}
	}
	return results
}

// Metadata describes the engine configuration.
func (e *SimpleEngine) Metadata() map[string]string {
	return map[string]string{"rule_count": strconv.Itoa(len(e.rules))}
}
