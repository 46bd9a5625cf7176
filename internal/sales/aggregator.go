// Package sales values sales records against a price map.
//
// Aggregate is a pure fold: it performs no I/O, keeps no state between calls
// and returns the running total together with one note per record that did
// not contribute to it. Negative quantities are rejected with a note.
package sales

import (
	"fmt"

	"github.com/ginjaninja78/compute-sales/internal/types"
	"github.com/ginjaninja78/compute-sales/internal/validation"
)

// Outcome classifies what happened to a single sales record.
type Outcome string

const (
	OutcomeValid            Outcome = "valid"
	OutcomeInvalid          Outcome = "invalid"
	OutcomeNegativeQuantity Outcome = "negative_quantity"
	OutcomeNotFound         Outcome = "not_found"
)

// Outcomes lists every classification in decision order.
var Outcomes = []Outcome{OutcomeInvalid, OutcomeNegativeQuantity, OutcomeNotFound, OutcomeValid}

// InvalidRecordNote is the note appended for records missing a usable
// Product or Quantity field.
const InvalidRecordNote = "Invalid sales record skipped."

// Result is the value produced by Aggregate.
type Result struct {
	// Total is the unrounded sum of price*quantity over valid records.
	Total float64

	// Notes holds one diagnostic per skipped record, in input order.
	Notes []string

	// Tally counts records per outcome.
	Tally map[Outcome]int
}

// Records returns the number of records the result accounts for.
func (r Result) Records() int {
	n := 0
	for _, c := range r.Tally {
		n += c
	}
	return n
}

// Aggregate applies, in order, the first matching rule to each record:
// malformed, negative quantity, unknown product, valid.
func Aggregate(prices types.PriceMap, records []types.Record) Result {
	res := Result{
		Notes: []string{},
		Tally: make(map[Outcome]int, len(Outcomes)),
	}

	for i, rec := range records {
		outcome, amount, note := classify(prices, rec, i+1)
		res.Tally[outcome]++
		if outcome == OutcomeValid {
			res.Total += amount
			continue
		}
		res.Notes = append(res.Notes, note)
	}

	return res
}

// classify returns the outcome for one record, the amount it contributes
// when valid, and the note to report otherwise.
func classify(prices types.PriceMap, rec types.Record, row int) (Outcome, float64, string) {
	product, verr := validation.RequireString(rec, types.FieldProduct, row)
	if verr != nil {
		return OutcomeInvalid, 0, InvalidRecordNote
	}

	quantity, verr := validation.RequireNumber(rec, types.FieldQuantity, row)
	if verr != nil {
		return OutcomeInvalid, 0, InvalidRecordNote
	}

	if quantity < 0 {
		return OutcomeNegativeQuantity, 0, fmt.Sprintf("Negative quantity: %s", product)
	}

	price, ok := prices[product]
	if !ok {
		return OutcomeNotFound, 0, fmt.Sprintf("Not found: %s", product)
	}

	return OutcomeValid, price * quantity, ""
}
