package types

// incrementalThreshold is the minimum collection length above which
// checkpoint-based early termination may engage, per spec.md §4.2.
const incrementalThreshold = 10000

// counts tallies how many elements of a collection classified as each
// DataType during a ProfileValues walk.
type counts struct {
	none, boolean, datetime, timeVal, date, integer, float, empty, str int
}

func (c *counts) add(dt DataType) {
	switch dt {
	case NONE:
		c.none++
	case BOOLEAN:
		c.boolean++
	case DATETIME:
		c.datetime++
	case TIME:
		c.timeVal++
	case DATE:
		c.date++
	case INTEGER:
		c.integer++
	case FLOAT:
		c.float++
	case EMPTY:
		c.empty++
	default:
		c.str++
	}
}

func (c *counts) total() int {
	return c.none + c.boolean + c.datetime + c.timeVal + c.date + c.integer + c.float + c.empty + c.str
}

// numericOrTemporal reports the combined count of every counter other than
// EMPTY and STRING.
func (c *counts) numericOrTemporal() int {
	return c.boolean + c.datetime + c.timeVal + c.date + c.integer + c.float + c.none
}

// safeDetermine applies the "safe" rule set, usable at checkpoints and at
// the final decision. It returns the resolved type and whether a rule
// fired.
func (c *counts) safeDetermine(seen int) (DataType, bool) {
	switch {
	case c.empty == seen:
		return EMPTY, true
	case c.none == seen:
		return NONE, true
	case c.none+c.empty == seen:
		return NONE, true
	case c.boolean+c.empty == seen:
		return BOOLEAN, true
	case c.str+c.empty == seen:
		return STRING, true
	default:
		return STRING, false
	}
}

// fullDetermine applies the full rule set, including the special all-digit
// resolution, usable only once the entire collection has been walked.
// allDigit must report whether every non-empty element classified as
// integer-like text per §4.1.
func (c *counts) fullDetermine(seen int, allDigit bool) DataType {
	if dt, ok := c.safeDetermine(seen); ok {
		return dt
	}

	switch {
	case c.date+c.empty == seen:
		return DATE
	case c.datetime+c.empty == seen:
		return DATETIME
	case c.timeVal+c.empty == seen:
		return TIME
	case c.integer+c.empty == seen:
		return INTEGER
	case c.integer+c.float+c.empty == seen:
		return FLOAT
	}

	if c.allDigitPartitioned(seen) && allDigit {
		return INTEGER
	}

	return MIXED
}

// allDigitPartitioned reports whether counters partition among
// {DATE, TIME, DATETIME, INTEGER, EMPTY} with at least one temporal-or-empty
// member.
func (c *counts) allDigitPartitioned(seen int) bool {
	partitioned := c.date+c.timeVal+c.datetime+c.integer+c.empty == seen
	if !partitioned {
		return false
	}
	return c.date+c.timeVal+c.datetime+c.empty > 0
}

// ProfileValues classifies every element of values via InferType and folds
// the results into a single DataType describing the whole collection, per
// spec.md §4.2. When useIncremental is true and len(values) exceeds
// incrementalThreshold, the walk may terminate early at the 25%/50%/75%
// checkpoints.
func ProfileValues(values []string, trim bool, useIncremental bool) DataType {
	n := len(values)
	if n == 0 {
		return EMPTY
	}

	incrementalActive := useIncremental && n > incrementalThreshold
	checkpoints := map[int]bool{}
	if incrementalActive {
		checkpoints[n*25/100] = true
		checkpoints[n*50/100] = true
		checkpoints[n*75/100] = true
	}

	var c counts
	// allDigit tracks whether every non-empty element classified so far is
	// integer-like text, maintained incrementally to support the
	// all-digit resolution without a second pass.
	allDigit := true

	for i, v := range values {
		dt := InferType(v, trim)
		c.add(dt)
		if dt != EMPTY && !IsIntLike(v, trim) {
			allDigit = false
		}

		if incrementalActive && checkpoints[i+1] {
			seen := i + 1
			if c.numericOrTemporal() > 0 && c.str > 0 {
				return MIXED
			}
			if dt, ok := c.safeDetermine(seen); ok {
				return dt
			}
		}
	}

	return c.fullDetermine(n, allDigit)
}
