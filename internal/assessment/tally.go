package assessment

import (
	"fmt"

	"github.com/abhisek/wellcheck/internal/catalog"
)

// Tally counts answers per category for one dimension. Counts are never
// negative: remove only ever undoes an earlier add.
type Tally struct {
	Dimension string
	order     []string
	counts    map[string]int
}

func newTally(d catalog.Dimension) *Tally {
	t := &Tally{
		Dimension: d.ID,
		order:     d.Categories,
		counts:    make(map[string]int, len(d.Categories)),
	}
	for _, c := range d.Categories {
		t.counts[c] = 0
	}
	return t
}

func (t *Tally) add(category string) {
	t.counts[category]++
}

func (t *Tally) remove(category string) {
	if t.counts[category] == 0 {
		panic(fmt.Sprintf("assessment: retracting uncounted %s/%s", t.Dimension, category))
	}
	t.counts[category]--
}

func (t *Tally) zero() {
	for c := range t.counts {
		t.counts[c] = 0
	}
}

// Count returns the count for a category.
func (t *Tally) Count(category string) int {
	return t.counts[category]
}

// Total returns the number of answers counted in this dimension.
func (t *Tally) Total() int {
	n := 0
	for _, c := range t.counts {
		n += c
	}
	return n
}

// Percentages rounds each category's share independently, so the values
// may not sum to exactly 100. All zero when nothing is counted.
func (t *Tally) Percentages() map[string]int {
	total := t.Total()
	out := make(map[string]int, len(t.order))
	for _, c := range t.order {
		out[c] = percent(t.counts[c], total)
	}
	return out
}

// Dominant returns the category with the highest count, ties going to the
// earlier declared category. ok is false when the tally is empty.
func (t *Tally) Dominant() (category string, ok bool) {
	best := 0
	for _, c := range t.order {
		if n := t.counts[c]; n > best {
			best, category = n, c
		}
	}
	return category, best > 0
}

// percent is round(100*count/total) with halves rounded up, in integer
// arithmetic.
func percent(count, total int) int {
	if total == 0 {
		return 0
	}
	return (200*count + total) / (2 * total)
}
