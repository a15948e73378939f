package pathbar

import "github.com/diamondburned/gtkpathbar/log"

// Candidate is one child as seen by the planner, in direction order.
type Candidate struct {
	MinWidth int
	NatWidth int

	// Revealed is true if the revealer has fully revealed the child.
	Revealed bool
	// Targeted is true if the revealer is headed toward revealed.
	Targeted bool
	// Removing is true if the child is queued for removal.
	Removing bool
}

// Plan is the outcome of fitting candidates into an available size. Show and
// Hide hold indices into the candidate slice.
type Plan struct {
	Show []int
	Hide []int

	// AllocatedWidth is the width used by the children that fit.
	AllocatedWidth int
	// PreviousChildWidth is the minimum width of the first child that did
	// not fit, or 0.
	PreviousChildWidth int
	// TotalWidth is the minimum width of every child.
	TotalWidth int
	// Overflow is true if any child did not fit.
	Overflow bool
}

// PlanVisibility greedily fits candidates into available. The first candidate
// whose cumulative minimum width is strictly larger than the available width
// overflows, and so does everything after it.
func PlanVisibility(cs []Candidate, available Size) Plan {
	var plan Plan

	for i, c := range cs {
		plan.TotalWidth += c.MinWidth

		if plan.Overflow || plan.TotalWidth > available.Width {
			if !plan.Overflow {
				plan.AllocatedWidth = plan.TotalWidth - c.MinWidth
				plan.PreviousChildWidth = c.MinWidth
				plan.Overflow = true
			}

			if c.Revealed && !c.Removing {
				plan.Hide = append(plan.Hide, i)
			}

			continue
		}

		if c.Removing || (c.Revealed && c.Targeted) {
			continue
		}

		plan.Show = append(plan.Show, i)
	}

	if !plan.Overflow {
		plan.AllocatedWidth = plan.TotalWidth
	}

	log.Debugf(
		"pathbar: planned %d children into %dpx: show %d, hide %d, used %dpx",
		len(cs), available.Width, len(plan.Show), len(plan.Hide), plan.AllocatedWidth,
	)

	return plan
}
