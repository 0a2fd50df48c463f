package potmanager

import (
	"sort"
)

// BuildPots splits the hand's contributions into a main pot and side pots
//
// Every distinct contribution level forms a tier. A tier holds what each participant put in
// between the previous level and this one, and only participants who have not folded and
// reached the level may win it. Adjacent tiers with the same eligible participants are merged.
// A tier nobody can win is folded into the pot below it, or opened to everyone still in
// the hand when there is no pot below it.
//
// If the single largest contribution was never matched by anyone, the unmatched part is
// returned as a refund instead of forming a pot.
func BuildPots(contributions []Contribution) (Pots, []Refund) {
	if len(contributions) == 0 {
		return Pots{}, nil
	}

	contributions, refunds := refundUncalled(contributions)

	levels := make([]int, 0, len(contributions))
	seen := make(map[int]bool)
	for _, c := range contributions {
		if c.Amount > 0 && !seen[c.Amount] {
			seen[c.Amount] = true
			levels = append(levels, c.Amount)
		}
	}

	sort.Ints(levels)

	pots := make(Pots, 0, len(levels))
	previous := 0
	for _, level := range levels {
		pot := &Pot{}
		for _, c := range contributions {
			pot.Amount += clamp(c.Amount, previous, level)

			if !c.Folded && c.Amount >= level {
				pot.Eligible = append(pot.Eligible, c.ID)
			}
		}

		previous = level

		var last *Pot
		if len(pots) > 0 {
			last = pots[len(pots)-1]
		}

		switch {
		case len(pot.Eligible) == 0 && last != nil:
			last.Amount += pot.Amount
		case len(pot.Eligible) == 0:
			pot.Eligible = stillIn(contributions)
			pots = append(pots, pot)
		case last != nil && sameParticipants(last.Eligible, pot.Eligible):
			last.Amount += pot.Amount
		default:
			pots = append(pots, pot)
		}
	}

	return pots, refunds
}

// refundUncalled trims the largest contribution down to the second largest
// when a single participant who is still in the hand made it
func refundUncalled(contributions []Contribution) ([]Contribution, []Refund) {
	top, second := -1, 0
	for i, c := range contributions {
		if top == -1 || c.Amount > contributions[top].Amount {
			if top != -1 {
				second = contributions[top].Amount
			}

			top = i
		} else if c.Amount > second {
			second = c.Amount
		}
	}

	if contributions[top].Folded || contributions[top].Amount <= second {
		return contributions, nil
	}

	trimmed := make([]Contribution, len(contributions))
	copy(trimmed, contributions)

	excess := trimmed[top].Amount - second
	trimmed[top].Amount = second

	return trimmed, []Refund{{ID: trimmed[top].ID, Amount: excess}}
}

// clamp returns the part of amount that falls between from and to
func clamp(amount, from, to int) int {
	if amount <= from {
		return 0
	}

	if amount > to {
		return to - from
	}

	return amount - from
}

func stillIn(contributions []Contribution) []int {
	ids := make([]int, 0, len(contributions))
	for _, c := range contributions {
		if !c.Folded {
			ids = append(ids, c.ID)
		}
	}

	return ids
}

func sameParticipants(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}

	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}
