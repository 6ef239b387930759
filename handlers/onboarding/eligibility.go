package onboarding

import (
	"sort"

	"clubkeeper/model"
)

// ClubState is a tracked club together with its live roster size and entry
// requirement at evaluation time.
type ClubState struct {
	Club     model.Club
	Members  int
	Required int
}

// SplitEligible partitions clubs for a player with the given trophy count:
// open (joinable now), full (enough trophies but no seat) and under (trophy
// requirement not met). Open clubs are sorted so the club with the most
// free seats comes first; ties prefer the higher requirement.
func SplitEligible(states []ClubState, trophies int) (open, full, under []ClubState) {
	for _, st := range states {
		switch {
		case trophies < st.Required:
			under = append(under, st)
		case st.Members >= model.ClubCapacity:
			full = append(full, st)
		default:
			open = append(open, st)
		}
	}

	sort.Slice(open, func(a, b int) bool {
		if open[a].Members != open[b].Members {
			return open[a].Members < open[b].Members
		}
		return open[a].Required > open[b].Required
	})
	sort.Slice(full, func(a, b int) bool { return full[a].Required < full[b].Required })
	sort.Slice(under, func(a, b int) bool { return under[a].Required < under[b].Required })
	return open, full, under
}
