package notify

import (
	"fmt"
	"time"
)

// RelativeAge formats a timestamp for display relative to now: "Just now"
// under a minute, then minute/hour/day buckets, and an absolute date once
// a week has passed.
func RelativeAge(t, now time.Time) string {
	minutes := int(now.Sub(t).Minutes())

	switch {
	case minutes < 1:
		return "Just now"
	case minutes < 60:
		return fmt.Sprintf("%dm ago", minutes)
	case minutes < 24*60:
		return fmt.Sprintf("%dh ago", minutes/60)
	case minutes < 7*24*60:
		return fmt.Sprintf("%dd ago", minutes/(24*60))
	default:
		return t.Format("1/2/2006")
	}
}
