package models

// RankingSnapshot captures the leading teams after one matchday
type RankingSnapshot struct {
	Matchday int             `json:"matchday" validate:"required,gt=0"`
	Entries  []SnapshotEntry `json:"entries"`
}

// SnapshotEntry is one ranked row, frozen at snapshot time so later
// matchdays cannot alter it
type SnapshotEntry struct {
	Rank     int          `json:"rank" validate:"required,gt=0"`
	Standing TeamStanding `json:"standing"`
}

// Leader returns the top-ranked standing in the snapshot
func (r *RankingSnapshot) Leader() (TeamStanding, bool) {
	if len(r.Entries) == 0 {
		return TeamStanding{}, false
	}
	return r.Entries[0].Standing, true
}
