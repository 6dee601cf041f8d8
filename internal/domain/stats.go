package domain

// PlayerStats is the per-player attendance summary shown on the profile
// page. Percentages are whole numbers; a season with no events reads 0.
type PlayerStats struct {
	MatchesAttended     int64
	TrainingsAttended   int64
	TotalMatches        int64
	TotalTrainings      int64
	MatchesPercentage   int
	TrainingsPercentage int
}
