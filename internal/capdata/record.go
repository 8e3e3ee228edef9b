package capdata

// PlayerCapRecord is one player's cap charge for a single roster category.
// RosterStatus and Team come from caller context and are always set. The
// remaining fields are extracted from the page and may be nil when the
// source markup is malformed; such records are still emitted so that the
// gap shows up against the published totals.
type PlayerCapRecord struct {
	Name         *string `json:"player_name"`
	Position     *string `json:"position"`
	CapHit       *int64  `json:"cap_hit"`
	RosterStatus string  `json:"roster_status"`
	Team         string  `json:"team"`
}

// TeamCapDataset is every cap record for one team, concatenated across
// roster categories in category order, row order within category.
type TeamCapDataset struct {
	Team    string            `json:"team"`
	Records []PlayerCapRecord `json:"records"`
}

// TotalCapHit returns the summed cap hits of the dataset.
func (d *TeamCapDataset) TotalCapHit() int64 {
	return SumCapHits(d.Records)
}

// SumCapHits totals the cap hits in a batch. Records with no cap hit are
// excluded from the sum.
func SumCapHits(records []PlayerCapRecord) int64 {
	var sum int64
	for _, r := range records {
		if r.CapHit != nil {
			sum += *r.CapHit
		}
	}
	return sum
}
