package location

// Place is a canonical port or city resolved from the remote places index
type Place struct {
	Name        string `json:"name"`
	CountryCode string `json:"countryCode"`
}

// Candidate is one suggestion produced by a lookup cycle. Candidates are
// ephemeral: they live until the user selects one or a newer lookup
// supersedes them, and are never persisted.
type Candidate struct {
	DisplayName string `json:"displayName"`
	CountryCode string `json:"countryCode"`
	PlaceType   string `json:"placeType"`
}

// Place converts the candidate into the canonical value written to a draft
func (c Candidate) Place() Place {
	return Place{
		Name:        c.DisplayName,
		CountryCode: c.CountryCode,
	}
}
