package models

// Scheme is a normalized government welfare scheme (yojana) record.
// Upstream sources are inconsistent about field shapes; the adapters in
// internal/schemes normalize into this form before anything else sees it.
type Scheme struct {
	ID                  string   `json:"id"`
	Name                string   `json:"name"`
	Description         string   `json:"description"`
	MinAge              int      `json:"minAge"`
	MaxAge              int      `json:"maxAge"`
	ApplicationDeadline string   `json:"applicationDeadline,omitempty"`
	PublishDate         string   `json:"publishDate,omitempty"`
	// Minimum disability percentage an applicant must hold. Zero means the
	// scheme does not gate on percentage.
	RequiredDisabilityPercentage int      `json:"requiredDisabilityPercentage"`
	ApplicableDisabilityTypes    []string `json:"applicableDisabilityTypes"`
	Publisher                    string   `json:"publisher,omitempty"`
}

// Link is one entry of the hand-authored link catalog. Only catalog links
// may ever appear in a response.
type Link struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}
