package domain

// Interaction is the per-(user-or-device, article) read/saved record.
// For remote articles it is owned by the backend and keyed by user id;
// for local articles it is embedded in the stored record and keyed by
// device id.
type Interaction struct {
	// IsRead is true once the article has been opened or marked read.
	IsRead bool `json:"is_read"`

	// IsSaved is true while the article is bookmarked.
	IsSaved bool `json:"is_saved"`
}

// InteractionUpdate is a partial update to an interaction record.
// Nil fields leave the corresponding flag unchanged.
type InteractionUpdate struct {
	IsRead  *bool
	IsSaved *bool
}

// Apply merges the update into the interaction.
// Saving an article also marks it read, matching the backend's save
// upsert; unsaving leaves the read flag alone.
func (i Interaction) Apply(upd InteractionUpdate) Interaction {
	if upd.IsRead != nil {
		i.IsRead = *upd.IsRead
	}
	if upd.IsSaved != nil {
		i.IsSaved = *upd.IsSaved
		if i.IsSaved {
			i.IsRead = true
		}
	}
	return i
}

// Bool returns a pointer to b, for building InteractionUpdate literals.
func Bool(b bool) *bool {
	return &b
}
