package models

type ReviewStatus string

const (
	StatusPending  ReviewStatus = "Pending"
	StatusApproved ReviewStatus = "Approved"
)

// Photo is one submitted photo. OwnerID and FileReference never change after insert.
// A rejected photo is deleted, so there is no rejected status.
type Photo struct {
	ID            int64   `json:"id" db:"id"`
	OwnerID       int64   `json:"ownerId" db:"owner_id"`
	FileReference string  `json:"fileReference" db:"file_reference"`
	Tag           *string `json:"tag" db:"tag"`
	Reviewed      bool    `json:"reviewed" db:"reviewed"`
}

func (p Photo) Status() ReviewStatus {
	if p.Reviewed {
		return StatusApproved
	}
	return StatusPending
}

// TagText returns the tag or an empty string for an untagged photo.
func (p Photo) TagText() string {
	if p.Tag == nil {
		return ""
	}
	return *p.Tag
}

type Stats struct {
	Pending  int `json:"pending" db:"pending"`
	Approved int `json:"approved" db:"approved"`
}
