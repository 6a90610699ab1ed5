package models

// SubmissionStatus tracks where a submission sits in the moderation
// workflow. The lifecycle only moves forward: new -> read -> replied.
type SubmissionStatus string

const (
	StatusNew     SubmissionStatus = "new"
	StatusRead    SubmissionStatus = "read"
	StatusReplied SubmissionStatus = "replied"
)

var statusRank = map[SubmissionStatus]int{
	StatusNew:     0,
	StatusRead:    1,
	StatusReplied: 2,
}

func (s SubmissionStatus) IsValid() bool {
	_, ok := statusRank[s]
	return ok
}

// CanTransitionTo reports whether the status may change to the given
// one. Only strictly forward moves are allowed; re-submitting the
// current status is rejected too.
func (s SubmissionStatus) CanTransitionTo(to SubmissionStatus) bool {
	from, ok := statusRank[s]
	if !ok {
		return false
	}
	target, ok := statusRank[to]
	if !ok {
		return false
	}
	return target > from
}

// StatusUpdate is the payload accepted by the PATCH /{collection}/{id}/status endpoints
type StatusUpdate struct {
	Status SubmissionStatus `json:"status" binding:"required" example:"read"`
}
