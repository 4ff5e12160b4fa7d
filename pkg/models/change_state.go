package models

// ChangeState describes where a page, or a proposed change to a page, sits in
// the review lifecycle. Values are integers on the wire.
type ChangeState int

const (
	// ChangeStateNone is a published page with no change in flight.
	ChangeStateNone ChangeState = iota
	ChangeStatePending
	ChangeStateUnderReview
	ChangeStateRejected
	ChangeStatePendingNew
	ChangeStateApproved
)

func (s ChangeState) String() string {
	switch s {
	case ChangeStateNone:
		return "none"
	case ChangeStatePending:
		return "pending"
	case ChangeStateUnderReview:
		return "under-review"
	case ChangeStateRejected:
		return "rejected"
	case ChangeStatePendingNew:
		return "pending-new"
	case ChangeStateApproved:
		return "approved"
	default:
		return "unknown"
	}
}

// Valid reports whether s is one of the known change states.
func (s ChangeState) Valid() bool {
	return s >= ChangeStateNone && s <= ChangeStateApproved
}

// IsPending reports whether s is an edit or a new page that has not been
// submitted for review yet.
func (s ChangeState) IsPending() bool {
	return s == ChangeStatePending || s == ChangeStatePendingNew
}

// IsUnderReview reports whether s is awaiting a reviewer.
func (s ChangeState) IsUnderReview() bool {
	return s == ChangeStateUnderReview
}

// IsRejected reports whether s was turned down by a reviewer.
func (s ChangeState) IsRejected() bool {
	return s == ChangeStateRejected
}

// ReviewFlags are the UI-facing booleans derived from a change state and
// whether the change belongs to the current user.
type ReviewFlags struct {
	ChangePending               bool `json:"changePending"`
	ChangeAwaitingReview        bool `json:"changeAwaitingReview"`
	ChangeRejected              bool `json:"changeRejected"`
	UserHasChangePending        bool `json:"userHasChangePending"`
	UserHasChangeAwaitingReview bool `json:"userHasChangeAwaitingReview"`
	UserHasChangeRejected       bool `json:"userHasChangeRejected"`
}

// DeriveReviewFlags computes the flags for a single change.
func DeriveReviewFlags(status ChangeState, belongsToMe bool) ReviewFlags {
	return ReviewFlags{
		ChangePending:               status.IsPending(),
		ChangeAwaitingReview:        status.IsUnderReview(),
		ChangeRejected:              status.IsRejected(),
		UserHasChangePending:        belongsToMe && status.IsPending(),
		UserHasChangeAwaitingReview: belongsToMe && status.IsUnderReview(),
		UserHasChangeRejected:       belongsToMe && status.IsRejected(),
	}
}

// Or returns the field-wise logical OR of f and o.
func (f ReviewFlags) Or(o ReviewFlags) ReviewFlags {
	return ReviewFlags{
		ChangePending:               f.ChangePending || o.ChangePending,
		ChangeAwaitingReview:        f.ChangeAwaitingReview || o.ChangeAwaitingReview,
		ChangeRejected:              f.ChangeRejected || o.ChangeRejected,
		UserHasChangePending:        f.UserHasChangePending || o.UserHasChangePending,
		UserHasChangeAwaitingReview: f.UserHasChangeAwaitingReview || o.UserHasChangeAwaitingReview,
		UserHasChangeRejected:       f.UserHasChangeRejected || o.UserHasChangeRejected,
	}
}

// FoldReviewFlags reduces the flags of every pending change of a page into
// page-level flags. A flag is set when any pending change sets it.
func FoldReviewFlags(pending []*PagePending) ReviewFlags {
	var flags ReviewFlags
	for _, p := range pending {
		if p == nil {
			continue
		}
		flags = flags.Or(p.ReviewFlags)
	}
	return flags
}
