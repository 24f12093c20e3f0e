// Package models defines the persisted record types: credentials, the
// per-user application record, and the immutable analysis results appended
// to its history.
package models

import "time"

// Self-reported enumerations, as offered during onboarding.
const (
	SkinTypeNormal      = "Normal"
	SkinTypeDry         = "Dry"
	SkinTypeOily        = "Oily"
	SkinTypeCombination = "Combination"
	SkinTypeSensitive   = "Sensitive"
)

const (
	ConcernAcne         = "Acne"
	ConcernPigmentation = "Pigmentation"
	ConcernWrinkles     = "Wrinkles"
	ConcernSensitivity  = "Sensitivity"
	ConcernDryness      = "Dryness"
	ConcernOily         = "Oily"
)

var (
	SkinTypes = []string{SkinTypeNormal, SkinTypeDry, SkinTypeOily, SkinTypeCombination, SkinTypeSensitive}
	Concerns  = []string{ConcernAcne, ConcernPigmentation, ConcernWrinkles, ConcernSensitivity, ConcernDryness, ConcernOily}
)

// Onboarding is the profile snapshot captured during setup. It is
// overwritten wholesale on re-submission; a nil Onboarding on the UserRecord
// means "not onboarded".
type Onboarding struct {
	FullName          string    `json:"full_name"`
	Age               int       `json:"age"`
	Location          string    `json:"location"`
	Concerns          []string  `json:"primary_concerns"`
	SkinType          string    `json:"skin_type"`
	PreferredLanguage string    `json:"preferred_language"`
	CompletedAt       time.Time `json:"completed_at"`
}

// HasConcern reports whether concern was self-reported.
func (o *Onboarding) HasConcern(concern string) bool {
	if o == nil {
		return false
	}
	for _, c := range o.Concerns {
		if c == concern {
			return true
		}
	}
	return false
}

// DailyRecord tracks completion state for one calendar date. Step and task
// states accumulate without side effects until the date is finalized.
type DailyRecord struct {
	Morning              map[string]bool `json:"morning"`
	Evening              map[string]bool `json:"evening"`
	Checker              map[string]bool `json:"checker"`
	IsComplete           bool            `json:"is_complete"`
	PointsAwarded        int             `json:"points_awarded"`
	CheckerPointsAwarded int             `json:"checker_points_awarded"`
}

// KitItem is a saved product reference, unique by product id within a kit.
type KitItem struct {
	ID       int      `json:"id"`
	Name     string   `json:"name"`
	Concerns []string `json:"concerns"`
}

// ForumPost and ExpertRequest are opaque append-only log entries; the
// bulletin-board features that display them live outside the core.
type ForumPost struct {
	ID        string    `json:"id"`
	User      string    `json:"user"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	Timestamp time.Time `json:"timestamp"`
}

type ExpertRequest struct {
	ID        string    `json:"id"`
	User      string    `json:"user"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Date      string    `json:"date"`
	Time      string    `json:"time"`
	Note      string    `json:"note"`
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

// UserRecord is the sole unit of persistence for one user's application
// state. AnalysisHistory is append-only and chronologically ordered.
type UserRecord struct {
	Onboarding      *Onboarding             `json:"onboarding,omitempty"`
	AnalysisHistory []AnalysisResult        `json:"analysis_history"`
	Points          int                     `json:"points"`
	DailyCompletion map[string]*DailyRecord `json:"daily_completion"`
	Kit             []KitItem               `json:"kit"`
	ForumPosts      []ForumPost             `json:"forum_posts"`
	ExpertRequests  []ExpertRequest         `json:"expert_requests"`
}

// NewUserRecord returns an initialized empty record.
func NewUserRecord() *UserRecord {
	return &UserRecord{
		AnalysisHistory: []AnalysisResult{},
		DailyCompletion: map[string]*DailyRecord{},
		Kit:             []KitItem{},
		ForumPosts:      []ForumPost{},
		ExpertRequests:  []ExpertRequest{},
	}
}

// Onboarded reports whether the profile snapshot has been submitted.
func (u *UserRecord) Onboarded() bool {
	return u.Onboarding != nil
}

// LastAnalysis returns the most recent history entry, or nil if there is
// none. The current routine is always taken from it.
func (u *UserRecord) LastAnalysis() *AnalysisResult {
	if len(u.AnalysisHistory) == 0 {
		return nil
	}
	return &u.AnalysisHistory[len(u.AnalysisHistory)-1]
}

// Day returns the completion record for the given date key, creating it on
// first interaction with that date. A missing or nil entry is treated as
// not started, never as an error, and a persisted entry with absent map
// fields gets them initialized so callers can always write into them.
func (u *UserRecord) Day(date string) *DailyRecord {
	if u.DailyCompletion == nil {
		u.DailyCompletion = map[string]*DailyRecord{}
	}
	d, ok := u.DailyCompletion[date]
	if !ok || d == nil {
		d = &DailyRecord{}
		u.DailyCompletion[date] = d
	}
	if d.Morning == nil {
		d.Morning = map[string]bool{}
	}
	if d.Evening == nil {
		d.Evening = map[string]bool{}
	}
	if d.Checker == nil {
		d.Checker = map[string]bool{}
	}
	return d
}

// InKit reports whether the kit already holds the given product id.
func (u *UserRecord) InKit(productID int) bool {
	for _, item := range u.Kit {
		if item.ID == productID {
			return true
		}
	}
	return false
}
