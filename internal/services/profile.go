package services

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mkazarin/skinaid/internal/analysis"
	"github.com/mkazarin/skinaid/internal/catalog"
	"github.com/mkazarin/skinaid/internal/common"
	"github.com/mkazarin/skinaid/internal/gamify"
	"github.com/mkazarin/skinaid/internal/logging"
	"github.com/mkazarin/skinaid/internal/models"
	"github.com/mkazarin/skinaid/internal/store"
)

// ProfileService owns every mutation of user records. The store works in
// whole namespaces, so all mutations funnel through a single mutex-guarded
// read-modify-write cycle; concurrent updates can not overwrite each other.
type ProfileService struct {
	store  store.Store
	logger logging.Logger

	mu  sync.Mutex
	now func() time.Time
}

func NewProfileService(st store.Store, logger logging.Logger) *ProfileService {
	return &ProfileService{store: st, logger: logger, now: time.Now}
}

// update runs fn against the named record under the mutex and persists the
// whole namespace when fn succeeds. A missing record is created on first
// reference, so an account survives the store falling back to its empty
// default after corruption.
func (s *ProfileService) update(ctx context.Context, username string, fn func(rec *models.UserRecord) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	users, err := s.store.LoadUsers(ctx)
	if err != nil {
		return fmt.Errorf("error loading user records: %w", err)
	}
	rec, ok := users[username]
	if !ok {
		rec = models.NewUserRecord()
		users[username] = rec
	}

	if err := fn(rec); err != nil {
		return err
	}
	if err := s.store.SaveUsers(ctx, users); err != nil {
		return fmt.Errorf("error saving user records: %w", err)
	}
	return nil
}

// Record returns the current application record for a user, a fresh empty
// record when none is stored yet.
func (s *ProfileService) Record(ctx context.Context, username string) (*models.UserRecord, error) {
	users, err := s.store.LoadUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("error loading user records: %w", err)
	}
	rec, ok := users[username]
	if !ok {
		return models.NewUserRecord(), nil
	}
	return rec, nil
}

// SaveOnboarding overwrites the profile snapshot wholesale and stamps the
// completion time.
func (s *ProfileService) SaveOnboarding(ctx context.Context, username string, ob models.Onboarding) error {
	if ob.SkinType == "" {
		return common.ErrorEmptyInput
	}
	return s.update(ctx, username, func(rec *models.UserRecord) error {
		ob.CompletedAt = s.now()
		rec.Onboarding = &ob
		return nil
	})
}

// Analyze runs one analysis for an onboarded user: extracts image features
// (falling back on decode failure), evaluates the scoring engine, appends
// the frozen result to the history and credits the flat analysis award.
func (s *ProfileService) Analyze(ctx context.Context, username string, selfie io.Reader, lf models.LifestyleFactors) (*models.AnalysisResult, error) {
	var result models.AnalysisResult
	err := s.update(ctx, username, func(rec *models.UserRecord) error {
		if !rec.Onboarded() {
			return common.ErrorNotOnboarded
		}

		feat := analysis.ExtractImageFeatures(selfie)
		profile := analysis.Profile{
			SkinType: rec.Onboarding.SkinType,
			Concerns: rec.Onboarding.Concerns,
		}
		result = analysis.Evaluate(feat, lf, profile, s.now())

		rec.AnalysisHistory = append(rec.AnalysisHistory, result)
		gamify.AwardAnalysis(rec)
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info(ctx, "analysis completed", "username", username, "score", result.CurrentScore)
	return &result, nil
}

// FinalizeRoutine records which steps of the current routine were done today
// and locks today in. The step lists come from the most recent analysis.
func (s *ProfileService) FinalizeRoutine(ctx context.Context, username string, morningDone, eveningDone []bool) (gamify.RoutineResult, error) {
	var res gamify.RoutineResult
	err := s.update(ctx, username, func(rec *models.UserRecord) error {
		last := rec.LastAnalysis()
		if last == nil {
			return common.ErrorNoAnalysis
		}
		if len(morningDone) != len(last.RoutineMorning) || len(eveningDone) != len(last.RoutineEvening) {
			return fmt.Errorf("%w: step state does not match current routine", common.ErrorInternal)
		}

		day := rec.Day(gamify.DateKey(s.now()))
		if day.IsComplete || day.PointsAwarded > 0 {
			res = gamify.RoutineResult{AlreadyFinalized: true, IsComplete: day.IsComplete, PointsAwarded: day.PointsAwarded}
			return nil
		}

		// The routine may have changed since an earlier finalize of this
		// date; stale step keys must not count against completion.
		day.Morning = make(map[string]bool, len(morningDone))
		day.Evening = make(map[string]bool, len(eveningDone))
		for i, done := range morningDone {
			day.Morning[fmt.Sprintf("morning_%d", i)] = done
		}
		for i, done := range eveningDone {
			day.Evening[fmt.Sprintf("evening_%d", i)] = done
		}

		res = gamify.FinalizeRoutine(rec, gamify.DateKey(s.now()), len(morningDone), len(eveningDone))
		return nil
	})
	return res, err
}

// FinalizeChecker stores today's checklist state and awards the positive
// score delta. Keys outside the fixed task set are ignored.
func (s *ProfileService) FinalizeChecker(ctx context.Context, username string, checked map[string]bool) (gamify.CheckerResult, error) {
	var res gamify.CheckerResult
	err := s.update(ctx, username, func(rec *models.UserRecord) error {
		day := rec.Day(gamify.DateKey(s.now()))
		for key, v := range checked {
			if gamify.IsCheckerTask(key) {
				day.Checker[key] = v
			}
		}
		res = gamify.FinalizeChecker(rec, gamify.DateKey(s.now()))
		return nil
	})
	return res, err
}

// Streak returns the consecutive-complete-day count ending yesterday.
func (s *ProfileService) Streak(ctx context.Context, username string) (int, error) {
	rec, err := s.Record(ctx, username)
	if err != nil {
		return 0, err
	}
	return gamify.Streak(rec, s.now()), nil
}

// AddToKit saves a catalog product reference into the kit. Adding a product
// that is already saved is a no-op; the second return reports whether the
// kit changed.
func (s *ProfileService) AddToKit(ctx context.Context, username string, productID int) (catalog.Product, bool, error) {
	product, ok := catalog.Find(productID)
	if !ok {
		return catalog.Product{}, false, common.ErrorNotFound
	}

	added := false
	err := s.update(ctx, username, func(rec *models.UserRecord) error {
		if rec.InKit(productID) {
			return nil
		}
		rec.Kit = append(rec.Kit, models.KitItem{
			ID:       product.ID,
			Name:     product.Name,
			Concerns: append([]string(nil), product.Concerns...),
		})
		added = true
		return nil
	})
	return product, added, err
}

// RemoveFromKit drops a saved product from the kit, if present.
func (s *ProfileService) RemoveFromKit(ctx context.Context, username string, productID int) error {
	return s.update(ctx, username, func(rec *models.UserRecord) error {
		kept := rec.Kit[:0]
		for _, item := range rec.Kit {
			if item.ID != productID {
				kept = append(kept, item)
			}
		}
		rec.Kit = kept
		return nil
	})
}

// KitNotes explains the saved kit against the most recent analysis.
func (s *ProfileService) KitNotes(ctx context.Context, username string) ([]string, error) {
	rec, err := s.Record(ctx, username)
	if err != nil {
		return nil, err
	}
	return catalog.KitNotes(rec.Kit, rec.LastAnalysis()), nil
}

// AddForumPost appends an entry to the user's forum log.
func (s *ProfileService) AddForumPost(ctx context.Context, username, title, body string) (models.ForumPost, error) {
	if title == "" || body == "" {
		return models.ForumPost{}, common.ErrorEmptyInput
	}
	post := models.ForumPost{
		ID:    uuid.NewString(),
		User:  username,
		Title: title,
		Body:  body,
	}
	err := s.update(ctx, username, func(rec *models.UserRecord) error {
		post.Timestamp = s.now()
		rec.ForumPosts = append(rec.ForumPosts, post)
		return nil
	})
	if err != nil {
		return models.ForumPost{}, err
	}
	return post, nil
}

// AddExpertRequest appends a consultation request; new requests always start
// in the Pending status.
func (s *ProfileService) AddExpertRequest(ctx context.Context, username string, req models.ExpertRequest) (models.ExpertRequest, error) {
	if req.Name == "" || req.Email == "" {
		return models.ExpertRequest{}, common.ErrorEmptyInput
	}
	req.ID = uuid.NewString()
	req.User = username
	req.Status = "Pending"
	err := s.update(ctx, username, func(rec *models.UserRecord) error {
		req.Timestamp = s.now()
		rec.ExpertRequests = append(rec.ExpertRequests, req)
		return nil
	})
	if err != nil {
		return models.ExpertRequest{}, err
	}
	return req, nil
}

// Dashboard is the aggregate summary shown after login.
type Dashboard struct {
	Points        int
	Streak        int
	AnalysisCount int
	LastScore     int
	LastDate      string
	Onboarded     bool
}

// Dashboard summarizes the record: total points, the routine streak and the
// most recent analysis, if any.
func (s *ProfileService) Dashboard(ctx context.Context, username string) (Dashboard, error) {
	rec, err := s.Record(ctx, username)
	if err != nil {
		return Dashboard{}, err
	}

	d := Dashboard{
		Points:        rec.Points,
		Streak:        gamify.Streak(rec, s.now()),
		AnalysisCount: len(rec.AnalysisHistory),
		Onboarded:     rec.Onboarded(),
	}
	if last := rec.LastAnalysis(); last != nil {
		d.LastScore = last.CurrentScore
		d.LastDate = gamify.DateKey(last.Timestamp)
	}
	return d, nil
}
