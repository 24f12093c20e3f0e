package services

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkazarin/skinaid/internal/common"
	"github.com/mkazarin/skinaid/internal/logging"
	"github.com/mkazarin/skinaid/internal/models"
	"github.com/mkazarin/skinaid/internal/store"
)

func newProfileFixture(t *testing.T) (*ProfileService, string) {
	t.Helper()
	ctx := context.Background()
	st, logger := newTestStore(t)

	users := NewUserService(st, logger)
	require.NoError(t, users.Register(ctx, "alice", "pw"))

	svc := NewProfileService(st, logger)
	svc.now = func() time.Time { return time.Date(2026, 8, 22, 12, 0, 0, 0, time.UTC) }
	return svc, "alice"
}

func onboard(t *testing.T, svc *ProfileService, username string, concerns ...string) {
	t.Helper()
	ob := models.Onboarding{
		FullName: "Alice",
		Age:      30,
		SkinType: models.SkinTypeNormal,
		Concerns: concerns,
	}
	require.NoError(t, svc.SaveOnboarding(context.Background(), username, ob))
}

var testFactors = models.LifestyleFactors{SleepHours: 7, WaterIntakeLiters: 2.0, StressLevel: 5, DietQuality: 3}

func TestAnalyzeRequiresOnboarding(t *testing.T) {
	ctx := context.Background()
	svc, user := newProfileFixture(t)

	_, err := svc.Analyze(ctx, user, nil, testFactors)
	require.ErrorIs(t, err, common.ErrorNotOnboarded)
}

func TestAnalyzeAppendsHistoryAndAwardsPoints(t *testing.T) {
	ctx := context.Background()
	svc, user := newProfileFixture(t)
	onboard(t, svc, user)

	res, err := svc.Analyze(ctx, user, nil, testFactors)
	require.NoError(t, err)
	assert.Equal(t, 50, res.CurrentScore)

	res2, err := svc.Analyze(ctx, user, nil, testFactors)
	require.NoError(t, err)
	assert.Equal(t, res.CurrentScore, res2.CurrentScore)

	rec, err := svc.Record(ctx, user)
	require.NoError(t, err)
	assert.Len(t, rec.AnalysisHistory, 2)
	assert.Equal(t, 20, rec.Points)
}

func TestAnalyzeUserWithoutRecord(t *testing.T) {
	ctx := context.Background()
	svc, _ := newProfileFixture(t)

	// A missing record is created lazily, so the only gate is onboarding.
	_, err := svc.Analyze(ctx, "nobody", nil, testFactors)
	require.ErrorIs(t, err, common.ErrorNotOnboarded)
}

func TestRecordCreatedLazilyAfterStoreReset(t *testing.T) {
	// When data.json is corrupted the store falls back to an empty default;
	// existing accounts must keep working from a fresh record.
	ctx := context.Background()
	dir := t.TempDir()
	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	dataFile := filepath.Join(dir, "data.json")
	st, err := store.NewFileStore(filepath.Join(dir, "users.json"), dataFile, logger)
	require.NoError(t, err)

	users := NewUserService(st, logger)
	require.NoError(t, users.Register(ctx, "alice", "pw"))

	svc := NewProfileService(st, logger)
	svc.now = func() time.Time { return time.Date(2026, 8, 22, 12, 0, 0, 0, time.UTC) }
	onboard(t, svc, "alice")

	require.NoError(t, os.WriteFile(dataFile, []byte("{corrupt"), 0o600))

	d, err := svc.Dashboard(ctx, "alice")
	require.NoError(t, err)
	assert.False(t, d.Onboarded)

	// Mutations re-create and persist the record.
	onboard(t, svc, "alice")
	rec, err := svc.Record(ctx, "alice")
	require.NoError(t, err)
	assert.True(t, rec.Onboarded())
}

func TestFinalizeCheckerOnSparsePersistedDay(t *testing.T) {
	// A stored date entry without its map fields must behave as not started.
	ctx := context.Background()
	dir := t.TempDir()
	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	dataFile := filepath.Join(dir, "data.json")
	st, err := store.NewFileStore(filepath.Join(dir, "users.json"), dataFile, logger)
	require.NoError(t, err)

	blob := `{"alice":{"analysis_history":[],"points":0,"daily_completion":{"2026-08-22":{"is_complete":false}},"kit":[],"forum_posts":[],"expert_requests":[]}}`
	require.NoError(t, os.WriteFile(dataFile, []byte(blob), 0o600))

	svc := NewProfileService(st, logger)
	svc.now = func() time.Time { return time.Date(2026, 8, 22, 12, 0, 0, 0, time.UTC) }

	res, err := svc.FinalizeChecker(ctx, "alice", map[string]bool{"AM_1": true})
	require.NoError(t, err)
	assert.Equal(t, 5, res.Score)
	assert.Equal(t, 5, res.PointsAwarded)
}

func TestSaveOnboardingOverwritesWholesale(t *testing.T) {
	ctx := context.Background()
	svc, user := newProfileFixture(t)
	onboard(t, svc, user, models.ConcernAcne)

	onboard(t, svc, user, models.ConcernDryness)

	rec, err := svc.Record(ctx, user)
	require.NoError(t, err)
	require.True(t, rec.Onboarded())
	assert.Equal(t, []string{models.ConcernDryness}, rec.Onboarding.Concerns)
	assert.False(t, rec.Onboarding.CompletedAt.IsZero())
}

func TestFinalizeRoutineFlow(t *testing.T) {
	ctx := context.Background()
	svc, user := newProfileFixture(t)
	onboard(t, svc, user)

	_, err := svc.FinalizeRoutine(ctx, user, []bool{true, true, true}, []bool{true, true, true})
	require.ErrorIs(t, err, common.ErrorNoAnalysis)

	_, err = svc.Analyze(ctx, user, nil, testFactors)
	require.NoError(t, err)

	res, err := svc.FinalizeRoutine(ctx, user, []bool{true, true, true}, []bool{true, true, true})
	require.NoError(t, err)
	assert.False(t, res.AlreadyFinalized)
	assert.True(t, res.IsComplete)
	assert.Equal(t, 5, res.PointsAwarded)

	// Same day again: no double award.
	res, err = svc.FinalizeRoutine(ctx, user, []bool{true, true, true}, []bool{true, true, true})
	require.NoError(t, err)
	assert.True(t, res.AlreadyFinalized)

	rec, err := svc.Record(ctx, user)
	require.NoError(t, err)
	assert.Equal(t, 15, rec.Points) // 10 analysis + 5 routine
}

func TestFinalizeRoutineIncompleteThenComplete(t *testing.T) {
	ctx := context.Background()
	svc, user := newProfileFixture(t)
	onboard(t, svc, user)
	_, err := svc.Analyze(ctx, user, nil, testFactors)
	require.NoError(t, err)

	res, err := svc.FinalizeRoutine(ctx, user, []bool{true, false, true}, []bool{true, true, true})
	require.NoError(t, err)
	assert.False(t, res.IsComplete)
	assert.Equal(t, 0, res.PointsAwarded)

	res, err = svc.FinalizeRoutine(ctx, user, []bool{true, true, true}, []bool{true, true, true})
	require.NoError(t, err)
	assert.True(t, res.IsComplete)
	assert.Equal(t, 5, res.PointsAwarded)
}

func TestFinalizeRoutineAfterRoutineShrinks(t *testing.T) {
	// An incomplete finalize of a longer routine must not leave stale step
	// keys that block completing the current, shorter routine.
	ctx := context.Background()
	svc, user := newProfileFixture(t)

	// Wrinkles adds a fourth evening step.
	onboard(t, svc, user, models.ConcernWrinkles)
	_, err := svc.Analyze(ctx, user, nil, testFactors)
	require.NoError(t, err)

	res, err := svc.FinalizeRoutine(ctx, user, []bool{true, true, true}, []bool{true, true, true, false})
	require.NoError(t, err)
	require.False(t, res.IsComplete)

	// The routine shrinks back to 3+3 after re-onboarding without wrinkles.
	onboard(t, svc, user)
	_, err = svc.Analyze(ctx, user, nil, testFactors)
	require.NoError(t, err)

	res, err = svc.FinalizeRoutine(ctx, user, []bool{true, true, true}, []bool{true, true, true})
	require.NoError(t, err)
	assert.False(t, res.AlreadyFinalized)
	assert.True(t, res.IsComplete)
	assert.Equal(t, 5, res.PointsAwarded)
}

func TestFinalizeCheckerIgnoresUnknownKeys(t *testing.T) {
	ctx := context.Background()
	svc, user := newProfileFixture(t)

	res, err := svc.FinalizeChecker(ctx, user, map[string]bool{
		"AM_1":   true,
		"PM_2":   true,
		"BOGUS":  true,
		"LIFE_9": true,
	})
	require.NoError(t, err)
	assert.Equal(t, 10, res.Score)
	assert.Equal(t, 10, res.PointsAwarded)

	rec, err := svc.Record(ctx, user)
	require.NoError(t, err)
	assert.Equal(t, 10, rec.Points)
}

func TestStreakAfterCompleteDays(t *testing.T) {
	ctx := context.Background()
	svc, user := newProfileFixture(t)
	onboard(t, svc, user)

	// Complete the routine on the two days before "today".
	base := time.Date(2026, 8, 22, 12, 0, 0, 0, time.UTC)
	for _, day := range []time.Time{base.AddDate(0, 0, -2), base.AddDate(0, 0, -1)} {
		svc.now = func() time.Time { return day }
		_, err := svc.Analyze(ctx, user, nil, testFactors)
		require.NoError(t, err)
		_, err = svc.FinalizeRoutine(ctx, user, []bool{true, true, true}, []bool{true, true, true})
		require.NoError(t, err)
	}

	svc.now = func() time.Time { return base }
	streak, err := svc.Streak(ctx, user)
	require.NoError(t, err)
	assert.Equal(t, 2, streak)
}

func TestKitAddRemoveAndNotes(t *testing.T) {
	ctx := context.Background()
	svc, user := newProfileFixture(t)
	onboard(t, svc, user, models.ConcernAcne)

	product, added, err := svc.AddToKit(ctx, user, 2)
	require.NoError(t, err)
	assert.True(t, added)
	assert.Equal(t, "2% Salicylic Acid Serum", product.Name)

	// Duplicate add is a no-op.
	_, added, err = svc.AddToKit(ctx, user, 2)
	require.NoError(t, err)
	assert.False(t, added)

	_, _, err = svc.AddToKit(ctx, user, 42)
	require.ErrorIs(t, err, common.ErrorNotFound)

	rec, err := svc.Record(ctx, user)
	require.NoError(t, err)
	require.Len(t, rec.Kit, 1)

	require.NoError(t, svc.RemoveFromKit(ctx, user, 2))
	rec, err = svc.Record(ctx, user)
	require.NoError(t, err)
	assert.Empty(t, rec.Kit)
}

func TestKitNotesWithoutAnalysis(t *testing.T) {
	ctx := context.Background()
	svc, user := newProfileFixture(t)

	notes, err := svc.KitNotes(ctx, user)
	require.NoError(t, err)
	assert.Empty(t, notes)
}

func TestAddForumPost(t *testing.T) {
	ctx := context.Background()
	svc, user := newProfileFixture(t)

	post, err := svc.AddForumPost(ctx, user, "Retinol purge?", "Is three weeks of purging normal?")
	require.NoError(t, err)
	assert.NotEmpty(t, post.ID)
	assert.Equal(t, user, post.User)

	_, err = svc.AddForumPost(ctx, user, "", "body")
	require.ErrorIs(t, err, common.ErrorEmptyInput)

	rec, err := svc.Record(ctx, user)
	require.NoError(t, err)
	require.Len(t, rec.ForumPosts, 1)
}

func TestAddExpertRequestStartsPending(t *testing.T) {
	ctx := context.Background()
	svc, user := newProfileFixture(t)

	req, err := svc.AddExpertRequest(ctx, user, models.ExpertRequest{
		Name:  "Alice",
		Email: "alice@example.com",
		Date:  "2026-09-01",
		Time:  "10:00",
		Note:  "Persistent redness on cheeks",
	})
	require.NoError(t, err)
	assert.Equal(t, "Pending", req.Status)
	assert.NotEmpty(t, req.ID)

	_, err = svc.AddExpertRequest(ctx, user, models.ExpertRequest{Name: "Alice"})
	require.ErrorIs(t, err, common.ErrorEmptyInput)
}

func TestDashboardSummary(t *testing.T) {
	ctx := context.Background()
	svc, user := newProfileFixture(t)

	d, err := svc.Dashboard(ctx, user)
	require.NoError(t, err)
	assert.False(t, d.Onboarded)
	assert.Equal(t, 0, d.AnalysisCount)

	onboard(t, svc, user)
	_, err = svc.Analyze(ctx, user, nil, testFactors)
	require.NoError(t, err)

	d, err = svc.Dashboard(ctx, user)
	require.NoError(t, err)
	assert.True(t, d.Onboarded)
	assert.Equal(t, 1, d.AnalysisCount)
	assert.Equal(t, 50, d.LastScore)
	assert.Equal(t, "2026-08-22", d.LastDate)
	assert.Equal(t, 10, d.Points)
}
