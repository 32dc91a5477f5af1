package service

import (
	"context"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/registra-edu/registra-backend/internal/model"
	"github.com/registra-edu/registra-backend/internal/repository"
)

// Enrollment statuses whose students appear on the grade roster.
var gradableStatuses = []string{"Enrolled", "Completed", "Failed"}

// GradeService resolves grade rosters and applies batch grade saves with
// update-then-insert fallback semantics.
type GradeService struct {
	pool        *pgxpool.Pool
	lectureRepo *repository.LectureRepository
	gradeRepo   *repository.GradeRepository
	lookupRepo  *repository.LookupRepository
	log         zerolog.Logger
}

// NewGradeService creates a new GradeService.
func NewGradeService(
	pool *pgxpool.Pool,
	lectureRepo *repository.LectureRepository,
	gradeRepo *repository.GradeRepository,
	lookupRepo *repository.LookupRepository,
	log zerolog.Logger,
) *GradeService {
	return &GradeService{
		pool:        pool,
		lectureRepo: lectureRepo,
		gradeRepo:   gradeRepo,
		lookupRepo:  lookupRepo,
		log:         log.With().Str("component", "grade_service").Logger(),
	}
}

// LecturesOn lists the lectures meeting on a calendar date, with times
// trimmed to HH:MM for grade entry screens.
func (s *GradeService) LecturesOn(ctx context.Context, date time.Time) ([]model.LectureOccurrence, error) {
	candidates, err := s.lectureRepo.CandidatesOn(ctx, date)
	if err != nil {
		return nil, err
	}
	occurrences := FilterOccurring(candidates, date)
	for i := range occurrences {
		occurrences[i].StartTime = ShortTime(occurrences[i].StartTime)
		occurrences[i].EndTime = ShortTime(occurrences[i].EndTime)
	}
	return occurrences, nil
}

// ShortTime trims a HH:MM:SS clock string to HH:MM. Anything shorter
// passes through untouched.
func ShortTime(t string) string {
	if len(t) >= 5 {
		return t[:5]
	}
	return t
}

// Roster resolves the grade roster of a lecture for one grade type+label key.
func (s *GradeService) Roster(ctx context.Context, lectureID int, gradeType string, label *string) (*model.GradeRoster, error) {
	lc, err := s.lectureRepo.GetContext(ctx, lectureID)
	if err != nil {
		return nil, err
	}

	gradeTypeID, err := s.lookupRepo.FindIDByCode(ctx, "grade_type", GradeTypeOrDefault(gradeType))
	if err != nil {
		return nil, err
	}

	statusIDs, err := s.lookupRepo.IDsByCodes(ctx, "enrollment_status", gradableStatuses)
	if err != nil {
		return nil, err
	}

	students, err := s.gradeRepo.RosterWithGrades(ctx, lc.OfferingID, gradeTypeID, NormalizeLabel(label), statusIDs)
	if err != nil {
		return nil, err
	}

	return &model.GradeRoster{
		OfferingID:   lc.OfferingID,
		CourseID:     lc.CourseID,
		SemesterName: lc.SemesterName,
		Students:     students,
	}, nil
}

// History lists every grade ever recorded for one student of a lecture's
// offering under a type+label key, newest first. The roster shows only
// the latest record; this exposes the trail behind it for auditing.
func (s *GradeService) History(ctx context.Context, lectureID, studentID int, gradeType string, label *string) ([]model.GradeHistoryEntry, error) {
	lc, err := s.lectureRepo.GetContext(ctx, lectureID)
	if err != nil {
		return nil, err
	}

	gradeTypeID, err := s.lookupRepo.FindIDByCode(ctx, "grade_type", GradeTypeOrDefault(gradeType))
	if err != nil {
		return nil, err
	}
	if gradeTypeID == 0 {
		return []model.GradeHistoryEntry{}, nil
	}

	entries, err := s.gradeRepo.History(ctx, studentID, lc.OfferingID, gradeTypeID, NormalizeLabel(label))
	if err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []model.GradeHistoryEntry{}
	}
	return entries, nil
}

// Save applies a batch of grades in one transaction. Each valid item first
// tries to rewrite an existing record for the student's type+label key;
// when nothing matches, a fresh timestamped record is inserted instead.
// Items missing a student id or a value are skipped. On success the count
// of items in the request is returned.
func (s *GradeService) Save(ctx context.Context, req *model.SaveGradesRequest) (int, error) {
	lc, err := s.lectureRepo.GetContext(ctx, req.LectureID)
	if err != nil {
		return 0, err
	}

	gradeType := GradeTypeOrDefault(req.Type)
	label := NormalizeLabel(req.Label)

	var gradedAt *time.Time
	if req.GradedAt != nil && *req.GradedAt != "" {
		t, err := time.Parse(time.DateOnly, *req.GradedAt)
		if err != nil {
			return 0, err
		}
		gradedAt = &t
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback(ctx)

	for _, item := range ValidGradeItems(req.Items) {
		updated, err := s.gradeRepo.UpdateGrade(ctx, tx,
			item.StudentID, lc.CourseID, lc.SemesterName, gradeType, *item.GradeValue, gradedAt, label)
		if err != nil {
			return 0, err
		}
		if updated == 0 {
			if err := s.gradeRepo.AddGrade(ctx, tx,
				item.StudentID, lc.CourseID, lc.SemesterName, gradeType, *item.GradeValue, gradedAt, label); err != nil {
				return 0, err
			}
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, err
	}
	return len(req.Items), nil
}

// ValidGradeItems filters a batch down to the items carrying both a
// student id and a grade value.
func ValidGradeItems(items []model.GradeItem) []model.GradeItem {
	valid := make([]model.GradeItem, 0, len(items))
	for _, it := range items {
		if it.StudentID == 0 || it.GradeValue == nil {
			continue
		}
		valid = append(valid, it)
	}
	return valid
}

// GradeTypeOrDefault substitutes "Quiz" for an empty grade type. Quiz is
// the most frequently entered kind of grade, so it is the default for
// both roster display and batch saves.
func GradeTypeOrDefault(gradeType string) string {
	if gradeType == "" {
		return "Quiz"
	}
	return gradeType
}

// NormalizeLabel canonicalizes a grade label: empty or whitespace-only
// strings become nil so storage only ever sees NULL or a real label.
func NormalizeLabel(label *string) *string {
	if label == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*label)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
