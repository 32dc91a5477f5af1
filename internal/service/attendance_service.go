package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/registra-edu/registra-backend/internal/model"
	"github.com/registra-edu/registra-backend/internal/repository"
	"github.com/registra-edu/registra-backend/internal/schedule"
	"github.com/registra-edu/registra-backend/internal/websocket"
)

// RowError identifies the batch row that made a transactional write fail.
// The message embeds the offending student id so the UI can point at the
// right roster line.
type RowError struct {
	StudentID int
	Message   string
}

func (e *RowError) Error() string {
	return fmt.Sprintf("Student %d: %s", e.StudentID, e.Message)
}

// AttendanceService resolves lecture occurrences and rosters, and applies
// attendance mark batches transactionally.
type AttendanceService struct {
	pool           *pgxpool.Pool
	rdb            *redis.Client
	lectureRepo    *repository.LectureRepository
	attendanceRepo *repository.AttendanceRepository
	courseRepo     *repository.CourseRepository
	studentRepo    *repository.StudentRepository
	notifRepo      *repository.NotificationRepository
	defaultActor   string
	log            zerolog.Logger
}

// NewAttendanceService creates a new AttendanceService.
func NewAttendanceService(
	pool *pgxpool.Pool,
	rdb *redis.Client,
	lectureRepo *repository.LectureRepository,
	attendanceRepo *repository.AttendanceRepository,
	courseRepo *repository.CourseRepository,
	studentRepo *repository.StudentRepository,
	notifRepo *repository.NotificationRepository,
	defaultActor string,
	log zerolog.Logger,
) *AttendanceService {
	return &AttendanceService{
		pool:           pool,
		rdb:            rdb,
		lectureRepo:    lectureRepo,
		attendanceRepo: attendanceRepo,
		courseRepo:     courseRepo,
		studentRepo:    studentRepo,
		notifRepo:      notifRepo,
		defaultActor:   defaultActor,
		log:            log.With().Str("component", "attendance_service").Logger(),
	}
}

// LecturesOn lists the lectures that actually meet on the given calendar
// date: the owning semester must cover the date and the date's weekday
// must appear in the lecture's day code.
func (s *AttendanceService) LecturesOn(ctx context.Context, date time.Time) ([]model.LectureOccurrence, error) {
	candidates, err := s.lectureRepo.CandidatesOn(ctx, date)
	if err != nil {
		return nil, err
	}
	return FilterOccurring(candidates, date), nil
}

// FilterOccurring keeps the candidates whose day code contains the date's
// weekday. Candidates are already semester-gated by the repository.
func FilterOccurring(candidates []model.LectureCandidate, date time.Time) []model.LectureOccurrence {
	occurrences := make([]model.LectureOccurrence, 0, len(candidates))
	for _, c := range candidates {
		if schedule.Matches(c.DayCode, date) {
			occurrences = append(occurrences, c.LectureOccurrence)
		}
	}
	return occurrences
}

// Roster resolves the attendance roster of a lecture for one date: every
// enrolled student with a ternary present/absent/unmarked state.
func (s *AttendanceService) Roster(ctx context.Context, lectureID int, date time.Time) (*model.AttendanceRoster, error) {
	lc, err := s.lectureRepo.GetContext(ctx, lectureID)
	if err != nil {
		return nil, err
	}
	students, err := s.attendanceRepo.Roster(ctx, lectureID, date)
	if err != nil {
		return nil, err
	}
	return &model.AttendanceRoster{OfferingID: lc.OfferingID, Students: students}, nil
}

// Mark applies a batch of attendance marks in one all-or-nothing
// transaction. Rows missing a student id or a present flag are silent
// no-ops. A validation error raised by the stored procedure aborts the
// whole batch and is surfaced as a RowError naming the student; any other
// failure also rolls everything back. On success the count of rows in the
// request is returned.
func (s *AttendanceService) Mark(ctx context.Context, req *model.MarkAttendanceRequest, date time.Time) (int, error) {
	lc, err := s.lectureRepo.GetContext(ctx, req.LectureID)
	if err != nil {
		return 0, err
	}

	actor := req.Actor
	if actor == "" {
		actor = s.defaultActor
	}

	valid := ValidMarks(req.Marks)

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback(ctx)

	for _, m := range valid {
		err := s.attendanceRepo.RecordMark(ctx, tx, m.StudentID, req.LectureID, date, *m.IsPresent, actor)
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == "P0001" {
				// Business-rule rejection raised by record_attendance,
				// e.g. the student is not enrolled in this offering.
				return 0, &RowError{StudentID: m.StudentID, Message: pgErr.Message}
			}
			return 0, fmt.Errorf("record mark for student %d: %w", m.StudentID, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, err
	}

	// Post-commit effects are best-effort: the marks are already durable.
	s.publishMarks(ctx, req.LectureID, date, valid, actor)
	s.checkAbsencePolicy(ctx, lc, valid)

	return len(req.Marks), nil
}

// ValidMarks filters a batch down to the rows that carry both a student
// id and a present flag. Everything else is skipped, not rejected.
func ValidMarks(marks []model.AttendanceMark) []model.AttendanceMark {
	valid := make([]model.AttendanceMark, 0, len(marks))
	for _, m := range marks {
		if m.StudentID == 0 || m.IsPresent == nil {
			continue
		}
		valid = append(valid, m)
	}
	return valid
}

// publishMarks pushes one event per applied row onto the Redis channel
// feeding the live dashboard stream.
func (s *AttendanceService) publishMarks(ctx context.Context, lectureID int, date time.Time, marks []model.AttendanceMark, actor string) {
	now := time.Now()
	for _, m := range marks {
		ev := websocket.MarkEvent{
			LectureID:   lectureID,
			LectureDate: date.Format(time.DateOnly),
			StudentID:   m.StudentID,
			IsPresent:   *m.IsPresent,
			Actor:       actor,
			MarkedAt:    now,
		}
		raw, err := json.Marshal(ev)
		if err != nil {
			continue
		}
		if err := s.rdb.Publish(ctx, websocket.MarkChannel, raw).Err(); err != nil {
			s.log.Warn().Err(err).Int("student_id", m.StudentID).Msg("Publish mark event failed")
			return
		}
	}
}

// checkAbsencePolicy enqueues a warning email for every student whose
// absence count in this offering has just reached the course's warning
// threshold or its maximum. Failures are logged, never surfaced: the
// attendance batch has already committed.
func (s *AttendanceService) checkAbsencePolicy(ctx context.Context, lc *model.LectureContext, marks []model.AttendanceMark) {
	var course *model.Course
	for _, m := range marks {
		if *m.IsPresent {
			continue
		}

		if course == nil {
			var err error
			if course, err = s.courseRepo.GetByID(ctx, lc.CourseID); err != nil {
				s.log.Warn().Err(err).Int("course_id", lc.CourseID).Msg("Absence policy: course lookup failed")
				return
			}
		}

		count, err := s.attendanceRepo.AbsenceCount(ctx, m.StudentID, lc.OfferingID)
		if err != nil {
			s.log.Warn().Err(err).Int("student_id", m.StudentID).Msg("Absence policy: count failed")
			continue
		}

		level := AbsenceLevel(count, course.AbsenceWarningThreshold, course.MaxAbsenceAllowed)
		if level == AbsenceOK {
			continue
		}

		student, err := s.studentRepo.GetByID(ctx, m.StudentID)
		if err != nil || student.Email == nil {
			continue
		}

		subject := fmt.Sprintf("Absence warning: %s", course.Name)
		body := fmt.Sprintf("Dear %s %s,\n\nYou have been marked absent %d time(s) in %s.",
			student.FirstName, student.LastName, count, course.Name)
		if level == AbsenceExceeded {
			subject = fmt.Sprintf("Absence limit reached: %s", course.Name)
			body += fmt.Sprintf("\nThe maximum allowed for this course is %d.", course.MaxAbsenceAllowed)
		}

		if err := s.notifRepo.Enqueue(ctx, *student.Email, subject, body, false); err != nil {
			s.log.Warn().Err(err).Int("student_id", m.StudentID).Msg("Absence policy: enqueue failed")
		}
	}
}

// Absence policy levels.
const (
	AbsenceOK = iota
	AbsenceWarning
	AbsenceExceeded
)

// AbsenceLevel classifies an absence count against the course policy.
// The warning fires only when the count lands exactly on the threshold so
// each student is warned once, while the exceeded level keeps firing.
func AbsenceLevel(count, warningThreshold, maxAllowed int) int {
	switch {
	case maxAllowed > 0 && count >= maxAllowed:
		return AbsenceExceeded
	case warningThreshold > 0 && count == warningThreshold:
		return AbsenceWarning
	default:
		return AbsenceOK
	}
}
