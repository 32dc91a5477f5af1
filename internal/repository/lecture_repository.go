package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/registra-edu/registra-backend/internal/model"
)

// ErrLectureNotFound is returned when a lecture id does not resolve.
var ErrLectureNotFound = errors.New("lecture not found")

// LectureRepository handles lecture slot data access.
type LectureRepository struct {
	pool *pgxpool.Pool
}

// NewLectureRepository creates a new LectureRepository.
func NewLectureRepository(pool *pgxpool.Pool) *LectureRepository {
	return &LectureRepository{pool: pool}
}

// ListByOffering retrieves the lecture slots of one offering with their
// day labels resolved from the lookup table.
func (r *LectureRepository) ListByOffering(ctx context.Context, offeringID int) ([]model.Lecture, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT l.lecture_id, l.offering_id, l.lecture_days_id, lu.code,
		        to_char(l.start_time, 'HH24:MI:SS'), to_char(l.end_time, 'HH24:MI:SS'), l.room
		 FROM lectures l
		 JOIN lookup lu ON lu.lookup_id = l.lecture_days_id
		 WHERE l.offering_id = $1
		 ORDER BY l.lecture_id`, offeringID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lectures []model.Lecture
	for rows.Next() {
		var l model.Lecture
		if err := rows.Scan(&l.ID, &l.OfferingID, &l.LectureDaysID, &l.Days,
			&l.StartTime, &l.EndTime, &l.Room); err != nil {
			return nil, err
		}
		lectures = append(lectures, l)
	}
	return lectures, rows.Err()
}

// CandidatesOn retrieves all lectures whose owning semester covers the
// date, along with the raw day code of each. Day-of-week matching against
// the code is the schedule package's job, not SQL's.
func (r *LectureRepository) CandidatesOn(ctx context.Context, date time.Time) ([]model.LectureCandidate, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT
		   l.lecture_id,
		   l.offering_id,
		   c.course_name,
		   co.section,
		   to_char(l.start_time, 'HH24:MI:SS'),
		   to_char(l.end_time, 'HH24:MI:SS'),
		   l.room,
		   lu.code
		 FROM lectures l
		 JOIN course_offerings co ON co.offering_id = l.offering_id
		 JOIN courses c           ON c.course_id = co.course_id
		 JOIN semesters se        ON se.semester_id = co.semester_id
		 JOIN lookup lu           ON lu.lookup_id = l.lecture_days_id
		 WHERE $1::date BETWEEN se.start_date AND se.end_date
		 ORDER BY c.course_name, co.section, l.start_time`, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var candidates []model.LectureCandidate
	for rows.Next() {
		var lc model.LectureCandidate
		if err := rows.Scan(&lc.LectureID, &lc.OfferingID, &lc.CourseName, &lc.Section,
			&lc.StartTime, &lc.EndTime, &lc.Room, &lc.DayCode); err != nil {
			return nil, err
		}
		candidates = append(candidates, lc)
	}
	return candidates, rows.Err()
}

// GetContext resolves a lecture to its offering, course and semester.
func (r *LectureRepository) GetContext(ctx context.Context, lectureID int) (*model.LectureContext, error) {
	lc := &model.LectureContext{}
	err := r.pool.QueryRow(ctx,
		`SELECT l.offering_id, c.course_id, se.semester_name
		 FROM lectures l
		 JOIN course_offerings co ON co.offering_id = l.offering_id
		 JOIN courses c           ON c.course_id = co.course_id
		 JOIN semesters se        ON se.semester_id = co.semester_id
		 WHERE l.lecture_id = $1`, lectureID,
	).Scan(&lc.OfferingID, &lc.CourseID, &lc.SemesterName)
	if err == pgx.ErrNoRows {
		return nil, ErrLectureNotFound
	}
	if err != nil {
		return nil, err
	}
	return lc, nil
}

// Create inserts a new lecture slot.
func (r *LectureRepository) Create(ctx context.Context, req *model.CreateLectureRequest) (int, error) {
	var id int
	err := r.pool.QueryRow(ctx,
		`INSERT INTO lectures (offering_id, lecture_days_id, start_time, end_time, room)
		 VALUES ($1, $2, $3::time, $4::time, $5)
		 RETURNING lecture_id`,
		req.OfferingID, req.LectureDaysID, req.StartTime, req.EndTime, req.Room,
	).Scan(&id)
	return id, err
}

// Delete removes a lecture slot.
func (r *LectureRepository) Delete(ctx context.Context, id int) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM lectures WHERE lecture_id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrLectureNotFound
	}
	return nil
}

// Picklists loads the dropdown sources for the lecture admin page,
// optionally narrowing offerings by semester and course.
func (r *LectureRepository) Picklists(ctx context.Context, semesterID, courseID *int) (*model.LecturePicklists, error) {
	p := &model.LecturePicklists{}

	rows, err := r.pool.Query(ctx,
		`SELECT semester_id, semester_name FROM semesters ORDER BY start_date DESC`)
	if err != nil {
		return nil, err
	}
	if p.Semesters, err = scanOptions(rows); err != nil {
		return nil, err
	}

	rows, err = r.pool.Query(ctx,
		`SELECT course_id, course_name FROM courses ORDER BY course_name`)
	if err != nil {
		return nil, err
	}
	if p.Courses, err = scanOptions(rows); err != nil {
		return nil, err
	}

	rows, err = r.pool.Query(ctx,
		`SELECT co.offering_id,
		        c.course_name || ' • Sec ' || co.section || ' • ' || se.semester_name
		 FROM course_offerings co
		 JOIN courses c   ON c.course_id = co.course_id
		 JOIN semesters se ON se.semester_id = co.semester_id
		 WHERE ($1::int IS NULL OR co.semester_id = $1)
		   AND ($2::int IS NULL OR co.course_id = $2)
		 ORDER BY se.start_date DESC, c.course_name, co.section`,
		semesterID, courseID)
	if err != nil {
		return nil, err
	}
	if p.Offerings, err = scanOptions(rows); err != nil {
		return nil, err
	}

	rows, err = r.pool.Query(ctx,
		`SELECT lookup_id, code FROM lookup
		 WHERE domain = $1 AND is_active
		 ORDER BY sort_order, lookup_id`, model.DomainLectureDays)
	if err != nil {
		return nil, err
	}
	if p.Days, err = scanOptions(rows); err != nil {
		return nil, err
	}

	return p, nil
}

func scanOptions(rows pgx.Rows) ([]model.LookupOption, error) {
	defer rows.Close()
	var opts []model.LookupOption
	for rows.Next() {
		var o model.LookupOption
		if err := rows.Scan(&o.ID, &o.Name); err != nil {
			return nil, err
		}
		opts = append(opts, o)
	}
	return opts, rows.Err()
}
