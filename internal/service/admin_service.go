package service

import (
	"context"
	"errors"
	"time"

	"github.com/registra-edu/registra-backend/internal/model"
	"github.com/registra-edu/registra-backend/internal/repository"
)

// ErrInvalidDayCode is returned when a lecture references an id outside
// the lecture_days lookup domain.
var ErrInvalidDayCode = errors.New("lecture_days_id is not a valid lecture day entry")

// CourseService covers course catalog CRUD.
type CourseService struct {
	repo *repository.CourseRepository
}

// NewCourseService creates a new CourseService.
func NewCourseService(repo *repository.CourseRepository) *CourseService {
	return &CourseService{repo: repo}
}

func (s *CourseService) List(ctx context.Context) ([]model.Course, error) {
	return s.repo.List(ctx)
}

func (s *CourseService) Get(ctx context.Context, id int) (*model.Course, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *CourseService) Create(ctx context.Context, req *model.CourseRequest) (*model.Course, error) {
	course := &model.Course{
		Name:                    req.Name,
		Department:              req.Department,
		MaxAbsenceAllowed:       req.MaxAbsenceAllowed,
		AbsenceWarningThreshold: req.AbsenceWarningThreshold,
		StatusID:                req.StatusID,
	}
	if err := s.repo.Create(ctx, course); err != nil {
		return nil, err
	}
	return course, nil
}

func (s *CourseService) Update(ctx context.Context, id int, req *model.CourseRequest) (*model.Course, error) {
	course := &model.Course{
		ID:                      id,
		Name:                    req.Name,
		Department:              req.Department,
		MaxAbsenceAllowed:       req.MaxAbsenceAllowed,
		AbsenceWarningThreshold: req.AbsenceWarningThreshold,
		StatusID:                req.StatusID,
	}
	if err := s.repo.Update(ctx, course); err != nil {
		return nil, err
	}
	return course, nil
}

func (s *CourseService) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}

// StudentService covers student record CRUD. Writes stamp the acting
// admin's name into the audit columns.
type StudentService struct {
	repo  *repository.StudentRepository
	actor string
}

// NewStudentService creates a new StudentService.
func NewStudentService(repo *repository.StudentRepository, actor string) *StudentService {
	return &StudentService{repo: repo, actor: actor}
}

func (s *StudentService) List(ctx context.Context) ([]model.Student, error) {
	return s.repo.List(ctx)
}

func (s *StudentService) Get(ctx context.Context, id int) (*model.Student, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *StudentService) Create(ctx context.Context, req *model.StudentRequest) (*model.Student, error) {
	student, err := studentFromRequest(0, req)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, student, s.actor); err != nil {
		return nil, err
	}
	return student, nil
}

func (s *StudentService) Update(ctx context.Context, id int, req *model.StudentRequest) (*model.Student, error) {
	student, err := studentFromRequest(id, req)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, student, s.actor); err != nil {
		return nil, err
	}
	return student, nil
}

func (s *StudentService) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}

func studentFromRequest(id int, req *model.StudentRequest) (*model.Student, error) {
	enrolled, err := time.Parse(time.DateOnly, req.EnrollmentDate)
	if err != nil {
		return nil, err
	}
	return &model.Student{
		ID:             id,
		MajorID:        req.MajorID,
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Email:          req.Email,
		EnrollmentDate: enrolled,
		StatusID:       req.StatusID,
	}, nil
}

// SemesterService lists academic terms.
type SemesterService struct {
	repo *repository.SemesterRepository
}

// NewSemesterService creates a new SemesterService.
func NewSemesterService(repo *repository.SemesterRepository) *SemesterService {
	return &SemesterService{repo: repo}
}

func (s *SemesterService) List(ctx context.Context) ([]model.Semester, error) {
	return s.repo.List(ctx)
}

// OfferingService covers course offering CRUD.
type OfferingService struct {
	repo *repository.OfferingRepository
}

// NewOfferingService creates a new OfferingService.
func NewOfferingService(repo *repository.OfferingRepository) *OfferingService {
	return &OfferingService{repo: repo}
}

func (s *OfferingService) List(ctx context.Context, semesterID, courseID *int) ([]model.Offering, error) {
	return s.repo.List(ctx, semesterID, courseID)
}

func (s *OfferingService) Create(ctx context.Context, req *model.CreateOfferingRequest) (int, error) {
	capacity := 50
	if req.Capacity != nil {
		capacity = *req.Capacity
	}
	return s.repo.Create(ctx, req.CourseID, req.SemesterID, req.Section, capacity)
}

func (s *OfferingService) Update(ctx context.Context, id int, req *model.UpdateOfferingRequest) error {
	return s.repo.Update(ctx, id, req.Section, req.Capacity)
}

func (s *OfferingService) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}

// LectureService covers lecture slot management.
type LectureService struct {
	repo       *repository.LectureRepository
	lookupRepo *repository.LookupRepository
}

// NewLectureService creates a new LectureService.
func NewLectureService(repo *repository.LectureRepository, lookupRepo *repository.LookupRepository) *LectureService {
	return &LectureService{repo: repo, lookupRepo: lookupRepo}
}

func (s *LectureService) ListByOffering(ctx context.Context, offeringID int) ([]model.Lecture, error) {
	return s.repo.ListByOffering(ctx, offeringID)
}

// Create validates the day reference before inserting: a lookup id from
// the wrong domain would silently produce a lecture that never occurs.
func (s *LectureService) Create(ctx context.Context, req *model.CreateLectureRequest) (int, error) {
	ok, err := s.lookupRepo.IsInDomain(ctx, req.LectureDaysID, "lecture_days")
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, ErrInvalidDayCode
	}
	return s.repo.Create(ctx, req)
}

func (s *LectureService) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}

func (s *LectureService) Picklists(ctx context.Context, semesterID, courseID *int) (*model.LecturePicklists, error) {
	return s.repo.Picklists(ctx, semesterID, courseID)
}

// EnrollmentService links students to offerings.
type EnrollmentService struct {
	repo *repository.EnrollmentRepository
}

// NewEnrollmentService creates a new EnrollmentService.
func NewEnrollmentService(repo *repository.EnrollmentRepository) *EnrollmentService {
	return &EnrollmentService{repo: repo}
}

func (s *EnrollmentService) List(ctx context.Context) ([]model.EnrollmentRow, error) {
	return s.repo.List(ctx)
}

func (s *EnrollmentService) Create(ctx context.Context, req *model.CreateEnrollmentRequest) (*model.Enrollment, error) {
	e := &model.Enrollment{
		StudentID:  req.StudentID,
		OfferingID: req.OfferingID,
		StatusID:   req.StatusID,
	}
	if err := s.repo.Create(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}
