package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/noah-isme/sma-class-api/internal/dto"
	"github.com/noah-isme/sma-class-api/internal/models"
	"github.com/noah-isme/sma-class-api/internal/repository"
	appErrors "github.com/noah-isme/sma-class-api/pkg/errors"
)

type classRepository interface {
	List(ctx context.Context) ([]models.Class, error)
	FindByID(ctx context.Context, id string) (*models.Class, error)
	Create(ctx context.Context, exec sqlx.ExtContext, class *models.Class) error
	Update(ctx context.Context, class *models.Class) error
	LockForDelete(ctx context.Context, exec sqlx.ExtContext, id string) error
	Delete(ctx context.Context, exec sqlx.ExtContext, id string) (int64, error)
	CountStudents(ctx context.Context, exec sqlx.ExtContext, classID string) (int, error)
	CountScheduleSlots(ctx context.Context, classID string) (int, error)
	ListWithCapacity(ctx context.Context) ([]dto.ClassWithCapacity, error)
}

type refDataReader interface {
	ListDays(ctx context.Context, exec sqlx.ExtContext) ([]models.Day, error)
	ListPeriods(ctx context.Context, exec sqlx.ExtContext) ([]models.Period, error)
}

type scheduleSlotRepository interface {
	BulkInsert(ctx context.Context, exec sqlx.ExtContext, slots []models.ScheduleSlot) error
	DeleteByClass(ctx context.Context, exec sqlx.ExtContext, classID string) (int64, error)
	ListTimetable(ctx context.Context, classID string) ([]dto.TimetableRow, error)
}

type rosterReader interface {
	ListRoster(ctx context.Context, classID string) ([]dto.ClassStudent, error)
}

type curriculumReader interface {
	ListByGradeWithTeachers(ctx context.Context, grade string) ([]repository.SubjectTeacherRow, error)
}

type txProvider interface {
	BeginTxx(ctx context.Context, opts *sql.TxOptions) (*sqlx.Tx, error)
}

// CreateClassRequest captures creation payload.
type CreateClassRequest struct {
	Name  string `json:"name" validate:"required"`
	Floor int    `json:"floor" validate:"required,gt=0"`
	Grade string `json:"grade" validate:"required"`
}

// UpdateClassRequest replaces the mutable class fields.
type UpdateClassRequest struct {
	Name  string `json:"name" validate:"required"`
	Floor int    `json:"floor" validate:"required,gt=0"`
	Grade string `json:"grade" validate:"required"`
}

// ClassService coordinates the class lifecycle: creation with atomic
// schedule-grid generation, guarded deletion, and the read projections.
type ClassService struct {
	repo      classRepository
	refdata   refDataReader
	slots     scheduleSlotRepository
	roster    rosterReader
	subjects  curriculumReader
	tx        txProvider
	validator *validator.Validate
	metrics   *MetricsService
	logger    *zap.Logger
}

// NewClassService constructs ClassService.
func NewClassService(
	repo classRepository,
	refdata refDataReader,
	slots scheduleSlotRepository,
	roster rosterReader,
	subjects curriculumReader,
	tx txProvider,
	validate *validator.Validate,
	metrics *MetricsService,
	logger *zap.Logger,
) *ClassService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ClassService{
		repo:      repo,
		refdata:   refdata,
		slots:     slots,
		roster:    roster,
		subjects:  subjects,
		tx:        tx,
		validator: validate,
		metrics:   metrics,
		logger:    logger,
	}
}

// checkClassFields re-validates the payload beyond struct tags. The API
// boundary already binds types; this is defense in depth for required
// presence and the grade enumeration.
func (s *ClassService) checkClassFields(name string, floor int, grade string) error {
	if strings.TrimSpace(name) == "" || floor <= 0 {
		return appErrors.Clone(appErrors.ErrMissingFields, "")
	}
	if !models.IsValidGrade(grade) {
		return appErrors.Clone(appErrors.ErrMissingFields, fmt.Sprintf("grade must be one of %s", strings.Join(models.ValidGrades, ", ")))
	}
	return nil
}

// Create inserts the class and generates its full day-by-period slot grid in
// one transaction. Either both land or neither does; a partial grid is never
// observable.
func (s *ClassService) Create(ctx context.Context, req CreateClassRequest) (*dto.CreateClassResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrMissingFields.Code, appErrors.ErrMissingFields.Status, "invalid class payload")
	}
	if err := s.checkClassFields(req.Name, req.Floor, req.Grade); err != nil {
		return nil, err
	}

	tx, err := s.tx.BeginTxx(ctx, nil)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to begin transaction")
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	grade := req.Grade
	class := &models.Class{Name: req.Name, Floor: req.Floor, Grade: &grade}
	if err = s.repo.Create(ctx, tx, class); err != nil {
		err = appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create class")
		return nil, err
	}

	days, listErr := s.refdata.ListDays(ctx, tx)
	if listErr != nil {
		err = appErrors.Wrap(listErr, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load days")
		return nil, err
	}
	periods, listErr := s.refdata.ListPeriods(ctx, tx)
	if listErr != nil {
		err = appErrors.Wrap(listErr, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load periods")
		return nil, err
	}

	slots := buildScheduleGrid(class.ID, days, periods)
	if err = s.slots.BulkInsert(ctx, tx, slots); err != nil {
		err = appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to generate schedule grid")
		return nil, err
	}

	if err = tx.Commit(); err != nil {
		err = appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to commit class creation")
		return nil, err
	}

	s.metrics.RecordClassCreated(len(slots))
	s.logger.Info("class created",
		zap.String("class_id", class.ID),
		zap.Int("slots_created", len(slots)),
	)

	return &dto.CreateClassResponse{Success: true, ClassID: class.ID, SlotsCreated: len(slots)}, nil
}

// Get returns the class projection.
func (s *ClassService) Get(ctx context.Context, id string) (*models.Class, error) {
	class, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrClassNotFound, "")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load class")
	}
	return class, nil
}

// List returns all classes in stable identity order.
func (s *ClassService) List(ctx context.Context) ([]models.Class, error) {
	classes, err := s.repo.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list classes")
	}
	return classes, nil
}

// GroupedByGrade partitions every class into exactly one grade bucket.
// Classes without a grade land in the explicit Ungrouped bucket; buckets are
// emitted in first-seen order, classes within a bucket in repository order.
func (s *ClassService) GroupedByGrade(ctx context.Context) ([]dto.GradeGroup, error) {
	rows, err := s.repo.ListWithCapacity(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to group classes by grade")
	}

	index := make(map[string]int)
	groups := make([]dto.GradeGroup, 0)
	for _, row := range rows {
		key := dto.UngroupedBucket
		if row.Grade != nil && *row.Grade != "" {
			key = *row.Grade
		}
		pos, ok := index[key]
		if !ok {
			pos = len(groups)
			index[key] = pos
			groups = append(groups, dto.GradeGroup{Grade: key, Classes: []dto.ClassWithCapacity{}})
		}
		groups[pos].Classes = append(groups[pos].Classes, row)
	}
	return groups, nil
}

// Update replaces name, floor and grade on the matching row.
func (s *ClassService) Update(ctx context.Context, id string, req UpdateClassRequest) (*models.Class, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrMissingFields.Code, appErrors.ErrMissingFields.Status, "invalid class payload")
	}
	if err := s.checkClassFields(req.Name, req.Floor, req.Grade); err != nil {
		return nil, err
	}

	class, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrClassNotFound, "")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load class")
	}

	grade := req.Grade
	class.Name = req.Name
	class.Floor = req.Floor
	class.Grade = &grade

	if err := s.repo.Update(ctx, class); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update class")
	}
	return class, nil
}

// CanDelete previews deletability without side effects. The answer can go
// stale before a Delete call; Delete re-validates inside its transaction.
func (s *ClassService) CanDelete(ctx context.Context, id string) (*dto.DeleteCheck, error) {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return &dto.DeleteCheck{Deletable: false, Reason: "class not found"}, nil
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load class")
	}

	students, err := s.repo.CountStudents(ctx, nil, id)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to count class students")
	}
	if students > 0 {
		return &dto.DeleteCheck{
			Deletable:    false,
			Reason:       fmt.Sprintf("class has %d assigned students", students),
			StudentCount: students,
		}, nil
	}

	slots, err := s.repo.CountScheduleSlots(ctx, id)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to count class schedules")
	}
	return &dto.DeleteCheck{Deletable: true, ScheduleCount: slots}, nil
}

// Delete removes the class and its slot grid. Existence and the
// zero-student precondition are re-validated under a row lock inside the
// transaction; a prior CanDelete answer is never trusted across requests.
func (s *ClassService) Delete(ctx context.Context, id string) (*dto.DeleteClassResponse, error) {
	tx, err := s.tx.BeginTxx(ctx, nil)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to begin transaction")
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if err = s.repo.LockForDelete(ctx, tx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			err = appErrors.Clone(appErrors.ErrClassNotFound, "")
			return nil, err
		}
		err = appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to lock class")
		return nil, err
	}

	students, countErr := s.repo.CountStudents(ctx, tx, id)
	if countErr != nil {
		err = appErrors.Wrap(countErr, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to count class students")
		return nil, err
	}
	if students > 0 {
		err = appErrors.Clone(appErrors.ErrHasStudents,
			fmt.Sprintf("class has %d assigned students; reassign or remove them before deleting", students))
		return nil, err
	}

	slotsDeleted, delErr := s.slots.DeleteByClass(ctx, tx, id)
	if delErr != nil {
		err = appErrors.Wrap(delErr, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete class schedules")
		return nil, err
	}

	deleted, delErr := s.repo.Delete(ctx, tx, id)
	if delErr != nil {
		err = appErrors.Wrap(delErr, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete class")
		return nil, err
	}

	if err = tx.Commit(); err != nil {
		err = appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to commit class deletion")
		return nil, err
	}

	s.metrics.RecordClassDeleted()
	s.logger.Info("class deleted",
		zap.String("class_id", id),
		zap.Int64("slots_removed", slotsDeleted),
	)

	return &dto.DeleteClassResponse{Message: "Class deleted successfully", Deleted: int(deleted)}, nil
}

// Students returns the roster with attendance percentages. An empty classID
// spans all classes; a concrete one must exist.
func (s *ClassService) Students(ctx context.Context, classID string) ([]dto.ClassStudent, error) {
	if classID != "" {
		if _, err := s.Get(ctx, classID); err != nil {
			return nil, err
		}
	}
	rows, err := s.roster.ListRoster(ctx, classID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list class students")
	}
	if rows == nil {
		rows = []dto.ClassStudent{}
	}
	return rows, nil
}

// Schedule returns the weekly grid grouped by day name, days in identity
// order, periods within a day in start-time order.
func (s *ClassService) Schedule(ctx context.Context, classID string) ([]dto.DaySchedule, error) {
	if _, err := s.Get(ctx, classID); err != nil {
		return nil, err
	}
	rows, err := s.slots.ListTimetable(ctx, classID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load class schedule")
	}

	days := make([]dto.DaySchedule, 0)
	for _, row := range rows {
		if len(days) == 0 || days[len(days)-1].Day != row.DayName {
			days = append(days, dto.DaySchedule{Day: row.DayName, Periods: []dto.TimetableRow{}})
		}
		last := &days[len(days)-1]
		last.Periods = append(last.Periods, row)
	}
	return days, nil
}

// SubjectsWithTeachers resolves the class's grade and lists its curriculum
// subjects, each with every assigned teacher. Subjects with no assignment
// appear with an empty teacher list; a gradeless class has no curriculum.
func (s *ClassService) SubjectsWithTeachers(ctx context.Context, classID string) ([]dto.SubjectWithTeachers, error) {
	class, err := s.Get(ctx, classID)
	if err != nil {
		return nil, err
	}
	if class.Grade == nil || *class.Grade == "" {
		return []dto.SubjectWithTeachers{}, nil
	}

	rows, err := s.subjects.ListByGradeWithTeachers(ctx, *class.Grade)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list class subjects")
	}

	subjects := make([]dto.SubjectWithTeachers, 0)
	for _, row := range rows {
		if len(subjects) == 0 || subjects[len(subjects)-1].SubjectID != row.SubjectID {
			subjects = append(subjects, dto.SubjectWithTeachers{
				SubjectID: row.SubjectID,
				Name:      row.SubjectName,
				Teachers:  []dto.SubjectTeacher{},
			})
		}
		if row.TeacherID != nil {
			last := &subjects[len(subjects)-1]
			last.Teachers = append(last.Teachers, dto.SubjectTeacher{TeacherID: *row.TeacherID, FullName: derefOrEmpty(row.TeacherName)})
		}
	}
	return subjects, nil
}

func derefOrEmpty(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}
