package feegenerator

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"go-schoolfee/internal/events"
	"go-schoolfee/internal/feecatalog"
	feecatalogerrors "go-schoolfee/internal/feecatalog/errors"
	feegeneratorerrors "go-schoolfee/internal/feegenerator/errors"
	"go-schoolfee/internal/messaging/kafka"
	"go-schoolfee/internal/roster"
	rostererrors "go-schoolfee/internal/roster/errors"
	"go-schoolfee/internal/shared/batch"
	"go-schoolfee/internal/shared/contextutil"
	"go-schoolfee/internal/siblingdiscount"
	"go-schoolfee/internal/studentfee"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	TriggerEnrollment = "enrollment"
	TriggerMonthly    = "monthly"
	TriggerStructure  = "structure"
)

//go:generate mockgen -source=feegenerator_service.go -destination=mock/feegenerator_service_mock.go -package=mock
type Service interface {
	GenerateForNewStudent(ctx context.Context, schoolID, actorID string, req NewStudentRequest) (NewStudentResult, error)
	GenerateMonthly(ctx context.Context, schoolID, actorID string, req MonthlyRequest) (BatchResult, error)
	GenerateMonthlyAllSchools(ctx context.Context, req MonthlyRequest) (AllSchoolsResult, error)
	GenerateForStructure(ctx context.Context, schoolID, actorID string, req StructureRequest) (BatchResult, error)
}

type Options struct {
	// DefaultDueDay is the billing day for monthly structures without one.
	DefaultDueDay int
	// SchoolConcurrency bounds the schools processed in parallel by
	// GenerateMonthlyAllSchools.
	SchoolConcurrency int
	Now               func() time.Time
}

type service struct {
	db        *sql.DB
	fees      studentfee.Repository
	catalog   feecatalog.Repository
	directory roster.Directory
	resolver  siblingdiscount.Resolver
	outbox    kafka.OutboxRepository
	opts      Options
	logger    *zap.Logger
}

func NewService(
	db *sql.DB,
	fees studentfee.Repository,
	catalog feecatalog.Repository,
	directory roster.Directory,
	resolver siblingdiscount.Resolver,
	outbox kafka.OutboxRepository,
	opts Options,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("feegenerator.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("feegenerator.service")
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.DefaultDueDay == 0 {
		opts.DefaultDueDay = 10
	}
	if opts.SchoolConcurrency < 1 {
		opts.SchoolConcurrency = 1
	}
	return &service{
		db:        db,
		fees:      fees,
		catalog:   catalog,
		directory: directory,
		resolver:  resolver,
		outbox:    outbox,
		opts:      opts,
		logger:    l,
	}
}

func (s *service) now() time.Time {
	return s.opts.Now().UTC()
}

func (s *service) GenerateForNewStudent(ctx context.Context, schoolID, actorID string, req NewStudentRequest) (NewStudentResult, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("generate fees for new student requested",
		zap.String("request_id", rid),
		zap.String("school_id", schoolID),
		zap.String("student_id", req.StudentID),
		zap.Strings("category_ids", req.CategoryIDs),
	)

	if _, err := uuid.Parse(schoolID); err != nil {
		return NewStudentResult{}, feegeneratorerrors.ErrInvalidSchoolID
	}
	if strings.TrimSpace(req.AcademicYear) == "" {
		return NewStudentResult{}, feegeneratorerrors.ErrAcademicYearMissing
	}
	if err := validatePeriod(req.BillingPeriod); err != nil {
		return NewStudentResult{}, err
	}

	student, err := s.directory.GetStudent(ctx, schoolID, req.StudentID)
	if err != nil {
		return NewStudentResult{}, err
	}
	if !student.IsActive {
		return NewStudentResult{}, rostererrors.ErrStudentInactive
	}

	gradeLevelID := student.GradeLevelID.String()
	if req.GradeLevelID != "" {
		gradeLevelID = req.GradeLevelID
	}

	structures, err := s.catalog.FindStructures(ctx, schoolID, feecatalog.StructureFilter{
		AcademicYear:   req.AcademicYear,
		GradeLevelID:   gradeLevelID,
		FeeCategoryIDs: req.CategoryIDs,
		Billable:       true,
	})
	if err != nil {
		s.logger.Error("generate fees for new student load structures failed", zap.String("request_id", rid), zap.Error(err))
		return NewStudentResult{}, err
	}
	if len(structures) == 0 {
		s.logger.Warn("generate fees for new student found no structures",
			zap.String("request_id", rid),
			zap.String("student_id", req.StudentID),
			zap.String("grade_level_id", gradeLevelID),
		)
		return NewStudentResult{}, feegeneratorerrors.ErrNoApplicableStructures
	}

	fees, created, err := s.billStudent(ctx, *student, structures, req.BillingPeriod, req.AcademicYear, parseActor(actorID))
	if err != nil {
		s.logger.Error("generate fees for new student failed",
			zap.String("request_id", rid),
			zap.String("student_id", req.StudentID),
			zap.Error(err),
		)
		return NewStudentResult{}, err
	}

	result := NewStudentResult{
		StudentID:   req.StudentID,
		FeesCreated: created,
		FeesSkipped: len(fees) - created,
		Fees:        studentfee.ToListResponse(fees),
	}
	s.emitGenerated(ctx, schoolID, TriggerEnrollment, req.AcademicYear, "", result.FeesCreated, 1)

	s.logger.Info("generate fees for new student success",
		zap.String("request_id", rid),
		zap.String("student_id", req.StudentID),
		zap.Int("fees_created", result.FeesCreated),
		zap.Int("fees_skipped", result.FeesSkipped),
	)
	return result, nil
}

func (s *service) GenerateMonthly(ctx context.Context, schoolID, actorID string, req MonthlyRequest) (BatchResult, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("generate monthly fees requested",
		zap.String("request_id", rid),
		zap.String("school_id", schoolID),
		zap.Int("month", req.Month),
		zap.Int("year", req.Year),
	)

	if _, err := uuid.Parse(schoolID); err != nil {
		return BatchResult{}, feegeneratorerrors.ErrInvalidSchoolID
	}
	if err := validateMonthly(req); err != nil {
		return BatchResult{}, err
	}

	filter := feecatalog.StructureFilter{
		AcademicYear: req.AcademicYear,
		GradeLevelID: req.GradeLevelID,
		PeriodType:   feecatalog.PeriodMonthly,
		Billable:     true,
	}
	if req.CategoryID != "" {
		filter.FeeCategoryIDs = []string{req.CategoryID}
	}

	structures, err := s.catalog.FindStructures(ctx, schoolID, filter)
	if err != nil {
		s.logger.Error("generate monthly fees load structures failed", zap.String("request_id", rid), zap.Error(err))
		return BatchResult{}, err
	}

	byGrade := make(map[uuid.UUID][]feecatalog.FeeStructure)
	for _, st := range structures {
		byGrade[st.GradeLevelID] = append(byGrade[st.GradeLevelID], st)
	}

	students, err := s.directory.ListActiveStudents(ctx, schoolID, roster.StudentFilter{
		GradeLevelID: optional(req.GradeLevelID),
		SectionID:    optional(req.SectionID),
	})
	if err != nil {
		s.logger.Error("generate monthly fees load students failed", zap.String("request_id", rid), zap.Error(err))
		return BatchResult{}, err
	}

	bp := BillingPeriod{Month: req.Month, Year: req.Year}
	result, err := s.billStudents(ctx, students, byGrade, bp, req.AcademicYear, parseActor(actorID))
	if err != nil {
		s.logger.Error("generate monthly fees failed",
			zap.String("request_id", rid),
			zap.String("school_id", schoolID),
			zap.Int("fees_created", result.FeesCreated),
			zap.Error(err),
		)
		return result, err
	}

	s.emitGenerated(ctx, schoolID, TriggerMonthly, req.AcademicYear, studentfee.MonthKey(req.Year, req.Month), result.FeesCreated, result.StudentsProcessed)

	s.logger.Info("generate monthly fees success",
		zap.String("request_id", rid),
		zap.String("school_id", schoolID),
		zap.Int("fees_created", result.FeesCreated),
		zap.Int("fees_skipped", result.FeesSkipped),
		zap.Int("students_processed", result.StudentsProcessed),
	)
	return result, nil
}

func (s *service) GenerateMonthlyAllSchools(ctx context.Context, req MonthlyRequest) (AllSchoolsResult, error) {
	rid := contextutil.GetRequestID(ctx)
	if err := validateMonthly(req); err != nil {
		return AllSchoolsResult{}, err
	}

	schoolIDs, err := s.directory.ListActiveSchoolIDs(ctx)
	if err != nil {
		s.logger.Error("generate monthly fees list schools failed", zap.String("request_id", rid), zap.Error(err))
		return AllSchoolsResult{}, err
	}

	// Filters are per school; a global run bills every grade and category.
	scoped := MonthlyRequest{Month: req.Month, Year: req.Year, AcademicYear: req.AcademicYear}
	outcomes := batch.ForEachSchool(ctx, schoolIDs, s.opts.SchoolConcurrency,
		func(ctx context.Context, schoolID string) (BatchResult, error) {
			return s.GenerateMonthly(ctx, schoolID, "", scoped)
		},
	)

	result := AllSchoolsResult{Schools: make([]SchoolOutcome, 0, len(outcomes))}
	for _, o := range outcomes {
		outcome := SchoolOutcome{
			SchoolID:          o.SchoolID,
			OK:                o.OK(),
			FeesCreated:       o.Result.FeesCreated,
			StudentsProcessed: o.Result.StudentsProcessed,
		}
		if o.Err != nil {
			outcome.Error = o.Err.Error()
			result.SchoolsFailed++
			s.logger.Error("generate monthly fees school failed",
				zap.String("request_id", rid),
				zap.String("school_id", o.SchoolID),
				zap.Error(o.Err),
			)
		}
		result.TotalFeesCreated += o.Result.FeesCreated
		result.SchoolsProcessed++
		result.Schools = append(result.Schools, outcome)
	}

	s.logger.Info("generate monthly fees for all schools finished",
		zap.String("request_id", rid),
		zap.Int("schools_processed", result.SchoolsProcessed),
		zap.Int("schools_failed", result.SchoolsFailed),
		zap.Int("total_fees_created", result.TotalFeesCreated),
	)
	return result, nil
}

func (s *service) GenerateForStructure(ctx context.Context, schoolID, actorID string, req StructureRequest) (BatchResult, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("generate fees for structure requested",
		zap.String("request_id", rid),
		zap.String("school_id", schoolID),
		zap.String("fee_structure_id", req.FeeStructureID),
		zap.Int("student_count", len(req.StudentIDs)),
	)

	if _, err := uuid.Parse(schoolID); err != nil {
		return BatchResult{}, feegeneratorerrors.ErrInvalidSchoolID
	}
	if err := validatePeriod(req.BillingPeriod); err != nil {
		return BatchResult{}, err
	}

	structure, err := s.catalog.FindStructureByID(ctx, schoolID, req.FeeStructureID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return BatchResult{}, feecatalogerrors.ErrStructureNotFound
		}
		return BatchResult{}, err
	}
	if !structure.IsActive || structure.Category == nil || !structure.Category.IsActive {
		return BatchResult{}, feegeneratorerrors.ErrStructureInactive
	}

	grade := structure.GradeLevelID.String()
	students, err := s.directory.ListActiveStudents(ctx, schoolID, roster.StudentFilter{
		GradeLevelID: &grade,
		StudentIDs:   req.StudentIDs,
	})
	if err != nil {
		s.logger.Error("generate fees for structure load students failed", zap.String("request_id", rid), zap.Error(err))
		return BatchResult{}, err
	}

	byGrade := map[uuid.UUID][]feecatalog.FeeStructure{structure.GradeLevelID: {*structure}}
	result, err := s.billStudents(ctx, students, byGrade, req.BillingPeriod, structure.AcademicYear, parseActor(actorID))
	if err != nil {
		s.logger.Error("generate fees for structure failed",
			zap.String("request_id", rid),
			zap.String("fee_structure_id", req.FeeStructureID),
			zap.Error(err),
		)
		return result, err
	}

	feeMonth := ""
	if p := resolvePeriod(*structure, req.BillingPeriod, s.now()); p.month != nil {
		feeMonth = *p.month
	}
	s.emitGenerated(ctx, schoolID, TriggerStructure, structure.AcademicYear, feeMonth, result.FeesCreated, result.StudentsProcessed)

	s.logger.Info("generate fees for structure success",
		zap.String("request_id", rid),
		zap.String("fee_structure_id", req.FeeStructureID),
		zap.Int("fees_created", result.FeesCreated),
		zap.Int("students_processed", result.StudentsProcessed),
	)
	return result, nil
}

// billStudents bills every student against the structures of their current
// grade. Students whose grade has no structure are counted but not billed.
func (s *service) billStudents(
	ctx context.Context,
	students []roster.Student,
	byGrade map[uuid.UUID][]feecatalog.FeeStructure,
	bp BillingPeriod,
	academicYear string,
	actor *uuid.UUID,
) (BatchResult, error) {
	var result BatchResult
	for _, student := range students {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		result.StudentsProcessed++
		structures := byGrade[student.GradeLevelID]
		if len(structures) == 0 {
			continue
		}

		fees, created, err := s.billStudent(ctx, student, structures, bp, academicYear, actor)
		if err != nil {
			return result, err
		}
		result.FeesCreated += created
		result.FeesSkipped += len(fees) - created
	}
	return result, nil
}

// billStudent generates one obligation per structure for student inside a
// single transaction and returns the resulting rows with the number created.
func (s *service) billStudent(
	ctx context.Context,
	student roster.Student,
	structures []feecatalog.FeeStructure,
	bp BillingPeriod,
	academicYear string,
	actor *uuid.UUID,
) ([]studentfee.StudentFee, int, error) {
	percent := decimal.Zero
	if anyDiscountable(structures) {
		p, err := s.resolver.ResolveStudent(ctx, student, academicYear)
		if err != nil {
			return nil, 0, err
		}
		percent = p
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, 0, err
	}
	defer tx.Rollback()

	repo := s.fees.WithTx(tx)
	now := s.now()

	fees := make([]studentfee.StudentFee, 0, len(structures))
	created := 0
	for _, structure := range structures {
		p := resolvePeriod(structure, bp, now)
		fee := newStudentFee(student, structure, p, percent, structure.DueDateFor(p.start, now, s.opts.DefaultDueDay))
		fee.CreatedBy = actor

		saved, isNew, err := generate(ctx, repo, fee)
		if err != nil {
			return nil, 0, err
		}
		if isNew {
			created++
		}
		fees = append(fees, *saved)
	}

	if err := tx.Commit(); err != nil {
		return nil, 0, err
	}
	return fees, created, nil
}

// emitGenerated records a summary event for runs that created something.
// The fees are already committed, so a failure here is logged and dropped.
func (s *service) emitGenerated(ctx context.Context, schoolID, trigger, academicYear, feeMonth string, created, processed int) {
	if created == 0 {
		return
	}

	payload := events.FeesGeneratedEvent{
		EventType:         "fees_generated",
		RequestID:         contextutil.GetRequestID(ctx),
		SchoolID:          schoolID,
		Trigger:           trigger,
		AcademicYear:      academicYear,
		FeeMonth:          feeMonth,
		FeesCreated:       created,
		StudentsProcessed: processed,
		OccurredAt:        s.now(),
	}
	event, err := kafka.NewEvent(ctx, schoolID, "school", schoolID, payload.EventType, events.FeesGeneratedTopic, payload)
	if err == nil {
		err = s.outbox.Create(ctx, event)
	}
	if err != nil {
		s.logger.Error("enqueue fees generated event failed",
			zap.String("school_id", schoolID),
			zap.String("trigger", trigger),
			zap.Error(err),
		)
	}
}

func validateMonthly(req MonthlyRequest) error {
	if strings.TrimSpace(req.AcademicYear) == "" {
		return feegeneratorerrors.ErrAcademicYearMissing
	}
	if req.Month < 1 || req.Month > 12 {
		return feegeneratorerrors.ErrInvalidMonth
	}
	if req.Year < 2000 || req.Year > 2100 {
		return feegeneratorerrors.ErrInvalidYear
	}
	return nil
}

func validatePeriod(bp BillingPeriod) error {
	if bp.Month != 0 && (bp.Month < 1 || bp.Month > 12) {
		return feegeneratorerrors.ErrInvalidMonth
	}
	if bp.Year != 0 && (bp.Year < 2000 || bp.Year > 2100) {
		return feegeneratorerrors.ErrInvalidYear
	}
	if bp.Term < 0 {
		return feegeneratorerrors.ErrInvalidTerm
	}
	return nil
}

func parseActor(actorID string) *uuid.UUID {
	id, err := uuid.Parse(actorID)
	if err != nil {
		return nil
	}
	return &id
}

func optional(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}
