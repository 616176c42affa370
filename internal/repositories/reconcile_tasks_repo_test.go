package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/zeeshankeerio/texstock/internal/models"
)

type ReconcileTaskRepoTestSuite struct {
	suite.Suite
	mock    pgxmock.PgxPoolIface
	repo    ReconcileTaskRepository
	taskID  uuid.UUID
	context context.Context
}

func (suite *ReconcileTaskRepoTestSuite) SetupTest() {
	mock, err := pgxmock.NewPool()
	assert.NoError(suite.T(), err)
	suite.mock = mock

	suite.repo = NewReconcileTaskRepository(mock)
	suite.taskID = uuid.New()
	suite.context = context.Background()
}

func (suite *ReconcileTaskRepoTestSuite) TearDownTest() {
	assert.NoError(suite.T(), suite.mock.ExpectationsWereMet())
	suite.mock.Close()
}

func TestReconcileTaskRepoTestSuite(t *testing.T) {
	suite.Run(t, new(ReconcileTaskRepoTestSuite))
}

func (suite *ReconcileTaskRepoTestSuite) taskRows(tasks ...*models.ReconcileTask) *pgxmock.Rows {
	rows := pgxmock.NewRows([]string{"id", "source_kind", "source_id", "status", "attempts", "last_error", "applied_at", "created_at", "updated_at"})
	for _, task := range tasks {
		rows.AddRow(task.ID, task.SourceKind, task.SourceID, task.Status, task.Attempts, task.LastError, task.AppliedAt, task.CreatedAt, task.UpdatedAt)
	}
	return rows
}

func (suite *ReconcileTaskRepoTestSuite) TestCreate_Success() {
	task := &models.ReconcileTask{
		ID:         suite.taskID,
		SourceKind: models.SourceThreadPurchase,
		SourceID:   uuid.New(),
		Status:     models.ReconcileStatusPending,
	}

	suite.mock.ExpectExec(`
		INSERT INTO reconcile_tasks \(id, source_kind, source_id, status, attempts, last_error, applied_at, created_at, updated_at\)
		VALUES \(\$1, \$2, \$3, \$4, \$5, \$6, \$7, NOW\(\), NOW\(\)\)
	`).WithArgs(task.ID, task.SourceKind, task.SourceID, task.Status, task.Attempts, task.LastError, task.AppliedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err := suite.repo.Create(suite.context, task)
	assert.NoError(suite.T(), err)
}

func (suite *ReconcileTaskRepoTestSuite) TestGetByID_Success() {
	task := &models.ReconcileTask{
		ID:         suite.taskID,
		SourceKind: models.SourceDyeingProcess,
		SourceID:   uuid.New(),
		Status:     models.ReconcileStatusPending,
		Attempts:   2,
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}

	suite.mock.ExpectQuery(`SELECT id, source_kind, source_id, status, attempts, last_error, applied_at, created_at, updated_at FROM reconcile_tasks WHERE id = \$1`).
		WithArgs(suite.taskID).
		WillReturnRows(suite.taskRows(task))

	got, err := suite.repo.GetByID(suite.context, suite.taskID)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), task.SourceID, got.SourceID)
	assert.Equal(suite.T(), 2, got.Attempts)
}

func (suite *ReconcileTaskRepoTestSuite) TestGetByID_NotFound() {
	suite.mock.ExpectQuery(`SELECT id, source_kind, source_id, status, attempts, last_error, applied_at, created_at, updated_at FROM reconcile_tasks WHERE id = \$1`).
		WithArgs(suite.taskID).
		WillReturnRows(suite.taskRows())

	got, err := suite.repo.GetByID(suite.context, suite.taskID)
	assert.Nil(suite.T(), got)
	assert.ErrorIs(suite.T(), err, models.ErrNotFound)
}

func (suite *ReconcileTaskRepoTestSuite) TestListPending_OldestFirst() {
	first := &models.ReconcileTask{ID: uuid.New(), SourceKind: models.SourceThreadPurchase, SourceID: uuid.New(), Status: models.ReconcileStatusPending}
	second := &models.ReconcileTask{ID: uuid.New(), SourceKind: models.SourceFabricProduction, SourceID: uuid.New(), Status: models.ReconcileStatusPending}

	suite.mock.ExpectQuery(`SELECT id, source_kind, source_id, status, attempts, last_error, applied_at, created_at, updated_at FROM reconcile_tasks WHERE status = \$1 ORDER BY created_at LIMIT \$2`).
		WithArgs(models.ReconcileStatusPending, 50).
		WillReturnRows(suite.taskRows(first, second))

	tasks, err := suite.repo.ListPending(suite.context, 50)
	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), tasks, 2)
	assert.Equal(suite.T(), first.ID, tasks[0].ID)
}

func (suite *ReconcileTaskRepoTestSuite) TestMarkDone_Success() {
	suite.mock.ExpectExec(`
		UPDATE reconcile_tasks
		SET status = \$1, attempts = attempts \+ 1, last_error = NULL, applied_at = NOW\(\), updated_at = NOW\(\)
		WHERE id = \$2
	`).WithArgs(models.ReconcileStatusDone, suite.taskID).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err := suite.repo.MarkDone(suite.context, suite.taskID)
	assert.NoError(suite.T(), err)
}

func (suite *ReconcileTaskRepoTestSuite) TestMarkAttempt_StaysPending() {
	suite.mock.ExpectExec(`
		UPDATE reconcile_tasks
		SET status = \$1, attempts = attempts \+ 1, last_error = \$2, updated_at = NOW\(\)
		WHERE id = \$3
	`).WithArgs(models.ReconcileStatusPending, "item lookup failed", suite.taskID).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err := suite.repo.MarkAttempt(suite.context, suite.taskID, "item lookup failed", false)
	assert.NoError(suite.T(), err)
}

func (suite *ReconcileTaskRepoTestSuite) TestMarkAttempt_Parked() {
	suite.mock.ExpectExec(`
		UPDATE reconcile_tasks
		SET status = \$1, attempts = attempts \+ 1, last_error = \$2, updated_at = NOW\(\)
		WHERE id = \$3
	`).WithArgs(models.ReconcileStatusFailed, "insufficient stock", suite.taskID).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err := suite.repo.MarkAttempt(suite.context, suite.taskID, "insufficient stock", true)
	assert.NoError(suite.T(), err)
}

func (suite *ReconcileTaskRepoTestSuite) TestReset_Success() {
	suite.mock.ExpectExec(`
		UPDATE reconcile_tasks
		SET status = \$1, attempts = 0, last_error = NULL, updated_at = NOW\(\)
		WHERE id = \$2
	`).WithArgs(models.ReconcileStatusPending, suite.taskID).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err := suite.repo.Reset(suite.context, suite.taskID)
	assert.NoError(suite.T(), err)
}
