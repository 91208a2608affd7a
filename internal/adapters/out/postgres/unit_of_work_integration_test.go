package postgres_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	postgres_adapter "labeling/internal/adapters/out/postgres"
	"labeling/internal/adapters/out/postgres/labelrepo"
	"labeling/internal/adapters/out/postgres/masterlabelrepo"
	"labeling/internal/core/domain/model/kernel"
	"labeling/internal/core/domain/model/masterlabel"
	"labeling/internal/core/domain/model/volume"
	"labeling/internal/core/ports"
)

// UnitOfWorkIntegrationTestSuite provides comprehensive integration testing
// for the GORM-based Unit of Work implementation with real PostgreSQL database.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

// SetupSuite initializes PostgreSQL container and database connection for all tests.
// Runs database migrations to prepare schema for unit of work operations.
func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	// Start PostgreSQL container
	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	// Connect to database
	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	// Run migrations
	err = db.AutoMigrate(&labelrepo.LabelDTO{}, &masterlabelrepo.MasterLabelDTO{})
	suite.Require().NoError(err)

	// Create factory
	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

// SetupTest ensures clean database state before each test.
// Truncates all tables to prevent test interference.
func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE labels, master_labels").Error
	suite.Require().NoError(err)
}

// TearDownSuite cleans up PostgreSQL container after all tests complete.
func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

// TestUnitOfWorkFactory_Create verifies factory creates unit of work instances
// with proper initialization and isolation between instances.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWorkFactory_Create() {
	// Create multiple unit of work instances
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	// Verify instances are different
	suite.NotSame(uow1, uow2, "Factory should create separate instances")

	// Verify both instances provide access to repositories
	suite.NotNil(uow1.LabelRepository(), "First instance should provide label repository")
	suite.NotNil(uow1.MasterLabelRepository(), "First instance should provide master label repository")
	suite.NotNil(uow2.LabelRepository(), "Second instance should provide label repository")
	suite.NotNil(uow2.MasterLabelRepository(), "Second instance should provide master label repository")
}

// TestUnitOfWork_TransactionLifecycle verifies proper transaction management
// including begin, commit, and rollback operations.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	// Test begin transaction
	err := uow.Begin(ctx)
	suite.Require().NoError(err, "Should begin transaction successfully")

	// Test multiple begin calls are safe
	err = uow.Begin(ctx)
	suite.Require().NoError(err, "Multiple begin calls should be safe")

	// Test commit
	err = uow.Commit(ctx)
	suite.Require().NoError(err, "Should commit transaction successfully")

	// Test rollback on new transaction
	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err, "Should rollback transaction successfully")
}

// TestUnitOfWork_TransactionErrors verifies error handling for invalid transaction operations.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionErrors() {
	ctx := context.Background()
	uow := suite.factory.Create()

	// Test commit without begin
	err := uow.Commit(ctx)
	suite.Require().Error(err, "Should error when committing without active transaction")

	// Test rollback without begin
	err = uow.Rollback(ctx)
	suite.Require().Error(err, "Should error when rolling back without active transaction")
}

// TestUnitOfWork_SingleRepositoryTransaction verifies repository operations
// within a single transaction boundary work correctly.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_SingleRepositoryTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()

	// Create test volume
	testVolume := createTestVolume(suite.T(), 1, 1)

	// Begin transaction
	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	// Add volume within transaction
	err = uow.LabelRepository().Add(ctx, testVolume)
	suite.Require().NoError(err)

	// Verify volume exists within transaction
	retrieved, err := uow.LabelRepository().Get(ctx, testVolume.Code())
	suite.Require().NoError(err)
	suite.Equal(testVolume.Code().String(), retrieved.Code().String())

	// Commit transaction
	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	// Verify volume persists after commit using new unit of work
	newUow := suite.factory.Create()
	retrieved, err = newUow.LabelRepository().Get(ctx, testVolume.Code())
	suite.Require().NoError(err)
	suite.Equal(testVolume.Code().String(), retrieved.Code().String())
	suite.Equal(testVolume.InvoiceNumber(), retrieved.InvoiceNumber())
	suite.Equal(volume.Generated, retrieved.Status())
}

// TestUnitOfWork_MultiRepositoryTransaction verifies multiple repository operations
// within a single transaction work atomically.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_MultiRepositoryTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()

	// Create test entities
	testVolume := createTestVolume(suite.T(), 1, 1)
	testMaster := createTestMasterLabel(suite.T(), masterlabel.KindPallet)

	// Begin transaction
	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	// Add entities using different repositories within same transaction
	err = uow.LabelRepository().Add(ctx, testVolume)
	suite.Require().NoError(err)

	err = uow.MasterLabelRepository().Add(ctx, testMaster)
	suite.Require().NoError(err)

	// Consolidate the volume under the master label
	err = testVolume.AttachToMaster(testMaster.Code())
	suite.Require().NoError(err)
	err = uow.LabelRepository().Update(ctx, testVolume)
	suite.Require().NoError(err)

	err = testMaster.Link(testVolume.Code())
	suite.Require().NoError(err)
	err = uow.MasterLabelRepository().Update(ctx, testMaster)
	suite.Require().NoError(err)

	// Commit transaction
	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	// Verify both entities persisted correctly with relationships
	newUow := suite.factory.Create()

	retrievedVolume, err := newUow.LabelRepository().Get(ctx, testVolume.Code())
	suite.Require().NoError(err)
	suite.Require().NotNil(retrievedVolume.MasterLabelCode())
	suite.Equal(testMaster.Code(), *retrievedVolume.MasterLabelCode())
	suite.Equal(volume.Consolidated, retrievedVolume.Status())

	retrievedMaster, err := newUow.MasterLabelRepository().Get(ctx, testMaster.Code())
	suite.Require().NoError(err)
	suite.True(retrievedMaster.Holds(testVolume.Code()),
		"Master label should hold the consolidated volume")
	suite.Equal(1, retrievedMaster.VolumeCount())
}

// TestUnitOfWork_TransactionRollback verifies rollback discards all changes
// made within the transaction across multiple repositories.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionRollback() {
	ctx := context.Background()
	uow := suite.factory.Create()

	// Create test entities
	testVolume := createTestVolume(suite.T(), 1, 1)
	testMaster := createTestMasterLabel(suite.T(), masterlabel.KindGeneral)

	// Begin transaction
	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	// Add entities within transaction
	err = uow.LabelRepository().Add(ctx, testVolume)
	suite.Require().NoError(err)

	err = uow.MasterLabelRepository().Add(ctx, testMaster)
	suite.Require().NoError(err)

	// Verify entities exist within transaction
	_, err = uow.LabelRepository().Get(ctx, testVolume.Code())
	suite.Require().NoError(err)

	_, err = uow.MasterLabelRepository().Get(ctx, testMaster.Code())
	suite.Require().NoError(err)

	// Rollback transaction
	err = uow.Rollback(ctx)
	suite.Require().NoError(err)

	// Verify entities do not exist after rollback using new unit of work
	newUow := suite.factory.Create()

	_, err = newUow.LabelRepository().Get(ctx, testVolume.Code())
	suite.Require().Error(err, "Volume should not exist after rollback")

	_, err = newUow.MasterLabelRepository().Get(ctx, testMaster.Code())
	suite.Require().Error(err, "Master label should not exist after rollback")
}

// TestUnitOfWork_RepositoryIsolation verifies that repositories obtained
// from different unit of work instances operate independently.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RepositoryIsolation() {
	ctx := context.Background()

	// Create two unit of work instances
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	// Create test volumes
	volume1 := createTestVolume(suite.T(), 1, 1)
	volume2 := createTestVolume(suite.T(), 1, 1)

	// Begin transactions on both
	err := uow1.Begin(ctx)
	suite.Require().NoError(err)

	err = uow2.Begin(ctx)
	suite.Require().NoError(err)

	// Add different volumes in each transaction
	err = uow1.LabelRepository().Add(ctx, volume1)
	suite.Require().NoError(err)

	err = uow2.LabelRepository().Add(ctx, volume2)
	suite.Require().NoError(err)

	// Each transaction should only see its own changes
	_, err = uow1.LabelRepository().Get(ctx, volume1.Code())
	suite.Require().NoError(err, "UOW1 should see volume1")

	_, err = uow1.LabelRepository().Get(ctx, volume2.Code())
	suite.Require().Error(err, "UOW1 should not see volume2")

	_, err = uow2.LabelRepository().Get(ctx, volume2.Code())
	suite.Require().NoError(err, "UOW2 should see volume2")

	_, err = uow2.LabelRepository().Get(ctx, volume1.Code())
	suite.Require().Error(err, "UOW2 should not see volume1")

	// Commit first transaction
	err = uow1.Commit(ctx)
	suite.Require().NoError(err)

	// Rollback second transaction
	err = uow2.Rollback(ctx)
	suite.Require().NoError(err)

	// Verify only volume1 persisted
	newUow := suite.factory.Create()
	_, err = newUow.LabelRepository().Get(ctx, volume1.Code())
	suite.Require().NoError(err, "Volume1 should persist after commit")

	_, err = newUow.LabelRepository().Get(ctx, volume2.Code())
	suite.Require().Error(err, "Volume2 should not persist after rollback")
}

// TestUnitOfWork_WithoutTransaction verifies that repositories work correctly
// without explicit transaction boundaries for immediate operations.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_WithoutTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()

	// Create test volume
	testVolume := createTestVolume(suite.T(), 1, 1)

	// Add volume without beginning transaction (should auto-commit)
	err := uow.LabelRepository().Add(ctx, testVolume)
	suite.Require().NoError(err)

	// Verify volume persists immediately
	retrieved, err := uow.LabelRepository().Get(ctx, testVolume.Code())
	suite.Require().NoError(err)
	suite.Equal(testVolume.Code().String(), retrieved.Code().String())

	// Verify with new unit of work instance
	newUow := suite.factory.Create()
	retrieved, err = newUow.LabelRepository().Get(ctx, testVolume.Code())
	suite.Require().NoError(err)
	suite.Equal(testVolume.Code().String(), retrieved.Code().String())
}

// TestUnitOfWork_LabelLifecycleWorkflow tests the complete label lifecycle
// involving multiple aggregates and domain operations within transactions:
// generation, printing, consolidation, and invalidation.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_LabelLifecycleWorkflow() {
	ctx := context.Background()
	uow := suite.factory.Create()

	// Begin transaction for the entire workflow
	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	// Step 1: Generate and persist an invoice's volumes
	invoiceNumber := uniqueInvoiceNumber()
	volumes := createTestInvoiceVolumes(suite.T(), invoiceNumber, 3)
	for _, v := range volumes {
		err = uow.LabelRepository().Add(ctx, v)
		suite.Require().NoError(err)
	}

	// Step 2: Print the first two volumes
	for _, v := range volumes[:2] {
		reprint, err := v.Print()
		suite.Require().NoError(err)
		suite.False(reprint, "First print should not be a reprint")
		v.MarkRendered()
		err = uow.LabelRepository().Update(ctx, v)
		suite.Require().NoError(err)
	}

	// Step 3: Consolidate the printed volumes under a pallet master label
	testMaster := createTestMasterLabel(suite.T(), masterlabel.KindPallet)
	err = uow.MasterLabelRepository().Add(ctx, testMaster)
	suite.Require().NoError(err)

	for _, v := range volumes[:2] {
		err = v.AttachToMaster(testMaster.Code())
		suite.Require().NoError(err)
		err = testMaster.Link(v.Code())
		suite.Require().NoError(err)
		err = uow.LabelRepository().Update(ctx, v)
		suite.Require().NoError(err)
	}
	err = uow.MasterLabelRepository().Update(ctx, testMaster)
	suite.Require().NoError(err)

	// Step 4: Invalidate the remaining volume
	err = volumes[2].Invalidate("damaged in handling")
	suite.Require().NoError(err)
	err = uow.LabelRepository().Update(ctx, volumes[2])
	suite.Require().NoError(err)

	// Commit the entire workflow
	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	// Verify final state using a new unit of work
	newUow := suite.factory.Create()

	persisted, err := newUow.LabelRepository().GetByInvoice(ctx, invoiceNumber)
	suite.Require().NoError(err)
	suite.Require().Len(persisted, 3)

	// Returned in sequence order
	suite.Equal(volume.Consolidated, persisted[0].Status())
	suite.True(persisted[0].IsLabeled())
	suite.Equal(volume.Consolidated, persisted[1].Status())
	suite.Equal(volume.Invalidated, persisted[2].Status())
	suite.Equal("damaged in handling", persisted[2].InvalidationReason())

	// Master label holds exactly the consolidated volumes
	retrievedMaster, err := newUow.MasterLabelRepository().Get(ctx, testMaster.Code())
	suite.Require().NoError(err)
	suite.Equal(2, retrievedMaster.VolumeCount())

	linked, err := newUow.LabelRepository().GetByMasterLabel(ctx, testMaster.Code())
	suite.Require().NoError(err)
	suite.Len(linked, 2)
}

// TestUnitOfWork_PartialFailureScenario tests behavior when some operations succeed and others fail.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_PartialFailureScenario() {
	ctx := context.Background()
	uow := suite.factory.Create()

	// Create initial volume outside transaction
	existingVolume := createTestVolume(suite.T(), 1, 1)
	err := uow.LabelRepository().Add(ctx, existingVolume)
	suite.Require().NoError(err)

	// Begin new transaction
	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	// Add valid entities
	newVolume := createTestVolume(suite.T(), 1, 1)
	newMaster := createTestMasterLabel(suite.T(), masterlabel.KindGeneral)

	err = uow.LabelRepository().Add(ctx, newVolume)
	suite.Require().NoError(err)
	err = uow.MasterLabelRepository().Add(ctx, newMaster)
	suite.Require().NoError(err)

	// Try to add a volume with a duplicate code (should fail)
	duplicate, err := volume.RestoreVolume(
		existingVolume.Code(), // Same code as existing volume
		existingVolume.InvoiceNumber(),
		existingVolume.Sequence(),
		existingVolume.TotalVolumes(),
		existingVolume.Quantity(),
		existingVolume.Weight(),
		existingVolume.Shipment(),
		volume.Generated,
		"",
		false,
		false,
		nil,
		existingVolume.GeneratedAt(),
	)
	suite.Require().NoError(err)

	err = uow.LabelRepository().Add(ctx, duplicate)
	suite.Require().Error(err, "Adding duplicate volume code should fail")

	// Even though some operations succeeded, rollback should undo everything
	err = uow.Rollback(ctx)
	suite.Require().NoError(err)

	// Verify rollback undid the successful operations
	newUow := suite.factory.Create()

	// Existing volume should still exist (was added before transaction)
	_, err = newUow.LabelRepository().Get(ctx, existingVolume.Code())
	suite.Require().NoError(err, "Existing volume should still exist")

	// New entities should not exist (transaction was rolled back)
	_, err = newUow.LabelRepository().Get(ctx, newVolume.Code())
	suite.Require().Error(err, "New volume should not exist after rollback")

	_, err = newUow.MasterLabelRepository().Get(ctx, newMaster.Code())
	suite.Require().Error(err, "New master label should not exist after rollback")
}

// TestUnitOfWork_DeleteConstraints verifies delete operations respect
// existence and that GetByInvoice reflects deletions.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_DeleteConstraints() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testVolume := createTestVolume(suite.T(), 1, 1)
	err := uow.LabelRepository().Add(ctx, testVolume)
	suite.Require().NoError(err)

	// Delete the persisted volume
	err = uow.LabelRepository().Delete(ctx, testVolume.Code())
	suite.Require().NoError(err)

	// Deleting again reports not found
	err = uow.LabelRepository().Delete(ctx, testVolume.Code())
	suite.Require().Error(err, "Deleting a missing volume should fail")

	// Invoice query returns an empty set
	remaining, err := uow.LabelRepository().GetByInvoice(ctx, testVolume.InvoiceNumber())
	suite.Require().NoError(err)
	suite.Empty(remaining)
}

// uniqueInvoiceNumber produces a fresh invoice number so test volumes never
// collide on their derived codes.
func uniqueInvoiceNumber() string {
	return strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:10])
}

// createTestVolume creates a valid volume for testing purposes.
func createTestVolume(t *testing.T, sequence, total int) *volume.Volume {
	t.Helper()
	return createTestInvoiceVolumes(t, uniqueInvoiceNumber(), total)[sequence-1]
}

// createTestInvoiceVolumes decomposes a synthetic invoice into its volumes.
func createTestInvoiceVolumes(t *testing.T, invoiceNumber string, total int) []*volume.Volume {
	t.Helper()

	generatedAt := time.Now().UTC().Truncate(time.Second)
	weight := kernel.ParseWeightOrZero("12,50")
	shipment := volume.Shipment{
		Sender:    "Industria Quimica Ltda",
		Recipient: "Distribuidora Sul",
		City:      "Porto Alegre",
		State:     "RS",
		Carrier:   "Expresso Gaucho",
	}

	volumes := make([]*volume.Volume, 0, total)
	for seq := 1; seq <= total; seq++ {
		code := kernel.AllocateVolumeCode(invoiceNumber, seq, generatedAt)
		v, err := volume.NewVolume(code, invoiceNumber, seq, total, weight, shipment, generatedAt)
		if err != nil {
			t.Fatalf("failed to create test volume: %v", err)
		}
		volumes = append(volumes, v)
	}
	return volumes
}

// createTestMasterLabel creates a valid master label for testing purposes.
func createTestMasterLabel(t *testing.T, kind masterlabel.Kind) *masterlabel.MasterLabel {
	t.Helper()

	code := masterlabel.GenerateCode(kind, uuid.NewString())
	m, err := masterlabel.NewMasterLabel(code, kind, "integration test", time.Now().UTC())
	if err != nil {
		t.Fatalf("failed to create test master label: %v", err)
	}
	return m
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
