package postgres_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "zapshift/internal/adapters/out/postgres"
	"zapshift/internal/adapters/out/postgres/parcelrepo"
	"zapshift/internal/adapters/out/postgres/paymentrepo"
	"zapshift/internal/adapters/out/postgres/riderrepo"
	"zapshift/internal/adapters/out/postgres/userrepo"
	"zapshift/internal/core/domain/model/kernel"
	"zapshift/internal/core/domain/model/parcel"
	"zapshift/internal/core/domain/model/payment"
	"zapshift/internal/core/domain/model/rider"
	"zapshift/internal/core/domain/model/user"
	"zapshift/internal/core/ports"
	"zapshift/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite exercises the GORM-based Unit of Work and
// the four repositories against a real PostgreSQL database.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

// SetupSuite starts the PostgreSQL container, connects, and migrates the schema.
func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

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

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	// TranslateError folds driver duplicate-key errors into gorm.ErrDuplicatedKey,
	// which the repositories rely on for idempotency handling.
	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(
		&parcelrepo.ParcelDTO{},
		&riderrepo.RiderDTO{},
		&userrepo.UserDTO{},
		&paymentrepo.PaymentDTO{},
	)
	suite.Require().NoError(err)

	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

// SetupTest truncates all tables to prevent test interference.
func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE parcels, riders, users, payments").Error
	suite.Require().NoError(err)
}

// TearDownSuite terminates the PostgreSQL container.
func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) newParcel() *parcel.Parcel {
	p, err := parcel.NewParcel(kernel.NewUUID(), "Documents", "alice@example.com", 150, time.Now().UTC())
	suite.Require().NoError(err)
	return p
}

func (suite *UnitOfWorkIntegrationTestSuite) newRecord(p *parcel.Parcel, transactionID string) *payment.Record {
	suite.Require().NotNil(p.TrackingID())
	record, err := payment.NewRecord(
		kernel.NewUUID(),
		p.Cost(),
		"usd",
		p.SenderEmail(),
		p.ID(),
		p.Name(),
		transactionID,
		*p.TrackingID(),
		time.Now().UTC(),
	)
	suite.Require().NoError(err)
	return record
}

func (suite *UnitOfWorkIntegrationTestSuite) TestFactory_CreateIsolatedInstances() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2, "Factory should create separate instances")
	suite.NotNil(uow1.ParcelRepository())
	suite.NotNil(uow1.RiderRepository())
	suite.NotNil(uow2.UserRepository())
	suite.NotNil(uow2.PaymentRepository())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestTransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.Begin(ctx)
	suite.Require().NoError(err, "Multiple begin calls should be safe")

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err)

	err = uow.Commit(ctx)
	suite.Require().Error(err, "Commit without active transaction should fail")
}

func (suite *UnitOfWorkIntegrationTestSuite) TestSettlement_CommitsParcelAndLedgerTogether() {
	ctx := context.Background()
	p := suite.newParcel()

	// Seed the unpaid parcel.
	seed := suite.factory.Create()
	suite.Require().NoError(seed.Begin(ctx))
	suite.Require().NoError(seed.ParcelRepository().Add(ctx, p))
	suite.Require().NoError(seed.Commit(ctx))

	// Settle it: parcel update and ledger insert in one transaction.
	suite.Require().NoError(p.MarkPaid(kernel.GenerateTrackingID()))
	record := suite.newRecord(p, "pi_settle_1")

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.ParcelRepository().Update(ctx, p))
	suite.Require().NoError(uow.PaymentRepository().Add(ctx, record))
	suite.Require().NoError(uow.Commit(ctx))

	// Both writes are visible.
	read := suite.factory.Create()
	stored, err := read.ParcelRepository().Get(ctx, p.ID())
	suite.Require().NoError(err)
	suite.Equal(parcel.Paid, stored.PaymentStatus())
	suite.Equal(parcel.PendingPickup, stored.DeliveryStatus())
	suite.Require().NotNil(stored.TrackingID())
	suite.True(p.TrackingID().IsEqual(*stored.TrackingID()))

	storedRecord, err := read.PaymentRepository().GetByTransactionID(ctx, "pi_settle_1")
	suite.Require().NoError(err)
	suite.True(record.TrackingID().IsEqual(storedRecord.TrackingID()))
	suite.Equal(record.Amount(), storedRecord.Amount())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestSettlement_RollbackDiscardsBothWrites() {
	ctx := context.Background()
	p := suite.newParcel()

	seed := suite.factory.Create()
	suite.Require().NoError(seed.Begin(ctx))
	suite.Require().NoError(seed.ParcelRepository().Add(ctx, p))
	suite.Require().NoError(seed.Commit(ctx))

	suite.Require().NoError(p.MarkPaid(kernel.GenerateTrackingID()))
	record := suite.newRecord(p, "pi_rollback_1")

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.ParcelRepository().Update(ctx, p))
	suite.Require().NoError(uow.PaymentRepository().Add(ctx, record))
	suite.Require().NoError(uow.Rollback(ctx))

	read := suite.factory.Create()
	stored, err := read.ParcelRepository().Get(ctx, p.ID())
	suite.Require().NoError(err)
	suite.Equal(parcel.Unpaid, stored.PaymentStatus(), "Parcel update should be rolled back")

	_, err = read.PaymentRepository().GetByTransactionID(ctx, "pi_rollback_1")
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound, "Ledger insert should be rolled back")
}

func (suite *UnitOfWorkIntegrationTestSuite) TestPaymentLedger_DuplicateTransactionIDRejected() {
	ctx := context.Background()
	p := suite.newParcel()
	suite.Require().NoError(p.MarkPaid(kernel.GenerateTrackingID()))

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.PaymentRepository().Add(ctx, suite.newRecord(p, "pi_dup_1")))
	suite.Require().NoError(uow.Commit(ctx))

	// A second record for the same processor transaction must be rejected
	// by the unique index regardless of its own record ID.
	second := suite.factory.Create()
	suite.Require().NoError(second.Begin(ctx))
	err := second.PaymentRepository().Add(ctx, suite.newRecord(p, "pi_dup_1"))
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectAlreadyExists)
	suite.Require().NoError(second.Rollback(ctx))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestParcel_RoundTripWithRiderSnapshot() {
	ctx := context.Background()
	p := suite.newParcel()
	suite.Require().NoError(p.MarkPaid(kernel.GenerateTrackingID()))

	riderID := kernel.NewUUID()
	ref, err := parcel.NewRiderRef(riderID, "Bob", "bob@example.com")
	suite.Require().NoError(err)
	suite.Require().NoError(p.AssignRider(ref))

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.ParcelRepository().Add(ctx, p))
	suite.Require().NoError(uow.Commit(ctx))

	stored, err := suite.factory.Create().ParcelRepository().Get(ctx, p.ID())
	suite.Require().NoError(err)
	suite.Equal(parcel.DeliverAssigned, stored.DeliveryStatus())
	suite.Require().NotNil(stored.Rider())
	suite.Equal(riderID, stored.Rider().ID())
	suite.Equal("Bob", stored.Rider().Name())
	suite.Equal("bob@example.com", stored.Rider().Email())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRider_RoundTripAndRemove() {
	ctx := context.Background()
	r, err := rider.NewRider(kernel.NewUUID(), "Bob", "bob@example.com", "Dhaka", time.Now().UTC())
	suite.Require().NoError(err)
	suite.Require().NoError(r.Approve())

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.RiderRepository().Add(ctx, r))
	suite.Require().NoError(uow.Commit(ctx))

	stored, err := suite.factory.Create().RiderRepository().Get(ctx, r.ID())
	suite.Require().NoError(err)
	suite.Equal(rider.Approved, stored.ApprovalStatus())
	suite.Equal(rider.Available, stored.WorkStatus())

	remove := suite.factory.Create()
	suite.Require().NoError(remove.Begin(ctx))
	suite.Require().NoError(remove.RiderRepository().Remove(ctx, r.ID()))
	suite.Require().NoError(remove.Commit(ctx))

	_, err = suite.factory.Create().RiderRepository().Get(ctx, r.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	err = suite.factory.Create().RiderRepository().Remove(ctx, r.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound, "Removing a missing rider should report not found")
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUser_UniqueEmailAndLookup() {
	ctx := context.Background()
	u, err := user.NewUser(kernel.NewUUID(), "alice@example.com", "Alice", time.Now().UTC())
	suite.Require().NoError(err)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.UserRepository().Add(ctx, u))
	suite.Require().NoError(uow.Commit(ctx))

	stored, err := suite.factory.Create().UserRepository().GetByEmail(ctx, "alice@example.com")
	suite.Require().NoError(err)
	suite.Equal(u.ID(), stored.ID())
	suite.Equal(user.RoleUser, stored.Role())

	duplicate, err := user.NewUser(kernel.NewUUID(), "alice@example.com", "Imposter", time.Now().UTC())
	suite.Require().NoError(err)

	second := suite.factory.Create()
	suite.Require().NoError(second.Begin(ctx))
	err = second.UserRepository().Add(ctx, duplicate)
	suite.Require().ErrorIs(err, errs.ErrObjectAlreadyExists)
	suite.Require().NoError(second.Rollback(ctx))
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
