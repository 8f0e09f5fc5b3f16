package carrierrepo_test

import (
	"context"
	"testing"
	"time"

	"tracking/internal/adapters/out/postgres/carrierrepo"
	"tracking/internal/adapters/out/postgres/pgtest"
	"tracking/internal/core/domain/model/carrier"
	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/ports"
	"tracking/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
)

// CarrierRepositoryIntegrationTestSuite verifies carrier persistence against a
// real PostgreSQL.
type CarrierRepositoryIntegrationTestSuite struct {
	suite.Suite
	database   *pgtest.Database
	repository *carrierrepo.GormCarrierRepository
}

func (suite *CarrierRepositoryIntegrationTestSuite) SetupSuite() {
	database, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.database = database
}

func (suite *CarrierRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.database.Truncate())
	suite.repository = carrierrepo.NewGormCarrierRepository(suite.database.DB)
}

func (suite *CarrierRepositoryIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.database.Stop(context.Background()))
}

func (suite *CarrierRepositoryIntegrationTestSuite) barcode(raw string) kernel.Barcode {
	b, err := kernel.NewBarcode(raw)
	suite.Require().NoError(err)
	return b
}

func (suite *CarrierRepositoryIntegrationTestSuite) fullCarrier(raw string) *carrier.Carrier {
	at := time.Date(2025, 3, 1, 10, 0, 0, 123456000, time.UTC)
	c, err := carrier.NewCarrier(suite.barcode(raw), at)
	suite.Require().NoError(err)
	suite.Require().NoError(c.Attach(kernel.Payload{CustomerName: "Acme", Meters: "120"}, at))
	return c
}

func (suite *CarrierRepositoryIntegrationTestSuite) TestAdd_ThenGet_RoundTrips() {
	ctx := context.Background()
	original := suite.fullCarrier("TR-01")

	suite.Require().NoError(suite.repository.Add(ctx, original))

	loaded, err := suite.repository.Get(ctx, original.Barcode())
	suite.Require().NoError(err)
	suite.Equal(carrier.Full, loaded.State())
	suite.Equal(*original.Payload(), *loaded.Payload())
	suite.Equal(*original.AttachedAt(), *loaded.AttachedAt())
	suite.Equal(time.UTC, loaded.AttachedAt().Location())
	suite.Equal(original.CreatedAt(), loaded.CreatedAt())
}

func (suite *CarrierRepositoryIntegrationTestSuite) TestAdd_DuplicateBarcode_Conflict() {
	ctx := context.Background()
	suite.Require().NoError(suite.repository.Add(ctx, suite.fullCarrier("TR-01")))

	err := suite.repository.Add(ctx, suite.fullCarrier("TR-01"))

	suite.Require().ErrorIs(err, ports.ErrConflict)
}

func (suite *CarrierRepositoryIntegrationTestSuite) TestUpdate_ReleaseClearsEveryColumn() {
	ctx := context.Background()
	c := suite.fullCarrier("TR-01")
	suite.Require().NoError(suite.repository.Add(ctx, c))

	_, err := c.Release()
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Update(ctx, c))

	var dto carrierrepo.CarrierDTO
	suite.Require().NoError(suite.database.DB.First(&dto, "barcode = ?", "TR-01").Error)
	suite.Equal("EMPTY", dto.State)
	suite.Nil(dto.AttachedAt)
	suite.Nil(dto.Payload.CustomerName)
	suite.Nil(dto.Payload.Meters)
	suite.Nil(dto.Payload.Remarks)
}

func (suite *CarrierRepositoryIntegrationTestSuite) TestUpdate_UnknownCarrier_NotFound() {
	err := suite.repository.Update(context.Background(), suite.fullCarrier("TR-404"))

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *CarrierRepositoryIntegrationTestSuite) TestGet_UnknownCarrier_NotFound() {
	_, err := suite.repository.Get(context.Background(), suite.barcode("TR-404"))

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *CarrierRepositoryIntegrationTestSuite) TestGetForUpdate_InsideTransaction() {
	ctx := context.Background()
	suite.Require().NoError(suite.repository.Add(ctx, suite.fullCarrier("TR-01")))

	tx := suite.database.DB.Begin()
	defer tx.Rollback()

	locked, err := carrierrepo.NewGormCarrierRepository(tx).GetForUpdate(ctx, suite.barcode("TR-01"))

	suite.Require().NoError(err)
	suite.True(locked.IsFull())
}

func TestCarrierRepositoryIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(CarrierRepositoryIntegrationTestSuite))
}
