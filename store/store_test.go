package store

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"idfgen/logging"
	"idfgen/model"
	"idfgen/pipeline"
	idftesting "idfgen/testing"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	db := idftesting.SetupTestDB(t)
	s := NewWithDB(db, logging.NewNop())
	require.NoError(t, s.Migrate())
	return s
}

func sampleOutput(runID string) *pipeline.Output {
	return &pipeline.Output{
		RunID:   runID,
		IDFText: "Version,\n  24.2; !- Version Identifier\n\n",
		SHA256:  "abc123",
		Report: model.Report{
			Stats: model.Stats{NZones: 4, NSurfaces: 24, TotalFloorAreaM2: 400},
		},
		Durations: map[string]time.Duration{"resolve": time.Millisecond},
	}
}

func TestRecordAndFetchLatest(t *testing.T) {
	s := testStore(t)
	ctx := idftesting.TestContext(t)

	bp := model.BuildingParameters{BuildingType: model.Office, Stories: 2, FloorAreaM2: 400}
	require.NoError(t, s.RecordSuccess(ctx, "1 Main St", bp, model.C4, model.HVACVAV, sampleOutput("run-1")))
	require.NoError(t, s.RecordSuccess(ctx, "1 Main St", bp, model.C4, model.HVACVAV, sampleOutput("run-2")))

	rec, err := s.LatestForAddress(ctx, "1 Main St")
	require.NoError(t, err)
	assert.Equal(t, "Office", rec.BuildingType)
	assert.Equal(t, "abc123", rec.IDFSHA256)
	assert.True(t, rec.Succeeded)
}

func TestLatestForUnknownAddress(t *testing.T) {
	s := testStore(t)
	_, err := s.LatestForAddress(idftesting.TestContext(t), "nowhere")
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

func TestRecordFailure(t *testing.T) {
	s := testStore(t)
	ctx := idftesting.TestContext(t)

	require.NoError(t, s.RecordFailure(ctx, "2 Oak Ave", errors.New("stories must be >= 1")))

	_, err := s.LatestForAddress(ctx, "2 Oak Ave")
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound), "failed runs are not returned as latest success")
}

func TestByChecksumGroupsReruns(t *testing.T) {
	s := testStore(t)
	ctx := idftesting.TestContext(t)
	bp := model.BuildingParameters{BuildingType: model.Office, Stories: 2, FloorAreaM2: 400}

	require.NoError(t, s.RecordSuccess(ctx, "1 Main St", bp, model.C4, model.HVACVAV, sampleOutput("run-1")))
	require.NoError(t, s.RecordSuccess(ctx, "1 Main St", bp, model.C4, model.HVACVAV, sampleOutput("run-2")))

	recs, err := s.ByChecksum(ctx, "abc123")
	require.NoError(t, err)
	assert.Len(t, recs, 2, "identical inputs rerun to the same checksum")
}
