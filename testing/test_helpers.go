// Package testing provides shared helpers for idfgen package tests:
// an in-memory database for store tests, canonical fixture inputs,
// and small assertion utilities.
package testing

import (
	"context"
	"math"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"idfgen/config"
	"idfgen/defaults"
	"idfgen/model"
	"idfgen/params"
)

// SetupTestDB opens an in-memory sqlite database for persistence
// tests. The database is discarded when the test ends.
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	return db
}

// TestContext returns a context that is canceled when the test ends.
func TestContext(t *testing.T) context.Context {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	t.Cleanup(cancel)
	return ctx
}

// TestConfig returns the default config without reading any config
// file, suitable for driving the pipeline in tests.
func TestConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("failed to load default config: %v", err)
	}
	return cfg
}

// TestLibrary returns a defaults library pinned to a fixed version so
// snapshot tests stay stable.
func TestLibrary() *defaults.Library {
	return defaults.NewLibrary("test")
}

// OfficeInput returns the canonical three-story office fixture used
// across pipeline tests.
func OfficeInput(perStoryM2 float64, stories int) params.UserInput {
	bt := model.Office
	return params.UserInput{
		BuildingType:        &bt,
		Stories:             &stories,
		FloorAreaPerStoryM2: &perStoryM2,
	}
}

// SiteFixture returns a resolved site in the given climate zone with a
// square footprint of the given area.
func SiteFixture(cz model.ClimateZone, footprintM2 float64) *model.Site {
	side := 1.0
	if footprintM2 > 0 {
		side = math.Sqrt(footprintM2)
	}
	return &model.Site{
		Latitude:    40.0,
		Longitude:   -105.0,
		ElevationM:  1600,
		TimeZone:    "-7",
		ClimateZone: cz,
		WeatherFile: "USA_CO_Denver.epw",
		FootprintM2: footprintM2,
		FootprintPoly: []model.Point{
			{X: 0, Y: 0}, {X: side, Y: 0}, {X: side, Y: side}, {X: 0, Y: side},
		},
	}
}

// AssertInDelta fails the test unless actual is within delta of
// expected.
func AssertInDelta(t *testing.T, expected, actual, delta float64, msg string) {
	t.Helper()
	diff := expected - actual
	if diff < 0 {
		diff = -diff
	}
	if diff > delta {
		t.Errorf("%s: expected %g ± %g, got %g", msg, expected, delta, actual)
	}
}

// TableTest is a generic named test case with expected outcome.
type TableTest struct {
	Name      string
	Input     interface{}
	Expected  interface{}
	WantError bool
}

// RunTableTests runs each case as a subtest.
func RunTableTests(t *testing.T, tests []TableTest, testFunc func(t *testing.T, test TableTest)) {
	t.Helper()
	for _, test := range tests {
		t.Run(test.Name, func(t *testing.T) {
			testFunc(t, test)
		})
	}
}
