// Package store persists generation audit records: the inputs, the
// report, the emitted IDF's checksum, and per-stage timings for every
// pipeline run. It lets a portfolio caller answer "what did we
// generate for this address last time" without re-running the
// pipeline.
package store

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"idfgen/config"
	"idfgen/model"
	"idfgen/pipeline"
)

// GenerationRecord is one persisted pipeline run.
type GenerationRecord struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	RunID        string  `gorm:"uniqueIndex;not null" json:"run_id"`
	Address      string  `gorm:"index" json:"address"`
	BuildingType string  `json:"building_type"`
	Stories      int     `json:"stories"`
	FloorAreaM2  float64 `json:"floor_area_m2"`
	ClimateZone  string  `json:"climate_zone"`
	HVACType     string  `json:"hvac_type"`

	IDFSHA256 string         `gorm:"index;column:idf_sha256" json:"idf_sha256"`
	IDFBytes  int            `json:"idf_bytes"`
	Report    datatypes.JSON `json:"report"`
	Durations datatypes.JSON `json:"durations"`
	Succeeded bool           `json:"succeeded"`
	ErrorText string         `json:"error_text"`
}

// Store wraps the audit-log database.
type Store struct {
	db     *gorm.DB
	logger *zap.Logger
}

// Open connects to postgres and migrates the record schema.
func Open(cfg *config.Config, logger *zap.Logger) (*Store, error) {
	db, err := gorm.Open(postgres.Open(cfg.DatabaseDSN()), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	s := &Store{db: db, logger: logger}
	if err := s.Migrate(); err != nil {
		return nil, err
	}
	return s, nil
}

// NewWithDB wraps an existing gorm connection; used by tests with the
// in-memory sqlite driver.
func NewWithDB(db *gorm.DB, logger *zap.Logger) *Store {
	return &Store{db: db, logger: logger}
}

// Migrate creates or updates the record table.
func (s *Store) Migrate() error {
	return s.db.AutoMigrate(&GenerationRecord{})
}

// RecordSuccess persists a completed run.
func (s *Store) RecordSuccess(ctx context.Context, address string, bp model.BuildingParameters, cz model.ClimateZone, hvacType model.HVACType, out *pipeline.Output) error {
	reportJSON, err := json.Marshal(out.Report)
	if err != nil {
		return err
	}
	durations := make(map[string]int64, len(out.Durations))
	for stage, d := range out.Durations {
		durations[stage] = d.Milliseconds()
	}
	durJSON, err := json.Marshal(durations)
	if err != nil {
		return err
	}

	rec := GenerationRecord{
		RunID:        out.RunID,
		Address:      address,
		BuildingType: string(bp.BuildingType),
		Stories:      bp.Stories,
		FloorAreaM2:  bp.FloorAreaM2,
		ClimateZone:  string(cz),
		HVACType:     string(hvacType),
		IDFSHA256:    out.SHA256,
		IDFBytes:     len(out.IDFText),
		Report:       datatypes.JSON(reportJSON),
		Durations:    datatypes.JSON(durJSON),
		Succeeded:    true,
	}
	return s.db.WithContext(ctx).Create(&rec).Error
}

// RecordFailure persists a failed run for later triage. Failed runs
// have no pipeline Output, so the record mints its own run ID.
func (s *Store) RecordFailure(ctx context.Context, address string, genErr error) error {
	rec := GenerationRecord{
		RunID:     uuid.NewString(),
		Address:   address,
		Succeeded: false,
		ErrorText: genErr.Error(),
	}
	return s.db.WithContext(ctx).Create(&rec).Error
}

// LatestForAddress returns the most recent successful record for an
// address, or gorm.ErrRecordNotFound.
func (s *Store) LatestForAddress(ctx context.Context, address string) (*GenerationRecord, error) {
	var rec GenerationRecord
	err := s.db.WithContext(ctx).
		Where("address = ? AND succeeded = ?", address, true).
		Order("created_at DESC").
		First(&rec).Error
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// ByChecksum returns every record that emitted the given IDF checksum;
// used to confirm reproducibility across reruns.
func (s *Store) ByChecksum(ctx context.Context, sha string) ([]GenerationRecord, error) {
	var recs []GenerationRecord
	err := s.db.WithContext(ctx).Where("idf_sha256 = ?", sha).Find(&recs).Error
	return recs, err
}
