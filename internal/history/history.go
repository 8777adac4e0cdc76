// Package history is an optional SQLite-backed record of compile runs. The
// CLI writes one Run row per compilation plus a Diagnostic row per message,
// so regressions in a codebase's diagnostics can be tracked over time. The
// core pipeline never touches this store.
package history

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/forge-lang/forge/internal/diagnostics"
	"github.com/forge-lang/forge/internal/source"
)

// Run is one recorded compilation.
type Run struct {
	ID           string    `gorm:"primaryKey;type:varchar(36)"`
	SourceName   string    `gorm:"type:varchar(255);index"`
	StartedAt    time.Time `gorm:"autoCreateTime"`
	DurationMS   int64
	MaxSeverity  string `gorm:"type:varchar(16)"`
	MessageCount int
	Succeeded    bool

	Diagnostics []Diagnostic `gorm:"foreignKey:RunID"`
}

// Diagnostic is one recorded message of a run.
type Diagnostic struct {
	ID       uint   `gorm:"primaryKey;autoIncrement"`
	RunID    string `gorm:"type:varchar(36);index"`
	Severity string `gorm:"type:varchar(16)"`
	Code     string `gorm:"type:varchar(8)"`
	Line     int
	Column   int
	Text     string `gorm:"type:text"`
}

// Store wraps the gorm connection.
type Store struct {
	db *gorm.DB
}

// Open connects to (and migrates) the store at path.
func Open(path string, debug bool) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create history directory: %w", err)
	}

	cfg := &gorm.Config{Logger: logger.Default.LogMode(logger.Warn)}
	if debug {
		cfg.Logger = logger.Default.LogMode(logger.Info)
	}

	db, err := gorm.Open(sqlite.Open(path), cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to open history store: %w", err)
	}

	if err := db.AutoMigrate(&Run{}, &Diagnostic{}); err != nil {
		return nil, fmt.Errorf("history migration failed: %w", err)
	}

	return &Store{db: db}, nil
}

// Close releases the underlying connection.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// RecordRun stores one compilation outcome and returns the run id.
func (s *Store) RecordRun(src *source.Source, messages *diagnostics.Context, startedAt time.Time, duration time.Duration) (string, error) {
	run := Run{
		ID:           uuid.NewString(),
		SourceName:   src.Name,
		StartedAt:    startedAt,
		DurationMS:   duration.Milliseconds(),
		MaxSeverity:  messages.MaxSeverity().String(),
		MessageCount: messages.Len(),
		Succeeded:    !messages.HasErrors(),
	}

	for _, msg := range messages.Messages() {
		diagnostic := Diagnostic{
			RunID:    run.ID,
			Severity: msg.Severity.String(),
			Code:     string(msg.Code),
			Text:     msg.Text,
		}
		if msg.SourceRange.Valid() {
			diagnostic.Line = msg.SourceRange.Start.Line
			diagnostic.Column = msg.SourceRange.Start.Column
		}
		run.Diagnostics = append(run.Diagnostics, diagnostic)
	}

	if err := s.db.Create(&run).Error; err != nil {
		return "", fmt.Errorf("failed to record run: %w", err)
	}
	return run.ID, nil
}

// RecentRuns lists the newest runs, most recent first.
func (s *Store) RecentRuns(limit int) ([]Run, error) {
	var runs []Run
	err := s.db.Order("started_at DESC").Limit(limit).Find(&runs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	return runs, nil
}

// RunDiagnostics lists the recorded messages of one run.
func (s *Store) RunDiagnostics(runID string) ([]Diagnostic, error) {
	var diags []Diagnostic
	err := s.db.Where("run_id = ?", runID).Order("id").Find(&diags).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list diagnostics: %w", err)
	}
	return diags, nil
}
