package storage

import "time"

// RunModel is the GORM model for the runs table
type RunModel struct {
	Attempted int       `gorm:"not null;default:0"`
	CreatedAt time.Time
	Failed    int       `gorm:"not null;default:0"`
	ID        string    `gorm:"primaryKey"`
	OutputDir string    `gorm:"not null;default:''"`
	SourceDir string    `gorm:"not null;default:''"`
	StartedAt time.Time `gorm:"not null;index:idx_started_at"`
	Succeeded int       `gorm:"not null;default:0"`
}

// TableName specifies the table name for GORM
func (RunModel) TableName() string { return "runs" }

// RunThemeModel is the GORM model for per-theme outcomes of a run
type RunThemeModel struct {
	CreatedAt time.Time
	Error     string `gorm:"not null;default:''"`
	FileCount int    `gorm:"not null;default:0"`
	Outcome   string `gorm:"not null;check:outcome IN ('success','failure','planned')"`
	Position  int    `gorm:"primaryKey;autoIncrement:false"`
	RunID     string `gorm:"primaryKey;index:idx_run_id"`
	ThemeName string `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (RunThemeModel) TableName() string { return "run_themes" }
