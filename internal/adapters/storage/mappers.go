package storage

import (
	"themeconv/internal/domain"
)

// runModelToDomain converts a RunModel (GORM) and its theme rows to domain.RunRecord
func runModelToDomain(m RunModel, themes []RunThemeModel) domain.RunRecord {
	records := make([]domain.RunThemeRecord, len(themes))
	for i, t := range themes {
		records[i] = domain.RunThemeRecord{
			Error:     t.Error,
			FileCount: t.FileCount,
			Outcome:   domain.Outcome(t.Outcome),
			ThemeName: t.ThemeName,
		}
	}
	return domain.RunRecord{
		Attempted: m.Attempted,
		Failed:    m.Failed,
		ID:        m.ID,
		OutputDir: m.OutputDir,
		SourceDir: m.SourceDir,
		StartedAt: m.StartedAt,
		Succeeded: m.Succeeded,
		Themes:    records,
	}
}

// domainToRunModel converts a domain.RunRecord to RunModel (GORM)
func domainToRunModel(r domain.RunRecord) RunModel {
	return RunModel{
		Attempted: r.Attempted,
		Failed:    r.Failed,
		ID:        r.ID,
		OutputDir: r.OutputDir,
		SourceDir: r.SourceDir,
		StartedAt: r.StartedAt.UTC(),
		Succeeded: r.Succeeded,
	}
}

// domainToRunThemeModels converts the theme entries of a run, keeping their order
func domainToRunThemeModels(runID string, themes []domain.RunThemeRecord) []RunThemeModel {
	models := make([]RunThemeModel, len(themes))
	for i, t := range themes {
		models[i] = RunThemeModel{
			Error:     t.Error,
			FileCount: t.FileCount,
			Outcome:   string(t.Outcome),
			Position:  i,
			RunID:     runID,
			ThemeName: t.ThemeName,
		}
	}
	return models
}
