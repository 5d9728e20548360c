package services

import (
	"fmt"

	"github.com/rs/zerolog"

	"filmhay-backend/models"
	"filmhay-backend/utils"
)

const seedFilePattern = "*.json,*.yaml,*.yml"

// SeedCatalog inserts the entries found at path, a single seed file or a
// directory of them read in name order. Invalid entries are logged and
// skipped; an unreadable file given directly is an error. It returns the
// number of records inserted.
func SeedCatalog(store *MovieStore, path string, logger zerolog.Logger) (int, error) {
	if path == "" {
		return 0, nil
	}
	if !utils.FileExists(path) {
		return 0, fmt.Errorf("seed path not found: %s", path)
	}

	var files []string
	if utils.IsDir(path) {
		found, err := utils.FindFiles(path, seedFilePattern)
		if err != nil {
			return 0, fmt.Errorf("failed to list seed files: %w", err)
		}
		files = found
	} else {
		files = []string{path}
	}

	inserted := 0
	for _, file := range files {
		var entries []models.MovieInput
		if err := utils.ReadDataFile(file, &entries); err != nil {
			if len(files) == 1 && file == path {
				return 0, fmt.Errorf("failed to read seed file %s: %w", file, err)
			}
			logger.Warn().Err(err).Str("file", file).Msg("skipping unreadable seed file")
			continue
		}

		for i, entry := range entries {
			draft, err := entry.Draft()
			if err != nil {
				logger.Warn().Err(err).Str("file", file).Int("entry", i).Msg("skipping invalid seed entry")
				continue
			}
			if _, err := store.Insert(draft); err != nil {
				return inserted, fmt.Errorf("failed to insert seed entry %d from %s: %w", i, file, err)
			}
			inserted++
		}
		logger.Debug().Str("file", file).Int("entries", len(entries)).Msg("seed file loaded")
	}

	logger.Info().Int("movies", inserted).Str("path", path).Msg("catalog seeded")
	return inserted, nil
}
