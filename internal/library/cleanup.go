package library

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/epwatch/epwatch/internal/model"
)

// Remove deletes the episode's file from disk. Callers are responsible for
// only passing episodes already marked watched; the progress marker itself is
// untouched. Permission and missing-file problems surface as ErrDeletion.
func Remove(ep model.Episode) error {
	if err := os.Remove(ep.Path); err != nil {
		return fmt.Errorf("%w: %v", ErrDeletion, err)
	}

	log.Info().Int("episode", ep.Number).Str("path", ep.Path).Msg("episode file deleted")
	return nil
}
