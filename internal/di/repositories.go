package di

import (
	"context"
	"fmt"

	"github.com/aristath/greenmix/internal/modules/projects"
	"github.com/aristath/greenmix/internal/modules/sessions"
	"github.com/rs/zerolog"
)

// InitializeRepositories creates the repositories and seeds the project catalog
func InitializeRepositories(container *Container, log zerolog.Logger) error {
	container.ProjectRepo = projects.NewRepository(container.CatalogDB.Conn(), log)
	container.SessionRepo = sessions.NewRepository(container.CacheDB.Conn(), log)

	seed, err := projects.DefaultSeed()
	if err != nil {
		return fmt.Errorf("failed to load project catalog: %w", err)
	}
	if err := container.ProjectRepo.Seed(context.Background(), seed); err != nil {
		return fmt.Errorf("failed to seed project catalog: %w", err)
	}

	log.Debug().Int("projects", len(seed)).Msg("Repositories initialized")
	return nil
}
