package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/MrSnakeDoc/alumnet/internal/domain"
	"github.com/MrSnakeDoc/alumnet/internal/logger"
	"github.com/MrSnakeDoc/alumnet/internal/sources/seed"
)

// AlumniImporter is the part of the directory service the seed import needs.
type AlumniImporter interface {
	ImportAlumni(ctx context.Context, profiles []domain.Alumni) (int, error)
}

// SeedImporter imports the alumni seed file on start, on every interval
// tick and whenever the manual trigger fires.
type SeedImporter struct {
	loader        *seed.Loader
	directory     AlumniImporter
	logger        logger.Logger
	interval      time.Duration
	stopCh        chan struct{}
	stopOnce      sync.Once
	manualTrigger chan struct{}
}

// NewSeedImporter creates a seed importer. manualTrigger may be nil.
func NewSeedImporter(
	seedFile string,
	directory AlumniImporter,
	log logger.Logger,
	interval time.Duration,
	manualTrigger chan struct{},
) *SeedImporter {
	return &SeedImporter{
		loader:        seed.NewLoader(seedFile),
		directory:     directory,
		logger:        log.With(logger.String("seed_file", seedFile)),
		interval:      interval,
		stopCh:        make(chan struct{}),
		manualTrigger: manualTrigger,
	}
}

// Start runs a first import synchronously, then keeps importing in the
// background until Stop is called or ctx is cancelled.
func (si *SeedImporter) Start(ctx context.Context) error {
	if _, err := si.Import(ctx); err != nil {
		return fmt.Errorf("initial seed import failed: %w", err)
	}

	ticker := time.NewTicker(si.interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				si.importLogged(ctx)
			case <-si.manualTrigger:
				si.logger.Info("manual seed import triggered")
				si.importLogged(ctx)
			case <-si.stopCh:
				return
			case <-ctx.Done():
				return
			}
		}
	}()

	return nil
}

// Stop stops the background loop. It is safe to call more than once.
func (si *SeedImporter) Stop() {
	si.stopOnce.Do(func() { close(si.stopCh) })
}

// Import loads the seed file and appends the profiles the directory does
// not have yet. It returns the number of profiles added.
func (si *SeedImporter) Import(ctx context.Context) (int, error) {
	config, err := si.loader.Load()
	if err != nil {
		return 0, fmt.Errorf("failed to load seed file: %w", err)
	}

	profiles, err := seed.MapProfiles(config)
	if err != nil {
		return 0, fmt.Errorf("failed to map seed profiles: %w", err)
	}

	added, err := si.directory.ImportAlumni(ctx, profiles)
	if err != nil {
		return 0, fmt.Errorf("failed to import alumni: %w", err)
	}

	si.logger.Info("seed import finished",
		logger.Int("profiles", len(profiles)),
		logger.Int("added", added))
	return added, nil
}

func (si *SeedImporter) importLogged(ctx context.Context) {
	if _, err := si.Import(ctx); err != nil {
		si.logger.Error("seed import failed", logger.Error(err))
	}
}
