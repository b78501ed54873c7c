// Package seed loads the default card catalog into an empty store.
//
// The catalog ships with the binary so a fresh deployment has a usable
// board without any manual setup. Seeding is idempotent: a non-empty
// catalog is left untouched, so operator edits survive restarts.
package seed

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"log/slog"

	"gopkg.in/yaml.v3"

	"github.com/phrazzld/commboard-api/internal/domain"
	"github.com/phrazzld/commboard-api/internal/store"
)

//go:embed cards.yaml
var defaultCatalog []byte

type catalogFile struct {
	Cards []cardEntry `yaml:"cards"`
}

type cardEntry struct {
	Slug         string `yaml:"slug"`
	Label        string `yaml:"label"`
	ImageRef     string `yaml:"image_ref"`
	BasePriority int    `yaml:"base_priority"`
}

// Cards parses the embedded catalog into domain cards.
func Cards() ([]*domain.Card, error) {
	var file catalogFile
	if err := yaml.Unmarshal(defaultCatalog, &file); err != nil {
		return nil, fmt.Errorf("failed to parse embedded card catalog: %w", err)
	}

	cards := make([]*domain.Card, 0, len(file.Cards))
	for _, entry := range file.Cards {
		card, err := domain.NewCard(entry.Slug, entry.Label, entry.BasePriority)
		if err != nil {
			return nil, fmt.Errorf("invalid catalog entry %q: %w", entry.Slug, err)
		}
		card.ImageRef = entry.ImageRef
		cards = append(cards, card)
	}
	return cards, nil
}

// Ensure inserts the default catalog when the card store is empty.
// The insert runs in a single transaction, so a half-seeded catalog can
// never be observed. It returns the number of cards inserted, which is
// zero when the catalog already has entries.
func Ensure(ctx context.Context, db *sql.DB, cardStore store.CardStore, logger *slog.Logger) (int, error) {
	if logger == nil {
		logger = slog.Default()
	}
	log := logger.With(slog.String("component", "seed"))

	existing, err := cardStore.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to check existing catalog: %w", err)
	}
	if len(existing) > 0 {
		log.Debug("catalog already populated, skipping seed",
			slog.Int("cards", len(existing)))
		return 0, nil
	}

	cards, err := Cards()
	if err != nil {
		return 0, err
	}

	err = store.RunInTransaction(ctx, db, func(ctx context.Context, tx *sql.Tx) error {
		txStore := cardStore.WithTx(tx)
		for _, card := range cards {
			if err := txStore.Create(ctx, card); err != nil {
				// Another instance may have seeded concurrently; its
				// catalog wins and this transaction rolls back whole.
				return fmt.Errorf("failed to seed card %q: %w", card.Slug, err)
			}
		}
		return nil
	})
	if err != nil {
		if store.IsDuplicateError(err) {
			log.Debug("catalog seeded concurrently by another instance")
			return 0, nil
		}
		return 0, err
	}

	log.Info("seeded default card catalog", slog.Int("cards", len(cards)))
	return len(cards), nil
}
