package seed

import (
	"log"

	"happy-thoughts-backend/internal/thought/domain"
	"happy-thoughts-backend/internal/thought/repository"
)

// fixture is a preset thought inserted by Load.
type fixture struct {
	Message string
	Hearts  int
}

var fixtures = []fixture{
	{Message: "Cold beer on a hot day", Hearts: 12},
	{Message: "My dog greeting me at the door", Hearts: 27},
	{Message: "Fresh coffee on a rainy morning", Hearts: 9},
	{Message: "Finally fixed that flaky test", Hearts: 33},
	{Message: "Sunsets over the harbour", Hearts: 18},
	{Message: "Warm bread straight from the oven", Hearts: 21},
	{Message: "A stranger smiled at me today", Hearts: 7},
	{Message: "New socks, still warm from the dryer", Hearts: 4},
}

// Load wipes the thought collection and repopulates it with the fixtures.
// Wholesale replacement makes repeated runs land on the same state.
func Load(repo repository.ThoughtRepository) error {
	if err := repo.DeleteAll(); err != nil {
		return err
	}

	for _, f := range fixtures {
		thought := &domain.Thought{
			Message: f.Message,
			Hearts:  f.Hearts,
		}
		if err := repo.Create(thought); err != nil {
			return err
		}
	}

	log.Printf("Seeded %d thoughts", len(fixtures))
	return nil
}
