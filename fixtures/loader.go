package fixtures

import (
	"context"
	"fmt"
	"sort"
	"time"

	"gorm.io/gorm"

	"github.com/judgekit/team-fixtures/internal/logger"
)

// Loader applies registered fixtures by name.
type Loader struct {
	db       *gorm.DB
	log      *logger.Logger
	fixtures map[string]Fixture
}

func NewLoader(db *gorm.DB, log *logger.Logger) *Loader {
	return &Loader{
		db:       db,
		log:      log.WithComponent("fixtures"),
		fixtures: make(map[string]Fixture),
	}
}

// Default returns a loader with every built-in fixture registered.
func Default(db *gorm.DB, log *logger.Logger) *Loader {
	l := NewLoader(db, log)
	l.mustRegister(SeedTeamCategories{}, EnableSelfRegister{})
	return l
}

func (l *Loader) mustRegister(fixtures ...Fixture) {
	if err := l.Register(fixtures...); err != nil {
		panic(err)
	}
}

func (l *Loader) Register(fixtures ...Fixture) error {
	for _, f := range fixtures {
		if _, ok := l.fixtures[f.Name()]; ok {
			return fmt.Errorf("%w: %s", ErrDuplicateFixture, f.Name())
		}
		l.fixtures[f.Name()] = f
	}
	return nil
}

// Names returns the registered fixture names in sorted order.
func (l *Loader) Names() []string {
	names := make([]string, 0, len(l.fixtures))
	for name := range l.fixtures {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Load applies the named fixtures in order, each in its own transaction.
// Every name is resolved before anything runs. The first failure stops the
// sequence; fixtures applied before it stay committed.
func (l *Loader) Load(ctx context.Context, names ...string) error {
	selected := make([]Fixture, 0, len(names))
	for _, name := range names {
		f, ok := l.fixtures[name]
		if !ok {
			return fmt.Errorf("%w: %s", ErrUnknownFixture, name)
		}
		selected = append(selected, f)
	}

	for _, f := range selected {
		start := time.Now()
		if err := Apply(ctx, l.db, f); err != nil {
			l.log.Error("Fixture failed", map[string]interface{}{
				logger.FieldFixture: f.Name(),
				logger.FieldError:   err.Error(),
			})
			return err
		}
		l.log.Info("Fixture loaded", map[string]interface{}{
			logger.FieldFixture:  f.Name(),
			logger.FieldDuration: time.Since(start).Milliseconds(),
		})
	}
	return nil
}
