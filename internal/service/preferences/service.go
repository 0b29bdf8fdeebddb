package preferences

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"
	"time"

	"github.com/MadScie254/Bordaless-SKU-Lab/internal/model"
	"github.com/MadScie254/Bordaless-SKU-Lab/platform/logger"
)

// Setting keys. Values are stored as raw JSON.
const (
	KeyFavorites    = "favorites"
	KeyTheme        = "theme"
	KeySoundEnabled = "soundEnabled"
)

type SettingsStore interface {
	Get(ctx context.Context, clientID, key string) ([]byte, error)
	Set(ctx context.Context, clientID, key string, value []byte) error
}

type service struct {
	store          SettingsStore
	readDBTimeout  time.Duration
	writeDBTimeout time.Duration

	mu    sync.Mutex
	locks map[string]*clientLock
}

// clientLock serializes read-modify-write cycles for one client.
type clientLock struct {
	sync.Mutex
	refs int
}

func NewPreferencesService(store SettingsStore, readDBTimeout, writeDBTimeout time.Duration) *service {
	return &service{
		store:          store,
		readDBTimeout:  readDBTimeout,
		writeDBTimeout: writeDBTimeout,
		locks:          make(map[string]*clientLock),
	}
}

func (s *service) Favorites(ctx context.Context, clientID string) (model.Favorites, error) {
	const op = "preferences.service.Favorites"

	var favs model.Favorites
	if err := s.read(ctx, clientID, KeyFavorites, &favs); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if favs == nil {
		favs = model.Favorites{}
	}
	return favs, nil
}

// ToggleFavorite flips membership of batchID and persists the set.
// It reports whether batchID is a favorite afterwards.
func (s *service) ToggleFavorite(ctx context.Context, clientID, batchID string) (model.Favorites, bool, error) {
	const op = "preferences.service.ToggleFavorite"
	log := logger.With(
		logger.String("client_id", clientID),
		logger.String("batch_id", batchID),
	)

	batchID = strings.TrimSpace(batchID)
	if batchID == "" {
		return nil, false, errors.Join(model.ErrValidation, errors.New("batch id must be non-empty"))
	}

	defer s.lock(clientID)()

	favs, err := s.Favorites(ctx, clientID)
	if err != nil {
		log.Error(ctx, "read favorites", logger.ErrorF(err))
		return nil, false, fmt.Errorf("%s: %w", op, err)
	}

	next := favs.Toggle(batchID)
	if err := s.write(ctx, clientID, KeyFavorites, next); err != nil {
		log.Error(ctx, "persist favorites", logger.ErrorF(err))
		return nil, false, fmt.Errorf("%s: %w", op, err)
	}

	return next, next.Contains(batchID), nil
}

func (s *service) Preferences(ctx context.Context, clientID string) (model.Preferences, error) {
	const op = "preferences.service.Preferences"

	prefs := model.DefaultPreferences()

	var theme model.Theme
	if err := s.read(ctx, clientID, KeyTheme, &theme); err != nil {
		return model.Preferences{}, fmt.Errorf("%s: %w", op, err)
	}
	if theme.Valid() {
		prefs.Theme = theme
	}

	var sound *bool
	if err := s.read(ctx, clientID, KeySoundEnabled, &sound); err != nil {
		return model.Preferences{}, fmt.Errorf("%s: %w", op, err)
	}
	if sound != nil {
		prefs.SoundEnabled = *sound
	}

	return prefs, nil
}

func (s *service) UpdatePreferences(ctx context.Context, clientID string, upd model.PreferencesUpdate) (model.Preferences, error) {
	const op = "preferences.service.UpdatePreferences"

	if upd.Theme != nil && !upd.Theme.Valid() {
		return model.Preferences{}, errors.Join(model.ErrValidation, fmt.Errorf("unknown theme %q", *upd.Theme))
	}

	defer s.lock(clientID)()

	if upd.Theme != nil {
		if err := s.write(ctx, clientID, KeyTheme, *upd.Theme); err != nil {
			return model.Preferences{}, fmt.Errorf("%s: %w", op, err)
		}
	}
	if upd.SoundEnabled != nil {
		if err := s.write(ctx, clientID, KeySoundEnabled, *upd.SoundEnabled); err != nil {
			return model.Preferences{}, fmt.Errorf("%s: %w", op, err)
		}
	}

	return s.Preferences(ctx, clientID)
}

// read decodes the stored value into dst. A missing key leaves dst untouched.
// A corrupt value is logged and treated as missing.
func (s *service) read(ctx context.Context, clientID, key string, dst any) error {
	ctx, cancel := context.WithTimeout(ctx, s.readDBTimeout)
	defer cancel()

	raw, err := s.store.Get(ctx, clientID, key)
	switch {
	case errors.Is(err, model.ErrSettingNotFound):
		return nil
	case err != nil:
		return err
	}

	if err := json.Unmarshal(raw, dst); err != nil {
		reflect.ValueOf(dst).Elem().SetZero()
		logger.Warn(ctx, "corrupt setting ignored",
			logger.String("client_id", clientID),
			logger.String("key", key),
			logger.ErrorF(err),
		)
	}
	return nil
}

func (s *service) write(ctx context.Context, clientID, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, s.writeDBTimeout)
	defer cancel()

	return s.store.Set(ctx, clientID, key, raw)
}

// lock takes the client's write lock and returns its release func.
// The entry is dropped once no caller holds or waits on it.
func (s *service) lock(clientID string) func() {
	s.mu.Lock()
	l, ok := s.locks[clientID]
	if !ok {
		l = &clientLock{}
		s.locks[clientID] = l
	}
	l.refs++
	s.mu.Unlock()

	l.Lock()
	return func() {
		l.Unlock()

		s.mu.Lock()
		defer s.mu.Unlock()
		if l.refs--; l.refs == 0 {
			delete(s.locks, clientID)
		}
	}
}
