// Package file persists the bearer session as a TOML file under the
// user's config directory, the terminal counterpart of the browser
// client's localStorage pair.
package file

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
	"github.com/wvwvw5/neuro-store/internal/domain"
	"github.com/wvwvw5/neuro-store/internal/ports"
)

const (
	configName     = "config"
	configType     = "toml"
	sessionPathKey = "session.path"

	configDirName   = ".neuro-store"
	sessionFileName = "session.toml"

	storeDirMode    = 0o700
	sessionFileMode = 0o600
)

type sessionSchema struct {
	AccessToken string `toml:"access_token"`
	TokenType   string `toml:"token_type"`
}

type Store struct {
	path string
	mu   sync.RWMutex
}

var _ ports.SessionStore = (*Store)(nil)

// NewStore resolves the session file path from config, defaulting to
// ~/.neuro-store/session.toml.
func NewStore(cfg *viper.Viper) (*Store, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}

	defaultPath := filepath.Join(homeDir, configDirName, sessionFileName)

	cfg.SetConfigName(configName)
	cfg.SetConfigType(configType)
	cfg.AddConfigPath(filepath.Join(homeDir, configDirName))
	cfg.SetDefault(sessionPathKey, defaultPath)

	if err := cfg.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	path := strings.TrimSpace(cfg.GetString(sessionPathKey))
	if path == "" {
		return nil, errors.New("session path is empty")
	}

	return &Store{path: filepath.Clean(path)}, nil
}

func (s *Store) Load(ctx context.Context) (domain.Session, error) {
	if err := ctx.Err(); err != nil {
		return domain.Session{}, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.Session{}, domain.ErrNoSession
		}
		return domain.Session{}, fmt.Errorf("read session file: %w", err)
	}

	var schema sessionSchema
	if err := toml.Unmarshal(data, &schema); err != nil {
		return domain.Session{}, fmt.Errorf("decode session file: %w", err)
	}

	session := domain.Session{AccessToken: schema.AccessToken, TokenType: schema.TokenType}
	if session.IsZero() {
		return domain.Session{}, domain.ErrNoSession
	}

	return session, nil
}

func (s *Store) Save(ctx context.Context, session domain.Session) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if session.IsZero() {
		return errors.New("refusing to store an empty session")
	}

	encoded, err := toml.Marshal(sessionSchema{
		AccessToken: session.AccessToken,
		TokenType:   session.TokenType,
	})
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(s.path), storeDirMode); err != nil {
		return fmt.Errorf("create session directory: %w", err)
	}

	if err := os.WriteFile(s.path, encoded, sessionFileMode); err != nil {
		return fmt.Errorf("write session file: %w", err)
	}

	return nil
}

func (s *Store) Clear(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("delete session file: %w", err)
	}

	return nil
}
