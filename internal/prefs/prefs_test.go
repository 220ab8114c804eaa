package prefs

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lehmann314159/heimwerker/internal/database"
	"github.com/lehmann314159/heimwerker/internal/repository"
)

type failingStore struct{}

func (failingStore) Get(context.Context, string, string) (string, error) {
	return "", errors.New("unavailable")
}

func (failingStore) Set(context.Context, string, string, string) error {
	return errors.New("unavailable")
}

func testLanguageRoundTrip(t *testing.T, store Store) {
	t.Helper()
	ctx := context.Background()
	a := Language{Store: store, Visitor: uuid.NewString()}
	b := Language{Store: store, Visitor: uuid.NewString()}

	got, err := a.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "", got)

	require.NoError(t, a.Save(ctx, "en"))
	got, err = a.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "en", got)

	got, err = b.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "", got, "visitors must not share preferences")
}

func TestMemoryLanguage(t *testing.T) {
	testLanguageRoundTrip(t, NewMemory())
}

func TestRepositoryLanguage(t *testing.T) {
	db, err := database.New(t.TempDir())
	require.NoError(t, err)
	defer db.Close()
	testLanguageRoundTrip(t, repository.New(db))
}

func TestRedisLanguage(t *testing.T) {
	url := os.Getenv("REDIS_URL")
	if url == "" {
		t.Skip("REDIS_URL not set")
	}
	r, err := NewRedis(context.Background(), url, time.Minute)
	require.NoError(t, err)
	defer r.Close()
	testLanguageRoundTrip(t, r)
}

func TestNewRedisRejectsBadURL(t *testing.T) {
	_, err := NewRedis(context.Background(), "not a url", time.Minute)
	assert.Error(t, err)
}

func TestLanguageWrapsErrors(t *testing.T) {
	l := Language{Store: failingStore{}, Visitor: "v"}
	_, err := l.Load(context.Background())
	assert.ErrorContains(t, err, "load language for v")
	assert.ErrorContains(t, l.Save(context.Background(), "de"), "unavailable")
}
