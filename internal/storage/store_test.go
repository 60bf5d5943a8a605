package storage_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"github.com/vytor/kanaflash/internal/storage"
	"github.com/vytor/kanaflash/internal/testutil"
)

type KeyValueStoreSuite struct {
	suite.Suite
	newStore func() storage.KeyValueStore
	store    storage.KeyValueStore
}

func (s *KeyValueStoreSuite) SetupTest() {
	s.store = s.newStore()
}

func (s *KeyValueStoreSuite) TearDownTest() {
	testutil.MustClose(s.T(), s.store)
}

func (s *KeyValueStoreSuite) TestGetMissing() {
	_, err := s.store.Get(context.Background(), "settings")
	s.Assert().ErrorIs(err, storage.ErrNotFound)
}

func (s *KeyValueStoreSuite) TestSetThenGet() {
	ctx := context.Background()

	s.Require().NoError(s.store.Set(ctx, "mistakes", []byte(`[]`)))

	v, err := s.store.Get(ctx, "mistakes")
	s.Require().NoError(err)
	s.Assert().Equal(`[]`, string(v))
}

func (s *KeyValueStoreSuite) TestSetOverwrites() {
	ctx := context.Background()

	s.Require().NoError(s.store.Set(ctx, "testRecords", []byte(`[1]`)))
	s.Require().NoError(s.store.Set(ctx, "testRecords", []byte(`[1,2]`)))

	v, err := s.store.Get(ctx, "testRecords")
	s.Require().NoError(err)
	s.Assert().Equal(`[1,2]`, string(v))
}

func (s *KeyValueStoreSuite) TestDelete() {
	ctx := context.Background()

	s.Require().NoError(s.store.Set(ctx, "settings", []byte(`{}`)))
	s.Require().NoError(s.store.Delete(ctx, "settings"))

	_, err := s.store.Get(ctx, "settings")
	s.Assert().ErrorIs(err, storage.ErrNotFound)

	s.Assert().NoError(s.store.Delete(ctx, "never-set"))
}

func (s *KeyValueStoreSuite) TestKeysAreIndependent() {
	ctx := context.Background()

	s.Require().NoError(s.store.Set(ctx, "a", []byte("1")))
	s.Require().NoError(s.store.Set(ctx, "b", []byte("2")))

	v, err := s.store.Get(ctx, "a")
	s.Require().NoError(err)
	s.Assert().Equal("1", string(v))
}

func TestMemoryStoreSuite(t *testing.T) {
	suite.Run(t, &KeyValueStoreSuite{newStore: func() storage.KeyValueStore {
		return storage.NewMemoryStore()
	}})
}

func TestSQLiteStoreSuite(t *testing.T) {
	suite.Run(t, &KeyValueStoreSuite{newStore: func() storage.KeyValueStore {
		return storage.NewSQLiteStore(testutil.NewTestDB(t))
	}})
}

func TestOpenSQLite_AppliesMigrationsOnce(t *testing.T) {
	path := t.TempDir() + "/kana.db"

	first, err := storage.OpenSQLite(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := first.Set(context.Background(), "k", []byte("v")); err != nil {
		t.Fatalf("set: %v", err)
	}
	testutil.MustClose(t, first)

	second, err := storage.OpenSQLite(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer testutil.MustClose(t, second)

	v, err := second.Get(context.Background(), "k")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if string(v) != "v" {
		t.Fatalf("expected v, got %q", v)
	}
}
