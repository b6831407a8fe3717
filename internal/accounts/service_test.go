package accounts

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cleared-dev/sie/internal/collection"
	"github.com/cleared-dev/sie/internal/model"
)

func newDefault(t *testing.T) *Service {
	t.Helper()
	svc := NewService(model.New())
	require.NoError(t, svc.Import(DefaultChart()))
	return svc
}

func TestImport(t *testing.T) {
	svc := newDefault(t)
	assert.Len(t, svc.All(), len(DefaultChart()))

	err := svc.Import([]Entry{{Account: model.Account{Number: "1910"}}})
	assert.ErrorIs(t, err, collection.ErrDuplicateKey)
}

func TestGetExists(t *testing.T) {
	svc := newDefault(t)

	acct, ok := svc.Get("1910")
	assert.True(t, ok)
	assert.Equal(t, "Kassa", acct.Name)

	_, ok = svc.Get("9999")
	assert.False(t, ok)

	assert.True(t, svc.Exists("1910"))
	assert.False(t, svc.Exists("9999"))
}

func TestByType(t *testing.T) {
	svc := newDefault(t)

	assets := svc.ByType(model.AccountTypeAsset)
	assert.Len(t, assets, 3)
	for _, a := range assets {
		assert.Equal(t, model.AccountTypeAsset, a.Type)
	}
	assert.Len(t, svc.ByType(model.AccountTypeExpense), 4)
}

func TestSetType(t *testing.T) {
	svc := newDefault(t)

	require.NoError(t, svc.SetType("2081", model.AccountTypeAsset))
	assert.Len(t, svc.ByType(model.AccountTypeAsset), 4)
	assert.ErrorIs(t, svc.SetType("9999", model.AccountTypeAsset), collection.ErrNotFound)
	assert.Error(t, svc.SetType("1910", "X"))
}

func TestLoadFromTestdata(t *testing.T) {
	svc, err := Load(filepath.Join("testdata", "chart.csv"), model.New())
	require.NoError(t, err)
	assert.Len(t, svc.All(), 5)

	acct, ok := svc.Get("3010")
	require.True(t, ok)
	assert.Equal(t, "Försäljning, varor", acct.Name)

	entries := svc.Entries()
	assert.Equal(t, 7241, entries[0].SRU)
	assert.Equal(t, "st", entries[0].Unit)
	assert.Zero(t, entries[4].SRU)
}

func TestSaveRoundTrip(t *testing.T) {
	svc := newDefault(t)

	path := filepath.Join(t.TempDir(), "chart.csv")
	require.NoError(t, svc.Save(path))
	_, err := os.Stat(path)
	require.NoError(t, err)

	svc2, err := Load(path, model.New())
	require.NoError(t, err)
	assert.Equal(t, svc.Entries(), svc2.Entries())
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.csv"), model.New())
	assert.Error(t, err)
}
