package infrastructure

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yourusername/ytd-go/internal/domain"
)

func setupTestRepo(t *testing.T) *SQLiteHistoryRepository {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "history.db")
	repo, err := NewSQLiteHistoryRepository(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })
	return repo
}

func TestHistoryRepository_CreateAndFindByID(t *testing.T) {
	repo := setupTestRepo(t)

	dl := domain.NewDownload("https://youtu.be/abc", domain.KindSingleVideo)
	require.NoError(t, repo.Create(dl))

	found, err := repo.FindByID(dl.ID)
	require.NoError(t, err)
	assert.Equal(t, dl.URL, found.URL)
	assert.Equal(t, domain.KindSingleVideo, found.Kind)
	assert.Equal(t, domain.StatusProcessing, found.Status)
}

func TestHistoryRepository_UpdatePersistsTerminalState(t *testing.T) {
	repo := setupTestRepo(t)

	dl := domain.NewDownload("https://youtu.be/abc", domain.KindSingleVideo)
	require.NoError(t, repo.Create(dl))

	dl.SetTemplate(domain.SelectTemplate(domain.KindSingleVideo, "Channel", "Video"), "Channel", "Video")
	dl.MarkCompleted()
	require.NoError(t, repo.Update(dl))

	found, err := repo.FindByID(dl.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCompleted, found.Status)
	assert.Equal(t, "Channel - Video.%(ext)s", found.Template)
	assert.NotNil(t, found.CompletedAt)
}

func TestHistoryRepository_FindAllFiltersOnStatus(t *testing.T) {
	repo := setupTestRepo(t)

	completed := domain.NewDownload("https://youtu.be/done", domain.KindSingleVideo)
	completed.MarkCompleted()
	require.NoError(t, repo.Create(completed))

	failed := domain.NewDownload("https://youtu.be/broken", domain.KindSingleVideo)
	failed.MarkFailed(assert.AnError)
	require.NoError(t, repo.Create(failed))

	all, err := repo.FindAll("")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	onlyFailed, err := repo.FindAll(domain.StatusFailed)
	require.NoError(t, err)
	require.Len(t, onlyFailed, 1)
	assert.Equal(t, failed.ID, onlyFailed[0].ID)
}

func TestHistoryRepository_CountByStatus(t *testing.T) {
	repo := setupTestRepo(t)

	for i := 0; i < 3; i++ {
		dl := domain.NewDownload("https://youtu.be/abc", domain.KindSingleVideo)
		dl.MarkCompleted()
		require.NoError(t, repo.Create(dl))
	}

	count, err := repo.CountByStatus(domain.StatusCompleted)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)

	count, err = repo.CountByStatus(domain.StatusFailed)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}
