package repositories_test

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"shopadmin/internal/models"
	"shopadmin/internal/repositories"

	"github.com/stretchr/testify/assert"
)

func seedProducts(t *testing.T, repo *repositories.MockProductRepository, names ...string) []models.Product {
	t.Helper()
	base := time.Now().Add(-time.Hour)
	seeded := make([]models.Product, 0, len(names))
	for i, name := range names {
		p := models.Product{
			Name:  name,
			SKU:   fmt.Sprintf("SKU-%03d", i),
			Price: 10.0,
			Stock: 5,
		}
		err := repo.Create(&p)
		assert.NoError(t, err)

		// Pin creation times so ordering assertions are deterministic
		p.CreatedAt = base.Add(time.Duration(i) * time.Minute)
		err = repo.Update(&p)
		assert.NoError(t, err)
		seeded = append(seeded, p)
	}
	return seeded
}

func TestMockProductRepository_ListPagination(t *testing.T) {
	repo := repositories.NewMockProductRepository()

	names := make([]string, 25)
	for i := range names {
		names[i] = fmt.Sprintf("Widget %02d", i)
	}
	seedProducts(t, repo, names...)

	count, err := repo.Count("")
	assert.NoError(t, err)
	assert.Equal(t, int64(25), count)

	// First page: 20 newest, descending by creation time
	page, err := repo.List("", 20, 0)
	assert.NoError(t, err)
	assert.Len(t, page, 20)
	assert.Equal(t, "Widget 24", page[0].Name)
	for i := 1; i < len(page); i++ {
		assert.False(t, page[i].CreatedAt.After(page[i-1].CreatedAt))
	}

	// Second page holds the remainder
	page, err = repo.List("", 20, 20)
	assert.NoError(t, err)
	assert.Len(t, page, 5)
	assert.Equal(t, "Widget 00", page[len(page)-1].Name)

	// Offsets past the end yield an empty, non-nil slice
	page, err = repo.List("", 20, 60)
	assert.NoError(t, err)
	assert.NotNil(t, page)
	assert.Empty(t, page)
}

func TestMockProductRepository_KeywordFilter(t *testing.T) {
	repo := repositories.NewMockProductRepository()
	seedProducts(t, repo, "Red Shirt", "blue shirt", "Winter Hat")

	count, err := repo.Count("SHIRT")
	assert.NoError(t, err)
	assert.Equal(t, int64(2), count)

	page, err := repo.List("shirt", 20, 0)
	assert.NoError(t, err)
	assert.Len(t, page, 2)
	for _, p := range page {
		assert.Contains(t, []string{"Red Shirt", "blue shirt"}, p.Name)
	}

	count, err = repo.Count("boots")
	assert.NoError(t, err)
	assert.Zero(t, count)
}

func TestMockProductRepository_DuplicateSKU(t *testing.T) {
	repo := repositories.NewMockProductRepository()

	first := models.Product{Name: "Original", SKU: "DUP-1", Price: 10.0}
	assert.NoError(t, repo.Create(&first))

	second := models.Product{Name: "Copycat", SKU: "DUP-1", Price: 12.0}
	err := repo.Create(&second)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestMockProductRepository_DeleteTwice(t *testing.T) {
	repo := repositories.NewMockProductRepository()

	product := models.Product{Name: "Short Lived", SKU: "GONE-1", Price: 10.0}
	assert.NoError(t, repo.Create(&product))

	assert.NoError(t, repo.Delete(product.ID))

	err := repo.Delete(product.ID)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found for deletion")
}

// Two writers read the same record, then save full copies with disjoint
// changes. The update path has no optimistic-concurrency guard, so the second
// save overwrites the first instead of merging with it.
func TestMockProductRepository_ConcurrentUpdatesLastWriteWins(t *testing.T) {
	repo := repositories.NewMockProductRepository()

	product := models.Product{Name: "Original", SKU: "RACE-1", Price: 10.0, Stock: 10}
	assert.NoError(t, repo.Create(&product))

	// Both writers snapshot the record before either saves
	a, err := repo.GetByID(product.ID)
	assert.NoError(t, err)
	b, err := repo.GetByID(product.ID)
	assert.NoError(t, err)

	var wg sync.WaitGroup
	aWritten := make(chan struct{})
	wg.Add(2)
	go func() {
		defer wg.Done()
		a.Name = "Renamed"
		assert.NoError(t, repo.Update(a))
		close(aWritten)
	}()
	go func() {
		defer wg.Done()
		<-aWritten // deterministic ordering: B saves last
		b.Stock = 0
		assert.NoError(t, repo.Update(b))
	}()
	wg.Wait()

	// B's stale copy wins in full: A's rename is lost, not merged
	final, err := repo.GetByID(product.ID)
	assert.NoError(t, err)
	assert.Equal(t, 0, final.Stock)
	assert.Equal(t, "Original", final.Name)
}
