package services

import (
	"context"
	"testing"

	"github.com/Rakhulsr/go-warehouse/app/models"
	"github.com/Rakhulsr/go-warehouse/app/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/gorm"
)

func subcategoryIDs(subs []models.Subcategory) []uint {
	ids := make([]uint, 0, len(subs))
	for _, s := range subs {
		ids = append(ids, s.ID)
	}
	return ids
}

func categoryIDs(cats []models.Category) []uint {
	ids := make([]uint, 0, len(cats))
	for _, c := range cats {
		ids = append(ids, c.ID)
	}
	return ids
}

func TestMapCategoryToSubcategory(t *testing.T) {
	tests := []struct {
		name  string
		check func(t *testing.T, f *fixture)
	}{
		{
			name: "mapped pair is visible from both sides",
			check: func(t *testing.T, f *fixture) {
				ctx := context.Background()
				men := f.category(t, "Men")
				shirts := f.subcategory(t, "Shirts")

				m, err := f.mappings.MapCategoryToSubcategory(ctx, men, shirts)
				require.NoError(t, err)
				assert.NotZero(t, m.ID)
				assert.Equal(t, models.StatusAvailable, m.Status)

				subs, err := f.mappings.SubcategoriesOf(ctx, men)
				require.NoError(t, err)
				assert.Equal(t, []uint{shirts}, subcategoryIDs(subs))

				cats, err := f.mappings.CategoriesOf(ctx, shirts)
				require.NoError(t, err)
				assert.Equal(t, []uint{men}, categoryIDs(cats))
			},
		},
		{
			name: "mapping the same pair twice fails and keeps one row",
			check: func(t *testing.T, f *fixture) {
				ctx := context.Background()
				men := f.category(t, "Men")
				shirts := f.subcategory(t, "Shirts")

				_, err := f.mappings.MapCategoryToSubcategory(ctx, men, shirts)
				require.NoError(t, err)
				_, err = f.mappings.MapCategoryToSubcategory(ctx, men, shirts)
				assert.ErrorIs(t, err, ErrDuplicateMapping)

				subs, err := f.mappings.SubcategoriesOf(ctx, men)
				require.NoError(t, err)
				assert.Len(t, subs, 1)
			},
		},
		{
			name: "missing category or subcategory is reported as not found",
			check: func(t *testing.T, f *fixture) {
				ctx := context.Background()
				men := f.category(t, "Men")
				shirts := f.subcategory(t, "Shirts")

				_, err := f.mappings.MapCategoryToSubcategory(ctx, 999, shirts)
				assert.ErrorIs(t, err, ErrNotFound)
				var nf *NotFoundError
				require.ErrorAs(t, err, &nf)
				assert.Equal(t, "category", nf.Entity)

				_, err = f.mappings.MapCategoryToSubcategory(ctx, men, 999)
				require.ErrorAs(t, err, &nf)
				assert.Equal(t, "subcategory", nf.Entity)
			},
		},
		{
			name: "subcategories come back in mapping insertion order",
			check: func(t *testing.T, f *fixture) {
				ctx := context.Background()
				men := f.category(t, "Men")
				trousers := f.subcategory(t, "Trousers")
				shirts := f.subcategory(t, "Shirts")
				jackets := f.subcategory(t, "Jackets")

				for _, sub := range []uint{jackets, trousers, shirts} {
					_, err := f.mappings.MapCategoryToSubcategory(ctx, men, sub)
					require.NoError(t, err)
				}

				subs, err := f.mappings.SubcategoriesOf(ctx, men)
				require.NoError(t, err)
				assert.Equal(t, []uint{jackets, trousers, shirts}, subcategoryIDs(subs))
			},
		},
		{
			name: "many to many in both directions",
			check: func(t *testing.T, f *fixture) {
				ctx := context.Background()
				men := f.category(t, "Men")
				women := f.category(t, "Women")
				shoes := f.subcategory(t, "Shoes")
				bags := f.subcategory(t, "Bags")

				for _, pair := range [][2]uint{{men, shoes}, {women, shoes}, {women, bags}} {
					_, err := f.mappings.MapCategoryToSubcategory(ctx, pair[0], pair[1])
					require.NoError(t, err)
				}

				cats, err := f.mappings.CategoriesOf(ctx, shoes)
				require.NoError(t, err)
				assert.Equal(t, []uint{men, women}, categoryIDs(cats))

				subs, err := f.mappings.SubcategoriesOf(ctx, women)
				require.NoError(t, err)
				assert.Equal(t, []uint{shoes, bags}, subcategoryIDs(subs))
			},
		},
		{
			name: "inactive mapping is hidden and reactivated on remap",
			check: func(t *testing.T, f *fixture) {
				ctx := context.Background()
				men := f.category(t, "Men")
				shirts := f.subcategory(t, "Shirts")

				m, err := f.mappings.MapCategoryToSubcategory(ctx, men, shirts)
				require.NoError(t, err)
				_, err = f.mappings.SetMappingStatus(ctx, m.ID, models.StatusUnavailable)
				require.NoError(t, err)

				subs, err := f.mappings.SubcategoriesOf(ctx, men)
				require.NoError(t, err)
				assert.Empty(t, subs)

				again, err := f.mappings.MapCategoryToSubcategory(ctx, men, shirts)
				require.NoError(t, err)
				assert.Equal(t, m.ID, again.ID)
				assert.Equal(t, models.StatusAvailable, again.Status)

				all, err := f.mappings.ListMappings(ctx)
				require.NoError(t, err)
				assert.Len(t, all, 1)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.check(t, newFixture(t))
		})
	}
}

func TestSubcategoriesOfUnknownCategory(t *testing.T) {
	f := newFixture(t)
	_, err := f.mappings.SubcategoriesOf(context.Background(), 42)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = f.mappings.CategoriesOf(context.Background(), 42)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUnmap(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	men := f.category(t, "Men")
	shirts := f.subcategory(t, "Shirts")

	m, err := f.mappings.MapCategoryToSubcategory(ctx, men, shirts)
	require.NoError(t, err)

	removed, err := f.mappings.Unmap(ctx, m.ID)
	require.NoError(t, err)
	assert.True(t, removed)

	subs, err := f.mappings.SubcategoriesOf(ctx, men)
	require.NoError(t, err)
	assert.Empty(t, subs)

	// Category and subcategory survive the unmap.
	_, err = f.taxonomy.GetCategory(ctx, men)
	require.NoError(t, err)
	_, err = f.taxonomy.GetSubcategory(ctx, shirts)
	require.NoError(t, err)

	removed, err = f.mappings.Unmap(ctx, m.ID)
	require.NoError(t, err)
	assert.False(t, removed)

	removed, err = f.mappings.Unmap(ctx, 12345)
	require.NoError(t, err)
	assert.False(t, removed)

	warnings := f.logs.FilterLevelExact(zapcore.WarnLevel).FilterMessage("unmap: mapping does not exist")
	assert.Equal(t, 2, warnings.Len())
}

func TestDeleteCategoryCascadesMappingsOnly(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	men := f.category(t, "Men")
	women := f.category(t, "Women")
	shoes := f.subcategory(t, "Shoes")

	_, err := f.mappings.MapCategoryToSubcategory(ctx, men, shoes)
	require.NoError(t, err)
	_, err = f.mappings.MapCategoryToSubcategory(ctx, women, shoes)
	require.NoError(t, err)

	require.NoError(t, f.taxonomy.DeleteCategory(ctx, men))

	_, err = f.taxonomy.GetSubcategory(ctx, shoes)
	require.NoError(t, err)

	cats, err := f.mappings.CategoriesOf(ctx, shoes)
	require.NoError(t, err)
	assert.Equal(t, []uint{women}, categoryIDs(cats))

	all, err := f.mappings.ListMappings(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	assert.ErrorIs(t, f.taxonomy.DeleteCategory(ctx, men), ErrNotFound)
}

// pairSnapshotRepository answers GetByPair with a fixed snapshot, as a writer
// that read the pair before another writer changed it would see it. A nil
// snapshot hides the pair entirely.
type pairSnapshotRepository struct {
	repositories.MappingRepositoryImpl
	snapshot *models.Mapping
}

func (r *pairSnapshotRepository) GetByPair(ctx context.Context, categoryID, subcategoryID uint) (*models.Mapping, error) {
	if r.snapshot == nil {
		return nil, nil
	}
	mapping := *r.snapshot
	return &mapping, nil
}

func (r *pairSnapshotRepository) WithTx(tx *gorm.DB) repositories.MappingRepositoryImpl {
	return &pairSnapshotRepository{MappingRepositoryImpl: r.MappingRepositoryImpl.WithTx(tx), snapshot: r.snapshot}
}

func (f *fixture) mappingServiceWith(repo repositories.MappingRepositoryImpl) *MappingService {
	return NewMappingService(
		f.db,
		repositories.NewCategoryRepository(f.db),
		repositories.NewSubcategoryRepository(f.db),
		repo,
		zap.NewNop(),
	)
}

func TestReactivateRaceHasOneWinner(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	men := f.category(t, "Men")
	shirts := f.subcategory(t, "Shirts")

	m, err := f.mappings.MapCategoryToSubcategory(ctx, men, shirts)
	require.NoError(t, err)
	_, err = f.mappings.SetMappingStatus(ctx, m.ID, models.StatusUnavailable)
	require.NoError(t, err)

	repo := repositories.NewMappingRepository(f.db)
	stale, err := repo.GetByPair(ctx, men, shirts)
	require.NoError(t, err)
	require.Equal(t, models.StatusUnavailable, stale.Status)

	_, err = f.mappings.MapCategoryToSubcategory(ctx, men, shirts)
	require.NoError(t, err)

	loser := f.mappingServiceWith(&pairSnapshotRepository{MappingRepositoryImpl: repo, snapshot: stale})
	_, err = loser.MapCategoryToSubcategory(ctx, men, shirts)
	assert.ErrorIs(t, err, ErrDuplicateMapping)

	all, err := f.mappings.ListMappings(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, models.StatusAvailable, all[0].Status)
}

func TestMappingUniqueIndexBackstop(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	men := f.category(t, "Men")
	shirts := f.subcategory(t, "Shirts")

	repo := repositories.NewMappingRepository(f.db)
	require.NoError(t, repo.Create(ctx, &models.Mapping{CategoryID: men, SubcategoryID: shirts, Status: models.StatusAvailable}))
	err := repo.Create(ctx, &models.Mapping{CategoryID: men, SubcategoryID: shirts, Status: models.StatusAvailable})
	require.Error(t, err)
	assert.True(t, isDuplicateKey(err))

	blind := f.mappingServiceWith(&pairSnapshotRepository{MappingRepositoryImpl: repo})
	_, err = blind.MapCategoryToSubcategory(ctx, men, shirts)
	assert.ErrorIs(t, err, ErrDuplicateMapping)

	all, err := f.mappings.ListMappings(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestCountActiveMappings(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	men := f.category(t, "Men")
	women := f.category(t, "Women")
	shirts := f.subcategory(t, "Shirts")

	_, err := f.mappings.MapCategoryToSubcategory(ctx, men, shirts)
	require.NoError(t, err)
	m, err := f.mappings.MapCategoryToSubcategory(ctx, women, shirts)
	require.NoError(t, err)
	_, err = f.mappings.SetMappingStatus(ctx, m.ID, models.StatusUnavailable)
	require.NoError(t, err)

	count, err := f.mappings.CountActive(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}
