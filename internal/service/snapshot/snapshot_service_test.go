package snapshot_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/NastyaGoryachaya/crypto-conversion-service/internal/catalog"
	"github.com/NastyaGoryachaya/crypto-conversion-service/internal/domain"
	"github.com/NastyaGoryachaya/crypto-conversion-service/internal/pkg/clock"
	"github.com/NastyaGoryachaya/crypto-conversion-service/internal/repository/memory"
	"github.com/NastyaGoryachaya/crypto-conversion-service/internal/service/snapshot"
	snapshotmocks "github.com/NastyaGoryachaya/crypto-conversion-service/internal/service/snapshot/mocks"
	"github.com/golang/mock/gomock"
)

var loadedAt = time.Date(2024, 1, 20, 14, 32, 0, 0, time.UTC)

type repoMocks struct {
	source  *snapshotmocks.MockSource
	catalog *snapshotmocks.MockCatalogWriter
	history *snapshotmocks.MockHistorySeeder
}

func setup(t *testing.T) (repoMocks, snapshot.Service) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := repoMocks{
		source:  snapshotmocks.NewMockSource(ctrl),
		catalog: snapshotmocks.NewMockCatalogWriter(ctrl),
		history: snapshotmocks.NewMockHistorySeeder(ctrl),
	}
	svc := snapshot.NewService(m.source, m.catalog, m.history, clock.Fixed(loadedAt), slog.Default())
	return m, svc
}

func defaultData(t *testing.T) catalog.Data {
	t.Helper()
	data, err := catalog.Default().Build()
	if err != nil {
		t.Fatalf("build default snapshot: %v", err)
	}
	return data
}

// Success: реестр и курсы заменены, история засеяна
func TestReload_Success(t *testing.T) {
	m, svc := setup(t)
	data := defaultData(t)

	gomock.InOrder(
		m.source.EXPECT().Load(gomock.Any()).Return(data, nil),
		m.catalog.EXPECT().ReplaceCatalog(gomock.Any(), data.Currencies, data.Rates).Return(nil),
		m.history.EXPECT().SeedConversions(gomock.Any(), data.History).Return(nil),
	)

	res, err := svc.Reload(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Currencies != 4 || res.Rates != 4 || res.History != 3 || !res.LoadedAt.Equal(loadedAt) {
		t.Fatalf("unexpected result: %+v", res)
	}
	last, ok := svc.Last()
	if !ok || last != res {
		t.Fatalf("Last() = %+v, %v", last, ok)
	}
}

// SourceError: снапшот не прочитан, в хранилище ничего не пишем
func TestReload_SourceError(t *testing.T) {
	m, svc := setup(t)

	m.source.EXPECT().Load(gomock.Any()).Return(catalog.Data{}, errors.New("bad yaml"))
	m.catalog.EXPECT().ReplaceCatalog(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	if _, err := svc.Reload(context.Background()); err == nil {
		t.Fatal("expected error, got nil")
	}
	if _, ok := svc.Last(); ok {
		t.Fatal("Last() must be empty after failed reload")
	}
}

// CatalogError: ошибка записи возвращается, история не трогается
func TestReload_CatalogError(t *testing.T) {
	m, svc := setup(t)
	data := defaultData(t)

	m.source.EXPECT().Load(gomock.Any()).Return(data, nil)
	m.catalog.EXPECT().ReplaceCatalog(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("insert failed"))
	m.history.EXPECT().SeedConversions(gomock.Any(), gomock.Any()).Times(0)

	if _, err := svc.Reload(context.Background()); err == nil {
		t.Fatal("expected error, got nil")
	}
	if _, ok := svc.Last(); ok {
		t.Fatal("Last() must be empty after failed reload")
	}
}

// Снапшот с повторной парой отклоняется до записи: старые реестр и курсы остаются
func TestReload_DuplicatePairKeepsPreviousCatalog(t *testing.T) {
	store := memory.NewStore()
	svc := snapshot.NewService(catalog.NewStaticSource(catalog.Default()), store, store, clock.Fixed(loadedAt), slog.Default())
	if _, err := svc.Reload(context.Background()); err != nil {
		t.Fatalf("initial reload: %v", err)
	}

	bad := catalog.Default()
	bad.Currencies[0].Name = "Renamed"
	bad.Rates = append(bad.Rates, bad.Rates[0])
	svc = snapshot.NewService(catalog.NewStaticSource(bad), store, store, clock.Fixed(loadedAt), slog.Default())
	if _, err := svc.Reload(context.Background()); err == nil {
		t.Fatal("expected error, got nil")
	}

	currencies, _ := store.ListCurrencies(context.Background())
	rates, _ := store.ListRates(context.Background())
	if len(rates) != 4 || len(currencies) != 4 || currencies[0].Name != "Bitcoin" {
		t.Fatalf("catalog changed: %+v, %d rates", currencies, len(rates))
	}
}

// SeedError: ошибка истории не валит загрузку
func TestReload_SeedErrorIsNotFatal(t *testing.T) {
	m, svc := setup(t)
	data := defaultData(t)

	m.source.EXPECT().Load(gomock.Any()).Return(data, nil)
	m.catalog.EXPECT().ReplaceCatalog(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	m.history.EXPECT().SeedConversions(gomock.Any(), gomock.Any()).Return(errors.New("conflict"))

	if _, err := svc.Reload(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// Повторная загрузка в память не дублирует историю
func TestReload_MemoryStoreIdempotent(t *testing.T) {
	store := memory.NewStore()
	svc := snapshot.NewService(catalog.NewStaticSource(catalog.Default()), store, store, clock.Fixed(loadedAt), slog.Default())

	for i := 0; i < 2; i++ {
		if _, err := svc.Reload(context.Background()); err != nil {
			t.Fatalf("reload %d: %v", i, err)
		}
	}

	items, err := store.ListConversions(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("expected 3 records, got %d", len(items))
	}
	currencies, _ := store.ListCurrencies(context.Background())
	if len(currencies) != 4 || currencies[3].Kind != domain.KindFiat {
		t.Fatalf("unexpected currencies: %+v", currencies)
	}
}
