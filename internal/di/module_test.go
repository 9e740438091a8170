package di

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"github.com/polkiloo/salesorders/internal/adapter/extraction"
	"github.com/polkiloo/salesorders/internal/adapter/matcher"
	"github.com/polkiloo/salesorders/internal/app"
	"github.com/polkiloo/salesorders/internal/config"
	"github.com/polkiloo/salesorders/internal/domain/repository"
	"github.com/polkiloo/salesorders/internal/storage/postgres"
	"github.com/polkiloo/salesorders/internal/test"
)

func TestModuleComposesGraphWithReplacements(t *testing.T) {
	cfg := &config.Config{
		RunAddress:               ":0",
		DatabaseURI:              "postgres://stub",
		ExtractionServiceAddress: "http://localhost",
		MatcherServiceAddress:    "http://localhost",
		UploadDir:                t.TempDir(),
		MatchTimeout:             time.Second,
		ExtractionTimeout:        time.Second,
		MaxUploadSize:            1 << 20,
		ShutdownTimeout:          time.Millisecond,
		AllowedOrigins:           []string{"*"},
		LogLevel:                 "info",
	}
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	repo := test.NewMemoryRepository()

	var (
		facade *app.SalesOrderFacade
		engine *gin.Engine
	)
	fxApp := fx.New(
		fx.NopLogger,
		fx.Supply(context.Background()),
		Module(
			fx.Replace(cfg),
			fx.Replace(logger),
			fx.Replace(&postgres.Storage{}),
			fx.Replace(repository.OrderRepository(repo)),
			fx.Replace(repository.LineItemRepository(repo)),
			fx.Replace(extraction.Client(&test.ExtractorStub{})),
			fx.Replace(matcher.Client(&test.MatcherStub{})),
		),
		fx.Populate(&facade, &engine),
	)

	if err := fxApp.Err(); err != nil {
		t.Fatalf("fx app returned error: %v", err)
	}
	t.Cleanup(func() { _ = fxApp.Stop(context.Background()) })
	if facade == nil || engine == nil {
		t.Fatal("expected facade and router instances")
	}
	if got := facade.Catalog(); len(got) != 0 {
		t.Fatalf("expected empty catalog without a file, got %d entries", len(got))
	}
}
