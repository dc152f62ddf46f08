package main

import (
	"context"
	"fmt"
	"log"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"smartquote/collections"
	"smartquote/config"
	"smartquote/handlers"
	"smartquote/llm"
	"smartquote/pricing"
	"smartquote/storage"
	"smartquote/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	app := pocketbase.New()

	var appStore *store.Store

	// Create collections, seed and repair the stored snapshot on startup
	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		collections.Setup(app)
		if cfg.Storage.Backend == config.BackendPocketBase {
			if err := collections.Seed(app); err != nil {
				log.Printf("Warning: seed data failed: %v", err)
			}
			if err := collections.MigrateSnapshot(app, store.Namespace); err != nil {
				log.Printf("Warning: snapshot migration failed: %v", err)
			}
		}

		snap, err := openSnapshotter(context.Background(), app, cfg)
		if err != nil {
			return err
		}
		appStore = store.New(snap, store.WithLogger(app.Logger()))
		if err := appStore.Load(context.Background()); err != nil {
			return fmt.Errorf("load state: %w", err)
		}
		return se.Next()
	})

	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		engine := newEngine(app, cfg)
		layout := cfg.PDF.Layout()
		s := appStore

		se.Router.GET("/", handlers.HandleHome())
		se.Router.GET("/dashboard", handlers.HandleDashboard(s))

		// ── Business profile ─────────────────────────────────────
		se.Router.GET("/profile", handlers.HandleProfileGet(s))
		se.Router.PUT("/profile", handlers.HandleProfileSave(s))

		// ── Clients ──────────────────────────────────────────────
		se.Router.GET("/clients", handlers.HandleClientList(s))
		se.Router.POST("/clients", handlers.HandleClientCreate(s))
		se.Router.PATCH("/clients/{id}", handlers.HandleClientUpdate(s))
		se.Router.DELETE("/clients/{id}", handlers.HandleClientDelete(s))

		// ── Rate presets ─────────────────────────────────────────
		se.Router.GET("/rates", handlers.HandleRateList(s))
		se.Router.POST("/rates", handlers.HandleRateCreate(s))
		se.Router.PATCH("/rates/{id}", handlers.HandleRateUpdate(s))
		se.Router.DELETE("/rates/{id}", handlers.HandleRateDelete(s))

		// ── Documents (specific paths before {id}) ───────────────
		se.Router.POST("/documents/totals", handlers.HandleTotalsPreview())
		se.Router.GET("/documents/next-invoice-number", handlers.HandleNextInvoiceNumber(s))
		se.Router.GET("/documents", handlers.HandleDocumentList(s))
		se.Router.POST("/documents", handlers.HandleDocumentCreate(s))
		se.Router.GET("/documents/{id}", handlers.HandleDocumentGet(s))
		se.Router.PATCH("/documents/{id}", handlers.HandleDocumentUpdate(s))
		se.Router.DELETE("/documents/{id}", handlers.HandleDocumentDelete(s))

		// Line items
		se.Router.POST("/documents/{id}/line-items", handlers.HandleLineItemAdd(s))
		se.Router.PATCH("/documents/{id}/line-items/{itemId}", handlers.HandleLineItemUpdate(s))
		se.Router.DELETE("/documents/{id}/line-items/{itemId}", handlers.HandleLineItemDelete(s))

		// Export
		se.Router.GET("/documents/{id}/export/{format}", handlers.HandleDocumentExport(s, layout))

		// ── Pricing ──────────────────────────────────────────────
		se.Router.POST("/pricing/recommend", handlers.HandleRecommend(s, engine))
		se.Router.POST("/documents/{id}/recommendation", handlers.HandleAttachRecommendation(s, engine))

		// ── Settings ─────────────────────────────────────────────
		se.Router.GET("/settings/ai", handlers.HandleAISettingsGet(s))
		se.Router.PUT("/settings/ai", handlers.HandleAISettingsSave(s))

		return se.Next()
	})

	if err := app.Start(); err != nil {
		log.Fatal(err)
	}
}

// openSnapshotter picks where the application state is persisted.
func openSnapshotter(ctx context.Context, app core.App, cfg config.Config) (store.Snapshotter, error) {
	switch cfg.Storage.Backend {
	case config.BackendPostgres:
		pool, err := storage.ConnectPostgres(ctx, cfg.Storage.DatabaseURL)
		if err != nil {
			return nil, err
		}
		app.OnTerminate().BindFunc(func(e *core.TerminateEvent) error {
			pool.Close()
			return e.Next()
		})
		return storage.NewPostgresSnapshotter(ctx, pool, store.Namespace)
	case config.BackendMemory:
		return &store.MemorySnapshotter{}, nil
	}
	return storage.NewPocketBaseSnapshotter(app, store.Namespace), nil
}

// newEngine builds the pricing engine. A provider configured through the
// environment takes precedence over the one saved in the AI settings.
func newEngine(app core.App, cfg config.Config) *pricing.Engine {
	opts := []pricing.EngineOption{
		pricing.WithLogger(app.Logger()),
		pricing.WithProviderOptions(llm.WithTimeout(cfg.AI.Timeout)),
	}
	if cfg.AI.Model != "" {
		opts = append(opts, pricing.WithModel(cfg.AI.Model))
	}

	if cfg.AI.Provider != "" && cfg.AI.APIKey != "" {
		providerOpts := []llm.Option{llm.WithTimeout(cfg.AI.Timeout)}
		if cfg.AI.Model != "" {
			providerOpts = append(providerOpts, llm.WithModel(cfg.AI.Model))
		}
		provider, err := llm.New(cfg.AI.Provider, cfg.AI.APIKey, providerOpts...)
		if err != nil {
			log.Printf("Warning: AI provider %q disabled: %v", cfg.AI.Provider, err)
		} else {
			opts = append(opts, pricing.WithProvider(provider))
		}
	}

	return pricing.NewEngine(pricing.MarketFor(cfg.Market), opts...)
}
