package router

import (
	"database/sql"
	"net/http"
	"os"

	restcat "pet-adoption-store/internal/adapters/catalog/rest"
	mem "pet-adoption-store/internal/adapters/storage/memory"
	pg "pet-adoption-store/internal/adapters/storage/postgres"
	"pet-adoption-store/internal/domain/cart"
	"pet-adoption-store/internal/domain/catalog"
	"pet-adoption-store/internal/domain/checkout"
	"pet-adoption-store/internal/domain/customers"
	"pet-adoption-store/internal/domain/orders"
	"pet-adoption-store/internal/domain/payments"
	"pet-adoption-store/internal/domain/session"
	"pet-adoption-store/internal/middleware"
	"pet-adoption-store/internal/platform/logger"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

type Options struct {
	Log logger.Logger // puede ser nil

	// Opcional: si viene, usa Postgres. Si no, mira env y cae a in-memory.
	DB *sql.DB

	// Opcional: repos ya armados (los tests los usan para sembrar datos).
	Backends *Backends
}

// Backends agrupa los repos que el router necesita, venga de donde venga
// (postgres, in-memory, o el catálogo remoto REST).
type Backends struct {
	Pets      catalog.Repository
	Customers customers.Repository
	Payments  payments.Repository
	Orders    orders.Repository
}

func NewRouter(opts Options) http.Handler {
	log := opts.Log
	if log == nil {
		log = logger.Nop{}
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)

	sessions := session.NewStore()
	r.Use(middleware.SessionContext(sessions))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	b := resolveBackends(opts)

	carts := cart.NewStore()
	carts.Subscribe(func(customerID string, items []cart.Item) {
		log.Debug("cart updated", map[string]any{"customer_id": customerID, "items": len(items)})
	})

	customersSvc := customers.NewService(b.Customers)
	ordersSvc := orders.NewService(b.Orders, b.Pets, b.Payments)
	orch := checkout.NewOrchestrator(b.Payments, b.Orders, b.Pets, carts, log)

	catalog.RegisterRoutes(r, b.Pets)
	customers.RegisterRoutes(r, customersSvc, sessions, carts)
	cart.RegisterRoutes(r, carts, b.Pets)
	payments.RegisterRoutes(r, b.Payments)
	checkout.RegisterRoutes(r, orch)
	orders.RegisterRoutes(r, ordersSvc)

	return r
}

// resolveBackends elige el origen de datos en este orden:
// Backends explícitos > DB explícita > DB_DSN > CATALOG_REST_URL > in-memory.
func resolveBackends(opts Options) Backends {
	if opts.Backends != nil {
		return *opts.Backends
	}

	db := opts.DB
	if db == nil {
		if dsn := os.Getenv("DB_DSN"); dsn != "" {
			opened, err := pg.Open(dsn)
			if err == nil {
				db = opened
			}
		}
	}

	if db != nil {
		return Backends{
			Pets:      pg.NewCatalogRepo(db),
			Customers: pg.NewCustomersRepo(db),
			Payments:  pg.NewPaymentsRepo(db),
			Orders:    pg.NewOrdersRepo(db),
		}
	}

	if baseURL := os.Getenv("CATALOG_REST_URL"); baseURL != "" {
		client, err := restcat.NewClient(restcat.Config{
			BaseURL: baseURL,
			APIKey:  os.Getenv("CATALOG_REST_KEY"),
		})
		if err == nil {
			return Backends{
				Pets:      restcat.NewCatalogRepo(client),
				Customers: restcat.NewCustomersRepo(client),
				Payments:  restcat.NewPaymentsRepo(client),
				Orders:    restcat.NewOrdersRepo(client),
			}
		}
	}

	return Backends{
		Pets:      mem.NewCatalogRepo(),
		Customers: mem.NewCustomersRepo(),
		Payments:  mem.NewPaymentsRepo(),
		Orders:    mem.NewOrdersRepo(),
	}
}
