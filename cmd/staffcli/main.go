package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	restcat "pet-adoption-store/internal/adapters/catalog/rest"
	pg "pet-adoption-store/internal/adapters/storage/postgres"
	"pet-adoption-store/internal/domain/catalog"
	"pet-adoption-store/internal/domain/customers"
	"pet-adoption-store/internal/domain/employees"
	"pet-adoption-store/internal/domain/orders"
	"pet-adoption-store/internal/domain/payments"
	"pet-adoption-store/internal/staffcli"
)

func main() {
	if len(os.Args) != 4 || os.Args[1] != "login" {
		fmt.Println("Usage: staffcli login <email> <password>")
		os.Exit(2)
	}
	email, password := os.Args[2], os.Args[3]

	cli, err := buildCLI()
	if err != nil {
		fmt.Fprintf(os.Stderr, "startup error: %v\n", err)
		os.Exit(1)
	}

	if err := cli.Run(context.Background(), email, password); err != nil {
		if errors.Is(err, employees.ErrBadCredentials) {
			fmt.Fprintln(os.Stderr, "Login failed: invalid email or password.")
			os.Exit(1)
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// buildCLI arma los services contra Postgres (DB_DSN) o contra el
// catálogo remoto REST (CATALOG_REST_URL). El CLI no tiene modo in-memory:
// sin backend real no hay nada que administrar.
func buildCLI() (*staffcli.CLI, error) {
	var (
		petsRepo catalog.Repository
		custRepo customers.Repository
		ordRepo  orders.Repository
		payRepo  payments.Repository
		empRepo  employees.Repository
	)

	switch {
	case os.Getenv("DB_DSN") != "":
		db, err := pg.Open(os.Getenv("DB_DSN"))
		if err != nil {
			return nil, err
		}
		petsRepo = pg.NewCatalogRepo(db)
		custRepo = pg.NewCustomersRepo(db)
		ordRepo = pg.NewOrdersRepo(db)
		payRepo = pg.NewPaymentsRepo(db)
		empRepo = pg.NewEmployeesRepo(db)

	case os.Getenv("CATALOG_REST_URL") != "":
		client, err := restcat.NewClient(restcat.Config{
			BaseURL: os.Getenv("CATALOG_REST_URL"),
			APIKey:  os.Getenv("CATALOG_REST_KEY"),
		})
		if err != nil {
			return nil, err
		}
		petsRepo = restcat.NewCatalogRepo(client)
		custRepo = restcat.NewCustomersRepo(client)
		ordRepo = restcat.NewOrdersRepo(client)
		payRepo = restcat.NewPaymentsRepo(client)
		empRepo = restcat.NewEmployeesRepo(client)

	default:
		return nil, errors.New("set DB_DSN or CATALOG_REST_URL")
	}

	petsSvc := catalog.NewService(petsRepo)
	custSvc := customers.NewService(custRepo)
	ordSvc := orders.NewService(ordRepo, petsRepo, payRepo)
	empSvc := employees.NewService(empRepo)

	return staffcli.New(os.Stdin, os.Stdout, petsSvc, custSvc, ordSvc, empSvc), nil
}
