// seed crea la sucursal inicial y su usuario administrador.
//
// Uso: go run ./cmd/seed -branch "San Martín Centro" -email admin@sucursal.mx -password <pass>
// La conexión a la BD se toma de la configuración (DATABASE_URL o DB_*).
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/sanmartincomanda/inventario/internal/application/usecase"
	"github.com/sanmartincomanda/inventario/internal/infrastructure/postgres"
	"github.com/sanmartincomanda/inventario/pkg/config"
)

func main() {
	branchName := flag.String("branch", "", "nombre de la sucursal a crear (o existente)")
	email := flag.String("email", "", "email del usuario administrador")
	password := flag.String("password", "", "contraseña del usuario (mínimo 8 caracteres)")
	flag.Parse()

	if *branchName == "" || *email == "" || *password == "" {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fail("cargar configuración: %v", err)
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fail("conexión a PostgreSQL: %v", err)
	}
	defer pool.Close()

	branchRepo := postgres.NewBranchRepository(pool)
	branchUC := usecase.NewBranchUseCase(branchRepo)
	authUC := usecase.NewAuthUseCase(
		postgres.NewUserRepository(pool), branchRepo,
		cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.Expiration,
	)

	branch, err := branchRepo.GetByName(*branchName)
	if err != nil {
		fail("buscar sucursal: %v", err)
	}
	if branch == nil {
		branch, err = branchUC.Create(ctx, *branchName)
		if err != nil {
			fail("crear sucursal: %v", err)
		}
		fmt.Printf("sucursal creada: %s (%s)\n", branch.Name, branch.ID)
	} else {
		fmt.Printf("sucursal existente: %s (%s)\n", branch.Name, branch.ID)
	}

	user, err := authUC.Register(ctx, *email, *password, branch.ID)
	if err != nil {
		fail("crear usuario: %v", err)
	}
	fmt.Printf("usuario creado: %s (%s)\n", user.Email, user.ID)
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
