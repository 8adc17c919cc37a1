// seed puebla la base de datos con datos de demostración: usuarios del blog
// con posts y comentarios, proveedores con productos y stock, y pedidos de
// ejemplo para el resumen. Borra los datos existentes antes de insertar.
//
// Uso: go run ./cmd/seed
package main

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Mercado-api/internal/domain/entity"
	"github.com/jhoicas/Mercado-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Mercado-api/pkg/config"
	"github.com/jhoicas/Mercado-api/pkg/logger"
)

// demoPassword es el password de todos los usuarios de demostración.
const demoPassword = "demo12345"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info", Service: cfg.App.Name + "-seed"})

	if err := postgres.Migrate(cfg.DB.ConnectionString(), cfg.Uploads.MigrationsDir); err != nil {
		log.Fatal().Err(err).Msg("migraciones de base de datos")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	// Limpiar datos anteriores respetando las FKs
	for _, table := range []string{"comments", "posts", "orders", "product_stocks", "products", "suppliers", "users"} {
		if _, err := pool.Exec(ctx, "DELETE FROM "+table); err != nil {
			log.Fatal().Err(err).Str("table", table).Msg("limpiando tabla")
		}
	}

	userRepo := postgres.NewUserRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	stockRepo := postgres.NewStockRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)
	postRepo := postgres.NewPostRepository(pool)
	commentRepo := postgres.NewCommentRepository(pool)

	hash, err := bcrypt.GenerateFromPassword([]byte(demoPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal().Err(err).Msg("hash de password")
	}

	newUser := func(name, email, role string, points int64) *entity.User {
		now := time.Now().UTC()
		u := &entity.User{
			ID:           uuid.NewString(),
			Name:         name,
			Email:        email,
			PasswordHash: string(hash),
			Role:         role,
			Points:       points,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if err := userRepo.Create(u); err != nil {
			log.Fatal().Err(err).Str("email", email).Msg("creando usuario")
		}
		return u
	}

	admin := newUser("Admin", "admin@mercado.local", entity.RoleAdmin, 1000)
	tachyon := newUser("Tachyon", "tachyon@gmail.com", entity.RoleUser, 500)
	firefly := newUser("Firefly", "ff@gmail.com", entity.RoleUser, 300)
	cafe := newUser("Cafe", "nodecaf@gmail.com", entity.RoleUser, 200)

	// Timestamps crecientes para que el orden de creación sea estable
	clock := time.Now().UTC().Add(-time.Hour)
	tick := func() time.Time {
		clock = clock.Add(time.Minute)
		return clock
	}

	newPost := func(author *entity.User, title, content string, comments ...*entity.Comment) {
		now := tick()
		post := &entity.Post{
			ID:        uuid.NewString(),
			UserID:    author.ID,
			Title:     title,
			Content:   content,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := postRepo.Create(post); err != nil {
			log.Fatal().Err(err).Str("title", title).Msg("creando post")
		}
		for _, c := range comments {
			c.ID = uuid.NewString()
			c.PostID = post.ID
			c.CreatedAt = tick()
			if err := commentRepo.Create(c); err != nil {
				log.Fatal().Err(err).Msg("creando comentario")
			}
		}
	}
	comment := func(author *entity.User, content string) *entity.Comment {
		return &entity.Comment{UserID: author.ID, Content: content}
	}

	newPost(tachyon, "Tachyon's Transmigration", "This is my adventure throughout the whole universe...",
		comment(firefly, "I wish I could travel too."),
		comment(cafe, "Looks like you're having fun."),
		comment(cafe, "Stop stealing my coffee."),
	)
	newPost(firefly, "Thank you for always being by side.", "The two of you always being by my side in the Hospital...",
		comment(cafe, "I'll always be there."),
		comment(tachyon, "I promise I'll find a cure."),
	)
	newPost(cafe, "List of Greatest Coffee in the World", "Mine",
		comment(tachyon, "Truth"),
		comment(firefly, "You're always so confident."),
	)
	newPost(cafe, "View from Zenith", "This is from the top of the mountain located in...",
		comment(firefly, "I wish I could go there too."),
		comment(tachyon, "Someday, the three of us will."),
	)

	// Proveedores: usuario con rol supplier + registro de proveedor
	newSupplier := func(name, email string) *entity.Supplier {
		u := newUser(name, email, entity.RoleSupplier, 0)
		s := &entity.Supplier{
			ID:        uuid.NewString(),
			UserID:    u.ID,
			Name:      name,
			CreatedAt: time.Now().UTC(),
		}
		if err := supplierRepo.Create(s); err != nil {
			log.Fatal().Err(err).Str("name", name).Msg("creando proveedor")
		}
		return s
	}
	acme := newSupplier("Acme Distribución", "ventas@acme.local")
	andina := newSupplier("Comercial Andina", "contacto@andina.local")

	newProduct := func(name, description, price string) *entity.Product {
		now := time.Now().UTC()
		p := &entity.Product{
			ID:          uuid.NewString(),
			Name:        name,
			Description: description,
			Price:       decimal.RequireFromString(price),
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if err := productRepo.Create(p); err != nil {
			log.Fatal().Err(err).Str("name", name).Msg("creando producto")
		}
		return p
	}
	coffee := newProduct("Café de origen 500g", "Café de especialidad tostado medio", "32000")
	grinder := newProduct("Molino manual", "Molino de muelas cónicas de acero", "145000")
	kettle := newProduct("Tetera de cuello de ganso", "Tetera de 1L para métodos de filtrado", "98000")

	stocks := []struct {
		product  *entity.Product
		supplier *entity.Supplier
		quantity int64
	}{
		{coffee, acme, 120},
		{coffee, andina, 80},
		{grinder, acme, 25},
		{kettle, andina, 40},
	}
	for _, s := range stocks {
		if err := stockRepo.IncrementUpsert(s.product.ID, s.supplier.ID, s.quantity); err != nil {
			log.Fatal().Err(err).Msg("creando stock")
		}
	}

	orders := []struct {
		user     *entity.User
		product  *entity.Product
		quantity int64
	}{
		{tachyon, coffee, 2},
		{tachyon, coffee, 1},
		{tachyon, grinder, 1},
		{firefly, coffee, 3},
		{firefly, kettle, 1},
		{cafe, coffee, 5},
	}
	for _, o := range orders {
		order := &entity.Order{
			ID:        uuid.NewString(),
			UserID:    o.user.ID,
			ProductID: o.product.ID,
			Quantity:  o.quantity,
			CreatedAt: tick(),
		}
		if err := orderRepo.Create(order); err != nil {
			log.Fatal().Err(err).Msg("creando pedido")
		}
	}

	log.Info().
		Str("admin", admin.Email).
		Str("password", demoPassword).
		Msg("base de datos poblada")
}
