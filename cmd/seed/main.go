package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/AngelSpinazzola/hardware-store-backend/config"
	"github.com/AngelSpinazzola/hardware-store-backend/models"
	"github.com/AngelSpinazzola/hardware-store-backend/services"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

// init loads environment variables
func init() {
	_ = godotenv.Load()
}

// main bootstraps the database: schema, support objects, a super admin and a
// demo catalog. Standalone CLI tool, not part of the server.
// Usage: go run cmd/seed/main.go [--with-catalog]
func main() {
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println("HARDWARE STORE - Database Seeder")
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println()

	config.InitDB()
	log.Println("✓ Connected to database")

	migrateSchema()
	createSupportObjects()

	email, password, name := getAdminCredentials()
	createSuperAdmin(email, password, name)

	if hasFlag("--with-catalog") {
		seedCatalog()
	}

	fmt.Println()
	fmt.Println("Next steps:")
	fmt.Println("1. Start the server: go run main.go")
	fmt.Println("2. Login at POST /api/v1/admin/auth/login with email and password")
	fmt.Println("3. Browse the storefront at GET /api/v1/store/products")
	fmt.Println()
}

func hasFlag(flag string) bool {
	for _, arg := range os.Args[1:] {
		if arg == flag {
			return true
		}
	}
	return false
}

func migrateSchema() {
	err := config.StoreGorm.AutoMigrate(
		&models.Product{},
		&models.User{},
		&models.Address{},
		&models.Order{},
		&models.OrderItem{},
		&models.Payment{},
		&models.Admin{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate schema: %v", err)
	}
	log.Println("✓ Schema migrated")
}

// createSupportObjects creates the objects GORM does not manage: the order
// number sequence and the login events table used by the pgx paths.
func createSupportObjects() {
	ctx := context.Background()

	statements := []string{
		`CREATE SEQUENCE IF NOT EXISTS order_number_seq START 1`,
		`CREATE TABLE IF NOT EXISTS login_events (
			id UUID PRIMARY KEY,
			user_id UUID NOT NULL,
			logged_in_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			ip_address TEXT,
			user_agent TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_login_events_user ON login_events (user_id, logged_in_at DESC)`,
	}

	for _, stmt := range statements {
		if _, err := config.StorePool.Exec(ctx, stmt); err != nil {
			log.Fatalf("Failed to create support object: %v", err)
		}
	}
	log.Println("✓ Support objects created (order_number_seq, login_events)")
}

func createSuperAdmin(email, password, name string) {
	var existingAdmin models.Admin
	if err := config.StoreGorm.Where("email = ?", email).First(&existingAdmin).Error; err == nil {
		fmt.Printf("⚠️  Admin with email '%s' already exists, skipping\n", email)
		return
	} else if err != gorm.ErrRecordNotFound {
		log.Fatalf("Database error: %v", err)
	}

	authService := services.GetAdminAuthService()
	if !authService.ValidatePassword(password) {
		log.Fatal("Password must be at least 8 characters")
	}
	passwordHash, err := authService.HashPassword(password)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}

	superAdmin := models.Admin{
		ID:           uuid.Must(uuid.NewV7()),
		Email:        email,
		Name:         name,
		PasswordHash: passwordHash,
		Role:         "super_admin",
		Status:       "active",
	}

	if err := config.StoreGorm.Create(&superAdmin).Error; err != nil {
		log.Fatalf("Failed to create super admin: %v", err)
	}

	fmt.Println()
	fmt.Println("✅ Super Admin created")
	fmt.Printf("ID:    %s\n", superAdmin.ID)
	fmt.Printf("Email: %s\n", superAdmin.Email)
}

// getAdminCredentials prompts for admin details
func getAdminCredentials() (email, password, name string) {
	fmt.Println("Enter Super Admin Details:")
	fmt.Println()

	for {
		fmt.Print("Email: ")
		fmt.Scanln(&email)
		if email != "" && strings.Contains(email, "@") {
			break
		}
		fmt.Println("❌ Enter a valid email")
	}

	for {
		fmt.Print("Password (min 8 chars): ")
		fmt.Scanln(&password)
		if len(password) >= 8 {
			break
		}
		fmt.Println("❌ Password too short")
	}

	for {
		fmt.Print("Name: ")
		fmt.Scanln(&name)
		if name != "" {
			break
		}
		fmt.Println("❌ Name cannot be empty")
	}

	return email, password, name
}

func strPtr(s string) *string { return &s }

// seedCatalog loads a small demo catalog covering every taxonomy category.
func seedCatalog() {
	products := []models.Product{
		{
			Name: "GeForce RTX 4090 24GB", Description: "Placa de video tope de gama",
			CategoryName: "Placas de Video", Brand: strPtr("ASUS"),
			Price: 2850000, Stock: 4, Status: "Active", Specs: []byte(`{"memoria": "24GB GDDR6X"}`),
		},
		{
			Name: "GeForce RTX 4070 Ti 12GB", Description: "Placa de video gama alta",
			CategoryName: "Placas de Video", Brand: strPtr("MSI"),
			Price: 1650000.85, Stock: 9, Status: "Active", Specs: []byte(`{"memoria": "12GB GDDR6X"}`),
		},
		{
			Name: "Radeon RX 7900 XTX 24GB", Description: "Placa de video gama alta",
			CategoryName: "Placas de Video", Brand: strPtr("Sapphire"),
			Price: 2100000, Stock: 3, Status: "Active", Specs: []byte(`{"memoria": "24GB GDDR6"}`),
		},
		{
			Name: "Mother Z790 Gaming WiFi", Description: "Socket LGA1700 DDR5",
			CategoryName: "Mothers", Brand: strPtr("Gigabyte"), Platform: strPtr("LGA1700"),
			Price: 520000, Stock: 12, Status: "Active", Specs: []byte(`{"socket": "LGA1700"}`),
		},
		{
			Name: "Mother B650M AM5", Description: "Socket AM5 DDR5",
			CategoryName: "Mothers", Brand: strPtr("ASRock"), Platform: strPtr("AM5"),
			Price: 310000, Stock: 15, Status: "Active", Specs: []byte(`{"socket": "AM5"}`),
		},
		{
			Name: "Intel Core i9-14900K", Description: "24 núcleos LGA1700",
			CategoryName: "Procesadores", Brand: strPtr("Intel"),
			Price: 980000, Stock: 7, Status: "Active", Specs: []byte(`{"nucleos": 24}`),
		},
		{
			Name: "AMD Ryzen 7 7800X3D", Description: "8 núcleos AM5 con 3D V-Cache",
			CategoryName: "Procesadores", Brand: strPtr("AMD"),
			Price: 750000, Stock: 11, Status: "Active", Specs: []byte(`{"nucleos": 8}`),
		},
		{
			Name: "Memoria DDR5 32GB 6000MHz", Description: "Kit 2x16GB",
			CategoryName: "Memorias RAM", Brand: strPtr("Corsair"),
			Price: 240000, Stock: 20, Status: "Active", Specs: []byte(`{"velocidad": "6000MHz"}`),
		},
		{
			Name: "Memoria DDR4 16GB 3200MHz", Description: "Kit 2x8GB",
			CategoryName: "Memorias RAM", Brand: strPtr("Kingston"),
			Price: 95000, Stock: 30, Status: "Active", Specs: []byte(`{"velocidad": "3200MHz"}`),
		},
		{
			Name: "SSD NVMe 2TB Gen4", Description: "Lectura 7000MB/s",
			CategoryName: "Almacenamiento", Brand: strPtr("Samsung"),
			Price: 380000, Stock: 16, Status: "Active", Specs: []byte(`{"formato": "M.2"}`),
		},
		{
			Name: "HDD 4TB 7200RPM", Description: "Disco mecánico para almacenamiento masivo",
			CategoryName: "Almacenamiento", Brand: strPtr("Western Digital"),
			Price: 160000, Stock: 8, Status: "Active", Specs: []byte(`{"formato": "3.5\""}`),
		},
	}

	created := 0
	for _, p := range products {
		var existing models.Product
		err := config.StoreGorm.Where("name = ?", p.Name).First(&existing).Error
		if err == nil {
			continue
		}
		if err != gorm.ErrRecordNotFound {
			log.Fatalf("Database error: %v", err)
		}
		if err := config.StoreGorm.Create(&p).Error; err != nil {
			log.Fatalf("Failed to seed product %q: %v", p.Name, err)
		}
		created++
	}
	log.Printf("✓ Demo catalog seeded (%d new products)", created)
}
