package infra

import (
	"fmt"
	"strings"

	"warehouse/internal/config"
	"warehouse/internal/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDatabase establishes a GORM connection backed by pgx and sizes the pool
// from cfg. Driver errors are translated so foreign key violations surface as
// gorm.ErrForeignKeyViolated.
func NewDatabase(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(cfg.DBMaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.DBMaxIdleConns)

	return db, nil
}

// RunMigrations creates or updates every table with AutoMigrate, then applies
// the idempotent SQL patches GORM cannot express.
func RunMigrations(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&model.User{},
		&model.Supplier{},
		&model.Category{},
		&model.Product{},
		&model.ProductQuantity{},
		&model.Order{},
		&model.OrderItem{},
		&model.Warehouse{},
		&model.WarehouseItem{},
	); err != nil {
		return fmt.Errorf("AutoMigrate: %w", err)
	}

	if err := applySchemaPatches(db); err != nil {
		return fmt.Errorf("schema patches: %w", err)
	}
	return nil
}

// applySchemaPatches adds the CHECK constraints backing the column invariants.
// Each statement is guarded by an existence check so re-running is a no-op.
func applySchemaPatches(db *gorm.DB) error {
	stages := make([]string, 0, len(model.Stages))
	for _, s := range model.Stages {
		stages = append(stages, "'"+string(s)+"'")
	}

	patches := []struct{ descr, sql string }{
		{"non-negative stock quantity", `
DO $$ BEGIN
  IF NOT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = 'chk_product_quantities_quantity') THEN
    ALTER TABLE product_quantities
      ADD CONSTRAINT chk_product_quantities_quantity CHECK (quantity >= 0);
  END IF;
END $$`},
		{"order stage enumeration", `
DO $$ BEGIN
  IF NOT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = 'chk_orders_stage') THEN
    ALTER TABLE orders
      ADD CONSTRAINT chk_orders_stage
      CHECK (stage IN (` + strings.Join(stages, ", ") + `));
  END IF;
END $$`},
	}

	for _, p := range patches {
		if err := db.Exec(p.sql).Error; err != nil {
			return fmt.Errorf("patch %q: %w", p.descr, err)
		}
	}
	return nil
}
