// Pasarela - Localized API Aggregation Backends
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pasarela

package products

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "github.com/duckdb/duckdb-go/v2"
	_ "github.com/lib/pq"

	"github.com/tomtom215/pasarela/internal/config"
	"github.com/tomtom215/pasarela/internal/logging"
	"github.com/tomtom215/pasarela/internal/metrics"
)

// Supported database/sql drivers.
const (
	DriverDuckDB   = "duckdb"
	DriverPostgres = "postgres"
)

// timestampLayout renders fecha_creacion and fecha_actualizacion.
const timestampLayout = "2006-01-02 15:04:05"

// ErrProductNotFound is returned when no row has the requested id.
var ErrProductNotFound = errors.New("product not found")

// schema holds the DDL per driver. Both use $n placeholders at query time.
var schema = map[string][]string{
	DriverDuckDB: {
		`CREATE SEQUENCE IF NOT EXISTS productos_id_seq START 1`,
		`CREATE TABLE IF NOT EXISTS productos (
			id BIGINT PRIMARY KEY DEFAULT nextval('productos_id_seq'),
			nombre VARCHAR NOT NULL,
			descripcion VARCHAR NOT NULL DEFAULT '',
			precio DOUBLE NOT NULL CHECK (precio >= 0),
			stock BIGINT NOT NULL DEFAULT 0 CHECK (stock >= 0),
			categoria VARCHAR NOT NULL DEFAULT 'General',
			fecha_creacion TIMESTAMP NOT NULL,
			fecha_actualizacion TIMESTAMP NOT NULL
		)`,
	},
	DriverPostgres: {
		`CREATE TABLE IF NOT EXISTS productos (
			id BIGSERIAL PRIMARY KEY,
			nombre TEXT NOT NULL,
			descripcion TEXT NOT NULL DEFAULT '',
			precio DOUBLE PRECISION NOT NULL CHECK (precio >= 0),
			stock BIGINT NOT NULL DEFAULT 0 CHECK (stock >= 0),
			categoria TEXT NOT NULL DEFAULT 'General',
			fecha_creacion TIMESTAMP NOT NULL,
			fecha_actualizacion TIMESTAMP NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_productos_categoria ON productos (categoria)`,
	},
}

const selectColumns = `id, nombre, descripcion, precio, stock, categoria, fecha_creacion, fecha_actualizacion`

// Store is the product catalog on a database/sql pool. Every method is a
// single atomic statement.
type Store struct {
	db     *sql.DB
	driver string
	now    func() time.Time
}

// Open connects to the configured database, creates the schema and seeds
// an empty catalog when cfg.Seed is set.
func Open(ctx context.Context, cfg config.ProductsConfig) (*Store, error) {
	if _, ok := schema[cfg.Driver]; !ok {
		return nil, fmt.Errorf("unsupported products driver %q", cfg.Driver)
	}

	if cfg.Driver == DriverDuckDB && !isMemoryDSN(cfg.DSN) {
		dir := filepath.Dir(strings.SplitN(cfg.DSN, "?", 2)[0])
		if dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0o750); err != nil {
				return nil, fmt.Errorf("failed to create database directory %s: %w", dir, err)
			}
		}
	}

	db, err := sql.Open(cfg.Driver, cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s database: %w", cfg.Driver, err)
	}
	if cfg.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	db.SetConnMaxIdleTime(5 * time.Minute)

	s := &Store{db: db, driver: cfg.Driver, now: time.Now}

	if err := s.migrate(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	if cfg.Seed {
		if err := s.seed(ctx); err != nil {
			_ = db.Close()
			return nil, err
		}
	}

	total, err := s.Count(ctx)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	metrics.ProductsTotal.Set(float64(total))

	logging.Info().
		Str("driver", cfg.Driver).
		Int64("products", total).
		Msg("Product store ready")
	return s, nil
}

func isMemoryDSN(dsn string) bool {
	return dsn == "" || strings.HasPrefix(dsn, ":memory:")
}

// Close releases the pool.
func (s *Store) Close() error {
	return s.db.Close()
}

// Ping checks connectivity for /health.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Driver returns the database/sql driver name.
func (s *Store) Driver() string {
	return s.driver
}

func (s *Store) migrate(ctx context.Context) error {
	for _, stmt := range schema[s.driver] {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
	}
	return nil
}

func (s *Store) seed(ctx context.Context) error {
	n, err := s.Count(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	for _, p := range seedProducts {
		if _, err := s.Create(ctx, p); err != nil {
			return fmt.Errorf("failed to seed products: %w", err)
		}
	}
	logging.Info().Int("count", len(seedProducts)).Msg("Seeded sample products")
	return nil
}

// observe records the duration and outcome of one statement.
func (s *Store) observe(op string, start time.Time, err error) {
	if errors.Is(err, ErrProductNotFound) {
		err = nil
	}
	metrics.RecordDBQuery(s.driver, op, time.Since(start), err)
}

// Count returns the number of products.
func (s *Store) Count(ctx context.Context) (n int64, err error) {
	start := time.Now()
	defer func() { s.observe("count", start, err) }()

	err = s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM productos`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("failed to count products: %w", err)
	}
	return n, nil
}

// Create inserts a product and returns its generated id.
func (s *Store) Create(ctx context.Context, f Fields) (id int64, err error) {
	start := time.Now()
	defer func() { s.observe("insert", start, err) }()

	now := s.now().UTC().Truncate(time.Second)
	err = s.db.QueryRowContext(ctx,
		`INSERT INTO productos (nombre, descripcion, precio, stock, categoria, fecha_creacion, fecha_actualizacion)
		 VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`,
		f.Nombre, f.Descripcion, f.Precio, f.Stock, f.Categoria, now, now,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to insert product: %w", err)
	}
	metrics.ProductsTotal.Inc()
	return id, nil
}

// List returns products, optionally of one category, in the requested
// order. Ties are broken by id.
func (s *Store) List(ctx context.Context, opts ListOptions) (_ []Producto, err error) {
	start := time.Now()
	defer func() { s.observe("list", start, err) }()

	opts = opts.normalize()
	query := `SELECT ` + selectColumns + ` FROM productos`
	var args []interface{}
	if opts.Categoria != "" {
		query += ` WHERE categoria = $1`
		args = append(args, opts.Categoria)
	}
	// Column and direction come from whitelists, never from raw input.
	query += fmt.Sprintf(` ORDER BY %s %s, id ASC`, opts.Orden, opts.Dir)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	defer rows.Close()

	productos := make([]Producto, 0)
	for rows.Next() {
		p, err := scanProducto(rows)
		if err != nil {
			return nil, err
		}
		productos = append(productos, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate products: %w", err)
	}
	return productos, nil
}

// Get returns one product or ErrProductNotFound.
func (s *Store) Get(ctx context.Context, id int64) (_ *Producto, err error) {
	start := time.Now()
	defer func() { s.observe("get", start, err) }()

	row := s.db.QueryRowContext(ctx, `SELECT `+selectColumns+` FROM productos WHERE id = $1`, id)
	p, err := scanProducto(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

// Update replaces every mutable field and refreshes fecha_actualizacion.
func (s *Store) Update(ctx context.Context, id int64, f Fields) (err error) {
	start := time.Now()
	defer func() { s.observe("update", start, err) }()

	res, err := s.db.ExecContext(ctx,
		`UPDATE productos
		 SET nombre = $1, descripcion = $2, precio = $3, stock = $4, categoria = $5, fecha_actualizacion = $6
		 WHERE id = $7`,
		f.Nombre, f.Descripcion, f.Precio, f.Stock, f.Categoria, s.now().UTC().Truncate(time.Second), id,
	)
	if err != nil {
		return fmt.Errorf("failed to update product %d: %w", id, err)
	}
	return affectedOne(res)
}

// Delete removes a product.
func (s *Store) Delete(ctx context.Context, id int64) (err error) {
	start := time.Now()
	defer func() { s.observe("delete", start, err) }()

	res, err := s.db.ExecContext(ctx, `DELETE FROM productos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete product %d: %w", id, err)
	}
	if err := affectedOne(res); err != nil {
		return err
	}
	metrics.ProductsTotal.Dec()
	return nil
}

// Stats aggregates the catalog overall and per category.
func (s *Store) Stats(ctx context.Context) (_ *Estadisticas, err error) {
	start := time.Now()
	defer func() { s.observe("stats", start, err) }()

	var (
		g              Generales
		avg, low, high sql.NullFloat64
	)
	err = s.db.QueryRowContext(ctx, `
		SELECT COUNT(*), AVG(precio), CAST(COALESCE(SUM(stock), 0) AS BIGINT), MIN(precio), MAX(precio)
		FROM productos`,
	).Scan(&g.Total, &avg, &g.StockTotal, &low, &high)
	if err != nil {
		return nil, fmt.Errorf("failed to compute product stats: %w", err)
	}
	g.PrecioPromedio = nullFloat(avg)
	g.PrecioMin = nullFloat(low)
	g.PrecioMax = nullFloat(high)

	rows, err := s.db.QueryContext(ctx, `
		SELECT categoria, COUNT(*), AVG(precio), CAST(COALESCE(SUM(stock), 0) AS BIGINT)
		FROM productos
		GROUP BY categoria
		ORDER BY categoria`)
	if err != nil {
		return nil, fmt.Errorf("failed to compute category stats: %w", err)
	}
	defer rows.Close()

	porCategoria := make([]CategoriaResumen, 0)
	for rows.Next() {
		var c CategoriaResumen
		if err := rows.Scan(&c.Categoria, &c.Cantidad, &c.PrecioPromedio, &c.StockTotal); err != nil {
			return nil, fmt.Errorf("failed to scan category stats: %w", err)
		}
		porCategoria = append(porCategoria, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate category stats: %w", err)
	}

	return &Estadisticas{Generales: g, PorCategoria: porCategoria}, nil
}

// Categories returns the distinct categories, sorted.
func (s *Store) Categories(ctx context.Context) (_ []string, err error) {
	start := time.Now()
	defer func() { s.observe("categories", start, err) }()

	rows, err := s.db.QueryContext(ctx, `SELECT DISTINCT categoria FROM productos ORDER BY categoria`)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	defer rows.Close()

	categorias := make([]string, 0)
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categorias = append(categorias, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate categories: %w", err)
	}
	return categorias, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanProducto(row rowScanner) (*Producto, error) {
	var (
		p                   Producto
		creada, actualizada time.Time
	)
	err := row.Scan(&p.ID, &p.Nombre, &p.Descripcion, &p.Precio, &p.Stock, &p.Categoria, &creada, &actualizada)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan product: %w", err)
	}
	p.FechaCreacion = creada.UTC().Format(timestampLayout)
	p.FechaActualizacion = actualizada.UTC().Format(timestampLayout)
	return &p, nil
}

func affectedOne(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return ErrProductNotFound
	}
	return nil
}

func nullFloat(n sql.NullFloat64) *float64 {
	if !n.Valid {
		return nil
	}
	v := n.Float64
	return &v
}
