package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"
	"github.com/vfg2006/lead-intelligence-api/internal/config"
	"github.com/vfg2006/lead-intelligence-api/pkg/log"
)

const retryBaseDelay = 500 * time.Millisecond

// Conn é a conexão usada pelos repositórios de leads e follow-ups
type Conn interface {
	Queryer
	Close() error
	Ping(context.Context) error
	RunInTransaction(context.Context, func(Queryer) error) error
}

type Connection struct {
	*sql.DB
}

// NewConnection abre o pool e aguarda o banco responder. Em deploys o banco pode subir
// depois da API, por isso o ping é repetido com espera crescente.
func NewConnection(ctx context.Context, cfg config.Database) (*Connection, error) {
	db, err := sql.Open("postgres", cfg.DSN)
	if err != nil {
		return nil, err
	}

	if cfg.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		db.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}

	conn := &Connection{DB: db}
	if err := conn.waitReady(ctx, max(cfg.ConnectRetries, 1)); err != nil {
		db.Close()
		return nil, err
	}

	return conn, nil
}

func (c *Connection) waitReady(ctx context.Context, attempts int) error {
	delay := retryBaseDelay

	var err error
	for attempt := 1; attempt <= attempts; attempt++ {
		if err = c.DB.PingContext(ctx); err == nil {
			return nil
		}
		if attempt == attempts {
			break
		}

		log.ForContext(ctx).WithFields(log.Fields{
			"attempt": attempt,
			"error":   err.Error(),
		}).Warn("PostgreSQL indisponível, tentando novamente")

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
		delay *= 2
	}

	return fmt.Errorf("postgres não respondeu após %d tentativas: %w", attempts, err)
}

// Ping é usado pelo healthcheck
func (c *Connection) Ping(ctx context.Context) error {
	return c.DB.PingContext(ctx)
}

// RunInTransaction executa fn dentro de uma transação, com rollback em erro ou panic
func (c *Connection) RunInTransaction(ctx context.Context, fn func(Queryer) error) error {
	tx, err := c.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("%w (rollback: %v)", err, rbErr)
		}
		return err
	}

	return tx.Commit()
}
