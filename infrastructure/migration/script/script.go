package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"time"

	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/lead-intelligence-api/internal/config"
)

type migration struct {
	name       string
	statements []string
}

// As migrações são idempotentes e executadas em ordem, cada uma em sua transação
var migrations = []migration{
	{
		name: "001_leads",
		statements: []string{
			`CREATE TABLE IF NOT EXISTS leads (
				id              VARCHAR(32)  PRIMARY KEY,
				email           VARCHAR(254) NOT NULL,
				place_id        VARCHAR(255) NOT NULL,
				nome            VARCHAR(120) NOT NULL,
				telefone        VARCHAR(30)  NOT NULL DEFAULT '',
				nome_empresa    VARCHAR(160) NOT NULL DEFAULT '',
				segmento        VARCHAR(40)  NOT NULL DEFAULT '',
				site_url        TEXT,
				status          VARCHAR(16)  NOT NULL DEFAULT 'NOVO',
				score_geral     SMALLINT     NOT NULL DEFAULT 0,
				score_gbp       SMALLINT     NOT NULL DEFAULT 0,
				score_site      SMALLINT     NOT NULL DEFAULT 0,
				score_redes     SMALLINT     NOT NULL DEFAULT 0,
				valor_sugerido  NUMERIC(12,2) NOT NULL DEFAULT 0,
				relatorio       JSONB        NOT NULL,
				proposta        JSONB        NOT NULL,
				vendedor_id     VARCHAR(64),
				pesquisa_em     TIMESTAMPTZ  NOT NULL,
				contatado_em    TIMESTAMPTZ,
				created_at      TIMESTAMPTZ  NOT NULL DEFAULT NOW(),
				updated_at      TIMESTAMPTZ  NOT NULL DEFAULT NOW(),
				CONSTRAINT leads_status_check CHECK (status IN ('NOVO','CONTATADO','NEGOCIANDO','CONVERTIDO','PERDIDO')),
				CONSTRAINT leads_identity_key UNIQUE (email, place_id)
			)`,
			`CREATE INDEX IF NOT EXISTS leads_status_idx ON leads (status, created_at DESC)`,
			`CREATE INDEX IF NOT EXISTS leads_vendedor_idx ON leads (vendedor_id) WHERE vendedor_id IS NOT NULL`,
		},
	},
	{
		name: "002_follow_ups",
		statements: []string{
			`CREATE TABLE IF NOT EXISTS follow_ups (
				id              VARCHAR(32)  PRIMARY KEY,
				lead_id         VARCHAR(32)  NOT NULL REFERENCES leads (id) ON DELETE CASCADE,
				sequence_index  SMALLINT     NOT NULL,
				agendado_para   TIMESTAMPTZ  NOT NULL,
				status          VARCHAR(16)  NOT NULL DEFAULT 'PENDENTE',
				canal           VARCHAR(16)  NOT NULL DEFAULT 'EMAIL',
				resultado       TEXT,
				observacoes     TEXT,
				executado_em    TIMESTAMPTZ,
				tentativas      INTEGER      NOT NULL DEFAULT 0,
				claim_token     VARCHAR(64),
				claimed_at      TIMESTAMPTZ,
				created_at      TIMESTAMPTZ  NOT NULL DEFAULT NOW(),
				updated_at      TIMESTAMPTZ  NOT NULL DEFAULT NOW(),
				CONSTRAINT follow_ups_status_check CHECK (status IN ('PENDENTE','REALIZADO','CANCELADO'))
			)`,
			`CREATE INDEX IF NOT EXISTS follow_ups_due_idx ON follow_ups (agendado_para) WHERE status = 'PENDENTE'`,
			`CREATE INDEX IF NOT EXISTS follow_ups_lead_idx ON follow_ups (lead_id, sequence_index)`,
		},
	},
	{
		name: "003_schema_migrations",
		statements: []string{
			`CREATE TABLE IF NOT EXISTS schema_migrations (
				name       VARCHAR(64) PRIMARY KEY,
				applied_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
			)`,
		},
	},
}

func main() {
	dryRun := flag.Bool("dry-run", false, "apenas imprime as instruções")
	timeout := flag.Duration("timeout", time.Minute, "tempo máximo da migração")
	flag.Parse()

	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, TimestampFormat: time.RFC3339})
	logrus.Info("Iniciando script de migração...")

	if *dryRun {
		for _, m := range migrations {
			fmt.Printf("-- %s\n", m.name)
			for _, stmt := range m.statements {
				fmt.Printf("%s;\n\n", stmt)
			}
		}
		return
	}

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao carregar configuração")
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	db, err := sql.Open("postgres", cfg.Database.DSN)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao abrir conexão com PostgreSQL")
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	startTime := time.Now()
	for _, m := range migrations {
		if err := apply(ctx, db, m); err != nil {
			logrus.WithError(err).WithField("migration", m.name).Fatal("Erro ao aplicar migração")
		}
		logrus.WithField("migration", m.name).Info("Migração aplicada")
	}

	if err := record(ctx, db); err != nil {
		logrus.WithError(err).Warn("Erro ao registrar migrações aplicadas")
	}

	logrus.Infof("Migração concluída em %v", time.Since(startTime))
}

func apply(ctx context.Context, db *sql.DB, m migration) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	for i, stmt := range m.statements {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("instrução %d: %w", i+1, err)
		}
	}

	return tx.Commit()
}

func record(ctx context.Context, db *sql.DB) error {
	for _, m := range migrations {
		_, err := db.ExecContext(ctx,
			`INSERT INTO schema_migrations (name) VALUES ($1) ON CONFLICT (name) DO NOTHING`, m.name)
		if err != nil {
			return err
		}
	}
	return nil
}
