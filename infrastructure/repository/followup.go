package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/lead-intelligence-api/infrastructure/database/postgres"
	"github.com/vfg2006/lead-intelligence-api/internal/domain"
)

const (
	followUpsTable = "follow_ups f"
)

var followUpColumns = []string{
	"f.id", "f.lead_id", "f.sequence_index", "f.agendado_para", "f.status", "f.canal",
	"f.resultado", "f.observacoes", "f.executado_em", "f.tentativas", "f.created_at", "f.updated_at",
}

// DueQuery seleciona os follow-ups vencidos que podem ser reivindicados
type DueQuery struct {
	Now           time.Time
	LeaseCutoff   time.Time
	MaxTentativas int
	Limit         int
}

type FollowUpRepository interface {
	CreateBatchIfNoPending(ctx context.Context, leadID string, followUps []*domain.FollowUp) (bool, error)
	GetByID(ctx context.Context, id string) (*domain.FollowUp, error)
	ListDue(ctx context.Context, q DueQuery) ([]*domain.DueFollowUp, error)
	Claim(ctx context.Context, id, token string, now, leaseCutoff time.Time) (bool, error)
	Complete(ctx context.Context, id, token string, executadoEm time.Time, resultado string) (bool, error)
	Release(ctx context.Context, id, token string, now time.Time) error
	ListUpcoming(ctx context.Context, limit int) ([]*domain.FollowUp, error)
	Stats(ctx context.Context, now time.Time) (*domain.FollowUpStats, error)
	Update(ctx context.Context, id string, req domain.UpdateFollowUpRequest, executadoEm *time.Time, now time.Time) (bool, error)
	CancelPendingByLead(ctx context.Context, leadID string, now time.Time) (int64, error)
}

type followUpRepository struct {
	conn postgres.Conn
}

func NewFollowUpRepository(conn postgres.Conn) FollowUpRepository {
	return &followUpRepository{
		conn: conn,
	}
}

// CreateBatchIfNoPending insere o lote somente se o lead não tiver follow-ups pendentes.
// A linha do lead é travada para serializar agendamentos concorrentes.
func (r *followUpRepository) CreateBatchIfNoPending(ctx context.Context, leadID string, followUps []*domain.FollowUp) (bool, error) {
	if len(followUps) == 0 {
		return false, nil
	}

	created := false
	err := r.conn.RunInTransaction(ctx, func(tx postgres.Queryer) error {
		lockQuery, lockArgs, err := squirrel.
			Select("id").
			From("leads").
			Where(squirrel.Eq{"id": leadID}).
			Suffix("FOR UPDATE").
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return fmt.Errorf("erro ao construir a query: %w", err)
		}

		var lockedID string
		if err := tx.QueryRowContext(ctx, lockQuery, lockArgs...).Scan(&lockedID); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrLeadNotFound
			}
			return fmt.Errorf("erro ao travar lead: %w", err)
		}

		countQuery, countArgs, err := squirrel.
			Select("COUNT(*)").
			From("follow_ups").
			Where(squirrel.Eq{"lead_id": leadID, "status": domain.FollowUpPendente}).
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return fmt.Errorf("erro ao construir a query: %w", err)
		}

		var pending int
		if err := tx.QueryRowContext(ctx, countQuery, countArgs...).Scan(&pending); err != nil {
			return fmt.Errorf("erro ao contar pendentes: %w", err)
		}
		if pending > 0 {
			return nil
		}

		insert := squirrel.
			Insert("follow_ups").
			Columns("id", "lead_id", "sequence_index", "agendado_para", "status", "canal", "tentativas", "created_at", "updated_at").
			PlaceholderFormat(squirrel.Dollar)
		for _, f := range followUps {
			insert = insert.Values(f.ID, leadID, f.SequenceIndex, truncate(f.AgendadoPara), f.Status, f.Canal, f.Tentativas, truncate(f.CreatedAt), truncate(f.UpdatedAt))
		}

		insertQuery, insertArgs, err := insert.ToSql()
		if err != nil {
			return fmt.Errorf("erro ao construir a query: %w", err)
		}

		if _, err := tx.ExecContext(ctx, insertQuery, insertArgs...); err != nil {
			return fmt.Errorf("erro ao inserir follow-ups: %w", err)
		}

		created = true
		return nil
	})
	if err != nil {
		return false, err
	}

	return created, nil
}

func (r *followUpRepository) GetByID(ctx context.Context, id string) (*domain.FollowUp, error) {
	query, args, err := squirrel.
		Select(followUpColumns...).
		From(followUpsTable).
		Where(squirrel.Eq{"f.id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	f, err := scanFollowUp(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear follow-up: %w", err)
	}

	return f, nil
}

// ListDue retorna os pendentes vencidos, sem reivindicação ativa e abaixo do limite de tentativas
func (r *followUpRepository) ListDue(ctx context.Context, q DueQuery) ([]*domain.DueFollowUp, error) {
	columns := append(append([]string{}, followUpColumns...), "l.nome", "l.email", "l.telefone", "l.nome_empresa")

	builder := squirrel.
		Select(columns...).
		From(followUpsTable).
		Join("leads l ON l.id = f.lead_id").
		Where(squirrel.Eq{"f.status": domain.FollowUpPendente}).
		Where(squirrel.LtOrEq{"f.agendado_para": truncate(q.Now)}).
		Where(squirrel.Lt{"f.tentativas": q.MaxTentativas}).
		Where(squirrel.Or{
			squirrel.Eq{"f.claim_token": nil},
			squirrel.Lt{"f.claimed_at": truncate(q.LeaseCutoff)},
		}).
		OrderBy("f.agendado_para ASC", "f.id ASC").
		PlaceholderFormat(squirrel.Dollar)

	if q.Limit > 0 {
		builder = builder.Limit(uint64(q.Limit))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar follow-ups vencidos: %w", err)
	}
	defer rows.Close()

	due := make([]*domain.DueFollowUp, 0)
	for rows.Next() {
		d := &domain.DueFollowUp{}
		if err := rows.Scan(
			&d.ID, &d.LeadID, &d.SequenceIndex, &d.AgendadoPara, &d.Status, &d.Canal,
			&d.Resultado, &d.Observacoes, &d.ExecutadoEm, &d.Tentativas, &d.CreatedAt, &d.UpdatedAt,
			&d.LeadNome, &d.LeadEmail, &d.LeadTelefone, &d.LeadNomeEmpresa,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear follow-up: %w", err)
		}
		due = append(due, d)
	}

	return due, rows.Err()
}

// Claim reivindica o follow-up se ele ainda estiver pendente e sem reivindicação ativa
func (r *followUpRepository) Claim(ctx context.Context, id, token string, now, leaseCutoff time.Time) (bool, error) {
	query, args, err := squirrel.
		Update("follow_ups").
		Set("claim_token", token).
		Set("claimed_at", truncate(now)).
		Where(squirrel.Eq{"id": id, "status": domain.FollowUpPendente}).
		Where(squirrel.Or{
			squirrel.Eq{"claim_token": nil},
			squirrel.Lt{"claimed_at": truncate(leaseCutoff)},
		}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.execAffected(ctx, query, args...)
}

// Complete marca como REALIZADO apenas se a reivindicação ainda pertencer ao token
func (r *followUpRepository) Complete(ctx context.Context, id, token string, executadoEm time.Time, resultado string) (bool, error) {
	query, args, err := squirrel.
		Update("follow_ups").
		Set("status", domain.FollowUpRealizado).
		Set("executado_em", truncate(executadoEm)).
		Set("resultado", resultado).
		Set("claim_token", nil).
		Set("claimed_at", nil).
		Set("updated_at", truncate(executadoEm)).
		Where(squirrel.Eq{"id": id, "claim_token": token, "status": domain.FollowUpPendente}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.execAffected(ctx, query, args...)
}

// Release devolve o follow-up para a fila e conta a tentativa que falhou
func (r *followUpRepository) Release(ctx context.Context, id, token string, now time.Time) error {
	query, args, err := squirrel.
		Update("follow_ups").
		Set("claim_token", nil).
		Set("claimed_at", nil).
		Set("tentativas", squirrel.Expr("tentativas + 1")).
		Set("updated_at", truncate(now)).
		Where(squirrel.Eq{"id": id, "claim_token": token}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("erro ao liberar follow-up: %w", err)
	}

	return nil
}

func (r *followUpRepository) ListUpcoming(ctx context.Context, limit int) ([]*domain.FollowUp, error) {
	builder := squirrel.
		Select(followUpColumns...).
		From(followUpsTable).
		Where(squirrel.Eq{"f.status": domain.FollowUpPendente}).
		OrderBy("f.agendado_para ASC", "f.id ASC").
		PlaceholderFormat(squirrel.Dollar)

	if limit > 0 {
		builder = builder.Limit(uint64(limit))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar próximos follow-ups: %w", err)
	}
	defer rows.Close()

	followUps := make([]*domain.FollowUp, 0)
	for rows.Next() {
		f, err := scanFollowUp(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear follow-up: %w", err)
		}
		followUps = append(followUps, f)
	}

	return followUps, rows.Err()
}

func (r *followUpRepository) Stats(ctx context.Context, now time.Time) (*domain.FollowUpStats, error) {
	query, args, err := squirrel.
		Select(
			"COUNT(*) FILTER (WHERE status = 'PENDENTE')",
			"COUNT(*) FILTER (WHERE status = 'REALIZADO')",
			"COUNT(*) FILTER (WHERE status = 'CANCELADO')",
		).
		Column(squirrel.Expr("COUNT(*) FILTER (WHERE status = 'PENDENTE' AND agendado_para < ?)", truncate(now))).
		Column("COUNT(*)").
		From("follow_ups").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	stats := &domain.FollowUpStats{}
	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(
		&stats.Pendentes,
		&stats.Realizados,
		&stats.Cancelados,
		&stats.Atrasados,
		&stats.Total,
	); err != nil {
		return nil, fmt.Errorf("erro ao calcular estatísticas: %w", err)
	}
	stats.Proximos = stats.Pendentes - stats.Atrasados

	return stats, nil
}

// Update aplica a edição manual. Mudanças de status só valem a partir de PENDENTE sem
// reivindicação ativa, a mesma condição usada pelo lote.
func (r *followUpRepository) Update(ctx context.Context, id string, req domain.UpdateFollowUpRequest, executadoEm *time.Time, now time.Time) (bool, error) {
	builder := squirrel.
		Update("follow_ups").
		Set("updated_at", truncate(now)).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	if req.Status != nil {
		builder = builder.
			Set("status", *req.Status).
			Where(squirrel.Eq{"status": domain.FollowUpPendente, "claim_token": nil})
	}
	if executadoEm != nil {
		builder = builder.Set("executado_em", truncate(*executadoEm))
	}
	if req.Resultado != nil {
		builder = builder.Set("resultado", *req.Resultado)
	}
	if req.Observacoes != nil {
		builder = builder.Set("observacoes", *req.Observacoes)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return false, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.execAffected(ctx, query, args...)
}

func (r *followUpRepository) CancelPendingByLead(ctx context.Context, leadID string, now time.Time) (int64, error) {
	query, args, err := squirrel.
		Update("follow_ups").
		Set("status", domain.FollowUpCancelado).
		Set("claim_token", nil).
		Set("claimed_at", nil).
		Set("updated_at", truncate(now)).
		Where(squirrel.Eq{"lead_id": leadID, "status": domain.FollowUpPendente}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("erro ao cancelar follow-ups: %w", err)
	}

	return result.RowsAffected()
}

func (r *followUpRepository) execAffected(ctx context.Context, query string, args ...interface{}) (bool, error) {
	result, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("erro ao atualizar follow-up: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("erro ao obter linhas afetadas: %w", err)
	}

	return affected > 0, nil
}

func scanFollowUp(row rowScanner) (*domain.FollowUp, error) {
	f := &domain.FollowUp{}
	if err := row.Scan(
		&f.ID,
		&f.LeadID,
		&f.SequenceIndex,
		&f.AgendadoPara,
		&f.Status,
		&f.Canal,
		&f.Resultado,
		&f.Observacoes,
		&f.ExecutadoEm,
		&f.Tentativas,
		&f.CreatedAt,
		&f.UpdatedAt,
	); err != nil {
		return nil, err
	}

	return f, nil
}
