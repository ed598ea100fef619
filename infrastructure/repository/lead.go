package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/lead-intelligence-api/infrastructure/database/postgres"
	"github.com/vfg2006/lead-intelligence-api/internal/domain"
)

const (
	leadsTable = "leads l"

	defaultLeadPageSize = 50
	maxLeadPageSize     = 200
)

var leadColumns = []string{
	"l.id", "l.email", "l.place_id", "l.nome", "l.telefone", "l.nome_empresa", "l.segmento",
	"l.site_url", "l.status", "l.score_geral", "l.score_gbp", "l.score_site", "l.score_redes",
	"l.valor_sugerido", "l.relatorio", "l.proposta", "l.vendedor_id", "l.pesquisa_em",
	"l.contatado_em", "l.created_at", "l.updated_at",
}

type LeadRepository interface {
	Create(ctx context.Context, lead *domain.Lead) error
	GetByID(ctx context.Context, id string) (*domain.Lead, error)
	GetByIdentity(ctx context.Context, identity domain.LeadIdentity) (*domain.Lead, error)
	UpdateAnalysis(ctx context.Context, lead *domain.Lead) error
	UpdateStatus(ctx context.Context, lead *domain.Lead) error
	List(ctx context.Context, filter domain.LeadFilter) (*domain.LeadPage, error)
}

type leadRepository struct {
	conn postgres.Conn
}

func NewLeadRepository(conn postgres.Conn) LeadRepository {
	return &leadRepository{
		conn: conn,
	}
}

// Create insere o lead e retorna ErrLeadAlreadyExists quando a identidade já existe
func (r *leadRepository) Create(ctx context.Context, lead *domain.Lead) error {
	relatorio, proposta, err := encodeBlobs(lead)
	if err != nil {
		return err
	}

	identity := lead.Identity()

	query, args, err := squirrel.
		Insert("leads").
		Columns(
			"id", "email", "place_id", "nome", "telefone", "nome_empresa", "segmento", "site_url",
			"status", "score_geral", "score_gbp", "score_site", "score_redes", "valor_sugerido",
			"relatorio", "proposta", "vendedor_id", "pesquisa_em", "created_at", "updated_at",
		).
		Values(
			lead.ID, identity.Email, identity.PlaceID, lead.Nome, lead.Telefone, lead.NomeEmpresa, lead.Segmento, lead.SiteURL,
			lead.Status, lead.ScoreGeral, lead.ScoreGBP, lead.ScoreSite, lead.ScoreRedes, lead.ValorSugerido,
			relatorio, proposta, lead.VendedorID, lead.PesquisaEm, lead.CreatedAt, lead.UpdatedAt,
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		if isUniqueViolation(err) {
			return ErrLeadAlreadyExists
		}
		return fmt.Errorf("erro ao inserir lead: %w", err)
	}

	return nil
}

func (r *leadRepository) GetByID(ctx context.Context, id string) (*domain.Lead, error) {
	return r.get(ctx, squirrel.Eq{"l.id": id})
}

func (r *leadRepository) GetByIdentity(ctx context.Context, identity domain.LeadIdentity) (*domain.Lead, error) {
	return r.get(ctx, squirrel.Eq{"l.email": identity.Email, "l.place_id": identity.PlaceID})
}

// get retorna nil, nil quando nenhum lead corresponde ao filtro
func (r *leadRepository) get(ctx context.Context, where squirrel.Sqlizer) (*domain.Lead, error) {
	query, args, err := squirrel.
		Select(leadColumns...).
		From(leadsTable).
		Where(where).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	lead, err := scanLead(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear lead: %w", err)
	}

	return lead, nil
}

// UpdateAnalysis sobrescreve o snapshot da análise e os dados de contato
func (r *leadRepository) UpdateAnalysis(ctx context.Context, lead *domain.Lead) error {
	relatorio, proposta, err := encodeBlobs(lead)
	if err != nil {
		return err
	}

	query, args, err := squirrel.
		Update("leads").
		SetMap(map[string]interface{}{
			"nome":           lead.Nome,
			"telefone":       lead.Telefone,
			"nome_empresa":   lead.NomeEmpresa,
			"segmento":       lead.Segmento,
			"site_url":       lead.SiteURL,
			"score_geral":    lead.ScoreGeral,
			"score_gbp":      lead.ScoreGBP,
			"score_site":     lead.ScoreSite,
			"score_redes":    lead.ScoreRedes,
			"valor_sugerido": lead.ValorSugerido,
			"relatorio":      relatorio,
			"proposta":       proposta,
			"pesquisa_em":    lead.PesquisaEm,
			"updated_at":     lead.UpdatedAt,
		}).
		Where(squirrel.Eq{"id": lead.ID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.execOne(ctx, query, args...)
}

func (r *leadRepository) UpdateStatus(ctx context.Context, lead *domain.Lead) error {
	query, args, err := squirrel.
		Update("leads").
		Set("status", lead.Status).
		Set("vendedor_id", lead.VendedorID).
		Set("contatado_em", lead.ContatadoEm).
		Set("updated_at", lead.UpdatedAt).
		Where(squirrel.Eq{"id": lead.ID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.execOne(ctx, query, args...)
}

func (r *leadRepository) execOne(ctx context.Context, query string, args ...interface{}) error {
	result, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("erro ao atualizar lead: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("erro ao obter linhas afetadas: %w", err)
	}
	if affected == 0 {
		return ErrLeadNotFound
	}

	return nil
}

// List aplica os predicados do filtro e retorna a página pedida com o total
func (r *leadRepository) List(ctx context.Context, filter domain.LeadFilter) (*domain.LeadPage, error) {
	where := leadFilterPredicates(filter)

	countQuery, countArgs, err := squirrel.
		Select("COUNT(*)").
		From(leadsTable).
		Where(where).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	page := &domain.LeadPage{Leads: make([]*domain.Lead, 0)}
	if err := r.conn.QueryRowContext(ctx, countQuery, countArgs...).Scan(&page.Total); err != nil {
		return nil, fmt.Errorf("erro ao contar leads: %w", err)
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = defaultLeadPageSize
	}
	if limit > maxLeadPageSize {
		limit = maxLeadPageSize
	}
	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}

	query, args, err := squirrel.
		Select(leadColumns...).
		From(leadsTable).
		Where(where).
		OrderBy("l.pesquisa_em DESC", "l.id ASC").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar leads: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		lead, err := scanLead(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear lead: %w", err)
		}
		page.Leads = append(page.Leads, lead)
	}

	return page, rows.Err()
}

// curingas do LIKE na busca são literais; a barra invertida é o escape padrão do Postgres
var likeEscaper = strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)

func leadFilterPredicates(filter domain.LeadFilter) squirrel.And {
	where := squirrel.And{}

	if filter.Status != nil {
		where = append(where, squirrel.Eq{"l.status": *filter.Status})
	}
	if filter.VendedorID != nil {
		where = append(where, squirrel.Eq{"l.vendedor_id": *filter.VendedorID})
	}
	if busca := strings.TrimSpace(filter.Busca); busca != "" {
		pattern := "%" + likeEscaper.Replace(busca) + "%"
		where = append(where, squirrel.Or{
			squirrel.ILike{"l.nome": pattern},
			squirrel.ILike{"l.email": pattern},
			squirrel.ILike{"l.nome_empresa": pattern},
		})
	}

	return where
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanLead(row rowScanner) (*domain.Lead, error) {
	lead := &domain.Lead{}
	var relatorio, proposta []byte

	if err := row.Scan(
		&lead.ID,
		&lead.Email,
		&lead.PlaceID,
		&lead.Nome,
		&lead.Telefone,
		&lead.NomeEmpresa,
		&lead.Segmento,
		&lead.SiteURL,
		&lead.Status,
		&lead.ScoreGeral,
		&lead.ScoreGBP,
		&lead.ScoreSite,
		&lead.ScoreRedes,
		&lead.ValorSugerido,
		&relatorio,
		&proposta,
		&lead.VendedorID,
		&lead.PesquisaEm,
		&lead.ContatadoEm,
		&lead.CreatedAt,
		&lead.UpdatedAt,
	); err != nil {
		return nil, err
	}

	var err error
	if lead.Relatorio, err = domain.DecodeReport(relatorio); err != nil {
		return nil, fmt.Errorf("relatório do lead %s: %w", lead.ID, err)
	}
	if lead.Proposta, err = domain.DecodeProposal(proposta); err != nil {
		return nil, fmt.Errorf("proposta do lead %s: %w", lead.ID, err)
	}

	return lead, nil
}

func encodeBlobs(lead *domain.Lead) ([]byte, []byte, error) {
	relatorio, err := domain.EncodeReport(lead.Relatorio)
	if err != nil {
		return nil, nil, fmt.Errorf("erro ao serializar relatório: %w", err)
	}

	proposta, err := domain.EncodeProposal(lead.Proposta)
	if err != nil {
		return nil, nil, fmt.Errorf("erro ao serializar proposta: %w", err)
	}

	return relatorio, proposta, nil
}

// truncate mantém os timestamps na precisão de microssegundos do Postgres
func truncate(t time.Time) time.Time {
	return t.UTC().Truncate(time.Microsecond)
}
