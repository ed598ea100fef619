package nurturing

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/vfg2006/lead-intelligence-api/infrastructure/repository"
	"github.com/vfg2006/lead-intelligence-api/internal/domain"
)

type fakeRow struct {
	domain.FollowUp
	claimToken string
	claimedAt  time.Time
}

// fakeFollowUpRepository reproduz em memória as atualizações condicionais do Postgres
type fakeFollowUpRepository struct {
	mu    sync.Mutex
	rows  map[string]*fakeRow
	leads map[string]*domain.Lead
}

func newFakeFollowUpRepository() *fakeFollowUpRepository {
	return &fakeFollowUpRepository{
		rows:  map[string]*fakeRow{},
		leads: map[string]*domain.Lead{},
	}
}

func (r *fakeFollowUpRepository) add(f domain.FollowUp, lead *domain.Lead) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rows[f.ID] = &fakeRow{FollowUp: f}
	r.leads[lead.ID] = lead
}

func (r *fakeFollowUpRepository) row(id string) fakeRow {
	r.mu.Lock()
	defer r.mu.Unlock()
	return *r.rows[id]
}

func (r *fakeFollowUpRepository) CreateBatchIfNoPending(_ context.Context, leadID string, followUps []*domain.FollowUp) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, row := range r.rows {
		if row.LeadID == leadID && row.Status == domain.FollowUpPendente {
			return false, nil
		}
	}
	for _, f := range followUps {
		r.rows[f.ID] = &fakeRow{FollowUp: *f}
	}
	return len(followUps) > 0, nil
}

func (r *fakeFollowUpRepository) GetByID(_ context.Context, id string) (*domain.FollowUp, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	row, ok := r.rows[id]
	if !ok {
		return nil, nil
	}
	f := row.FollowUp
	return &f, nil
}

func (r *fakeFollowUpRepository) claimable(row *fakeRow, cutoff time.Time) bool {
	return row.Status == domain.FollowUpPendente && (row.claimToken == "" || row.claimedAt.Before(cutoff))
}

func (r *fakeFollowUpRepository) ListDue(_ context.Context, q repository.DueQuery) ([]*domain.DueFollowUp, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	due := make([]*domain.DueFollowUp, 0)
	for _, row := range r.rows {
		if !r.claimable(row, q.LeaseCutoff) || row.AgendadoPara.After(q.Now) || row.Tentativas >= q.MaxTentativas {
			continue
		}
		lead := r.leads[row.LeadID]
		due = append(due, &domain.DueFollowUp{
			FollowUp:        row.FollowUp,
			LeadNome:        lead.Nome,
			LeadEmail:       lead.Email,
			LeadTelefone:    lead.Telefone,
			LeadNomeEmpresa: lead.NomeEmpresa,
		})
	}

	sort.Slice(due, func(i, j int) bool {
		if due[i].AgendadoPara.Equal(due[j].AgendadoPara) {
			return due[i].ID < due[j].ID
		}
		return due[i].AgendadoPara.Before(due[j].AgendadoPara)
	})

	if q.Limit > 0 && len(due) > q.Limit {
		due = due[:q.Limit]
	}
	return due, nil
}

func (r *fakeFollowUpRepository) Claim(_ context.Context, id, token string, now, leaseCutoff time.Time) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	row, ok := r.rows[id]
	if !ok || !r.claimable(row, leaseCutoff) {
		return false, nil
	}
	row.claimToken, row.claimedAt = token, now
	return true, nil
}

func (r *fakeFollowUpRepository) Complete(_ context.Context, id, token string, executadoEm time.Time, resultado string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	row, ok := r.rows[id]
	if !ok || row.claimToken != token || row.Status != domain.FollowUpPendente {
		return false, nil
	}
	row.Status = domain.FollowUpRealizado
	row.ExecutadoEm = &executadoEm
	row.Resultado = &resultado
	row.claimToken = ""
	return true, nil
}

func (r *fakeFollowUpRepository) Release(_ context.Context, id, token string, now time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	row, ok := r.rows[id]
	if ok && row.claimToken == token {
		row.claimToken = ""
		row.Tentativas++
		row.UpdatedAt = now
	}
	return nil
}

func (r *fakeFollowUpRepository) ListUpcoming(_ context.Context, limit int) ([]*domain.FollowUp, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	result := make([]*domain.FollowUp, 0)
	for _, row := range r.rows {
		if row.Status == domain.FollowUpPendente {
			f := row.FollowUp
			result = append(result, &f)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].AgendadoPara.Before(result[j].AgendadoPara) })
	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

func (r *fakeFollowUpRepository) Stats(_ context.Context, now time.Time) (*domain.FollowUpStats, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stats := &domain.FollowUpStats{}
	for _, row := range r.rows {
		stats.Total++
		switch row.Status {
		case domain.FollowUpPendente:
			stats.Pendentes++
			if row.AgendadoPara.Before(now) {
				stats.Atrasados++
			}
		case domain.FollowUpRealizado:
			stats.Realizados++
		case domain.FollowUpCancelado:
			stats.Cancelados++
		}
	}
	stats.Proximos = stats.Pendentes - stats.Atrasados
	return stats, nil
}

func (r *fakeFollowUpRepository) Update(_ context.Context, id string, req domain.UpdateFollowUpRequest, executadoEm *time.Time, now time.Time) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	row, ok := r.rows[id]
	if !ok {
		return false, nil
	}
	if req.Status != nil {
		if row.Status != domain.FollowUpPendente || row.claimToken != "" {
			return false, nil
		}
		row.Status = *req.Status
	}
	if executadoEm != nil {
		row.ExecutadoEm = executadoEm
	}
	if req.Resultado != nil {
		row.Resultado = req.Resultado
	}
	if req.Observacoes != nil {
		row.Observacoes = req.Observacoes
	}
	row.UpdatedAt = now
	return true, nil
}

func (r *fakeFollowUpRepository) CancelPendingByLead(_ context.Context, leadID string, now time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var cancelled int64
	for _, row := range r.rows {
		if row.LeadID == leadID && row.Status == domain.FollowUpPendente {
			row.Status = domain.FollowUpCancelado
			row.claimToken = ""
			row.UpdatedAt = now
			cancelled++
		}
	}
	return cancelled, nil
}

// recordingNotifier conta as entregas por e-mail e falha para os destinatários configurados
type recordingNotifier struct {
	mu     sync.Mutex
	sent   map[string]int
	failOn map[string]error
	delay  time.Duration
}

func newRecordingNotifier() *recordingNotifier {
	return &recordingNotifier{sent: map[string]int{}, failOn: map[string]error{}}
}

func (n *recordingNotifier) Notify(_ context.Context, notif domain.Notificacao) error {
	if n.delay > 0 {
		time.Sleep(n.delay)
	}

	n.mu.Lock()
	defer n.mu.Unlock()

	if err, ok := n.failOn[notif.Email]; ok {
		return err
	}
	n.sent[notif.Email]++
	return nil
}

func (n *recordingNotifier) count(email string) int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.sent[email]
}
