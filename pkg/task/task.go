package task

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Task é um conjunto de efeitos colaterais executados em segundo plano cujo
// resultado pode ser observado com Wait
type Task struct {
	group *errgroup.Group
	ctx   context.Context
}

// New cria uma tarefa vinculada ao contexto informado. O contexto da tarefa é
// cancelado quando qualquer etapa falha.
func New(ctx context.Context) *Task {
	g, gctx := errgroup.WithContext(ctx)
	return &Task{group: g, ctx: gctx}
}

// Go inicia uma etapa da tarefa
func (t *Task) Go(fn func(ctx context.Context) error) {
	t.group.Go(func() error {
		return fn(t.ctx)
	})
}

// Wait bloqueia até todas as etapas terminarem e retorna o primeiro erro
func (t *Task) Wait() error {
	if t == nil {
		return nil
	}
	return t.group.Wait()
}

// Done retorna uma tarefa sem etapas, já concluída
func Done() *Task {
	return New(context.Background())
}
