package tx

import (
	"context"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/avito-tech/go-transaction-manager/trm/manager"
	"github.com/avito-tech/go-transaction-manager/trm/settings"
	"github.com/jackc/pgx/v5"
)

// ErrorTranslator переводит ошибки драйвера (в том числе ошибки commit) в доменные.
type ErrorTranslator func(error) error

type Option func(*Manager)

// WithErrorTranslator задает перевод ошибок, возвращаемых из Do.
func WithErrorTranslator(translate ErrorTranslator) Option {
	return func(m *Manager) {
		m.translate = translate
	}
}

// Manager инкапсулирует логику управления транзакциями.
type Manager struct {
	internal  *manager.Manager
	translate ErrorTranslator
}

// New создаёт новый менеджер транзакций.
func New(db pgxv5.Transactional, opts ...Option) *Manager {
	m := &Manager{
		internal: manager.Must(pgxv5.NewDefaultFactory(db)),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func (m *Manager) execWithIsoLevel(
	ctx context.Context,
	level pgx.TxIsoLevel,
	fn func(ctx context.Context) error,
) error {
	txSettings := pgxv5.MustSettings(
		settings.Must(),
		pgxv5.WithTxOptions(pgx.TxOptions{IsoLevel: level}),
	)
	err := m.internal.DoWithSettings(ctx, txSettings, fn)
	if err != nil && m.translate != nil {
		return m.translate(err)
	}
	return err
}

// Do выполняет fn в serializable транзакции; вложенные вызовы переиспользуют внешнюю.
func (m *Manager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.execWithIsoLevel(ctx, pgx.Serializable, fn)
}
