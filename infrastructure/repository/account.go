// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/retention-radar-api/infrastructure/database/postgres"
	"github.com/vfg2006/retention-radar-api/internal/domain"
)

const (
	accountsTable = "accounts a"
)

type AccountRepository interface {
	GetAccountByID(accountID string) (*domain.Account, error)
	ListAccounts(availableStatus []domain.AccountStatus) ([]*domain.Account, error)
	CreateAccount(account *domain.Account) error
	UpdateAccount(account *domain.UpdateAccountRequest) error
}

type accountRepository struct {
	conn *postgres.Connection
}

func NewAccountRepository(conn *postgres.Connection) AccountRepository {
	return &accountRepository{
		conn: conn,
	}
}

func (a *accountRepository) GetAccountByID(accountID string) (*domain.Account, error) {
	accountsSQL, accountsArgs, err := squirrel.
		Select("a.id, a.name, a.nickname, a.region, a.status, a.created_at, a.updated_at").
		From(accountsTable).
		Where(squirrel.Eq{"a.id": accountID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	row := a.conn.QueryRow(accountsSQL, accountsArgs...)

	acc := &domain.Account{}
	if err := row.Scan(
		&acc.ID,
		&acc.Name,
		&acc.Nickname,
		&acc.Region,
		&acc.Status,
		&acc.CreatedAt,
		&acc.UpdatedAt,
	); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return acc, nil
}

func (a *accountRepository) ListAccounts(availableStatus []domain.AccountStatus) ([]*domain.Account, error) {
	queryBuilder := squirrel.
		Select("a.id, a.name, a.nickname, a.region, a.status, a.created_at, a.updated_at").
		From(accountsTable).
		OrderBy("a.name ASC").
		PlaceholderFormat(squirrel.Dollar)

	if len(availableStatus) > 0 {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"a.status": availableStatus})
	}

	accountsSQL, accountsArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := a.conn.Query(accountsSQL, accountsArgs...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}

		return nil, err
	}
	defer rows.Close()

	accounts := make([]*domain.Account, 0)

	for rows.Next() {
		acc := domain.Account{}
		if err := rows.Scan(
			&acc.ID,
			&acc.Name,
			&acc.Nickname,
			&acc.Region,
			&acc.Status,
			&acc.CreatedAt,
			&acc.UpdatedAt,
		); err != nil {
			return nil, err
		}

		accounts = append(accounts, &acc)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	if len(accounts) == 0 {
		return nil, nil
	}

	return accounts, nil
}

func (a *accountRepository) CreateAccount(account *domain.Account) error {
	query := squirrel.StatementBuilder.
		Insert("accounts").
		Columns("id", "name", "nickname", "region", "status").
		Values(
			account.ID,
			account.Name,
			account.Nickname,
			account.Region,
			account.Status,
		).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = a.conn.Exec(sqlQuery, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func (a *accountRepository) UpdateAccount(account *domain.UpdateAccountRequest) error {
	if account.ID == "" {
		return errors.New("ID is required")
	}

	// Constrói a query de atualização apenas com os campos informados
	queryBuilder := squirrel.
		Update("accounts").
		Where(squirrel.Eq{"id": account.ID}).
		Set("updated_at", squirrel.Expr("NOW()")).
		PlaceholderFormat(squirrel.Dollar)

	if account.Name != nil {
		queryBuilder = queryBuilder.Set("name", *account.Name)
	}

	if account.Nickname != nil {
		queryBuilder = queryBuilder.Set("nickname", *account.Nickname)
	}

	if account.Region != nil {
		queryBuilder = queryBuilder.Set("region", *account.Region)
	}

	if account.Status != nil {
		queryBuilder = queryBuilder.Set("status", *account.Status)
	}

	sqlQuery, args, err := queryBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := a.conn.Exec(sqlQuery, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("conta não encontrada: %s", account.ID)
	}

	return nil
}
