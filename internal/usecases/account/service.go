package account

import (
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/retention-radar-api/infrastructure/repository"
	"github.com/vfg2006/retention-radar-api/internal/domain"
	"github.com/vfg2006/retention-radar-api/pkg/apiErrors"
	"github.com/vfg2006/retention-radar-api/pkg/utils"
)

type AccountService interface {
	GetAccount(accountID string) (*domain.AccountResponse, error)
	ListAccounts(availableStatus []domain.AccountStatus) ([]*domain.AccountResponse, error)
	CreateAccount(req *domain.CreateAccountRequest) (*domain.AccountResponse, error)
	UpdateAccount(req *domain.UpdateAccountRequest) error
}

type service struct {
	accountRepository repository.AccountRepository
}

func NewService(
	accountRepository repository.AccountRepository,
) AccountService {
	return &service{
		accountRepository: accountRepository,
	}
}

func (s *service) GetAccount(accountID string) (*domain.AccountResponse, error) {
	if accountID == "" {
		return nil, NewAccountError(ErrAccountIDRequired, apiErrors.ErrMissingRequiredData, "")
	}

	acc, err := s.accountRepository.GetAccountByID(accountID)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": accountID,
			"error":      err.Error(),
		}).Error("Erro ao buscar conta no banco de dados")

		return nil, NewAccountErrorWithID(ErrFetchAccounts, apiErrors.ErrDatabaseOperation, accountID, err.Error())
	}

	if acc == nil {
		return nil, NewAccountErrorWithID(ErrAccountNotFound, apiErrors.ErrAccountNotFound, accountID, "")
	}

	return toAccountResponse(acc), nil
}

func (s *service) ListAccounts(availableStatus []domain.AccountStatus) ([]*domain.AccountResponse, error) {
	accounts, err := s.accountRepository.ListAccounts(availableStatus)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"error": err.Error(),
		}).Error("Erro ao listar contas no banco de dados")

		return nil, NewAccountError(ErrFetchAccounts, apiErrors.ErrDatabaseOperation, err.Error())
	}

	response := make([]*domain.AccountResponse, 0, len(accounts))
	for _, acc := range accounts {
		response = append(response, toAccountResponse(acc))
	}

	return response, nil
}

func (s *service) CreateAccount(req *domain.CreateAccountRequest) (*domain.AccountResponse, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, NewAccountError(ErrAccountNameRequired, apiErrors.ErrMissingRequiredData, "")
	}

	id, err := utils.GenerateID()
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"error": err.Error(),
		}).Error("Erro ao gerar identificador da conta")

		return nil, NewAccountError(ErrGenerateID, apiErrors.ErrInternalServer, err.Error())
	}

	acc := &domain.Account{
		ID:       id,
		Name:     strings.TrimSpace(req.Name),
		Nickname: req.Nickname,
		Region:   req.Region,
		Status:   domain.AccountStatusActive,
	}

	if err := s.accountRepository.CreateAccount(acc); err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": acc.ID,
			"error":      err.Error(),
		}).Error("Erro ao criar conta no banco de dados")

		return nil, NewAccountErrorWithID(ErrCreateAccount, apiErrors.ErrDatabaseOperation, acc.ID, err.Error())
	}

	logrus.WithFields(logrus.Fields{
		"account_id": acc.ID,
		"name":       acc.Name,
	}).Info("Conta criada com sucesso")

	return toAccountResponse(acc), nil
}

func (s *service) UpdateAccount(req *domain.UpdateAccountRequest) error {
	if req.ID == "" {
		return NewAccountError(ErrAccountIDRequired, apiErrors.ErrMissingRequiredData, "")
	}

	if req.Status != nil {
		status := domain.AccountStatus(*req.Status)
		if status != domain.AccountStatusActive && status != domain.AccountStatusInactive {
			return NewAccountErrorWithID(ErrInvalidStatus, apiErrors.ErrInvalidFormat, req.ID, *req.Status)
		}
	}

	acc, err := s.accountRepository.GetAccountByID(req.ID)
	if err != nil {
		return NewAccountErrorWithID(ErrFetchAccounts, apiErrors.ErrDatabaseOperation, req.ID, err.Error())
	}

	if acc == nil {
		return NewAccountErrorWithID(ErrAccountNotFound, apiErrors.ErrAccountNotFound, req.ID, "")
	}

	if err := s.accountRepository.UpdateAccount(req); err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": req.ID,
			"error":      err.Error(),
		}).Error("Erro ao atualizar conta no banco de dados")

		return NewAccountErrorWithID(ErrUpdateAccount, apiErrors.ErrDatabaseOperation, req.ID, err.Error())
	}

	return nil
}

func toAccountResponse(acc *domain.Account) *domain.AccountResponse {
	return &domain.AccountResponse{
		ID:       acc.ID,
		Name:     acc.Name,
		Nickname: acc.Nickname,
		Region:   acc.Region,
		Status:   acc.Status,
	}
}
