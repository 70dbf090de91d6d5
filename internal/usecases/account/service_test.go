package account

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/retention-radar-api/infrastructure/repository/mocks"
	"github.com/vfg2006/retention-radar-api/internal/domain"
	"github.com/vfg2006/retention-radar-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func stringPtr(s string) *string {
	return &s
}

func TestService_GetAccount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAccountRepository(ctrl)
	service := NewService(mockRepo)

	t.Run("Deve retornar a conta quando encontrada", func(t *testing.T) {
		acc := &domain.Account{
			ID:       "ACC001",
			Name:     "Ótica Vista Clara",
			Nickname: stringPtr("Vista Clara"),
			Status:   domain.AccountStatusActive,
		}

		mockRepo.EXPECT().GetAccountByID("ACC001").Return(acc, nil)

		result, err := service.GetAccount("ACC001")

		assert.NoError(t, err)
		assert.Equal(t, "ACC001", result.ID)
		assert.Equal(t, "Ótica Vista Clara", result.Name)
		assert.Equal(t, domain.AccountStatusActive, result.Status)
	})

	t.Run("Deve rejeitar identificador vazio", func(t *testing.T) {
		result, err := service.GetAccount("")

		assert.Nil(t, result)

		var accErr *AccountError
		assert.True(t, errors.As(err, &accErr))
		assert.Equal(t, apiErrors.ErrMissingRequiredData, accErr.Code)
	})

	t.Run("Deve sinalizar conta inexistente", func(t *testing.T) {
		mockRepo.EXPECT().GetAccountByID("ACC404").Return(nil, nil)

		result, err := service.GetAccount("ACC404")

		assert.Nil(t, result)

		var accErr *AccountError
		assert.True(t, errors.As(err, &accErr))
		assert.Equal(t, apiErrors.ErrAccountNotFound, accErr.Code)
		assert.Equal(t, "ACC404", accErr.AccountID)
	})

	t.Run("Deve sinalizar erro de banco", func(t *testing.T) {
		mockRepo.EXPECT().GetAccountByID("ACC001").Return(nil, assert.AnError)

		result, err := service.GetAccount("ACC001")

		assert.Nil(t, result)

		var accErr *AccountError
		assert.True(t, errors.As(err, &accErr))
		assert.Equal(t, apiErrors.ErrDatabaseOperation, accErr.Code)
	})
}

func TestService_ListAccounts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAccountRepository(ctrl)
	service := NewService(mockRepo)

	t.Run("Deve listar contas filtradas por status", func(t *testing.T) {
		accounts := []*domain.Account{
			{ID: "ACC001", Name: "Loja A", Status: domain.AccountStatusActive},
			{ID: "ACC002", Name: "Loja B", Status: domain.AccountStatusActive},
		}

		mockRepo.EXPECT().
			ListAccounts([]domain.AccountStatus{domain.AccountStatusActive}).
			Return(accounts, nil)

		result, err := service.ListAccounts([]domain.AccountStatus{domain.AccountStatusActive})

		assert.NoError(t, err)
		assert.Len(t, result, 2)
	})

	t.Run("Deve retornar lista vazia sem contas", func(t *testing.T) {
		mockRepo.EXPECT().ListAccounts(nil).Return([]*domain.Account{}, nil)

		result, err := service.ListAccounts(nil)

		assert.NoError(t, err)
		assert.NotNil(t, result)
		assert.Empty(t, result)
	})
}

func TestService_CreateAccount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAccountRepository(ctrl)
	service := NewService(mockRepo)

	t.Run("Deve criar conta ativa com identificador gerado", func(t *testing.T) {
		req := &domain.CreateAccountRequest{
			Name:   "  Ótica Nova  ",
			Region: stringPtr("Sul"),
		}

		mockRepo.EXPECT().
			CreateAccount(gomock.Any()).
			DoAndReturn(func(acc *domain.Account) error {
				assert.Len(t, acc.ID, 6)
				assert.Equal(t, "Ótica Nova", acc.Name)
				assert.Equal(t, domain.AccountStatusActive, acc.Status)
				return nil
			})

		result, err := service.CreateAccount(req)

		assert.NoError(t, err)
		assert.Equal(t, "Ótica Nova", result.Name)
		assert.Equal(t, domain.AccountStatusActive, result.Status)
	})

	t.Run("Deve rejeitar nome vazio", func(t *testing.T) {
		result, err := service.CreateAccount(&domain.CreateAccountRequest{Name: "   "})

		assert.Nil(t, result)

		var accErr *AccountError
		assert.True(t, errors.As(err, &accErr))
		assert.Equal(t, apiErrors.ErrMissingRequiredData, accErr.Code)
	})

	t.Run("Deve sinalizar erro de banco na criação", func(t *testing.T) {
		mockRepo.EXPECT().CreateAccount(gomock.Any()).Return(assert.AnError)

		result, err := service.CreateAccount(&domain.CreateAccountRequest{Name: "Loja"})

		assert.Nil(t, result)

		var accErr *AccountError
		assert.True(t, errors.As(err, &accErr))
		assert.Equal(t, apiErrors.ErrDatabaseOperation, accErr.Code)
	})
}

func TestService_UpdateAccount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAccountRepository(ctrl)
	service := NewService(mockRepo)

	existing := &domain.Account{ID: "ACC001", Name: "Loja A", Status: domain.AccountStatusActive}

	t.Run("Deve atualizar conta existente", func(t *testing.T) {
		req := &domain.UpdateAccountRequest{
			ID:     "ACC001",
			Status: stringPtr("INACTIVE"),
		}

		mockRepo.EXPECT().GetAccountByID("ACC001").Return(existing, nil)
		mockRepo.EXPECT().UpdateAccount(req).Return(nil)

		assert.NoError(t, service.UpdateAccount(req))
	})

	t.Run("Deve rejeitar status desconhecido", func(t *testing.T) {
		req := &domain.UpdateAccountRequest{
			ID:     "ACC001",
			Status: stringPtr("PAUSED"),
		}

		err := service.UpdateAccount(req)

		var accErr *AccountError
		assert.True(t, errors.As(err, &accErr))
		assert.Equal(t, apiErrors.ErrInvalidFormat, accErr.Code)
	})

	t.Run("Deve rejeitar conta inexistente", func(t *testing.T) {
		req := &domain.UpdateAccountRequest{ID: "ACC404", Name: stringPtr("Nova")}

		mockRepo.EXPECT().GetAccountByID("ACC404").Return(nil, nil)

		err := service.UpdateAccount(req)

		var accErr *AccountError
		assert.True(t, errors.As(err, &accErr))
		assert.Equal(t, apiErrors.ErrAccountNotFound, accErr.Code)
	})

	t.Run("Deve rejeitar identificador vazio", func(t *testing.T) {
		err := service.UpdateAccount(&domain.UpdateAccountRequest{})

		var accErr *AccountError
		assert.True(t, errors.As(err, &accErr))
		assert.Equal(t, apiErrors.ErrMissingRequiredData, accErr.Code)
	})
}
