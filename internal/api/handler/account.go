package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/retention-radar-api/internal/domain"
	"github.com/vfg2006/retention-radar-api/internal/usecases/account"
	"github.com/vfg2006/retention-radar-api/pkg/apiErrors"
)

func AccountList(service account.AccountService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		filterStatus := r.URL.Query().Get("status")

		availableStatus := make([]domain.AccountStatus, 0)
		if filterStatus != "" {
			for _, status := range strings.Split(filterStatus, ",") {
				availableStatus = append(availableStatus, domain.AccountStatus(status))
			}
		}

		accounts, err := service.ListAccounts(availableStatus)
		if err != nil {
			logrus.Error("Error listing accounts:", err)

			// Verificar se é um AccountError para obter detalhes específicos do erro
			var accountErr *account.AccountError
			if errors.As(err, &accountErr) {
				apiErrors.WriteError(w, accountErr.Code, accountErr.Error(), nil)
				return
			}

			if errors.Is(err, account.ErrFetchAccounts) {
				apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar contas no banco de dados", nil)
			} else {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao listar contas", nil)
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")

		if err := json.NewEncoder(w).Encode(accounts); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

func GetAccount(service account.AccountService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da conta é obrigatório", nil)
			return
		}

		acc, err := service.GetAccount(id)
		if err != nil {
			logrus.Error("Error fetching account:", err)
			writeAccountError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")

		if err := json.NewEncoder(w).Encode(acc); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

func CreateAccount(service account.AccountService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CreateAccount")

		w.Header().Set("Content-Type", "application/json")

		var createRequest domain.CreateAccountRequest
		if err := json.NewDecoder(r.Body).Decode(&createRequest); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
			return
		}

		resp, err := service.CreateAccount(&createRequest)
		if err != nil {
			logrus.Error("Error creating account:", err)

			var accountErr *account.AccountError
			if errors.As(err, &accountErr) {
				apiErrors.WriteError(w, accountErr.Code, accountErr.Error(), nil)
				return
			}

			switch {
			case errors.Is(err, account.ErrAccountNameRequired):
				apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Nome da conta é obrigatório", nil)

			case errors.Is(err, account.ErrGenerateID):
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao gerar identificador da conta", nil)

			case errors.Is(err, account.ErrCreateAccount) || errors.Is(err, account.ErrDatabaseOperation):
				apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao criar conta no banco de dados", nil)

			default:
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno ao criar conta", nil)
			}
			return
		}

		w.WriteHeader(http.StatusCreated)

		if err := json.NewEncoder(w).Encode(resp); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

// TODO talvez adicionar qual usuário está modificando a conta a partir do token
func UpdateAccount(service account.AccountService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - UpdateAccount")

		w.Header().Set("Content-Type", "application/json")

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da conta é obrigatório", nil)
			return
		}

		var updateRequest domain.UpdateAccountRequest
		if err := json.NewDecoder(r.Body).Decode(&updateRequest); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
			return
		}

		// Garante que o ID da URL seja usado
		updateRequest.ID = id

		if err := service.UpdateAccount(&updateRequest); err != nil {
			logrus.Error("Error updating account:", err)

			var accountErr *account.AccountError
			if errors.As(err, &accountErr) {
				apiErrors.WriteError(w, accountErr.Code, accountErr.Error(), map[string]interface{}{
					"account_id": accountErr.AccountID,
					"error_type": accountErr.Err.Error(),
				})
				return
			}

			switch {
			case errors.Is(err, account.ErrAccountIDRequired):
				apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da conta é obrigatório", nil)

			case errors.Is(err, account.ErrAccountNotFound):
				apiErrors.WriteError(w, apiErrors.ErrAccountNotFound, "Conta não encontrada", map[string]interface{}{
					"account_id": id,
					"error_type": "account_not_found",
				})

			case errors.Is(err, account.ErrInvalidStatus):
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Status de conta inválido. Valores aceitos: ACTIVE, INACTIVE", nil)

			case errors.Is(err, account.ErrDatabaseOperation) || errors.Is(err, account.ErrUpdateAccount):
				apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao atualizar conta no banco de dados", nil)

			default:
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno ao atualizar conta", nil)
			}
			return
		}

		resp, err := service.GetAccount(id)
		if err != nil {
			writeAccountError(w, err)
			return
		}

		if err := json.NewEncoder(w).Encode(resp); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}
