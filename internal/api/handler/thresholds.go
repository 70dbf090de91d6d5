package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/retention-radar-api/internal/domain"
	"github.com/vfg2006/retention-radar-api/internal/usecases/account"
	"github.com/vfg2006/retention-radar-api/internal/usecases/scoring"
	"github.com/vfg2006/retention-radar-api/pkg/apiErrors"
	"github.com/vfg2006/retention-radar-api/pkg/log"
)

// GetThresholds retorna o baseline resolvido da conta: o override quando
// existe, o perfil padrão caso contrário (sinalizado por is_default).
func GetThresholds(accountService account.AccountService, scorer scoring.Scorer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da conta é obrigatório", nil)
			return
		}

		if _, err := accountService.GetAccount(id); err != nil {
			writeAccountError(w, err)
			return
		}

		resolved := scorer.ResolveBaselines(id)

		logger.WithFields(log.Fields{
			"account_id": id,
			"is_default": resolved.IsDefault,
		}).Info("thresholds: resolved baseline profile")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(resolved); err != nil {
			logger.WithError(err).Error("thresholds: failed to encode response")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

// UpdateThresholds grava o override de baseline da conta.
func UpdateThresholds(accountService account.AccountService, scorer scoring.Scorer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da conta é obrigatório", nil)
			return
		}

		if _, err := accountService.GetAccount(id); err != nil {
			writeAccountError(w, err)
			return
		}

		var thresholds domain.BaselineThresholds
		if err := json.NewDecoder(r.Body).Decode(&thresholds); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
			return
		}

		thresholds.AccountID = id

		if err := scorer.SaveBaselines(&thresholds); err != nil {
			logger.WithFields(log.Fields{
				"account_id": id,
				"error":      err.Error(),
			}).Error("thresholds: failed to save baseline override")

			switch {
			case errors.Is(err, scoring.ErrInvalidBaselines):
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Valores de baseline devem ser positivos", nil)
			default:
				apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao gravar baseline da conta", nil)
			}
			return
		}

		logger.WithField("account_id", id).Info("thresholds: baseline override stored")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(thresholds); err != nil {
			logger.WithError(err).Error("thresholds: failed to encode response")
		}
	})
}
