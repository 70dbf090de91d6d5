package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/retention-radar-api/internal/domain"
	"github.com/vfg2006/retention-radar-api/internal/usecases/account"
	"github.com/vfg2006/retention-radar-api/internal/usecases/scoring"
	"github.com/vfg2006/retention-radar-api/pkg/apiErrors"
	"github.com/vfg2006/retention-radar-api/pkg/log"
)

// IngestMetrics grava os contadores operacionais de um dia para a conta.
// Um segundo envio para o mesmo dia substitui a linha anterior.
func IngestMetrics(accountService account.AccountService, scorer scoring.Scorer) http.Handler {
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

		var metrics domain.DailyMetrics
		if err := json.NewDecoder(r.Body).Decode(&metrics); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
			return
		}

		// O ID da URL prevalece sobre o do corpo
		metrics.AccountID = id

		if err := scorer.IngestMetrics(&metrics); err != nil {
			logger.WithFields(log.Fields{
				"account_id": id,
				"error":      err.Error(),
			}).Error("metrics: failed to ingest daily metrics")

			switch {
			case errors.Is(err, scoring.ErrMetricsDateRequired):
				apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Data das métricas é obrigatória", nil)
			default:
				apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao gravar métricas diárias", nil)
			}
			return
		}

		logger.WithFields(log.Fields{
			"account_id": id,
			"date":       metrics.Date.Format(time.DateOnly),
		}).Info("metrics: daily metrics stored")

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)

		if err := json.NewEncoder(w).Encode(metrics); err != nil {
			logger.WithError(err).Error("metrics: failed to encode response")
		}
	})
}

// writeAccountError traduz erros do serviço de contas para a resposta HTTP
func writeAccountError(w http.ResponseWriter, err error) {
	var accountErr *account.AccountError
	if errors.As(err, &accountErr) {
		apiErrors.WriteError(w, accountErr.Code, accountErr.Error(), nil)
		return
	}

	apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao consultar conta", nil)
}
