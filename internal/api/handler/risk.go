package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/retention-radar-api/internal/domain"
	"github.com/vfg2006/retention-radar-api/internal/usecases/account"
	"github.com/vfg2006/retention-radar-api/internal/usecases/resolving"
	"github.com/vfg2006/retention-radar-api/pkg/apiErrors"
	"github.com/vfg2006/retention-radar-api/pkg/log"
	"github.com/vfg2006/retention-radar-api/pkg/utils"
)

// GetRisk responde o percentual de risco da conta para a data pedida. Nunca
// retorna 404 por falta de dados: a cascata de fallback degrada a resposta
// até o terminal sem dados (value nulo, confiança zero).
func GetRisk(accountService account.AccountService, resolver resolving.Resolver) http.Handler {
	return riskQueryHandler(accountService, "risk", func(accountID string, date time.Time) any {
		return resolver.ResolveRisk(accountID, date)
	})
}

// GetRetention responde o score de retenção da conta para a data pedida,
// com a mesma degradação em camadas do risco.
func GetRetention(accountService account.AccountService, resolver resolving.Resolver) http.Handler {
	return riskQueryHandler(accountService, "retention", func(accountID string, date time.Time) any {
		return resolver.ResolveRetention(accountID, date)
	})
}

// GetTrend responde o delta entre a retenção atual e a média da semana
// anterior. Delta nulo quando um dos lados não tem dado.
func GetTrend(accountService account.AccountService, resolver resolving.Resolver) http.Handler {
	return riskQueryHandler(accountService, "trend", func(accountID string, date time.Time) any {
		return resolver.Trend(accountID, date)
	})
}

// riskQueryHandler concentra o esqueleto comum das três consultas: validação
// da conta, parse da data (hoje por padrão) e codificação da resposta.
func riskQueryHandler(accountService account.AccountService, queryName string, resolve func(accountID string, date time.Time) any) http.Handler {
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

		date, err := utils.ParseDate(r.URL.Query().Get("date"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data inválida. Use o formato YYYY-MM-DD", nil)
			return
		}

		queryDate := *date
		if queryDate.IsZero() {
			queryDate = time.Now()
		}

		result := resolve(id, queryDate)

		logRiskQuery(logger, queryName, id, queryDate, result)

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(result); err != nil {
			logger.WithFields(log.Fields{
				"account_id": id,
				"query":      queryName,
				"error":      err.Error(),
			}).Error("risk-query: failed to encode response")

			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

func logRiskQuery(logger log.Logger, queryName, accountID string, date time.Time, result any) {
	fields := log.Fields{
		"account_id": accountID,
		"query":      queryName,
		"date":       date.Format(time.DateOnly),
	}

	if qr, ok := result.(*domain.RiskQueryResult); ok {
		fields["source"] = qr.Source
		fields["confidence"] = qr.Confidence
	}

	logger.WithFields(fields).Info("risk-query: resolved")
}
