package handler

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/retention-radar-api/internal/domain"
	"github.com/vfg2006/retention-radar-api/internal/usecases/account"
	"github.com/vfg2006/retention-radar-api/internal/usecases/scoring"
	"github.com/vfg2006/retention-radar-api/pkg/apiErrors"
	"github.com/vfg2006/retention-radar-api/pkg/log"
	"github.com/vfg2006/retention-radar-api/pkg/utils"
)

// RunAssessment pontua a conta para a data pedida (ontem por padrão) e
// registra a avaliação no histórico. Reavaliar o mesmo dia acrescenta uma
// nova entrada, nunca sobrescreve.
func RunAssessment(accountService account.AccountService, scorer scoring.Scorer) http.Handler {
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

		referenceDate := *date
		if referenceDate.IsZero() {
			referenceDate = time.Now().AddDate(0, 0, -1)
		}

		assessment, err := scorer.AssessAccount(id, referenceDate)
		if err != nil {
			logger.WithFields(log.Fields{
				"account_id": id,
				"date":       referenceDate.Format(time.DateOnly),
				"error":      err.Error(),
			}).Error("assessments: failed to run assessment")

			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao registrar avaliação de risco", nil)
			return
		}

		logger.WithFields(log.Fields{
			"account_id": id,
			"date":       referenceDate.Format(time.DateOnly),
			"risk_score": assessment.RiskScore,
			"level":      assessment.Level,
		}).Info("assessments: assessment recorded")

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)

		if err := json.NewEncoder(w).Encode(assessment); err != nil {
			logger.WithError(err).Error("assessments: failed to encode response")
		}
	})
}

// ListAssessments lista o histórico de avaliações da conta. Com start_date e
// end_date retorna a última avaliação de cada dia do intervalo; sem eles,
// as N entradas mais recentes (limit, padrão 30).
func ListAssessments(accountService account.AccountService, scorer scoring.Scorer) http.Handler {
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

		assessments, err := listAssessments(scorer, id, r)
		if err != nil {
			logger.WithFields(log.Fields{
				"account_id": id,
				"error":      err.Error(),
			}).Error("assessments: failed to list history")

			switch {
			case errors.Is(err, scoring.ErrInvalidDateRange):
				apiErrors.WriteError(w, apiErrors.ErrInvalidDateRange, "Data final não pode anteceder a inicial", nil)
			case errors.Is(err, errInvalidDateParam):
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data inválida. Use o formato YYYY-MM-DD", nil)
			default:
				apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar histórico de avaliações", nil)
			}
			return
		}

		logger.WithFields(log.Fields{
			"account_id": id,
			"total":      len(assessments),
		}).Info("assessments: history retrieved")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(assessments); err != nil {
			logger.WithError(err).Error("assessments: failed to encode response")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

// ExportAssessments devolve o histórico da conta em CSV, uma linha por
// avaliação, com os fatores concatenados por ponto e vírgula.
func ExportAssessments(accountService account.AccountService, scorer scoring.Scorer) http.Handler {
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

		assessments, err := listAssessments(scorer, id, r)
		if err != nil {
			logger.WithFields(log.Fields{
				"account_id": id,
				"error":      err.Error(),
			}).Error("assessments: failed to export history")

			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao exportar histórico de avaliações", nil)
			return
		}

		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=assessments-%s.csv", id))

		writer := csv.NewWriter(w)
		defer writer.Flush()

		header := []string{"for_date", "created_at", "risk_score", "risk_percentage", "level", "description", "factors"}
		if err := writer.Write(header); err != nil {
			logger.WithError(err).Error("assessments: failed to write csv header")
			return
		}

		for _, a := range assessments {
			record := []string{
				a.ForDate.Format(time.DateOnly),
				a.CreatedAt.Format(time.RFC3339),
				strconv.FormatFloat(a.RiskScore, 'f', 4, 64),
				strconv.FormatFloat(a.RiskPercentage, 'f', 1, 64),
				string(a.Level),
				a.Description,
				strings.Join(a.Factors, "; "),
			}

			if err := writer.Write(record); err != nil {
				logger.WithError(err).Error("assessments: failed to write csv record")
				return
			}
		}

		logger.WithFields(log.Fields{
			"account_id": id,
			"total":      len(assessments),
		}).Info("assessments: history exported as csv")
	})
}

var errInvalidDateParam = errors.New("invalid date parameter")

// listAssessments resolve a forma da consulta a partir dos parâmetros da URL
func listAssessments(scorer scoring.Scorer, accountID string, r *http.Request) ([]*domain.RiskAssessment, error) {
	startParam := r.URL.Query().Get("start_date")
	endParam := r.URL.Query().Get("end_date")

	if startParam != "" || endParam != "" {
		startDate, err := utils.ParseDate(startParam)
		if err != nil {
			return nil, errInvalidDateParam
		}

		endDate, err := utils.ParseDate(endParam)
		if err != nil {
			return nil, errInvalidDateParam
		}

		return scorer.HistoryBetween(accountID, *startDate, *endDate)
	}

	limit := 0
	if limitParam := r.URL.Query().Get("limit"); limitParam != "" {
		parsed, err := strconv.Atoi(limitParam)
		if err != nil {
			return nil, errInvalidDateParam
		}
		limit = parsed
	}

	return scorer.History(accountID, limit)
}
