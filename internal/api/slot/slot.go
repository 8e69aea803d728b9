package slot

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	dto "slot_backend/internal/api/dto/slot"
	"slot_backend/internal/converter"
	"slot_backend/internal/model"
	"slot_backend/internal/service"
	"slot_backend/pkg/req"
	"slot_backend/pkg/resp"
)

type HandlerDeps struct {
	Serv   service.SlotService
	Logger *zap.Logger
}

type Handler struct {
	serv   service.SlotService
	logger *zap.Logger
}

func NewHandler(deps HandlerDeps) *Handler {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{serv: deps.Serv, logger: logger}
}

// Deposit открывает сессию и возвращает её токен
func (h *Handler) Deposit(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.DepositRequest](r.Body)
	if err != nil {
		resp.WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.serv.Deposit(r.Context(), payload.Amount)
	if err != nil {
		h.writeError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusCreated, converter.ToDepositResponse(*result))
}

func (h *Handler) Spin(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.SpinRequest](r.Body)
	if err != nil {
		resp.WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.serv.Spin(r.Context(), converter.ToBet(payload))
	if err != nil {
		h.writeError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToSpinResponse(*result))
}

func (h *Handler) Balance(w http.ResponseWriter, r *http.Request) {
	balance, err := h.serv.Balance(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, dto.BalanceResponse{Balance: balance})
}

// CashOut закрывает сессию, токен после этого недействителен
func (h *Handler) CashOut(w http.ResponseWriter, r *http.Request) {
	balance, err := h.serv.CashOut(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, dto.BalanceResponse{Balance: balance})
}

func (h *Handler) Machine(w http.ResponseWriter, _ *http.Request) {
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToMachineResponse(h.serv.Machine()))
}

func (h *Handler) Stats(w http.ResponseWriter, _ *http.Request) {
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToStatsResponse(h.serv.Stats()))
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, model.ErrInvalidDeposit),
		errors.Is(err, model.ErrInvalidLines),
		errors.Is(err, model.ErrInvalidBet):
		resp.WriteJSONError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, model.ErrInsufficientBalance):
		resp.WriteJSONError(w, http.StatusPaymentRequired, err.Error())
	case errors.Is(err, model.ErrSessionNotFound):
		resp.WriteJSONError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, model.ErrGameOver),
		errors.Is(err, model.ErrBalanceLimit):
		resp.WriteJSONError(w, http.StatusConflict, err.Error())
	default:
		h.logger.Error("slot request failed", zap.Error(err))
		resp.WriteJSONError(w, http.StatusInternalServerError, "internal error")
	}
}
