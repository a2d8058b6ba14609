package suggest_address

import (
	"net/http"

	"github.com/m04kA/SMC-DetailingBooking/internal/api/handlers"
	suggestAddress "github.com/m04kA/SMC-DetailingBooking/internal/usecase/suggest_address"
)

type Handler struct {
	useCase SuggestAddressUseCase
	logger  Logger
}

func NewHandler(useCase SuggestAddressUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/address-suggestions?q=rue%20du%20pont
// Всегда 200: без подсказок форма заполняется вручную.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result := h.useCase.Execute(r.Context(), &suggestAddress.Request{Query: r.URL.Query().Get("q")})
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
