package handlers

import (
	"net/http"

	"github.com/dkazarin/league-manager/models"
	"github.com/dkazarin/league-manager/schedule"
	"github.com/dkazarin/league-manager/services"
)

type LeagueHandler struct {
	leagueService services.LeagueService
}

func NewLeagueHandler(leagueService services.LeagueService) *LeagueHandler {
	return &LeagueHandler{leagueService: leagueService}
}

type calendarRequest struct {
	Roster []models.Competitor `json:"roster"`
}

type tableRequest struct {
	Roster   []models.Competitor `json:"roster"`
	Fixtures []models.Fixture    `json:"fixtures"`
}

type finalRoundRequest struct {
	Results []schedule.SemifinalResult `json:"results"`
}

func (h *LeagueHandler) GenerateCalendarHandler(w http.ResponseWriter, r *http.Request) {
	var input calendarRequest
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	fixtures, err := h.leagueService.GenerateCalendar(r.Context(), input.Roster)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"fixtures": fixtures}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *LeagueHandler) LeagueTableHandler(w http.ResponseWriter, r *http.Request) {
	var input tableRequest
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	table, err := h.leagueService.LeagueTable(r.Context(), input.Roster, input.Fixtures)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"standings": table}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *LeagueHandler) OverviewHandler(w http.ResponseWriter, r *http.Request) {
	var input tableRequest
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	overview, err := h.leagueService.Overview(r.Context(), input.Roster, input.Fixtures)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"overview": overview}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *LeagueHandler) SeedSemifinalsHandler(w http.ResponseWriter, r *http.Request) {
	var input tableRequest
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	fixtures, err := h.leagueService.SeedSemifinals(r.Context(), input.Roster, input.Fixtures)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"fixtures": fixtures}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *LeagueHandler) SeedFinalRoundHandler(w http.ResponseWriter, r *http.Request) {
	var input finalRoundRequest
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	round, err := h.leagueService.SeedFinalRound(r.Context(), input.Results)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"final": round.Final, "third_place": round.ThirdPlace}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *LeagueHandler) HealthcheckHandler(w http.ResponseWriter, r *http.Request) {
	if err := writeJSON(w, http.StatusOK, jsonResponse{"status": "ok"}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
