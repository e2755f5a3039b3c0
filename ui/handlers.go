package ui

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"strandkin/domain/core"
	"strandkin/domain/moves"
	"strandkin/internal/errors"
	"strandkin/internal/tally"
)

// maxTallyBody caps POST /api/tally payloads
const maxTallyBody = 4 << 20

type optionsResponse struct {
	Summary           string             `json:"summary"`
	Temperature       float64            `json:"temperature"`
	Dangles           string             `json:"dangles"`
	RateMethod        string             `json:"rate_method"`
	JoinConcentration float64            `json:"join_concentration"`
	UsingArrhenius    bool               `json:"using_arrhenius"`
	UniScale          float64            `json:"uni_scale"`
	BiScale           float64            `json:"bi_scale"`
	Prefactors        map[string]float64 `json:"prefactors"`
}

type combineResponse struct {
	Left     string `json:"left"`
	Right    string `json:"right"`
	MoveType string `json:"move_type"`
	Prime    int    `json:"prime"`
}

type tallyRequest struct {
	// Regions is a list of exposed regions, each a list of "left:base:right"
	Regions [][]string `json:"regions"`
}

type tallyResponse struct {
	Tally              string                `json:"tally"`
	NumExposed         int                   `json:"num_exposed"`
	NumExposedInternal int                   `json:"num_exposed_internal"`
	Composition        moves.ExposureSummary `json:"composition"`
}

func (a *App) handleHealth(w http.ResponseWriter, r *http.Request) {
	a.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (a *App) handleOptions(w http.ResponseWriter, r *http.Request) {
	resp := optionsResponse{
		Summary:           a.params.String(),
		Temperature:       a.params.Temperature(),
		Dangles:           a.params.Dangles().String(),
		RateMethod:        a.params.RateMethod().String(),
		JoinConcentration: a.params.JoinConcentration(),
		UsingArrhenius:    a.params.UsingArrhenius(),
		UniScale:          a.params.UniScale(),
		BiScale:           a.params.BiScale(),
		Prefactors:        make(map[string]float64, moves.NumMoveTypes),
	}
	for _, m := range moves.AllMoveTypes() {
		resp.Prefactors[m.String()] = a.params.Prefactor(m)
	}
	a.writeJSON(w, http.StatusOK, resp)
}

func (a *App) handleProfile(w http.ResponseWriter, r *http.Request) {
	profile, err := a.profiler.Profile(a.params)
	if err != nil {
		a.writeError(w, err)
		return
	}
	a.writeJSON(w, http.StatusOK, profile)
}

func (a *App) handleCombine(w http.ResponseWriter, r *http.Request) {
	left, err := contextParam(r, "left")
	if err != nil {
		a.writeError(w, err)
		return
	}
	right, err := contextParam(r, "right")
	if err != nil {
		a.writeError(w, err)
		return
	}

	move, err := moves.TryCombine(left, right)
	if err != nil {
		if stderrors.Is(err, core.ErrUnknownContext) {
			err = errors.InvariantViolation(err)
		}
		a.writeError(w, err)
		return
	}
	a.writeJSON(w, http.StatusOK, combineResponse{
		Left:     left.String(),
		Right:    right.String(),
		MoveType: move.String(),
		Prime:    move.Prime(),
	})
}

// contextParam accepts a context by name or by its numeric code
func contextParam(r *http.Request, name string) (moves.QuartContext, error) {
	raw := strings.ToLower(strings.TrimSpace(r.URL.Query().Get(name)))
	if raw == "" {
		return 0, errors.InvalidInput(fmt.Sprintf("query parameter %q is required", name))
	}
	if c, ok := moves.ParseQuartContext(raw); ok {
		return c, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 || n > 255 {
		return 0, errors.InvalidInput(fmt.Sprintf("unknown context %q", raw))
	}
	// out-of-range codes are passed through so the combine step reports them
	return moves.QuartContext(n), nil
}

func (a *App) handleDecode(w http.ResponseWriter, r *http.Request) {
	product, err := strconv.Atoi(chi.URLParam(r, "product"))
	if err != nil {
		a.writeError(w, errors.InvalidInput("product must be an integer"))
		return
	}
	left, right, ok := moves.DecodeTypeMult(product)
	if !ok {
		a.writeError(w, errors.NotFound(fmt.Sprintf("move pair for product %d", product)))
		return
	}
	a.writeJSON(w, http.StatusOK, map[string]interface{}{
		"product": product,
		"left":    left.String(),
		"right":   right.String(),
		"join":    moves.NewJoinCriteria(left, right).String(),
	})
}

func (a *App) handleTally(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxTallyBody))
	if err != nil {
		a.writeError(w, errors.InvalidInputf(err, "failed to read request body"))
		return
	}
	var req tallyRequest
	if err := json.Unmarshal(body, &req); err != nil {
		a.writeError(w, errors.InvalidInputf(err, "invalid tally request"))
		return
	}

	regions := make([]tally.Region, 0, len(req.Regions))
	for _, raw := range req.Regions {
		region := make(tally.Region, 0, len(raw))
		for _, s := range raw {
			obs, err := tally.ParseObservation(s)
			if err != nil {
				a.writeError(w, err)
				return
			}
			region = append(region, obs)
		}
		regions = append(regions, region)
	}

	info, err := tally.Parallel(r.Context(), regions, a.workers)
	if err != nil {
		a.writeError(w, err)
		return
	}
	a.writeJSON(w, http.StatusOK, tallyResponse{
		Tally:              info.String(),
		NumExposed:         info.NumExposed(),
		NumExposedInternal: info.NumExposedInternal(),
		Composition:        info.Composition(),
	})
}
