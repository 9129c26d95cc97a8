package handler

import (
	"errors"
	"io"
	"net/http"
	"os"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/JoakoBallesteros/workforce-staffing/internal/auth"
	"github.com/JoakoBallesteros/workforce-staffing/internal/model"
	"github.com/JoakoBallesteros/workforce-staffing/internal/service"
	"github.com/JoakoBallesteros/workforce-staffing/internal/staffing"
)

// maxUploadBytes caps the combined roster+demand multipart body.
const maxUploadBytes = 32 << 20 // 32MiB

// StaffingHandler exposes the simulation run endpoint and the three
// download endpoints that stream a completed run's artifacts.
type StaffingHandler struct {
	staffing *service.StaffingService
	runs     *service.SimulationRunService
}

// NewStaffingHandler creates a new StaffingHandler.
func NewStaffingHandler(staffing *service.StaffingService, runs *service.SimulationRunService) *StaffingHandler {
	return &StaffingHandler{staffing: staffing, runs: runs}
}

// Create runs the engine for one upload and returns the run id plus summary
// counts. POST /api/v1/simulations, multipart body: roster, demand,
// service, period, optional seed.
func (h *StaffingHandler) Create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		respondError(w, http.StatusBadRequest, "could not parse multipart body: "+err.Error())
		return
	}

	rosterPath, cleanupRoster, err := saveUploadedFile(r, "roster")
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	defer cleanupRoster()

	demandPath, cleanupDemand, err := saveUploadedFile(r, "demand")
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	defer cleanupDemand()

	in := service.GenerateInput{
		RosterPath: rosterPath,
		DemandPath: demandPath,
		Service:    model.ServiceKey(r.FormValue("service")),
		Period:     model.Period(r.FormValue("period")),
		Seed:       parseSeed(r.FormValue("seed")),
	}
	if user, ok := requestUser(r); ok {
		in.RequestedBy = &user
	}

	out, err := h.staffing.Generate(r.Context(), in)
	if err != nil {
		writeEngineError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, map[string]any{
		"id":             out.RunID,
		"row_count":      out.RowCount,
		"movement_count": out.MovementCount,
		"shortage_count": out.ShortageCount,
	})
}

// Report streams the report workbook for a completed run.
// GET /api/v1/simulations/{id}/report.xlsx
func (h *StaffingHandler) Report(w http.ResponseWriter, r *http.Request) {
	h.streamArtifact(w, r, "report.xlsx",
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		func(a service.Artifacts) []byte { return a.ReportXLSX })
}

// WeekGrid streams the week-grid workbook for a completed run.
// GET /api/v1/simulations/{id}/weekgrid.xlsx
func (h *StaffingHandler) WeekGrid(w http.ResponseWriter, r *http.Request) {
	h.streamArtifact(w, r, "weekgrid.xlsx",
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		func(a service.Artifacts) []byte { return a.WeekGridXLSX })
}

// Summary streams the coverage summary PDF for a completed run.
// GET /api/v1/simulations/{id}/summary.pdf
func (h *StaffingHandler) Summary(w http.ResponseWriter, r *http.Request) {
	h.streamArtifact(w, r, "summary.pdf", "application/pdf",
		func(a service.Artifacts) []byte { return a.SummaryPDF })
}

func (h *StaffingHandler) streamArtifact(w http.ResponseWriter, r *http.Request, filename, contentType string, pick func(service.Artifacts) []byte) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid simulation id")
		return
	}

	run, err := h.runs.GetByID(r.Context(), id)
	if err != nil {
		respondError(w, http.StatusNotFound, "simulation run not found")
		return
	}
	if run.Status != model.RunStatusSucceeded {
		respondError(w, http.StatusUnprocessableEntity, "simulation run did not succeed")
		return
	}

	artifacts, ok := h.staffing.Artifacts(id)
	if !ok {
		respondError(w, http.StatusGone, "artifacts are no longer available for this run")
		return
	}

	data := pick(artifacts)
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		log.Error().Err(err).Str("simulation_id", id.String()).Msg("failed to stream artifact")
	}
}

// saveUploadedFile copies the named multipart field to a temp file and
// returns its path plus a cleanup func. xlsx readers need a path
// (excelize.OpenFile), not a stream, so the upload is staged to disk.
func saveUploadedFile(r *http.Request, field string) (string, func(), error) {
	file, header, err := r.FormFile(field)
	if err != nil {
		return "", func() {}, errors.New("missing " + field + " file")
	}
	defer file.Close()

	tmp, err := os.CreateTemp("", "upload-*-"+header.Filename)
	if err != nil {
		return "", func() {}, err
	}
	cleanup := func() { _ = os.Remove(tmp.Name()) }

	if _, err := io.Copy(tmp, file); err != nil {
		_ = tmp.Close()
		cleanup()
		return "", func() {}, err
	}
	if err := tmp.Close(); err != nil {
		cleanup()
		return "", func() {}, err
	}

	return tmp.Name(), cleanup, nil
}

// requestUser extracts the authenticated user's id, if any, for the audit
// trail's requested_by column.
func requestUser(r *http.Request) (uuid.UUID, bool) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok {
		return uuid.UUID{}, false
	}
	return user.ID, true
}

func parseSeed(raw string) int64 {
	if raw == "" {
		return 0
	}
	seed, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0
	}
	return seed
}

// writeEngineError maps the engine's three error kinds (§7) to HTTP status.
func writeEngineError(w http.ResponseWriter, err error) {
	var ve *staffing.ValidationError
	if errors.As(err, &ve) {
		respondError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	var ife *staffing.InputFormatError
	if errors.As(err, &ife) {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	var re *staffing.ResourceError
	if errors.As(err, &re) {
		log.Error().Err(err).Msg("engine resource failure")
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondError(w, http.StatusInternalServerError, err.Error())
}
