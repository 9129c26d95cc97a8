package service

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/JoakoBallesteros/workforce-staffing/internal/model"
	"github.com/JoakoBallesteros/workforce-staffing/internal/staffing"
	"github.com/JoakoBallesteros/workforce-staffing/internal/table"
	"github.com/JoakoBallesteros/workforce-staffing/internal/xlsx"
)

// GenerateInput is one report-generation request: a roster workbook, a
// demand workbook, the service selector (a real key or anything else,
// meaning "all services"), the period, and the break-synthesiser seed.
type GenerateInput struct {
	RosterPath  string
	DemandPath  string
	Service     model.ServiceKey
	Period      model.Period
	Seed        int64
	RequestedBy *uuid.UUID
}

// GenerateOutput holds every artifact one run produces, plus the counters
// recorded to the audit log and the id under which the artifacts were
// stashed for later download.
type GenerateOutput struct {
	RunID        uuid.UUID
	ReportXLSX   []byte
	WeekGridXLSX []byte
	SummaryPDF   []byte

	RowCount      int
	MovementCount int
	ShortageCount int
}

// StaffingService orchestrates one full engine run: read workbooks, run
// the pure core (C1-C9) per service, render the output workbooks/PDF,
// record an audit-trail entry, and stash the rendered artifacts for the
// download endpoints. Concurrent runs are serialised by mu, per §5's
// single-job-per-workspace resource policy — the pure core itself holds no
// state across calls, but the input file paths are a shared external
// resource this process owns.
type StaffingService struct {
	runs      *SimulationRunService
	artifacts *ArtifactStore

	mu sync.Mutex
}

// NewStaffingService creates a new StaffingService.
func NewStaffingService(runs *SimulationRunService, artifacts *ArtifactStore) *StaffingService {
	return &StaffingService{runs: runs, artifacts: artifacts}
}

// Generate runs the full pipeline (C1-C10, then the A11 summary) for in.Service — a
// single service, or every catalogued service when in.Service doesn't name
// one — and always records a SimulationRun, success or failure. On success
// the rendered artifacts are stashed under the returned run id.
func (s *StaffingService) Generate(ctx context.Context, in GenerateInput) (*GenerateOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	start := time.Now()
	out, err := s.generate(in)

	rowCount, movementCount, shortageCount := 0, 0, 0
	if out != nil {
		rowCount, movementCount, shortageCount = out.RowCount, out.MovementCount, out.ShortageCount
	}

	runID := s.runs.RecordRun(ctx, RunOutcome{
		ServiceKey:    in.Service,
		Period:        in.Period,
		Seed:          in.Seed,
		RequestedBy:   in.RequestedBy,
		RowCount:      rowCount,
		MovementCount: movementCount,
		ShortageCount: shortageCount,
		Duration:      time.Since(start),
		Err:           err,
	})

	if out != nil {
		out.RunID = runID
		if s.artifacts != nil && runID != uuid.Nil {
			s.artifacts.Put(runID, Artifacts{
				ReportXLSX:   out.ReportXLSX,
				WeekGridXLSX: out.WeekGridXLSX,
				SummaryPDF:   out.SummaryPDF,
			})
		}
	}

	return out, err
}

// Artifacts returns id's previously rendered artifacts, if still cached.
func (s *StaffingService) Artifacts(id uuid.UUID) (Artifacts, bool) {
	if s.artifacts == nil {
		return Artifacts{}, false
	}
	return s.artifacts.Get(id)
}

func (s *StaffingService) generate(in GenerateInput) (*GenerateOutput, error) {
	if !in.Period.IsValid() {
		return nil, &staffing.ValidationError{Field: "period", Msg: "unrecognized period selector"}
	}

	rosterTable, err := xlsx.ReadRoster(in.RosterPath)
	if err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewSource(in.Seed))

	var reports []xlsx.Report
	weekGrids := make(map[time.Time][]model.WeekGridRow)
	totalMovements, totalShortages := 0, 0

	for _, svc := range targetServices(in.Service) {
		report, grids, err := generateService(in, svc, rosterTable, rng)
		if err != nil {
			return nil, err
		}

		reports = append(reports, report)
		totalMovements += len(report.Movements)
		for _, r := range report.Nominal {
			totalShortages += r.Shortage
		}
		for week, rows := range grids {
			weekGrids[week] = append(weekGrids[week], rows...)
		}
	}

	reportBytes, err := xlsx.WriteReport(reports)
	if err != nil {
		return nil, err
	}
	weekGridBytes, err := xlsx.WriteWeekGrids(weekGrids)
	if err != nil {
		return nil, err
	}
	summaryBytes, err := xlsx.WriteSummaryPDF("Resumen de Cobertura", reports)
	if err != nil {
		return nil, err
	}

	rowCount := 0
	for _, r := range reports {
		rowCount += len(r.Simulated)
	}

	return &GenerateOutput{
		ReportXLSX:    reportBytes,
		WeekGridXLSX:  weekGridBytes,
		SummaryPDF:    summaryBytes,
		RowCount:      rowCount,
		MovementCount: totalMovements,
		ShortageCount: totalShortages,
	}, nil
}

// generateService runs C1-C9 for one service and builds its xlsx.Report
// and week-grid contribution.
func generateService(
	in GenerateInput,
	svc model.ServiceInfo,
	rosterTable *table.Table,
	rng *rand.Rand,
) (xlsx.Report, map[time.Time][]model.WeekGridRow, error) {
	agents, warnings, err := staffing.LoadRoster(rosterTable, svc)
	if err != nil {
		return xlsx.Report{}, nil, err
	}
	for _, w := range warnings {
		log.Warn().
			Str("service", string(svc.Key)).
			Str("agent", w.AgentName).
			Str("contract", w.Raw).
			Msg("unrecognized contract category, falling back to sentinel shift hours")
	}
	if len(agents) == 0 {
		return xlsx.Report{Service: svc}, nil, nil
	}
	staffing.AssignOffDays(agents)

	demandTable, err := xlsx.ReadDemandSheet(in.DemandPath, svc)
	if err != nil {
		return xlsx.Report{}, nil, err
	}

	cells := staffing.MeltDemand(demandTable)
	cells = staffing.SlicePeriod(cells, in.Period)

	nominal, shortageMovements := staffing.Assign(cells, agents)
	resolved := staffing.ResolveMovements(nominal, shortageMovements)
	simulated := staffing.ApplyMovements(nominal, resolved)
	simulated, escSteps := staffing.PlanEscalation(simulated)

	records := staffing.ExpandPresence(simulated)
	grids := staffing.BuildWeekGrids(records, agents, svc.Label, rng)

	report := xlsx.Report{
		Service:    svc,
		Nominal:    nominal,
		Simulated:  simulated,
		Movements:  resolved,
		Escalation: escSteps,
	}
	return report, grids, nil
}

// targetServices resolves the service selector: the one catalogued
// service it names, or every catalogued service for "all services" mode.
func targetServices(key model.ServiceKey) []model.ServiceInfo {
	if svc, ok := model.LookupService(key); ok {
		return []model.ServiceInfo{svc}
	}
	return model.Services
}
