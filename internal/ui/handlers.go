package ui

import (
	"bytes"
	"html/template"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/me/goseek/internal/config"
	"github.com/me/goseek/internal/render"
	"github.com/me/goseek/internal/request"
	"github.com/me/goseek/pkg/model"
	"github.com/me/goseek/pkg/sched"
)

// policyAll is the form value that selects a side-by-side run of every policy.
const policyAll = "all"

// UI serves the HTML front end: a single form page that runs the scheduling
// policies server side and renders the resulting seek charts.
type UI struct {
	logger    *slog.Logger
	validator *request.Validator
	sampler   *request.Sampler
}

// New creates a new UI handler. It shares the validator and sampler with the
// JSON API so both surfaces accept and generate exactly the same workloads.
func New(logger *slog.Logger, validator *request.Validator, sampler *request.Sampler) *UI {
	return &UI{
		logger:    logger.With("component", "ui"),
		validator: validator,
		sampler:   sampler,
	}
}

// formView echoes the raw form values back into the page, so rejected input
// stays visible under the errors that explain the rejection.
type formView struct {
	Head      string
	DiskSize  string
	Requests  string
	Policy    string
	Direction string
	Count     string
}

func defaultForm() formView {
	return formView{
		Head:      strconv.Itoa(config.DefaultHead),
		DiskSize:  strconv.Itoa(config.DefaultDiskSize),
		Requests:  config.DefaultQueue,
		Policy:    policyAll,
		Direction: sched.TowardMax.String(),
		Count:     strconv.Itoa(config.DefaultSampleCount),
	}
}

func formFromRequest(r *http.Request) formView {
	return formView{
		Head:      strings.TrimSpace(r.FormValue("head")),
		DiskSize:  strings.TrimSpace(r.FormValue("disk_size")),
		Requests:  strings.TrimSpace(r.FormValue("requests")),
		Policy:    r.FormValue("policy"),
		Direction: r.FormValue("direction"),
		Count:     strings.TrimSpace(r.FormValue("count")),
	}
}

// resultView is one rendered schedule card.
type resultView struct {
	DisplayName   string
	Direction     string
	TotalSeek     int
	Sequence      []sched.Cylinder
	BoundaryStops int
	Plot          template.HTML
	Best          bool
}

// HandleIndex renders the simulator form, pre-filled with the default workload.
func (ui *UI) HandleIndex(w http.ResponseWriter, r *http.Request) {
	ui.render(w, "index", ui.pageData(defaultForm(), nil))
}

// HandleSimulate runs the selected policy, or all of them side by side, over
// the submitted workload and re-renders the page with the result cards.
func (ui *UI) HandleSimulate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		ui.render(w, "index", ui.pageData(defaultForm(), []model.FieldError{
			{Field: "form", Message: "malformed form body"},
		}))
		return
	}
	form := formFromRequest(r)

	var errs []model.FieldError
	head, ferr := request.ParseInt("head", form.Head)
	if ferr != nil {
		errs = append(errs, *ferr)
	}
	diskSize, ferr := request.ParseInt("disk_size", form.DiskSize)
	if ferr != nil {
		errs = append(errs, *ferr)
	}
	queue, queueErrs := request.ParseQueue(form.Requests)
	errs = append(errs, queueErrs...)

	dir, err := sched.ParseDirection(form.Direction)
	if err != nil {
		errs = append(errs, model.FieldError{Field: "direction", Reason: model.ReasonUnknownDirection, Message: err.Error()})
	}
	if len(errs) > 0 {
		ui.render(w, "index", ui.pageData(form, errs))
		return
	}

	if apiErr := ui.validator.Workload(head, diskSize, queue); apiErr != nil {
		ui.render(w, "index", ui.pageData(form, apiErr.Details))
		return
	}
	requests := request.Cylinders(queue)

	var schedules []sched.Schedule
	if form.Policy == policyAll {
		schedules = sched.Compare(sched.Cylinder(head), requests, diskSize, dir)
	} else {
		policy, err := sched.ParsePolicy(form.Policy)
		if err != nil {
			ui.render(w, "index", ui.pageData(form, []model.FieldError{
				{Field: "policy", Reason: model.ReasonUnknownPolicy, Message: err.Error()},
			}))
			return
		}
		schedule, err := sched.Run(policy, sched.Cylinder(head), requests, diskSize, dir)
		if err != nil {
			ui.logger.Error("simulation failed", "policy", form.Policy, "error", err)
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
		schedules = []sched.Schedule{schedule}
	}

	data := ui.pageData(form, nil)
	data["Results"] = resultViews(schedules, diskSize)
	if len(schedules) > 1 {
		best := schedules[sched.Best(schedules)]
		data["Best"] = best.DisplayName()
		data["BestSeek"] = best.TotalSeek
	}
	ui.logger.Debug("simulation rendered", "policy", form.Policy, "requests", len(requests))
	ui.render(w, "index", data)
}

// HandleRandomize redraws the request queue and re-renders the form with the
// fresh values. All other form fields are preserved.
func (ui *UI) HandleRandomize(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		ui.render(w, "index", ui.pageData(defaultForm(), []model.FieldError{
			{Field: "form", Message: "malformed form body"},
		}))
		return
	}
	form := formFromRequest(r)

	var errs []model.FieldError
	diskSize, ferr := request.ParseInt("disk_size", form.DiskSize)
	if ferr != nil {
		errs = append(errs, *ferr)
	}
	count, ferr := request.ParseInt("count", form.Count)
	if ferr != nil {
		errs = append(errs, *ferr)
	}
	if len(errs) > 0 {
		ui.render(w, "index", ui.pageData(form, errs))
		return
	}
	if apiErr := ui.validator.Sample(count, diskSize); apiErr != nil {
		ui.render(w, "index", ui.pageData(form, apiErr.Details))
		return
	}

	form.Requests = joinQueue(ui.sampler.Draw(count, diskSize))
	ui.logger.Debug("queue randomized", "disk_size", diskSize, "count", count)
	ui.render(w, "index", ui.pageData(form, nil))
}

// --- Helper Methods ---

func (ui *UI) pageData(form formView, errs []model.FieldError) map[string]any {
	return map[string]any{
		"Title":    "GoSeek Disk Scheduler",
		"Form":     form,
		"Policies": policyOptions(),
		"Errors":   errs,
	}
}

func policyOptions() []model.PolicyInfo {
	policies := sched.Policies()
	out := make([]model.PolicyInfo, len(policies))
	for i, p := range policies {
		out[i] = model.PolicyInfo{
			Name:        p.String(),
			DisplayName: p.DisplayName(),
			Description: p.Description(),
		}
	}
	return out
}

func resultViews(schedules []sched.Schedule, diskSize int) []resultView {
	best := sched.Best(schedules)
	views := make([]resultView, len(schedules))
	for i, s := range schedules {
		views[i] = resultView{
			DisplayName:   s.DisplayName(),
			Direction:     s.Direction.String(),
			TotalSeek:     s.TotalSeek,
			Sequence:      s.Sequence,
			BoundaryStops: s.BoundaryStops,
			Plot:          render.PlotSVG(s, diskSize),
			Best:          len(schedules) > 1 && i == best,
		}
	}
	return views
}

func joinQueue(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ",")
}

func (ui *UI) render(w http.ResponseWriter, name string, data map[string]any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	var buf bytes.Buffer
	if err := renderTemplate(&buf, name, data); err != nil {
		ui.logger.Error("template render failed", "template", name, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	buf.WriteTo(w)
}
