package datafiles

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/publish-data/publish-data/internal/platform/httpx"
	"github.com/publish-data/publish-data/internal/shared"
	"github.com/publish-data/publish-data/internal/view"
)

const formTemplate = "pages/datafile_dates.html"

// Outcomes reported to a ResolutionRecorder.
const (
	OutcomeResolved = "resolved"
	OutcomeInvalid  = "invalid"
	OutcomeRejected = "rejected"
)

// ResolutionRecorder receives one observation per resolve attempt.
type ResolutionRecorder interface {
	ObserveResolution(frequency, outcome string, fields []string)
}

// Handler exposes the resolver over HTTP: the link form, which checks the
// link and its dates and re-renders with errors, and a JSON endpoint that
// resolves dates only.
type Handler struct {
	logger    *slog.Logger
	resolver  *Resolver
	links     *LinkValidator
	templates *view.Engine
	clock     shared.Clock
	recorder  ResolutionRecorder
}

// NewHandler constructs a Handler. recorder may be nil.
func NewHandler(logger *slog.Logger, resolver *Resolver, templates *view.Engine, clock shared.Clock, recorder ResolutionRecorder) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	if resolver == nil {
		resolver = NewResolver()
	}
	if clock == nil {
		clock = shared.SystemClock{}
	}
	return &Handler{
		logger:    logger,
		resolver:  resolver,
		links:     NewLinkValidator(),
		templates: templates,
		clock:     clock,
		recorder:  recorder,
	}
}

// MountRoutes registers datafile date routes on provided router.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/fields", h.fields)
	r.Get("/form", h.showForm)
	r.Post("/form", h.submitForm)
	r.Post("/resolve", h.resolveJSON)
}

type fieldsResponse struct {
	Frequency Frequency `json:"frequency"`
	Label     string    `json:"label"`
	Fields    []Field   `json:"fields"`
}

type resolveRequest struct {
	Frequency string `json:"frequency"`
	DatePartInput
}

type resolveResponse struct {
	Frequency Frequency `json:"frequency"`
	DateRange
}

type formPage struct {
	Form     Form
	Resolved bool
	Range    DateRange
}

func (h *Handler) fields(w http.ResponseWriter, r *http.Request) {
	freq, err := ParseFrequency(r.URL.Query().Get("frequency"))
	if err != nil {
		httpx.RespondError(w, fmt.Errorf("%w: %v", httpx.ErrBadRequest, err))
		return
	}
	fields := RequiredFields(freq)
	httpx.JSON(w, http.StatusOK, fieldsResponse{Frequency: freq, Label: freq.Label(), Fields: fields})
}

func (h *Handler) showForm(w http.ResponseWriter, r *http.Request) {
	freq, err := ParseFrequency(r.URL.Query().Get("frequency"))
	if err != nil {
		httpx.RespondError(w, fmt.Errorf("%w: %v", httpx.ErrBadRequest, err))
		return
	}
	form := NewForm(freq, DatePartInput{}, nil, h.clock).WithLink(LinkInput{})
	h.render(w, r, formPage{Form: form}, http.StatusOK)
}

func (h *Handler) submitForm(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}
	freq, err := ParseFrequency(r.PostFormValue("frequency"))
	if err != nil {
		h.observe(r.PostFormValue("frequency"), OutcomeRejected, nil)
		httpx.RespondError(w, fmt.Errorf("%w: %v", httpx.ErrBadRequest, err))
		return
	}
	in := DatePartInputFromValues(r.PostForm)
	link := LinkInputFromValues(r.PostForm)

	var errs ValidationErrors
	if err := h.links.Validate(link); err != nil {
		verrs, ok := AsValidationErrors(err)
		if !ok {
			h.logger.Error("validate datafile link", slog.Any("error", err))
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
		errs = verrs
	}
	rng, err := h.resolve(freq, in)
	if err != nil {
		verrs, ok := AsValidationErrors(err)
		if !ok {
			h.logger.Error("resolve datafile dates", slog.Any("error", err))
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
		errs = errs.Merge(verrs)
	}
	if len(errs) > 0 {
		form := NewForm(freq, in, errs, h.clock).WithLink(link)
		h.render(w, r, formPage{Form: form}, http.StatusUnprocessableEntity)
		return
	}
	form := NewForm(freq, in, nil, h.clock).WithLink(link)
	h.render(w, r, formPage{Form: form, Resolved: true, Range: rng}, http.StatusOK)
}

func (h *Handler) resolveJSON(w http.ResponseWriter, r *http.Request) {
	var req resolveRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.RespondError(w, err)
		return
	}
	freq, err := ParseFrequency(req.Frequency)
	if err != nil {
		h.observe(req.Frequency, OutcomeRejected, nil)
		httpx.RespondError(w, fmt.Errorf("%w: %v", httpx.ErrBadRequest, err))
		return
	}
	rng, err := h.resolve(freq, req.DatePartInput)
	if err != nil {
		if verrs, ok := AsValidationErrors(err); ok {
			httpx.ValidationProblem(w, verrs.Map())
			return
		}
		h.logger.Error("resolve datafile dates", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, resolveResponse{Frequency: freq, DateRange: rng})
}

func (h *Handler) resolve(freq Frequency, in DatePartInput) (DateRange, error) {
	rng, err := h.resolver.Resolve(freq, in)
	var verrs ValidationErrors
	switch {
	case err == nil:
		h.observe(string(freq), OutcomeResolved, nil)
	case errors.As(err, &verrs):
		fields := make([]string, 0, len(verrs))
		for _, f := range verrs.Fields() {
			fields = append(fields, string(f))
		}
		h.observe(string(freq), OutcomeInvalid, fields)
	}
	return rng, err
}

func (h *Handler) observe(frequency, outcome string, fields []string) {
	if h.recorder == nil {
		return
	}
	if _, err := ParseFrequency(frequency); err != nil {
		// Keep label cardinality bounded for garbage input.
		frequency = "unknown"
	}
	h.recorder.ObserveResolution(frequency, outcome, fields)
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request, page formPage, status int) {
	data := view.TemplateData{
		Title:       "Add a link to your data",
		CurrentPath: r.URL.Path,
		Data:        page,
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := h.templates.Render(w, formTemplate, data); err != nil {
		h.logger.Error("render datafile form", slog.Any("error", err))
	}
}
