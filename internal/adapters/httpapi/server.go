package httpapi

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/journeyexplore/trip-planner-api/internal/app/export"
	"github.com/journeyexplore/trip-planner-api/internal/app/planner"
	"github.com/journeyexplore/trip-planner-api/internal/app/profile"
	"github.com/journeyexplore/trip-planner-api/internal/app/trips"
	"github.com/journeyexplore/trip-planner-api/internal/domain"
	"github.com/journeyexplore/trip-planner-api/internal/ports/out/clock"
	"github.com/journeyexplore/trip-planner-api/internal/ports/out/generations"
	"github.com/journeyexplore/trip-planner-api/internal/ports/out/idempotency"
)

const (
	maxBodyBytes      = 1 << 20
	idempotencyHeader = "Idempotency-Key"
)

// Server holds the handlers of the API.
type Server struct {
	Planner     *planner.Service
	Generations generations.Store
	Trips       *trips.Service
	Profile     *profile.Service
	Exporter    *export.Exporter
	Idem        idempotency.Store

	logger          *slog.Logger
	clock           clock.Clock
	newGenerationID func() domain.GenerationID
	inflight        *inFlight
	saveLocks       *keyLocks
}

type ServerOption func(*Server)

func WithLogger(l *slog.Logger) ServerOption {
	return func(s *Server) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithIdempotencyStore enables replay of POST /trips for requests carrying an
// Idempotency-Key header.
func WithIdempotencyStore(store idempotency.Store) ServerOption {
	return func(s *Server) { s.Idem = store }
}

func NewServer(
	plannerSvc *planner.Service,
	gens generations.Store,
	tripsSvc *trips.Service,
	profileSvc *profile.Service,
	exporter *export.Exporter,
	clk clock.Clock,
	opts ...ServerOption,
) *Server {
	s := &Server{
		Planner:     plannerSvc,
		Generations: gens,
		Trips:       tripsSvc,
		Profile:     profileSvc,
		Exporter:    exporter,
		logger:      slog.Default(),
		clock:       clk,
		newGenerationID: func() domain.GenerationID {
			return domain.GenerationID(uuid.NewString())
		},
		inflight:  newInFlight(),
		saveLocks: newKeyLocks(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SetNewGenerationIDForTest overrides generation id creation (tests only).
func (s *Server) SetNewGenerationIDForTest(fn func() domain.GenerationID) {
	if fn != nil {
		s.newGenerationID = fn
	}
}

func (s *Server) GenerateTrip(w http.ResponseWriter, r *http.Request) {
	var body domain.TripRequest
	if !s.decode(w, r, &body) {
		return
	}
	req, err := planner.ValidateTripRequest(body)
	if err != nil {
		s.writeAppError(w, r, err)
		return
	}

	session := SessionFromContext(r.Context())
	release, ok := s.inflight.acquire(session)
	if !ok {
		writeError(w, r, http.StatusConflict, "GENERATION_IN_PROGRESS", "a trip is already being generated for this session", nil)
		return
	}
	defer release()

	trip := s.Planner.GenerateTripPlan(r.Context(), req)
	id := s.newGenerationID()
	if err := s.Generations.Put(r.Context(), id, trip); err != nil {
		s.writeAppError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, GenerateTripResponse{GenerationId: string(id), Trip: trip})
}

func (s *Server) GetGeneration(w http.ResponseWriter, r *http.Request) {
	trip, ok := s.generation(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, trip)
}

func (s *Server) GetGenerationDocument(w http.ResponseWriter, r *http.Request) {
	trip, ok := s.generation(w, r)
	if !ok {
		return
	}
	s.writeDocument(w, r, trip)
}

func (s *Server) RenderTripDocument(w http.ResponseWriter, r *http.Request) {
	var trip domain.GeneratedTrip
	if !s.decode(w, r, &trip) {
		return
	}
	if strings.TrimSpace(trip.Destination) == "" || trip.Days < domain.MinTripDays {
		writeError(w, r, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "trip needs a destination and at least one day", nil)
		return
	}
	s.writeDocument(w, r, trip)
}

func (s *Server) ListTrips(w http.ResponseWriter, r *http.Request) {
	ts, err := s.Trips.ListTrips(r.Context())
	if err != nil {
		s.writeAppError(w, r, err)
		return
	}
	if ts == nil {
		ts = []domain.SavedTrip{}
	}
	writeJSON(w, http.StatusOK, ListTripsResponse{Trips: ts})
}

// SaveTrip commits a generated trip to the trip list. With an Idempotency-Key
// the first successful response is replayed for identical retries, and reuse
// of the key with a different body is rejected. Requests sharing a key are
// handled one at a time, and the key is claimed in the store before saving,
// so concurrent duplicates save once.
func (s *Server) SaveTrip(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	raw, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		writeError(w, r, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "unreadable request body", nil)
		return
	}

	var fp idempotency.Fingerprint
	key := strings.TrimSpace(r.Header.Get(idempotencyHeader))
	if s.Idem != nil && key != "" {
		fp = idempotency.Fingerprint{
			Key:     idempotency.Key(key),
			Session: SessionFromContext(ctx),
			Method:  http.MethodPost,
			Route:   "/trips",
		}
		unlock, err := s.saveLocks.lock(ctx, fp.Session+"\x00"+key)
		if err != nil {
			// The client is gone.
			return
		}
		defer unlock()

		hash := bodyHash(raw)
		if s.replay(w, r, fp, hash) {
			return
		}
		fp.BodyHash = hash
	}

	var body SaveTripRequest
	if err := json.Unmarshal(raw, &body); err != nil {
		writeError(w, r, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "malformed request body", nil)
		return
	}

	var trip domain.GeneratedTrip
	switch {
	case body.GenerationId != "" && body.Trip != nil:
		writeError(w, r, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "send either generationId or trip, not both", nil)
		return
	case body.GenerationId != "":
		t, err := s.Generations.Get(ctx, domain.GenerationID(body.GenerationId))
		if errors.Is(err, generations.ErrNotFound) {
			writeError(w, r, http.StatusNotFound, "GENERATION_NOT_FOUND", "generated trip not found or expired", nil)
			return
		}
		if err != nil {
			s.writeAppError(w, r, err)
			return
		}
		trip = t
	case body.Trip != nil:
		trip = *body.Trip
	default:
		writeError(w, r, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "generationId or trip is required", nil)
		return
	}

	if fp.Key != "" {
		held, claimed, err := s.Idem.PutIfAbsent(ctx, fp, idempotency.Record{
			StatusCode:  0,
			ContentType: "text/plain",
			Body:        []byte{},
			CreatedAt:   s.clock.Now().UTC(),
		})
		if err != nil {
			s.writeAppError(w, r, err)
			return
		}
		if !claimed {
			if held.StatusCode != 0 {
				writeRecord(w, held)
				return
			}
			writeError(w, r, http.StatusConflict, "IDEMPOTENCY_REQUEST_IN_PROGRESS", "a request with this idempotency key is still being processed", nil)
			return
		}
	}

	saved, err := s.Trips.SaveTrip(ctx, trip)
	if err != nil {
		if fp.Key != "" {
			// Release the claim so a retry can save.
			if derr := s.Idem.Delete(context.WithoutCancel(ctx), fp); derr != nil {
				s.logger.WarnContext(ctx, "releasing idempotency claim failed", slog.String("key", string(fp.Key)), slog.Any("err", derr))
			}
		}
		s.writeAppError(w, r, err)
		return
	}

	if fp.Key != "" {
		if b, err := json.Marshal(saved); err == nil {
			err = s.Idem.Put(context.WithoutCancel(ctx), fp, idempotency.Record{
				StatusCode:  http.StatusCreated,
				ContentType: "application/json",
				Body:        b,
				CreatedAt:   s.clock.Now().UTC(),
			})
			if err != nil {
				s.logger.WarnContext(ctx, "storing idempotent response failed", slog.String("key", string(fp.Key)), slog.Any("err", err))
			}
		}
	}
	writeJSON(w, http.StatusCreated, saved)
}

func (s *Server) GetTrip(w http.ResponseWriter, r *http.Request) {
	t, err := s.Trips.GetTrip(r.Context(), domain.TripID(chi.URLParam(r, "tripId")))
	if err != nil {
		s.writeAppError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, t)
}

func (s *Server) DeleteTrip(w http.ResponseWriter, r *http.Request) {
	if err := s.Trips.RemoveTrip(r.Context(), domain.TripID(chi.URLParam(r, "tripId"))); err != nil {
		s.writeAppError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) UpdateTripStatus(w http.ResponseWriter, r *http.Request) {
	var body UpdateTripStatusRequest
	if !s.decode(w, r, &body) {
		return
	}
	if err := s.Trips.UpdateStatus(r.Context(), domain.TripID(chi.URLParam(r, "tripId")), body.Status); err != nil {
		s.writeAppError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) GetTripStats(w http.ResponseWriter, r *http.Request) {
	stats, err := s.Trips.Stats(r.Context())
	if err != nil {
		s.writeAppError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func (s *Server) GetProfile(w http.ResponseWriter, r *http.Request) {
	p, err := s.Profile.GetProfile(r.Context())
	if err != nil {
		s.writeAppError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, ProfileResponse{Profile: profileFromDomain(p)})
}

func (s *Server) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var body UpdateProfileRequest
	if !s.decode(w, r, &body) {
		return
	}
	p, err := s.Profile.UpdateProfile(r.Context(), updateProfileInputFromRequest(body))
	if err != nil {
		s.writeAppError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, ProfileResponse{Profile: profileFromDomain(p)})
}

func (s *Server) generation(w http.ResponseWriter, r *http.Request) (domain.GeneratedTrip, bool) {
	trip, err := s.Generations.Get(r.Context(), domain.GenerationID(chi.URLParam(r, "generationId")))
	if errors.Is(err, generations.ErrNotFound) {
		writeError(w, r, http.StatusNotFound, "GENERATION_NOT_FOUND", "generated trip not found or expired", nil)
		return domain.GeneratedTrip{}, false
	}
	if err != nil {
		s.writeAppError(w, r, err)
		return domain.GeneratedTrip{}, false
	}
	return trip, true
}

// writeDocument renders trip fully before sending headers, so a render
// failure can still become an error response.
func (s *Server) writeDocument(w http.ResponseWriter, r *http.Request, trip domain.GeneratedTrip) {
	plannedBy := strings.TrimSpace(r.URL.Query().Get("plannedBy"))
	if plannedBy == "" {
		plannedBy = s.Profile.DisplayName(r.Context())
	}

	var buf bytes.Buffer
	if err := s.Exporter.Export(trip, plannedBy, &buf); err != nil {
		s.logger.ErrorContext(r.Context(), "trip export failed", slog.String("destination", trip.Destination), slog.Any("err", err))
		writeError(w, r, http.StatusInternalServerError, "EXPORT_FAILED", "could not render the trip document", nil)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": export.FileName(trip.Destination)}))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

// replay writes a stored response for fp and reports whether it did. The
// first body hash seen for a key is bound to it; a key reused with a
// different body is answered with 409.
func (s *Server) replay(w http.ResponseWriter, r *http.Request, fp idempotency.Fingerprint, hash string) bool {
	ctx := r.Context()
	meta, bound, err := s.Idem.PutIfAbsent(ctx, fp, idempotency.Record{
		StatusCode:  0,
		ContentType: "text/plain",
		Body:        []byte(hash),
		CreatedAt:   s.clock.Now().UTC(),
	})
	if err != nil {
		s.writeAppError(w, r, err)
		return true
	}
	if !bound && string(meta.Body) != hash {
		writeError(w, r, http.StatusConflict, "IDEMPOTENCY_KEY_REUSE", "idempotency key reuse with different payload", nil)
		return true
	}

	respFP := fp
	respFP.BodyHash = hash
	rec, ok, err := s.Idem.Get(ctx, respFP)
	if err != nil {
		s.writeAppError(w, r, err)
		return true
	}
	if !ok || rec.StatusCode == 0 {
		return false
	}
	writeRecord(w, rec)
	return true
}

func writeRecord(w http.ResponseWriter, rec idempotency.Record) {
	w.Header().Set("Content-Type", rec.ContentType)
	w.WriteHeader(rec.StatusCode)
	_, _ = w.Write(rec.Body)
}

// decode reads a JSON body into v, answering 422 itself on failure.
func (s *Server) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(v); err != nil {
		var details map[string]any
		if errors.Is(err, openapi_types.ErrValidationEmail) {
			details = map[string]any{"email": "must be a valid email address"}
		}
		writeError(w, r, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "malformed request body", details)
		return false
	}
	return true
}

func bodyHash(b []byte) string {
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:])
}
