package stories

import (
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	httputil "github.com/soapboxsocial/stories/pkg/http"
	"github.com/soapboxsocial/stories/pkg/logger"
)

const maxUploadSize = 10 << 20

type Endpoint struct {
	service *Service
}

func NewEndpoint(service *Service) *Endpoint {
	return &Endpoint{service: service}
}

func (e *Endpoint) Router() *mux.Router {
	r := mux.NewRouter()

	r.Path("/").Methods("GET").HandlerFunc(e.ListVisibleStories)
	r.Path("/").Methods("POST").HandlerFunc(e.UploadStory)
	r.Path("/mutes").Methods("GET").HandlerFunc(e.GetMutedUsers)
	r.Path("/mutes/{id:[0-9]+}").Methods("POST").HandlerFunc(e.ToggleMute)
	r.Path("/viewed").Methods("GET").HandlerFunc(e.GetViewedStories)
	r.Path("/users/{id:[0-9]+}").Methods("GET").HandlerFunc(e.ListOwnerSegments)
	r.Path("/{id:[0-9A-Za-z]{27}}").Methods("DELETE").HandlerFunc(e.DeleteStory)
	r.Path("/{id:[0-9A-Za-z]{27}}/view").Methods("POST").HandlerFunc(e.RecordView)
	r.Path("/{id:[0-9A-Za-z]{27}}/views").Methods("GET").HandlerFunc(e.GetViews)

	r.NotFoundHandler = http.HandlerFunc(httputil.NotFoundHandler)
	r.Use(instrument)

	return r
}

func (e *Endpoint) ListVisibleStories(w http.ResponseWriter, r *http.Request) {
	userID, ok := httputil.GetUserIDFromContext(r.Context())
	if !ok {
		httputil.JsonError(w, http.StatusUnauthorized, httputil.ErrorCodeUnauthorized, "unauthorized")
		return
	}

	groups, err := e.service.ListVisibleStories(r.Context(), userID, time.Now())
	if err != nil {
		writeError(w, err, httputil.ErrorCodeFailedToGetStories)
		return
	}

	err = httputil.JsonEncode(w, groups)
	if err != nil {
		logger.Log.Warn("failed to write stories response", zap.Error(err))
	}
}

func (e *Endpoint) ListOwnerSegments(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		httputil.JsonError(w, http.StatusBadRequest, httputil.ErrorCodeInvalidRequestBody, "invalid id")
		return
	}

	stories, err := e.service.ListOwnerSegments(r.Context(), id, time.Now())
	if err != nil {
		writeError(w, err, httputil.ErrorCodeFailedToGetStories)
		return
	}

	err = httputil.JsonEncode(w, stories)
	if err != nil {
		logger.Log.Warn("failed to write stories response", zap.Error(err))
	}
}

func (e *Endpoint) RecordView(w http.ResponseWriter, r *http.Request) {
	userID, ok := httputil.GetUserIDFromContext(r.Context())
	if !ok {
		httputil.JsonError(w, http.StatusUnauthorized, httputil.ErrorCodeUnauthorized, "unauthorized")
		return
	}

	err := e.service.RecordView(r.Context(), userID, mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err, httputil.ErrorCodeFailedToRecordView)
		return
	}

	httputil.JsonSuccess(w)
}

func (e *Endpoint) ToggleMute(w http.ResponseWriter, r *http.Request) {
	userID, ok := httputil.GetUserIDFromContext(r.Context())
	if !ok {
		httputil.JsonError(w, http.StatusUnauthorized, httputil.ErrorCodeUnauthorized, "unauthorized")
		return
	}

	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		httputil.JsonError(w, http.StatusBadRequest, httputil.ErrorCodeInvalidRequestBody, "invalid id")
		return
	}

	muted, err := e.service.ToggleMute(r.Context(), userID, id)
	if err != nil {
		writeError(w, err, httputil.ErrorCodeFailedToToggleMute)
		return
	}

	err = httputil.JsonEncode(w, map[string]bool{"muted": muted})
	if err != nil {
		logger.Log.Warn("failed to write mute response", zap.Error(err))
	}
}

func (e *Endpoint) GetViews(w http.ResponseWriter, r *http.Request) {
	summary, err := e.service.GetStoryViewSummary(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err, httputil.ErrorCodeFailedToGetViews)
		return
	}

	err = httputil.JsonEncode(w, summary)
	if err != nil {
		logger.Log.Warn("failed to write views response", zap.Error(err))
	}
}

func (e *Endpoint) UploadStory(w http.ResponseWriter, r *http.Request) {
	userID, ok := httputil.GetUserIDFromContext(r.Context())
	if !ok {
		httputil.JsonError(w, http.StatusUnauthorized, httputil.ErrorCodeUnauthorized, "unauthorized")
		return
	}

	err := r.ParseMultipartForm(maxUploadSize)
	if err != nil {
		httputil.JsonError(w, http.StatusBadRequest, httputil.ErrorCodeInvalidRequestBody, "invalid form")
		return
	}

	file, _, err := r.FormFile("image")
	if err != nil {
		httputil.JsonError(w, http.StatusBadRequest, httputil.ErrorCodeMissingParameter, "missing image")
		return
	}

	defer file.Close()

	image, err := io.ReadAll(file)
	if err != nil {
		httputil.JsonError(w, http.StatusBadRequest, httputil.ErrorCodeInvalidRequestBody, "invalid image")
		return
	}

	story, err := e.service.UploadStory(r.Context(), userID, image)
	if err != nil {
		writeError(w, err, httputil.ErrorCodeFailedToStoreStory)
		return
	}

	err = httputil.JsonEncode(w, story)
	if err != nil {
		logger.Log.Warn("failed to write story response", zap.Error(err))
	}
}

func (e *Endpoint) DeleteStory(w http.ResponseWriter, r *http.Request) {
	userID, ok := httputil.GetUserIDFromContext(r.Context())
	if !ok {
		httputil.JsonError(w, http.StatusUnauthorized, httputil.ErrorCodeUnauthorized, "unauthorized")
		return
	}

	err := e.service.DeleteStory(r.Context(), userID, mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err, httputil.ErrorCodeFailedToStoreStory)
		return
	}

	httputil.JsonSuccess(w)
}

func (e *Endpoint) GetMutedUsers(w http.ResponseWriter, r *http.Request) {
	userID, ok := httputil.GetUserIDFromContext(r.Context())
	if !ok {
		httputil.JsonError(w, http.StatusUnauthorized, httputil.ErrorCodeUnauthorized, "unauthorized")
		return
	}

	muted, err := e.service.GetMutedUsers(r.Context(), userID)
	if err != nil {
		writeError(w, err, httputil.ErrorCodeFailedToGetStories)
		return
	}

	err = httputil.JsonEncode(w, muted)
	if err != nil {
		logger.Log.Warn("failed to write mutes response", zap.Error(err))
	}
}

func (e *Endpoint) GetViewedStories(w http.ResponseWriter, r *http.Request) {
	userID, ok := httputil.GetUserIDFromContext(r.Context())
	if !ok {
		httputil.JsonError(w, http.StatusUnauthorized, httputil.ErrorCodeUnauthorized, "unauthorized")
		return
	}

	ids, err := e.service.GetViewedStoryIDs(r.Context(), userID)
	if err != nil {
		writeError(w, err, httputil.ErrorCodeFailedToGetStories)
		return
	}

	err = httputil.JsonEncode(w, ids)
	if err != nil {
		logger.Log.Warn("failed to write viewed response", zap.Error(err))
	}
}

// writeError maps service errors to status codes. Anything unrecognised is reported with fallback.
func writeError(w http.ResponseWriter, err error, fallback httputil.ErrorCode) {
	switch {
	case errors.Is(err, ErrUnauthorized):
		httputil.JsonError(w, http.StatusUnauthorized, httputil.ErrorCodeUnauthorized, "unauthorized")
	case errors.Is(err, ErrUserNotFound):
		httputil.JsonError(w, http.StatusNotFound, httputil.ErrorCodeNotFound, "user not found")
	case errors.Is(err, ErrNotFound):
		httputil.JsonError(w, http.StatusNotFound, httputil.ErrorCodeStoryNotFound, "story not found")
	case errors.Is(err, ErrConflict):
		httputil.JsonError(w, http.StatusConflict, httputil.ErrorCodeConflict, "conflict, retry")
	case errors.Is(err, ErrInvalid):
		httputil.JsonError(w, http.StatusBadRequest, httputil.ErrorCodeInvalidRequestBody, err.Error())
	case errors.Is(err, ErrUnavailable):
		logger.Log.Error("store unavailable", zap.Error(err))
		httputil.JsonError(w, http.StatusServiceUnavailable, httputil.ErrorCodeUnavailable, "unavailable")
	default:
		logger.Log.Error("request failed", zap.Error(err))
		httputil.JsonError(w, http.StatusInternalServerError, fallback, "")
	}
}

func instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)

		route := r.URL.Path
		if current := mux.CurrentRoute(r); current != nil {
			if tmpl, err := current.GetPathTemplate(); err == nil {
				route = tmpl
			}
		}

		requestDuration.WithLabelValues(route, r.Method).Observe(time.Since(start).Seconds())
	})
}
