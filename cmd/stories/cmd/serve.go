package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	httputil "github.com/soapboxsocial/stories/pkg/http"
	"github.com/soapboxsocial/stories/pkg/http/middlewares"
	"github.com/soapboxsocial/stories/pkg/logger"
	"github.com/soapboxsocial/stories/pkg/media"
	"github.com/soapboxsocial/stories/pkg/mutes"
	"github.com/soapboxsocial/stories/pkg/pubsub"
	"github.com/soapboxsocial/stories/pkg/redis"
	"github.com/soapboxsocial/stories/pkg/sessions"
	"github.com/soapboxsocial/stories/pkg/sql"
	"github.com/soapboxsocial/stories/pkg/stories"
	"github.com/soapboxsocial/stories/pkg/users"
	"github.com/soapboxsocial/stories/pkg/views"
)

const prefix = "/v1/stories"

var serve = &cobra.Command{
	Use:   "serve",
	Short: "runs the stories api",
	RunE:  runServe,
}

func runServe(*cobra.Command, []string) error {
	config, err := load()
	if err != nil {
		return err
	}

	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rdb := redis.NewRedis(config.Redis)

	service, err := newService(ctx, config, pubsub.NewQueue(rdb))
	if err != nil {
		return err
	}

	amw := middlewares.NewAuthenticationMiddleware(sessions.NewSessionManager(rdb))

	router := stories.NewEndpoint(service).Router()
	router.Use(amw.Middleware)

	r := mux.NewRouter()
	r.PathPrefix(prefix + "/").Handler(http.StripPrefix(prefix, router))
	r.Handle("/metrics", promhttp.Handler())
	r.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		httputil.JsonSuccess(w)
	})
	r.NotFoundHandler = http.HandlerFunc(httputil.NotFoundHandler)

	server := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", config.API.Host, config.API.Port),
		Handler: httputil.AccessLog(os.Stdout, httputil.CORS(r)),
	}

	go func() {
		<-ctx.Done()

		shutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		err := server.Shutdown(shutdown)
		if err != nil {
			logger.Log.Error("failed to shut down", zap.Error(err))
		}
	}()

	logger.Log.Info("listening", zap.String("addr", server.Addr))

	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		return errors.Wrap(err, "failed to serve")
	}

	return nil
}

func newService(ctx context.Context, config *Conf, queue stories.Publisher) (*stories.Service, error) {
	db, err := sql.Open(config.DB)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open db")
	}

	storage, err := media.NewStorage(ctx, config.Media)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create media storage")
	}

	service := stories.NewService(
		stories.NewBackend(db),
		mutes.NewBackend(db),
		views.NewBackend(db),
		users.NewBackend(db),
		storage,
		queue,
	)

	return service, nil
}
