package api

import (
	"context"
	"html/template"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/matt-g-everett/robotface/face"
)

// Api serves the face page and the endpoints that drive it.
type Api struct {
	ctx   context.Context
	stage *face.Stage
	theme face.Theme
	hub   *Hub
	page  *template.Template
}

// NewApi creates an Api for stage. Playbacks it starts run until ctx is done.
func NewApi(ctx context.Context, stage *face.Stage, theme face.Theme) *Api {
	a := new(Api)
	a.ctx = ctx
	a.stage = stage
	a.theme = theme
	a.hub = NewHub(stage, theme)
	a.page = template.Must(template.New("page").Parse(tmplPage))
	return a
}

// Router returns the routes of the Api.
func (a *Api) Router() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/", a.handleIndex).Methods("GET")
	r.HandleFunc("/face.svg", a.handleSVG).Methods("GET")
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK\n"))
	}).Methods("GET")
	r.HandleFunc("/ws", a.hub.ServeWS).Methods("GET")

	r.HandleFunc("/api/state", a.handleState).Methods("GET")
	r.HandleFunc("/api/log", a.handleLog).Methods("GET")
	r.HandleFunc("/api/play", a.handlePlay).Methods("POST")
	r.HandleFunc("/api/play/demo", a.handlePlayDemo).Methods("POST")
	r.HandleFunc("/api/play/prediction", a.handlePlayPrediction).Methods("POST")
	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	})
	return r
}

// Serve listens on addr until the Api's context is done.
func (a *Api) Serve(addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           a.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-a.ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx)
	}()

	log.Printf("Listening on %s...", addr)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}
