package api

import (
	"encoding/json"
	"errors"
	"html/template"
	"io"
	"log"
	"net/http"

	"github.com/matt-g-everett/robotface/face"
)

const maxSequenceBytes = 1 << 20

type pageData struct {
	Skin  string
	Eye   string
	Pupil string
	Face  template.HTML
	State face.State
}

type playResponse struct {
	Playback string `json:"playback"`
}

type errorResponse struct {
	Alert string `json:"alert"`
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("api: encode response: %v", err)
	}
}

func (a *Api) handleIndex(w http.ResponseWriter, r *http.Request) {
	state := a.stage.View.Snapshot()
	data := pageData{
		Skin:  a.theme.Skin.Hex(),
		Eye:   a.theme.Eye.Hex(),
		Pupil: a.theme.Pupil.Hex(),
		Face:  template.HTML(face.SVG(state, a.theme)),
		State: state,
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := a.page.Execute(w, data); err != nil {
		log.Printf("api: template error: %v", err)
	}
}

func (a *Api) handleSVG(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "image/svg+xml")
	w.Header().Set("Cache-Control", "no-store")
	if err := face.RenderSVG(w, a.stage.View.Snapshot(), a.theme); err != nil {
		log.Printf("api: render svg: %v", err)
	}
}

func (a *Api) handleState(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, a.stage.View.Snapshot())
}

func (a *Api) handleLog(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, a.stage.Journal.Entries())
}

func (a *Api) handlePlayDemo(w http.ResponseWriter, r *http.Request) {
	pb := a.stage.PlayDemo(a.ctx)
	writeJSON(w, http.StatusAccepted, playResponse{Playback: pb.ID})
}

func (a *Api) handlePlayPrediction(w http.ResponseWriter, r *http.Request) {
	pb, err := a.stage.PlayPrediction(a.ctx)
	if err != nil {
		// a file that cannot be used reads the same as one not yet written
		writeLoadError(w, err, face.ErrNotProduced.Error())
		return
	}
	writeJSON(w, http.StatusAccepted, playResponse{Playback: pb.ID})
}

func (a *Api) handlePlay(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxSequenceBytes))
	if err != nil {
		http.Error(w, "could not read body", http.StatusBadRequest)
		return
	}
	seq, err := face.ParseSequence(body)
	if err != nil {
		writeLoadError(w, err, "the sequence is malformed")
		return
	}
	pb := a.stage.Play(a.ctx, seq)
	writeJSON(w, http.StatusAccepted, playResponse{Playback: pb.ID})
}

func writeLoadError(w http.ResponseWriter, err error, invalidAlert string) {
	var verr *face.ValidationError
	switch {
	case errors.Is(err, face.ErrNotProduced):
		writeJSON(w, http.StatusNotFound, errorResponse{Alert: face.ErrNotProduced.Error(), Error: err.Error()})
	case errors.As(err, &verr):
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Alert: invalidAlert, Error: err.Error()})
	default:
		writeJSON(w, http.StatusInternalServerError, errorResponse{Alert: "could not play the sequence", Error: err.Error()})
	}
}
