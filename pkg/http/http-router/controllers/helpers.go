package controllers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/lintang-b-s/spellcheck/pkg"
)

type envelope map[string]interface{}

// writeJSON marshals data structure to encoded JSON response.
func (api *spellerAPI) writeJSON(w http.ResponseWriter, status int, data envelope,
	headers http.Header) error {
	js, err := json.MarshalIndent(data, "", "\t")
	if err != nil {
		return err
	}

	js = append(js, '\n')
	for key, value := range headers {
		w.Header()[key] = value
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(js); err != nil {
		api.log.Error("failed to write JSON response", zap.Error(err))
		return err
	}

	return nil
}

func (api *spellerAPI) errorResponse(w http.ResponseWriter, r *http.Request,
	status int, message interface{}) {
	env := envelope{"error": envelope{
		"code":    http.StatusText(status),
		"message": fmt.Sprintf("%v", message),
	}}

	if err := api.writeJSON(w, status, env, nil); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
	}
}

func (api *spellerAPI) BadRequestResponse(w http.ResponseWriter, r *http.Request, err error) {
	api.errorResponse(w, r, http.StatusBadRequest, err.Error())
}

func (api *spellerAPI) UnprocessableEntityResponse(w http.ResponseWriter, r *http.Request, err error) {
	api.errorResponse(w, r, http.StatusUnprocessableEntity, err.Error())
}

func (api *spellerAPI) ServerErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	api.log.Error("internal server error", zap.Error(err),
		zap.String("method", r.Method), zap.String("path", r.URL.Path))
	api.errorResponse(w, r, http.StatusInternalServerError, pkg.MessageInternalServerError)
}
