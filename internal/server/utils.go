package server

import (
	"net/http"
	"strconv"
	"unicode/utf8"

	"github.com/unrolled/render"
)

func writeJSONResponse(render *render.Render, w http.ResponseWriter, statusCode int, responseModel interface{}) {
	if err := render.JSON(w, statusCode, responseModel); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
	}
}

func writeError(render *render.Render, w http.ResponseWriter, statusCode int, err error) {
	writeJSONResponse(render, w, statusCode, errorResponse{Message: err.Error()})
}

func queryInt(r *http.Request, param string, fallback int) (int, error) {
	value := r.URL.Query().Get(param)
	if value == "" {
		return fallback, nil
	}
	i, err := strconv.Atoi(value)
	if err != nil {
		return 0, ErrInvalidParam(param, value)
	}
	return i, nil
}

func queryBool(r *http.Request, param string, fallback bool) (bool, error) {
	value := r.URL.Query().Get(param)
	if value == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, ErrInvalidParam(param, value)
	}
	return b, nil
}

func queryRune(r *http.Request, param string, fallback string) (rune, error) {
	value := r.URL.Query().Get(param)
	if value == "" {
		value = fallback
	}
	if utf8.RuneCountInString(value) != 1 {
		return 0, ErrInvalidDelimiter
	}
	d, _ := utf8.DecodeRuneInString(value)
	return d, nil
}
