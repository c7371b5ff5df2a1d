package http

import (
	"net/http"
	"net/url"
)

// Flash notices survive exactly one redirect: queued as short-lived
// cookies, read and cleared on the next render.
const (
	flashSuccessCookie = "ss_flash_success"
	flashErrorCookie   = "ss_flash_error"
)

type Flash struct {
	Success string
	Error   string
}

func FlashSuccess(w http.ResponseWriter, msg string) {
	setFlash(w, flashSuccessCookie, msg)
}

func FlashError(w http.ResponseWriter, msg string) {
	setFlash(w, flashErrorCookie, msg)
}

func setFlash(w http.ResponseWriter, name, msg string) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    url.QueryEscape(msg),
		Path:     "/",
		HttpOnly: true,
	})
}

// popFlashes reads any queued notices and clears them so they render
// only once.
func popFlashes(w http.ResponseWriter, r *http.Request) Flash {
	var f Flash
	f.Success = popFlash(w, r, flashSuccessCookie)
	f.Error = popFlash(w, r, flashErrorCookie)
	return f
}

func popFlash(w http.ResponseWriter, r *http.Request, name string) string {
	cookie, err := r.Cookie(name)
	if err != nil {
		return ""
	}
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
	msg, err := url.QueryUnescape(cookie.Value)
	if err != nil {
		return ""
	}
	return msg
}
