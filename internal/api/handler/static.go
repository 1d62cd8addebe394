package handler

import (
	"io/fs"
	"net/http"

	"github.com/sirupsen/logrus"
)

// DashboardIndex serves the dashboard entry page.
func DashboardIndex(assets fs.FS) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		content, err := fs.ReadFile(assets, "index.html")
		if err != nil {
			logrus.WithError(err).Error("failed to read dashboard index")
			http.Error(w, "dashboard is unavailable", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if _, err := w.Write(content); err != nil {
			logrus.WithError(err).Warn("failed to write dashboard index")
		}
	})
}

// DashboardAssets serves the dashboard scripts and styles.
func DashboardAssets(assets fs.FS) http.Handler {
	return http.StripPrefix("/assets/", http.FileServer(http.FS(assets)))
}
