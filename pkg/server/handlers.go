package server

import (
	"errors"
	"net/http"

	"github.com/blackcoderx/oasify/pkg/converter"
	"github.com/blackcoderx/oasify/pkg/insomnia"
	"github.com/blackcoderx/oasify/pkg/storage"
)

const (
	sessionCookie = "oasify_session"
	uploadField   = "file"

	// multipartOverhead is allowed on top of MaxUploadBytes for boundaries and
	// part headers.
	multipartOverhead = 64 << 10

	downloadName = "openapi.yaml"
)

type pageData struct {
	Title string
	Error string
	Ready bool
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	s.render(w, http.StatusOK, "index", pageData{Title: "Convert"})
}

func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	if !s.limiter.Allow(clientKey(r)) {
		s.metrics.conversions.WithLabelValues(outcomeRateLimited).Inc()
		s.uploadError(w, http.StatusTooManyRequests, "Too many uploads, please wait a moment and try again")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes+multipartOverhead)
	file, header, err := r.FormFile(uploadField)
	if err != nil {
		var maxErr *http.MaxBytesError
		switch {
		case errors.As(err, &maxErr):
			s.metrics.conversions.WithLabelValues(outcomeTooLarge).Inc()
			s.uploadError(w, http.StatusRequestEntityTooLarge, "File is too large")
		case errors.Is(err, http.ErrMissingFile) && s.hasEmptyFilePart(r):
			s.uploadError(w, http.StatusBadRequest, "No selected file")
		default:
			s.uploadError(w, http.StatusBadRequest, "No file part")
		}
		return
	}
	defer file.Close()

	if header.Filename == "" {
		s.uploadError(w, http.StatusBadRequest, "No selected file")
		return
	}
	s.metrics.uploadBytes.Observe(float64(header.Size))

	src, err := insomnia.Decode(file, s.cfg.MaxUploadBytes)
	if err != nil {
		if errors.Is(err, insomnia.ErrTooLarge) {
			s.metrics.conversions.WithLabelValues(outcomeTooLarge).Inc()
			s.uploadError(w, http.StatusRequestEntityTooLarge, "File is too large")
			return
		}
		s.metrics.conversions.WithLabelValues(outcomeInvalid).Inc()
		s.logger.Info("rejected upload", "filename", header.Filename, "error", err)
		s.uploadError(w, http.StatusBadRequest, err.Error())
		return
	}

	doc, err := converter.Convert(src, s.convertOpts...)
	if err != nil {
		if converter.IsMalformedBody(err) {
			s.metrics.conversions.WithLabelValues(outcomeMalformed).Inc()
			s.logger.Info("rejected upload", "filename", header.Filename, "error", err)
			s.uploadError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		s.internalError(w, "conversion failed", err)
		return
	}

	data, err := storage.MarshalYAML(doc)
	if err != nil {
		s.internalError(w, "failed to encode document", err)
		return
	}

	token := s.sessionToken(w, r)
	s.results.Put(token, data)

	stats := converter.Summarize(doc)
	s.metrics.conversions.WithLabelValues(outcomeSuccess).Inc()
	s.metrics.operations.Observe(float64(stats.Operations))
	s.logger.Info("converted upload",
		"filename", header.Filename,
		"paths", stats.Paths,
		"operations", stats.Operations,
		"tags", stats.Tags,
	)

	http.Redirect(w, r, "/download", http.StatusSeeOther)
}

func (s *Server) handleDownloadPage(w http.ResponseWriter, r *http.Request) {
	token, _ := s.existingToken(r)
	s.render(w, http.StatusOK, "download", pageData{
		Title: "Download",
		Ready: token != "" && s.results.Has(token),
	})
}

func (s *Server) handleDownloadYAML(w http.ResponseWriter, r *http.Request) {
	token, ok := s.existingToken(r)
	if !ok {
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}
	data, ok := s.results.Take(token)
	if !ok {
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}

	w.Header().Set("Content-Type", storage.FormatYAML.ContentType())
	w.Header().Set("Content-Disposition", `attachment; filename="`+downloadName+`"`)
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		s.logger.Warn("failed to write download", "error", err)
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok\n"))
}

// hasEmptyFilePart reports whether the form carried a "file" part without a
// filename. Such parts are parsed as plain values.
func (s *Server) hasEmptyFilePart(r *http.Request) bool {
	if r.MultipartForm == nil {
		return false
	}
	_, ok := r.MultipartForm.Value[uploadField]
	return ok
}

// existingToken returns the caller's session token if it carries a valid one.
func (s *Server) existingToken(r *http.Request) (string, bool) {
	c, err := r.Cookie(sessionCookie)
	if err != nil || !storage.ValidToken(c.Value) {
		return "", false
	}
	return c.Value, true
}

// sessionToken returns the caller's token, issuing a new cookie when needed.
func (s *Server) sessionToken(w http.ResponseWriter, r *http.Request) string {
	if token, ok := s.existingToken(r); ok {
		return token
	}
	token := storage.NewToken()
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return token
}

func (s *Server) uploadError(w http.ResponseWriter, status int, msg string) {
	s.render(w, status, "index", pageData{Title: "Convert", Error: msg})
}

func (s *Server) internalError(w http.ResponseWriter, msg string, err error) {
	s.metrics.conversions.WithLabelValues(outcomeInternal).Inc()
	s.logger.Error(msg, "error", err)
	http.Error(w, "internal server error", http.StatusInternalServerError)
}

func (s *Server) render(w http.ResponseWriter, status int, name string, data pageData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := s.templates.ExecuteTemplate(w, name, data); err != nil {
		s.logger.Error("failed to render template", "template", name, "error", err)
	}
}
